package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
	"github.com/yritu05/Scholar-Connect/internal/core/ports"
)

type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Show(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}
	return render(c, "profile", "Profile", user)
}

func (h *ProfileHandler) EditForm(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}
	return render(c, "edit_profile", "Edit profile", user)
}

// Update saves the profile. A blank password keeps the current one.
func (h *ProfileHandler) Update(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var form profileForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission.")
	}
	if err := c.Validate(&form); err != nil {
		addFlash(c, flashError, validationMessage(err))
		return redirect(c, "/edit_profile")
	}

	_, err = h.profileService.Update(c.Request().Context(), userID, ports.UpdateProfileInput{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Username:  form.Username,
		Email:     form.Email,
		Password:  form.Password,
	})
	switch {
	case err == nil:
		addFlash(c, flashSuccess, "Profile updated successfully!")
		return redirect(c, "/profile")
	case errors.Is(err, domain.ErrUserExists):
		addFlash(c, flashError, "Username or email is already taken.")
	case errors.Is(err, domain.ErrValidation):
		addFlash(c, flashError, msgInvalidForm)
	default:
		return err
	}
	return redirect(c, "/edit_profile")
}

func (h *ProfileHandler) currentUser(c echo.Context) (*domain.User, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.profileService.Get(c.Request().Context(), userID)
}
