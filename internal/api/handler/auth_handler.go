package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/yritu05/Scholar-Connect/internal/api/metrics"
	"github.com/yritu05/Scholar-Connect/internal/api/middleware"
	"github.com/yritu05/Scholar-Connect/internal/api/view"
	"github.com/yritu05/Scholar-Connect/internal/core/domain"
	"github.com/yritu05/Scholar-Connect/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	sessions    *middleware.Sessions
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, sessions *middleware.Sessions, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, log: log}
}

func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return render(c, "register", "Register", nil)
}

// Register creates an account and sends the user to the login page.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission.")
	}
	if err := c.Validate(&form); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		addFlash(c, flashError, validationMessage(err))
		return redirect(c, "/register")
	}

	_, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		FirstName:       form.FirstName,
		LastName:        form.LastName,
		Username:        form.Username,
		Email:           form.Email,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
	})
	switch {
	case err == nil:
		metrics.RegistrationsTotal.WithLabelValues("success").Inc()
		return redirect(c, "/login")
	case errors.Is(err, domain.ErrPasswordMismatch):
		metrics.RegistrationsTotal.WithLabelValues("mismatch").Inc()
		addFlash(c, flashError, "Passwords do not match.")
	case errors.Is(err, domain.ErrUserExists):
		metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		addFlash(c, flashError, "Username or email is already taken.")
	case errors.Is(err, domain.ErrValidation):
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		addFlash(c, flashError, msgInvalidForm)
	default:
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return err
	}
	return redirect(c, "/register")
}

func (h *AuthHandler) LoginForm(c echo.Context) error {
	return render(c, "login", "Login", nil)
}

// Login starts a session. Failures re-render the form with 401.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission.")
	}

	user, err := h.authService.Login(c.Request().Context(), form.Username, form.Password)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			return err
		}
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		page := newPage(c, "Login", nil)
		page.Flashes = append(page.Flashes, view.Flash{Kind: flashError, Message: "Invalid credentials"})
		return c.Render(http.StatusUnauthorized, "login", page)
	}

	if err := h.sessions.Login(c, user.ID); err != nil {
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.log.Info().Int64("user_id", user.ID).Msg("user logged in")
	return redirect(c, "/dashboard")
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c)
	return redirect(c, "/login")
}
