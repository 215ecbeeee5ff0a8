package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/yritu05/Scholar-Connect/internal/api/metrics"
	"github.com/yritu05/Scholar-Connect/internal/core/domain"
	"github.com/yritu05/Scholar-Connect/internal/core/ports"
)

const (
	msgFillAll         = "Please fill in all fields and upload a file."
	msgInvalidCategory = "Invalid category selected!"
	msgPaperNotFound   = "Paper not found."
)

type PaperHandler struct {
	paperService ports.PaperService
	log          zerolog.Logger
}

func NewPaperHandler(paperService ports.PaperService, log zerolog.Logger) *PaperHandler {
	return &PaperHandler{paperService: paperService, log: log}
}

// Dashboard lists the current user's papers.
func (h *PaperHandler) Dashboard(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	papers, err := h.paperService.Dashboard(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return render(c, "dashboard", "Dashboard", papers)
}

func (h *PaperHandler) UploadForm(c echo.Context) error {
	return render(c, "upload", "Upload", nil)
}

// Upload accepts a multipart form with title, description, category and file.
func (h *PaperHandler) Upload(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var form uploadForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission.")
	}
	file, ferr := c.FormFile("file")
	if err := c.Validate(&form); err != nil || ferr != nil || file.Filename == "" {
		msg := msgFillAll
		if err != nil && !failedRule(err, "required") {
			msg = msgInvalidCategory
			if !failedRule(err, "category") {
				msg = validationMessage(err)
			}
		}
		addFlash(c, flashError, msg)
		return redirect(c, "/upload")
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	paper, err := h.paperService.Upload(c.Request().Context(), userID, ports.UploadPaperInput{
		Title:       form.Title,
		Description: form.Description,
		Category:    form.Category,
		Filename:    file.Filename,
		Content:     src,
	})
	switch {
	case err == nil:
		metrics.PapersUploadedTotal.WithLabelValues(string(paper.Category)).Inc()
		addFlash(c, flashSuccess, fmt.Sprintf("Paper '%s' uploaded successfully!", paper.Title))
		return redirect(c, "/dashboard")
	case errors.Is(err, domain.ErrValidation):
		addFlash(c, flashError, msgFillAll)
	case errors.Is(err, domain.ErrInvalidCategory):
		addFlash(c, flashError, msgInvalidCategory)
	case errors.Is(err, domain.ErrStorage):
		h.log.Error().Err(err).Int64("user_id", userID).Msg("upload storage failed")
		addFlash(c, flashError, "The file could not be stored. Please try again.")
	default:
		return err
	}
	return redirect(c, "/upload")
}

type exploreView struct {
	Search   string
	Category string
	Papers   []*domain.Paper
}

// Explore is public. Both filters are optional and combine.
func (h *PaperHandler) Explore(c echo.Context) error {
	var q exploreQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid search.")
	}
	papers, err := h.paperService.Explore(c.Request().Context(), ports.ExploreInput{
		Search:   q.Search,
		Category: q.Category,
	})
	if err != nil {
		return err
	}
	return render(c, "explore", "Explore", exploreView{Search: q.Search, Category: q.Category, Papers: papers})
}

// Delete removes one of the current user's papers.
func (h *PaperHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	paperID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	_, err = h.paperService.Delete(c.Request().Context(), userID, paperID)
	switch {
	case err == nil:
		metrics.PapersDeletedTotal.Inc()
		addFlash(c, flashSuccess, "Paper deleted successfully.")
	case errors.Is(err, domain.ErrPaperNotFound):
		addFlash(c, flashError, msgPaperNotFound)
	case errors.Is(err, domain.ErrForbidden):
		h.log.Warn().Int64("user_id", userID).Int64("paper_id", paperID).Msg("delete rejected: not the owner")
		addFlash(c, flashError, "You are not authorized to delete this submission.")
	default:
		h.log.Error().Err(err).Int64("paper_id", paperID).Msg("delete paper failed")
		addFlash(c, flashError, "Error occurred while deleting the paper.")
	}
	return redirect(c, "/dashboard")
}

// Collaborate logs the request and opens the chat with the paper's owner.
func (h *PaperHandler) Collaborate(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	paperID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	collab, err := h.paperService.Collaborate(c.Request().Context(), userID, paperID)
	switch {
	case err == nil:
		metrics.CollaborationRequestsTotal.Inc()
		return redirect(c, fmt.Sprintf("/chat/%d", collab.Owner.ID))
	case errors.Is(err, domain.ErrPaperNotFound):
		return echo.NewHTTPError(http.StatusNotFound, msgPaperNotFound)
	case errors.Is(err, domain.ErrUserNotFound):
		addFlash(c, flashError, "Failed to open chat inbox.")
		return redirect(c, "/explore")
	default:
		return err
	}
}

// ModifyForm shows the edit form for one of the current user's papers.
func (h *PaperHandler) ModifyForm(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	paperID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	paper, err := h.paperService.GetOwned(c.Request().Context(), userID, paperID)
	if err != nil {
		return h.modifyError(c, err)
	}
	return render(c, "modify_submission", "Edit submission", paper)
}

func (h *PaperHandler) Modify(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	paperID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	back := fmt.Sprintf("/modify_submission/%d", paperID)

	var form modifyForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission.")
	}
	if err := c.Validate(&form); err != nil {
		msg := validationMessage(err)
		if failedRule(err, "category") || failedRule(err, "required") {
			msg = msgInvalidCategory
		}
		addFlash(c, flashError, msg)
		return redirect(c, back)
	}

	_, err = h.paperService.Modify(c.Request().Context(), userID, paperID, ports.ModifyPaperInput{
		Title:       form.Title,
		Description: form.Description,
		Category:    form.Category,
	})
	switch {
	case err == nil:
		addFlash(c, flashSuccess, "Submission updated successfully.")
		return redirect(c, "/dashboard")
	case errors.Is(err, domain.ErrInvalidCategory):
		addFlash(c, flashError, msgInvalidCategory)
		return redirect(c, back)
	default:
		return h.modifyError(c, err)
	}
}

func (h *PaperHandler) modifyError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrPaperNotFound):
		return echo.NewHTTPError(http.StatusNotFound, msgPaperNotFound)
	case errors.Is(err, domain.ErrForbidden):
		addFlash(c, flashError, "You are not authorized to edit this submission.")
		return redirect(c, "/dashboard")
	default:
		return err
	}
}
