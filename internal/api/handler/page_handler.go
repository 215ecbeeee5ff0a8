package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/yritu05/Scholar-Connect/internal/core/ports"
)

// PageHandler serves the pages without a use case of their own.
type PageHandler struct {
	notificationService ports.NotificationService
}

func NewPageHandler(notificationService ports.NotificationService) *PageHandler {
	return &PageHandler{notificationService: notificationService}
}

func (h *PageHandler) Index(c echo.Context) error {
	return render(c, "index", "Welcome", nil)
}

// Notifications shows the shared activity log, oldest first.
func (h *PageHandler) Notifications(c echo.Context) error {
	notes, err := h.notificationService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return render(c, "notifications", "Notifications", notes)
}
