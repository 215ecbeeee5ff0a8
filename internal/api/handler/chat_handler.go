package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yritu05/Scholar-Connect/internal/api/metrics"
	"github.com/yritu05/Scholar-Connect/internal/core/domain"
	"github.com/yritu05/Scholar-Connect/internal/core/ports"
)

type ChatHandler struct {
	chatService ports.ChatService
}

func NewChatHandler(chatService ports.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Partners lists everyone the current user has exchanged messages with.
func (h *ChatHandler) Partners(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	partners, err := h.chatService.Partners(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return render(c, "chats", "Chats", partners)
}

func (h *ChatHandler) Thread(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	recipientID, err := pathID(c, "recipientId")
	if err != nil {
		return err
	}

	thread, err := h.chatService.Thread(c.Request().Context(), userID, recipientID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			addFlash(c, flashError, "User not found.")
			return redirect(c, "/chats")
		}
		return err
	}
	return render(c, "chat", "Chat with "+thread.Recipient.Username, thread)
}

// Send appends a message and redirects back to the thread. Blank messages
// are ignored.
func (h *ChatHandler) Send(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	recipientID, err := pathID(c, "recipientId")
	if err != nil {
		return err
	}
	back := fmt.Sprintf("/chat/%d", recipientID)

	var form chatForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission.")
	}
	if err := c.Validate(&form); err != nil {
		addFlash(c, flashError, validationMessage(err))
		return redirect(c, back)
	}

	_, err = h.chatService.Send(c.Request().Context(), userID, recipientID, form.Message)
	switch {
	case err == nil:
		metrics.MessagesSentTotal.Inc()
	case errors.Is(err, domain.ErrValidation):
		// blank message, nothing sent
	case errors.Is(err, domain.ErrUserNotFound):
		addFlash(c, flashError, "User not found.")
		return redirect(c, "/chats")
	default:
		return err
	}
	return redirect(c, back)
}
