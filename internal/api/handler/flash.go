package handler

import (
	"encoding/gob"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/yritu05/Scholar-Connect/internal/api/view"
)

// FlashSession names the cookie session that carries flash messages.
const FlashSession = "sc_flash"

const (
	flashSuccess = "success"
	flashError   = "error"
)

func init() {
	gob.Register(view.Flash{})
}

// addFlash queues a message for the next rendered page. Without a session
// store the message is dropped.
func addFlash(c echo.Context, kind, message string) {
	sess, err := session.Get(FlashSession, c)
	if err != nil {
		return
	}
	sess.AddFlash(view.Flash{Kind: kind, Message: message})
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Warnf("save flash: %v", err)
	}
}

// popFlashes returns and clears the queued messages.
func popFlashes(c echo.Context) []view.Flash {
	sess, err := session.Get(FlashSession, c)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Warnf("clear flashes: %v", err)
	}

	out := make([]view.Flash, 0, len(raw))
	for _, f := range raw {
		if fl, ok := f.(view.Flash); ok {
			out = append(out, fl)
		}
	}
	return out
}
