package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/yritu05/Scholar-Connect/internal/api/middleware"
	"github.com/yritu05/Scholar-Connect/internal/api/view"
	"github.com/yritu05/Scholar-Connect/internal/core/domain"
)

// currentUserID returns the authenticated user. Routes behind RequireAuth
// always have one; the check guards against a missing middleware.
func currentUserID(c echo.Context) (int64, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "Please log in to continue.")
	}
	return id, nil
}

// pathID parses a numeric path parameter. Anything else is a 404, the same
// as an unmatched route.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.ErrNotFound
	}
	return id, nil
}

func newPage(c echo.Context, title string, data any) view.Page {
	_, authed := middleware.UserID(c)
	return view.Page{
		Title:         title,
		Flashes:       popFlashes(c),
		Authenticated: authed,
		Categories:    domain.Categories(),
		Data:          data,
	}
}

func render(c echo.Context, name, title string, data any) error {
	return c.Render(http.StatusOK, name, newPage(c, title, data))
}

func redirect(c echo.Context, to string) error {
	return c.Redirect(http.StatusSeeOther, to)
}
