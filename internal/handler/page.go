package handler

import (
	"net/http"
	"slices"
	"strings"

	"github.com/deppfellow/docgen/internal/errs"
	"github.com/deppfellow/docgen/internal/server"
	"github.com/deppfellow/docgen/web"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PageHandler serves the embedded generator forms.
type PageHandler struct {
	Handler
}

func NewPageHandler(s *server.Server) *PageHandler {
	return &PageHandler{
		Handler: NewHandler(s),
	}
}

// ServePage handles GET /pages/*. Identifiers containing "." are refused
// before the allow-list is consulted, so traversal attempts never reach the
// lookup.
func (h *PageHandler) ServePage(c echo.Context) error {
	page := c.Param("*")

	if strings.Contains(page, ".") {
		return errs.NewForbiddenError("Direct file access not allowed")
	}
	if !slices.Contains(web.Pages, page) {
		return errs.NewNotFoundError("Page not found", nil)
	}

	html, err := web.Page(page)
	if err != nil {
		return errors.Wrapf(err, "read page %s", page)
	}

	c.Response().Header().Set("Cache-Control", "no-cache")

	return c.HTMLBlob(http.StatusOK, html)
}

// Root handles GET / as a plain liveness check.
func (h *PageHandler) Root(c echo.Context) error {
	return c.String(http.StatusOK, "Server is running")
}
