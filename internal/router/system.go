package router

import (
	"github.com/deppfellow/docgen/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the liveness, health and page endpoints.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Page.Root)
	r.GET("/status", h.Health.CheckHealth)

	// Wildcard so identifiers with "/" or ".." reach the handler and are refused there.
	r.GET("/pages/*", h.Page.ServePage)
}
