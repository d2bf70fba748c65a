// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and maps each path to its handler.
package router

import (
	"github.com/deppfellow/docgen/internal/handler"
	"github.com/deppfellow/docgen/internal/middleware"
	"github.com/deppfellow/docgen/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance with the global middleware chain and
// every route.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
		middlewares.RateLimit.Limit(),
		middlewares.Global.BodyLimit(),
	)

	registerSystemRoutes(router, h)
	registerDocumentRoutes(router, h)

	return router
}
