package router

import (
	"github.com/deppfellow/docgen/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerDocumentRoutes(r *echo.Echo, h *handler.Handlers) {
	api := r.Group("/api")

	api.POST("/billing", h.Document.Billing())
	api.POST("/voucher", h.Document.Voucher())
}
