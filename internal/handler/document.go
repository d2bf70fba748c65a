package handler

import (
	"net/http"

	"github.com/deppfellow/docgen/internal/model"
	"github.com/deppfellow/docgen/internal/server"
	"github.com/deppfellow/docgen/internal/service"
	"github.com/labstack/echo/v4"
)

// DocumentHandler serves the invoice and voucher rendering endpoints.
type DocumentHandler struct {
	Handler
	documents *service.DocumentService
}

func NewDocumentHandler(s *server.Server, documents *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		Handler:   NewHandler(s),
		documents: documents,
	}
}

// Billing handles POST /api/billing.
func (h *DocumentHandler) Billing() echo.HandlerFunc {
	return HandleFile(h.Handler, func(c echo.Context, inv *model.Invoice) (*model.Attachment, error) {
		return h.documents.Invoice(c.Request().Context(), inv)
	}, http.StatusOK, func() *model.Invoice { return &model.Invoice{} })
}

// Voucher handles POST /api/voucher.
func (h *DocumentHandler) Voucher() echo.HandlerFunc {
	return HandleFile(h.Handler, func(c echo.Context, v *model.Voucher) (*model.Attachment, error) {
		return h.documents.Voucher(c.Request().Context(), v)
	}, http.StatusOK, func() *model.Voucher { return &model.Voucher{} })
}
