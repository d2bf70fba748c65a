package handler

import (
	"github.com/deppfellow/docgen/internal/server"
	"github.com/deppfellow/docgen/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Health   *HealthHandler
	Page     *PageHandler
	Document *DocumentHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		Page:     NewPageHandler(s),
		Document: NewDocumentHandler(s, services.Document),
	}
}
