package service

import (
	"github.com/deppfellow/docgen/internal/server"
)

// Services groups the business layer so handlers receive one value.
type Services struct {
	Document *DocumentService
}

// NewServices wires every service against the application container.
func NewServices(s *server.Server) (*Services, error) {
	return &Services{
		Document: NewDocumentService(s.Renderer, s.Logger),
	}, nil
}
