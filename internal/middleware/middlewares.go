package middleware

import (
	"github.com/deppfellow/docgen/internal/server"
)

// Middlewares groups every middleware component so router setup receives one
// value instead of many.
type Middlewares struct {
	// Global holds CORS, body limit, request logging, recovery, secure headers
	// and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer attaches the request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing installs New Relic transactions. It is a no-op when New Relic is off.
	Tracing *TracingMiddleware

	// RateLimit enforces the per-client limit and reports rejections.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components from the application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
