package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/docgen/internal/middleware"
	"github.com/deppfellow/docgen/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared app dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth renders a probe page to prove the PDF pipeline works.
//
// It returns 200 when the probe succeeds and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
	}
	checks := map[string]interface{}{}
	response["checks"] = checks

	probeStart := time.Now()
	if err := h.server.Renderer.Probe(); err != nil {
		checks["renderer"] = map[string]interface{}{
			"status":        "unhealthy",
			"response_time": time.Since(probeStart).String(),
			"error":         err.Error(),
		}
		response["status"] = "unhealthy"

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(probeStart)).
			Msg("renderer health check failed")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
				"check_type":       "renderer",
				"operation":        "health_check",
				"response_time_ms": time.Since(probeStart).Milliseconds(),
				"error_message":    err.Error(),
			})
		}

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	checks["renderer"] = map[string]interface{}{
		"status":        "healthy",
		"response_time": time.Since(probeStart).String(),
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
