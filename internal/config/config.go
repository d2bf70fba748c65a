// Package config loads the service configuration from the environment.
//
// Variables are read with the DOCGEN_ prefix (a `.env` file in the working
// directory is loaded first), mapped onto the Config tree and validated so a
// bad deployment fails at startup rather than on the first request.
//
// Nesting uses "." or "__" between section and key:
//
//	DOCGEN_SERVER.PORT=8080
//	DOCGEN_RATE_LIMIT__ENABLED=true
//	DOCGEN_OBSERVABILITY__LOGGING__LEVEL=debug
//
// The bare PORT variable is honored when no prefixed port is set.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process environment.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	envPrefix   = "DOCGEN_"
	serviceName = "docgen"
)

// Config is the root configuration object for the application.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	RateLimit     RateLimitConfig      `koanf:"rate_limit"`
	Render        RenderConfig         `koanf:"render"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`

	// BodyLimit caps request bodies, in echo's size notation ("10M", "512K").
	BodyLimit string `koanf:"body_limit" validate:"required"`
}

// RateLimitConfig controls the per-client request limiter.
type RateLimitConfig struct {
	Enabled           bool          `koanf:"enabled"`
	RequestsPerSecond float64       `koanf:"requests_per_second" validate:"gt=0"`
	Burst             int           `koanf:"burst" validate:"min=1"`
	ExpiresIn         time.Duration `koanf:"expires_in" validate:"min=1s"`
}

// RenderConfig holds the PDF output options.
type RenderConfig struct {
	Compress bool   `koanf:"compress"`
	Creator  string `koanf:"creator"`
	Author   string `koanf:"author"`
}

// DefaultConfig returns the configuration used for every key the environment
// does not set.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "3000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			BodyLimit:          "10M",
		},
		RateLimit: RateLimitConfig{
			Enabled:           false,
			RequestsPerSecond: 10,
			Burst:             30,
			ExpiresIn:         3 * time.Minute,
		},
		Render: RenderConfig{
			Compress: true,
			Creator:  serviceName,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// envKey maps DOCGEN_SERVER__PORT and DOCGEN_SERVER.PORT to "server.port".
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// LoadConfig reads the environment on top of DefaultConfig, validates the
// result and returns it.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables")
	}

	mainConfig := DefaultConfig()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	if !k.Exists("server.port") {
		if port := os.Getenv("PORT"); port != "" {
			mainConfig.Server.Port = port
		}
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config.
	mainConfig.Observability.ServiceName = serviceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid observability config")
	}

	return mainConfig, nil
}
