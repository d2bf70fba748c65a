package logger_test

import (
	"testing"

	"github.com/deppfellow/docgen/internal/config"
	"github.com/deppfellow/docgen/internal/logger"
	"github.com/rs/zerolog"
)

func TestNewLoggerService_DisabledWithoutLicense(t *testing.T) {
	ls, err := logger.NewLoggerService(config.DefaultObservabilityConfig())
	if err != nil {
		t.Fatalf("NewLoggerService: %v", err)
	}
	if ls.GetApplication() != nil {
		t.Fatal("expected no New Relic application without a license key")
	}
	ls.Shutdown()
}

func TestNewLoggerWithService_Level(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	log := logger.NewLoggerWithService(cfg, nil)
	if got := log.GetLevel(); got != zerolog.WarnLevel {
		t.Fatalf("level = %v, want warn", got)
	}
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	log := zerolog.Nop()
	got := logger.WithTraceContext(log, nil)
	if got.GetLevel() != log.GetLevel() {
		t.Fatal("nil transaction should return the logger unchanged")
	}
}
