package logger

import (
	"testing"

	"github.com/gosnews/gosnews/internal/config"
	"github.com/rs/zerolog"
)

func TestGetPgxTraceLogLevel(t *testing.T) {
	tests := []struct {
		level zerolog.Level
		want  int
	}{
		{zerolog.TraceLevel, 6},
		{zerolog.DebugLevel, 5},
		{zerolog.InfoLevel, 4},
		{zerolog.WarnLevel, 3},
		{zerolog.ErrorLevel, 2},
		{zerolog.Disabled, 1},
	}

	for _, tt := range tests {
		if got := GetPgxTraceLogLevel(tt.level); got != tt.want {
			t.Errorf("GetPgxTraceLogLevel(%v) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestNewLoggerUsesConfiguredLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "development"
	cfg.Logging.Level = "warn"

	logger := NewLogger(cfg)
	if logger.GetLevel() != zerolog.WarnLevel {
		t.Errorf("level = %v, want warn", logger.GetLevel())
	}
}

func TestLoggerServiceWithoutLicense(t *testing.T) {
	service := NewLoggerService(config.DefaultObservabilityConfig())
	if service.GetApplication() != nil {
		t.Error("GetApplication() should be nil without a license key")
	}
	service.Shutdown()

	var nilService *LoggerService
	if nilService.GetApplication() != nil {
		t.Error("nil service should report no application")
	}
}

func TestWithTraceContextNilTransaction(t *testing.T) {
	logger := zerolog.Nop()
	if got := WithTraceContext(logger, nil); got.GetLevel() != logger.GetLevel() {
		t.Error("nil transaction should return the logger unchanged")
	}
}
