package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	values := [][2]string{
		{"GOSNEWS_PRIMARY.ENV", "local"},
		{"GOSNEWS_SERVER.PORT", "8080"},
		{"GOSNEWS_SERVER.READ_TIMEOUT", "30"},
		{"GOSNEWS_SERVER.WRITE_TIMEOUT", "30"},
		{"GOSNEWS_SERVER.IDLE_TIMEOUT", "60"},
		{"GOSNEWS_SERVER.CORS_ALLOWED_ORIGINS", "http://localhost:3000"},
		{"GOSNEWS_DATABASE.HOST", "localhost"},
		{"GOSNEWS_DATABASE.PORT", "5432"},
		{"GOSNEWS_DATABASE.USER", "gosnews"},
		{"GOSNEWS_DATABASE.PASSWORD", "secret"},
		{"GOSNEWS_DATABASE.NAME", "gosnews"},
		{"GOSNEWS_DATABASE.SSL_MODE", "disable"},
		{"GOSNEWS_DATABASE.MAX_OPEN_CONNS", "10"},
		{"GOSNEWS_DATABASE.MAX_IDLE_CONNS", "5"},
		{"GOSNEWS_DATABASE.CONN_MAX_LIFETIME", "300"},
		{"GOSNEWS_DATABASE.CONN_MAX_IDLE_TIME", "60"},
		{"GOSNEWS_REDIS.ADDRESS", "localhost:6379"},
		{"GOSNEWS_AUTH.SECRET_KEY", "sk_test"},
		{"GOSNEWS_AUTH.ADMIN_USERNAME", "admin"},
		{"GOSNEWS_AUTH.ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv"},
		{"GOSNEWS_INTEGRATION.RESEND_API_KEY", "re_test"},
	}
	for _, kv := range values {
		t.Setenv(kv[0], kv[1])
	}
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want 5432", cfg.Database.Port)
	}
	if !cfg.IsLocal() {
		t.Errorf("IsLocal() = false for env %q", cfg.Primary.Env)
	}
	if cfg.Observability == nil {
		t.Fatal("Observability defaults were not injected")
	}
	if cfg.Observability.ServiceName != ServiceName {
		t.Errorf("ServiceName = %q, want %q", cfg.Observability.ServiceName, ServiceName)
	}
	if cfg.Observability.Environment != "local" {
		t.Errorf("Environment = %q, want local", cfg.Observability.Environment)
	}
	if cfg.Media.Driver != MediaDriverLocal || cfg.Media.URLPrefix != "/media" {
		t.Errorf("Media = %+v, want local driver served at /media", cfg.Media)
	}
	if cfg.Frontend.Dir != "frontend/out" || cfg.Frontend.Index != "index.html" {
		t.Errorf("Frontend = %+v, want defaults", cfg.Frontend)
	}
	if cfg.Translation.Enabled {
		t.Error("Translation.Enabled should default to false")
	}
	if cfg.Translation.ChunkSize != 4500 {
		t.Errorf("Translation.ChunkSize = %d, want 4500", cfg.Translation.ChunkSize)
	}
	if cfg.Server.RateLimit != 20 {
		t.Errorf("Server.RateLimit = %v, want 20", cfg.Server.RateLimit)
	}
	if cfg.Integration.EmailFrom == "" {
		t.Error("Integration.EmailFrom should receive a default")
	}
}

func TestLoadConfigOverridesOptionalBlocks(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GOSNEWS_TRANSLATION.ENABLED", "true")
	t.Setenv("GOSNEWS_TRANSLATION.TIMEOUT", "3s")
	t.Setenv("GOSNEWS_FRONTEND.DIR", "/srv/frontend")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if !cfg.Translation.Enabled {
		t.Error("Translation.Enabled = false, want true")
	}
	if cfg.Translation.Timeout != 3*time.Second {
		t.Errorf("Translation.Timeout = %v, want 3s", cfg.Translation.Timeout)
	}
	if cfg.Translation.CacheTTL != DefaultTranslationConfig().CacheTTL {
		t.Errorf("Translation.CacheTTL = %v, want default to survive", cfg.Translation.CacheTTL)
	}
	if cfg.Frontend.Dir != "/srv/frontend" {
		t.Errorf("Frontend.Dir = %q", cfg.Frontend.Dir)
	}
	if cfg.Frontend.Index != "index.html" {
		t.Errorf("Frontend.Index = %q, want default to survive", cfg.Frontend.Index)
	}
}

func TestLoadConfigMissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GOSNEWS_DATABASE.HOST", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig() error = nil, want validation failure")
	}
}

func TestLoadConfigRejectsIncompleteS3(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GOSNEWS_MEDIA.DRIVER", MediaDriverS3)

	if _, err := LoadConfig(); err == nil {
		t.Fatal("LoadConfig() error = nil, want s3 bucket requirement")
	}
}

func TestObservabilityValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ObservabilityConfig)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *ObservabilityConfig) {}},
		{name: "bad level", mutate: func(c *ObservabilityConfig) { c.Logging.Level = "verbose" }, wantErr: true},
		{name: "negative threshold", mutate: func(c *ObservabilityConfig) { c.Logging.SlowQueryThreshold = -time.Second }, wantErr: true},
		{name: "unknown check", mutate: func(c *ObservabilityConfig) { c.HealthChecks.Checks = []string{"kafka"} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultObservabilityConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	if got := cfg.GetLogLevel(); got != "info" {
		t.Errorf("production GetLogLevel() = %q, want info", got)
	}

	cfg.Environment = "development"
	if got := cfg.GetLogLevel(); got != "debug" {
		t.Errorf("development GetLogLevel() = %q, want debug", got)
	}

	cfg.Logging.Level = "warn"
	if got := cfg.GetLogLevel(); got != "warn" {
		t.Errorf("explicit GetLogLevel() = %q, want warn", got)
	}
}
