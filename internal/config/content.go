package config

import (
	"fmt"
	"time"
)

// TranslationConfig configures the machine translation service used to
// fill in missing per-language content.
type TranslationConfig struct {
	// Enabled toggles calls to the external service. When disabled the
	// source text is served for every language without a translation row.
	Enabled bool   `koanf:"enabled"`
	BaseURL string `koanf:"base_url"`
	APIKey  string `koanf:"api_key"`

	Timeout time.Duration `koanf:"timeout"`

	// CacheTTL bounds how long translated strings stay in Redis.
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// ChunkSize is the largest piece of a long text sent in one request.
	ChunkSize int `koanf:"chunk_size"`

	// MaxConcurrency caps parallel entity localization in list endpoints.
	MaxConcurrency int `koanf:"max_concurrency"`
}

func DefaultTranslationConfig() TranslationConfig {
	return TranslationConfig{
		Enabled:        false,
		BaseURL:        "http://localhost:5000",
		Timeout:        15 * time.Second,
		CacheTTL:       30 * 24 * time.Hour,
		ChunkSize:      4500,
		MaxConcurrency: 4,
	}
}

// Media storage drivers.
const (
	MediaDriverLocal = "local"
	MediaDriverS3    = "s3"
)

// MediaConfig selects where uploaded images are stored.
//
// With the local driver files are written below LocalDir and served at
// URLPrefix. With the s3 driver they are uploaded to Bucket and addressed
// through PublicURL.
type MediaConfig struct {
	Driver    string `koanf:"driver"`
	LocalDir  string `koanf:"local_dir"`
	URLPrefix string `koanf:"url_prefix"`

	// MaxUploadBytes limits a single uploaded file.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	S3 S3Config `koanf:"s3"`
}

// S3Config holds S3 (or S3-compatible, e.g. R2/MinIO) settings.
type S3Config struct {
	Bucket          string `koanf:"bucket"`
	Region          string `koanf:"region"`
	Endpoint        string `koanf:"endpoint"`
	AccessKeyID     string `koanf:"access_key_id"`
	SecretAccessKey string `koanf:"secret_access_key"`
	PublicURL       string `koanf:"public_url"`
	UsePathStyle    bool   `koanf:"use_path_style"`
}

func DefaultMediaConfig() MediaConfig {
	return MediaConfig{
		Driver:         MediaDriverLocal,
		LocalDir:       "media",
		URLPrefix:      "/media",
		MaxUploadBytes: 10 << 20,
		S3: S3Config{
			Region: "us-east-1",
		},
	}
}

// Validate checks driver-specific requirements.
func (c *MediaConfig) Validate() error {
	switch c.Driver {
	case MediaDriverLocal:
		if c.LocalDir == "" {
			return fmt.Errorf("media local_dir is required for the local driver")
		}
	case MediaDriverS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("media s3.bucket is required for the s3 driver")
		}
		if c.S3.PublicURL == "" {
			return fmt.Errorf("media s3.public_url is required for the s3 driver")
		}
	default:
		return fmt.Errorf("unknown media driver: %s", c.Driver)
	}
	return nil
}

// FrontendConfig points at the pre-built static frontend.
type FrontendConfig struct {
	Dir   string `koanf:"dir"`
	Index string `koanf:"index"`
}

func DefaultFrontendConfig() FrontendConfig {
	return FrontendConfig{
		Dir:   "frontend/out",
		Index: "index.html",
	}
}
