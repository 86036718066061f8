package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/gosnews/gosnews/internal/config"
)

// Client talks to a LibreTranslate-compatible HTTP service.
type Client struct {
	http   *resty.Client
	apiKey string
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

func NewClient(cfg config.TranslationConfig) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
			SetTimeout(cfg.Timeout).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json"),
		apiKey: cfg.APIKey,
	}
}

func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	if strings.TrimSpace(text) == "" || source == target {
		return text, nil
	}

	var result translateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(translateRequest{
			Q:      text,
			Source: source,
			Target: target,
			Format: "text",
			APIKey: c.apiKey,
		}).
		SetResult(&result).
		SetError(&result).
		Post("/translate")
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}

	if resp.IsError() {
		if result.Error != "" {
			return "", fmt.Errorf("translate service returned %d: %s", resp.StatusCode(), result.Error)
		}
		return "", fmt.Errorf("translate service returned %d", resp.StatusCode())
	}

	if result.TranslatedText == "" {
		return "", fmt.Errorf("translate service returned no text")
	}

	return result.TranslatedText, nil
}
