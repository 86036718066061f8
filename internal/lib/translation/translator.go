// Package translation fills in per-language content that editors have not
// written yet by calling an external machine translation service.
package translation

import (
	"context"
	"errors"
	"strings"
)

// ErrDisabled is returned by Disabled for every call.
var ErrDisabled = errors.New("translation service is disabled")

// Translator translates plain text between two language codes.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Disabled is the Translator used when no service is configured.
type Disabled struct{}

func (Disabled) Translate(context.Context, string, string, string) (string, error) {
	return "", ErrDisabled
}

// TranslateLong translates text chunk by chunk so that no single request
// exceeds chunkSize runes. Whitespace-only chunks are copied untouched.
func TranslateLong(ctx context.Context, t Translator, text, source, target string, chunkSize int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	var b strings.Builder
	for _, c := range chunkText(text, chunkSize) {
		if strings.TrimSpace(c.text) == "" {
			b.WriteString(c.text)
		} else {
			out, err := t.Translate(ctx, c.text, source, target)
			if err != nil {
				return "", err
			}
			b.WriteString(out)
		}
		b.WriteString(c.sep)
	}
	return b.String(), nil
}
