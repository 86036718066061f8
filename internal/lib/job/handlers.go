package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// TranslationWarmer materializes translations of one entity into every
// supported language.
type TranslationWarmer interface {
	WarmTranslations(ctx context.Context, kind string, id int64) error
}

// WelcomeSender delivers the subscriber welcome email.
type WelcomeSender interface {
	SendWelcomeEmail(ctx context.Context, to, lang string) error
}

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Processing welcome email task")

	if err := j.welcome.SendWelcomeEmail(ctx, p.To, p.Lang); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send welcome email")
		return err
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Successfully sent welcome email")

	return nil
}

func (j *JobService) handleTranslationWarmTask(ctx context.Context, t *asynq.Task) error {
	var p TranslationWarmPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal translation warm payload: %w: %w", err, asynq.SkipRetry)
	}

	if j.warmer == nil {
		j.logger.Warn().Str("kind", p.Kind).Int64("id", p.ID).Msg("no translation warmer registered, dropping task")
		return nil
	}

	if err := j.warmer.WarmTranslations(ctx, p.Kind, p.ID); err != nil {
		j.logger.Error().
			Str("kind", p.Kind).
			Int64("id", p.ID).
			Err(err).
			Msg("Failed to warm translations")
		return err
	}

	j.logger.Debug().Str("kind", p.Kind).Int64("id", p.ID).Msg("Warmed translations")
	return nil
}
