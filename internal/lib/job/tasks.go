package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// Task types stored in Redis. Asynq routes on these strings.
const (
	TaskWelcome         = "email:welcome"
	TaskTranslationWarm = "translation:warm"
)

// Content kinds accepted by TaskTranslationWarm.
const (
	KindNews     = "news"
	KindGuide    = "guide"
	KindCategory = "category"
)

type WelcomeEmailPayload struct {
	To   string `json:"to"`
	Lang string `json:"lang"`
}

// TranslationWarmPayload names the entity whose translations into the
// other languages should be materialized.
type TranslationWarmPayload struct {
	Kind string `json:"kind"`
	ID   int64  `json:"id"`
}

// NewWelcomeEmailTask builds the welcome email for a new subscriber.
func NewWelcomeEmailTask(to, lang string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:   to,
		Lang: lang,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NewTranslationWarmTask builds a low priority task. The task id makes
// repeated saves of the same entity collapse into one pending task.
func NewTranslationWarmTask(kind string, id int64) (*asynq.Task, error) {
	payload, err := json.Marshal(TranslationWarmPayload{
		Kind: kind,
		ID:   id,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskTranslationWarm,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue("low"),
		asynq.Timeout(5*time.Minute),
		asynq.Unique(10*time.Minute),
	), nil
}
