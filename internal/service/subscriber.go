package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/gosnews/gosnews/internal/lib/i18n"
	"github.com/gosnews/gosnews/internal/lib/job"
	"github.com/gosnews/gosnews/internal/model"
	"github.com/rs/zerolog"
)

type SubscriberService struct {
	store  SubscriberStore
	jobs   Enqueuer
	logger *zerolog.Logger
}

func NewSubscriberService(store SubscriberStore, jobs Enqueuer, logger *zerolog.Logger) *SubscriberService {
	return &SubscriberService{
		store:  store,
		jobs:   jobs,
		logger: logger,
	}
}

// Subscribe stores the subscriber and, when an email address was given,
// queues the welcome email.
func (s *SubscriberService) Subscribe(ctx context.Context, payload *model.SubscribeRequest) (*model.Subscriber, error) {
	lang := i18n.OrDefault(payload.Lang)

	sub, err := s.store.Create(ctx, payload.Email, payload.Phone, lang)
	if err != nil {
		return nil, err
	}

	if sub.Email == "" || s.jobs == nil {
		return sub, nil
	}

	task, err := job.NewWelcomeEmailTask(sub.Email, lang)
	if err == nil {
		err = s.jobs.Enqueue(ctx, task)
	}
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("subscriber_id", sub.ID).
			Msg("failed to enqueue welcome email")
	}

	return sub, nil
}

func (s *SubscriberService) List(ctx context.Context, search string, q model.PageQuery) (*model.PaginatedResponse[model.Subscriber], error) {
	page, pageSize, offset := q.Limits()

	items, total, err := s.store.List(ctx, search, pageSize, offset)
	if err != nil {
		return nil, err
	}

	resp := model.NewPaginatedResponse(items, total, page, pageSize)
	return &resp, nil
}

// Export writes every subscriber as CSV, oldest pages first as the store
// returns them.
func (s *SubscriberService) Export(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "email", "phone", "lang", "created_at"}); err != nil {
		return nil, err
	}

	for offset := 0; ; offset += model.MaxPageSize {
		items, total, err := s.store.List(ctx, "", model.MaxPageSize, offset)
		if err != nil {
			return nil, err
		}
		for _, sub := range items {
			record := []string{
				strconv.FormatInt(sub.ID, 10),
				sub.Email,
				sub.Phone,
				sub.Lang,
				sub.CreatedAt.UTC().Format(time.RFC3339),
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
		if len(items) == 0 || offset+len(items) >= total {
			break
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
