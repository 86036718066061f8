// Package job runs background work on Asynq, a Redis backed queue.
//
// The asynq.Client enqueues tasks from request handlers; the asynq.Server
// started by Start pulls them from Redis and dispatches them by type.
package job

import (
	"context"

	"github.com/gosnews/gosnews/internal/config"
	"github.com/gosnews/gosnews/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	logger *zerolog.Logger

	welcome WelcomeSender
	warmer  TranslationWarmer
}

func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	// Queue weights split the workers roughly 6/3/1.
	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger: newAsynqLogger(logger),
		},
	)

	return &JobService{
		Client:  client,
		server:  server,
		logger:  logger,
		welcome: email.NewClient(cfg, logger),
	}
}

// SetTranslationWarmer registers the handler of TaskTranslationWarm. It
// must be called before Start.
func (j *JobService) SetTranslationWarmer(w TranslationWarmer) {
	j.warmer = w
}

// Enqueue pushes a task built by one of the New*Task constructors.
func (j *JobService) Enqueue(ctx context.Context, task *asynq.Task) error {
	_, err := j.Client.EnqueueContext(ctx, task)
	return err
}

func (j *JobService) mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)
	mux.HandleFunc(TaskTranslationWarm, j.handleTranslationWarmTask)
	return mux
}

// Start launches the worker server in the background.
func (j *JobService) Start() error {
	j.logger.Info().Msg("Starting background job server")
	return j.server.Start(j.mux())
}

func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}
