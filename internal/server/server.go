// Package server defines the Server container that composes the app's
// main dependencies and owns their lifecycle: configuration, logging and
// New Relic, the database pool, the Redis client, the background job
// service, dependency health checks and the http.Server itself.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gosnews/gosnews/internal/config"
	"github.com/gosnews/gosnews/internal/database"
	"github.com/gosnews/gosnews/internal/lib/health"
	"github.com/gosnews/gosnews/internal/lib/job"
	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	loggerPkg "github.com/gosnews/gosnews/internal/logger"
)

// Server is the application container that holds shared resources. It is
// not the HTTP server itself.
type Server struct {
	Config *config.Config
	Logger *zerolog.Logger

	// LoggerService holds the New Relic application, which is nil when
	// New Relic is disabled.
	LoggerService *loggerPkg.LoggerService

	DB    *database.Database
	Redis *redis.Client

	// Job enqueues and runs background tasks. The worker is started by
	// the caller once every task handler is registered.
	Job *job.JobService

	// Health probes the database and Redis for /status and Monitor.
	Health  *health.Checker
	Monitor *health.Monitor

	httpServer *http.Server
}

// New connects to PostgreSQL and Redis and builds the job service and
// health checks. A Redis outage does not block startup: the site keeps
// serving pages without the translation cache and queued jobs.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(cfg, logger, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Address,
	})

	var nrApp *newrelic.Application
	if loggerService != nil {
		nrApp = loggerService.GetApplication()
	}
	if nrApp != nil {
		redisClient.AddHook(nrredis.NewHook(redisClient.Options()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Error().Err(err).Msg("Failed to connect to Redis, continuing without Redis")
	}

	hc := cfg.Observability.HealthChecks
	checker := newChecker(hc, nrApp, logger, db, redisClient)

	var monitor *health.Monitor
	if hc.Enabled {
		monitor = health.NewMonitor(checker, hc.Interval, logger)
	}

	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
		Redis:         redisClient,
		Job:           job.NewJobService(logger, cfg),
		Health:        checker,
		Monitor:       monitor,
	}, nil
}

// newChecker registers the probes named in cfg.Checks.
func newChecker(cfg config.HealthChecksConfig, nrApp *newrelic.Application, logger *zerolog.Logger, db *database.Database, rdb *redis.Client) *health.Checker {
	checker := health.NewChecker(cfg.Timeout, nrApp, logger)

	for _, name := range cfg.Checks {
		switch name {
		case "database":
			checker.Register(name, func(ctx context.Context) error {
				return db.Pool.Ping(ctx)
			})
		case "redis":
			checker.Register(name, func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			})
		default:
			logger.Warn().Str("check", name).Msg("unknown health check, skipping")
		}
	}

	return checker
}

// SetupHTTPServer configures the internal net/http server around handler.
// Timeouts in the config are seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start starts the health monitor and blocks serving HTTP.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	if s.Monitor != nil {
		s.Monitor.Start()
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting requests, waits for in-flight ones until ctx
// expires and then releases every dependency.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown HTTP server: %w", err))
		}
	}

	if s.Monitor != nil {
		s.Monitor.Stop(ctx)
	}

	if s.Job != nil {
		s.Job.Stop()
	}

	if err := s.Redis.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close redis client: %w", err))
	}

	if err := s.DB.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close database connection: %w", err))
	}

	return errors.Join(errs...)
}
