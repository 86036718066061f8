package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gosnews/gosnews/internal/config"
	"github.com/gosnews/gosnews/internal/database"
	"github.com/gosnews/gosnews/internal/handler"
	"github.com/gosnews/gosnews/internal/logger"
	"github.com/gosnews/gosnews/internal/repository"
	"github.com/gosnews/gosnews/internal/router"
	"github.com/gosnews/gosnews/internal/server"
	"github.com/gosnews/gosnews/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultShutdownTimeout = 30 * time.Second

func newServeCommand() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server and the background workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "apply pending database migrations before starting")

	return cmd
}

func serve(ctx context.Context, migrate bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Initialize New Relic logger service
	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	if migrate {
		if err := database.Migrate(ctx, &log, cfg); err != nil {
			log.Error().Err(err).Msg("failed to migrate database")
			return err
		}
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	repos := repository.NewRepositories(srv)
	services, err := service.NewServices(ctx, srv, repos)
	if err != nil {
		log.Error().Err(err).Msg("could not create services")
		return err
	}

	// Job handlers need the services, so the worker starts only now.
	srv.Job.SetTranslationWarmer(services.Warmer)
	if err := srv.Job.Start(); err != nil {
		log.Error().Err(err).Msg("failed to start background jobs")
		return err
	}

	handlers := handler.NewHandlers(srv, services)

	r, err := router.NewRouter(srv, handlers)
	if err != nil {
		log.Error().Err(err).Msg("failed to build router")
		return err
	}

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, &log, srv.Start, srv.Shutdown, defaultShutdownTimeout)
}

// run serves until ctx is done or start fails, then shuts down within
// timeout. A start failure is returned so the process exits non-zero.
func run(ctx context.Context, log *zerolog.Logger, start func() error, shutdown func(context.Context) error, timeout time.Duration) error {
	serveErr := make(chan error, 1)
	go func() {
		if err := start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serveErr:
		if runErr != nil {
			log.Error().Err(runErr).Msg("server stopped unexpectedly")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := shutdown(shutdownCtx); err != nil {
		return errors.Join(runErr, fmt.Errorf("server forced to shutdown: %w", err))
	}
	if runErr != nil {
		return fmt.Errorf("http server: %w", runErr)
	}

	log.Info().Msg("server exited properly")
	return nil
}
