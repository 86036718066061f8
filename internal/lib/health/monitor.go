package health

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Monitor runs a Checker on a fixed schedule and logs failures.
type Monitor struct {
	cron    *cron.Cron
	checker *Checker
	logger  *zerolog.Logger
}

func NewMonitor(checker *Checker, interval time.Duration, logger *zerolog.Logger) *Monitor {
	m := &Monitor{
		cron:    cron.New(),
		checker: checker,
		logger:  logger,
	}
	m.cron.Schedule(cron.Every(interval), cron.FuncJob(m.runOnce))
	return m
}

func (m *Monitor) runOnce() {
	report := m.checker.Run(context.Background())
	if !report.Healthy() {
		m.logger.Warn().Interface("checks", report.Checks).Msg("dependencies unhealthy")
	}
}

func (m *Monitor) Start() {
	m.logger.Info().Msg("starting health monitor")
	m.cron.Start()
}

// Stop waits for a running check to finish or ctx to expire.
func (m *Monitor) Stop(ctx context.Context) {
	select {
	case <-m.cron.Stop().Done():
	case <-ctx.Done():
	}
}
