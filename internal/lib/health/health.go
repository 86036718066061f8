// Package health probes the service's dependencies. The same Checker backs
// the /status endpoint and the periodic Monitor.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// CheckFunc returns nil when the dependency is reachable.
type CheckFunc func(ctx context.Context) error

type Result struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type Report struct {
	Status string            `json:"status"`
	Checks map[string]Result `json:"checks"`
}

func (r Report) Healthy() bool {
	return r.Status == StatusHealthy
}

type check struct {
	name string
	fn   CheckFunc
}

type Checker struct {
	mu      sync.RWMutex
	checks  []check
	timeout time.Duration
	nrApp   *newrelic.Application
	logger  *zerolog.Logger
}

// NewChecker returns a Checker that gives every probe timeout to answer.
// nrApp may be nil.
func NewChecker(timeout time.Duration, nrApp *newrelic.Application, logger *zerolog.Logger) *Checker {
	return &Checker{
		timeout: timeout,
		nrApp:   nrApp,
		logger:  logger,
	}
}

func (c *Checker) Register(name string, fn CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks = append(c.checks, check{name: name, fn: fn})
}

// Run probes every registered dependency. Any failure makes the report
// unhealthy.
func (c *Checker) Run(ctx context.Context) Report {
	c.mu.RLock()
	checks := append([]check(nil), c.checks...)
	c.mu.RUnlock()

	report := Report{
		Status: StatusHealthy,
		Checks: make(map[string]Result, len(checks)),
	}

	for _, ch := range checks {
		result := c.probe(ctx, ch)
		if result.Status != StatusHealthy {
			report.Status = StatusUnhealthy
		}
		report.Checks[ch.name] = result
	}

	return report
}

func (c *Checker) probe(ctx context.Context, ch check) Result {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	err := ch.fn(ctx)
	elapsed := time.Since(start)

	if err == nil {
		c.logger.Debug().Str("check", ch.name).Dur("response_time", elapsed).Msg("health check passed")
		return Result{Status: StatusHealthy, ResponseTime: elapsed.String()}
	}

	c.logger.Error().Err(err).Str("check", ch.name).Dur("response_time", elapsed).Msg("health check failed")

	if c.nrApp != nil {
		c.nrApp.RecordCustomEvent("HealthCheckError", map[string]interface{}{
			"check_type":       ch.name,
			"error_type":       ch.name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})
	}

	return Result{Status: StatusUnhealthy, ResponseTime: elapsed.String(), Error: err.Error()}
}
