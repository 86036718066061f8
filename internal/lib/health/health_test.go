package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newChecker() *Checker {
	logger := zerolog.Nop()
	return NewChecker(time.Second, nil, &logger)
}

func TestCheckerHealthy(t *testing.T) {
	c := newChecker()
	c.Register("database", func(context.Context) error { return nil })
	c.Register("redis", func(context.Context) error { return nil })

	report := c.Run(context.Background())
	if !report.Healthy() || len(report.Checks) != 2 {
		t.Errorf("Run() = %+v", report)
	}
}

func TestCheckerAnyFailureIsUnhealthy(t *testing.T) {
	c := newChecker()
	c.Register("database", func(context.Context) error { return nil })
	c.Register("redis", func(context.Context) error { return errors.New("connection refused") })

	report := c.Run(context.Background())
	if report.Healthy() {
		t.Fatal("Run() reported healthy with a failing check")
	}
	if got := report.Checks["redis"]; got.Status != StatusUnhealthy || got.Error != "connection refused" {
		t.Errorf("redis result = %+v", got)
	}
	if got := report.Checks["database"]; got.Status != StatusHealthy {
		t.Errorf("database result = %+v", got)
	}
}

func TestCheckerAppliesTimeout(t *testing.T) {
	logger := zerolog.Nop()
	c := NewChecker(10*time.Millisecond, nil, &logger)
	c.Register("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	if report := c.Run(context.Background()); report.Healthy() {
		t.Error("slow check should time out")
	}
}

func TestMonitorStartStop(t *testing.T) {
	logger := zerolog.Nop()
	m := NewMonitor(newChecker(), time.Hour, &logger)
	m.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	m.Stop(ctx)
}
