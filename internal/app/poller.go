package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/smsshield/internal/state"
)

const (
	defaultPollInterval = 30 * time.Second
	maxBackoff          = 5 * time.Minute
	pingTimeout         = 3 * time.Second
)

// Pinger checks that the classification backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StartPoller launches a background goroutine that checks backend
// reachability right away and then at a fixed cadence, backing off while
// checks fail. It returns immediately. Results only feed the status
// indicator; classification requests are never retried.
func StartPoller(ctx context.Context, health *state.Health, pinger Pinger, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("component", "health")

	go func() {
		timer := time.NewTimer(0)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			failures := check(ctx, health, pinger, logger)
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
}

// check runs one ping and returns the consecutive failure count.
func check(ctx context.Context, health *state.Health, pinger Pinger, logger *slog.Logger) int {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := pinger.Ping(pingCtx)
	if ctx.Err() != nil {
		return 0
	}
	before := health.Snapshot()
	health.Record(err)
	after := health.Snapshot()

	switch {
	case err != nil && (before.Reachable || !before.Checked):
		logger.Warn("classifier backend unreachable", "error", err)
	case err == nil && !before.Reachable:
		logger.Info("classifier backend reachable")
	}
	return after.Failures
}

// calculateBackoff doubles the interval per consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
