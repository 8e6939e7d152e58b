// Package scheduler runs the periodic budget pacing control loop.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"desk-pacing/internal/core/port"
)

// Scheduler re-evaluates every owner's campaigns at a fixed interval. Each
// cycle is an independent unit of work that reads fresh state from the
// store; nothing carries over between ticks, so a cycle abandoned on
// shutdown needs no recovery.
type Scheduler struct {
	svc          port.PacingUseCase
	repo         port.CampaignRepository
	logger       *slog.Logger
	interval     time.Duration
	storeTimeout time.Duration
}

// New returns a scheduler polling at the given interval. Non-positive
// intervals fall back to 60 seconds and a non-positive store timeout to 5.
func New(svc port.PacingUseCase, repo port.CampaignRepository, logger *slog.Logger, interval, storeTimeout time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	if storeTimeout <= 0 {
		storeTimeout = 5 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{svc: svc, repo: repo, logger: logger, interval: interval, storeTimeout: storeTimeout}
}

// Run polls until ctx is canceled. An immediate first cycle runs before the
// ticker so a fresh process does not wait a full interval.
func (s *Scheduler) Run(ctx context.Context) {
	s.tick(ctx)

	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	// tick runs synchronously in the select loop, so a hung store read
	// here would starve the ticker; bound it like every other store call.
	listCtx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	owners, err := s.repo.ListActiveOwners(listCtx)
	cancel()
	if err != nil {
		s.logger.Warn("owner listing failed, cycle skipped", slog.Any("error", err))
		return
	}
	for _, owner := range owners {
		if ctx.Err() != nil {
			return
		}
		results, err := s.svc.EvaluateAllForOwner(ctx, owner)
		if err != nil {
			s.logger.Warn("owner evaluation failed",
				slog.String("owner_id", owner),
				slog.Any("error", err))
			continue
		}
		var alerts, paused int
		for _, r := range results {
			alerts += len(r.Alerts)
			if r.Pause != nil && r.Pause.Paused {
				paused++
			}
		}
		s.logger.Info("pacing cycle complete",
			slog.String("owner_id", owner),
			slog.Int("campaigns", len(results)),
			slog.Int("alerts", alerts),
			slog.Int("paused", paused))
	}
}
