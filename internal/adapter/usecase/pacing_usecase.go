package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"desk-pacing/internal/core/domain"
	"desk-pacing/internal/core/port"
)

// PacingUseCase implements the budget pacing control loop. It orchestrates
// the campaign store, the clock and the alert publisher to run the
// snapshot → alerts → pause pipeline for one campaign or a whole owner.
type PacingUseCase struct {
	repo   port.CampaignRepository
	clock  port.Clock
	alerts port.AlertPublisher
	logger *slog.Logger

	storeTimeout time.Duration
	concurrency  int
	autoPause    bool
}

// Params tunes the engine. Zero values fall back to the defaults used by
// the periodic scheduler.
type Params struct {
	// StoreTimeout bounds every store round trip of a single campaign
	// evaluation. On timeout the campaign is skipped for that cycle.
	StoreTimeout time.Duration
	// Concurrency caps how many campaigns of one owner are evaluated in
	// parallel.
	Concurrency int
	// AutoPause enables the automatic active → paused transition for
	// overspending campaigns. Manual pausing works regardless.
	AutoPause bool
}

// New creates a pacing engine. A nil clock falls back to the system clock
// and a nil publisher disables alert forwarding.
func New(repo port.CampaignRepository, clock port.Clock, alerts port.AlertPublisher, logger *slog.Logger, p Params) *PacingUseCase {
	if clock == nil {
		clock = systemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if p.StoreTimeout <= 0 {
		p.StoreTimeout = 5 * time.Second
	}
	if p.Concurrency <= 0 {
		p.Concurrency = 4
	}
	return &PacingUseCase{
		repo:         repo,
		clock:        clock,
		alerts:       alerts,
		logger:       logger,
		storeTimeout: p.StoreTimeout,
		concurrency:  p.Concurrency,
		autoPause:    p.AutoPause,
	}
}

// EvaluateCampaign recomputes budget state for one campaign and, when it is
// overspending and auto-pause is enabled, attempts the guarded pause.
func (u *PacingUseCase) EvaluateCampaign(ctx context.Context, campaignID uuid.UUID) (*port.Evaluation, error) {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	return u.evaluate(ctx, c)
}

// EvaluateAllForOwner evaluates every active or paused campaign of an
// owner. Campaigns run in parallel up to the configured limit, each with
// its own store timeout. A failing campaign is logged and skipped so the
// batch always makes partial progress.
func (u *PacingUseCase) EvaluateAllForOwner(ctx context.Context, ownerID string) ([]port.Evaluation, error) {
	listCtx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()
	campaigns, err := u.repo.ListActiveCampaigns(listCtx, ownerID)
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		results = make([]port.Evaluation, 0, len(campaigns))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.concurrency)
	for i := range campaigns {
		c := campaigns[i]
		g.Go(func() error {
			evalCtx, cancel := context.WithTimeout(gctx, u.storeTimeout)
			defer cancel()
			ev, err := u.evaluate(evalCtx, &c)
			if err != nil {
				u.logger.Warn("campaign evaluation skipped",
					slog.String("campaign_id", c.ID.String()),
					slog.Any("error", err))
				return nil
			}
			mu.Lock()
			results = append(results, *ev)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results, nil
}

// PauseCampaign applies the guarded active → paused transition on explicit
// operator request. Pausing an already paused campaign is a no-op; draft
// and completed campaigns are rejected.
func (u *PacingUseCase) PauseCampaign(ctx context.Context, campaignID uuid.UUID) (*port.PauseOutcome, error) {
	ctx, cancel := context.WithTimeout(ctx, u.storeTimeout)
	defer cancel()

	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCampaignNotFound
	}
	if !c.Status.Evaluable() {
		return nil, domain.ErrInvalidCampaignState
	}
	return u.pause(ctx, c), nil
}

// evaluate runs the sequential snapshot → alerts → pause pipeline for a
// campaign that was already loaded from the store.
func (u *PacingUseCase) evaluate(ctx context.Context, c *domain.Campaign) (*port.Evaluation, error) {
	now := u.clock.Now()

	events, err := u.repo.ListSpendEvents(ctx, c.ID, nil)
	if err != nil {
		return nil, err
	}
	snap, err := ComputeSnapshot(c, events, now)
	if err != nil {
		return nil, err
	}
	alerts := GenerateAlerts(snap, now)

	ev := &port.Evaluation{Snapshot: *snap, Alerts: alerts}
	if snap.IsOverspending && u.autoPause {
		ev.Pause = u.pause(ctx, c)
	}
	u.publish(ctx, alerts)
	return ev, nil
}

// publish forwards alerts best effort. Publishing failures are logged and
// never propagated into the evaluation result.
func (u *PacingUseCase) publish(ctx context.Context, alerts []domain.BudgetAlert) {
	if u.alerts == nil || len(alerts) == 0 {
		return
	}
	if err := u.alerts.PublishAlerts(ctx, alerts); err != nil {
		u.logger.Warn("alert publish failed", slog.Any("error", err))
	}
}

// systemClock is the production Clock backed by time.Now.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }
