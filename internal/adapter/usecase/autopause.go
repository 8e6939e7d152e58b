package usecase

import (
	"context"
	"log/slog"

	"desk-pacing/internal/core/domain"
	"desk-pacing/internal/core/port"
)

// pause drives the active → paused transition for one campaign. Idempotency
// comes from the store-side conditional update, not from client bookkeeping:
// the precondition status == active is re-checked by the store on every
// attempt, so overlapping cycles cannot double-pause. Failures are reported
// in the outcome and never retried within the cycle.
func (u *PacingUseCase) pause(ctx context.Context, c *domain.Campaign) *port.PauseOutcome {
	out := &port.PauseOutcome{CampaignID: c.ID}
	if c.Status != domain.StatusActive {
		out.AlreadyPaused = true
		return out
	}
	if err := u.repo.SetCampaignStatus(ctx, c.ID, domain.StatusActive, domain.StatusPaused); err != nil {
		perr := &domain.AutoPauseError{CampaignID: c.ID, Cause: err}
		u.logger.Warn("auto-pause failed",
			slog.String("campaign_id", c.ID.String()),
			slog.Any("error", perr))
		out.Failure = perr.Error()
		return out
	}
	u.logger.Info("campaign auto-paused", slog.String("campaign_id", c.ID.String()))
	out.Paused = true
	return out
}
