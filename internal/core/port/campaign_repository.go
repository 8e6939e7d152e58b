package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"desk-pacing/internal/core/domain"
)

// CampaignRepository defines the persistence layer for the pacing engine.
// It is an outbound port in hexagonal architecture. The campaign and event
// rows themselves are owned by the wider trading-desk backend; this engine
// only reads them and performs the single guarded status transition.
type CampaignRepository interface {
	// GetCampaign returns a campaign by id. Returns nil, nil when the
	// campaign does not exist.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)

	// ListActiveCampaigns returns the owner's campaigns in active or
	// paused status. Draft and completed campaigns are never evaluated.
	ListActiveCampaigns(ctx context.Context, ownerID string) ([]domain.Campaign, error)

	// ListSpendEvents returns spend events for a campaign, optionally
	// restricted to occurred_at >= since when since is non-nil.
	ListSpendEvents(ctx context.Context, campaignID uuid.UUID, since *time.Time) ([]domain.SpendEvent, error)

	// SetCampaignStatus performs a conditional status transition:
	// UPDATE ... WHERE id = $1 AND status = expected. It returns
	// domain.ErrStatusConflict when the row exists but its status has
	// moved on, and domain.ErrCampaignNotFound when it does not exist.
	// This conditional write is the authoritative guard against
	// double-applying the same transition from overlapping cycles.
	SetCampaignStatus(ctx context.Context, campaignID uuid.UUID, expected, next domain.CampaignStatus) error

	// ListActiveOwners returns the distinct owner ids that have at least
	// one campaign in an evaluable status. It drives the periodic
	// whole-desk evaluation loop.
	ListActiveOwners(ctx context.Context) ([]string, error)
}
