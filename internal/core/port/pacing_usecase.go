package port

import (
	"context"

	"github.com/google/uuid"

	"desk-pacing/internal/core/domain"
)

// PacingUseCase defines the business operations exposed by the pacing
// engine. This interface is the primary port into the application domain.
// Mock implementations can be generated from this interface for testing.
type PacingUseCase interface {
	// EvaluateCampaign recomputes the budget snapshot for one campaign,
	// derives alerts from it and, when the campaign is overspending,
	// attempts the automatic pause. Snapshot, alert and pause stages run
	// as a sequential pipeline.
	EvaluateCampaign(ctx context.Context, campaignID uuid.UUID) (*Evaluation, error)

	// EvaluateAllForOwner evaluates every active or paused campaign of an
	// owner. Campaigns are evaluated independently; a failure on one is
	// logged and skipped, never fatal to the batch.
	EvaluateAllForOwner(ctx context.Context, ownerID string) ([]Evaluation, error)

	// PauseCampaign is the manual counterpart of the automatic pause. It
	// applies the same guarded active → paused transition and is a no-op
	// for campaigns that are already paused.
	PauseCampaign(ctx context.Context, campaignID uuid.UUID) (*PauseOutcome, error)
}

// Evaluation is the result of one campaign evaluation cycle. It is a DTO
// used by the HTTP layer and the scheduler and carries no behaviour.
type Evaluation struct {
	Snapshot domain.BudgetSnapshot `json:"snapshot"`
	Alerts   []domain.BudgetAlert  `json:"alerts"`
	// Pause is present only when an auto-pause decision was taken this
	// cycle, i.e. the snapshot reported overspending.
	Pause *PauseOutcome `json:"pause,omitempty"`
}

// PauseOutcome describes the result of one pause decision. Exactly one of
// Paused and AlreadyPaused is true on success; Failure carries the cause
// when the guarded transition could not be applied.
type PauseOutcome struct {
	CampaignID    uuid.UUID `json:"campaign_id"`
	Paused        bool      `json:"paused"`
	AlreadyPaused bool      `json:"already_paused"`
	Failure       string    `json:"failure,omitempty"`
}
