package domain

import (
	"time"

	"github.com/google/uuid"
)

// PacingStatus classifies how fast a campaign is consuming its total budget.
type PacingStatus string

const (
	PacingOnTrack     PacingStatus = "on_track"
	PacingUnderPacing PacingStatus = "under_pacing"
	PacingOverPacing  PacingStatus = "over_pacing"
	PacingAtRisk      PacingStatus = "at_risk"
)

// BudgetSnapshot is a derived, point-in-time view of a campaign's budget
// state. It is recomputed on every evaluation and never persisted. For a
// fixed (campaign, events, now) the snapshot is fully deterministic.
type BudgetSnapshot struct {
	CampaignID       uuid.UUID `json:"campaign_id"`
	BudgetCents      int64     `json:"budget_cents"`
	DailyBudgetCents *int64    `json:"daily_budget_cents,omitempty"`

	TotalSpendCents  int64   `json:"total_spend_cents"`
	SpendTodayCents  int64   `json:"spend_today_cents"`
	SpendRatePerHour float64 `json:"spend_rate_per_hour"` // cents per hour

	BudgetUtilizationPct      float64  `json:"budget_utilization_pct"`
	DailyBudgetUtilizationPct *float64 `json:"daily_budget_utilization_pct,omitempty"`

	IsOverspending bool         `json:"is_overspending"`
	PacingStatus   PacingStatus `json:"pacing_status"`

	// EstimatedCompletion is the projected instant the total budget runs
	// out at the current spend rate. Nil means unreachable (zero rate).
	EstimatedCompletion *time.Time `json:"estimated_completion,omitempty"`

	ComputedAt time.Time `json:"computed_at"`
}
