package domain

import (
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the lifecycle state of a campaign. Transitions move
// draft → active → {paused ⇄ active} → completed. The pacing engine only
// ever drives active → paused; every other transition belongs to the
// advertiser-facing surfaces.
type CampaignStatus string

const (
	StatusDraft     CampaignStatus = "draft"
	StatusActive    CampaignStatus = "active"
	StatusPaused    CampaignStatus = "paused"
	StatusCompleted CampaignStatus = "completed"
)

// Evaluable reports whether the pacing engine may compute budget state for
// a campaign in this status.
func (s CampaignStatus) Evaluable() bool {
	return s == StatusActive || s == StatusPaused
}

// Campaign represents an advertising campaign on the trading desk.
// Monetary amounts are stored in integer cents.
type Campaign struct {
	ID               uuid.UUID
	OwnerID          string
	Name             string
	Status           CampaignStatus
	BudgetCents      int64
	DailyBudgetCents *int64 // nil when no daily cap is configured
	StartDate        time.Time
	EndDate          *time.Time
	ReportingTZ      string // IANA zone name, empty means UTC
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ReportingLocation resolves the campaign's reporting timezone. Unknown or
// empty zone names fall back to UTC rather than failing the evaluation.
func (c *Campaign) ReportingLocation() *time.Location {
	if c.ReportingTZ == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.ReportingTZ)
	if err != nil {
		return time.UTC
	}
	return loc
}
