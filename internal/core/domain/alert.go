package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertType identifies the budget condition that raised an alert.
type AlertType string

const (
	AlertOverspending       AlertType = "overspending"
	AlertDailyBudgetReached AlertType = "daily_budget_reached"
	AlertPacingRisk         AlertType = "pacing_risk"
)

// Severity ranks how urgently an alert needs operator attention.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// BudgetAlert is an ephemeral operator notification derived from a
// BudgetSnapshot. Alerts are recomputed each evaluation cycle and are not
// stored by this service.
type BudgetAlert struct {
	CampaignID uuid.UUID `json:"campaign_id"`
	Type       AlertType `json:"type"`
	Severity   Severity  `json:"severity"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
