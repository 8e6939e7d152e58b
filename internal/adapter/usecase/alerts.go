package usecase

import (
	"fmt"
	"time"

	"desk-pacing/internal/core/domain"
)

// Daily-budget alert thresholds in percent of the daily cap.
const (
	dailyWarnPct    = 90
	dailyExceedsPct = 100
)

// GenerateAlerts converts a snapshot into operator alerts. Each rule is
// evaluated independently, so one campaign can raise several alerts in the
// same cycle. Under-pacing and on-track states raise nothing. Pure
// function: snapshot in, alerts out.
func GenerateAlerts(snap *domain.BudgetSnapshot, now time.Time) []domain.BudgetAlert {
	var alerts []domain.BudgetAlert

	if snap.IsOverspending {
		alerts = append(alerts, domain.BudgetAlert{
			CampaignID: snap.CampaignID,
			Type:       domain.AlertOverspending,
			Severity:   domain.SeverityCritical,
			Message: fmt.Sprintf("campaign spent %s against a %s budget",
				formatCents(snap.TotalSpendCents), formatCents(snap.BudgetCents)),
			CreatedAt: now,
		})
	}

	if pct := snap.DailyBudgetUtilizationPct; pct != nil && *pct > dailyWarnPct {
		severity := domain.SeverityHigh
		if *pct > dailyExceedsPct {
			severity = domain.SeverityCritical
		}
		alerts = append(alerts, domain.BudgetAlert{
			CampaignID: snap.CampaignID,
			Type:       domain.AlertDailyBudgetReached,
			Severity:   severity,
			Message:    fmt.Sprintf("daily budget %.0f%% consumed", *pct),
			CreatedAt:  now,
		})
	}

	if snap.PacingStatus == domain.PacingOverPacing {
		alerts = append(alerts, domain.BudgetAlert{
			CampaignID: snap.CampaignID,
			Type:       domain.AlertPacingRisk,
			Severity:   domain.SeverityMedium,
			Message:    fmt.Sprintf("campaign is over-pacing at %.1f%% of total budget", snap.BudgetUtilizationPct),
			CreatedAt:  now,
		})
	}

	return alerts
}

// formatCents renders an integer cent amount as a dollar string for alert
// messages, e.g. 123456 -> "$1234.56".
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
