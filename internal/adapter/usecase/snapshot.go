package usecase

import (
	"time"

	"desk-pacing/internal/core/domain"
)

// Pacing thresholds in percent of total budget utilisation.
const (
	overPacingPct  = 110
	atRiskPct      = 90
	underPacingPct = 70
)

// ComputeSnapshot derives the budget state of one campaign from its spend
// events as of now. It is a pure function: no store access, no hidden
// state, identical inputs produce identical output. Events attributed to
// other campaigns must be filtered out by the caller; events with a future
// occurred_at are ignored here.
func ComputeSnapshot(c *domain.Campaign, events []domain.SpendEvent, now time.Time) (*domain.BudgetSnapshot, error) {
	if !c.Status.Evaluable() {
		return nil, domain.ErrInvalidCampaignState
	}
	if c.StartDate.After(now) {
		return nil, domain.ErrCampaignNotStarted
	}

	// Today's window is the calendar day containing now in the campaign's
	// reporting timezone, not a rolling 24h.
	local := now.In(c.ReportingLocation())
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var total, today int64
	for _, ev := range events {
		if ev.OccurredAt.After(now) {
			continue
		}
		total += ev.AmountCents
		if !ev.OccurredAt.Before(dayStart) && ev.OccurredAt.Before(dayEnd) {
			today += ev.AmountCents
		}
	}

	// Floor elapsed time at one hour so freshly started campaigns do not
	// divide by zero or report an absurd rate.
	hours := now.Sub(c.StartDate).Hours()
	if hours < 1 {
		hours = 1
	}
	rate := float64(total) / hours

	var utilization float64
	if c.BudgetCents > 0 {
		utilization = float64(total) / float64(c.BudgetCents) * 100
	}

	snap := &domain.BudgetSnapshot{
		CampaignID:           c.ID,
		BudgetCents:          c.BudgetCents,
		DailyBudgetCents:     c.DailyBudgetCents,
		TotalSpendCents:      total,
		SpendTodayCents:      today,
		SpendRatePerHour:     rate,
		BudgetUtilizationPct: utilization,
		ComputedAt:           now,
	}

	over := total > c.BudgetCents
	if c.DailyBudgetCents != nil {
		var dailyPct float64
		if *c.DailyBudgetCents > 0 {
			dailyPct = float64(today) / float64(*c.DailyBudgetCents) * 100
		}
		snap.DailyBudgetUtilizationPct = &dailyPct
		if today > *c.DailyBudgetCents {
			over = true
		}
	}
	snap.IsOverspending = over

	// Most severe threshold first: a 115% utilisation is over_pacing, not
	// at_risk, even though it satisfies both comparisons.
	switch {
	case utilization > overPacingPct:
		snap.PacingStatus = domain.PacingOverPacing
	case utilization > atRiskPct:
		snap.PacingStatus = domain.PacingAtRisk
	case utilization < underPacingPct:
		snap.PacingStatus = domain.PacingUnderPacing
	default:
		snap.PacingStatus = domain.PacingOnTrack
	}

	if rate > 0 {
		remaining := c.BudgetCents - total
		if remaining < 0 {
			remaining = 0
		}
		eta := now.Add(time.Duration(float64(remaining) / rate * float64(time.Hour)))
		snap.EstimatedCompletion = &eta
	}
	return snap, nil
}
