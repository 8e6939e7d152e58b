package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"desk-pacing/internal/core/domain"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func centsPtr(v int64) *int64 { return &v }

func testCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:          uuid.New(),
		OwnerID:     "agency-1",
		Name:        "test campaign",
		Status:      domain.StatusActive,
		BudgetCents: 100_000, // $1000
		StartDate:   testNow.Add(-24 * time.Hour),
	}
}

func event(c *domain.Campaign, amount int64, at time.Time) domain.SpendEvent {
	return domain.SpendEvent{CampaignID: c.ID, AmountCents: amount, OccurredAt: at}
}

// TestSnapshotUnderPacing covers a healthy campaign 24h in: $150 spent of a
// $1000 budget, $50 of it today against a $100 daily cap.
func TestSnapshotUnderPacing(t *testing.T) {
	c := testCampaign()
	c.DailyBudgetCents = centsPtr(10_000)
	events := []domain.SpendEvent{
		event(c, 10_000, testNow.Add(-20*time.Hour)), // yesterday
		event(c, 5_000, testNow.Add(-3*time.Hour)),   // today
	}

	snap, err := ComputeSnapshot(c, events, testNow)
	require.NoError(t, err)

	require.Equal(t, int64(15_000), snap.TotalSpendCents)
	require.Equal(t, int64(5_000), snap.SpendTodayCents)
	require.InDelta(t, 625.0, snap.SpendRatePerHour, 0.001) // $6.25/h in cents
	require.InDelta(t, 15.0, snap.BudgetUtilizationPct, 0.001)
	require.NotNil(t, snap.DailyBudgetUtilizationPct)
	require.InDelta(t, 50.0, *snap.DailyBudgetUtilizationPct, 0.001)
	require.False(t, snap.IsOverspending)
	require.Equal(t, domain.PacingUnderPacing, snap.PacingStatus)

	// $850 left at 625 cents/h -> 136 hours out
	require.NotNil(t, snap.EstimatedCompletion)
	require.WithinDuration(t, testNow.Add(136*time.Hour), *snap.EstimatedCompletion, time.Minute)

	require.Empty(t, GenerateAlerts(snap, testNow))
}

// TestSnapshotDeterminism re-evaluates the same inputs and requires
// identical output.
func TestSnapshotDeterminism(t *testing.T) {
	c := testCampaign()
	c.DailyBudgetCents = centsPtr(10_000)
	events := []domain.SpendEvent{
		event(c, 12_345, testNow.Add(-10*time.Hour)),
		event(c, 678, testNow.Add(-1*time.Hour)),
	}

	first, err := ComputeSnapshot(c, events, testNow)
	require.NoError(t, err)
	second, err := ComputeSnapshot(c, events, testNow)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// TestSnapshotMonotonicity: adding an event with occurred_at <= now grows
// total spend by exactly its amount, and today's spend only when it falls
// inside today's window.
func TestSnapshotMonotonicity(t *testing.T) {
	c := testCampaign()
	events := []domain.SpendEvent{event(c, 4_000, testNow.Add(-20*time.Hour))}

	base, err := ComputeSnapshot(c, events, testNow)
	require.NoError(t, err)

	withYesterday, err := ComputeSnapshot(c, append(events, event(c, 1_500, testNow.Add(-15*time.Hour))), testNow)
	require.NoError(t, err)
	require.Equal(t, base.TotalSpendCents+1_500, withYesterday.TotalSpendCents)
	require.Equal(t, base.SpendTodayCents, withYesterday.SpendTodayCents)

	withToday, err := ComputeSnapshot(c, append(events, event(c, 1_500, testNow.Add(-2*time.Hour))), testNow)
	require.NoError(t, err)
	require.Equal(t, base.TotalSpendCents+1_500, withToday.TotalSpendCents)
	require.Equal(t, base.SpendTodayCents+1_500, withToday.SpendTodayCents)
}

// TestSnapshotFutureEventsIgnored: events past now never count.
func TestSnapshotFutureEventsIgnored(t *testing.T) {
	c := testCampaign()
	events := []domain.SpendEvent{
		event(c, 2_000, testNow.Add(-2*time.Hour)),
		event(c, 9_999, testNow.Add(2*time.Hour)),
	}

	snap, err := ComputeSnapshot(c, events, testNow)
	require.NoError(t, err)
	require.Equal(t, int64(2_000), snap.TotalSpendCents)
}

// TestSnapshotZeroBudget: a zero budget must yield a defined 0%
// utilisation, and any spend at all counts as overspending.
func TestSnapshotZeroBudget(t *testing.T) {
	c := testCampaign()
	c.BudgetCents = 0

	snap, err := ComputeSnapshot(c, nil, testNow)
	require.NoError(t, err)
	require.Zero(t, snap.BudgetUtilizationPct)
	require.False(t, snap.IsOverspending)

	snap, err = ComputeSnapshot(c, []domain.SpendEvent{event(c, 1, testNow.Add(-time.Hour))}, testNow)
	require.NoError(t, err)
	require.Zero(t, snap.BudgetUtilizationPct)
	require.True(t, snap.IsOverspending)
}

// TestSnapshotNoEvents: an event-less campaign reports zeroes, an
// unreachable completion estimate and under-pacing.
func TestSnapshotNoEvents(t *testing.T) {
	c := testCampaign()

	snap, err := ComputeSnapshot(c, nil, testNow)
	require.NoError(t, err)
	require.Zero(t, snap.TotalSpendCents)
	require.Zero(t, snap.SpendTodayCents)
	require.Zero(t, snap.SpendRatePerHour)
	require.Nil(t, snap.EstimatedCompletion)
	require.Equal(t, domain.PacingUnderPacing, snap.PacingStatus)
}

// TestSnapshotFreshCampaignRate: elapsed time under an hour is floored at
// one hour so the rate stays finite.
func TestSnapshotFreshCampaignRate(t *testing.T) {
	c := testCampaign()
	c.StartDate = testNow.Add(-10 * time.Minute)

	snap, err := ComputeSnapshot(c, []domain.SpendEvent{event(c, 600, testNow.Add(-5*time.Minute))}, testNow)
	require.NoError(t, err)
	require.InDelta(t, 600.0, snap.SpendRatePerHour, 0.001)
}

// TestSnapshotPacingThresholds pins the severe-first evaluation order: a
// utilisation above 110% classifies as over_pacing even though it also
// satisfies the at_risk comparison.
func TestSnapshotPacingThresholds(t *testing.T) {
	for _, tc := range []struct {
		spend int64
		want  domain.PacingStatus
	}{
		{50_000, domain.PacingUnderPacing},  // 50%
		{70_000, domain.PacingOnTrack},      // 70%, boundary stays on track
		{85_000, domain.PacingOnTrack},      // 85%
		{90_000, domain.PacingOnTrack},      // 90%, boundary
		{95_000, domain.PacingAtRisk},       // 95%
		{110_000, domain.PacingAtRisk},      // 110%, boundary
		{115_000, domain.PacingOverPacing},  // 115%
		{200_000, domain.PacingOverPacing},  // 200%
	} {
		c := testCampaign()
		snap, err := ComputeSnapshot(c, []domain.SpendEvent{event(c, tc.spend, testNow.Add(-12*time.Hour))}, testNow)
		require.NoError(t, err)
		require.Equalf(t, tc.want, snap.PacingStatus, "spend %d", tc.spend)
	}
}

// TestSnapshotReportingTimezone: today's window follows the campaign's
// reporting timezone, not UTC.
func TestSnapshotReportingTimezone(t *testing.T) {
	c := testCampaign()
	c.ReportingTZ = "America/New_York"
	c.StartDate = testNow.Add(-72 * time.Hour)

	// 03:00 UTC is 23:00 of the previous day in New York, so this event
	// must not count as today's spend there, while 11:00 UTC does.
	events := []domain.SpendEvent{
		event(c, 1_000, time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC)),
		event(c, 2_000, time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)),
	}

	snap, err := ComputeSnapshot(c, events, testNow)
	require.NoError(t, err)
	require.Equal(t, int64(3_000), snap.TotalSpendCents)
	require.Equal(t, int64(2_000), snap.SpendTodayCents)
}

// TestSnapshotRejectsNonEvaluableStates: draft and completed campaigns are
// not computed; a future start date is a skippable condition of its own.
func TestSnapshotRejectsNonEvaluableStates(t *testing.T) {
	for _, status := range []domain.CampaignStatus{domain.StatusDraft, domain.StatusCompleted} {
		c := testCampaign()
		c.Status = status
		_, err := ComputeSnapshot(c, nil, testNow)
		require.ErrorIs(t, err, domain.ErrInvalidCampaignState)
	}

	c := testCampaign()
	c.StartDate = testNow.Add(time.Hour)
	_, err := ComputeSnapshot(c, nil, testNow)
	require.ErrorIs(t, err, domain.ErrCampaignNotStarted)

	// paused campaigns still get snapshots
	c = testCampaign()
	c.Status = domain.StatusPaused
	_, err = ComputeSnapshot(c, nil, testNow)
	require.NoError(t, err)
}
