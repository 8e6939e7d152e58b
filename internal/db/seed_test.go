package db

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestPlanHistoricalSpendStaysBeforeToday: the planned spread must book
// every event on a prior calendar day and account for every cent, even
// when the amount is smaller than the number of days.
func TestPlanHistoricalSpendStaysBeforeToday(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	dayStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	for _, tc := range []struct {
		name       string
		historical int64
		days       int
	}{
		{"long running", 92_000, 20},
		{"short burst", 19_500, 3},
		{"single day", 10_000, 1},
		{"less spend than days", 7, 10},
		{"nothing historical", 0, 5},
	} {
		events := planHistoricalSpend(tc.historical, tc.days, dayStart, r)

		var sum int64
		for _, ev := range events {
			require.Truef(t, ev.occurredAt.Before(dayStart),
				"%s: event at %s leaks into today", tc.name, ev.occurredAt)
			sum += ev.amountCents
			require.Positivef(t, ev.amountCents, "%s: empty event", tc.name)
		}
		require.Equalf(t, tc.historical, sum, "%s: spread loses spend", tc.name)
	}
}
