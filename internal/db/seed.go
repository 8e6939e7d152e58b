package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaigns and spend events covering the interesting
// pacing states: healthy under-pacing, at-risk, overspending (auto-paused
// on the first cycle) and a daily-budget breach. Campaign ids are fixed so
// repeated seeding is idempotent.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	type demoCampaign struct {
		id          uuid.UUID
		owner       string
		name        string
		budget      int64 // cents
		dailyBudget *int64
		startedDays int
		totalSpend  int64 // spread across past days
		spendToday  int64
	}

	daily := func(cents int64) *int64 { return &cents }

	campaigns := []demoCampaign{
		{
			id:          uuid.MustParse("7f9f1c1e-0f6f-4f6e-9a30-6b5b3a8a0001"),
			owner:       "agency-north",
			name:        "Spring brand push",
			budget:      100_000, // $1000
			dailyBudget: daily(10_000),
			startedDays: 10,
			totalSpend:  15_000,
			spendToday:  5_000,
		},
		{
			id:          uuid.MustParse("7f9f1c1e-0f6f-4f6e-9a30-6b5b3a8a0002"),
			owner:       "agency-north",
			name:        "Retargeting burst",
			budget:      100_000,
			startedDays: 20,
			totalSpend:  95_000,
			spendToday:  3_000,
		},
		{
			id:          uuid.MustParse("7f9f1c1e-0f6f-4f6e-9a30-6b5b3a8a0003"),
			owner:       "agency-south",
			name:        "Flash sale takeover",
			budget:      100_000,
			startedDays: 5,
			totalSpend:  118_000,
			spendToday:  8_000,
		},
		{
			id:          uuid.MustParse("7f9f1c1e-0f6f-4f6e-9a30-6b5b3a8a0004"),
			owner:       "agency-south",
			name:        "Evening prime slots",
			budget:      500_000,
			dailyBudget: daily(10_000),
			startedDays: 3,
			totalSpend:  30_000,
			spendToday:  10_500,
		},
	}

	for _, c := range campaigns {
		start := now.AddDate(0, 0, -c.startedDays)
		end := now.AddDate(0, 1, 0)
		tag, err := pool.Exec(ctx, `INSERT INTO campaigns
    (id, owner_id, name, status, budget_cents, daily_budget_cents, start_date, end_date, reporting_tz, created_at, updated_at)
VALUES ($1,$2,$3,'active',$4,$5,$6,$7,'',now(),now()) ON CONFLICT DO NOTHING`,
			c.id, c.owner, c.name, c.budget, c.dailyBudget, start, end)
		if err != nil {
			return fmt.Errorf("seed campaign %s: %w", c.name, err)
		}
		if tag.RowsAffected() == 0 {
			// already seeded, keep the event history as is
			continue
		}

		// Spread the historical spend over the days before today in a few
		// random-sized events per day, then book today's spend in the
		// first hours of the current day.
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		for _, ev := range planHistoricalSpend(c.totalSpend-c.spendToday, c.startedDays, dayStart, r) {
			if _, err = pool.Exec(ctx, `INSERT INTO spend_events (campaign_id, amount_cents, occurred_at)
VALUES ($1,$2,$3)`, c.id, ev.amountCents, ev.occurredAt); err != nil {
				return fmt.Errorf("seed spend event: %w", err)
			}
		}
		if c.spendToday > 0 {
			occurred := dayStart.Add(time.Duration(1+r.Intn(6)) * time.Hour)
			if occurred.After(now) {
				occurred = now
			}
			if _, err = pool.Exec(ctx, `INSERT INTO spend_events (campaign_id, amount_cents, occurred_at)
VALUES ($1,$2,$3)`, c.id, c.spendToday, occurred); err != nil {
				return fmt.Errorf("seed today's spend event: %w", err)
			}
		}
	}
	return nil
}

type seededEvent struct {
	amountCents int64
	occurredAt  time.Time
}

// planHistoricalSpend spreads a campaign's pre-today spend across the days
// before dayStart. Every planned event lands strictly inside one of those
// prior calendar days so the spread never leaks into today's window, and
// the amounts always sum to exactly historical (the division remainder is
// booked on the oldest day).
func planHistoricalSpend(historical int64, days int, dayStart time.Time, r *rand.Rand) []seededEvent {
	if historical <= 0 {
		return nil
	}
	if days < 1 {
		days = 1
	}
	perDay := historical / int64(days)
	remainder := historical - perDay*int64(days)

	var events []seededEvent
	for d := days; d >= 1; d-- {
		dayTotal := perDay
		if d == days {
			dayTotal += remainder
		}
		remaining := dayTotal
		for remaining > 0 {
			amount := remaining
			if chunk := dayTotal/3 + 1; amount > chunk {
				amount = chunk + r.Int63n(chunk)
				if amount > remaining {
					amount = remaining
				}
			}
			events = append(events, seededEvent{
				amountCents: amount,
				occurredAt:  dayStart.AddDate(0, 0, -d).Add(time.Duration(r.Intn(24)) * time.Hour),
			})
			remaining -= amount
		}
	}
	return events
}
