package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"desk-pacing/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, owner_id, name, status, budget_cents, daily_budget_cents, start_date, end_date, reporting_tz, created_at, updated_at`

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Name,
		&c.Status,
		&c.BudgetCents,
		&c.DailyBudgetCents,
		&c.StartDate,
		&c.EndDate,
		&c.ReportingTZ,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// GetCampaign returns a campaign by id, or nil, nil when absent.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListActiveCampaigns returns the owner's campaigns in active or paused
// status, oldest first.
func (r *CampaignRepository) ListActiveCampaigns(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE owner_id = $1 AND status IN ($2, $3) ORDER BY created_at`,
		ownerID, string(domain.StatusActive), string(domain.StatusPaused))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// ListSpendEvents returns spend events for a campaign, optionally limited
// to those at or after since.
func (r *CampaignRepository) ListSpendEvents(ctx context.Context, campaignID uuid.UUID, since *time.Time) ([]domain.SpendEvent, error) {
	query := `SELECT id, campaign_id, amount_cents, occurred_at FROM spend_events WHERE campaign_id = $1`
	args := []any{campaignID}
	if since != nil {
		query += ` AND occurred_at >= $2`
		args = append(args, *since)
	}
	query += ` ORDER BY occurred_at`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SpendEvent, error) {
		var ev domain.SpendEvent
		err := row.Scan(&ev.ID, &ev.CampaignID, &ev.AmountCents, &ev.OccurredAt)
		return ev, err
	})
}

// SetCampaignStatus applies the conditional status transition. The WHERE
// clause on the expected status is the concurrency guard: an overlapping
// cycle that already moved the campaign sees zero rows updated here.
func (r *CampaignRepository) SetCampaignStatus(ctx context.Context, campaignID uuid.UUID, expected, next domain.CampaignStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = $3, updated_at = now() WHERE id = $1 AND status = $2`,
		campaignID, string(expected), string(next))
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	// Distinguish a lost race from a missing row.
	var exists bool
	if err = r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, campaignID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.ErrCampaignNotFound
	}
	return domain.ErrStatusConflict
}

// ListActiveOwners returns distinct owners with at least one evaluable
// campaign.
func (r *CampaignRepository) ListActiveOwners(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT owner_id FROM campaigns WHERE status IN ($1, $2) ORDER BY owner_id`,
		string(domain.StatusActive), string(domain.StatusPaused))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}
