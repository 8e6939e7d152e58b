package port

import (
	"context"

	"desk-pacing/internal/core/domain"
)

// AlertPublisher forwards budget alerts to an external notification
// channel (message broker, operator feed). Publishing is best effort: a
// failed publish must never fail the evaluation that produced the alerts.
type AlertPublisher interface {
	PublishAlerts(ctx context.Context, alerts []domain.BudgetAlert) error
}
