package domain

import (
	"time"

	"github.com/google/uuid"
)

// SpendEvent is a record of money spent by a campaign, fed from the
// impression/tracking pipeline. Events are immutable once recorded; the
// pacing engine only reads them.
type SpendEvent struct {
	ID          int64
	CampaignID  uuid.UUID
	AmountCents int64
	OccurredAt  time.Time
}
