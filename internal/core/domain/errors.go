package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrInvalidCampaignState is returned when evaluation is requested for
	// a campaign that is not in an evaluable status (draft, completed).
	ErrInvalidCampaignState = errors.New("campaign is not in an evaluable state")

	// ErrCampaignNotStarted is returned when a campaign's start date lies
	// in the future. Callers skip the campaign and retry on a later cycle.
	ErrCampaignNotStarted = errors.New("campaign has not started yet")

	// ErrCampaignNotFound is returned when the referenced campaign does
	// not exist in the store.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrStatusConflict is returned by the conditional status update when
	// the campaign's current status no longer matches the expected one.
	ErrStatusConflict = errors.New("campaign status changed concurrently")
)

// AutoPauseError reports a failed automatic pause attempt for one campaign.
// It is surfaced to the caller but never retried within the same cycle; the
// next evaluation re-reads the campaign and converges.
type AutoPauseError struct {
	CampaignID uuid.UUID
	Cause      error
}

func (e *AutoPauseError) Error() string {
	return fmt.Sprintf("auto-pause campaign %s: %v", e.CampaignID, e.Cause)
}

func (e *AutoPauseError) Unwrap() error { return e.Cause }
