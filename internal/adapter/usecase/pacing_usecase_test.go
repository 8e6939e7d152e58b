package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"desk-pacing/internal/core/domain"
	"desk-pacing/internal/core/port/mocks"
)

// fixedClock pins evaluations to testNow.
type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

func newTestEngine(repo *mocks.MockCampaignRepository, alerts *mocks.MockAlertPublisher) *PacingUseCase {
	// a typed nil must not reach the interface field, the engine checks
	// the interface against nil before publishing
	if alerts == nil {
		return New(repo, fixedClock{testNow}, nil, nil, Params{AutoPause: true})
	}
	return New(repo, fixedClock{testNow}, alerts, nil, Params{AutoPause: true})
}

// TestEvaluateCampaignAutoPauses runs the full pipeline for an overspending
// active campaign: one critical alert and exactly one guarded status
// transition reaching the store.
func TestEvaluateCampaignAutoPauses(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	c := testCampaign()

	repo.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	repo.EXPECT().ListSpendEvents(mock.Anything, c.ID, mock.Anything).
		Return([]domain.SpendEvent{event(c, 105_000, testNow.Add(-12*time.Hour))}, nil)
	repo.EXPECT().SetCampaignStatus(mock.Anything, c.ID, domain.StatusActive, domain.StatusPaused).
		Return(nil).Once()

	svc := newTestEngine(repo, nil)
	ev, err := svc.EvaluateCampaign(context.Background(), c.ID)
	require.NoError(t, err)

	require.True(t, ev.Snapshot.IsOverspending)
	require.Len(t, ev.Alerts, 1)
	require.Equal(t, domain.AlertOverspending, ev.Alerts[0].Type)
	require.NotNil(t, ev.Pause)
	require.True(t, ev.Pause.Paused)
	require.False(t, ev.Pause.AlreadyPaused)
}

// TestEvaluateCampaignPauseIdempotent: an overspending campaign that is
// already paused produces a no-op outcome and no store write at all.
func TestEvaluateCampaignPauseIdempotent(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	c := testCampaign()
	c.Status = domain.StatusPaused

	repo.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	repo.EXPECT().ListSpendEvents(mock.Anything, c.ID, mock.Anything).
		Return([]domain.SpendEvent{event(c, 120_000, testNow.Add(-12*time.Hour))}, nil)

	svc := newTestEngine(repo, nil)
	ev, err := svc.EvaluateCampaign(context.Background(), c.ID)
	require.NoError(t, err)

	require.NotNil(t, ev.Pause)
	require.False(t, ev.Pause.Paused)
	require.True(t, ev.Pause.AlreadyPaused)
	repo.AssertNotCalled(t, "SetCampaignStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestEvaluateCampaignPauseConflict: a lost race on the conditional update
// is reported in the outcome, not as an evaluation error.
func TestEvaluateCampaignPauseConflict(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	c := testCampaign()

	repo.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	repo.EXPECT().ListSpendEvents(mock.Anything, c.ID, mock.Anything).
		Return([]domain.SpendEvent{event(c, 120_000, testNow.Add(-12*time.Hour))}, nil)
	repo.EXPECT().SetCampaignStatus(mock.Anything, c.ID, domain.StatusActive, domain.StatusPaused).
		Return(domain.ErrStatusConflict)

	svc := newTestEngine(repo, nil)
	ev, err := svc.EvaluateCampaign(context.Background(), c.ID)
	require.NoError(t, err)

	require.NotNil(t, ev.Pause)
	require.False(t, ev.Pause.Paused)
	require.NotEmpty(t, ev.Pause.Failure)
}

// TestEvaluateCampaignNoAutoPauseWhenDisabled: with auto-pause off the
// snapshot and alerts still compute but no pause decision is taken.
func TestEvaluateCampaignNoAutoPauseWhenDisabled(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	c := testCampaign()

	repo.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	repo.EXPECT().ListSpendEvents(mock.Anything, c.ID, mock.Anything).
		Return([]domain.SpendEvent{event(c, 120_000, testNow.Add(-12*time.Hour))}, nil)

	svc := New(repo, fixedClock{testNow}, nil, nil, Params{AutoPause: false})
	ev, err := svc.EvaluateCampaign(context.Background(), c.ID)
	require.NoError(t, err)

	require.True(t, ev.Snapshot.IsOverspending)
	require.Nil(t, ev.Pause)
	repo.AssertNotCalled(t, "SetCampaignStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestEvaluateCampaignNotFound maps a missing row to the domain error.
func TestEvaluateCampaignNotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	id := uuid.New()
	repo.EXPECT().GetCampaign(mock.Anything, id).Return(nil, nil)

	svc := newTestEngine(repo, nil)
	_, err := svc.EvaluateCampaign(context.Background(), id)
	require.ErrorIs(t, err, domain.ErrCampaignNotFound)
}

// TestEvaluateAllSkipsFailingCampaign: one campaign's store failure must
// not take the rest of the owner's batch down.
func TestEvaluateAllSkipsFailingCampaign(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	healthy := testCampaign()
	broken := testCampaign()

	repo.EXPECT().ListActiveCampaigns(mock.Anything, "agency-1").
		Return([]domain.Campaign{*healthy, *broken}, nil)
	repo.EXPECT().ListSpendEvents(mock.Anything, healthy.ID, mock.Anything).
		Return([]domain.SpendEvent{event(healthy, 50_000, testNow.Add(-12*time.Hour))}, nil)
	repo.EXPECT().ListSpendEvents(mock.Anything, broken.ID, mock.Anything).
		Return(nil, errors.New("store timeout"))

	svc := newTestEngine(repo, nil)
	results, err := svc.EvaluateAllForOwner(context.Background(), "agency-1")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, healthy.ID, results[0].Snapshot.CampaignID)
}

// TestEvaluateAllSkipsNotStarted: a campaign whose start date lies ahead is
// skipped silently, the rest of the batch evaluates.
func TestEvaluateAllSkipsNotStarted(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	started := testCampaign()
	pending := testCampaign()
	pending.StartDate = testNow.Add(48 * time.Hour)

	repo.EXPECT().ListActiveCampaigns(mock.Anything, "agency-1").
		Return([]domain.Campaign{*started, *pending}, nil)
	repo.EXPECT().ListSpendEvents(mock.Anything, started.ID, mock.Anything).Return(nil, nil)
	repo.EXPECT().ListSpendEvents(mock.Anything, pending.ID, mock.Anything).Return(nil, nil)

	svc := newTestEngine(repo, nil)
	results, err := svc.EvaluateAllForOwner(context.Background(), "agency-1")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, started.ID, results[0].Snapshot.CampaignID)
}

// TestManualPause: the operator-triggered pause uses the same guarded
// transition and succeeds exactly once for an active campaign.
func TestManualPause(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	c := testCampaign()

	repo.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	repo.EXPECT().SetCampaignStatus(mock.Anything, c.ID, domain.StatusActive, domain.StatusPaused).
		Return(nil).Once()

	svc := newTestEngine(repo, nil)
	out, err := svc.PauseCampaign(context.Background(), c.ID)
	require.NoError(t, err)
	require.True(t, out.Paused)
}

// TestManualPauseRejectsDraft: draft and completed campaigns cannot be
// paused by the engine.
func TestManualPauseRejectsDraft(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	c := testCampaign()
	c.Status = domain.StatusDraft

	repo.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)

	svc := newTestEngine(repo, nil)
	_, err := svc.PauseCampaign(context.Background(), c.ID)
	require.ErrorIs(t, err, domain.ErrInvalidCampaignState)
}

// TestAlertsForwardedToPublisher: generated alerts reach the publisher, and
// a publisher failure does not fail the evaluation.
func TestAlertsForwardedToPublisher(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	pub := mocks.NewMockAlertPublisher(t)
	c := testCampaign()
	c.Status = domain.StatusPaused // avoid the pause branch, alerts still flow

	repo.EXPECT().GetCampaign(mock.Anything, c.ID).Return(c, nil)
	repo.EXPECT().ListSpendEvents(mock.Anything, c.ID, mock.Anything).
		Return([]domain.SpendEvent{event(c, 105_000, testNow.Add(-12*time.Hour))}, nil)

	var published []domain.BudgetAlert
	pub.EXPECT().PublishAlerts(mock.Anything, mock.Anything).
		Run(func(_ context.Context, alerts []domain.BudgetAlert) {
			published = alerts
		}).
		Return(errors.New("broker unavailable"))

	svc := newTestEngine(repo, pub)
	ev, err := svc.EvaluateCampaign(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, published, 1)
	require.Equal(t, ev.Alerts, published)
}
