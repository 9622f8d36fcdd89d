package usecase

import (
	"encoding/json"
	"strings"
	"testing"

	"hr-portal-backend/internal/apperr"
	"hr-portal-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTrackingFixture(t *testing.T) (*RequestUsecase, *TrackingUsecase) {
	t.Helper()
	uc, repo, _ := newTestRequestUsecase()
	return uc, NewTrackingUsecase(repo, zap.NewNop())
}

func TestTrack_RoundTrip(t *testing.T) {
	requests, tracking := newTrackingFixture(t)

	created, err := requests.Create(validInput())
	require.NoError(t, err)

	view, err := tracking.Track(created.Reference)
	require.NoError(t, err)

	assert.Equal(t, created.Reference, view.Reference)
	assert.Equal(t, created.Title, view.Title)
	assert.Equal(t, created.Description, view.Description)
	assert.Equal(t, "submitted", view.CurrentStatus)
	assert.Equal(t, "Submitted - Awaiting Review", view.StatusLabel)
	assert.NotEmpty(t, view.NextSteps)

	require.Len(t, view.Timeline, 1)
	assert.Equal(t, "submitted", view.Timeline[0].Status)
	assert.Equal(t, created.SubmittedAt, view.Timeline[0].Timestamp)
}

func TestTrack_UnknownReference(t *testing.T) {
	_, tracking := newTrackingFixture(t)

	_, err := tracking.Track("REF-9999-999")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestTrack_NeverExposesInternalNotes(t *testing.T) {
	requests, tracking := newTrackingFixture(t)

	created, err := requests.Create(validInput())
	require.NoError(t, err)

	status := string(model.StatusApproved)
	reviewer := "hr.officer@company.ae"
	public := "Approved, collect from reception"
	internal := "CONFIDENTIAL salary band discussion"
	_, err = requests.UpdateStatus(created.Reference, UpdateRequestInput{
		Status:        &status,
		ReviewedBy:    &reviewer,
		PublicNotes:   &public,
		InternalNotes: &internal,
	})
	require.NoError(t, err)

	// Apply the identical update again; the view must stay redacted.
	for i := 0; i < 2; i++ {
		view, err := tracking.Track(created.Reference)
		require.NoError(t, err)

		raw, err := json.Marshal(view)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "CONFIDENTIAL")
		assert.NotContains(t, string(raw), "internal_notes")

		require.Len(t, view.Timeline, 2)
		assert.Equal(t, "approved", view.Timeline[1].Status)
		assert.Equal(t, public, view.Timeline[1].Notes)

		_, err = requests.UpdateStatus(created.Reference, UpdateRequestInput{
			Status:        &status,
			PublicNotes:   &public,
			InternalNotes: &internal,
		})
		require.NoError(t, err)
	}
}

func TestTrack_TimelineCapsAtTwoEntries(t *testing.T) {
	requests, tracking := newTrackingFixture(t)

	created, err := requests.Create(validInput())
	require.NoError(t, err)

	reviewer := "hr.officer@company.ae"
	for _, s := range []string{"reviewing", "approved", "completed"} {
		status := s
		_, err = requests.UpdateStatus(created.Reference, UpdateRequestInput{
			Status:     &status,
			ReviewedBy: &reviewer,
		})
		require.NoError(t, err)
	}

	view, err := tracking.Track(created.Reference)
	require.NoError(t, err)

	// Intermediate transitions are not retained; only submission plus the
	// latest review survive.
	require.Len(t, view.Timeline, 2)
	assert.Equal(t, "completed", view.Timeline[1].Status)
}

func TestTrack_NormalizesReferenceCase(t *testing.T) {
	requests, tracking := newTrackingFixture(t)

	created, err := requests.Create(validInput())
	require.NoError(t, err)

	view, err := tracking.Track(strings.ToLower(created.Reference))
	require.NoError(t, err)
	assert.Equal(t, created.Reference, view.Reference)
}

func TestStatusLabel_FallsBackToRawValue(t *testing.T) {
	assert.Equal(t, "archived", StatusLabel(model.RequestStatus("archived")))
	assert.Equal(t, "Under Review", StatusLabel(model.StatusReviewing))
}
