package lifecycle

import (
	"testing"
	"time"

	"github.com/jobdeck/jobdeck-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStatusUpdateBackfillsDate(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	job := models.Job{Status: models.StatusSaved}

	update, err := BuildStatusUpdate(job, models.StatusApplied, now)
	require.NoError(t, err)

	require.NotNil(t, update.Status)
	assert.Equal(t, models.StatusApplied, *update.Status)
	require.NotNil(t, update.AppliedDate)
	assert.Equal(t, now, *update.AppliedDate)
	assert.Nil(t, update.InterviewDate)
	assert.Nil(t, update.OfferDate)
	assert.Nil(t, update.RejectedDate)
}

func TestBuildStatusUpdateFirstOccurrenceWins(t *testing.T) {
	original := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	job := models.Job{Status: models.StatusApplied, AppliedDate: &original}

	// Re-applying the same status is idempotent: no date overwrite.
	update, err := BuildStatusUpdate(job, models.StatusApplied, original.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.Nil(t, update.AppliedDate)
	require.NotNil(t, update.Status)
	assert.Equal(t, models.StatusApplied, *update.Status)
}

func TestBuildStatusUpdateBackwardTransitionKeepsDates(t *testing.T) {
	interviewAt := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	job := models.Job{Status: models.StatusInterview, InterviewDate: &interviewAt}

	// Reverting interview -> applied must not clear interview_date; only the
	// missing applied_date is backfilled.
	now := interviewAt.AddDate(0, 0, 7)
	update, err := BuildStatusUpdate(job, models.StatusApplied, now)
	require.NoError(t, err)
	require.NotNil(t, update.AppliedDate)
	assert.Equal(t, now, *update.AppliedDate)
	assert.Nil(t, update.InterviewDate)
}

func TestBuildStatusUpdateSavedHasNoDate(t *testing.T) {
	update, err := BuildStatusUpdate(models.Job{Status: models.StatusApplied}, models.StatusSaved, time.Now())
	require.NoError(t, err)
	assert.Nil(t, update.AppliedDate)
	assert.Nil(t, update.InterviewDate)
	assert.Nil(t, update.OfferDate)
	assert.Nil(t, update.RejectedDate)
}

func TestBuildStatusUpdateRejectsInvalidStatus(t *testing.T) {
	_, err := BuildStatusUpdate(models.Job{Status: models.StatusSaved}, "bogus", time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidStatus)
}

func TestBuildStatusUpdateEveryDatedStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	cases := map[models.JobStatus]func(models.JobUpdate) *time.Time{
		models.StatusApplied:   func(u models.JobUpdate) *time.Time { return u.AppliedDate },
		models.StatusInterview: func(u models.JobUpdate) *time.Time { return u.InterviewDate },
		models.StatusOffer:     func(u models.JobUpdate) *time.Time { return u.OfferDate },
		models.StatusRejected:  func(u models.JobUpdate) *time.Time { return u.RejectedDate },
	}
	for status, dateOf := range cases {
		update, err := BuildStatusUpdate(models.Job{Status: models.StatusSaved}, status, now)
		require.NoError(t, err, status)
		require.NotNil(t, dateOf(update), status)
		assert.Equal(t, now, *dateOf(update), status)
	}
}

func TestTransitionDescription(t *testing.T) {
	assert.Equal(t, "Changed status from saved to applied",
		TransitionDescription(models.StatusSaved, models.StatusApplied))
}
