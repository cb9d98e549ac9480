// Package lifecycle implements the job status pipeline: status transitions
// with first-occurrence date bookkeeping, and append-only note handling.
// Everything here is a pure computation over a job record; persistence and
// activity logging are the caller's concern.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/jobdeck/jobdeck-api/internal/models"
)

// BuildStatusUpdate validates newStatus and produces the partial update to
// persist. The matching date field is backfilled from now only when the record
// has never held that status before; dates already set are left alone, and
// dates are never cleared when the status moves backward. Transitions may go
// in any direction.
func BuildStatusUpdate(job models.Job, newStatus models.JobStatus, now time.Time) (models.JobUpdate, error) {
	if !models.IsValidStatus(newStatus) {
		return models.JobUpdate{}, fmt.Errorf("%w: %q", models.ErrInvalidStatus, newStatus)
	}

	status := newStatus
	update := models.JobUpdate{Status: &status}

	if newStatus == models.StatusSaved || job.StatusDate(newStatus) != nil {
		return update, nil
	}

	ts := now
	switch newStatus {
	case models.StatusApplied:
		update.AppliedDate = &ts
	case models.StatusInterview:
		update.InterviewDate = &ts
	case models.StatusOffer:
		update.OfferDate = &ts
	case models.StatusRejected:
		update.RejectedDate = &ts
	}
	return update, nil
}

// TransitionDescription is the human-readable activity text for a status change.
func TransitionDescription(from, to models.JobStatus) string {
	return fmt.Sprintf("Changed status from %s to %s", from, to)
}
