package models

import "time"

// ActivityType identifies the mutating operation an activity row records.
type ActivityType string

const (
	ActivityJobCreated    ActivityType = "job_created"
	ActivityJobUpdated    ActivityType = "job_updated"
	ActivityStatusChanged ActivityType = "status_changed"
	ActivityNoteAdded     ActivityType = "note_added"
	ActivityJobDeleted    ActivityType = "job_deleted"
)

// JobSummary is the minimal job projection joined onto activity listings.
type JobSummary struct {
	ID       string `json:"id" db:"id"`
	Company  string `json:"company" db:"company"`
	Position string `json:"position" db:"position"`
}

// Activity is one append-only audit row. Rows are never updated or deleted
// by the application; JobID goes nil when the referenced job is removed.
type Activity struct {
	ID           string       `json:"id" db:"id"`
	UserID       string       `json:"user_id" db:"user_id"`
	ActivityType ActivityType `json:"activity_type" db:"activity_type"`
	JobID        *string      `json:"job_id" db:"job_id"`
	Description  string       `json:"description" db:"description"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	Job          *JobSummary  `json:"job,omitempty"`
}
