package models

import (
	"strings"
	"time"
)

// JobStatus is the pipeline stage of a tracked application.
type JobStatus string

const (
	StatusSaved     JobStatus = "saved"
	StatusApplied   JobStatus = "applied"
	StatusInterview JobStatus = "interview"
	StatusOffer     JobStatus = "offer"
	StatusRejected  JobStatus = "rejected"
)

// AllStatuses lists every valid status in pipeline order.
var AllStatuses = []JobStatus{
	StatusSaved,
	StatusApplied,
	StatusInterview,
	StatusOffer,
	StatusRejected,
}

func IsValidStatus(s JobStatus) bool {
	switch s {
	case StatusSaved, StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// Label returns the display form of the status ("applied" -> "Applied").
func (s JobStatus) Label() string {
	if len(s) == 0 {
		return ""
	}
	return strings.ToUpper(string(s[0])) + string(s[1:])
}

type Job struct {
	ID            string     `json:"id" db:"id"`
	UserID        string     `json:"user_id" db:"user_id"`
	Company       string     `json:"company" db:"company"`
	Position      string     `json:"position" db:"position"`
	Location      string     `json:"location" db:"location"`
	URL           string     `json:"url" db:"url"`
	Description   string     `json:"description" db:"description"`
	Salary        string     `json:"salary" db:"salary"`
	ContactName   string     `json:"contact_name" db:"contact_name"`
	ContactEmail  string     `json:"contact_email" db:"contact_email"`
	ContactPhone  string     `json:"contact_phone" db:"contact_phone"`
	Notes         string     `json:"notes" db:"notes"`
	Status        JobStatus  `json:"status" db:"status"`
	AppliedDate   *time.Time `json:"applied_date" db:"applied_date"`
	InterviewDate *time.Time `json:"interview_date" db:"interview_date"`
	OfferDate     *time.Time `json:"offer_date" db:"offer_date"`
	RejectedDate  *time.Time `json:"rejected_date" db:"rejected_date"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// StatusDate returns the timestamp recorded for the given status, if any.
// StatusSaved has no associated date.
func (j *Job) StatusDate(s JobStatus) *time.Time {
	switch s {
	case StatusApplied:
		return j.AppliedDate
	case StatusInterview:
		return j.InterviewDate
	case StatusOffer:
		return j.OfferDate
	case StatusRejected:
		return j.RejectedDate
	}
	return nil
}

// JobUpdate is a partial update; nil fields are left untouched.
type JobUpdate struct {
	Company       *string    `json:"company"`
	Position      *string    `json:"position"`
	Location      *string    `json:"location"`
	URL           *string    `json:"url"`
	Description   *string    `json:"description"`
	Salary        *string    `json:"salary"`
	ContactName   *string    `json:"contact_name"`
	ContactEmail  *string    `json:"contact_email"`
	ContactPhone  *string    `json:"contact_phone"`
	Notes         *string    `json:"notes"`
	Status        *JobStatus `json:"status"`
	AppliedDate   *time.Time `json:"applied_date"`
	InterviewDate *time.Time `json:"interview_date"`
	OfferDate     *time.Time `json:"offer_date"`
	RejectedDate  *time.Time `json:"rejected_date"`
}

// JobFilter narrows and orders a job listing.
type JobFilter struct {
	Status        JobStatus
	Search        string
	SortBy        string
	SortDirection string
}
