package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jobdeck/jobdeck-api/internal/models"
)

// MemoryJobRepository is an in-memory JobRepository. It mirrors the Postgres
// implementation's semantics, including last-write-wins updates by arrival
// order, and backs handler and service tests.
type MemoryJobRepository struct {
	mu   sync.Mutex
	jobs map[string]models.Job
}

func NewMemoryJobRepository() *MemoryJobRepository {
	return &MemoryJobRepository{jobs: make(map[string]models.Job)}
}

func (r *MemoryJobRepository) Insert(_ context.Context, job models.Job) (models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	job.ID = uuid.NewString()
	job.CreatedAt = now
	job.UpdatedAt = now
	r.jobs[job.ID] = job
	return job, nil
}

func (r *MemoryJobRepository) GetByID(_ context.Context, userID, jobID string) (models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobID]
	if !ok || job.UserID != userID {
		return models.Job{}, models.ErrNotFound
	}
	return job, nil
}

func (r *MemoryJobRepository) ListByUser(_ context.Context, userID string, filter models.JobFilter) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobs := []models.Job{}
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, job := range r.jobs {
		if job.UserID != userID {
			continue
		}
		if filter.Status != "" && job.Status != filter.Status {
			continue
		}
		if search != "" && !matchesSearch(job, search) {
			continue
		}
		jobs = append(jobs, job)
	}

	sortJobs(jobs, filter.SortBy, filter.SortDirection)
	return jobs, nil
}

func (r *MemoryJobRepository) Update(_ context.Context, userID, jobID string, update models.JobUpdate) (models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobID]
	if !ok || job.UserID != userID {
		return models.Job{}, models.ErrNotFound
	}

	if update.Company != nil {
		job.Company = *update.Company
	}
	if update.Position != nil {
		job.Position = *update.Position
	}
	if update.Location != nil {
		job.Location = *update.Location
	}
	if update.URL != nil {
		job.URL = *update.URL
	}
	if update.Description != nil {
		job.Description = *update.Description
	}
	if update.Salary != nil {
		job.Salary = *update.Salary
	}
	if update.ContactName != nil {
		job.ContactName = *update.ContactName
	}
	if update.ContactEmail != nil {
		job.ContactEmail = *update.ContactEmail
	}
	if update.ContactPhone != nil {
		job.ContactPhone = *update.ContactPhone
	}
	if update.Notes != nil {
		job.Notes = *update.Notes
	}
	if update.Status != nil {
		job.Status = *update.Status
	}
	if update.AppliedDate != nil {
		job.AppliedDate = update.AppliedDate
	}
	if update.InterviewDate != nil {
		job.InterviewDate = update.InterviewDate
	}
	if update.OfferDate != nil {
		job.OfferDate = update.OfferDate
	}
	if update.RejectedDate != nil {
		job.RejectedDate = update.RejectedDate
	}
	job.UpdatedAt = time.Now().UTC()
	r.jobs[jobID] = job
	return job, nil
}

func (r *MemoryJobRepository) Delete(_ context.Context, userID, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobID]
	if !ok || job.UserID != userID {
		return models.ErrNotFound
	}
	delete(r.jobs, jobID)
	return nil
}

func matchesSearch(job models.Job, search string) bool {
	return strings.Contains(strings.ToLower(job.Company), search) ||
		strings.Contains(strings.ToLower(job.Position), search) ||
		strings.Contains(strings.ToLower(job.Location), search)
}

func sortJobs(jobs []models.Job, sortBy, direction string) {
	asc := strings.EqualFold(direction, "asc")
	less := func(a, b models.Job) bool {
		switch sortBy {
		case "company":
			return a.Company < b.Company
		case "position":
			return a.Position < b.Position
		case "status":
			return a.Status < b.Status
		case "created_at":
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return a.UpdatedAt.Before(b.UpdatedAt)
		}
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		if asc {
			return less(jobs[i], jobs[j])
		}
		return less(jobs[j], jobs[i])
	})
}

// MemoryActivityRepository is an in-memory ActivityRepository.
type MemoryActivityRepository struct {
	mu         sync.Mutex
	activities []models.Activity
	jobs       *MemoryJobRepository
}

// NewMemoryActivityRepository joins summaries against jobs when provided.
func NewMemoryActivityRepository(jobs *MemoryJobRepository) *MemoryActivityRepository {
	return &MemoryActivityRepository{jobs: jobs}
}

func (r *MemoryActivityRepository) Insert(_ context.Context, params CreateActivityParams) (models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	act := models.Activity{
		ID:           uuid.NewString(),
		UserID:       params.UserID,
		ActivityType: params.ActivityType,
		JobID:        params.JobID,
		Description:  params.Description,
		CreatedAt:    time.Now().UTC(),
	}
	r.activities = append(r.activities, act)
	return act, nil
}

func (r *MemoryActivityRepository) ListRecent(_ context.Context, userID string, limit int) ([]models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > 100 {
		limit = 10
	}

	// Newest first; the backing slice is append-only, so walk it backwards.
	out := []models.Activity{}
	for i := len(r.activities) - 1; i >= 0 && len(out) < limit; i-- {
		act := r.activities[i]
		if act.UserID != userID {
			continue
		}
		if act.JobID != nil && r.jobs != nil {
			if job, err := r.jobs.GetByID(context.Background(), userID, *act.JobID); err == nil {
				act.Job = &models.JobSummary{ID: job.ID, Company: job.Company, Position: job.Position}
			}
		}
		out = append(out, act)
	}
	return out, nil
}

// All returns every stored activity, oldest first. Test helper.
func (r *MemoryActivityRepository) All() []models.Activity {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Activity{}, r.activities...)
}
