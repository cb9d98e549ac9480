package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/jobdeck/jobdeck-api/internal/activity"
	"github.com/jobdeck/jobdeck-api/internal/authz"
	"github.com/jobdeck/jobdeck-api/internal/lifecycle"
	"github.com/jobdeck/jobdeck-api/internal/models"
	"github.com/jobdeck/jobdeck-api/internal/repository"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type JobHandler struct {
	repo       repository.JobRepository
	activities activity.Service
	logger     zerolog.Logger
}

func NewJobHandler(repo repository.JobRepository, activities activity.Service, logger zerolog.Logger) *JobHandler {
	return &JobHandler{
		repo:       repo,
		activities: activities,
		logger:     logger.With().Str("handler", "job").Logger(),
	}
}

type createJobRequest struct {
	Company      string           `json:"company"`
	Position     string           `json:"position"`
	Location     string           `json:"location"`
	URL          string           `json:"url"`
	Description  string           `json:"description"`
	Salary       string           `json:"salary"`
	ContactName  string           `json:"contact_name"`
	ContactEmail string           `json:"contact_email"`
	ContactPhone string           `json:"contact_phone"`
	Notes        string           `json:"notes"`
	Status       models.JobStatus `json:"status"`
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()
	filter := models.JobFilter{
		Search:        q.Get("search"),
		SortBy:        q.Get("sortBy"),
		SortDirection: q.Get("sortDirection"),
	}
	if status := q.Get("status"); status != "" && status != "all" {
		if !models.IsValidStatus(models.JobStatus(status)) {
			http.Error(w, "Invalid status", http.StatusBadRequest)
			return
		}
		filter.Status = models.JobStatus(status)
	}

	jobs, err := h.repo.ListByUser(r.Context(), userID, filter)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list jobs")
		http.Error(w, "Failed to fetch jobs", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req createJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	req.Company = strings.TrimSpace(req.Company)
	req.Position = strings.TrimSpace(req.Position)
	if req.Company == "" || req.Position == "" {
		http.Error(w, "Company and position are required", http.StatusBadRequest)
		return
	}
	if req.Status == "" {
		req.Status = models.StatusSaved
	}
	if !models.IsValidStatus(req.Status) {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	job := models.Job{
		UserID:       userID,
		Company:      req.Company,
		Position:     req.Position,
		Location:     req.Location,
		URL:          req.URL,
		Description:  req.Description,
		Salary:       req.Salary,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Notes:        req.Notes,
		Status:       req.Status,
	}
	created, err := h.repo.Insert(r.Context(), job)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create job")
		http.Error(w, "Failed to create job", http.StatusInternalServerError)
		return
	}

	h.activities.Record(r.Context(), userID, models.ActivityJobCreated, &created.ID,
		fmt.Sprintf("Created %s at %s", created.Position, created.Company))

	writeJSON(w, http.StatusCreated, created)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	job, err := h.repo.GetByID(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Job not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Msg("failed to fetch job")
		http.Error(w, "Failed to fetch job", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	jobID := mux.Vars(r)["id"]

	var update models.JobUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if update.Status != nil && !models.IsValidStatus(*update.Status) {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}
	if update.Company != nil && strings.TrimSpace(*update.Company) == "" {
		http.Error(w, "Company cannot be empty", http.StatusBadRequest)
		return
	}
	if update.Position != nil && strings.TrimSpace(*update.Position) == "" {
		http.Error(w, "Position cannot be empty", http.StatusBadRequest)
		return
	}

	current, err := h.repo.GetByID(r.Context(), userID, jobID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Job not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Msg("failed to fetch job")
		http.Error(w, "Failed to update job", http.StatusInternalServerError)
		return
	}

	updated, err := h.repo.Update(r.Context(), userID, jobID, update)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to update job")
		http.Error(w, "Failed to update job", http.StatusInternalServerError)
		return
	}

	if update.Status != nil && *update.Status != current.Status {
		h.activities.Record(r.Context(), userID, models.ActivityStatusChanged, &updated.ID,
			lifecycle.TransitionDescription(current.Status, *update.Status))
	} else {
		h.activities.Record(r.Context(), userID, models.ActivityJobUpdated, &updated.ID,
			fmt.Sprintf("Updated %s at %s", updated.Position, updated.Company))
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	jobID := mux.Vars(r)["id"]

	job, err := h.repo.GetByID(r.Context(), userID, jobID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Job not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Msg("failed to fetch job")
		http.Error(w, "Failed to delete job", http.StatusInternalServerError)
		return
	}

	if err := h.repo.Delete(r.Context(), userID, jobID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Job not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Msg("failed to delete job")
		http.Error(w, "Failed to delete job", http.StatusInternalServerError)
		return
	}

	h.activities.Record(r.Context(), userID, models.ActivityJobDeleted, nil,
		fmt.Sprintf("Deleted %s at %s", job.Position, job.Company))

	w.WriteHeader(http.StatusNoContent)
}

func (h *JobHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	jobID := mux.Vars(r)["id"]

	var payload struct {
		Status models.JobStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	current, err := h.repo.GetByID(r.Context(), userID, jobID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Job not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Msg("failed to fetch job")
		http.Error(w, "Failed to update status", http.StatusInternalServerError)
		return
	}

	update, err := lifecycle.BuildStatusUpdate(current, payload.Status, time.Now())
	if err != nil {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	updated, err := h.repo.Update(r.Context(), userID, jobID, update)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to update status")
		http.Error(w, "Failed to update status", http.StatusInternalServerError)
		return
	}

	// A true no-op transition still backfills a missing date but is not
	// worth an audit row.
	if payload.Status != current.Status {
		h.activities.Record(r.Context(), userID, models.ActivityStatusChanged, &updated.ID,
			lifecycle.TransitionDescription(current.Status, payload.Status))
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *JobHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := authz.UserIDFromRequest(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	jobID := mux.Vars(r)["id"]

	var payload struct {
		Note string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	current, err := h.repo.GetByID(r.Context(), userID, jobID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			http.Error(w, "Job not found", http.StatusNotFound)
			return
		}
		h.logger.Error().Err(err).Msg("failed to fetch job")
		http.Error(w, "Failed to add note", http.StatusInternalServerError)
		return
	}

	notes, err := lifecycle.AppendNote(current.Notes, payload.Note, time.Now())
	if err != nil {
		http.Error(w, "Note cannot be empty", http.StatusBadRequest)
		return
	}

	updated, err := h.repo.Update(r.Context(), userID, jobID, models.JobUpdate{Notes: &notes})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to add note")
		http.Error(w, "Failed to add note", http.StatusInternalServerError)
		return
	}

	h.activities.Record(r.Context(), userID, models.ActivityNoteAdded, &updated.ID,
		fmt.Sprintf("Added note for %s at %s", current.Position, current.Company))

	writeJSON(w, http.StatusOK, updated)
}
