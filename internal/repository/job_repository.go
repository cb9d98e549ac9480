package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jobdeck/jobdeck-api/internal/models"
	"github.com/pkg/errors"
)

type JobRepository interface {
	Insert(ctx context.Context, job models.Job) (models.Job, error)
	GetByID(ctx context.Context, userID, jobID string) (models.Job, error)
	ListByUser(ctx context.Context, userID string, filter models.JobFilter) ([]models.Job, error)
	Update(ctx context.Context, userID, jobID string, update models.JobUpdate) (models.Job, error)
	Delete(ctx context.Context, userID, jobID string) error
}

type jobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) JobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `
	id, user_id, company, position, location, url, description, salary,
	contact_name, contact_email, contact_phone, notes, status,
	applied_date, interview_date, offer_date, rejected_date,
	created_at, updated_at`

const getJobByIDQuery = `SELECT` + jobColumns + `
	FROM jobs WHERE id = $1 AND user_id = $2`

// sortColumns whitelists user-supplied sort keys.
var sortColumns = map[string]bool{
	"company":      true,
	"position":     true,
	"location":     true,
	"status":       true,
	"applied_date": true,
	"created_at":   true,
	"updated_at":   true,
}

func (r *jobRepository) Insert(ctx context.Context, job models.Job) (models.Job, error) {
	query := `
		INSERT INTO jobs (user_id, company, position, location, url, description, salary,
			contact_name, contact_email, contact_phone, notes, status,
			applied_date, interview_date, offer_date, rejected_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		job.UserID,
		job.Company,
		job.Position,
		job.Location,
		job.URL,
		job.Description,
		job.Salary,
		job.ContactName,
		job.ContactEmail,
		job.ContactPhone,
		job.Notes,
		job.Status,
		job.AppliedDate,
		job.InterviewDate,
		job.OfferDate,
		job.RejectedDate,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		return models.Job{}, errors.Wrap(err, "insert job")
	}
	return job, nil
}

func (r *jobRepository) GetByID(ctx context.Context, userID, jobID string) (models.Job, error) {
	job, err := scanJob(r.db.QueryRowContext(ctx, getJobByIDQuery, jobID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Job{}, models.ErrNotFound
		}
		return models.Job{}, errors.Wrap(err, "get job")
	}
	return job, nil
}

// buildListJobsQuery assembles the filtered, user-scoped listing query with
// its positional arguments.
func buildListJobsQuery(userID string, filter models.JobFilter) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`SELECT` + jobColumns + `
	FROM jobs WHERE user_id = $1`)
	args := []interface{}{userID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		fmt.Fprintf(&sb, " AND status = $%d", len(args))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		fmt.Fprintf(&sb, " AND (company ILIKE $%d OR position ILIKE $%d OR location ILIKE $%d)",
			len(args), len(args), len(args))
	}

	sortBy := filter.SortBy
	if !sortColumns[sortBy] {
		sortBy = "updated_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortDirection, "asc") {
		direction = "ASC"
	}
	fmt.Fprintf(&sb, " ORDER BY %s %s", sortBy, direction)

	return sb.String(), args
}

func (r *jobRepository) ListByUser(ctx context.Context, userID string, filter models.JobFilter) ([]models.Job, error) {
	query, args := buildListJobsQuery(userID, filter)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list jobs")
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan job")
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// buildUpdateJobQuery assembles the dynamic SET clause from non-nil fields.
// jobID and userID always occupy the last two placeholders.
func buildUpdateJobQuery(jobID, userID string, update models.JobUpdate) (string, []interface{}) {
	set := []string{"updated_at = NOW()"}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Company != nil {
		add("company", *update.Company)
	}
	if update.Position != nil {
		add("position", *update.Position)
	}
	if update.Location != nil {
		add("location", *update.Location)
	}
	if update.URL != nil {
		add("url", *update.URL)
	}
	if update.Description != nil {
		add("description", *update.Description)
	}
	if update.Salary != nil {
		add("salary", *update.Salary)
	}
	if update.ContactName != nil {
		add("contact_name", *update.ContactName)
	}
	if update.ContactEmail != nil {
		add("contact_email", *update.ContactEmail)
	}
	if update.ContactPhone != nil {
		add("contact_phone", *update.ContactPhone)
	}
	if update.Notes != nil {
		add("notes", *update.Notes)
	}
	if update.Status != nil {
		add("status", *update.Status)
	}
	if update.AppliedDate != nil {
		add("applied_date", *update.AppliedDate)
	}
	if update.InterviewDate != nil {
		add("interview_date", *update.InterviewDate)
	}
	if update.OfferDate != nil {
		add("offer_date", *update.OfferDate)
	}
	if update.RejectedDate != nil {
		add("rejected_date", *update.RejectedDate)
	}

	args = append(args, jobID, userID)
	query := fmt.Sprintf(
		`UPDATE jobs SET %s WHERE id = $%d AND user_id = $%d RETURNING`+jobColumns,
		strings.Join(set, ", "), len(args)-1, len(args),
	)
	return query, args
}

func (r *jobRepository) Update(ctx context.Context, userID, jobID string, update models.JobUpdate) (models.Job, error) {
	query, args := buildUpdateJobQuery(jobID, userID, update)
	job, err := scanJob(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Job{}, models.ErrNotFound
		}
		return models.Job{}, errors.Wrap(err, "update job")
	}
	return job, nil
}

func (r *jobRepository) Delete(ctx context.Context, userID, jobID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1 AND user_id = $2`, jobID, userID)
	if err != nil {
		return errors.Wrap(err, "delete job")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "delete job rows affected")
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(row rowScanner) (models.Job, error) {
	var (
		job                                      models.Job
		applied, interview, offered, rejected    sql.NullTime
		location, url, description, salary       sql.NullString
		contactName, contactEmail, contactPhone  sql.NullString
		notes                                    sql.NullString
	)
	err := row.Scan(
		&job.ID,
		&job.UserID,
		&job.Company,
		&job.Position,
		&location,
		&url,
		&description,
		&salary,
		&contactName,
		&contactEmail,
		&contactPhone,
		&notes,
		&job.Status,
		&applied,
		&interview,
		&offered,
		&rejected,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return models.Job{}, err
	}

	job.Location = location.String
	job.URL = url.String
	job.Description = description.String
	job.Salary = salary.String
	job.ContactName = contactName.String
	job.ContactEmail = contactEmail.String
	job.ContactPhone = contactPhone.String
	job.Notes = notes.String
	if applied.Valid {
		job.AppliedDate = &applied.Time
	}
	if interview.Valid {
		job.InterviewDate = &interview.Time
	}
	if offered.Valid {
		job.OfferDate = &offered.Time
	}
	if rejected.Valid {
		job.RejectedDate = &rejected.Time
	}
	return job, nil
}
