package repository

import (
	"context"
	"database/sql"

	"github.com/jobdeck/jobdeck-api/internal/models"
	"github.com/pkg/errors"
)

type ActivityRepository interface {
	Insert(ctx context.Context, params CreateActivityParams) (models.Activity, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]models.Activity, error)
}

type CreateActivityParams struct {
	UserID       string
	ActivityType models.ActivityType
	JobID        *string
	Description  string
}

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Insert(ctx context.Context, params CreateActivityParams) (models.Activity, error) {
	const query = `
		INSERT INTO activities (user_id, activity_type, job_id, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, activity_type, job_id, description, created_at
	`
	var (
		act   models.Activity
		jobID sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, params.UserID, params.ActivityType, params.JobID, params.Description).
		Scan(&act.ID, &act.UserID, &act.ActivityType, &jobID, &act.Description, &act.CreatedAt)
	if err != nil {
		return models.Activity{}, errors.Wrap(err, "insert activity")
	}
	if jobID.Valid {
		act.JobID = &jobID.String
	}
	return act, nil
}

func (r *activityRepository) ListRecent(ctx context.Context, userID string, limit int) ([]models.Activity, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	const query = `
		SELECT a.id, a.user_id, a.activity_type, a.job_id, a.description, a.created_at,
		       j.id, j.company, j.position
		FROM activities a
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list activities")
	}
	defer rows.Close()

	activities := []models.Activity{}
	for rows.Next() {
		var (
			act                         models.Activity
			jobID                       sql.NullString
			summaryID, company, position sql.NullString
		)
		if err := rows.Scan(&act.ID, &act.UserID, &act.ActivityType, &jobID, &act.Description, &act.CreatedAt,
			&summaryID, &company, &position); err != nil {
			return nil, errors.Wrap(err, "scan activity")
		}
		if jobID.Valid {
			act.JobID = &jobID.String
		}
		if summaryID.Valid {
			act.Job = &models.JobSummary{ID: summaryID.String, Company: company.String, Position: position.String}
		}
		activities = append(activities, act)
	}
	return activities, rows.Err()
}
