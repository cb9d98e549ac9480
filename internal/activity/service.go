// Package activity records the append-only audit trail of job mutations.
package activity

import (
	"context"

	"github.com/jobdeck/jobdeck-api/internal/models"
	"github.com/jobdeck/jobdeck-api/internal/repository"
	"github.com/rs/zerolog"
)

type Service interface {
	// Record writes one audit row. Failures are logged and swallowed: the
	// primary mutation has already succeeded by the time this runs, and a
	// lost audit row must not surface as a failed request.
	Record(ctx context.Context, userID string, activityType models.ActivityType, jobID *string, description string)
	ListRecent(ctx context.Context, userID string, limit int) ([]models.Activity, error)
}

type service struct {
	repo   repository.ActivityRepository
	logger zerolog.Logger
}

func NewService(repo repository.ActivityRepository, logger zerolog.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger.With().Str("component", "activity_service").Logger(),
	}
}

func (s *service) Record(ctx context.Context, userID string, activityType models.ActivityType, jobID *string, description string) {
	_, err := s.repo.Insert(ctx, repository.CreateActivityParams{
		UserID:       userID,
		ActivityType: activityType,
		JobID:        jobID,
		Description:  description,
	})
	if err != nil {
		s.logger.Error().Err(err).
			Str("activity_type", string(activityType)).
			Str("user_id", userID).
			Msg("failed to record activity")
	}
}

func (s *service) ListRecent(ctx context.Context, userID string, limit int) ([]models.Activity, error) {
	return s.repo.ListRecent(ctx, userID, limit)
}
