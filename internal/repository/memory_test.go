package repository

import (
	"context"
	"testing"

	"github.com/jobdeck/jobdeck-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedJob(t *testing.T, repo *MemoryJobRepository, userID, company string) models.Job {
	t.Helper()
	job, err := repo.Insert(context.Background(), models.Job{
		UserID:   userID,
		Company:  company,
		Position: "Engineer",
		Status:   models.StatusSaved,
	})
	require.NoError(t, err)
	return job
}

func TestMemoryJobRepositoryScopesByUser(t *testing.T) {
	repo := NewMemoryJobRepository()
	ctx := context.Background()
	job := seedJob(t, repo, "user-1", "Acme")

	// Another user's id never reveals the record's existence.
	_, err := repo.GetByID(ctx, "user-2", job.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = repo.Update(ctx, "user-2", job.ID, models.JobUpdate{})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "user-2", job.ID), models.ErrNotFound)

	got, err := repo.GetByID(ctx, "user-1", job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Company)
}

func TestMemoryJobRepositoryFilters(t *testing.T) {
	repo := NewMemoryJobRepository()
	ctx := context.Background()
	seedJob(t, repo, "user-1", "Acme")
	second := seedJob(t, repo, "user-1", "Globex")
	applied := models.StatusApplied
	_, err := repo.Update(ctx, "user-1", second.ID, models.JobUpdate{Status: &applied})
	require.NoError(t, err)

	byStatus, err := repo.ListByUser(ctx, "user-1", models.JobFilter{Status: models.StatusApplied})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Globex", byStatus[0].Company)

	bySearch, err := repo.ListByUser(ctx, "user-1", models.JobFilter{Search: "acm"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, "Acme", bySearch[0].Company)

	all, err := repo.ListByUser(ctx, "user-1", models.JobFilter{SortBy: "company", SortDirection: "asc"})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Acme", all[0].Company)
}

func TestMemoryJobRepositoryLastWriteWins(t *testing.T) {
	repo := NewMemoryJobRepository()
	ctx := context.Background()
	job := seedJob(t, repo, "user-1", "Acme")

	// Two updates racing on the same record resolve by arrival order at the
	// repository; the second write is the one that sticks, with no field
	// corruption in between.
	interview := models.StatusInterview
	offer := models.StatusOffer
	_, err := repo.Update(ctx, "user-1", job.ID, models.JobUpdate{Status: &interview})
	require.NoError(t, err)
	_, err = repo.Update(ctx, "user-1", job.ID, models.JobUpdate{Status: &offer})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "user-1", job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOffer, got.Status)
	assert.Equal(t, "Acme", got.Company)
}

func TestMemoryActivityRepositoryNewestFirst(t *testing.T) {
	jobs := NewMemoryJobRepository()
	repo := NewMemoryActivityRepository(jobs)
	ctx := context.Background()
	job := seedJob(t, jobs, "user-1", "Acme")

	for _, desc := range []string{"first", "second", "third"} {
		_, err := repo.Insert(ctx, CreateActivityParams{
			UserID:       "user-1",
			ActivityType: models.ActivityJobUpdated,
			JobID:        &job.ID,
			Description:  desc,
		})
		require.NoError(t, err)
	}

	recent, err := repo.ListRecent(ctx, "user-1", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].Description)
	assert.Equal(t, "second", recent[1].Description)
	require.NotNil(t, recent[0].Job)
	assert.Equal(t, "Acme", recent[0].Job.Company)
}
