package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/chrisdamba/nutriplan/internal/plan"
	"github.com/chrisdamba/nutriplan/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ repositories.WeekRepository = (*WeekRepository)(nil)

// Runs against a scratch database named by NUTRIPLAN_TEST_DATABASE_URL.
func TestWeekRepository(t *testing.T) {
	url := os.Getenv("NUTRIPLAN_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("NUTRIPLAN_TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	pool, err := NewPool(ctx, url)
	require.NoError(t, err)
	defer pool.Close()

	repo := NewWeekRepository(pool)
	require.NoError(t, repo.EnsureSchema(ctx))
	require.NoError(t, repo.DeleteAll(ctx))

	w := plan.EmptyWeek()
	_, err = plan.AddEntry(w, models.Monday, models.Dinner, "2-5")
	require.NoError(t, err)

	generated := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &models.GeneratedWeek{ID: "w1", GeneratedAt: generated, Seed: 7, DailyTarget: 1500, Plan: w}))
	require.NoError(t, repo.BulkCreate(ctx, []*models.GeneratedWeek{
		{ID: "w2", GeneratedAt: generated.Add(time.Hour), Seed: 8, DailyTarget: 1600, Plan: plan.EmptyWeek()},
	}))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	weeks, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, weeks, 2)
	assert.Equal(t, "w1", weeks[0].ID)
	assert.Equal(t, int64(7), weeks[0].Seed)
	assert.True(t, generated.Equal(weeks[0].GeneratedAt))
	assert.Equal(t, "2-5", weeks[0].Plan[models.Monday][models.Dinner][0].FoodID)

	require.NoError(t, repo.DeleteAll(ctx))
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
