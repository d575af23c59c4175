package memory

import (
	"context"
	"testing"
	"time"

	"github.com/chrisdamba/nutriplan/internal/catalog"
	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/chrisdamba/nutriplan/internal/plan"
	"github.com/chrisdamba/nutriplan/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ repositories.PlanRepository = (*PlanRepository)(nil)
	_ repositories.WeekRepository = (*WeekRepository)(nil)
)

func TestPlanRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewPlanRepository()

	_, err := repo.LoadPlan(ctx)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	_, err = repo.LoadCatalog(ctx)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	w := plan.EmptyWeek()
	_, err = plan.AddEntry(w, models.Monday, models.Lunch, "2-3")
	require.NoError(t, err)
	require.NoError(t, repo.SavePlan(ctx, w))

	// later edits to the caller's plan are not visible in the store
	_, err = plan.AddEntry(w, models.Monday, models.Lunch, "6-1")
	require.NoError(t, err)

	loaded, err := repo.LoadPlan(ctx)
	require.NoError(t, err)
	require.Len(t, loaded[models.Monday][models.Lunch], 1)
	assert.Equal(t, "2-3", loaded[models.Monday][models.Lunch][0].FoodID)

	groups := catalog.DefaultGroups()
	require.NoError(t, repo.SaveCatalog(ctx, groups))
	loadedGroups, err := repo.LoadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, groups, loadedGroups)
}

func TestWeekRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewWeekRepository()

	weeks := []*models.GeneratedWeek{
		{ID: "a", GeneratedAt: time.Unix(100, 0).UTC(), Seed: 1, DailyTarget: 1500, Plan: plan.EmptyWeek()},
		{ID: "b", GeneratedAt: time.Unix(200, 0).UTC(), Seed: 2, DailyTarget: 1800, Plan: plan.EmptyWeek()},
	}
	require.NoError(t, repo.BulkCreate(ctx, weeks))
	assert.Error(t, repo.Create(ctx, weeks[0]), "duplicate id")

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, 1800, all[1].DailyTarget)

	require.NoError(t, repo.DeleteAll(ctx))
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.NoError(t, repo.Create(ctx, weeks[0]))
}
