package repositories

import (
	"context"
	"errors"

	"github.com/chrisdamba/nutriplan/internal/models"
)

// ErrNotFound is returned when nothing has been stored under a key yet.
var ErrNotFound = errors.New("not found")

// PlanRepository keeps the single editable plan and an optional customized
// catalog.
type PlanRepository interface {
	LoadPlan(ctx context.Context) (models.WeeklyPlan, error)
	SavePlan(ctx context.Context, plan models.WeeklyPlan) error
	LoadCatalog(ctx context.Context) ([]models.FoodGroup, error)
	SaveCatalog(ctx context.Context, groups []models.FoodGroup) error
}

// WeekRepository archives generated weeks.
type WeekRepository interface {
	BulkCreate(ctx context.Context, weeks []*models.GeneratedWeek) error
	Create(ctx context.Context, week *models.GeneratedWeek) error
	GetAll(ctx context.Context) ([]*models.GeneratedWeek, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
