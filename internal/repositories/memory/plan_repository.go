package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/chrisdamba/nutriplan/internal/repositories"
)

// PlanRepository stores JSON snapshots so callers never share memory with
// the stored values.
type PlanRepository struct {
	mu      sync.RWMutex
	plan    []byte
	catalog []byte
}

func NewPlanRepository() *PlanRepository {
	return &PlanRepository{}
}

func (r *PlanRepository) LoadPlan(ctx context.Context) (models.WeeklyPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.plan == nil {
		return nil, repositories.ErrNotFound
	}
	var plan models.WeeklyPlan
	if err := json.Unmarshal(r.plan, &plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (r *PlanRepository) SavePlan(ctx context.Context, plan models.WeeklyPlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.plan = data
	r.mu.Unlock()
	return nil
}

func (r *PlanRepository) LoadCatalog(ctx context.Context) ([]models.FoodGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.catalog == nil {
		return nil, repositories.ErrNotFound
	}
	var groups []models.FoodGroup
	if err := json.Unmarshal(r.catalog, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *PlanRepository) SaveCatalog(ctx context.Context, groups []models.FoodGroup) error {
	data, err := json.Marshal(groups)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.catalog = data
	r.mu.Unlock()
	return nil
}
