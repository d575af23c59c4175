package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/chrisdamba/nutriplan/internal/plan"
)

type WeekRepository struct {
	mu    sync.RWMutex
	weeks []*models.GeneratedWeek
	ids   map[string]struct{}
}

func NewWeekRepository() *WeekRepository {
	return &WeekRepository{ids: make(map[string]struct{})}
}

func (r *WeekRepository) BulkCreate(ctx context.Context, weeks []*models.GeneratedWeek) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range weeks {
		if _, ok := r.ids[w.ID]; ok {
			return fmt.Errorf("week %s already exists", w.ID)
		}
	}
	for _, w := range weeks {
		r.insert(w)
	}
	return nil
}

func (r *WeekRepository) Create(ctx context.Context, week *models.GeneratedWeek) error {
	return r.BulkCreate(ctx, []*models.GeneratedWeek{week})
}

func (r *WeekRepository) insert(w *models.GeneratedWeek) {
	stored := *w
	stored.Plan = plan.Clone(w.Plan)
	r.weeks = append(r.weeks, &stored)
	r.ids[w.ID] = struct{}{}
}

func (r *WeekRepository) GetAll(ctx context.Context) ([]*models.GeneratedWeek, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	weeks := make([]*models.GeneratedWeek, 0, len(r.weeks))
	for _, w := range r.weeks {
		copied := *w
		copied.Plan = plan.Clone(w.Plan)
		weeks = append(weeks, &copied)
	}
	return weeks, nil
}

func (r *WeekRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.weeks), nil
}

func (r *WeekRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.weeks = nil
	r.ids = make(map[string]struct{})
	return nil
}
