package api

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chrisdamba/nutriplan/internal/catalog"
	"github.com/chrisdamba/nutriplan/internal/generator"
	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/chrisdamba/nutriplan/internal/plan"
	"github.com/chrisdamba/nutriplan/internal/repositories"
)

// GeneratorFunc builds a generator over a catalog. It is called again when
// the catalog is replaced.
type GeneratorFunc func(cat *catalog.Catalog) *generator.Generator

// Session is the one plan being edited, with the catalog and generator it
// is edited against.
type Session struct {
	mu           sync.Mutex
	catalog      *catalog.Catalog
	gen          *generator.Generator
	newGenerator GeneratorFunc
	plan         models.WeeklyPlan
	repo         repositories.PlanRepository
	saveTimeout  time.Duration
	saves        sync.WaitGroup
	saveMu       sync.Mutex
	planSeq      atomic.Uint64
	catalogSeq   atomic.Uint64
}

// NewSession starts from week, or from an empty week when week is nil.
// repo may be nil, in which case nothing is persisted.
func NewSession(cat *catalog.Catalog, newGenerator GeneratorFunc, week models.WeeklyPlan, repo repositories.PlanRepository) *Session {
	if week == nil {
		week = plan.EmptyWeek()
	}
	return &Session{
		catalog:      cat,
		gen:          newGenerator(cat),
		newGenerator: newGenerator,
		plan:         plan.Normalize(week),
		repo:         repo,
		saveTimeout:  5 * time.Second,
	}
}

func (s *Session) Catalog() *catalog.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog
}

func (s *Session) DailyTarget() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen.DailyTarget()
}

// Plan returns a copy of the current plan.
func (s *Session) Plan() models.WeeklyPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return plan.Clone(s.plan)
}

// Update runs fn on the live plan under the session lock and persists the
// result when fn succeeds.
func (s *Session) Update(fn func(cat *catalog.Catalog, gen *generator.Generator, w models.WeeklyPlan) (models.WeeklyPlan, error)) (models.WeeklyPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.catalog, s.gen, s.plan)
	if err != nil {
		return nil, err
	}
	s.plan = next
	snapshot := plan.Clone(next)
	s.save(&s.planSeq, func(ctx context.Context) error {
		return s.repo.SavePlan(ctx, snapshot)
	})
	return plan.Clone(next), nil
}

// ReplaceCatalog swaps the catalog wholesale and rebuilds the generator.
// Entries that no longer resolve stay in the plan and are skipped by
// accounting.
func (s *Session) ReplaceCatalog(cat *catalog.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog = cat
	s.gen = s.newGenerator(cat)
	groups := cat.Groups()
	s.save(&s.catalogSeq, func(ctx context.Context) error {
		return s.repo.SaveCatalog(ctx, groups)
	})
}

// save persists in the background so requests never wait on the store.
// Saves run one at a time; a snapshot superseded by a newer one of the same
// kind is skipped.
func (s *Session) save(seq *atomic.Uint64, fn func(ctx context.Context) error) {
	if s.repo == nil {
		return
	}
	mine := seq.Add(1)
	s.saves.Add(1)
	go func() {
		defer s.saves.Done()
		s.saveMu.Lock()
		defer s.saveMu.Unlock()
		if seq.Load() != mine {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			log.Printf("Error persisting session: %v", err)
		}
	}()
}

// Wait blocks until pending saves have finished.
func (s *Session) Wait() {
	s.saves.Wait()
}
