package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/chrisdamba/nutriplan/internal/api"
	"github.com/chrisdamba/nutriplan/internal/catalog"
	"github.com/chrisdamba/nutriplan/internal/generator"
	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/chrisdamba/nutriplan/internal/plan"
	"github.com/chrisdamba/nutriplan/internal/repositories"
	redisrepo "github.com/chrisdamba/nutriplan/internal/repositories/redis"
)

// openPlanRepository returns nil when no Redis URL is configured.
func openPlanRepository(cfg *models.Config) (repositories.PlanRepository, func(), error) {
	if cfg.Redis.URL == "" {
		return nil, func() {}, nil
	}
	client, err := redisrepo.NewClient(cfg.Redis.URL)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}
	return redisrepo.NewPlanRepository(client, cfg.Redis), closeFn, nil
}

// loadCatalog prefers the catalog file, then a catalog stored in repo, then
// the built-in catalog.
func loadCatalog(ctx context.Context, cfg *models.Config, repo repositories.PlanRepository) (*catalog.Catalog, error) {
	if cfg.CatalogFile != "" {
		return catalog.Load(cfg.CatalogFile)
	}
	if repo != nil {
		groups, err := repo.LoadCatalog(ctx)
		switch {
		case err == nil:
			return catalog.New(groups)
		case errors.Is(err, repositories.ErrNotFound):
		default:
			return nil, fmt.Errorf("failed to load stored catalog: %w", err)
		}
	}
	return catalog.Default(), nil
}

func generatorFunc(cfg *models.Config) api.GeneratorFunc {
	return func(cat *catalog.Catalog) *generator.Generator {
		opts := []generator.Option{generator.WithDailyTarget(cfg.DailyTarget)}
		if cfg.Seed != 0 {
			opts = append(opts, generator.WithSeed(cfg.Seed))
		}
		return generator.New(cat, opts...)
	}
}

// currentPlan reads planFile when given, then the stored plan, and
// otherwise generates a fresh week.
func currentPlan(ctx context.Context, cfg *models.Config, cat *catalog.Catalog, repo repositories.PlanRepository, planFile string) (models.WeeklyPlan, error) {
	if planFile != "" {
		return readPlanFile(planFile)
	}
	if repo != nil {
		week, err := repo.LoadPlan(ctx)
		if err == nil {
			return plan.Normalize(week), nil
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("failed to load stored plan: %w", err)
		}
		log.Printf("No stored plan, generating a new week")
	}
	return generatorFunc(cfg)(cat).GenerateWeek(), nil
}

func readPlanFile(path string) (models.WeeklyPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var week models.WeeklyPlan
	if err := json.Unmarshal(data, &week); err != nil {
		return nil, fmt.Errorf("failed to decode plan file %s: %w", path, err)
	}
	return plan.Normalize(week), nil
}

func writePlanFile(path string, week models.WeeklyPlan) error {
	data, err := json.MarshalIndent(week, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
