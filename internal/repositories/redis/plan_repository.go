// Package redis stores the editable plan and the customized catalog as JSON
// values under two fixed keys.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/chrisdamba/nutriplan/internal/repositories"
	goredis "github.com/redis/go-redis/v9"
)

const (
	DefaultPlanKey    = "nutriplan_data"
	DefaultCatalogKey = "nutriplan_catalog"
)

// Client is the subset of the go-redis client the repository needs.
type Client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
}

type PlanRepository struct {
	client     Client
	planKey    string
	catalogKey string
}

// NewClient connects to url and pings the server.
func NewClient(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Printf("Successfully connected to Redis at %s", opts.Addr)
	return client, nil
}

func NewPlanRepository(client Client, cfg models.RedisConfig) *PlanRepository {
	r := &PlanRepository{client: client, planKey: cfg.PlanKey, catalogKey: cfg.CatalogKey}
	if r.planKey == "" {
		r.planKey = DefaultPlanKey
	}
	if r.catalogKey == "" {
		r.catalogKey = DefaultCatalogKey
	}
	return r
}

func (r *PlanRepository) LoadPlan(ctx context.Context) (models.WeeklyPlan, error) {
	var plan models.WeeklyPlan
	if err := r.load(ctx, r.planKey, &plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (r *PlanRepository) SavePlan(ctx context.Context, plan models.WeeklyPlan) error {
	return r.save(ctx, r.planKey, plan)
}

func (r *PlanRepository) LoadCatalog(ctx context.Context) ([]models.FoodGroup, error) {
	var groups []models.FoodGroup
	if err := r.load(ctx, r.catalogKey, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *PlanRepository) SaveCatalog(ctx context.Context, groups []models.FoodGroup) error {
	return r.save(ctx, r.catalogKey, groups)
}

func (r *PlanRepository) load(ctx context.Context, key string, dst interface{}) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return repositories.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func (r *PlanRepository) save(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
