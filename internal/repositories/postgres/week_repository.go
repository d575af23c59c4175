package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
    CREATE TABLE IF NOT EXISTS generated_weeks (
        id           TEXT PRIMARY KEY,
        generated_at TIMESTAMPTZ NOT NULL,
        seed         BIGINT NOT NULL,
        daily_target INTEGER NOT NULL,
        plan         JSONB NOT NULL,
        created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )
`

type WeekRepository struct {
	pool *pgxpool.Pool
}

func NewPool(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to reach database: %w", err)
	}
	return pool, nil
}

func NewWeekRepository(pool *pgxpool.Pool) *WeekRepository {
	return &WeekRepository{pool: pool}
}

func (r *WeekRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, schema)
	return err
}

func (r *WeekRepository) BulkCreate(ctx context.Context, weeks []*models.GeneratedWeek) error {
	plans := make([][]byte, len(weeks))
	for i, w := range weeks {
		data, err := json.Marshal(w.Plan)
		if err != nil {
			return fmt.Errorf("failed to encode week %s: %w", w.ID, err)
		}
		plans[i] = data
	}

	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"generated_weeks"},
		[]string{"id", "generated_at", "seed", "daily_target", "plan"},
		pgx.CopyFromSlice(len(weeks), func(i int) ([]interface{}, error) {
			return []interface{}{
				weeks[i].ID,
				weeks[i].GeneratedAt,
				weeks[i].Seed,
				weeks[i].DailyTarget,
				plans[i],
			}, nil
		}),
	)
	return err
}

func (r *WeekRepository) Create(ctx context.Context, week *models.GeneratedWeek) error {
	query := `
        INSERT INTO generated_weeks (
            id, generated_at, seed, daily_target, plan
        ) VALUES (
            $1, $2, $3, $4, $5
        )
    `

	plan, err := json.Marshal(week.Plan)
	if err != nil {
		return fmt.Errorf("failed to encode week %s: %w", week.ID, err)
	}
	_, err = r.pool.Exec(ctx, query,
		week.ID,
		week.GeneratedAt,
		week.Seed,
		week.DailyTarget,
		plan,
	)
	return err
}

func (r *WeekRepository) GetAll(ctx context.Context) ([]*models.GeneratedWeek, error) {
	query := `
        SELECT
            id,
            generated_at,
            seed,
            daily_target,
            plan,
            created_at
        FROM generated_weeks
        ORDER BY generated_at, id
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var weeks []*models.GeneratedWeek
	for rows.Next() {
		week := &models.GeneratedWeek{}
		var plan []byte
		var createdAt time.Time
		err := rows.Scan(
			&week.ID,
			&week.GeneratedAt,
			&week.Seed,
			&week.DailyTarget,
			&plan,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(plan, &week.Plan); err != nil {
			return nil, fmt.Errorf("failed to decode week %s: %w", week.ID, err)
		}
		weeks = append(weeks, week)
	}
	return weeks, rows.Err()
}

func (r *WeekRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM generated_weeks").Scan(&count)
	return count, err
}

func (r *WeekRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "TRUNCATE TABLE generated_weeks")
	return err
}
