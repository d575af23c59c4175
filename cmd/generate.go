package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/chrisdamba/nutriplan/internal/output"
	"github.com/chrisdamba/nutriplan/internal/repositories/postgres"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var planOut string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate weekly plans and export them",
	Long: `Generates one or more weeks from the catalog and writes every week and entry to the configured
destination: the console, JSON, CSV or Parquet files, S3, or Kafka.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runGenerate(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Int("weeks", 1, "Number of weeks to generate")
	generateCmd.Flags().String("output-format", "console", "Output format: console, json, csv or parquet")
	generateCmd.Flags().String("output-path", "", "Output directory (console output if empty)")
	generateCmd.Flags().String("output-folder", "nutriplan", "Folder created under the output path or bucket")
	generateCmd.Flags().String("output-destination", "local", "Output destination: local or cloud")
	generateCmd.Flags().String("bucket-name", "", "Bucket used when the destination is cloud")
	generateCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka output")
	generateCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	generateCmd.Flags().StringVar(&planOut, "plan-out", "", "Write the last generated week to this JSON file")

	bindFlags(generateCmd.Flags(), map[string]string{
		"weeks":                     "weeks",
		"output_format":             "output-format",
		"output_path":               "output-path",
		"output_folder":             "output-folder",
		"output_destination":        "output-destination",
		"cloud_storage.bucket_name": "bucket-name",
		"kafka_enabled":             "kafka-enabled",
		"kafka_broker_list":         "kafka-broker-list",
	})
}

func runGenerate(ctx context.Context, cfg *models.Config) error {
	repo, closeRepo, err := openPlanRepository(cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	cat, err := loadCatalog(ctx, cfg, repo)
	if err != nil {
		return err
	}
	gen := generatorFunc(cfg)(cat)

	dest, err := output.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create output destination: %w", err)
	}
	defer func() {
		if err := dest.Close(); err != nil {
			log.Printf("Error closing output: %v", err)
		}
	}()

	var bar *progressbar.ProgressBar
	if cfg.Weeks > 1 {
		bar = progressbar.NewOptions(cfg.Weeks,
			progressbar.OptionSetDescription("Generating weeks"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
		)
	}

	weeks := make([]*models.GeneratedWeek, 0, cfg.Weeks)
	for i := 0; i < cfg.Weeks; i++ {
		week := &models.GeneratedWeek{
			ID:          uuid.NewString(),
			GeneratedAt: time.Now().UTC(),
			Seed:        gen.Seed(),
			DailyTarget: gen.DailyTarget(),
			Plan:        gen.GenerateWeek(),
		}
		weeks = append(weeks, week)

		messages, err := output.Messages(*week, cat)
		if err != nil {
			return err
		}
		for _, m := range messages {
			if err := dest.WriteMessage(m.Topic, m.Message); err != nil {
				log.Printf("Error writing message to %s: %v", m.Topic, err)
			}
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	log.Printf("Generated %d week(s) with seed %d", len(weeks), gen.Seed())

	last := weeks[len(weeks)-1]
	if planOut != "" {
		if err := writePlanFile(planOut, last.Plan); err != nil {
			return fmt.Errorf("failed to write plan file: %w", err)
		}
	}
	if repo != nil {
		if err := repo.SavePlan(ctx, last.Plan); err != nil {
			return fmt.Errorf("failed to store plan: %w", err)
		}
	}
	if cfg.Database.URL != "" {
		if err := archiveWeeks(ctx, cfg.Database.URL, weeks); err != nil {
			return err
		}
	}
	return nil
}

func archiveWeeks(ctx context.Context, url string, weeks []*models.GeneratedWeek) error {
	pool, err := postgres.NewPool(ctx, url)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := postgres.NewWeekRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if err := repo.BulkCreate(ctx, weeks); err != nil {
		return fmt.Errorf("failed to archive weeks: %w", err)
	}
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	log.Printf("Archived %d week(s), %d in total", len(weeks), count)
	return nil
}
