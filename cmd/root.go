package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/chrisdamba/nutriplan/internal/models"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "nutriplan",
	Short: "Generates calorie-aware weekly diet plans",
	Long: `nutriplan builds weekly meal plans from a catalog of food groups with daily portion limits.
Plans can be edited over HTTP, summarized per day, turned into a shopping list and exported to files, S3 or Kafka.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.nutriplan.yaml)")

	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed for plan generation (0 seeds from the clock)")
	rootCmd.PersistentFlags().Int("daily-target", models.DefaultDailyCalorieTarget, "Daily calorie target")
	rootCmd.PersistentFlags().String("catalog-file", "", "Catalog file (YAML or JSON) replacing the built-in catalog")
	rootCmd.PersistentFlags().String("redis-url", "", "Redis URL holding the current plan and catalog")
	rootCmd.PersistentFlags().String("database-url", "", "PostgreSQL URL archiving generated weeks")

	bindFlags(rootCmd.PersistentFlags(), map[string]string{
		"seed":         "seed",
		"daily_target": "daily-target",
		"catalog_file": "catalog-file",
		"redis.url":    "redis-url",
		"database.url": "database-url",
	})
}

// bindFlags binds config keys to the dashed flag names used on the command
// line.
func bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			log.Fatalf("Error binding flag %s: %v", name, err)
		}
	}
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	if cfgFile == "" {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".nutriplan")
	}

	viper.SetEnvPrefix("NUTRIPLAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func loadConfig() (*models.Config, error) {
	cfg, err := models.LoadConfig(viper.GetViper(), cfgFile)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintln(os.Stderr, "Using config file:", used)
	}
	return cfg, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
