package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	v := viper.New()
	v.AddConfigPath(t.TempDir())
	v.SetConfigName("missing")

	cfg, err := LoadConfig(v, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultDailyCalorieTarget, cfg.DailyTarget)
	assert.Equal(t, 1, cfg.Weeks)
	assert.Equal(t, "console", cfg.OutputFormat)
	assert.Equal(t, "nutriplan_data", cfg.Redis.PlanKey)
	assert.Equal(t, "10s", cfg.ShutdownTimeout.String())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
seed: 7
daily_target: 1800
output_format: parquet
output_path: /tmp/out
cloud_storage:
  provider: s3
  bucket_name: plans
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := LoadConfig(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 1800, cfg.DailyTarget)
	assert.Equal(t, "parquet", cfg.OutputFormat)
	assert.Equal(t, "plans", cfg.CloudStorage.BucketName)
}

func TestLoadConfigExplicitMissingFile(t *testing.T) {
	_, err := LoadConfig(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{DailyTarget: 1500, Weeks: 1, OutputFormat: "xml"}
	assert.Error(t, cfg.Validate())

	cfg.OutputFormat = "json"
	assert.NoError(t, cfg.Validate())

	cfg.DailyTarget = 0
	assert.Error(t, cfg.Validate())
}
