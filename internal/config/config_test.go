package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) }) //nolint:errcheck
	return dir
}

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/Top Indian Places to Visit.csv", cfg.Dataset.Path)
	assert.Empty(t, cfg.Dataset.Sheet)
	assert.Equal(t, 5, cfg.Ranking.TopN)
	assert.InDelta(t, 300, cfg.Ranking.MaxDistanceKM, 0.001)
	assert.InDelta(t, 4.3, cfg.Ranking.MinRating, 0.001)
	assert.Equal(t, "haversine", cfg.Ranking.DistanceMethod)
	assert.Empty(t, cfg.Registry.ExtraPath)
	assert.True(t, cfg.Report.Enabled)
	assert.Equal(t, "output", cfg.Report.OutputDir)
	assert.Empty(t, cfg.Metrics.TextfilePath)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.NoError(t, cfg.Validate())
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
dataset:
  path: places.xlsx
  sheet: India
ranking:
  top_n: 10
  max_distance_km: 450
  distance_method: vincenty
report:
  enabled: false
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "places.xlsx", cfg.Dataset.Path)
	assert.Equal(t, "India", cfg.Dataset.Sheet)
	assert.Equal(t, 10, cfg.Ranking.TopN)
	assert.InDelta(t, 450, cfg.Ranking.MaxDistanceKM, 0.001)
	assert.Equal(t, "vincenty", cfg.Ranking.DistanceMethod)
	assert.False(t, cfg.Report.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	// Defaults still apply for unset values
	assert.InDelta(t, 4.3, cfg.Ranking.MinRating, 0.001)
	assert.Equal(t, "output", cfg.Report.OutputDir)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("ranking: [unclosed"), 0o644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read file")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
ranking:
  top_n: 10
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	t.Setenv("GETAWAY_RANKING_TOP_N", "3")
	t.Setenv("GETAWAY_LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, 3, cfg.Ranking.TopN)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chdirTemp(t)

	t.Setenv("GETAWAY_RANKING_MIN_RATING", "4.8")
	t.Setenv("GETAWAY_REPORT_OUTPUT_DIR", "/tmp/reports")

	cfg, err := Load()
	require.NoError(t, err)
	assert.InDelta(t, 4.8, cfg.Ranking.MinRating, 0.001)
	assert.Equal(t, "/tmp/reports", cfg.Report.OutputDir)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)

	// Register cleanup for the variable godotenv will set, then clear it.
	t.Setenv("GETAWAY_METRICS_TEXTFILE_PATH", "")
	require.NoError(t, os.Unsetenv("GETAWAY_METRICS_TEXTFILE_PATH"))

	env := "GETAWAY_METRICS_TEXTFILE_PATH=metrics/getaway.prom\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "metrics/getaway.prom", cfg.Metrics.TextfilePath)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

// validDefaults returns a Config with all defaults populated for validation tests.
func validDefaults() *Config {
	cfg := &Config{}
	cfg.Dataset.Path = "data/places.csv"
	cfg.Ranking.TopN = 5
	cfg.Ranking.MaxDistanceKM = 300
	cfg.Ranking.MinRating = 4.3
	cfg.Ranking.DistanceMethod = "haversine"
	cfg.Report.Enabled = true
	cfg.Report.OutputDir = "output"
	cfg.Log.Level = "warn"
	cfg.Log.Format = "console"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"empty dataset path", func(c *Config) { c.Dataset.Path = " " }, "dataset.path is required"},
		{"zero top_n", func(c *Config) { c.Ranking.TopN = 0 }, "ranking.top_n must be > 0"},
		{"negative distance", func(c *Config) { c.Ranking.MaxDistanceKM = -1 }, "ranking.max_distance_km must be > 0"},
		{"rating above 5 is allowed", func(c *Config) { c.Ranking.MinRating = 5.5 }, ""},
		{"negative rating is allowed", func(c *Config) { c.Ranking.MinRating = -0.1 }, ""},
		{"rating not a number", func(c *Config) { c.Ranking.MinRating = math.NaN() }, "ranking.min_rating must be a finite number"},
		{"rating infinite", func(c *Config) { c.Ranking.MinRating = math.Inf(1) }, "ranking.min_rating must be a finite number"},
		{"unknown method", func(c *Config) { c.Ranking.DistanceMethod = "manhattan" }, `ranking.distance_method "manhattan"`},
		{"report dir missing", func(c *Config) { c.Report.OutputDir = "" }, "report.output_dir is required"},
		{"report dir ignored when disabled", func(c *Config) { c.Report.Enabled = false; c.Report.OutputDir = "" }, ""},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, `log.level "loud"`},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format must be json or console"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validDefaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := validDefaults()
	cfg.Ranking.TopN = 0
	cfg.Ranking.MaxDistanceKM = 0
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ranking.top_n must be > 0 (got 0); ranking.max_distance_km must be > 0 (got 0)")
	assert.Contains(t, err.Error(), "log.format")
}
