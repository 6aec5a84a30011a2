package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/getaway-cli/internal/geo"
)

// Config holds the full application configuration.
type Config struct {
	Dataset  DatasetConfig  `yaml:"dataset" mapstructure:"dataset"`
	Ranking  RankingConfig  `yaml:"ranking" mapstructure:"ranking"`
	Registry RegistryConfig `yaml:"registry" mapstructure:"registry"`
	Report   ReportConfig   `yaml:"report" mapstructure:"report"`
	Metrics  MetricsConfig  `yaml:"metrics" mapstructure:"metrics"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// DatasetConfig locates the destination dataset.
type DatasetConfig struct {
	Path  string `yaml:"path" mapstructure:"path"`
	Sheet string `yaml:"sheet" mapstructure:"sheet"`
}

// RankingConfig holds the default ranking parameters.
type RankingConfig struct {
	TopN           int     `yaml:"top_n" mapstructure:"top_n"`
	MaxDistanceKM  float64 `yaml:"max_distance_km" mapstructure:"max_distance_km"`
	MinRating      float64 `yaml:"min_rating" mapstructure:"min_rating"`
	DistanceMethod string  `yaml:"distance_method" mapstructure:"distance_method"`
}

// RegistryConfig points at an optional YAML file of extra cities.
type RegistryConfig struct {
	ExtraPath string `yaml:"extra_path" mapstructure:"extra_path"`
}

// ReportConfig configures the plain-text report files.
type ReportConfig struct {
	Enabled   bool   `yaml:"enabled" mapstructure:"enabled"`
	OutputDir string `yaml:"output_dir" mapstructure:"output_dir"`
}

// MetricsConfig configures the metrics textfile export.
type MetricsConfig struct {
	TextfilePath string `yaml:"textfile_path" mapstructure:"textfile_path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from .env, file and environment.
func Load() (*Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("GETAWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("dataset.path", "data/Top Indian Places to Visit.csv")
	v.SetDefault("dataset.sheet", "")
	v.SetDefault("ranking.top_n", 5)
	v.SetDefault("ranking.max_distance_km", 300.0)
	v.SetDefault("ranking.min_rating", 4.3)
	v.SetDefault("ranking.distance_method", string(geo.MethodHaversine))
	v.SetDefault("registry.extra_path", "")
	v.SetDefault("report.enabled", true)
	v.SetDefault("report.output_dir", "output")
	v.SetDefault("metrics.textfile_path", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.Dataset.Path) == "" {
		errs = append(errs, "dataset.path is required")
	}
	if c.Ranking.TopN <= 0 {
		errs = append(errs, fmt.Sprintf("ranking.top_n must be > 0 (got %d)", c.Ranking.TopN))
	}
	if c.Ranking.MaxDistanceKM <= 0 {
		errs = append(errs, fmt.Sprintf("ranking.max_distance_km must be > 0 (got %v)", c.Ranking.MaxDistanceKM))
	}
	if math.IsNaN(c.Ranking.MinRating) || math.IsInf(c.Ranking.MinRating, 0) {
		errs = append(errs, fmt.Sprintf("ranking.min_rating must be a finite number (got %v)", c.Ranking.MinRating))
	}
	if _, err := geo.ParseMethod(c.Ranking.DistanceMethod); err != nil {
		errs = append(errs, fmt.Sprintf("ranking.distance_method %q is not supported", c.Ranking.DistanceMethod))
	}
	if c.Report.Enabled && strings.TrimSpace(c.Report.OutputDir) == "" {
		errs = append(errs, "report.output_dir is required when reports are enabled")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level %q is not a valid level", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be json or console (got %q)", c.Log.Format))
	}

	if len(errs) > 0 {
		return eris.New("config: " + strings.Join(errs, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger. Output goes to stderr so
// command output on stdout stays clean.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
