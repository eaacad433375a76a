package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/leads-cli/internal/store"
)

// Config holds the full application configuration.
type Config struct {
	Clean  CleanConfig  `yaml:"clean" mapstructure:"clean"`
	Dedupe DedupeConfig `yaml:"dedupe" mapstructure:"dedupe"`
	Batch  BatchConfig  `yaml:"batch" mapstructure:"batch"`
	NLP    NLPConfig    `yaml:"nlp" mapstructure:"nlp"`
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// CleanConfig configures record cleaning.
type CleanConfig struct {
	DefaultRegion string `yaml:"default_region" mapstructure:"default_region"`
	RulesPath     string `yaml:"rules_path" mapstructure:"rules_path"`
}

// DedupeConfig configures the composite deduplication key.
type DedupeConfig struct {
	Keys []string `yaml:"keys" mapstructure:"keys"`
}

// BatchConfig configures directory processing.
type BatchConfig struct {
	InputDir           string `yaml:"input_dir" mapstructure:"input_dir"`
	OutputDir          string `yaml:"output_dir" mapstructure:"output_dir"`
	MaxConcurrentFiles int    `yaml:"max_concurrent_files" mapstructure:"max_concurrent_files"`
}

// NLPConfig configures the entity extraction capability.
type NLPConfig struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// StoreConfig configures the run-history backend. Driver "none" disables
// persistence entirely.
type StoreConfig struct {
	Driver      string            `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string            `yaml:"database_url" mapstructure:"database_url"`
	Pool        *store.PoolConfig `yaml:"pool" mapstructure:"pool"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port      int     `yaml:"port" mapstructure:"port"`
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
	RateBurst int     `yaml:"rate_burst" mapstructure:"rate_burst"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LEADS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("clean.default_region", "US")
	v.SetDefault("dedupe.keys", []string{"email"})
	v.SetDefault("batch.input_dir", "data/raw")
	v.SetDefault("batch.output_dir", "data/clean")
	v.SetDefault("batch.max_concurrent_files", 4)
	v.SetDefault("nlp.enabled", true)
	v.SetDefault("store.driver", "none")
	v.SetDefault("store.database_url", "leads.db")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_limit", 10.0)
	v.SetDefault("server.rate_burst", 20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

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

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

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
