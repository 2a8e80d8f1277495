package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xtxerr/pqinspect/config"
	"github.com/xtxerr/pqinspect/internal/errors"
)

// Config represents the complete pqinspect configuration.
type Config struct {
	// Level selects the schema detail: 0 brief, 1 full.
	Level int `yaml:"level"`

	// ColumnarStats enables the exhaustive null/non-null scan.
	ColumnarStats bool `yaml:"columnar_stats"`

	// Output configures result serialization.
	Output OutputConfig `yaml:"output"`

	// Directory configures directory inspection.
	Directory DirectoryConfig `yaml:"directory"`

	// Scan configures the column statistics engine.
	Scan ScanConfig `yaml:"scan"`

	// Log configures diagnostic logging on stderr.
	Log LogConfig `yaml:"log"`
}

// OutputConfig configures result serialization.
type OutputConfig struct {
	// Format is auto, pretty or compact.
	Format string `yaml:"format"`
}

// DirectoryConfig configures directory inspection.
type DirectoryConfig struct {
	// OnError is the per-file failure policy: abort or skip.
	OnError string `yaml:"on_error"`

	// Workers is the number of files inspected concurrently.
	Workers int `yaml:"workers"`
}

// ScanConfig configures the column statistics engine.
type ScanConfig struct {
	// Engine is arrow or duckdb.
	Engine string `yaml:"engine"`

	// BatchSize is the number of rows per Arrow record batch.
	BatchSize int64 `yaml:"batch_size"`

	// MemoryLimit is the DuckDB memory limit, e.g. "2GB". Empty keeps the DuckDB default.
	MemoryLimit string `yaml:"memory_limit"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`

	// JSON switches the log handler to JSON.
	JSON bool `yaml:"json"`
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigFile(path, "read config file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigFile(path, "parse config file", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		Level:         config.DefaultLevel,
		ColumnarStats: config.DefaultColumnarStats,
		Output: OutputConfig{
			Format: config.DefaultFormat,
		},
		Directory: DirectoryConfig{
			OnError: config.DefaultOnError,
			Workers: config.DefaultWorkers,
		},
		Scan: ScanConfig{
			Engine:    config.DefaultEngine,
			BatchSize: config.DefaultBatchSize,
		},
		Log: LogConfig{
			Level: config.DefaultLogLevel,
		},
	}
}
