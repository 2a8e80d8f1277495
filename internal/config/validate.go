package config

import (
	"github.com/xtxerr/pqinspect/config"
	"github.com/xtxerr/pqinspect/internal/errors"
	"github.com/xtxerr/pqinspect/internal/logging"
)

// Validate checks the configuration for errors.
// Every problem is reported, joined into one error.
func (c *Config) Validate() error {
	var errs []error

	if c.Level != 0 && c.Level != 1 {
		errs = append(errs, errors.NewInvalidValue("level", c.Level, "must be 0 (brief) or 1 (full)"))
	}

	if err := c.Output.Validate(); err != nil {
		errs = append(errs, errors.Wrap(err, "output"))
	}

	if err := c.Directory.Validate(); err != nil {
		errs = append(errs, errors.Wrap(err, "directory"))
	}

	if err := c.Scan.Validate(); err != nil {
		errs = append(errs, errors.Wrap(err, "scan"))
	}

	if err := c.Log.Validate(); err != nil {
		errs = append(errs, errors.Wrap(err, "log"))
	}

	return errors.Join(errs...)
}

// Validate checks the output configuration.
func (c *OutputConfig) Validate() error {
	switch c.Format {
	case "auto", "pretty", "compact":
		return nil
	default:
		return errors.NewInvalidValue("format", c.Format, "must be auto, pretty or compact")
	}
}

// Validate checks the directory configuration.
func (c *DirectoryConfig) Validate() error {
	var errs []error

	switch c.OnError {
	case "abort", "skip":
	default:
		errs = append(errs, errors.NewInvalidValue("on_error", c.OnError, "must be abort or skip"))
	}

	if c.Workers < 1 || c.Workers > config.MaxWorkers {
		errs = append(errs, errors.NewInvalidValue("workers", c.Workers, "must be between 1 and 64"))
	}

	return errors.Join(errs...)
}

// Validate checks the scan configuration.
func (c *ScanConfig) Validate() error {
	var errs []error

	switch c.Engine {
	case "arrow", "duckdb":
	default:
		errs = append(errs, errors.NewInvalidValue("engine", c.Engine, "must be arrow or duckdb"))
	}

	if c.BatchSize <= 0 {
		errs = append(errs, errors.NewInvalidValue("batch_size", c.BatchSize, "must be positive"))
	}

	return errors.Join(errs...)
}

// Validate checks the log configuration.
func (c *LogConfig) Validate() error {
	if _, err := logging.ParseLevel(c.Level); err != nil {
		return errors.NewInvalidValue("level", c.Level, err.Error())
	}
	return nil
}
