package inspect

import (
	"github.com/xtxerr/pqinspect/config"
	"github.com/xtxerr/pqinspect/internal/colstats"
	"github.com/xtxerr/pqinspect/internal/errors"
)

// OnError is the per-file failure policy of a directory inspection.
type OnError int

const (
	// OnErrorAbort returns the first failing file's error.
	OnErrorAbort OnError = iota

	// OnErrorSkip omits failing files and reports them in Result.Failures.
	OnErrorSkip
)

// String returns the policy name.
func (p OnError) String() string {
	switch p {
	case OnErrorAbort:
		return "abort"
	case OnErrorSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// ParseOnError parses abort or skip. Empty selects the default.
func ParseOnError(s string) (OnError, error) {
	switch s {
	case "":
		return ParseOnError(config.DefaultOnError)
	case "abort":
		return OnErrorAbort, nil
	case "skip":
		return OnErrorSkip, nil
	default:
		return OnErrorAbort, errors.NewInvalidValue("on_error", s, "must be abort or skip")
	}
}

// Options configures an Inspector.
type Options struct {
	// Level selects the schema detail: 0 brief, 1 full.
	Level int

	// ColumnarStats enables the exhaustive null/non-null scan.
	ColumnarStats bool

	// Engine selects the scanner: arrow (default) or duckdb.
	Engine string

	// BatchSize is the number of rows per Arrow record batch.
	BatchSize int64

	// MemoryLimit is the DuckDB memory limit.
	MemoryLimit string

	// OnError is the directory failure policy.
	OnError OnError

	// Workers is the number of files summarized concurrently. 0 means 1.
	Workers int

	// Scanner overrides the scanner selected by Engine.
	Scanner colstats.Scanner
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Level:     config.DefaultLevel,
		Engine:    config.DefaultEngine,
		BatchSize: config.DefaultBatchSize,
		OnError:   OnErrorAbort,
		Workers:   config.DefaultWorkers,
	}
}
