package colstats

import (
	"context"

	"github.com/xtxerr/pqinspect/config"
	"github.com/xtxerr/pqinspect/internal/errors"
)

// Scanner computes per-column null statistics for one file.
type Scanner interface {
	Scan(ctx context.Context, path string) (map[string]Stats, error)
}

// Engine names a Scanner implementation.
type Engine string

const (
	EngineArrow  Engine = "arrow"
	EngineDuckDB Engine = "duckdb"
)

// ParseEngine validates an engine name. Empty selects the default.
func ParseEngine(s string) (Engine, error) {
	switch Engine(s) {
	case "":
		return Engine(config.DefaultEngine), nil
	case EngineArrow, EngineDuckDB:
		return Engine(s), nil
	default:
		return "", errors.NewInvalidValue("engine", s, "must be arrow or duckdb")
	}
}

// Options configures a Scanner.
type Options struct {
	// BatchSize is the number of rows per Arrow record batch.
	BatchSize int64

	// MemoryLimit is passed to DuckDB as memory_limit when set.
	MemoryLimit string
}

// NewScanner returns the Scanner for engine.
func NewScanner(engine Engine, opts Options) (Scanner, error) {
	switch engine {
	case EngineArrow, "":
		return &ArrowScanner{BatchSize: opts.BatchSize}, nil
	case EngineDuckDB:
		return &DuckDBScanner{MemoryLimit: opts.MemoryLimit}, nil
	default:
		return nil, errors.NewInvalidValue("engine", string(engine), "must be arrow or duckdb")
	}
}
