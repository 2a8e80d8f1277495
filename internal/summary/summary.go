// Package summary composes footer metadata and column statistics into one
// result per file, and serializes results as JSON.
package summary

import (
	"context"
	"time"

	"github.com/xtxerr/pqinspect/internal/colstats"
	"github.com/xtxerr/pqinspect/internal/logging"
	"github.com/xtxerr/pqinspect/internal/metadata"
)

// FileSummary is the inspection result of one file.
type FileSummary struct {
	Shape         metadata.Shape            `json:"shape"`
	Creator       metadata.Creator          `json:"creator"`
	Schema        metadata.Schema           `json:"schema"`
	ColumnarStats map[string]colstats.Stats `json:"columnar_stats,omitempty"`
}

// Summarizer produces a FileSummary for one path.
type Summarizer struct {
	// Level selects the schema detail.
	Level metadata.Level

	// ColumnarStats enables the exhaustive scan. Scanner must be set when true.
	ColumnarStats bool

	// Scanner computes column statistics.
	Scanner colstats.Scanner
}

// Summarize reads the footer of path and, when requested, scans its data.
// Any failure aborts the whole summary; no partially filled FileSummary is
// returned.
func (s *Summarizer) Summarize(ctx context.Context, path string) (*FileSummary, error) {
	log := logging.Component("summary")
	start := time.Now()

	md, err := metadata.Read(path, s.Level)
	if err != nil {
		return nil, err
	}

	fs := &FileSummary{
		Shape:   md.Shape,
		Creator: md.Creator,
		Schema:  md.Schema,
	}

	if s.ColumnarStats {
		stats, err := s.Scanner.Scan(ctx, path)
		if err != nil {
			return nil, err
		}
		fs.ColumnarStats = stats
	}

	log.Debug("file summarized",
		"path", path,
		"rows", fs.Shape.NumRows,
		"leaf_columns", fs.Shape.NumColsLeaf,
		"columnar_stats", s.ColumnarStats,
		"elapsed", time.Since(start))

	return fs, nil
}
