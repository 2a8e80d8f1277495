package colstats

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/xtxerr/pqinspect/internal/errors"
	"github.com/xtxerr/pqinspect/internal/logging"
)

// DuckDBScanner counts nulls with a single read_parquet aggregate in an
// in-memory DuckDB database. The whole file is one batch.
type DuckDBScanner struct {
	// MemoryLimit is the DuckDB memory limit, e.g. "2GB".
	MemoryLimit string
}

// Scan reads the whole file at path.
func (s *DuckDBScanner) Scan(ctx context.Context, path string) (map[string]Stats, error) {
	start := time.Now()
	acc := NewAccumulator()

	source, cleanup, err := literalPath(path)
	if err != nil {
		return nil, errors.NewDataScan(path, 0, err)
	}
	defer cleanup()

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, errors.NewDataScan(path, 0, fmt.Errorf("open duckdb: %w", err))
	}
	defer db.Close()

	if s.MemoryLimit != "" {
		stmt := fmt.Sprintf("SET memory_limit='%s'", strings.ReplaceAll(s.MemoryLimit, "'", "''"))
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return nil, errors.NewDataScan(path, 0, fmt.Errorf("set memory limit: %w", err))
		}
	}

	columns, err := s.columns(ctx, db, source)
	if err != nil {
		return nil, errors.NewDataScan(path, 0, err)
	}

	var b strings.Builder
	b.WriteString("SELECT count(*)")
	for _, c := range columns {
		b.WriteString(", count(")
		b.WriteString(quoteIdent(c))
		b.WriteString(")")
	}
	b.WriteString(" FROM read_parquet($1)")

	counts := make([]int64, len(columns)+1)
	dest := make([]interface{}, len(counts))
	for i := range counts {
		dest[i] = &counts[i]
	}

	if err := db.QueryRowContext(ctx, b.String(), source).Scan(dest...); err != nil {
		return nil, errors.NewDataScan(path, 0, fmt.Errorf("count nulls: %w", err))
	}

	total := counts[0]
	for i, c := range columns {
		nonNulls := counts[i+1]
		acc.Add(c, total, total-nonNulls)
	}
	acc.EndBatch()

	logging.Component("colstats").Debug("duckdb scan complete",
		"path", path,
		"columns", len(columns),
		"elapsed", time.Since(start))

	return acc.Result(), nil
}

// columns returns the top-level column names of the file.
func (s *DuckDBScanner) columns(ctx context.Context, db *sql.DB, path string) ([]string, error) {
	rows, err := db.QueryContext(ctx, "SELECT * FROM read_parquet($1) LIMIT 0", path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	return columns, rows.Err()
}

// globMeta are the characters read_parquet expands in a file argument.
const globMeta = "*?["

// literalPath returns a path that read_parquet resolves to exactly one file.
// A path containing glob characters is reached through a symlink in a
// private temporary directory; cleanup removes it.
func literalPath(path string) (string, func(), error) {
	if !strings.ContainsAny(path, globMeta) {
		return path, func() {}, nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", nil, fmt.Errorf("resolve path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", nil, fmt.Errorf("stat file: %w", err)
	}

	dir, err := os.MkdirTemp("", "pqinspect-")
	if err != nil {
		return "", nil, fmt.Errorf("create link directory: %w", err)
	}
	cleanup := func() { os.RemoveAll(dir) }

	link := filepath.Join(dir, "scan.parquet")
	if strings.ContainsAny(link, globMeta) {
		cleanup()
		return "", nil, fmt.Errorf("temporary directory %q contains glob characters", dir)
	}
	if err := os.Symlink(abs, link); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("link file: %w", err)
	}

	return link, cleanup, nil
}

// quoteIdent quotes a column name for DuckDB SQL.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
