package inspect

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/xtxerr/pqinspect/config"
	"github.com/xtxerr/pqinspect/internal/colstats"
	"github.com/xtxerr/pqinspect/internal/errors"
	"github.com/xtxerr/pqinspect/internal/logging"
	"github.com/xtxerr/pqinspect/internal/metadata"
	"github.com/xtxerr/pqinspect/internal/summary"
)

// Extensions are the file name suffixes summarized in directory mode.
var Extensions = []string{".parquet", ".pq"}

// HasParquetExtension reports whether name ends with one of Extensions.
// The match is case-sensitive.
func HasParquetExtension(name string) bool {
	for _, ext := range Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Kind is what a path turned out to be.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
)

// Failure is a file left out of a directory result under OnErrorSkip.
type Failure struct {
	Name string
	Err  error
}

// Result is the outcome of one inspection.
type Result struct {
	Kind      Kind
	File      *summary.FileSummary
	Directory *summary.DirectorySummary

	// Failures lists skipped files, in listing order.
	Failures []Failure
}

// MarshalJSON emits the file summary or the directory summary.
func (r *Result) MarshalJSON() ([]byte, error) {
	if r.Kind == KindDirectory {
		return json.Marshal(r.Directory)
	}
	return json.Marshal(r.File)
}

// Inspector summarizes files and directories.
type Inspector struct {
	summarizer *summary.Summarizer
	onError    OnError
	workers    int
	log        *slog.Logger
}

// New validates opts and builds an Inspector. It performs no I/O, so an
// unsupported option always fails before any file is touched.
func New(opts Options) (*Inspector, error) {
	level, err := metadata.ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	switch opts.OnError {
	case OnErrorAbort, OnErrorSkip:
	default:
		return nil, errors.NewInvalidValue("on_error", int(opts.OnError), "must be abort or skip")
	}

	workers := opts.Workers
	if workers == 0 {
		workers = config.DefaultWorkers
	}
	if workers < 1 || workers > config.MaxWorkers {
		return nil, errors.NewInvalidValue("workers", opts.Workers, "must be between 1 and 64")
	}

	scanner := opts.Scanner
	if scanner == nil {
		engine, err := colstats.ParseEngine(opts.Engine)
		if err != nil {
			return nil, err
		}
		scanner, err = colstats.NewScanner(engine, colstats.Options{
			BatchSize:   opts.BatchSize,
			MemoryLimit: opts.MemoryLimit,
		})
		if err != nil {
			return nil, err
		}
	}

	return &Inspector{
		summarizer: &summary.Summarizer{
			Level:         level,
			ColumnarStats: opts.ColumnarStats,
			Scanner:       scanner,
		},
		onError: opts.OnError,
		workers: workers,
		log:     logging.Component("inspect"),
	}, nil
}

// Inspect is New followed by Inspector.Inspect.
func Inspect(ctx context.Context, path string, opts Options) (*Result, error) {
	in, err := New(opts)
	if err != nil {
		return nil, err
	}
	return in.Inspect(ctx, path)
}

// Inspect summarizes the file or directory at path.
// Symbolic links are followed; a path that does not resolve to a regular
// file or a directory fails with *errors.PathKindError.
func (in *Inspector) Inspect(ctx context.Context, path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.NewPathKind(path, err)
	}

	switch {
	case info.Mode().IsRegular():
		fs, err := in.summarizer.Summarize(ctx, path)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: KindFile, File: fs}, nil

	case info.IsDir():
		return in.inspectDir(ctx, path)

	default:
		return nil, errors.NewPathKind(path, nil)
	}
}

// listParquet returns the names of the regular files in dir that carry a
// Parquet extension, in listing order.
func (in *Inspector) listParquet(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewPathKind(dir, err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !HasParquetExtension(name) {
			continue
		}

		// Resolve symlinks; subdirectories are never descended into.
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !info.Mode().IsRegular() {
			in.log.Debug("entry skipped", "dir", dir, "name", name, "error", err)
			continue
		}
		names = append(names, name)
	}

	return names, nil
}

func (in *Inspector) inspectDir(ctx context.Context, dir string) (*Result, error) {
	start := time.Now()

	names, err := in.listParquet(dir)
	if err != nil {
		return nil, err
	}

	var summaries []*summary.FileSummary
	var errs []error
	if in.workers > 1 && len(names) > 1 {
		summaries, errs, err = in.summarizeParallel(ctx, dir, names)
	} else {
		summaries, errs, err = in.summarizeSequential(ctx, dir, names)
	}
	if err != nil {
		return nil, err
	}

	result := &Result{
		Kind:      KindDirectory,
		Directory: summary.NewDirectorySummary(),
	}
	for i, name := range names {
		if errs[i] != nil {
			in.log.Warn("file skipped", "path", filepath.Join(dir, name), "error", errs[i])
			result.Failures = append(result.Failures, Failure{Name: name, Err: errs[i]})
			continue
		}
		result.Directory.Add(name, summaries[i])
	}

	in.log.Debug("directory summarized",
		"dir", dir,
		"files", result.Directory.Len(),
		"skipped", len(result.Failures),
		"workers", in.workers,
		"elapsed", time.Since(start))

	return result, nil
}

// summarizeSequential summarizes one file at a time, in listing order.
// Under OnErrorAbort the first failure is returned as err.
func (in *Inspector) summarizeSequential(ctx context.Context, dir string, names []string) ([]*summary.FileSummary, []error, error) {
	summaries := make([]*summary.FileSummary, len(names))
	errs := make([]error, len(names))

	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		fs, err := in.summarizer.Summarize(ctx, filepath.Join(dir, name))
		if err != nil {
			if in.onError == OnErrorAbort {
				return nil, nil, err
			}
			errs[i] = err
			continue
		}
		summaries[i] = fs
	}

	return summaries, errs, nil
}

// summarizeParallel summarizes up to in.workers files at once. Results land
// in per-index slots, so output never depends on scheduling. Under
// OnErrorAbort the first failure cancels the remaining files, and the
// returned error is the one sequential inspection would have returned.
func (in *Inspector) summarizeParallel(ctx context.Context, dir string, names []string) ([]*summary.FileSummary, []error, error) {
	summaries := make([]*summary.FileSummary, len(names))
	errs := make([]error, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(in.workers)

	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}

			fs, err := in.summarizer.Summarize(gctx, filepath.Join(dir, name))
			if err != nil {
				errs[i] = err
				if in.onError == OnErrorAbort {
					return err
				}
				return nil
			}
			summaries[i] = fs
			return nil
		})
	}

	groupErr := g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if in.onError == OnErrorAbort && groupErr != nil {
		return nil, nil, in.earliestFailure(ctx, dir, names, summaries, errs, groupErr)
	}

	return summaries, errs, nil
}

// earliestFailure returns the failure of the first file in listing order.
// Files before it that were never started, or were cancelled by a later
// failure, are summarized again so their own failures are not missed.
func (in *Inspector) earliestFailure(ctx context.Context, dir string, names []string,
	summaries []*summary.FileSummary, errs []error, groupErr error) error {
	for i, name := range names {
		if err := errs[i]; err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		if summaries[i] != nil {
			continue
		}

		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := in.summarizer.Summarize(ctx, filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return groupErr
}
