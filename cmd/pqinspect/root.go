package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	defaults "github.com/xtxerr/pqinspect/config"
	"github.com/xtxerr/pqinspect/internal/config"
	"github.com/xtxerr/pqinspect/internal/errors"
	"github.com/xtxerr/pqinspect/internal/inspect"
	"github.com/xtxerr/pqinspect/internal/logging"
	"github.com/xtxerr/pqinspect/internal/summary"
)

type flags struct {
	configPath    string
	level         int
	columnarStats bool
	format        string
	jsonl         bool
	engine        string
	onError       string
	workers       int
	logLevel      string
	logJSON       bool
}

// NewRootCmd wires the command line.
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:   "pqinspect [flags] <path>",
		Short: "Summarize Parquet files as JSON",
		Long: `pqinspect reads the footer of a Parquet file, or of every .parquet and .pq
file directly inside a directory, and prints shape, creator and schema as JSON.
With --columnar-stats every data batch is scanned to count nulls per column.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.NewInvalidValue("arguments", len(args), "expected exactly one path")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &f)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, args[0], stdout, stderr)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.NewInvalidValue("flags", err.Error(), "see --help")
	})

	fl := root.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML config file")
	fl.IntVarP(&f.level, "level", "l", defaults.DefaultLevel, "schema detail: 0 brief (type counts), 1 full (column types)")
	fl.BoolVarP(&f.columnarStats, "columnar-stats", "c", defaults.DefaultColumnarStats, "scan all data and count nulls per column")
	fl.StringVarP(&f.format, "format", "f", defaults.DefaultFormat, "output format: auto, pretty, compact")
	fl.BoolVar(&f.jsonl, "jsonl", false, "compact single-line output (same as --format compact)")
	fl.StringVar(&f.engine, "engine", defaults.DefaultEngine, "column statistics engine: arrow, duckdb")
	fl.StringVar(&f.onError, "on-error", defaults.DefaultOnError, "directory failure policy: abort, skip")
	fl.IntVar(&f.workers, "workers", defaults.DefaultWorkers, "files inspected concurrently in directory mode")
	fl.StringVar(&f.logLevel, "log-level", defaults.DefaultLogLevel, "log level on stderr: debug, info, warn, error")
	fl.BoolVar(&f.logJSON, "log-json", false, "log as JSON")

	return root
}

// resolveConfig loads the config file, if any, then applies the flags that
// were set explicitly.
func resolveConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("level") {
		cfg.Level = f.level
	}
	if changed("columnar-stats") {
		cfg.ColumnarStats = f.columnarStats
	}
	if changed("format") {
		cfg.Output.Format = f.format
	}
	if f.jsonl {
		cfg.Output.Format = "compact"
	}
	if changed("engine") {
		cfg.Scan.Engine = f.engine
	}
	if changed("on-error") {
		cfg.Directory.OnError = f.onError
	}
	if changed("workers") {
		cfg.Directory.Workers = f.workers
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("log-json") {
		cfg.Log.JSON = f.logJSON
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// inspectOptions converts a validated config into inspector options.
func inspectOptions(cfg *config.Config) (inspect.Options, error) {
	onError, err := inspect.ParseOnError(cfg.Directory.OnError)
	if err != nil {
		return inspect.Options{}, err
	}

	return inspect.Options{
		Level:         cfg.Level,
		ColumnarStats: cfg.ColumnarStats,
		Engine:        cfg.Scan.Engine,
		BatchSize:     cfg.Scan.BatchSize,
		MemoryLimit:   cfg.Scan.MemoryLimit,
		OnError:       onError,
		Workers:       cfg.Directory.Workers,
	}, nil
}

// outputFormat resolves "auto" against the destination: pretty on a
// terminal, compact otherwise.
func outputFormat(name string, w io.Writer) (summary.Format, error) {
	if name != "auto" {
		return summary.ParseFormat(name)
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return summary.FormatPretty, nil
	}
	return summary.FormatCompact, nil
}

func run(ctx context.Context, cfg *config.Config, path string, stdout, stderr io.Writer) error {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return errors.NewInvalidValue("log.level", cfg.Log.Level, err.Error())
	}
	logging.InitWriter(stderr, level, cfg.Log.JSON)
	log := logging.Component("cli")

	opts, err := inspectOptions(cfg)
	if err != nil {
		return err
	}
	format, err := outputFormat(cfg.Output.Format, stdout)
	if err != nil {
		return err
	}

	inspector, err := inspect.New(opts)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Debug("inspecting", "path", path, "level", cfg.Level, "columnar_stats", cfg.ColumnarStats,
		"engine", cfg.Scan.Engine, "format", format.String())

	result, err := inspector.Inspect(ctx, path)
	if err != nil {
		return err
	}

	return summary.Encode(stdout, result, format)
}
