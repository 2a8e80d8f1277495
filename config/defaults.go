// Package config provides configuration defaults for pqinspect.
//
// This package defines all configurable constants with documented defaults.
// Users can override these values via a YAML config file or command line flags.
package config

// =============================================================================
// Inspection Defaults
// =============================================================================

const (
	// DefaultLevel selects the full schema (leaf name -> physical type).
	// Level 0 reports the brief schema (physical type -> count).
	// Override via config: level, flag: --level
	DefaultLevel = 1

	// DefaultColumnarStats disables the exhaustive null/non-null scan.
	// Override via config: columnar_stats, flag: --columnar-stats
	DefaultColumnarStats = false
)

// =============================================================================
// Output Defaults
// =============================================================================

const (
	// DefaultFormat picks pretty output on a terminal and JSON lines otherwise.
	// Values: auto, pretty, compact
	// Override via config: output.format, flag: --format
	DefaultFormat = "auto"

	// DefaultIndent is the indentation used by pretty output.
	DefaultIndent = "  "
)

// =============================================================================
// Directory Defaults
// =============================================================================

const (
	// DefaultOnError aborts a directory inspection on the first failing file.
	// Values: abort, skip
	// Override via config: directory.on_error, flag: --on-error
	DefaultOnError = "abort"

	// DefaultWorkers inspects one file at a time.
	// Range: 1-64
	// Override via config: directory.workers, flag: --workers
	DefaultWorkers = 1

	// MaxWorkers bounds directory parallelism.
	MaxWorkers = 64
)

// =============================================================================
// Scan Defaults
// =============================================================================

const (
	// DefaultEngine reads Arrow record batches.
	// Values: arrow, duckdb
	// Override via config: scan.engine, flag: --engine
	DefaultEngine = "arrow"

	// DefaultBatchSize is the number of rows per Arrow record batch.
	// Override via config: scan.batch_size
	DefaultBatchSize = 64 * 1024

	// DefaultReadBufferSize is the buffer used when reading the footer.
	DefaultReadBufferSize = 1024 * 1024
)

// =============================================================================
// Logging Defaults
// =============================================================================

const (
	// DefaultLogLevel keeps stderr quiet unless something is skipped.
	// Override via config: log.level, flag: --log-level
	DefaultLogLevel = "warn"
)
