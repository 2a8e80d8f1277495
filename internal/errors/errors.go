// Package errors holds the error taxonomy shared by every pqinspect component.
//
// This file provides:
// - Sentinel errors for each failure phase
// - Typed errors carrying the offending path and cause
// - Category checking functions
// - ExitCode mapping for the command line
// - Error wrapping utilities
package errors

import (
	"errors"
	"fmt"
)

// ============================================================================
// Exit codes
// ============================================================================

const (
	ExitOK        = 0
	ExitInternal  = 1
	ExitUserError = 2
)

// ============================================================================
// Sentinel errors
// ============================================================================

var (
	// ErrPathKind is returned when a path is neither a regular file nor a directory.
	ErrPathKind = errors.New("path is neither a regular file nor a directory")

	// ErrMetadataRead is returned when a file footer cannot be read.
	ErrMetadataRead = errors.New("metadata read failed")

	// ErrDataScan is returned when a data batch cannot be materialized.
	ErrDataScan = errors.New("data scan failed")

	// ErrProvenance marks embedded provenance that could not be parsed.
	// It is soft: callers drop the provenance and carry on.
	ErrProvenance = errors.New("provenance parse failed")

	// ErrConfiguration is returned for unsupported options, before any I/O.
	ErrConfiguration = errors.New("invalid configuration")
)

// Phase names reported by the typed errors.
const (
	PhasePath       = "path"
	PhaseMetadata   = "metadata"
	PhaseScan       = "scan"
	PhaseProvenance = "provenance"
	PhaseConfig     = "config"
)

// Is is a convenience wrapper for errors.Is
var Is = errors.Is

// As is a convenience wrapper for errors.As
var As = errors.As

// New is a convenience wrapper for errors.New
var New = errors.New

// Join is a convenience wrapper for errors.Join
var Join = errors.Join

// ============================================================================
// Typed errors
// ============================================================================

// PathKindError names a path that cannot be inspected at all.
type PathKindError struct {
	Path string
	Err  error
}

func (e *PathKindError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v: %v", e.Path, ErrPathKind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, ErrPathKind)
}

func (e *PathKindError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrPathKind, e.Err}
	}
	return []error{ErrPathKind}
}

// Phase returns the phase that failed.
func (e *PathKindError) Phase() string { return PhasePath }

// MetadataReadError reports a footer that could not be opened or parsed.
type MetadataReadError struct {
	Path string
	Err  error
}

func (e *MetadataReadError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Path, ErrMetadataRead, e.Err)
}

func (e *MetadataReadError) Unwrap() []error { return []error{ErrMetadataRead, e.Err} }

// Phase returns the phase that failed.
func (e *MetadataReadError) Phase() string { return PhaseMetadata }

// DataScanError reports a failed column statistics scan.
// Batches is the number of batches accumulated before the failure.
type DataScanError struct {
	Path    string
	Batches int
	Err     error
}

func (e *DataScanError) Error() string {
	return fmt.Sprintf("%s: %v after %d batches: %v", e.Path, ErrDataScan, e.Batches, e.Err)
}

func (e *DataScanError) Unwrap() []error { return []error{ErrDataScan, e.Err} }

// Phase returns the phase that failed.
func (e *DataScanError) Phase() string { return PhaseScan }

// ProvenanceParseError describes why embedded provenance was discarded.
type ProvenanceParseError struct {
	Key    string
	Reason string
	Err    error
}

func (e *ProvenanceParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: key %q: %s: %v", ErrProvenance, e.Key, e.Reason, e.Err)
	}
	return fmt.Sprintf("%v: key %q: %s", ErrProvenance, e.Key, e.Reason)
}

func (e *ProvenanceParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrProvenance, e.Err}
	}
	return []error{ErrProvenance}
}

// Phase returns the phase that failed.
func (e *ProvenanceParseError) Phase() string { return PhaseProvenance }

// ConfigurationError reports an unsupported option value or an unusable
// config file. Err is the underlying cause, if any.
type ConfigurationError struct {
	Field  string
	Value  interface{}
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s '%v': %s: %v", ErrConfiguration, e.Field, e.Value, e.Reason, e.Err)
	}
	return fmt.Sprintf("%v: %s '%v': %s", ErrConfiguration, e.Field, e.Value, e.Reason)
}

func (e *ConfigurationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrConfiguration, e.Err}
	}
	return []error{ErrConfiguration}
}

// Phase returns the phase that failed.
func (e *ConfigurationError) Phase() string { return PhaseConfig }

// ============================================================================
// Error constructors with context
// ============================================================================

// NewPathKind creates a PathKindError for path.
func NewPathKind(path string, cause error) error {
	return &PathKindError{Path: path, Err: cause}
}

// NewMetadataRead creates a MetadataReadError for path.
func NewMetadataRead(path string, cause error) error {
	return &MetadataReadError{Path: path, Err: cause}
}

// NewDataScan creates a DataScanError for path.
func NewDataScan(path string, batches int, cause error) error {
	return &DataScanError{Path: path, Batches: batches, Err: cause}
}

// NewInvalidValue creates a ConfigurationError.
func NewInvalidValue(field string, value interface{}, reason string) error {
	return &ConfigurationError{Field: field, Value: value, Reason: reason}
}

// NewConfigFile creates a ConfigurationError for a config file that could
// not be read or parsed.
func NewConfigFile(path, reason string, cause error) error {
	return &ConfigurationError{Field: "config", Value: path, Reason: reason, Err: cause}
}

// ============================================================================
// Helper functions for error checking
// ============================================================================

// Phase returns the failing phase of a typed error, or "" for other errors.
func Phase(err error) string {
	var p interface{ Phase() string }
	if errors.As(err, &p) {
		return p.Phase()
	}
	return ""
}

// IsUserError returns true if err was caused by the caller's input
// rather than by the content of a file.
func IsUserError(err error) bool {
	return errors.Is(err, ErrConfiguration) ||
		errors.Is(err, ErrPathKind)
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsUserError(err):
		return ExitUserError
	default:
		return ExitInternal
	}
}

// ============================================================================
// Error wrapping utilities
// ============================================================================

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
