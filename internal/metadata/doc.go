// Package metadata reads the footer of a Parquet file without scanning data.
//
// The package provides:
//   - Shape: footer row count and number of leaf columns
//   - Creator: writer identification, format version and pandas provenance
//   - Schema: a two-case variant, brief (physical type -> count) or
//     full (leaf column -> physical type), selected by Level
package metadata
