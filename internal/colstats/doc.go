// Package colstats tallies null and non-null counts per column by scanning
// every data batch of a Parquet file.
//
// An Accumulator folds batches into running per-column totals. A Scanner
// drives the fold over one file:
//   - ArrowScanner reads Apache Arrow record batches through pqarrow
//   - DuckDBScanner runs one read_parquet aggregate, a single batch per column
//
// Partial totals are never returned: a scan either completes or fails with
// *errors.DataScanError.
package colstats
