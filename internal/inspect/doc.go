// Package inspect classifies a path and summarizes the Parquet files it names.
//
// A regular file is summarized directly. A directory is listed without
// descending into subdirectories; every entry ending in .parquet or .pq
// (case-sensitive) is summarized and stored under its file name, in listing
// order. Anything else is a *errors.PathKindError.
//
// What happens when one file of a directory fails is the OnError policy:
// OnErrorAbort returns that failure and abandons the listing, OnErrorSkip
// leaves the file out and records it in Result.Failures.
package inspect
