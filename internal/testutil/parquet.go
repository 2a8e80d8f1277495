// Package testutil writes Parquet fixtures for tests.
//
// It is not a product write path: inspection never writes files.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress"
)

// Compression names a page codec for fixture files.
type Compression string

const (
	Uncompressed Compression = "none"
	Snappy       Compression = "snappy"
	Gzip         Compression = "gzip"
	LZ4          Compression = "lz4"
	Zstd         Compression = "zstd"
)

// Compressions lists every codec fixtures can be written with.
var Compressions = []Compression{Uncompressed, Snappy, Gzip, LZ4, Zstd}

var codecs = map[Compression]compress.Codec{
	Uncompressed: &parquet.Uncompressed,
	Snappy:       &parquet.Snappy,
	Gzip:         &parquet.Gzip,
	LZ4:          &parquet.Lz4Raw,
	Zstd:         &parquet.Zstd,
}

func (c Compression) codec() compress.Codec {
	if codec, ok := codecs[c]; ok {
		return codec
	}
	return &parquet.Zstd
}

// Options configures a fixture file.
type Options struct {
	Compression  Compression
	RowGroupSize int64
	PageBuffer   int

	createdBy *[3]string
	keyValues [][2]string
}

// Option mutates Options.
type Option func(*Options)

// WithCompression sets the codec of every column.
func WithCompression(c Compression) Option {
	return func(o *Options) { o.Compression = c }
}

// WithRowGroupSize caps the number of rows per row group.
func WithRowGroupSize(n int64) Option {
	return func(o *Options) { o.RowGroupSize = n }
}

// WithPageBufferSize sets the writer page buffer size in bytes.
func WithPageBufferSize(n int) Option {
	return func(o *Options) { o.PageBuffer = n }
}

// WithCreatedBy sets the footer writer identification.
// Empty arguments produce a footer without created_by.
func WithCreatedBy(application, version, build string) Option {
	return func(o *Options) { o.createdBy = &[3]string{application, version, build} }
}

// WithKeyValue adds a footer key-value property.
func WithKeyValue(key, value string) Option {
	return func(o *Options) { o.keyValues = append(o.keyValues, [2]string{key, value}) }
}

// WriteFile writes rows to path as a Parquet file and fails the test on error.
// Each call to Write with RowGroupSize set produces row groups of at most that many rows.
func WriteFile[T any](tb testing.TB, path string, rows []T, opts ...Option) {
	tb.Helper()

	o := Options{Compression: Zstd}
	for _, opt := range opts {
		opt(&o)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		tb.Fatalf("create directory: %v", err)
	}

	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("create file: %v", err)
	}
	defer f.Close()

	writerOpts := []parquet.WriterOption{
		parquet.Compression(o.Compression.codec()),
	}
	if o.RowGroupSize > 0 {
		writerOpts = append(writerOpts, parquet.MaxRowsPerRowGroup(o.RowGroupSize))
	}
	if o.PageBuffer > 0 {
		writerOpts = append(writerOpts, parquet.PageBufferSize(o.PageBuffer))
	}
	if o.createdBy != nil {
		writerOpts = append(writerOpts, parquet.CreatedBy(o.createdBy[0], o.createdBy[1], o.createdBy[2]))
	}
	for _, kv := range o.keyValues {
		writerOpts = append(writerOpts, parquet.KeyValueMetadata(kv[0], kv[1]))
	}

	writer := parquet.NewGenericWriter[T](f, writerOpts...)

	if len(rows) > 0 {
		if _, err := writer.Write(rows); err != nil {
			tb.Fatalf("write rows: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		tb.Fatalf("close writer: %v", err)
	}
}

// WriteBytes writes raw bytes to path, for files that must not parse.
func WriteBytes(tb testing.TB, path string, data []byte) {
	tb.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		tb.Fatalf("create directory: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		tb.Fatalf("write file: %v", err)
	}
}

// Truncate cuts the file at path down to n bytes.
func Truncate(tb testing.TB, path string, n int64) {
	tb.Helper()

	if err := os.Truncate(path, n); err != nil {
		tb.Fatalf("truncate: %v", err)
	}
}
