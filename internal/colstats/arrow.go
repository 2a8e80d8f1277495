package colstats

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/apache/arrow/go/v17/parquet/file"
	"github.com/apache/arrow/go/v17/parquet/pqarrow"

	"github.com/xtxerr/pqinspect/config"
	"github.com/xtxerr/pqinspect/internal/errors"
	"github.com/xtxerr/pqinspect/internal/logging"
)

// ArrowScanner reads every record batch of a file with pqarrow and
// accumulates the top-level fields of each batch.
type ArrowScanner struct {
	// BatchSize is the number of rows per record batch.
	BatchSize int64

	// Allocator backs the batch buffers. Defaults to memory.DefaultAllocator.
	Allocator memory.Allocator
}

// Scan reads the whole file at path.
func (s *ArrowScanner) Scan(ctx context.Context, path string) (map[string]Stats, error) {
	start := time.Now()
	acc := NewAccumulator()

	pf, err := file.OpenParquetFile(path, false)
	if err != nil {
		return nil, errors.NewDataScan(path, 0, fmt.Errorf("open file: %w", err))
	}
	defer pf.Close()

	fr, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{BatchSize: s.batchSize()}, s.allocator())
	if err != nil {
		return nil, errors.NewDataScan(path, 0, fmt.Errorf("create arrow reader: %w", err))
	}

	schema, err := fr.Schema()
	if err != nil {
		return nil, errors.NewDataScan(path, 0, fmt.Errorf("arrow schema: %w", err))
	}
	for _, field := range schema.Fields() {
		acc.Touch(field.Name)
	}

	rr, err := fr.GetRecordReader(ctx, nil, nil)
	if err != nil {
		return nil, errors.NewDataScan(path, 0, fmt.Errorf("create record reader: %w", err))
	}
	defer rr.Release()

	for rr.Next() {
		if err := ctx.Err(); err != nil {
			return nil, errors.NewDataScan(path, acc.Batches(), err)
		}
		accumulateRecord(acc, rr.Record())
		acc.EndBatch()
	}
	if err := rr.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.NewDataScan(path, acc.Batches(), fmt.Errorf("read batch: %w", err))
	}

	logging.Component("colstats").Debug("arrow scan complete",
		"path", path,
		"batches", acc.Batches(),
		"columns", len(acc.Columns()),
		"elapsed", time.Since(start))

	return acc.Result(), nil
}

// accumulateRecord adds one batch to acc, keyed by field name.
func accumulateRecord(acc *Accumulator, rec arrow.Record) {
	for i, field := range rec.Schema().Fields() {
		col := rec.Column(i)
		acc.Add(field.Name, int64(col.Len()), int64(col.NullN()))
	}
}

func (s *ArrowScanner) batchSize() int64 {
	if s.BatchSize > 0 {
		return s.BatchSize
	}
	return config.DefaultBatchSize
}

func (s *ArrowScanner) allocator() memory.Allocator {
	if s.Allocator != nil {
		return s.Allocator
	}
	return memory.DefaultAllocator
}
