package summary

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtxerr/pqinspect/internal/colstats"
	"github.com/xtxerr/pqinspect/internal/errors"
	"github.com/xtxerr/pqinspect/internal/metadata"
	"github.com/xtxerr/pqinspect/internal/testutil"
)

// failingScanner always fails, after recording that it was called.
type failingScanner struct {
	calls int
}

func (s *failingScanner) Scan(_ context.Context, path string) (map[string]colstats.Stats, error) {
	s.calls++
	return nil, errors.NewDataScan(path, 2, errors.New("corrupt data page"))
}

func TestSummarize_MetadataOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.parquet")
	testutil.WriteFile(t, path, testutil.IntRows(10))

	scanner := &failingScanner{}
	s := &Summarizer{Level: metadata.LevelBrief, Scanner: scanner}

	fs, err := s.Summarize(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, metadata.Shape{NumRows: 10, NumColsLeaf: 1}, fs.Shape)
	assert.Equal(t, map[string]int{"INT32": 1}, fs.Schema.Brief)
	assert.Nil(t, fs.ColumnarStats)
	assert.Equal(t, 0, scanner.calls, "scanner must not run unless requested")
}

func TestSummarize_WithColumnarStats(t *testing.T) {
	const n = 30
	path := filepath.Join(t.TempDir(), "mixed.parquet")
	testutil.WriteFile(t, path, testutil.MixedRows(n), testutil.WithRowGroupSize(8))

	s := &Summarizer{
		Level:         metadata.LevelFull,
		ColumnarStats: true,
		Scanner:       &colstats.ArrowScanner{BatchSize: 5},
	}

	fs, err := s.Summarize(context.Background(), path)
	require.NoError(t, err)
	require.NotNil(t, fs.ColumnarStats)

	assert.Equal(t, fs.Shape.NumColsLeaf, len(fs.Schema.Full))
	for col, st := range fs.ColumnarStats {
		assert.Equal(t, fs.Shape.NumRows, st.Total(), col)
	}
	assert.Equal(t, testutil.MixedNulls(n)["score"], fs.ColumnarStats["score"].Nulls)
}

func TestSummarize_ScanFailureIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.parquet")
	testutil.WriteFile(t, path, testutil.IntRows(10))

	scanner := &failingScanner{}
	s := &Summarizer{Level: metadata.LevelFull, ColumnarStats: true, Scanner: scanner}

	fs, err := s.Summarize(context.Background(), path)
	assert.Nil(t, fs, "no partial summary")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDataScan))
	assert.Equal(t, errors.PhaseScan, errors.Phase(err))
	assert.Equal(t, 1, scanner.calls)
}

func TestSummarize_MetadataFailureIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.parquet")
	testutil.WriteBytes(t, path, []byte("nope"))

	scanner := &failingScanner{}
	s := &Summarizer{Level: metadata.LevelFull, ColumnarStats: true, Scanner: scanner}

	fs, err := s.Summarize(context.Background(), path)
	assert.Nil(t, fs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMetadataRead))
	assert.Equal(t, 0, scanner.calls, "scan is skipped once the footer fails")
}

func TestSummarize_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.parquet")
	testutil.WriteFile(t, path, testutil.MixedRows(40),
		testutil.WithKeyValue("pandas", `{"pandas_version": "2.2.0", "creator": {"library": "pyarrow", "version": "15.0.0"}}`))

	s := &Summarizer{Level: metadata.LevelFull, ColumnarStats: true, Scanner: &colstats.ArrowScanner{}}

	for _, format := range []Format{FormatPretty, FormatCompact} {
		first, err := s.Summarize(context.Background(), path)
		require.NoError(t, err)
		second, err := s.Summarize(context.Background(), path)
		require.NoError(t, err)

		a, err := Marshal(first, format)
		require.NoError(t, err)
		b, err := Marshal(second, format)
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), format.String())
	}
}
