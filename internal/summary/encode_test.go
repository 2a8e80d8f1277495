package summary

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtxerr/pqinspect/internal/colstats"
	"github.com/xtxerr/pqinspect/internal/errors"
	"github.com/xtxerr/pqinspect/internal/metadata"
)

func sampleSummary() *FileSummary {
	columns := []metadata.Column{
		{Name: "id", PhysicalType: "INT64"},
		{Name: "name", PhysicalType: "BYTE_ARRAY"},
	}
	return &FileSummary{
		Shape: metadata.Shape{NumRows: 3, NumColsLeaf: 2},
		Creator: metadata.Creator{
			CreatedBy:       "parquet-cpp-arrow version 15.0.0",
			MetadataVersion: 2,
			Pandas:          &metadata.Pandas{Version: "2.2.0", Library: "pyarrow-15.0.0"},
		},
		Schema: metadata.NewSchema(columns, metadata.LevelFull),
		ColumnarStats: map[string]colstats.Stats{
			"id":   {NonNulls: 3},
			"name": {Nulls: 1, NonNulls: 2},
		},
	}
}

func TestMarshal_Shape(t *testing.T) {
	b, err := Marshal(sampleSummary(), FormatCompact)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"shape": {"num_rows": 3, "num_cols_leaf": 2},
		"creator": {
			"created_by": "parquet-cpp-arrow version 15.0.0",
			"metadata_version": 2,
			"pandas": {"version": "2.2.0", "library": "pyarrow-15.0.0"}
		},
		"schema": {"id": "INT64", "name": "BYTE_ARRAY"},
		"columnar_stats": {
			"id": {"nulls": 0, "non_nulls": 3},
			"name": {"nulls": 1, "non_nulls": 2}
		}
	}`, string(b))
}

func TestMarshal_OmitsAbsentFields(t *testing.T) {
	fs := sampleSummary()
	fs.Creator.Pandas = nil
	fs.ColumnarStats = nil

	b, err := Marshal(fs, FormatCompact)
	require.NoError(t, err)

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.NotContains(t, decoded, "columnar_stats")
	assert.NotContains(t, decoded["creator"], "pandas")
}

func TestMarshal_RoundTrip(t *testing.T) {
	dir := NewDirectorySummary()
	dir.Add("b.parquet", sampleSummary())
	dir.Add("a.pq", sampleSummary())

	for name, v := range map[string]interface{}{"file": sampleSummary(), "directory": dir} {
		t.Run(name, func(t *testing.T) {
			compact, err := Marshal(v, FormatCompact)
			require.NoError(t, err)
			pretty, err := Marshal(v, FormatPretty)
			require.NoError(t, err)

			assert.NotContains(t, string(compact), "\n")
			assert.Contains(t, string(pretty), "\n  ")

			var fromCompact, fromPretty any
			require.NoError(t, json.Unmarshal(compact, &fromCompact))
			require.NoError(t, json.Unmarshal(pretty, &fromPretty))
			assert.Equal(t, fromCompact, fromPretty)
		})
	}
}

func TestEncode_TrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleSummary(), FormatCompact))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("pretty")
	require.NoError(t, err)
	assert.Equal(t, FormatPretty, f)

	f, err = ParseFormat("compact")
	require.NoError(t, err)
	assert.Equal(t, FormatCompact, f)

	f, err = ParseFormat("jsonl")
	require.NoError(t, err)
	assert.Equal(t, FormatCompact, f)

	_, err = ParseFormat("xml")
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
}
