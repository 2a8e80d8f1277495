package metadata

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtxerr/pqinspect/internal/errors"
)

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel(0)
	require.NoError(t, err)
	assert.Equal(t, LevelBrief, l)

	l, err = ParseLevel(1)
	require.NoError(t, err)
	assert.Equal(t, LevelFull, l)

	for _, n := range []int{-1, 2, 5} {
		_, err := ParseLevel(n)
		require.Error(t, err)
		var ce *errors.ConfigurationError
		assert.True(t, errors.As(err, &ce))
		assert.Equal(t, "level", ce.Field)
	}
}

func TestNewSchema(t *testing.T) {
	columns := []Column{
		{Name: "a", PhysicalType: "INT32"},
		{Name: "b", PhysicalType: "INT32"},
		{Name: "c", PhysicalType: "BYTE_ARRAY"},
	}

	brief := NewSchema(columns, LevelBrief)
	assert.Equal(t, map[string]int{"INT32": 2, "BYTE_ARRAY": 1}, brief.Brief)
	assert.Equal(t, 3, brief.NumColumns())

	full := NewSchema(columns, LevelFull)
	assert.Equal(t, map[string]string{"a": "INT32", "b": "INT32", "c": "BYTE_ARRAY"}, full.Full)
	assert.Equal(t, 3, full.NumColumns())
}

func TestSchema_MarshalJSON(t *testing.T) {
	columns := []Column{{Name: "id", PhysicalType: "INT32"}}

	b, err := json.Marshal(NewSchema(columns, LevelBrief))
	require.NoError(t, err)
	assert.JSONEq(t, `{"INT32": 1}`, string(b))

	b, err = json.Marshal(NewSchema(columns, LevelFull))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "INT32"}`, string(b))

	b, err = json.Marshal(NewSchema(nil, LevelFull))
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))

	b, err = json.Marshal(Schema{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(b))
}

func TestLeafName(t *testing.T) {
	assert.Equal(t, "id", leafName([]string{"id"}))
	assert.Equal(t, "address.city", leafName([]string{"address", "city"}))
	assert.Equal(t, `address\.city`, leafName([]string{"address.city"}))
	assert.Equal(t, `a\\b`, leafName([]string{`a\b`}))
}

func TestLeafColumns_DottedFieldNames(t *testing.T) {
	schema := parquet.NewSchema("row", parquet.Group{
		"address.city": parquet.String(),
		"address": parquet.Group{
			"city": parquet.Leaf(parquet.Int32Type),
		},
	})

	columns := leafColumns(schema)
	require.Len(t, columns, 2)

	full := NewSchema(columns, LevelFull)
	assert.Equal(t, map[string]string{
		"address.city":  "INT32",
		`address\.city`: "BYTE_ARRAY",
	}, full.Full)
	assert.Equal(t, len(columns), full.NumColumns())
	assert.Equal(t, len(columns), NewSchema(columns, LevelBrief).NumColumns())
}
