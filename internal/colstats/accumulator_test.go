package colstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulator_Basic(t *testing.T) {
	acc := NewAccumulator()
	assert.Empty(t, acc.Result())
	assert.Equal(t, 0, acc.Batches())

	// Batch 1: 10 rows
	acc.Add("a", 10, 0)
	acc.Add("b", 10, 3)
	acc.EndBatch()

	// Batch 2: 5 rows
	acc.Add("a", 5, 1)
	acc.Add("b", 5, 5)
	acc.EndBatch()

	result := acc.Result()
	assert.Equal(t, Stats{Nulls: 1, NonNulls: 14}, result["a"])
	assert.Equal(t, Stats{Nulls: 8, NonNulls: 7}, result["b"])
	assert.Equal(t, 2, acc.Batches())

	for name, s := range result {
		assert.Equal(t, int64(15), s.Total(), name)
	}
}

func TestAccumulator_LateColumnStartsAtZero(t *testing.T) {
	acc := NewAccumulator()

	acc.Add("a", 4, 0)
	acc.EndBatch()

	acc.Add("a", 4, 2)
	acc.Add("late", 4, 1)
	acc.EndBatch()

	result := acc.Result()
	assert.Equal(t, Stats{Nulls: 2, NonNulls: 6}, result["a"])
	assert.Equal(t, Stats{Nulls: 1, NonNulls: 3}, result["late"])
	assert.Equal(t, []string{"a", "late"}, acc.Columns())
}

func TestAccumulator_OrderIndependent(t *testing.T) {
	batches := []struct {
		col          string
		length, null int64
	}{
		{"x", 7, 2}, {"y", 7, 0}, {"x", 3, 3}, {"y", 3, 1}, {"x", 11, 0},
	}

	forward := NewAccumulator()
	for _, b := range batches {
		forward.Add(b.col, b.length, b.null)
	}

	backward := NewAccumulator()
	for i := len(batches) - 1; i >= 0; i-- {
		b := batches[i]
		backward.Add(b.col, b.length, b.null)
	}

	assert.Equal(t, forward.Result(), backward.Result())
}

func TestAccumulator_ResultIsACopy(t *testing.T) {
	acc := NewAccumulator()
	acc.Add("a", 1, 0)

	result := acc.Result()
	result["a"] = Stats{Nulls: 99}
	delete(result, "a")

	assert.Equal(t, Stats{NonNulls: 1}, acc.Result()["a"])
}

func TestAccumulator_Touch(t *testing.T) {
	acc := NewAccumulator()
	acc.Touch("empty")
	acc.Touch("empty")

	assert.Equal(t, map[string]Stats{"empty": {}}, acc.Result())
	assert.Equal(t, []string{"empty"}, acc.Columns())
}
