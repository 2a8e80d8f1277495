package testutil

// IntRow has one required INT32 column.
type IntRow struct {
	ID int32 `parquet:"id"`
}

// IntRows returns n rows numbered from zero.
func IntRows(n int) []IntRow {
	rows := make([]IntRow, n)
	for i := range rows {
		rows[i] = IntRow{ID: int32(i)}
	}
	return rows
}

// MixedRow covers the common physical types, with two optional columns.
type MixedRow struct {
	ID     int64    `parquet:"id"`
	Name   string   `parquet:"name"`
	Score  *float64 `parquet:"score,optional"`
	Active bool     `parquet:"active"`
	Count  *int32   `parquet:"count,optional"`
	Ratio  float32  `parquet:"ratio"`
}

// MixedRows returns n rows. Score is null on every third row and
// Count on every other row.
func MixedRows(n int) []MixedRow {
	rows := make([]MixedRow, n)
	for i := range rows {
		rows[i] = MixedRow{
			ID:     int64(i),
			Name:   "row",
			Active: i%2 == 0,
			Ratio:  float32(i) / 2,
		}
		if i%3 != 0 {
			score := float64(i) * 1.5
			rows[i].Score = &score
		}
		if i%2 == 0 {
			count := int32(i)
			rows[i].Count = &count
		}
	}
	return rows
}

// MixedNulls returns the expected null counts of MixedRows(n).
func MixedNulls(n int) map[string]int64 {
	var score, count int64
	for i := 0; i < n; i++ {
		if i%3 == 0 {
			score++
		}
		if i%2 != 0 {
			count++
		}
	}
	return map[string]int64{
		"id":     0,
		"name":   0,
		"score":  score,
		"active": 0,
		"count":  count,
		"ratio":  0,
	}
}

// Address is a nested group.
type Address struct {
	City string `parquet:"city"`
	Zip  int32  `parquet:"zip"`
}

// NestedRow has a group column with two leaves.
type NestedRow struct {
	ID      int64   `parquet:"id"`
	Address Address `parquet:"address"`
}

// NestedRows returns n rows.
func NestedRows(n int) []NestedRow {
	rows := make([]NestedRow, n)
	for i := range rows {
		rows[i] = NestedRow{ID: int64(i), Address: Address{City: "x", Zip: int32(i)}}
	}
	return rows
}
