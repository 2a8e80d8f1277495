package colstats

// Stats holds the null and non-null counts of one column.
type Stats struct {
	Nulls    int64 `json:"nulls"`
	NonNulls int64 `json:"non_nulls"`
}

// Total returns the number of values counted.
func (s Stats) Total() int64 {
	return s.Nulls + s.NonNulls
}

// Accumulator maintains running per-column totals across batches.
// It is owned by a single scan and is not safe for concurrent use.
type Accumulator struct {
	totals  map[string]*Stats
	order   []string
	batches int
}

// NewAccumulator creates an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		totals: make(map[string]*Stats),
	}
}

// Touch registers a column at zero without counting anything.
func (a *Accumulator) Touch(column string) *Stats {
	s, ok := a.totals[column]
	if !ok {
		s = &Stats{}
		a.totals[column] = s
		a.order = append(a.order, column)
	}
	return s
}

// Add adds one batch's counts for a column: nulls to Nulls, length-nulls
// to NonNulls. A column not seen before starts at zero.
func (a *Accumulator) Add(column string, length, nulls int64) {
	s := a.Touch(column)
	s.Nulls += nulls
	s.NonNulls += length - nulls
}

// EndBatch marks one batch as fully accumulated.
func (a *Accumulator) EndBatch() {
	a.batches++
}

// Batches returns the number of completed batches.
func (a *Accumulator) Batches() int {
	return a.batches
}

// Columns returns the column names in first-seen order.
func (a *Accumulator) Columns() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Result returns a copy of the totals keyed by column name.
func (a *Accumulator) Result() map[string]Stats {
	out := make(map[string]Stats, len(a.totals))
	for name, s := range a.totals {
		out[name] = *s
	}
	return out
}
