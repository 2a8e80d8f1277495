package metadata

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/parquet-go/parquet-go"

	"github.com/xtxerr/pqinspect/internal/errors"
)

// Level selects the schema detail.
type Level int

const (
	// LevelBrief reports physical type -> leaf column count.
	LevelBrief Level = 0

	// LevelFull reports leaf column -> physical type.
	LevelFull Level = 1
)

// ParseLevel validates a requested detail level.
// Anything other than 0 or 1 is a configuration error.
func ParseLevel(n int) (Level, error) {
	switch Level(n) {
	case LevelBrief, LevelFull:
		return Level(n), nil
	default:
		return LevelBrief, errors.NewInvalidValue("level", n, "must be 0 (brief) or 1 (full)")
	}
}

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelBrief:
		return "brief"
	case LevelFull:
		return "full"
	default:
		return "unknown"
	}
}

// Column is one leaf column of a flattened schema.
type Column struct {
	// Name is the dotted path of the leaf, e.g. "address.city". Dots and
	// backslashes inside a field name are escaped with a backslash.
	Name string

	// PhysicalType is the Parquet primitive type name, e.g. "INT32".
	PhysicalType string
}

// Schema is the schema summary at one detail level.
// Exactly one of Brief and Full is set, matching Level.
type Schema struct {
	Level Level
	Brief map[string]int
	Full  map[string]string
}

// NewSchema summarizes leaf columns at the given level.
func NewSchema(columns []Column, level Level) Schema {
	s := Schema{Level: level}

	switch level {
	case LevelFull:
		s.Full = make(map[string]string, len(columns))
		for _, c := range columns {
			s.Full[c.Name] = c.PhysicalType
		}
	default:
		s.Brief = make(map[string]int)
		for _, c := range columns {
			s.Brief[c.PhysicalType]++
		}
	}

	return s
}

// NumColumns returns the number of leaf columns the schema describes.
func (s Schema) NumColumns() int {
	if s.Level == LevelFull {
		return len(s.Full)
	}
	n := 0
	for _, count := range s.Brief {
		n += count
	}
	return n
}

// MarshalJSON emits the populated case as a flat object.
func (s Schema) MarshalJSON() ([]byte, error) {
	if s.Level == LevelFull {
		if s.Full == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(s.Full)
	}
	if s.Brief == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.Brief)
}

// leafColumns flattens the schema into its leaf columns, in schema order.
func leafColumns(schema *parquet.Schema) []Column {
	paths := schema.Columns()
	columns := make([]Column, 0, len(paths))

	for _, path := range paths {
		leaf, ok := schema.Lookup(path...)
		if !ok {
			continue
		}
		columns = append(columns, Column{
			Name:         leafName(path),
			PhysicalType: leaf.Node.Type().Kind().String(),
		})
	}

	return columns
}

var fieldEscaper = strings.NewReplacer(`\`, `\\`, `.`, `\.`)

// leafName joins a column path with dots. A field named "a.b" stays
// distinct from field "b" in group "a".
func leafName(path []string) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = fieldEscaper.Replace(p)
	}
	return strings.Join(parts, ".")
}
