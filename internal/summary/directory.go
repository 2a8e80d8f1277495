package summary

import (
	"bytes"

	"github.com/goccy/go-json"
)

// DirectorySummary maps file names to their summaries.
// Keys keep insertion order when serialized.
type DirectorySummary struct {
	names []string
	files map[string]*FileSummary
}

// NewDirectorySummary creates an empty DirectorySummary.
func NewDirectorySummary() *DirectorySummary {
	return &DirectorySummary{
		files: make(map[string]*FileSummary),
	}
}

// Add inserts a summary under name. Re-adding a name replaces the summary
// and keeps its original position.
func (d *DirectorySummary) Add(name string, fs *FileSummary) {
	if _, ok := d.files[name]; !ok {
		d.names = append(d.names, name)
	}
	d.files[name] = fs
}

// Get returns the summary stored under name.
func (d *DirectorySummary) Get(name string) (*FileSummary, bool) {
	fs, ok := d.files[name]
	return fs, ok
}

// Names returns the file names in insertion order.
func (d *DirectorySummary) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Len returns the number of files.
func (d *DirectorySummary) Len() int {
	return len(d.names)
}

// MarshalJSON writes the files as one object, in insertion order.
func (d *DirectorySummary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, name := range d.names {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(d.files[name])
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
