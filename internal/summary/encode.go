package summary

import (
	"bytes"
	"io"

	"github.com/goccy/go-json"

	"github.com/xtxerr/pqinspect/config"
	"github.com/xtxerr/pqinspect/internal/errors"
)

// Format selects the JSON serialization.
type Format int

const (
	// FormatPretty is indented multi-line JSON.
	FormatPretty Format = iota

	// FormatCompact is single-line JSON (JSON lines).
	FormatCompact
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatPretty:
		return "pretty"
	case FormatCompact:
		return "compact"
	default:
		return "unknown"
	}
}

// ParseFormat parses pretty or compact. "auto" is resolved by the caller.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "pretty":
		return FormatPretty, nil
	case "compact", "jsonl":
		return FormatCompact, nil
	default:
		return FormatPretty, errors.NewInvalidValue("format", s, "must be pretty or compact")
	}
}

// Marshal serializes v in the given format, without a trailing newline.
// Pretty output is the compact output re-indented, so both decode to the
// same structure.
func Marshal(v interface{}, format Format) ([]byte, error) {
	compact, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "encode result")
	}

	if format == FormatCompact {
		return compact, nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", config.DefaultIndent); err != nil {
		return nil, errors.Wrap(err, "indent result")
	}
	return buf.Bytes(), nil
}

// Encode writes v to w in the given format, followed by a newline.
func Encode(w io.Writer, v interface{}, format Format) error {
	b, err := Marshal(v, format)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
