package metadata

import (
	"github.com/goccy/go-json"

	"github.com/xtxerr/pqinspect/internal/errors"
)

// PandasKey is the footer key-value property written by pandas.
const PandasKey = "pandas"

// Pandas is the provenance embedded by pandas when it writes a file.
type Pandas struct {
	Version string `json:"version"`
	Library string `json:"library"`
}

type pandasDocument struct {
	PandasVersion *string `json:"pandas_version"`
	Creator       *struct {
		Library *string `json:"library"`
		Version *string `json:"version"`
	} `json:"creator"`
}

// ParsePandas parses the value of the "pandas" footer property.
//
// The value must be a JSON object with a string pandas_version and a creator
// object holding string library and version. Library is reported as
// "<library>-<version>". Any other shape returns a *errors.ProvenanceParseError;
// callers treat that as absent provenance.
func ParsePandas(raw string) (*Pandas, error) {
	var doc pandasDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, &errors.ProvenanceParseError{Key: PandasKey, Reason: "invalid json", Err: err}
	}

	switch {
	case doc.PandasVersion == nil:
		return nil, &errors.ProvenanceParseError{Key: PandasKey, Reason: "missing pandas_version"}
	case doc.Creator == nil:
		return nil, &errors.ProvenanceParseError{Key: PandasKey, Reason: "missing creator"}
	case doc.Creator.Library == nil:
		return nil, &errors.ProvenanceParseError{Key: PandasKey, Reason: "missing creator.library"}
	case doc.Creator.Version == nil:
		return nil, &errors.ProvenanceParseError{Key: PandasKey, Reason: "missing creator.version"}
	}

	return &Pandas{
		Version: *doc.PandasVersion,
		Library: *doc.Creator.Library + "-" + *doc.Creator.Version,
	}, nil
}
