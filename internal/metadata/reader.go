package metadata

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/format"

	"github.com/xtxerr/pqinspect/config"
	"github.com/xtxerr/pqinspect/internal/errors"
	"github.com/xtxerr/pqinspect/internal/logging"
)

// UnknownCreator is reported when the footer carries no created_by.
const UnknownCreator = "unknown"

// Shape is the footer row count and the number of leaf columns.
type Shape struct {
	NumRows     int64 `json:"num_rows"`
	NumColsLeaf int   `json:"num_cols_leaf"`
}

// Creator identifies the writer of a file.
type Creator struct {
	CreatedBy       string  `json:"created_by"`
	MetadataVersion int32   `json:"metadata_version"`
	Pandas          *Pandas `json:"pandas,omitempty"`
}

// Metadata is everything read from one footer.
type Metadata struct {
	Path    string
	Shape   Shape
	Creator Creator
	Schema  Schema

	// Columns lists the leaf columns in schema order.
	Columns []Column
}

// Read opens the footer of the Parquet file at path.
// Only the footer is read; page indexes and bloom filters are skipped.
// Failures are returned as *errors.MetadataReadError.
func Read(path string, level Level) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewMetadataRead(path, fmt.Errorf("open file: %w", err))
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, errors.NewMetadataRead(path, fmt.Errorf("stat file: %w", err))
	}

	pf, err := parquet.OpenFile(f, stat.Size(),
		parquet.SkipPageIndex(true),
		parquet.SkipBloomFilters(true),
		parquet.ReadBufferSize(config.DefaultReadBufferSize),
	)
	if err != nil {
		return nil, errors.NewMetadataRead(path, fmt.Errorf("open footer: %w", err))
	}

	footer := pf.Metadata()
	if footer == nil {
		return nil, errors.NewMetadataRead(path, errors.New("footer is empty"))
	}
	if footer.NumRows < 0 {
		return nil, errors.NewMetadataRead(path, fmt.Errorf("negative row count %d", footer.NumRows))
	}

	columns := leafColumns(pf.Schema())

	return &Metadata{
		Path: path,
		Shape: Shape{
			NumRows:     footer.NumRows,
			NumColsLeaf: len(columns),
		},
		Creator: creatorOf(path, footer),
		Schema:  NewSchema(columns, level),
		Columns: columns,
	}, nil
}

// creatorOf extracts writer identification from a footer.
// Unparseable pandas provenance is logged and dropped.
func creatorOf(path string, footer *format.FileMetaData) Creator {
	c := Creator{
		CreatedBy:       footer.CreatedBy,
		MetadataVersion: footer.Version,
	}
	if c.CreatedBy == "" {
		c.CreatedBy = UnknownCreator
	}

	raw, ok := lookupKeyValue(footer.KeyValueMetadata, PandasKey)
	if !ok {
		return c
	}

	pandas, err := ParsePandas(raw)
	if err != nil {
		logging.Component("metadata").Debug("provenance dropped", "path", path, "error", err)
		return c
	}
	c.Pandas = pandas

	return c
}

// lookupKeyValue returns the value of the first property named key.
func lookupKeyValue(kvs []format.KeyValue, key string) (string, bool) {
	for _, kv := range kvs {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}
