package errors

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedErrors_IsSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		phase    string
	}{
		{"path kind", NewPathKind("/x", fs.ErrNotExist), ErrPathKind, PhasePath},
		{"metadata", NewMetadataRead("/x/a.parquet", New("bad magic")), ErrMetadataRead, PhaseMetadata},
		{"scan", NewDataScan("/x/a.parquet", 3, New("truncated")), ErrDataScan, PhaseScan},
		{"config", NewInvalidValue("level", 5, "must be 0 or 1"), ErrConfiguration, PhaseConfig},
		{"provenance", &ProvenanceParseError{Key: "pandas", Reason: "missing pandas_version"}, ErrProvenance, PhaseProvenance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Is(tt.err, tt.sentinel))
			assert.Equal(t, tt.phase, Phase(tt.err))

			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.True(t, Is(wrapped, tt.sentinel))
			assert.Equal(t, tt.phase, Phase(wrapped))
		})
	}
}

func TestTypedErrors_KeepCause(t *testing.T) {
	err := NewPathKind("/missing", fs.ErrNotExist)
	assert.True(t, Is(err, fs.ErrNotExist))

	var pk *PathKindError
	require.True(t, As(err, &pk))
	assert.Equal(t, "/missing", pk.Path)
	assert.Contains(t, err.Error(), "/missing")

	scan := NewDataScan("/d/a.parquet", 7, New("corrupt page"))
	var ds *DataScanError
	require.True(t, As(scan, &ds))
	assert.Equal(t, 7, ds.Batches)
	assert.Contains(t, scan.Error(), "after 7 batches")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitUserError, ExitCode(NewInvalidValue("level", 5, "unsupported")))
	assert.Equal(t, ExitUserError, ExitCode(NewPathKind("/x", nil)))
	assert.Equal(t, ExitInternal, ExitCode(NewMetadataRead("/x", New("eof"))))
	assert.Equal(t, ExitInternal, ExitCode(New("boom")))
}

func TestConfigFileError(t *testing.T) {
	err := NewConfigFile("/etc/pq.yaml", "read config file", fs.ErrPermission)
	assert.True(t, Is(err, ErrConfiguration))
	assert.True(t, Is(err, fs.ErrPermission))
	assert.Equal(t, PhaseConfig, Phase(err))
	assert.Equal(t, ExitUserError, ExitCode(err))
	assert.Contains(t, err.Error(), "/etc/pq.yaml")

	var ce *ConfigurationError
	require.True(t, As(err, &ce))
	assert.Equal(t, "config", ce.Field)
}

func TestPhase_Untyped(t *testing.T) {
	assert.Equal(t, "", Phase(New("plain")))
	assert.Equal(t, "", Phase(nil))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ctx"))
	assert.Nil(t, Wrapf(nil, "ctx %d", 1))

	base := New("base")
	assert.True(t, Is(Wrap(base, "ctx"), base))
	assert.Equal(t, "file 3: base", Wrapf(base, "file %d", 3).Error())
}
