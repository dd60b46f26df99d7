package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokertools/sdk/classification"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.NoColor)
	assert.Positive(t, cfg.Report.Workers)

	opts, err := cfg.BluffOptions()
	require.NoError(t, err)
	assert.Equal(t, classification.DefaultBluffOptions(), opts)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "pokertools.hcl")
	src := `
log_level = "debug"
no_color  = true

bluff {
  board_pairs        = "count"
  required_holecards = 1
}

report {
  workers = 3
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, 3, cfg.Report.Workers)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, level)

	opts, err := cfg.BluffOptions()
	require.NoError(t, err)
	assert.Equal(t, classification.BoardPairsCount, opts.BoardPairs)
	assert.Equal(t, 1, opts.Required)
}

func TestParseZeroRequiredHolecards(t *testing.T) {
	t.Parallel()
	cfg, err := Parse([]byte("bluff {\n  required_holecards = 0\n}\n"), "inline.hcl")
	require.NoError(t, err)

	opts, err := cfg.BluffOptions()
	require.NoError(t, err)
	assert.Equal(t, 0, opts.Required)
	assert.Equal(t, classification.BoardPairsIgnore, opts.BoardPairs)
}

func TestParseRejectsBadValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `log_level = `},
		{"unknown attribute", `colour = true`},
		{"log level", `log_level = "loud"`},
		{"board pairs", "bluff {\n  board_pairs = \"sometimes\"\n}\n"},
		{"required holecards", "bluff {\n  required_holecards = 3\n}\n"},
		{"workers", "report {\n  workers = -2\n}\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tc.src), tc.name+".hcl")
			assert.Error(t, err)
		})
	}
}
