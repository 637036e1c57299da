package playlists

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	input := `
# music
PLbALbm1g5VzAqShkgKwo0NIVkwV9bZE8t  Chill mix
PLother

	PLtabbed	Tabbed label  with spaces
PLbALbm1g5VzAqShkgKwo0NIVkwV9bZE8t duplicate is dropped
`

	entries, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []Entry{
		{ID: "PLbALbm1g5VzAqShkgKwo0NIVkwV9bZE8t", Label: "Chill mix"},
		{ID: "PLother"},
		{ID: "PLtabbed", Label: "Tabbed label  with spaces"},
	}, entries)
}

func TestParse_Empty(t *testing.T) {
	entries, err := Parse(strings.NewReader("# nothing here\n\n"))
	require.NoError(t, err)

	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestEntry_Name(t *testing.T) {
	assert.Equal(t, "Chill", Entry{ID: "PL1", Label: "Chill"}.Name())
	assert.Equal(t, "PL1", Entry{ID: "PL1"}.Name())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playlists")
	require.NoError(t, os.WriteFile(path, []byte("PL1\nPL2 second\n"), 0600))

	entries, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "second", entries[1].Label)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "playlists"))
	assert.ErrorIs(t, err, ErrNoPlaylistFile)
}
