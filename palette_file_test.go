package camo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadPaletteYAML(t *testing.T) {
	path := writeFile(t, "woodland.yaml", `
# replacement colors
white: "#ffffff"
gray: [0.5, 0.25, 0.125]
black: "#000"
`)
	p, err := LoadPalette(path)
	require.NoError(t, err)
	assert.Equal(t, Palette{
		White: RGB(1, 1, 1),
		Gray:  RGB(0.5, 0.25, 0.125),
		Black: RGB(0, 0, 0),
	}, p)
}

func TestLoadPaletteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colors.json")
	data, err := Serialize(testPalette())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	p, err := LoadPalette(path)
	require.NoError(t, err)
	assert.Equal(t, testPalette(), p)
}

func TestLoadPaletteErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"missing slot", "a.yaml", "white: \"#ffffff\"\ngray: \"#808080\"\n"},
		{"unquoted hex is a comment", "b.yml", "white: #ffffff\ngray: \"#808080\"\nblack: \"#000000\"\n"},
		{"wrong arity", "c.yaml", "white: [1, 1]\ngray: \"#808080\"\nblack: \"#000000\"\n"},
		{"out of range", "d.yaml", "white: [1, 2, 1]\ngray: \"#808080\"\nblack: \"#000000\"\n"},
		{"bad hex", "e.yaml", "white: \"white\"\ngray: \"#808080\"\nblack: \"#000000\"\n"},
		{"bad json", "f.json", "{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPalette(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedDocument), "got %v", err)
		})
	}

	_, err := LoadPalette(writeFile(t, "palette.toml", "white = 1"))
	assert.Error(t, err)

	_, err = LoadPalette(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSaveLoadPalette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")
	p := testPalette()
	require.NoError(t, SavePalette(path, p))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "white: [0.9, 0.85, 0.7]")

	back, err := LoadPalette(path)
	require.NoError(t, err)
	assert.Equal(t, p, back)
}
