package swatches

import (
	"github.com/brandquad/swatches/assets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestNearest(t *testing.T) {
	p := DefaultPalette()
	tests := []struct {
		r, g, b int
		want    string
	}{
		{255, 0, 0, "red"},
		{250, 2, 3, "red"},
		{0, 0, 0, "black"},
		{1, 1, 1, "black"},
		{255, 255, 255, "white"},
		// exact duplicates in the table resolve to the first name alphabetically
		{0, 255, 255, "aqua"},
		{255, 0, 255, "fuchsia"},
		{128, 128, 128, "gray"},
		{47, 79, 79, "darkslategray"},
	}
	for _, tc := range tests {
		got, err := p.Nearest(tc.r, tc.g, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Nearest(%d, %d, %d)", tc.r, tc.g, tc.b)
	}
}

func TestNearestFirstWins(t *testing.T) {
	p := Palette{
		{Name: "second", R: 10},
		{Name: "first", R: 10},
		{Name: "far", R: 200},
	}
	got, err := p.Nearest(10, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "second", got)

	// equidistant on both sides
	p = Palette{{Name: "low", R: 0}, {Name: "high", R: 20}}
	got, err = p.Nearest(10, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "low", got)
}

func TestNearestEmptyPalette(t *testing.T) {
	_, err := Palette{}.Nearest(1, 2, 3)
	assert.ErrorIs(t, err, ErrEmptyPalette)
}

func TestDefaultPaletteIsCopy(t *testing.T) {
	p := DefaultPalette()
	require.Len(t, p, len(assets.CSS3))
	p[0].Name = "changed"
	assert.NotEqual(t, "changed", assets.CSS3[0].Name)
}

func TestLookup(t *testing.T) {
	p := DefaultPalette()
	c, ok := p.Lookup("  DarkOrange ")
	require.True(t, ok)
	assert.Equal(t, assets.NamedColor{Name: "darkorange", R: 255, G: 140, B: 0}, c)

	_, ok = p.Lookup("not a color")
	assert.False(t, ok)
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPalette(t *testing.T) {
	path := writeTemp(t, "palette.json", `[
		{"name": "Brand Red", "hex": "#E30613"},
		{"name": "ink", "rgb": [10, 20, 30]},
		{"name": "paper", "lab": [100, 0, 0]}
	]`)

	p, err := LoadPalette(path)
	require.NoError(t, err)
	require.Len(t, p, 3)

	assert.Equal(t, assets.NamedColor{Name: "brand red", R: 0xe3, G: 0x06, B: 0x13}, p[0])
	assert.Equal(t, assets.NamedColor{Name: "ink", R: 10, G: 20, B: 30}, p[1])
	assert.Equal(t, "paper", p[2].Name)
	assert.InDelta(t, 255, int(p[2].R), 1)

	name, err := p.Nearest(12, 18, 33)
	require.NoError(t, err)
	assert.Equal(t, "ink", name)
}

func TestLoadPaletteErrors(t *testing.T) {
	_, err := LoadPalette(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = LoadPalette(writeTemp(t, "empty.json", `[]`))
	assert.ErrorIs(t, err, ErrEmptyPalette)

	_, err = LoadPalette(writeTemp(t, "bad.json", `{"name": "x"}`))
	assert.Error(t, err)

	_, err = LoadPalette(writeTemp(t, "nocolor.json", `[{"name": "x"}]`))
	assert.ErrorContains(t, err, "needs hex, rgb or lab")

	_, err = LoadPalette(writeTemp(t, "range.json", `[{"name": "x", "rgb": [0, 300, 0]}]`))
	assert.ErrorContains(t, err, "out of range")

	_, err = LoadPalette(writeTemp(t, "hex.json", `[{"name": "x", "hex": "nothex"}]`))
	assert.Error(t, err)
}
