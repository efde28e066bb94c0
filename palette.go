package swatches

import (
	"encoding/json"
	"fmt"
	"github.com/brandquad/swatches/assets"
	"github.com/brandquad/swatches/colorutils"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
	"os"
	"strings"
)

// Palette is an ordered reference palette used for nearest-name lookup.
// Order matters: on equal distance the earlier entry wins.
type Palette []assets.NamedColor

var nameFolder = cases.Fold()

// DefaultPalette returns the CSS3 named colors in alphabetical order.
func DefaultPalette() Palette {
	p := make(Palette, len(assets.CSS3))
	copy(p, assets.CSS3)
	return p
}

// Nearest returns the name of the palette entry with the smallest squared
// Euclidean RGB distance to (r, g, b). Ties go to the first entry in palette
// order.
func (p Palette) Nearest(r, g, b int) (string, error) {
	if len(p) == 0 {
		return "", ErrEmptyPalette
	}
	best, bestDist := 0, -1
	for i, c := range p {
		dr := int(c.R) - r
		dg := int(c.G) - g
		db := int(c.B) - b
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return p[best].Name, nil
}

// Lookup finds an entry by case-insensitive name.
func (p Palette) Lookup(name string) (assets.NamedColor, bool) {
	name = nameFolder.String(strings.TrimSpace(name))
	for _, c := range p {
		if c.Name == name {
			return c, true
		}
	}
	return assets.NamedColor{}, false
}

type paletteEntry struct {
	Name string    `json:"name"`
	Hex  string    `json:"hex,omitempty"`
	RGB  []int     `json:"rgb,omitempty"`
	Lab  []float64 `json:"lab,omitempty"`
}

// LoadPalette reads a JSON array of {"name", "hex"|"rgb"|"lab"} entries.
// File order is kept as the tie-break order.
func LoadPalette(filename string) (Palette, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading palette: %w", err)
	}

	var entries []paletteEntry
	if err = json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing palette %s: %w", filename, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrEmptyPalette)
	}

	p := make(Palette, 0, len(entries))
	for i, e := range entries {
		rgb, err := e.rgb()
		if err != nil {
			return nil, fmt.Errorf("palette entry %d (%q): %w", i, e.Name, err)
		}
		p = append(p, assets.NamedColor{
			Name: nameFolder.String(strings.TrimSpace(e.Name)),
			R:    uint8(rgb[0]),
			G:    uint8(rgb[1]),
			B:    uint8(rgb[2]),
		})
	}
	return p, nil
}

func (e paletteEntry) rgb() (colorutils.RGB, error) {
	switch {
	case e.Hex != "":
		c, err := colorful.Hex(e.Hex)
		if err != nil {
			return colorutils.RGB{}, err
		}
		r, g, b := c.RGB255()
		return colorutils.RGB{int(r), int(g), int(b)}, nil
	case len(e.RGB) == 3:
		rgb := colorutils.RGB{e.RGB[0], e.RGB[1], e.RGB[2]}
		if !rgb.Valid() {
			return rgb, fmt.Errorf("rgb %v out of range", e.RGB)
		}
		return rgb, nil
	case len(e.Lab) == 3:
		return colorutils.Lab2rgb(e.Lab), nil
	}
	return colorutils.RGB{}, fmt.Errorf("entry needs hex, rgb or lab")
}
