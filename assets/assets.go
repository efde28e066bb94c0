package assets

import (
	"golang.org/x/image/colornames"
)

// NamedColor is a single entry of a reference palette.
type NamedColor struct {
	Name    string
	R, G, B uint8
}

// CSS3 is the CSS3 / SVG 1.1 named-color table, ordered by name.
var CSS3 []NamedColor

func init() {
	CSS3 = make([]NamedColor, 0, len(colornames.Names))
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		CSS3 = append(CSS3, NamedColor{Name: name, R: c.R, G: c.G, B: c.B})
	}
}
