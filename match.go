package swatches

import (
	"encoding/json"
	"fmt"
	"github.com/lucasb-eyer/go-colorful"
	"os"
	"sort"
	"strings"
)

// Match returns up to count catalog records ordered by CIEDE2000 distance to
// query, nearest first. Records at equal distance keep catalog order.
func Match(catalog []ColorRecord, query colorful.Color, count int) []SwatchMatch {
	if count <= 0 {
		return []SwatchMatch{}
	}

	matches := make([]SwatchMatch, 0, len(catalog))
	for _, r := range catalog {
		c := colorful.Color{R: float64(r.RGB[0]) / 255, G: float64(r.RGB[1]) / 255, B: float64(r.RGB[2]) / 255}
		matches = append(matches, SwatchMatch{
			ColorRecord: r,
			Distance:    query.DistanceCIEDE2000(c),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	if len(matches) > count {
		matches = matches[:count]
	}
	return matches
}

// LoadCatalog reads a catalog previously written by ExtractFile or
// AugmentFile.
func LoadCatalog(filename string) ([]ColorRecord, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var records []ColorRecord
	if err = json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", filename, err)
	}
	for i, r := range records {
		if !r.RGB.Valid() {
			return nil, fmt.Errorf("%s: record %d: %w: rgb %v out of range", filename, i, ErrMalformedRecord, r.RGB)
		}
	}
	return records, nil
}

// ParseColor accepts "#rrggbb", "#rgb", "rrggbb" or a palette name.
func ParseColor(s string, palette Palette) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := palette.Lookup(s); ok {
		return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}, nil
	}

	hex := s
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return c, nil
}
