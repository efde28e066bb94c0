package swatches

import (
	"fmt"
	"github.com/brandquad/swatches/colorutils"
	"github.com/lucasb-eyer/go-colorful"
	"image"
	"image/color"
	"log"
	"sort"
	"strings"
	"time"
)

// Extract samples the center pixel of every grid cell in row-major order and
// returns one record per distinct hex, sorted by hue. White samples are
// treated as background. When two cells share a hex the later cell's record
// is kept at the position of the first one.
func Extract(img image.Image, grid GridParams, palette Palette, rounding colorutils.Rounding) ([]ColorRecord, error) {
	if grid.SwatchSize < 0 || grid.Gap < 0 || grid.step() <= 0 {
		return nil, fmt.Errorf("%w: size %d, gap %d", ErrInvalidGrid, grid.SwatchSize, grid.Gap)
	}
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	records := make([]ColorRecord, 0)
	seen := make(map[string]int)

	for y := 0; y < height; y += grid.step() {
		for x := 0; x < width; x += grid.step() {
			cx := x + grid.SwatchSize/2
			cy := y + grid.SwatchSize/2
			if cx >= width || cy >= height {
				continue
			}

			px := color.NRGBAModel.Convert(img.At(bounds.Min.X+cx, bounds.Min.Y+cy)).(color.NRGBA)
			r, g, b := int(px.R), int(px.G), int(px.B)
			if r == 255 && g == 255 && b == 255 {
				continue
			}

			record, err := newRecord(r, g, b, palette, rounding)
			if err != nil {
				return nil, err
			}

			if i, ok := seen[record.Hex]; ok {
				records[i] = record
				continue
			}
			seen[record.Hex] = len(records)
			records = append(records, record)
		}
	}

	sortByHue(records)
	return records, nil
}

func newRecord(r, g, b int, palette Palette, rounding colorutils.Rounding) (ColorRecord, error) {
	name, err := palette.Nearest(r, g, b)
	if err != nil {
		return ColorRecord{}, err
	}
	hex := rgb2hex(r, g, b)
	return ColorRecord{
		ID:   strings.TrimPrefix(hex, "#"),
		Name: name,
		CMYK: colorutils.Rgb2cmyk(r, g, b, rounding),
		RGB:  colorutils.RGB{r, g, b},
		Hex:  hex,
	}, nil
}

func hue(rgb colorutils.RGB) float64 {
	c := colorful.Color{R: float64(rgb[0]) / 255, G: float64(rgb[1]) / 255, B: float64(rgb[2]) / 255}
	h, _, _ := c.Hsv()
	return h
}

func sortByHue(records []ColorRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return hue(records[i].RGB) < hue(records[j].RGB)
	})
}

// ExtractFile loads c.ChartInput, extracts its swatches and writes them to
// c.ChartOutput. It returns the number of unique colors written.
func ExtractFile(c *Config) (int, error) {
	st := time.Now()
	log.Printf("[>] Extracting swatches from %s", c.ChartInput)
	defer func() {
		log.Printf("[<] Extracting swatches in %s", time.Since(st))
	}()

	img, err := LoadImage(c.ChartInput, c.Decoder)
	if err != nil {
		return 0, fmt.Errorf("loading chart: %w", err)
	}

	records, err := Extract(img, c.Grid, c.Palette, c.ChartRounding)
	if err != nil {
		return 0, err
	}

	if c.DebugMode {
		for _, r := range records {
			log.Printf("[!] %s %-20s rgb=%v cmyk=%v", r.Hex, r.Name, r.RGB, r.CMYK)
		}
	}

	data, err := marshalIndent(records)
	if err != nil {
		return 0, err
	}
	if err = writeFileAtomic(c.ChartOutput, data); err != nil {
		return 0, fmt.Errorf("writing %s: %w", c.ChartOutput, err)
	}
	return len(records), nil
}
