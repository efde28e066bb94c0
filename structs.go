package swatches

import (
	"errors"
	"github.com/brandquad/swatches/colorutils"
)

const DefaultFilePerm = 0644

const (
	DefaultCatalogInput  = "color_swatches.json"
	DefaultCatalogOutput = "color_swatches_with_cmyk.json"
	DefaultChartInput    = "color_chart.jpg"
	DefaultChartOutput   = "color-swatches.json"

	DefaultSwatchSize = 20
	DefaultGap        = 4
)

const (
	DecoderStd  = "std"
	DecoderVips = "vips"
)

var (
	ErrEmptyPalette    = errors.New("reference palette is empty")
	ErrMalformedRecord = errors.New("malformed color record")
	ErrNotArray        = errors.New("catalog is not a JSON array")
	ErrUnknownColor    = errors.New("unknown color")
	ErrInvalidGrid     = errors.New("invalid swatch grid")
)

// ColorRecord is a single catalog entry. Hex and ID are derived from RGB and
// CMYK is Rgb2cmyk(RGB).
type ColorRecord struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	CMYK colorutils.CMYK `json:"cmyk"`
	RGB  colorutils.RGB  `json:"rgb"`
	Hex  string          `json:"hex"`
}

// GridParams describes the layout of a swatch chart: square cells of
// SwatchSize pixels separated by Gap pixels.
type GridParams struct {
	SwatchSize int
	Gap        int
}

func (g GridParams) step() int {
	return g.SwatchSize + g.Gap
}

// SwatchMatch is a catalog record together with its CIEDE2000 distance to a
// query color.
type SwatchMatch struct {
	ColorRecord
	Distance float64 `json:"distance"`
}

type Config struct {
	CatalogInput    string
	CatalogOutput   string
	ChartInput      string
	ChartOutput     string
	Grid            GridParams
	CatalogRounding colorutils.Rounding
	ChartRounding   colorutils.Rounding
	Palette         Palette
	Decoder         string
	DebugMode       bool
}

// DefaultConfig returns the fixed file names and grid used when nothing is
// overridden.
func DefaultConfig() *Config {
	return &Config{
		CatalogInput:    DefaultCatalogInput,
		CatalogOutput:   DefaultCatalogOutput,
		ChartInput:      DefaultChartInput,
		ChartOutput:     DefaultChartOutput,
		Grid:            GridParams{SwatchSize: DefaultSwatchSize, Gap: DefaultGap},
		CatalogRounding: colorutils.RoundCatalog,
		ChartRounding:   colorutils.RoundChart,
		Palette:         DefaultPalette(),
		Decoder:         DecoderStd,
	}
}
