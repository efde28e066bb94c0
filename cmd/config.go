package main

import (
	"fmt"
	"github.com/brandquad/swatches"
	"github.com/brandquad/swatches/colorutils"
)

type Config struct {
	CatalogInput     string `envconfig:"SWATCHES_CATALOG_INPUT" default:"color_swatches.json"`
	CatalogOutput    string `envconfig:"SWATCHES_CATALOG_OUTPUT" default:"color_swatches_with_cmyk.json"`
	ChartInput       string `envconfig:"SWATCHES_CHART_INPUT" default:"color_chart.jpg"`
	ChartOutput      string `envconfig:"SWATCHES_CHART_OUTPUT" default:"color-swatches.json"`
	SwatchSize       int    `envconfig:"SWATCHES_SWATCH_SIZE" default:"20"`
	Gap              int    `envconfig:"SWATCHES_GAP" default:"4"`
	CatalogPrecision int    `envconfig:"SWATCHES_CATALOG_PRECISION" default:"2"`
	ChartPrecision   int    `envconfig:"SWATCHES_CHART_PRECISION" default:"0"`
	PaletteFile      string `envconfig:"SWATCHES_PALETTE_FILE"`
	Decoder          string `envconfig:"SWATCHES_DECODER" default:"std"`
	MaxCpuCount      int    `envconfig:"MAX_CPU_COUNT" default:"1"`
	DebugMode        bool   `envconfig:"SWATCHES_DEBUG" default:"false"`
}

func (c Config) MakeSwatchesConfig() (*swatches.Config, error) {
	if !swatches.HasDecoder(c.Decoder) {
		if c.Decoder == swatches.DecoderVips {
			return nil, fmt.Errorf("decoder %q not supported: build with -tags vips", c.Decoder)
		}
		return nil, fmt.Errorf("decoder %q not supported", c.Decoder)
	}

	catalogRounding := colorutils.Rounding{Decimals: c.CatalogPrecision}
	if !catalogRounding.Valid() {
		return nil, fmt.Errorf("catalog precision %d out of range [0,%d]", c.CatalogPrecision, colorutils.MaxDecimals)
	}
	chartRounding := colorutils.Rounding{Decimals: c.ChartPrecision}
	if !chartRounding.Valid() {
		return nil, fmt.Errorf("chart precision %d out of range [0,%d]", c.ChartPrecision, colorutils.MaxDecimals)
	}

	palette := swatches.DefaultPalette()
	if c.PaletteFile != "" {
		var err error
		if palette, err = swatches.LoadPalette(c.PaletteFile); err != nil {
			return nil, err
		}
	}

	return &swatches.Config{
		CatalogInput:    c.CatalogInput,
		CatalogOutput:   c.CatalogOutput,
		ChartInput:      c.ChartInput,
		ChartOutput:     c.ChartOutput,
		Grid:            swatches.GridParams{SwatchSize: c.SwatchSize, Gap: c.Gap},
		CatalogRounding: catalogRounding,
		ChartRounding:   chartRounding,
		Palette:         palette,
		Decoder:         c.Decoder,
		DebugMode:       c.DebugMode,
	}, nil
}
