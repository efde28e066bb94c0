//go:build vips

// Package vipsload registers a libvips backed image decoder with swatches.
// It needs cgo and libvips, so it is only built with -tags vips.
package vipsload

import (
	"fmt"
	"github.com/brandquad/swatches"
	"github.com/davidbyttow/govips/v2/vips"
	"image"
	"log"
	"os"
)

func init() {
	swatches.RegisterDecoder(swatches.DecoderVips, Load)
}

// Startup starts libvips with the given worker count. Call Shutdown when done.
func Startup(concurrency int) {
	vips.LoggingSettings(func(messageDomain string, verbosity vips.LogLevel, message string) {}, vips.LogLevelInfo)
	vips.Startup(&vips.Config{
		ConcurrencyLevel: concurrency,
	})
}

func Shutdown() {
	vips.Shutdown()
}

// exportParams re-encodes the decoded pixels for image.Decode. PNG keeps them
// bit-exact; the native format would recompress JPEG sources.
func exportParams() *vips.ExportParams {
	return &vips.ExportParams{Format: vips.ImageTypePNG}
}

// Load decodes filename with libvips and returns it as an sRGB image.
func Load(filename string) (image.Image, error) {
	// vips reports a missing file as a generic load error
	if _, err := os.Stat(filename); err != nil {
		return nil, err
	}

	ref, err := vips.LoadImageFromFile(filename, nil)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filename, err)
	}
	defer ref.Close()

	if ref.ColorSpace() != vips.InterpretationSRGB {
		if err = ref.ToColorSpace(vips.InterpretationSRGB); err != nil {
			return nil, err
		}
	}

	img, err := ref.ToImage(exportParams())
	if err != nil {
		return nil, fmt.Errorf("exporting %s: %w", filename, err)
	}
	log.Printf("[!] Decoded %s with libvips, %dx%d", filename, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}
