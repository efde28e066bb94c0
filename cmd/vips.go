//go:build vips

package main

import (
	"github.com/brandquad/swatches"
	"github.com/brandquad/swatches/vipsload"
)

func init() {
	decoderHooks[swatches.DecoderVips] = func(c Config) func() {
		vipsload.Startup(c.MaxCpuCount)
		return vipsload.Shutdown
	}
}
