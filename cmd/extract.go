package main

import (
	"fmt"
	"github.com/brandquad/swatches"
	"github.com/spf13/cobra"
)

// decoderHooks start a decoder's runtime before extraction and return its
// shutdown func. Decoders without a runtime have no entry.
var decoderHooks = map[string]func(c Config) func(){}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract unique swatch colors from a chart image",
	Args:  cobra.NoArgs,
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&env.ChartInput, "input", "i", env.ChartInput, "Input chart image")
	extractCmd.Flags().StringVarP(&env.ChartOutput, "output", "o", env.ChartOutput, "Output catalog JSON")
	extractCmd.Flags().IntVar(&env.SwatchSize, "swatch-size", env.SwatchSize, "Swatch cell size in pixels")
	extractCmd.Flags().IntVar(&env.Gap, "gap", env.Gap, "Gap between swatch cells in pixels")
	extractCmd.Flags().IntVar(&env.ChartPrecision, "precision", env.ChartPrecision, "Decimal places kept in CMYK values")
	extractCmd.Flags().StringVar(&env.Decoder, "decoder", env.Decoder, "Image decoder (std, or vips when built with -tags vips)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if start, ok := decoderHooks[cfg.Decoder]; ok {
		defer start(env)()
	}

	n, err := swatches.ExtractFile(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Extracted %d unique colors and saved to %s\n", n, cfg.ChartOutput)
	return nil
}
