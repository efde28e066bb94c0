package main

import (
	"fmt"
	"github.com/brandquad/swatches"
	"github.com/brandquad/swatches/colorutils"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [color]",
	Short: "Print CMYK, the CMYK round trip and the nearest name of a color",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().Int("precision", 2, "Decimal places kept in CMYK values")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	precision, _ := cmd.Flags().GetInt("precision")
	rounding := colorutils.Rounding{Decimals: precision}
	if !rounding.Valid() {
		return fmt.Errorf("precision %d out of range [0,%d]", precision, colorutils.MaxDecimals)
	}

	c, err := swatches.ParseColor(args[0], cfg.Palette)
	if err != nil {
		return err
	}
	r8, g8, b8 := c.RGB255()
	r, g, b := int(r8), int(g8), int(b8)

	cmyk := colorutils.Rgb2cmyk(r, g, b, rounding)
	name, err := cfg.Palette.Nearest(r, g, b)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Hex:   %s\n", c.Hex())
	fmt.Fprintf(out, "RGB:   %v\n", colorutils.RGB{r, g, b})
	fmt.Fprintf(out, "CMYK:  %v\n", cmyk)
	fmt.Fprintf(out, "Back:  %v\n", colorutils.Cmyk2rgb(cmyk))
	fmt.Fprintf(out, "Name:  %s\n", name)
	return nil
}
