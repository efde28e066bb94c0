package main

import (
	"fmt"
	"github.com/brandquad/swatches"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match [color]",
	Short: "List the catalog swatches nearest to a color (CIEDE2000)",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringP("catalog", "c", env.ChartOutput, "Catalog JSON to search")
	matchCmd.Flags().IntP("count", "n", 5, "Number of swatches to list")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	catalogPath, _ := cmd.Flags().GetString("catalog")
	count, _ := cmd.Flags().GetInt("count")

	query, err := swatches.ParseColor(args[0], cfg.Palette)
	if err != nil {
		return err
	}

	catalog, err := swatches.LoadCatalog(catalogPath)
	if err != nil {
		return err
	}

	for _, m := range swatches.Match(catalog, query, count) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-24s dE=%6.2f  cmyk=%v\n", m.Hex, m.Name, m.Distance, m.CMYK)
	}
	return nil
}
