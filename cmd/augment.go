package main

import (
	"fmt"
	"github.com/brandquad/swatches"
	"github.com/spf13/cobra"
)

var augmentCmd = &cobra.Command{
	Use:   "augment",
	Short: "Add CMYK values to an existing JSON color catalog",
	Args:  cobra.NoArgs,
	RunE:  runAugment,
}

func init() {
	augmentCmd.Flags().StringVarP(&env.CatalogInput, "input", "i", env.CatalogInput, "Input catalog JSON")
	augmentCmd.Flags().StringVarP(&env.CatalogOutput, "output", "o", env.CatalogOutput, "Output catalog JSON")
	augmentCmd.Flags().IntVar(&env.CatalogPrecision, "precision", env.CatalogPrecision, "Decimal places kept in CMYK values")
	rootCmd.AddCommand(augmentCmd)
}

func runAugment(cmd *cobra.Command, args []string) error {
	if _, err := swatches.AugmentFile(cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "CMYK values added and saved to %s\n", cfg.CatalogOutput)
	return nil
}
