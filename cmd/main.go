package main

import (
	"fmt"
	"github.com/brandquad/swatches"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"io"
	"log"
	"os"
)

var (
	env = loadEnv()
	cfg *swatches.Config
)

var rootCmd = &cobra.Command{
	Use:           "swatches",
	Short:         "Build and inspect color swatch catalogs",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = env.MakeSwatchesConfig()
		return err
	},
}

// loadEnv runs before any init so that flag defaults reflect the environment.
func loadEnv() Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		log.Fatalln(err)
	}
	return c
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&env.DebugMode, "debug", env.DebugMode, "Log every extracted swatch")
	rootCmd.PersistentFlags().StringVar(&env.PaletteFile, "palette", env.PaletteFile, "Reference palette JSON (default CSS3 names)")
}

// run executes the command line in args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
