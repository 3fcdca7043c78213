package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/zugferd/internal/config"
	"github.com/rezonia/zugferd/internal/logger"
)

var (
	version = "1.0.0"

	// Global flags
	verbose    bool
	configFile string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "zugferd",
	Short: "Write ZUGFeRD invoices as UN/CEFACT CII XML",
	Long: `zugferd renders invoice descriptors as ZUGFeRD 1.0 Cross Industry Invoice XML.

Descriptors are JSON documents; amounts are decimal strings, dates YYYY-MM-DD
and code lists use their mnemonic names (e.g. "VAT", "S", "H87").

Configuration is read from zugferd.toml (or --config), .env and ZUGFERD_*
environment variables.

Examples:
  # Write an invoice to stdout
  zugferd write invoice.json

  # Write to a file without indentation
  zugferd write invoice.json -o invoice.xml --indent -1

  # Read the descriptor from stdin
  cat invoice.json | zugferd write -

  # Serve the HTTP API
  zugferd serve --address :8080`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file (default: ./zugferd.toml)")
}

func initConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if verbose {
		loaded.Log.Level = "debug"
	}

	if err := logger.Setup(loaded.Log.Logger()); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	cfg = loaded
	return nil
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
