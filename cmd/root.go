// =============================================================================
// XML to XLSX Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (like 'serve', 'process') are
// attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (xml2xlsx)
//   ├── serveCmd   (xml2xlsx serve)
//   ├── processCmd (xml2xlsx process)
//   └── versionCmd (xml2xlsx version)
//
// CONFIGURATION:
//   The root command is responsible for:
//   1. Setting up global flags (e.g., --config, --verbose)
//   2. Loading the YAML configuration for subcommands
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/ginjaninja78/XML-to-XLSX-conversion/internal/config"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
// This is the entry point for the CLI application.
var rootCmd = &cobra.Command{
	// Use is the one-line usage message.
	Use: "xml2xlsx",

	// Short is a short description shown in the 'help' output.
	Short: "XML to XLSX Converter - Transform transaction exports into styled spreadsheets",

	// Long is a longer description shown in the 'help <command>' output.
	Long: `XML to XLSX Converter transforms XML transaction exports from the library
circulation system into styled Excel workbooks suitable for review and reporting.

Key Features:
  - Fixed transaction schema with human-readable column labels
  - Styled header row and auto-sized columns
  - Single-page web form for upload-and-download conversion
  - Concurrent batch processing with automatic file archival

Example Usage:
  xml2xlsx serve                      # Start the web upload form
  xml2xlsx process                    # Process all files in the input directory
  xml2xlsx process --config ./my.yaml # Use a custom configuration file`,

	// Run is the function that will be executed when the root command is called
	// without any subcommands. In this case, we just print the help message.
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init is called automatically when the package is loaded.
// It sets up the global flags shared by all subcommands.
func init() {
	// ==========================================================================
	// PERSISTENT FLAGS
	// ==========================================================================
	// Persistent flags are available to this command and all subcommands.

	// --config flag: Allows the user to specify a custom configuration file.
	// Default is "config.yaml" in the current directory.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (default is config.yaml)",
	)

	// --verbose flag: Enables verbose/debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// loadConfig loads the YAML configuration referenced by the --config flag.
// A missing file is not an error; the built-in defaults are used instead.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	return cfg, nil
}
