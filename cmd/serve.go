// =============================================================================
// XML to XLSX Converter - Serve Command
// =============================================================================
//
// This file defines the 'serve' command, which starts the web upload form.
// The web form lets a user upload a single XML transaction export and
// download the generated XLSX workbook straight from the browser.
//
// COMMAND USAGE:
//   xml2xlsx serve [flags]
//
// FLAGS:
//   --listen : Address to listen on (overrides listen_addr from config)
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/XML-to-XLSX-conversion/internal/webui"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// listenAddr overrides the configured listen address when non-empty.
var listenAddr string

// =============================================================================
// SERVE COMMAND DEFINITION
// =============================================================================

// serveCmd represents the 'serve' command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web upload form",
	Long: `The serve command starts an HTTP server hosting a single-page upload form.

Uploading an XML transaction export converts it in memory and returns the
styled XLSX workbook as a download. No files are written to disk; every
request is independent.

The listen address and upload size limit come from the configuration file
and can be overridden with flags.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the serve command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(serveCmd)

	// --listen flag: Overrides the configured listen address.
	serveCmd.Flags().StringVar(
		&listenAddr,
		"listen",
		"",
		"Address to listen on (e.g. :8080), overrides the config file",
	)
}

// =============================================================================
// SERVER STARTUP
// =============================================================================

// runServe loads the configuration and starts the web server. It blocks
// until the server exits.
func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}

	server, err := webui.NewServer(cfg)
	if err != nil {
		return fmt.Errorf("failed to create web server: %w", err)
	}

	fmt.Printf("=== XML to XLSX Converter ===\n")
	fmt.Printf("Listening on %s (max upload %d MB)\n", cfg.ListenAddr, cfg.MaxUploadMB)

	if err := server.Run(); err != nil {
		return fmt.Errorf("web server exited: %w", err)
	}

	return nil
}
