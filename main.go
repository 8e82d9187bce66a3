// =============================================================================
// XML to XLSX Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the XML to XLSX Converter application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   xml2xlsx serve         - Start the web upload form
//   xml2xlsx process       - Process all XML files in the input directory
//   xml2xlsx version       - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/XML-to-XLSX-conversion/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
