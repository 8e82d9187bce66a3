// =============================================================================
// XML to XLSX Converter - Process Command
// =============================================================================
//
// This file defines the 'process' command, which is the batch entry point for
// converting XML transaction exports to XLSX workbooks on disk.
//
// COMMAND USAGE:
//   xml2xlsx process [flags]
//
// FLAGS:
//   --dry-run : Simulate processing without writing output files
//   --single  : Process only a single file (specify with --file)
//   --file    : Path to a specific file to process (used with --single)
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Discover XML files in the input directory
//   3. For each file (concurrently, bounded by max_concurrency):
//      a. Read the file into memory
//      b. Extract transaction records from the XML
//      c. Generate the styled XLSX workbook
//      d. Write the workbook to the output directory
//   4. Archive processed files
//   5. Print summary report
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ginjaninja78/XML-to-XLSX-conversion/internal/converter"
	"github.com/ginjaninja78/XML-to-XLSX-conversion/pkg/utils"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// dryRun simulates processing without writing output files.
var dryRun bool

// singleFile indicates whether to process only a single file.
var singleFile bool

// filePath is the path to a specific file to process (used with --single).
var filePath string

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process XML exports and convert them to XLSX workbooks",
	Long: `The process command scans the input directory for XML transaction exports
and converts each one into a styled XLSX workbook in the output directory.

Processing is done concurrently, bounded by the max_concurrency setting.
Each file is processed independently, and errors in one file do not affect
the processing of others.

On successful processing:
  - The generated workbook is placed in the output directory
  - A copy of the workbook is placed in the output archive
  - The original XML is moved to the input archive

On error:
  - The original XML remains in the input directory
  - Processing continues for other files`,

	// RunE is like Run but returns an error. This is preferred for commands
	// that can fail, as it allows Cobra to handle the error gracefully.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess()
	},
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init registers the process command with the root command and sets up flags.
func init() {
	rootCmd.AddCommand(processCmd)

	// --dry-run flag: Simulate processing without writing output files.
	processCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Simulate processing without writing output files",
	)

	// --single flag: Process only a single file.
	processCmd.Flags().BoolVar(
		&singleFile,
		"single",
		false,
		"Process only a single file (use with --file)",
	)

	// --file flag: Path to a specific file to process.
	processCmd.Flags().StringVar(
		&filePath,
		"file",
		"",
		"Path to a specific file to process (used with --single)",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// batchResult pairs a conversion result with the path it came from and any
// I/O error that occurred outside the conversion itself.
type batchResult struct {
	FilePath string
	Result   converter.Result
	Err      error
}

// runProcess is the main function that orchestrates the batch pipeline.
func runProcess() error {
	startTime := time.Now()

	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	fmt.Println("=== XML to XLSX Converter ===")
	fmt.Println("Loading configuration...")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fm := utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.InputArchiveDir, cfg.OutputArchiveDir)
	fm.ArchiveOnSuccess = !dryRun

	if !dryRun {
		if err := fm.EnsureDirectories(); err != nil {
			return err
		}
	}

	// =========================================================================
	// STEP 2: DISCOVER INPUT FILES
	// =========================================================================

	fmt.Println("Discovering input files...")

	var inputFiles []string
	if singleFile {
		if filePath == "" {
			return fmt.Errorf("--single requires --file to be set")
		}
		inputFiles = []string{filePath}
	} else {
		inputFiles, err = fm.DiscoverInputFiles("*.xml")
		if err != nil {
			return err
		}
	}

	if len(inputFiles) == 0 {
		fmt.Println("No XML files found in the input directory.")
		return nil
	}

	fmt.Printf("Found %d file(s) to process\n", len(inputFiles))

	// =========================================================================
	// STEP 3: PROCESS FILES CONCURRENTLY
	// =========================================================================
	// Process each file in a separate goroutine, bounded by a semaphore so
	// at most max_concurrency files are in flight at once. Use a WaitGroup
	// to wait for completion and a buffered channel to collect results.

	fmt.Println("Processing files...")

	conv := converter.New(cfg.OutputNameFormat, nil)

	var wg sync.WaitGroup

	// The channel is buffered to prevent blocking.
	results := make(chan batchResult, len(inputFiles))

	// Semaphore limiting the number of concurrent conversions.
	sem := make(chan struct{}, cfg.MaxConcurrency)

	for _, file := range inputFiles {
		wg.Add(1)

		go func(path string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			results <- processFile(conv, fm, path)
		}(file)
	}

	// Close the results channel when all goroutines are done.
	go func() {
		wg.Wait()
		close(results)
	}()

	// =========================================================================
	// STEP 4: COLLECT RESULTS AND GENERATE SUMMARY
	// =========================================================================

	var successCount, errorCount, recordCount int

	for res := range results {
		switch {
		case res.Err != nil:
			errorCount++
			fmt.Printf("  ✗ %s: %v\n", filepath.Base(res.FilePath), res.Err)
		case res.Result.OK():
			successCount++
			recordCount += res.Result.RecordCount
			fmt.Printf("  ✓ %s -> %s (%d records)\n",
				filepath.Base(res.FilePath), res.Result.OutputName, res.Result.RecordCount)
		default:
			errorCount++
			fmt.Printf("  ✗ %s: %s\n", filepath.Base(res.FilePath), res.Result.Message)
		}
	}

	// =========================================================================
	// STEP 5: PRINT SUMMARY
	// =========================================================================

	elapsed := time.Since(startTime)
	fmt.Println("\n=== Processing Complete ===")
	fmt.Printf("Total files:     %d\n", len(inputFiles))
	fmt.Printf("Successful:      %d\n", successCount)
	fmt.Printf("Errors:          %d\n", errorCount)
	fmt.Printf("Records written: %d\n", recordCount)
	fmt.Printf("Time elapsed:    %s\n", elapsed)

	if dryRun {
		fmt.Println("\nDry run: no files were written or archived.")
	}

	return nil
}

// =============================================================================
// PER-FILE PROCESSING
// =============================================================================

// processFile converts a single XML export and handles the surrounding
// file I/O: reading the input, writing the workbook, and archival.
func processFile(conv *converter.Converter, fm *utils.FileManager, path string) batchResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return batchResult{FilePath: path, Err: fmt.Errorf("failed to read input file: %w", err)}
	}

	result := conv.Convert(filepath.Base(path), data)
	if !result.OK() {
		return batchResult{FilePath: path, Result: result}
	}

	if dryRun {
		return batchResult{FilePath: path, Result: result}
	}

	outputPath := filepath.Join(fm.OutputDir, result.OutputName)
	if err := os.WriteFile(outputPath, result.Buffer.Bytes(), 0644); err != nil {
		return batchResult{FilePath: path, Err: fmt.Errorf("failed to write output file: %w", err)}
	}

	if _, err := fm.ArchiveOutputFile(outputPath); err != nil {
		return batchResult{FilePath: path, Err: err}
	}

	if _, err := fm.ArchiveInputFile(path); err != nil {
		return batchResult{FilePath: path, Err: err}
	}

	return batchResult{FilePath: path, Result: result}
}
