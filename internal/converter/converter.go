// =============================================================================
// XML to XLSX Converter - Converter Module
// =============================================================================
//
// This module contains the core conversion pipeline for a single document:
//
//   1. Extract the transaction batch from the XML bytes
//   2. Render the batch into a styled workbook buffer
//   3. Generate the output file name
//
// The pipeline is synchronous and stateless; every call builds its own batch
// and buffer and shares nothing with concurrent calls, so the batch command
// can run one pipeline per goroutine without coordination.
//
// STATUS CONTRACT:
//   Convert never returns an error. The outcome is carried in the Result:
//     (Buffer, "Success", recordCount)                        on success
//     (nil, "No transaction data found in XML file", 0)       on empty input
//     (nil, "Invalid XML file: <detail>", 0)                  on malformed XML
//     (nil, "Error processing file: <detail>", 0)             on anything else
//
// =============================================================================

package converter

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/XML-to-XLSX-conversion/internal/extractor"
	"github.com/ginjaninja78/XML-to-XLSX-conversion/internal/xlsxwriter"
)

// =============================================================================
// STATUS MESSAGES
// =============================================================================

// Status messages surfaced to the caller. These strings are the public
// contract of the converter; the web form and the batch summary both display
// them verbatim.
const (
	// SuccessMessage is returned when a workbook was produced.
	SuccessMessage = "Success"

	// NoDataMessage is returned for well-formed XML with zero transactions.
	NoDataMessage = "No transaction data found in XML file"

	invalidXMLPrefix = "Invalid XML file: "
	processingPrefix = "Error processing file: "
)

// DefaultNameFormat names outputs after the source file plus a conversion
// timestamp. Supported placeholders: {name}, {timestamp}, {uuid}.
const DefaultNameFormat = "{name}_transactions_{timestamp}.xlsx"

// timestampLayout is the {timestamp} placeholder format (YYYYMMDD_HHMMSS).
const timestampLayout = "20060102_150405"

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of converting a single document.
type Result struct {
	// SourceName is the caller-supplied name of the input file.
	SourceName string

	// OutputName is the generated name for the workbook.
	// Empty if conversion failed.
	OutputName string

	// Buffer holds the serialized workbook, positioned at the start.
	// Nil if conversion failed.
	Buffer *bytes.Buffer

	// Message is the status string from the contract above.
	Message string

	// RecordCount is the number of transactions written. Zero on failure.
	RecordCount int
}

// OK reports whether the conversion produced a workbook.
func (r Result) OK() bool {
	return r.Buffer != nil
}

// =============================================================================
// LOGGER
// =============================================================================

// Logger is the logging interface used by the converter.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// defaultLogger prints to stdout with a level prefix.
type defaultLogger struct{}

func (l *defaultLogger) Debug(msg string, args ...interface{}) {
	fmt.Printf("[DEBUG] "+msg+"\n", args...)
}

func (l *defaultLogger) Info(msg string, args ...interface{}) {
	fmt.Printf("[INFO] "+msg+"\n", args...)
}

func (l *defaultLogger) Warn(msg string, args ...interface{}) {
	fmt.Printf("[WARN] "+msg+"\n", args...)
}

func (l *defaultLogger) Error(msg string, args ...interface{}) {
	fmt.Printf("[ERROR] "+msg+"\n", args...)
}

// =============================================================================
// CONVERTER
// =============================================================================

// Converter runs the extract-then-write pipeline for one document at a time.
type Converter struct {
	// nameFormat is the output file name format with placeholders.
	nameFormat string

	// logger is used for pipeline logging.
	logger Logger
}

// New creates a Converter. An empty nameFormat selects DefaultNameFormat and
// a nil logger selects the stdout default.
func New(nameFormat string, logger Logger) *Converter {
	if nameFormat == "" {
		nameFormat = DefaultNameFormat
	}
	if logger == nil {
		logger = &defaultLogger{}
	}
	return &Converter{
		nameFormat: nameFormat,
		logger:     logger,
	}
}

// Convert runs the pipeline on one document. sourceName is the input file
// name as supplied by the caller; it is only used for naming and logging.
func (c *Converter) Convert(sourceName string, data []byte) Result {
	result := Result{SourceName: sourceName}

	c.logger.Debug("extracting transactions from %s (%d bytes)", sourceName, len(data))

	batch, err := extractor.Extract(data)
	if err != nil {
		result.Message = statusMessage(err)
		c.logger.Warn("conversion of %s failed: %s", sourceName, result.Message)
		return result
	}

	c.logger.Debug("extracted %d transaction(s) from %s", len(batch), sourceName)

	buf, err := xlsxwriter.Write(batch)
	if err != nil {
		result.Message = processingPrefix + err.Error()
		c.logger.Error("workbook generation for %s failed: %v", sourceName, err)
		return result
	}

	// Name the output only once the workbook exists, so the timestamp marks
	// conversion completion.
	result.Buffer = buf
	result.OutputName = c.outputName(sourceName, time.Now())
	result.Message = SuccessMessage
	result.RecordCount = len(batch)

	c.logger.Info("converted %s: %d transaction(s) -> %s", sourceName, len(batch), result.OutputName)

	return result
}

// =============================================================================
// STATUS MAPPING
// =============================================================================

// statusMessage maps an extraction failure to its contract message.
func statusMessage(err error) string {
	var failure *extractor.Failure
	if !errors.As(err, &failure) {
		return processingPrefix + err.Error()
	}

	switch failure.Kind {
	case extractor.KindParse:
		return invalidXMLPrefix + failure.Detail()
	case extractor.KindNoData:
		return NoDataMessage
	default:
		return processingPrefix + failure.Detail()
	}
}

// =============================================================================
// OUTPUT NAMING
// =============================================================================

// outputName expands the name format for one conversion.
//
// Placeholders:
//   {name}      - the source file name without its extension
//   {timestamp} - conversion completion time, YYYYMMDD_HHMMSS
//   {uuid}      - a random UUID, for callers that need collision-free names
func (c *Converter) outputName(sourceName string, completedAt time.Time) string {
	base := filepath.Base(sourceName)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	name := c.nameFormat
	name = strings.ReplaceAll(name, "{name}", base)
	name = strings.ReplaceAll(name, "{timestamp}", completedAt.Format(timestampLayout))
	if strings.Contains(name, "{uuid}") {
		name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	}

	if filepath.Ext(name) != ".xlsx" {
		name += ".xlsx"
	}

	return name
}
