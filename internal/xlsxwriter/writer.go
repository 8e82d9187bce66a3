// =============================================================================
// XML to XLSX Converter - XLSX Writer Module
// =============================================================================
//
// This module renders a types.Batch into a styled workbook and serializes it
// to an in-memory buffer. It is the output side of the conversion pipeline.
//
// OUTPUT LAYOUT:
//   - One sheet named "Transactions"
//   - Row 1: the fixed header labels, bold white on a solid blue fill
//   - Rows 2..N+1: one record per row, columns in field order
//   - Every column sized to its longest value, plus a margin, capped
//
// The writer assumes a non-empty batch (the extractor never hands over an
// empty one) and that every value is a string; it does not fail on
// well-formed input.
//
// =============================================================================

package xlsxwriter

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/XML-to-XLSX-conversion/internal/types"
)

// =============================================================================
// STYLING CONSTANTS
// =============================================================================

// SheetName is the title of the single output sheet.
const SheetName = "Transactions"

const (
	// headerFontColor and headerFillColor style the header row: bold white
	// text on a solid blue fill.
	headerFontColor = "FFFFFF"
	headerFillColor = "4472C4"

	// widthMargin is added to each column's longest value length.
	widthMargin = 2

	// maxColumnWidth caps the final column width, margin included.
	maxColumnWidth = 50
)

// =============================================================================
// WORKBOOK GENERATION
// =============================================================================

// Write renders the batch into a workbook and returns the serialized bytes,
// positioned at the start and ready for a full read.
func Write(batch types.Batch) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := writeHeader(f); err != nil {
		return nil, err
	}

	if err := writeRows(f, batch); err != nil {
		return nil, err
	}

	if err := sizeColumns(f, batch); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buf, nil
}

// writeHeader writes the fixed labels into row 1 and applies the header
// style across the full header range.
func writeHeader(f *excelize.File) error {
	styleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: headerFontColor},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, field := range types.Fields {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, field.Label); err != nil {
			return fmt.Errorf("failed to write header %q: %w", field.Label, err)
		}
	}

	firstCell, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return err
	}
	lastCell, err := excelize.CoordinatesToCellName(len(types.Fields), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, firstCell, lastCell, styleID); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	return nil
}

// writeRows writes each record into the row after the previous one, batch
// order preserved, starting at row 2. Values are written as strings; numeric
// looking fields such as the publication year stay text on purpose.
func writeRows(f *excelize.File, batch types.Batch) error {
	for rowIdx, record := range batch {
		for colIdx, field := range types.Fields {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to resolve cell: %w", err)
			}
			if err := f.SetCellValue(SheetName, cell, record.Get(field.Label)); err != nil {
				return fmt.Errorf("failed to write row %d: %w", rowIdx+2, err)
			}
		}
	}
	return nil
}

// sizeColumns sets each column's display width to the length of its longest
// cell value (header included) plus the margin, capped at maxColumnWidth.
// Lengths are measured in runes, not bytes.
func sizeColumns(f *excelize.File, batch types.Batch) error {
	for i, field := range types.Fields {
		maxLen := utf8.RuneCountInString(field.Label)
		for _, record := range batch {
			if l := utf8.RuneCountInString(record.Get(field.Label)); l > maxLen {
				maxLen = l
			}
		}

		width := float64(maxLen + widthMargin)
		if width > maxColumnWidth {
			width = maxColumnWidth
		}

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to resolve column name: %w", err)
		}
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to size column %s: %w", col, err)
		}
	}
	return nil
}
