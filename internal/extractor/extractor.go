// =============================================================================
// XML to XLSX Converter - Extractor Module
// =============================================================================
//
// This module parses an XML transaction export into an ordered types.Batch.
// It is the input side of the conversion pipeline and is a pure transform:
// bytes in, Batch or typed failure out, no side effects.
//
// FAILURE TAXONOMY:
//   - KindParse      : the document is not well-formed XML
//   - KindNoData     : well-formed XML with zero <Transaction> elements
//   - KindProcessing : any other error raised while walking the document
//
// All three are terminal for a conversion; there is no partial output.
//
// =============================================================================

package extractor

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/ginjaninja78/XML-to-XLSX-conversion/internal/types"
)

// =============================================================================
// FAILURE TYPES
// =============================================================================

// Kind classifies an extraction failure.
type Kind int

const (
	// KindParse indicates the input was not well-formed XML.
	KindParse Kind = iota

	// KindNoData indicates well-formed XML that contained no Transaction
	// elements. An empty result is always reported as this failure, never as
	// a valid zero-row batch.
	KindNoData

	// KindProcessing indicates any other error during traversal.
	KindProcessing
)

// Failure is the typed error returned by Extract. Callers map the kind to a
// user-facing message; the wrapped error carries the parser detail.
type Failure struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (f *Failure) Error() string {
	switch f.Kind {
	case KindParse:
		return fmt.Sprintf("invalid XML: %v", f.Err)
	case KindNoData:
		return "no transaction data found"
	default:
		return fmt.Sprintf("processing error: %v", f.Err)
	}
}

// Unwrap exposes the underlying parser error for errors.Is/As chains.
func (f *Failure) Unwrap() error {
	return f.Err
}

// Detail returns the underlying error message, or "" if there is none.
func (f *Failure) Detail() string {
	if f.Err == nil {
		return ""
	}
	return f.Err.Error()
}

// =============================================================================
// DOCUMENT SHAPE
// =============================================================================

// document matches the export root. Only Transaction elements that are
// direct children of the root are captured; elements nested anywhere else
// are not part of the export schema and are ignored.
type document struct {
	XMLName      xml.Name
	Transactions []transactionElement `xml:"Transaction"`
}

// transactionElement captures every child element of one <Transaction> so
// the known fields can be looked up by tag name afterwards.
type transactionElement struct {
	Children []fieldElement `xml:",any"`
}

// fieldElement is a single child element with its text content. An element
// that is present but empty decodes with Value == "", which is exactly the
// default used for absent elements.
type fieldElement struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// =============================================================================
// EXTRACTION
// =============================================================================

// Extract parses data as XML and flattens every top-level Transaction
// element into a types.Record, in document order.
//
// For each record, each of the known field tags (types.Fields) is looked up
// by exact name among the transaction's children; the first occurrence wins
// and missing tags default to "". Unknown child elements are ignored.
func Extract(data []byte) (types.Batch, error) {
	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, classify(err)
	}

	if len(doc.Transactions) == 0 {
		return nil, &Failure{Kind: KindNoData}
	}

	labelByTag := make(map[string]string, len(types.Fields))
	for _, f := range types.Fields {
		labelByTag[f.Tag] = f.Label
	}

	batch := make(types.Batch, 0, len(doc.Transactions))
	for _, tx := range doc.Transactions {
		record := make(types.Record, len(types.Fields))

		for _, child := range tx.Children {
			label, known := labelByTag[child.XMLName.Local]
			if !known {
				continue
			}
			// First occurrence of a duplicated tag wins, matching a
			// find-first lookup per field.
			if _, seen := record[label]; seen {
				continue
			}
			record[label] = child.Value
		}

		batch = append(batch, record)
	}

	return batch, nil
}

// classify sorts a decoder error into the failure taxonomy. Syntax errors
// (including a truncated document) are parse failures; everything else the
// decoder can raise is a processing failure.
func classify(err error) *Failure {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &Failure{Kind: KindParse, Err: err}
	}
	return &Failure{Kind: KindProcessing, Err: err}
}
