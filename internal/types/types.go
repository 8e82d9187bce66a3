// =============================================================================
// XML to XLSX Converter - Shared Types
// =============================================================================
//
// This package contains the data model shared across the extractor, the
// spreadsheet writer, and the converter pipeline:
//   - The fixed field table that defines the export schema
//   - Record: one flattened Transaction element
//   - Batch: the ordered set of records from one document
//
// =============================================================================

package types

// =============================================================================
// FIELD TABLE
// =============================================================================

// Field pairs an XML child element name with the spreadsheet column label it
// maps to.
type Field struct {
	// Tag is the child element looked up inside each <Transaction>.
	Tag string

	// Label is the header written to row 1 of the output sheet.
	Label string
}

// Fields is the full export schema, in declaration order. The order here is
// the column order of the output spreadsheet; do not reorder without also
// updating downstream consumers of the files this tool produces.
var Fields = []Field{
	{Tag: "TransType", Label: "Transaction Type"},
	{Tag: "Date", Label: "Date"},
	{Tag: "Time", Label: "Time"},
	{Tag: "LastName", Label: "Last Name"},
	{Tag: "FirstName", Label: "First Name"},
	{Tag: "MiddleName", Label: "Middle Name"},
	{Tag: "PatronBarcode", Label: "Patron Barcode"},
	{Tag: "DistrictID", Label: "District ID"},
	{Tag: "PatronType", Label: "Patron Type"},
	{Tag: "PatronGradeLevel", Label: "Grade Level"},
	{Tag: "PatronHomeroom", Label: "Homeroom"},
	{Tag: "Title", Label: "Title"},
	{Tag: "ISBN", Label: "ISBN"},
	{Tag: "BibType", Label: "Material Type"},
	{Tag: "PubYear", Label: "Publication Year"},
	{Tag: "CopyBarcode", Label: "Copy Barcode"},
	{Tag: "CallNumber", Label: "Call Number"},
	{Tag: "CircType", Label: "Circulation Type"},
	{Tag: "OriginatorUsername", Label: "Originator Username"},
}

// Labels returns the column labels in field order.
func Labels() []string {
	labels := make([]string, len(Fields))
	for i, f := range Fields {
		labels[i] = f.Label
	}
	return labels
}

// =============================================================================
// RECORD AND BATCH
// =============================================================================

// Record is the flattened, default-filled representation of one Transaction
// element. Keys are column labels. A lookup for a label that was absent in
// the source returns "", so absent and present-but-empty fields are
// indistinguishable downstream.
type Record map[string]string

// Get returns the value for a column label, or "" if the record has none.
func (r Record) Get(label string) string {
	return r[label]
}

// Batch is the ordered set of records extracted from one uploaded document,
// one per source Transaction element, in document order.
type Batch []Record
