package xlsxwriter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/XML-to-XLSX-conversion/internal/types"
)

func sampleBatch() types.Batch {
	return types.Batch{
		{
			"Transaction Type": "Checkout",
			"Date":             "2024-01-15",
			"Last Name":        "Smith",
			"First Name":       "Jane",
			"Title":            "The Go Programming Language",
			"Publication Year": "2015",
		},
		{
			"Transaction Type": "Checkin",
			"Date":             "2024-01-16",
			"Last Name":        "Nguyen",
			"First Name":       "Minh",
			"Title":            "Go Web Programming",
			"Publication Year": "2016",
		},
	}
}

func TestWriteWorkbookLayout(t *testing.T) {
	batch := sampleBatch()

	buf, err := Write(batch)
	require.NoError(t, err)
	require.NotZero(t, buf.Len())

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	// A single sheet with the fixed name.
	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)

	// Header row plus one row per record.
	require.Len(t, rows, len(batch)+1)
	assert.Equal(t, types.Labels(), rows[0])

	// Cells land in field order, record order preserved.
	assert.Equal(t, "Checkout", rows[1][0])
	assert.Equal(t, "Checkin", rows[2][0])
	assert.Equal(t, "Smith", rows[1][3])
	assert.Equal(t, "Nguyen", rows[2][3])
}

func TestWriteValuesStayText(t *testing.T) {
	batch := sampleBatch()

	buf, err := Write(batch)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	// Publication Year is column 15 (O).
	got, err := f.GetCellValue(SheetName, "O2")
	require.NoError(t, err)
	assert.Equal(t, "2015", got)
}

func TestWriteHeaderStyle(t *testing.T) {
	buf, err := Write(sampleBatch())
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	styleID, err := f.GetCellStyle(SheetName, "A1")
	require.NoError(t, err)

	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
}

func TestWriteColumnWidths(t *testing.T) {
	longTitle := strings.Repeat("x", 55)
	batch := types.Batch{
		{"Title": longTitle, "ISBN": "9780134190440"},
	}

	buf, err := Write(batch)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	// Title is column 12 (L): 55 chars + 2 exceeds the cap, so 50.
	titleWidth, err := f.GetColWidth(SheetName, "L")
	require.NoError(t, err)
	assert.InDelta(t, 50, titleWidth, 0.01)

	// ISBN is column 13 (M): longest value is the 13-digit ISBN, so 13 + 2.
	isbnWidth, err := f.GetColWidth(SheetName, "M")
	require.NoError(t, err)
	assert.InDelta(t, 15, isbnWidth, 0.01)

	// Date column (B): the header "Date" is the longest value, so 4 + 2.
	dateWidth, err := f.GetColWidth(SheetName, "B")
	require.NoError(t, err)
	assert.InDelta(t, 6, dateWidth, 0.01)
}

func TestWriteMissingFieldsAreBlank(t *testing.T) {
	batch := types.Batch{{"Title": "Only Title"}}

	buf, err := Write(batch)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue(SheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = f.GetCellValue(SheetName, "L2")
	require.NoError(t, err)
	assert.Equal(t, "Only Title", got)
}
