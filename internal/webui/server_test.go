package webui

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/XML-to-XLSX-conversion/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s, err := NewServer(config.Default())
	require.NoError(t, err)
	return s
}

// multipartUpload builds a POST /convert request with one file part.
func multipartUpload(t *testing.T, filename string, contents []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile(formFileField, filename)
	require.NoError(t, err)
	_, err = part.Write(contents)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/convert", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

const validExport = `<Export>
  <Transaction>
    <TransType>Checkout</TransType>
    <LastName>Smith</LastName>
    <Title>The Go Programming Language</Title>
  </Transaction>
</Export>`

func TestIndexPage(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<form")
	assert.Contains(t, rec.Body.String(), formFileField)
}

func TestConvertSuccess(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, multipartUpload(t, "report.xml", []byte(validExport)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "report_transactions_")
	assert.Equal(t, "1", rec.Header().Get("X-Transaction-Count"))

	// The response body is a readable workbook.
	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Transactions")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Checkout", rows[1][0])
}

func TestConvertNoFile(t *testing.T) {
	s := newTestServer(t)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/convert", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No file uploaded")
}

func TestConvertRejectsNonXMLFilename(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, multipartUpload(t, "report.csv", []byte(validExport)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "only XML (.xml) files are accepted")
}

func TestConvertRejectsOversizedUpload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.MaxUploadMB = 1
	s, err := NewServer(cfg)
	require.NoError(t, err)

	big := append([]byte("<Export>"), bytes.Repeat([]byte(" "), 2*1024*1024)...)
	big = append(big, []byte("</Export>")...)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, multipartUpload(t, "huge.xml", big))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "exceeds the 1 MB limit")
}

func TestConvertNoData(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, multipartUpload(t, "empty.xml", []byte(`<Export></Export>`)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "No transaction data found in XML file")
}

func TestConvertInvalidXML(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, multipartUpload(t, "broken.xml", []byte(`<Export><Transaction>`)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid XML file:")
}

func TestConvertManyRecords(t *testing.T) {
	s := newTestServer(t)

	var doc strings.Builder
	doc.WriteString("<Export>")
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&doc, "<Transaction><Title>Book %d</Title></Transaction>", i)
	}
	doc.WriteString("</Export>")

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, multipartUpload(t, "bulk.xml", []byte(doc.String())))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "25", rec.Header().Get("X-Transaction-Count"))
}
