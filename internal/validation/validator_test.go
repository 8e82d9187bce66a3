package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxBytes = 200 * 1024 * 1024

func TestValidateUploadAccepts(t *testing.T) {
	cases := []struct {
		name   string
		upload Upload
	}{
		{"plain xml upload", Upload{Filename: "export.xml", Size: 1024, ContentType: "text/xml"}},
		{"uppercase extension", Upload{Filename: "EXPORT.XML", Size: 1024, ContentType: "application/xml"}},
		{"charset parameter", Upload{Filename: "export.xml", Size: 1024, ContentType: "text/xml; charset=utf-8"}},
		{"no declared type", Upload{Filename: "export.xml", Size: 1024}},
		{"at the size limit", Upload{Filename: "export.xml", Size: maxBytes}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			findings := ValidateUpload(tc.upload, maxBytes)
			assert.Empty(t, findings)
			assert.False(t, Blocking(findings))
			assert.Equal(t, "", FirstError(findings))
		})
	}
}

func TestValidateUploadRejects(t *testing.T) {
	cases := []struct {
		name   string
		upload Upload
		field  string
	}{
		{"wrong extension", Upload{Filename: "export.csv", Size: 1024}, "filename"},
		{"no extension", Upload{Filename: "export", Size: 1024}, "filename"},
		{"empty file", Upload{Filename: "export.xml", Size: 0}, "size"},
		{"over the limit", Upload{Filename: "export.xml", Size: maxBytes + 1}, "size"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			findings := ValidateUpload(tc.upload, maxBytes)
			require.NotEmpty(t, findings)
			assert.True(t, Blocking(findings))
			assert.NotEmpty(t, FirstError(findings))
			assert.Equal(t, tc.field, findings[0].Field)
			assert.Equal(t, SeverityError, findings[0].Severity)
		})
	}
}

func TestValidateUploadOddContentTypeWarnsOnly(t *testing.T) {
	upload := Upload{Filename: "export.xml", Size: 1024, ContentType: "application/octet-stream"}

	findings := ValidateUpload(upload, maxBytes)
	require.Len(t, findings, 1)

	assert.Equal(t, SeverityWarning, findings[0].Severity)
	assert.Equal(t, "content-type", findings[0].Field)

	// A warning alone never rejects the upload.
	assert.False(t, Blocking(findings))
	assert.Equal(t, "", FirstError(findings))
}

func TestValidateUploadNoLimit(t *testing.T) {
	upload := Upload{Filename: "huge.xml", Size: 10 * maxBytes}

	findings := ValidateUpload(upload, 0)
	assert.Empty(t, findings)
}

func TestFindingError(t *testing.T) {
	f := &Finding{Severity: SeverityError, Field: "filename", Message: "only XML (.xml) files are accepted"}
	assert.Equal(t, "[ERROR] filename: only XML (.xml) files are accepted", f.Error())
}
