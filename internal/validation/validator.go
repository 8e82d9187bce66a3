// =============================================================================
// XML to XLSX Converter - Upload Validation
// =============================================================================
//
// This module validates upload request metadata (name, size, declared MIME
// type) before the conversion pipeline runs. It does not look inside the
// file; whether the bytes are actually well-formed XML is the extractor's
// call, and presence checks on elements are the only content validation this
// system performs.
//
// ERROR HANDLING:
//   Problems are collected, not thrown one at a time. Each finding carries a
//   severity: "error" rejects the upload, "warning" is logged and the upload
//   proceeds. Browsers are unreliable about MIME types, so an unexpected
//   Content-Type is only a warning.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"
)

// =============================================================================
// FINDINGS
// =============================================================================

// Severity levels for validation findings.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Finding is a single validation problem.
type Finding struct {
	// Severity is "error" or "warning".
	Severity string

	// Field names the upload attribute that failed.
	Field string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (f *Finding) Error() string {
	return fmt.Sprintf("[%s] %s: %s", strings.ToUpper(f.Severity), f.Field, f.Message)
}

// =============================================================================
// UPLOAD METADATA
// =============================================================================

// Upload describes one upload request.
type Upload struct {
	// Filename is the client-supplied file name.
	Filename string

	// Size is the declared size in bytes.
	Size int64

	// ContentType is the declared MIME type of the file part. May be empty.
	ContentType string
}

// acceptedContentTypes are the MIME types browsers commonly declare for XML
// uploads. Anything else is logged, not rejected.
var acceptedContentTypes = []string{
	"text/xml",
	"application/xml",
	"text/plain",
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidateUpload checks an upload against the size limit and the expected
// file type and returns all findings.
func ValidateUpload(upload Upload, maxBytes int64) []*Finding {
	var findings []*Finding

	if !strings.HasSuffix(strings.ToLower(upload.Filename), ".xml") {
		findings = append(findings, &Finding{
			Severity: SeverityError,
			Field:    "filename",
			Message:  "only XML (.xml) files are accepted",
		})
	}

	if upload.Size <= 0 {
		findings = append(findings, &Finding{
			Severity: SeverityError,
			Field:    "size",
			Message:  "uploaded file is empty",
		})
	} else if maxBytes > 0 && upload.Size > maxBytes {
		findings = append(findings, &Finding{
			Severity: SeverityError,
			Field:    "size",
			Message: fmt.Sprintf("file size (%.1f MB) exceeds the %d MB limit",
				float64(upload.Size)/(1024*1024), maxBytes/(1024*1024)),
		})
	}

	if upload.ContentType != "" && !isAcceptedContentType(upload.ContentType) {
		findings = append(findings, &Finding{
			Severity: SeverityWarning,
			Field:    "content-type",
			Message:  fmt.Sprintf("unexpected MIME type %q", upload.ContentType),
		})
	}

	return findings
}

// isAcceptedContentType reports whether the declared type looks like XML.
func isAcceptedContentType(contentType string) bool {
	// Strip any parameters, e.g. "text/xml; charset=utf-8".
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	contentType = strings.TrimSpace(strings.ToLower(contentType))

	for _, accepted := range acceptedContentTypes {
		if contentType == accepted {
			return true
		}
	}
	return strings.Contains(contentType, "xml")
}

// =============================================================================
// HELPERS
// =============================================================================

// Blocking reports whether any finding is severe enough to reject the upload.
func Blocking(findings []*Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// FirstError returns the message of the first error-severity finding, or ""
// if the findings are all warnings.
func FirstError(findings []*Finding) string {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return f.Message
		}
	}
	return ""
}
