// =============================================================================
// XML to XLSX Converter - Web Form
// =============================================================================
//
// This module serves the single-page upload/download form. One upload
// triggers one synchronous parse-then-write pipeline; the response is either
// the generated workbook as an attachment or the form again with the status
// message. Nothing is persisted between requests.
//
// ROUTES:
//   GET  /         - the upload form
//   POST /convert  - run the pipeline on the uploaded file
//
// =============================================================================

package webui

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ginjaninja78/XML-to-XLSX-conversion/internal/config"
	"github.com/ginjaninja78/XML-to-XLSX-conversion/internal/converter"
	"github.com/ginjaninja78/XML-to-XLSX-conversion/internal/validation"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// xlsxContentType is the MIME type of the generated workbook.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// formFileField is the name of the file input on the upload form.
const formFileField = "xmlfile"

// =============================================================================
// SERVER
// =============================================================================

// Server is the web server for the upload form.
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	conv   *converter.Converter
}

// NewServer creates the server, parses the embedded templates, and registers
// the routes.
func NewServer(cfg *config.Config) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.Default()
	router.SetHTMLTemplate(tmpl)

	s := &Server{
		router: router,
		cfg:    cfg,
		conv:   converter.New(cfg.OutputNameFormat, nil),
	}

	router.GET("/", s.handleIndex)
	router.POST("/convert", s.handleConvert)

	return s, nil
}

// Router returns the underlying engine, for tests and embedding.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run blocks serving HTTP on the configured listen address.
func (s *Server) Run() error {
	log.Printf("[webui] listening on %s (upload limit %d MB)", s.cfg.ListenAddr, s.cfg.MaxUploadMB)
	return s.router.Run(s.cfg.ListenAddr)
}

// =============================================================================
// HANDLERS
// =============================================================================

// handleIndex renders the upload form.
func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html.tmpl", gin.H{
		"MaxUploadMB": s.cfg.MaxUploadMB,
	})
}

// handleConvert runs one conversion: validate the upload metadata, read the
// file, run the pipeline, and answer with either the workbook attachment or
// the form plus the status message.
func (s *Server) handleConvert(c *gin.Context) {
	// Short request ID to correlate the log lines of one conversion.
	reqID := uuid.New().String()[:8]

	file, header, err := c.Request.FormFile(formFileField)
	if err != nil {
		log.Printf("[handleConvert] %s rejected: no file uploaded: %v", reqID, err)
		s.renderError(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	findings := validation.ValidateUpload(validation.Upload{
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}, s.cfg.MaxUploadBytes())

	for _, f := range findings {
		if f.Severity == validation.SeverityWarning {
			log.Printf("[handleConvert] %s %s: %v", reqID, header.Filename, f)
		}
	}
	if validation.Blocking(findings) {
		msg := validation.FirstError(findings)
		log.Printf("[handleConvert] %s rejected %s: %s", reqID, header.Filename, msg)
		s.renderError(c, http.StatusBadRequest, msg)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("[handleConvert] %s failed reading %s: %v", reqID, header.Filename, err)
		s.renderError(c, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	result := s.conv.Convert(header.Filename, data)
	if !result.OK() {
		log.Printf("[handleConvert] %s %s: %s", reqID, header.Filename, result.Message)
		s.renderError(c, http.StatusUnprocessableEntity, result.Message)
		return
	}

	log.Printf("[handleConvert] %s converted %s: %d transaction(s) -> %s",
		reqID, header.Filename, result.RecordCount, result.OutputName)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.OutputName))
	c.Header("X-Transaction-Count", fmt.Sprintf("%d", result.RecordCount))
	c.Data(http.StatusOK, xlsxContentType, result.Buffer.Bytes())
}

// renderError re-renders the form with a status message.
func (s *Server) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "index.html.tmpl", gin.H{
		"MaxUploadMB": s.cfg.MaxUploadMB,
		"Error":       message,
	})
}
