package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"resumekit/export"
	"resumekit/models"
	"resumekit/utils"
)

// Artifact is one finished export: bytes plus the metadata needed to serve
// or store them.
type Artifact struct {
	Filename string
	MIME     string
	Data     []byte
	// Fallback marks an artifact produced by the degraded path after the
	// requested backend was unavailable.
	Fallback bool
}

// ExportService orchestrates the per-format exporters and the PDF engine
// failover policy.
type ExportService struct {
	engine PDFEngine
}

func NewExportService(engine PDFEngine) *ExportService {
	return &ExportService{engine: engine}
}

// exportTimeout bounds a single headless render.
const exportTimeout = 30 * time.Second

// Export dispatches on format. Unknown formats are an error; callers map
// it to a bad request.
func (s *ExportService) Export(ctx context.Context, r *models.Resume, format, template string, style models.StyleConfig) (*Artifact, error) {
	switch format {
	case "pdf":
		return s.ExportPDF(ctx, r, style)
	case "docx":
		return s.ExportDOCX(r)
	case "latex", "tex":
		return s.ExportLaTeX(r, template, style)
	case "json":
		return s.ExportJSON(r)
	case "html":
		return s.ExportHTML(r)
	case "text", "txt":
		return s.ExportText(r)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// ExportPDF draws the resume onto an HTML canvas and prints it with the
// headless engine. When the engine is missing or fails, the export degrades
// to the print-ready HTML fallback instead of erroring: a worse artifact
// beats no artifact.
func (s *ExportService) ExportPDF(ctx context.Context, r *models.Resume, style models.StyleConfig) (*Artifact, error) {
	legacy := models.ToLegacyShape(r)

	if s.engine == nil || !s.engine.Available() {
		utils.LogWarn("PDF engine unavailable, serving HTML fallback")
		return s.fallbackArtifact(r, legacy), nil
	}

	canvas := NewHTMLCanvas(style.FontFamily)
	export.DrawPDF(canvas, legacy, style)

	renderCtx, cancel := context.WithTimeout(ctx, exportTimeout)
	defer cancel()

	pdf, err := s.engine.RenderHTMLToPDF(renderCtx, canvas.Page())
	if err != nil {
		utils.LogWarn("PDF render failed, serving HTML fallback", map[string]interface{}{"error": err.Error()})
		return s.fallbackArtifact(r, legacy), nil
	}

	return &Artifact{
		Filename: export.Filename(r, "pdf"),
		MIME:     export.MIMEPDF,
		Data:     pdf,
	}, nil
}

func (s *ExportService) fallbackArtifact(r *models.Resume, legacy models.LegacyResume) *Artifact {
	return &Artifact{
		Filename: export.Filename(r, "html"),
		MIME:     export.MIMEHTML,
		Data:     []byte(export.GenerateHTML(legacy)),
		Fallback: true,
	}
}

func (s *ExportService) ExportDOCX(r *models.Resume) (*Artifact, error) {
	var buf bytes.Buffer
	if err := export.WriteDOCX(&buf, r); err != nil {
		return nil, fmt.Errorf("failed to generate DOCX: %v", err)
	}
	return &Artifact{
		Filename: export.Filename(r, "docx"),
		MIME:     export.MIMEWord,
		Data:     buf.Bytes(),
	}, nil
}

func (s *ExportService) ExportLaTeX(r *models.Resume, template string, style models.StyleConfig) (*Artifact, error) {
	out, err := export.GenerateLaTeX(r, template, style)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		Filename: out.Filename,
		MIME:     export.MIMEText,
		Data:     []byte(out.Content),
	}, nil
}

func (s *ExportService) ExportJSON(r *models.Resume) (*Artifact, error) {
	data, err := export.ExportJSON(r)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		Filename: export.Filename(r, "json"),
		MIME:     export.MIMEJSON,
		Data:     data,
	}, nil
}

func (s *ExportService) ExportHTML(r *models.Resume) (*Artifact, error) {
	legacy := models.ToLegacyShape(r)
	return &Artifact{
		Filename: export.Filename(r, "html"),
		MIME:     export.MIMEHTML,
		Data:     []byte(export.GenerateHTML(legacy)),
	}, nil
}

func (s *ExportService) ExportText(r *models.Resume) (*Artifact, error) {
	legacy := models.ToLegacyShape(r)
	return &Artifact{
		Filename: export.Filename(r, "txt"),
		MIME:     export.MIMEText,
		Data:     []byte(export.GenerateText(legacy)),
	}, nil
}
