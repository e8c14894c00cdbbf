package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumekit/export"
	"resumekit/models"
	"resumekit/parsers"
	"resumekit/render"
	"resumekit/services"
	"resumekit/utils"
)

// ResumeHandler serves the resume pipeline endpoints: export, import,
// preview, templates, and AI tailoring.
type ResumeHandler struct {
	exports *services.ExportService
	resumes *services.ResumeService
}

func NewResumeHandler(exports *services.ExportService, resumes *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{exports: exports, resumes: resumes}
}

// ExportRequest carries the resume payload and export options. The resume
// arrives as raw JSON so malformed editor state still goes through the
// sanitizer instead of failing at bind time.
type ExportRequest struct {
	Resume   json.RawMessage     `json:"resume"`
	Format   string              `json:"format"`
	Template string              `json:"template"`
	Style    *models.StyleConfig `json:"style"`
	Upload   bool                `json:"upload"`
}

func (h *ResumeHandler) ExportResume(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid export request", err)
		return
	}
	if req.Format == "" {
		utils.BadRequestError(c, "Export format is required", nil)
		return
	}

	resume := parsers.Sanitize(req.Resume)

	style := models.StyleFromResume(resume)
	if req.Style != nil {
		style = *req.Style
	}
	template := req.Template
	if template == "" {
		template = resume.Template
	}

	artifact, err := h.exports.Export(c.Request.Context(), resume, req.Format, template, style)
	if err != nil {
		utils.BadRequestError(c, "Export failed", err)
		return
	}

	if artifact.Fallback {
		utils.LogWarn("Export degraded to fallback artifact", map[string]interface{}{
			"format": req.Format, "served": artifact.MIME,
		})
	}

	if req.Upload {
		stored, url, err := h.resumes.UploadArtifact(artifact)
		if err != nil {
			utils.InternalServerError(c, "Failed to store artifact", err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Resume exported successfully", gin.H{
			"filename":    stored,
			"displayName": h.resumes.DisplayName(artifact.Filename),
			"downloadUrl": url,
			"fallback":    artifact.Fallback,
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.MIME, artifact.Data)
}

// ImportRequest wraps the saved JSON document being imported.
type ImportRequest struct {
	Content string `json:"content"`
}

func (h *ResumeHandler) ImportResume(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid import request", err)
		return
	}

	resume, err := parsers.ImportJSON(req.Content)
	if err != nil {
		if errors.Is(err, parsers.ErrInvalidFormat) {
			utils.BadRequestError(c, "Not a valid resume document", err)
			return
		}
		utils.InternalServerError(c, "Import failed", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Resume imported successfully", resume)
}

// PreviewRequest carries the resume to lay out and an optional template
// override.
type PreviewRequest struct {
	Resume   json.RawMessage `json:"resume"`
	Template string          `json:"template"`
}

// PreviewResume lays the resume out with the selected template strategy and
// returns the drawing tree for the client to paint.
func (h *ResumeHandler) PreviewResume(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid preview request", err)
		return
	}

	resume := parsers.Sanitize(req.Resume)
	if req.Template != "" {
		resume.Template = req.Template
	}

	doc, err := render.Render(resume)
	if err != nil {
		var fault *render.Fault
		if errors.As(err, &fault) {
			utils.ErrorResponseWithCode(c, http.StatusUnprocessableEntity, "Resume cannot be rendered", err)
			return
		}
		utils.InternalServerError(c, "Preview failed", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Preview generated", doc)
}

// GetTemplates lists both template catalogs: the layout strategies used for
// preview and PDF, and the LaTeX sources.
func (h *ResumeHandler) GetTemplates(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Available templates", gin.H{
		"layouts": render.Templates(),
		"latex":   export.LatexTemplates(),
	})
}

// GetDefaultResume returns the starter resume the editor seeds new users
// with.
func (h *ResumeHandler) GetDefaultResume(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Default resume", models.DefaultResume())
}

// TailorRequest pairs a resume with the job description to target.
type TailorRequest struct {
	Resume         json.RawMessage `json:"resume"`
	JobDescription string          `json:"jobDescription"`
}

func (h *ResumeHandler) TailorResume(c *gin.Context) {
	var req TailorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid tailor request", err)
		return
	}
	if req.JobDescription == "" {
		utils.BadRequestError(c, "Job description is required", nil)
		return
	}

	resume := parsers.Sanitize(req.Resume)
	tailored, err := services.TailorResume(resume, req.JobDescription)
	if err != nil {
		utils.InternalServerError(c, "Failed to tailor resume", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Resume tailored successfully", tailored)
}

// ParseRequest wraps free-form resume text, typically pasted from an old
// document.
type ParseRequest struct {
	Text string `json:"text"`
}

func (h *ResumeHandler) ParseResumeText(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid parse request", err)
		return
	}
	if req.Text == "" {
		utils.BadRequestError(c, "Resume text is required", nil)
		return
	}

	resume, err := parsers.NewTextParser().Parse(req.Text)
	if err != nil {
		utils.BadRequestError(c, "Could not parse resume text", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Resume parsed successfully", resume)
}

// GetDownloadURL returns a presigned link for a previously uploaded
// artifact.
func (h *ResumeHandler) GetDownloadURL(c *gin.Context) {
	filename := c.Param("filename")
	if filename == "" {
		utils.BadRequestError(c, "Filename is required", nil)
		return
	}

	url, err := h.resumes.GeneratePresignedURL(filename)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate download URL", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Download URL generated", gin.H{
		"filename":    filename,
		"downloadUrl": url,
	})
}

// DeleteArtifact removes a previously stored artifact by its stored
// filename.
func (h *ResumeHandler) DeleteArtifact(c *gin.Context) {
	filename := c.Param("filename")
	if filename == "" {
		utils.BadRequestError(c, "Filename is required", nil)
		return
	}

	if err := h.resumes.DeleteArtifact(filename); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			utils.NotFoundError(c, "Artifact not found")
			return
		}
		utils.InternalServerError(c, "Failed to delete artifact", err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Artifact deleted", gin.H{"filename": filename})
}
