package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumekit/services"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	h := NewResumeHandler(services.NewExportService(nil), services.NewResumeService(nil))

	r.GET("/api/templates", h.GetTemplates)
	r.GET("/api/resume/default", h.GetDefaultResume)
	r.POST("/api/resume/export", h.ExportResume)
	r.POST("/api/resume/import", h.ImportResume)
	r.POST("/api/resume/preview", h.PreviewResume)
	r.POST("/api/resume/parse", h.ParseResumeText)
	r.DELETE("/api/resume/download/:filename", h.DeleteArtifact)

	return r
}

// chdir is a stand-in for testing.T.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req, _ := http.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sampleResumePayload() map[string]interface{} {
	return map[string]interface{}{
		"personalInfo": map[string]interface{}{
			"name":  "Jane Doe",
			"email": "jane@example.com",
		},
		"sections": []interface{}{
			map[string]interface{}{"id": "summary", "title": "Summary", "content": "Builds reliable services."},
			map[string]interface{}{"id": "skills", "title": "Skills", "items": []interface{}{"Go", "SQL"}},
		},
		"template": "classic",
	}
}

func TestExportResume(t *testing.T) {
	router := setupTestRouter()

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "json export",
			requestBody: map[string]interface{}{
				"resume": sampleResumePayload(),
				"format": "json",
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
				assert.Contains(t, w.Header().Get("Content-Disposition"), "jane-doe-resume.json")
				assert.Contains(t, w.Body.String(), "Jane Doe")
			},
		},
		{
			name: "latex export",
			requestBody: map[string]interface{}{
				"resume":   sampleResumePayload(),
				"format":   "latex",
				"template": "professional",
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Header().Get("Content-Disposition"), "resume-professional.tex")
				assert.Contains(t, w.Body.String(), `\documentclass`)
			},
		},
		{
			name: "docx export",
			requestBody: map[string]interface{}{
				"resume": sampleResumePayload(),
				"format": "docx",
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				// DOCX files are zip archives.
				assert.Equal(t, "PK", w.Body.String()[:2])
			},
		},
		{
			name: "pdf export without an engine degrades to html",
			requestBody: map[string]interface{}{
				"resume": sampleResumePayload(),
				"format": "pdf",
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
				assert.Contains(t, w.Body.String(), "Builds reliable services.")
			},
		},
		{
			name: "malformed resume payload is sanitized, not rejected",
			requestBody: map[string]interface{}{
				"resume": map[string]interface{}{
					"personalInfo": "not an object",
					"sections": []interface{}{
						map[string]interface{}{"id": "summary", "content": map[string]interface{}{"content": "Wrapped."}},
					},
				},
				"format": "json",
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), "Wrapped.")
			},
		},
		{
			name: "missing format",
			requestBody: map[string]interface{}{
				"resume": sampleResumePayload(),
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown format",
			requestBody: map[string]interface{}{
				"resume": sampleResumePayload(),
				"format": "xlsx",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/resume/export", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestExportResumeUploadBranch(t *testing.T) {
	chdir(t, t.TempDir())
	router := setupTestRouter()

	w := postJSON(t, router, "/api/resume/export", map[string]interface{}{
		"resume": sampleResumePayload(),
		"format": "json",
		"upload": true,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Filename    string `json:"filename"`
			DisplayName string `json:"displayName"`
			DownloadURL string `json:"downloadUrl"`
			Fallback    bool   `json:"fallback"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Regexp(t, `^resume_\d+\.json$`, response.Data.Filename)
	assert.Equal(t, "Jane Doe Resume", response.Data.DisplayName)
	assert.Equal(t, "/static/"+response.Data.Filename, response.Data.DownloadURL)
	assert.False(t, response.Data.Fallback)

	// The stored artifact can be deleted through the delete endpoint.
	req, _ := http.NewRequest("DELETE", "/api/resume/download/"+response.Data.Filename, nil)
	del := httptest.NewRecorder()
	router.ServeHTTP(del, req)
	assert.Equal(t, http.StatusOK, del.Code)
}

func TestDeleteArtifactNotFound(t *testing.T) {
	chdir(t, t.TempDir())
	router := setupTestRouter()

	req, _ := http.NewRequest("DELETE", "/api/resume/download/never-stored.pdf", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestImportResume(t *testing.T) {
	router := setupTestRouter()

	valid, err := json.Marshal(sampleResumePayload())
	require.NoError(t, err)

	w := postJSON(t, router, "/api/resume/import", map[string]interface{}{"content": string(valid)})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	w = postJSON(t, router, "/api/resume/import", map[string]interface{}{"content": "not json at all"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Valid JSON that is not resume-shaped is rejected too.
	w = postJSON(t, router, "/api/resume/import", map[string]interface{}{"content": `{"personalInfo": {}}`})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreviewResume(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/resume/preview", map[string]interface{}{
		"resume":   sampleResumePayload(),
		"template": "modern",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Pages []struct {
				Size struct {
					Width  float64 `json:"width"`
					Height float64 `json:"height"`
				} `json:"size"`
			} `json:"pages"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	require.Len(t, response.Data.Pages, 1)
	assert.InDelta(t, 595.28, response.Data.Pages[0].Size.Width, 0.01)
	assert.InDelta(t, 841.89, response.Data.Pages[0].Size.Height, 0.01)
}

func TestGetTemplates(t *testing.T) {
	router := setupTestRouter()

	req, _ := http.NewRequest("GET", "/api/templates", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "stitch")
	assert.Contains(t, w.Body.String(), "altacv")
}

func TestGetDefaultResume(t *testing.T) {
	router := setupTestRouter()

	req, _ := http.NewRequest("GET", "/api/resume/default", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"template":"stitch"`)
	assert.Contains(t, w.Body.String(), "Your Name")
}

func TestParseResumeText(t *testing.T) {
	router := setupTestRouter()

	w := postJSON(t, router, "/api/resume/parse", map[string]interface{}{
		"text": "John Doe\njohn@example.com\n\nSKILLS\nGo, Python\n",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "john@example.com")

	w = postJSON(t, router, "/api/resume/parse", map[string]interface{}{"text": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
