package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumekit/models"
	"resumekit/parsers"
)

func TestExportJSONIndentation(t *testing.T) {
	r := &models.Resume{
		PersonalInfo: models.PersonalInfo{Name: "Jane"},
		Sections:     []models.Section{{ID: "summary", Content: "Hi."}},
	}

	data, err := ExportJSON(r)
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, "{\n  \""), "expected two-space indentation")
	assert.Contains(t, text, `"name": "Jane"`)
}

func TestExportImportRoundTrip(t *testing.T) {
	original := parsers.Sanitize(`{
		"personalInfo": {"name": "Jane Doe", "email": "jane@example.com"},
		"sections": [
			{"id": "summary", "title": "Summary", "content": "Hi."},
			{"id": "skills", "title": "Skills", "items": ["Go", "Docker"]},
			{"id": "experience", "title": "Experience", "items": [
				{"id": "e1", "role": "Dev", "company": "Acme", "bullets": ["Did things"]}
			]}
		],
		"template": "classic",
		"font": "Inter",
		"spacing": 1.4
	}`)

	data, err := ExportJSON(original)
	require.NoError(t, err)

	restored, err := parsers.ImportJSON(string(data))
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestExportJSONNil(t *testing.T) {
	_, err := ExportJSON(nil)
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name     string
		owner    string
		ext      string
		expected string
	}{
		{"simple name", "Jane Doe", "pdf", "jane-doe-resume.pdf"},
		{"punctuated name", "Jane Q. O'Doe", "docx", "jane-q-o-doe-resume.docx"},
		{"no name", "", "json", "resume.json"},
		{"dotted extension", "Jane", ".tex", "jane-resume.tex"},
		{"symbols only", "!!!", "txt", "resume.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &models.Resume{PersonalInfo: models.PersonalInfo{Name: tt.owner}}
			assert.Equal(t, tt.expected, Filename(r, tt.ext))
		})
	}

	assert.Equal(t, "resume.pdf", Filename(nil, "pdf"))
}
