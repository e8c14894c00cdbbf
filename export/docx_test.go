package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumekit/models"
)

func docxParagraphTexts(t *testing.T, legacy models.LegacyResume) []string {
	t.Helper()
	doc := GenerateDOCX(legacy)

	var out []string
	for _, p := range doc.Paragraphs() {
		var b strings.Builder
		for _, r := range p.Runs() {
			b.WriteString(r.Text())
		}
		if b.Len() > 0 {
			out = append(out, b.String())
		}
	}
	return out
}

func TestGenerateDOCXStructure(t *testing.T) {
	paragraphs := docxParagraphTexts(t, legacyFixture())
	require.NotEmpty(t, paragraphs)

	assert.Equal(t, "Jane Doe", paragraphs[0])
	assert.Equal(t, "555-0100 • jane@example.com", paragraphs[1])

	joined := strings.Join(paragraphs, "\n")
	for _, heading := range []string{"SUMMARY", "SKILLS", "PROFESSIONAL EXPERIENCE", "EDUCATION", "PROJECTS"} {
		assert.Contains(t, joined, heading)
	}
	assert.Contains(t, joined, "Languages & Databases: Go, SQL")
	assert.Contains(t, joined, "2018 • GPA: 3.9")
}

func TestGenerateDOCXSkipsEmptyParts(t *testing.T) {
	paragraphs := docxParagraphTexts(t, models.LegacyResume{
		PersonalInfo: models.PersonalInfo{Name: "Jane"},
	})

	joined := strings.Join(paragraphs, "\n")
	assert.NotContains(t, joined, "SUMMARY")
	assert.NotContains(t, joined, "SKILLS")
	assert.NotContains(t, joined, "EDUCATION")
}

func TestGenerateDOCXEmptySkillBucketsLeaveNoLabel(t *testing.T) {
	legacy := legacyFixture()
	joined := strings.Join(docxParagraphTexts(t, legacy), "\n")

	assert.Contains(t, joined, "Languages & Databases: ")
	assert.NotContains(t, joined, "Frameworks and Libraries: ")
	assert.NotContains(t, joined, "Developer Tools: ")
}

func TestWriteDOCXProducesDocument(t *testing.T) {
	r := &models.Resume{
		PersonalInfo: models.PersonalInfo{Name: "Jane Doe"},
		Sections: []models.Section{
			{ID: "summary", Content: "Hi."},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDOCX(&buf, r))
	// DOCX files are zip archives.
	assert.Equal(t, []byte{'P', 'K'}, buf.Bytes()[:2])
}
