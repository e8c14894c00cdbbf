package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumekit/models"
)

func latexResume() *models.Resume {
	return &models.Resume{
		PersonalInfo: models.PersonalInfo{
			Name:     "Jane Doe",
			Title:    "Backend Engineer",
			Email:    "jane@example.com",
			Phone:    "555-0100",
			Location: "New York, NY",
			LinkedIn: "linkedin.com/in/jane",
			GitHub:   "github.com/jane",
		},
		Sections: []models.Section{
			{ID: "summary", Content: "Engineer with a decade of Go."},
			{ID: "skills", Items: []models.Item{
				{Label: "Go"}, {Label: "Python"}, {Label: "SQL"},
				{Label: "Gin"}, {Label: "React"}, {Label: "Node"},
				{Label: "Git"}, {Label: "Docker"}, {Label: "AWS"},
			}},
			{ID: "experience", Items: []models.Item{
				{Role: "Engineer", Company: "Acme", Location: "NYC", StartDate: "2020", EndDate: "2023",
					Bullets: []string{"Shipped the thing", "Scaled the thing"}},
			}},
			{ID: "education", Items: []models.Item{
				{Degree: "BSc CS", School: "MIT", Year: "2018", GPA: "3.9", Location: "Cambridge"},
			}},
			{ID: "projects", Items: []models.Item{
				{Title: "CLI tool", Subtitle: "Side project", Year: "2021", Description: "A tool."},
			}},
		},
	}
}

func TestLatexTemplatesCatalog(t *testing.T) {
	templates := LatexTemplates()
	require.Len(t, templates, 5)

	ids := make([]string, len(templates))
	for i, tpl := range templates {
		ids[i] = tpl.ID
		assert.NotEmpty(t, tpl.Name)
		assert.NotEmpty(t, tpl.SourceFile)
		assert.NotEmpty(t, tpl.DocumentClass)
		_, ok := latexBodies[tpl.SourceFile]
		assert.True(t, ok, "missing body for %s", tpl.SourceFile)
	}
	assert.Equal(t, []string{"classic", "modern", "altacv", "clean", "professional"}, ids)
}

func TestGenerateLaTeXSubstitutesAllTokens(t *testing.T) {
	style := models.DefaultStyle()

	for _, tpl := range LatexTemplates() {
		out, err := GenerateLaTeX(latexResume(), tpl.ID, style)
		require.NoError(t, err, tpl.ID)

		assert.Equal(t, "resume-"+tpl.ID+".tex", out.Filename)
		assert.NotContains(t, out.Content, "<<", "template %s has unreplaced tokens", tpl.ID)
		assert.Contains(t, out.Content, "Jane Doe", tpl.ID)
		assert.Contains(t, out.Content, "Engineer with a decade of Go.", tpl.ID)
	}
}

func TestGenerateLaTeXSkillThirds(t *testing.T) {
	out, err := GenerateLaTeX(latexResume(), "classic", models.DefaultStyle())
	require.NoError(t, err)

	// Nine skills split into positional thirds of three.
	assert.Contains(t, out.Content, "Go, Python, SQL")
	assert.Contains(t, out.Content, "Gin, React, Node")
	assert.Contains(t, out.Content, "Git, Docker, AWS")
}

func TestSplitSkillThirds(t *testing.T) {
	tests := []struct {
		name                        string
		skills                      []string
		languages, frameworks, tool string
	}{
		{"empty", nil, "", "", ""},
		{"one skill", []string{"Go"}, "Go", "", ""},
		{"two skills", []string{"Go", "SQL"}, "Go", "SQL", ""},
		{"four skills", []string{"a", "b", "c", "d"}, "a, b", "c", "d"},
		{"nine skills", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, "1, 2, 3", "4, 5, 6", "7, 8, 9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			languages, frameworks, tools := splitSkillThirds(tt.skills)
			assert.Equal(t, tt.languages, languages)
			assert.Equal(t, tt.frameworks, frameworks)
			assert.Equal(t, tt.tool, tools)
		})
	}
}

func TestGenerateLaTeXEntryForms(t *testing.T) {
	style := models.DefaultStyle()

	// CV-class templates render entries through \cventry.
	modern, err := GenerateLaTeX(latexResume(), "modern", style)
	require.NoError(t, err)
	assert.Contains(t, modern.Content, `\cventry{2020 -- 2023}{Engineer}{Acme}{NYC}{}{`)
	assert.Contains(t, modern.Content, `\cventry{2018}{BSc CS}{MIT}{Cambridge}{GPA: 3.9}{}`)

	// Article templates use bold headers with itemize lists.
	classic, err := GenerateLaTeX(latexResume(), "classic", style)
	require.NoError(t, err)
	assert.Contains(t, classic.Content, `\textbf{Engineer} \hfill 2020 -- 2023`)
	assert.Contains(t, classic.Content, `\textit{Acme, NYC}`)
	assert.Contains(t, classic.Content, `\item Shipped the thing`)
	assert.NotContains(t, classic.Content, `\cventry`)
}

func TestGenerateLaTeXUnknownTemplateFallsBackToClassic(t *testing.T) {
	out, err := GenerateLaTeX(latexResume(), "no-such-template", models.DefaultStyle())
	require.NoError(t, err)
	assert.Equal(t, "classic", out.Template.ID)
	assert.Equal(t, "resume-classic.tex", out.Filename)
}

func TestGenerateLaTeXStyleBlock(t *testing.T) {
	style := models.StyleConfig{
		LineSpacing:      1.5,
		SectionSpacingPt: 14,
		ItemSpacingPt:    3,
		ListTopSepPt:     4,
		ListLeftMargin:   "1em",
		BulletStyle:      "dash",
		MarginInches:     0.5,
	}

	out, err := GenerateLaTeX(latexResume(), "classic", style)
	require.NoError(t, err)

	assert.Contains(t, out.Content, `\linespread{1.5}`)
	assert.Contains(t, out.Content, `\usepackage[margin=0.5in]{geometry}`)
	assert.Contains(t, out.Content, `leftmargin=1em, itemsep=3pt, topsep=4pt`)
	assert.Contains(t, out.Content, `\renewcommand\labelitemi{–}`)
	assert.Contains(t, out.Content, `\g@addto@macro\section{\vspace{14pt}}`)
	// The injected block replaces the placeholder exactly once.
	assert.Equal(t, 1, strings.Count(out.Content, "=== dynamic style block (injected) ==="))
}

func TestGenerateLaTeXMissingSections(t *testing.T) {
	r := &models.Resume{
		PersonalInfo: models.PersonalInfo{Name: "Jane"},
		Sections:     []models.Section{},
	}

	out, err := GenerateLaTeX(r, "professional", models.DefaultStyle())
	require.NoError(t, err)
	// Placeholder defaults fill the identity slots; entry sections collapse
	// to nothing.
	assert.Contains(t, out.Content, "Jane")
	assert.Contains(t, out.Content, "your.email@example.com")
	assert.NotContains(t, out.Content, `\cventry`)
}

func TestEscapeForMarkupIsPassthrough(t *testing.T) {
	assert.Equal(t, `50% faster \& cheaper`, EscapeForMarkup(`50% faster \& cheaper`))
	assert.Equal(t, "", EscapeForMarkup(""))
}

func TestGenerateLaTeXNilResume(t *testing.T) {
	_, err := GenerateLaTeX(nil, "classic", models.DefaultStyle())
	assert.Error(t, err)
}
