package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume() *Resume {
	return &Resume{
		PersonalInfo: PersonalInfo{Name: "Jane Doe", Email: "jane@example.com"},
		Sections: []Section{
			{ID: "summary", Content: "Seasoned engineer."},
			{ID: "skills", Items: []Item{{Label: "Go"}, {Label: "Docker"}, {Name: "SQL"}}},
			{ID: "experience", Items: []Item{
				{Role: "Engineer", Company: "Acme", Location: "NYC", StartDate: "2020", EndDate: "2023", Bullets: []string{"Shipped things"}},
				{Role: "Junior Dev", Company: "Startup", StartDate: "2018"},
			}},
			{ID: "education", Items: []Item{
				{Degree: "BSc CS", School: "MIT", Year: "2018", GPA: "3.9", Location: "Cambridge"},
				{Degree: "MSc CS", School: "Stanford", Year: "2020"},
			}},
			{ID: "projects", Items: []Item{
				{Title: "CLI tool", Description: "A tool.", Technologies: []string{"Go", "Cobra"}},
			}},
		},
	}
}

func TestToLegacyShape(t *testing.T) {
	legacy := ToLegacyShape(sampleResume())

	assert.Equal(t, "Jane Doe", legacy.PersonalInfo.Name)
	assert.Equal(t, "Seasoned engineer.", legacy.Summary)

	require.NotNil(t, legacy.Skills)
	assert.Equal(t, []string{"Go", "Docker", "SQL"}, legacy.Skills.Languages)
	assert.Empty(t, legacy.Skills.Frameworks)
	assert.Empty(t, legacy.Skills.Tools)

	require.Len(t, legacy.Experience, 2)
	assert.Equal(t, "Engineer", legacy.Experience[0].Position)
	assert.Equal(t, "2020 - 2023", legacy.Experience[0].Duration)
	assert.Equal(t, []string{"Shipped things"}, legacy.Experience[0].Achievements)
	// A missing end date reads as an ongoing position.
	assert.Equal(t, "2018 - Present", legacy.Experience[1].Duration)

	// The legacy education slot is a single object; only the first entry
	// survives.
	require.NotNil(t, legacy.Education)
	assert.Equal(t, "BSc CS", legacy.Education.Degree)
	assert.Equal(t, "MIT", legacy.Education.University)
	assert.Equal(t, "3.9", legacy.Education.GPA)

	require.Len(t, legacy.Projects, 1)
	assert.Equal(t, "CLI tool", legacy.Projects[0].Name)
	assert.Equal(t, []string{"Go", "Cobra"}, legacy.Projects[0].Technologies)
}

func TestToLegacyShapeEmptyResume(t *testing.T) {
	legacy := ToLegacyShape(&Resume{})

	assert.Empty(t, legacy.Summary)
	assert.Nil(t, legacy.Skills)
	assert.Nil(t, legacy.Education)
	assert.NotNil(t, legacy.Experience)
	assert.Empty(t, legacy.Experience)
	assert.NotNil(t, legacy.Projects)
}

func TestToLegacyShapeNil(t *testing.T) {
	legacy := ToLegacyShape(nil)
	assert.NotNil(t, legacy.Experience)
	assert.Empty(t, legacy.Summary)
}

func TestToLegacyShapeTitleVariantEducation(t *testing.T) {
	r := &Resume{Sections: []Section{
		{ID: "education", Items: []Item{{Title: "PhD", Subtitle: "Oxford", Year: "2024"}}},
	}}

	legacy := ToLegacyShape(r)
	require.NotNil(t, legacy.Education)
	assert.Equal(t, "PhD", legacy.Education.Degree)
	assert.Equal(t, "Oxford", legacy.Education.University)
}

func TestDefaultResume(t *testing.T) {
	r := DefaultResume()

	assert.Equal(t, "stitch", r.Template)
	assert.Equal(t, "summary", r.Sections[0].ID)
	assert.NotNil(t, r.SectionByID("experience"))
	assert.NotNil(t, r.SectionByID("skills"))

	// The starter resume must already satisfy the sanitized-shape
	// invariants so it can be rendered directly.
	for _, s := range r.Sections {
		assert.False(t, s.Content != "" && len(s.Items) > 0, "section %q has both arms populated", s.ID)
	}
}
