package render

import (
	"strings"

	"resumekit/models"
)

// Fault marks a structurally invalid resume reaching the renderer. Unlike
// malformed data, which the sanitizer absorbs upstream, this indicates a
// pipeline-ordering bug and is allowed to propagate.
type Fault struct {
	Reason string
}

func (f *Fault) Error() string { return "render fault: " + f.Reason }

// TemplateStrategy is one complete layout algorithm producing a paginated
// document from a sanitized resume.
type TemplateStrategy interface {
	Name() string
	Render(r *models.Resume) *Document
}

// DefaultTemplate is used whenever resume.template is absent or unknown.
const DefaultTemplate = "stitch"

var strategies = map[string]TemplateStrategy{
	"classic":      classicTemplate{},
	"modern":       modernTemplate{},
	"clean":        cleanTemplate{},
	"professional": professionalTemplate{},
	"stitch":       stitchTemplate{},
}

// Templates lists the selectable template identifiers.
func Templates() []string {
	return []string{"classic", "modern", "clean", "professional", "stitch"}
}

// Render produces a paginated document using the strategy selected by
// resume.Template, falling back to the default for unknown identifiers.
// Missing optional fields render blank; a resume without a sections slice
// at all is a Fault.
func Render(r *models.Resume) (*Document, error) {
	if r == nil {
		return nil, &Fault{Reason: "nil resume"}
	}
	if r.Sections == nil {
		return nil, &Fault{Reason: "resume has no sections; was it sanitized?"}
	}
	strategy, ok := strategies[r.Template]
	if !ok {
		strategy = strategies[DefaultTemplate]
	}
	return strategy.Render(r), nil
}

// ContactLine joins the non-empty contact fields in the fixed order
// location, phone, email, linkedin, github.
func ContactLine(p models.PersonalInfo) string {
	parts := make([]string, 0, 5)
	for _, field := range []string{p.Location, p.Phone, p.Email, p.LinkedIn, p.GitHub} {
		if field != "" {
			parts = append(parts, field)
		}
	}
	return strings.Join(parts, " | ")
}

// FlattenSkills reduces skills entries to their string labels. The
// sanitizer already did this, but resumes can reach a renderer without
// passing through the full edit pipeline (direct import, tests), so the
// renderer stays the last line of defense.
func FlattenSkills(items []models.Item) []string {
	out := make([]string, 0, len(items))
	for i := range items {
		if label := items[i].SkillLabel(); label != "" {
			out = append(out, label)
		}
	}
	return out
}

func joinSkills(items []models.Item, sep string) string {
	return strings.Join(FlattenSkills(items), sep)
}

// sectionEmpty reports whether a section has nothing to draw. Empty
// sections render nothing, not even their title.
func sectionEmpty(s *models.Section) bool {
	return s.Content == "" && len(s.Items) == 0
}

func dateRange(item *models.Item) string {
	if item.StartDate == "" && item.EndDate == "" {
		return ""
	}
	return item.StartDate + " - " + item.EndDate
}
