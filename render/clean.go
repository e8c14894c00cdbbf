package render

import "resumekit/models"

// cleanTemplate is the minimalist single-column flow: unboxed left-aligned
// header with the professional title under the name, letter-spaced section
// titles, no rules.
type cleanTemplate struct{}

func (cleanTemplate) Name() string { return "clean" }

func (cleanTemplate) Render(r *models.Resume) *Document {
	titleStyle := Style{
		FontSize:     12,
		Bold:         true,
		Uppercase:    true,
		MarginBottom: 8,
	}

	page := &Page{Size: A4}

	header := Box(Style{MarginBottom: 20})
	header.Append(Text(r.PersonalInfo.Name, Style{FontSize: 24, Bold: true, MarginBottom: 2}))
	if r.PersonalInfo.Title != "" {
		header.Append(Text(r.PersonalInfo.Title, Style{FontSize: 14, Color: "#666", MarginBottom: 8}))
	}
	header.Append(contactNode(r.PersonalInfo, Style{FontSize: 9, Color: "#666"}))
	page.Content = append(page.Content, header)

	for i := range r.Sections {
		if node := flowSection(&r.Sections[i], titleStyle); node != nil {
			page.Content = append(page.Content, node)
		}
	}

	return &Document{Pages: []*Page{page}}
}
