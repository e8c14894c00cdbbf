package render

import "resumekit/models"

// classicTemplate is the traditional single-column flow: centered bordered
// header, uppercase ruled section titles, sections in user order.
type classicTemplate struct{}

func (classicTemplate) Name() string { return "classic" }

func (classicTemplate) Render(r *models.Resume) *Document {
	titleStyle := Style{
		FontSize:     12,
		Bold:         true,
		Uppercase:    true,
		BorderBottom: true,
		MarginBottom: 6,
	}

	page := &Page{Size: A4}

	header := Box(Style{Align: AlignCenter, BorderBottom: true, Padding: 10, MarginBottom: 15})
	header.Append(
		Text(r.PersonalInfo.Name, Style{FontSize: 22, Bold: true, MarginBottom: 4}),
		contactNode(r.PersonalInfo, Style{FontSize: 9, Color: "#666"}),
	)
	page.Content = append(page.Content, header)

	for i := range r.Sections {
		if node := flowSection(&r.Sections[i], titleStyle); node != nil {
			page.Content = append(page.Content, node)
		}
	}

	return &Document{Pages: []*Page{page}}
}
