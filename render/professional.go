package render

import "resumekit/models"

// professionalTemplate is the compact single-column layout: a bordered
// header with name and title on the left and the contact block
// right-aligned, shaded section titles, tight spacing.
type professionalTemplate struct{}

func (professionalTemplate) Name() string { return "professional" }

func (professionalTemplate) Render(r *models.Resume) *Document {
	titleStyle := Style{
		FontSize:     11,
		Bold:         true,
		Uppercase:    true,
		Background:   "#eee",
		Padding:      3,
		MarginBottom: 6,
	}

	page := &Page{Size: A4}

	identity := Box(Style{})
	identity.Append(Text(r.PersonalInfo.Name, Style{FontSize: 20, Bold: true}))
	if r.PersonalInfo.Title != "" {
		identity.Append(Text(r.PersonalInfo.Title, Style{FontSize: 12}))
	}

	contact := Box(Style{Align: AlignRight})
	for _, field := range []string{r.PersonalInfo.Email, r.PersonalInfo.Phone, r.PersonalInfo.Location} {
		if field != "" {
			contact.Append(Text(field, Style{FontSize: 9, Align: AlignRight}))
		}
	}

	page.Content = append(page.Content, Box(
		Style{Row: true, SpaceBetween: true, BorderBottom: true, Padding: 10, MarginBottom: 15},
		identity, contact,
	))

	for i := range r.Sections {
		if node := flowSection(&r.Sections[i], titleStyle); node != nil {
			page.Content = append(page.Content, node)
		}
	}

	return &Document{Pages: []*Page{page}}
}
