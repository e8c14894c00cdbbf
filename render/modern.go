package render

import "resumekit/models"

// modernTemplate is the two-region sidebar layout: a shaded sidebar with
// identity, contact block, and skills; a main region with the summary
// ("Profile") and experience. Education, projects, and custom sections are
// intentionally not rendered by this strategy; that simplification is part
// of its contract, kept for compatibility.
type modernTemplate struct{}

func (modernTemplate) Name() string { return "modern" }

func (modernTemplate) Render(r *models.Resume) *Document {
	titleStyle := Style{
		FontSize:     11,
		Bold:         true,
		Uppercase:    true,
		Color:        "#2c3e50",
		BorderBottom: true,
		MarginBottom: 8,
	}

	sidebar := Box(Style{WidthPct: 30, Background: "#f4f4f4", Padding: 20})
	sidebar.Append(Text(r.PersonalInfo.Name, Style{FontSize: 20, Bold: true, Color: "#2c3e50", MarginBottom: 10}))
	if r.PersonalInfo.Title != "" {
		sidebar.Append(Text(r.PersonalInfo.Title, Style{FontSize: 12, Color: "#555", MarginBottom: 15}))
	}

	contact := Box(Style{MarginBottom: 20})
	contact.Append(Text("Contact", titleStyle))
	for _, field := range []string{r.PersonalInfo.Email, r.PersonalInfo.Phone, r.PersonalInfo.Location} {
		if field != "" {
			contact.Append(Text(field, Style{FontSize: 9, Color: "#555", MarginBottom: 4}))
		}
	}
	sidebar.Append(contact)

	if s := r.SectionByID("skills"); s != nil {
		if labels := FlattenSkills(s.Items); len(labels) > 0 {
			skills := Box(Style{})
			skills.Append(Text("Skills", titleStyle))
			for _, label := range labels {
				skills.Append(Text("• "+label, Style{FontSize: 9, Color: "#555", MarginBottom: 4}))
			}
			sidebar.Append(skills)
		}
	}

	main := Box(Style{WidthPct: 70, Padding: 20})

	if s := r.SectionByID("summary"); s != nil && s.Content != "" {
		main.Append(Box(Style{MarginBottom: 15},
			Text("Profile", titleStyle),
			Text(s.Content, Style{FontSize: 10, LineHeight: 1.4}),
		))
	}

	if s := r.SectionByID("experience"); s != nil && !sectionEmpty(s) {
		main.Append(Text("Experience", titleStyle))
		for i := range s.Items {
			item := &s.Items[i]
			entry := Box(Style{MarginBottom: 10})
			entry.Append(Text(item.Role, Style{FontSize: 10, Bold: true}))
			sub := item.Company
			if d := dateRange(item); d != "" {
				sub += " | " + d
			}
			if sub != "" {
				entry.Append(Text(sub, Style{FontSize: 9, Italic: true, Color: "#555"}))
			}
			for _, b := range item.Bullets {
				entry.Append(bulletLine(b, 5))
			}
			main.Append(entry)
		}
	}

	page := &Page{
		Size:    A4,
		Content: []*Node{Box(Style{Row: true}, sidebar, main)},
	}
	return &Document{Pages: []*Page{page}}
}
