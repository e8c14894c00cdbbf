package render

import "resumekit/models"

// Shared single-column section builders used by the classic, clean, and
// professional strategies. Each builder returns nil for empty input so the
// callers can skip whole sections.

// flowSection renders one section: title, then a body dispatched on the
// section id. Unrecognized ids fall through to the generic entry renderer.
func flowSection(s *models.Section, titleStyle Style) *Node {
	if sectionEmpty(s) {
		return nil
	}

	section := Box(Style{MarginBottom: 12})
	section.Append(Text(s.Title, titleStyle))

	switch s.ID {
	case "summary":
		section.Append(Text(s.Content, Style{LineHeight: 1.4}))
	case "skills":
		line := joinSkills(s.Items, " • ")
		if line == "" {
			return nil
		}
		section.Append(Text(line, Style{}))
	case "experience":
		for i := range s.Items {
			section.Append(experienceEntry(&s.Items[i]))
		}
	default:
		if s.Content != "" {
			section.Append(Text(s.Content, Style{LineHeight: 1.4}))
			break
		}
		for i := range s.Items {
			section.Append(genericEntry(&s.Items[i]))
		}
	}
	return section
}

// experienceEntry draws one role: a header line with the date right-aligned,
// the company line, then the bullet list.
func experienceEntry(item *models.Item) *Node {
	entry := Box(Style{MarginBottom: 8})
	entry.Append(Box(Style{Row: true, SpaceBetween: true},
		Text(item.Role, Style{Bold: true, FontSize: 11}),
		Text(dateRange(item), Style{FontSize: 9, Align: AlignRight}),
	))
	subtitle := item.Company
	if item.Location != "" {
		subtitle += ", " + item.Location
	}
	if subtitle != "" {
		entry.Append(Text(subtitle, Style{FontSize: 10, Italic: true}))
	}
	for _, b := range item.Bullets {
		entry.Append(bulletLine(b, 12))
	}
	return entry
}

// genericEntry covers education, projects, and custom sections: a
// title/date header, a subtitle, and an optional description.
func genericEntry(item *models.Item) *Node {
	entry := Box(Style{MarginBottom: 6})
	entry.Append(Box(Style{Row: true, SpaceBetween: true},
		Text(item.EntryTitle(), Style{Bold: true, FontSize: 11}),
		Text(item.Year, Style{FontSize: 9, Align: AlignRight}),
	))
	if sub := item.EntrySubtitle(); sub != "" {
		entry.Append(Text(sub, Style{FontSize: 10, Italic: true}))
	}
	if item.Description != "" {
		entry.Append(Text(item.Description, Style{FontSize: 10}))
	}
	return entry
}

// bulletLine is one glyph plus the untruncated bullet text; wrapping is the
// backend's job.
func bulletLine(text string, indent float64) *Node {
	return Box(Style{Row: true, MarginLeft: indent},
		Text("•", Style{FontSize: 10}),
		Text(text, Style{FontSize: 10, LineHeight: 1.3, MarginLeft: 5}),
	)
}

func contactNode(p models.PersonalInfo, style Style) *Node {
	line := ContactLine(p)
	if line == "" {
		return nil
	}
	return Text(line, style)
}
