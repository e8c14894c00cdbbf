package render

import (
	"strings"

	"resumekit/models"
)

// stitchTemplate is the dense default layout. Unlike the other strategies
// it dispatches on the normalized section kind (type falling back to id)
// with substring matching, so sections carrying descriptive but
// non-canonical ids ("work-experience", "grad-education") still land in the
// right renderer. Anything left over that carries items goes through the
// generic entry renderer.
type stitchTemplate struct{}

func (stitchTemplate) Name() string { return "stitch" }

func (stitchTemplate) Render(r *models.Resume) *Document {
	page := &Page{Size: A4}

	header := Box(Style{Align: AlignCenter, MarginBottom: 10})
	header.Append(
		Text(r.PersonalInfo.Name, Style{FontSize: 16, Bold: true, Uppercase: true, MarginBottom: 4}),
		contactNode(r.PersonalInfo, Style{FontSize: 10}),
	)
	page.Content = append(page.Content, header)

	for i := range r.Sections {
		if node := stitchSection(&r.Sections[i]); node != nil {
			page.Content = append(page.Content, node)
		}
	}

	return &Document{Pages: []*Page{page}}
}

var stitchTitleStyle = Style{
	FontSize:     11,
	Bold:         true,
	Uppercase:    true,
	BorderBottom: true,
	MarginBottom: 6,
}

func stitchSection(s *models.Section) *Node {
	if sectionEmpty(s) {
		return nil
	}

	kind := s.Kind()
	section := Box(Style{MarginBottom: 8})
	section.Append(Text(s.Title, stitchTitleStyle))

	switch {
	case kind == "summary" || s.ID == "summary":
		if s.Content == "" {
			return nil
		}
		section.Append(Text(s.Content, Style{LineHeight: 1.3}))

	case strings.Contains(kind, "education") || s.ID == "education":
		for i := range s.Items {
			item := &s.Items[i]
			entry := Box(Style{MarginBottom: 4})
			entry.Append(Box(Style{Row: true, SpaceBetween: true},
				Text(item.EducationSchool(), Style{FontSize: 10.5, Bold: true}),
				Text(item.Year, Style{FontSize: 10.5, Align: AlignRight}),
			))
			entry.Append(Box(Style{Row: true, SpaceBetween: true},
				Text(item.EducationTitle(), Style{FontSize: 10.5, Italic: true}),
				Text(item.Location, Style{FontSize: 10.5, Italic: true, Align: AlignRight}),
			))
			section.Append(entry)
		}

	case strings.Contains(kind, "experience") || s.ID == "experience":
		for i := range s.Items {
			item := &s.Items[i]
			entry := Box(Style{MarginBottom: 8})
			heading := item.Role
			if item.Company != "" {
				heading += " | " + item.Company
			}
			entry.Append(Box(Style{Row: true, SpaceBetween: true},
				Text(heading, Style{FontSize: 10.5, Bold: true}),
				Text(dateRange(item), Style{FontSize: 10.5, Align: AlignRight}),
			))
			for _, b := range item.Bullets {
				entry.Append(bulletLine(b, 15))
			}
			section.Append(entry)
		}

	case strings.Contains(kind, "projects") || s.ID == "projects":
		for i := range s.Items {
			item := &s.Items[i]
			entry := Box(Style{MarginBottom: 6})
			entry.Append(Text(item.Title, Style{FontSize: 10.5, Bold: true}))
			if item.Description != "" {
				entry.Append(Text(item.Description, Style{FontSize: 10.5, MarginBottom: 2}))
			}
			if len(item.Technologies) > 0 {
				entry.Append(Text("Technologies: "+strings.Join(item.Technologies, ", "),
					Style{FontSize: 10.5, Italic: true}))
			}
			section.Append(entry)
		}

	case strings.Contains(kind, "skills") || s.ID == "skills":
		line := joinSkills(s.Items, ", ")
		if line == "" {
			return nil
		}
		section.Append(Text(line, Style{FontSize: 10.5, LineHeight: 1.4}))

	default:
		if len(s.Items) == 0 {
			return nil
		}
		for i := range s.Items {
			section.Append(genericEntry(&s.Items[i]))
		}
	}

	return section
}
