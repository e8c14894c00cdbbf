package export

import (
	"fmt"
	"html"
	"strings"

	"resumekit/models"
)

// MIMEHTML and MIMEText are the content types of the fallback artifacts
// served when the binary exporters are unavailable.
const (
	MIMEHTML = "text/html; charset=utf-8"
	MIMEText = "text/plain; charset=utf-8"
)

// GenerateHTML renders the legacy shape as a print-ready standalone page.
// It carries the same sections in the same order as the DOCX exporter, so a
// fallback download loses fidelity, not content.
func GenerateHTML(legacy models.LegacyResume) string {
	var b strings.Builder

	name := legacy.PersonalInfo.Name
	if name == "" {
		name = "Your Name"
	}

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>Resume - %s</title>\n", html.EscapeString(name))
	b.WriteString(`<style>
body { font-family: Arial, sans-serif; margin: 40px; line-height: 1.6; }
.header { text-align: center; margin-bottom: 30px; }
.name { font-size: 24px; font-weight: bold; margin-bottom: 10px; }
.contact { font-size: 14px; color: #666; }
.section { margin-bottom: 25px; }
.section-title { font-size: 18px; font-weight: bold; margin-bottom: 10px; border-bottom: 2px solid #333; padding-bottom: 5px; }
.experience-item { margin-bottom: 15px; }
.job-title { font-weight: bold; }
.company { color: #666; }
.duration { float: right; color: #666; }
.achievements li { margin-bottom: 3px; }
.skill-category strong { display: block; margin-bottom: 5px; }
@media print { body { margin: 20px; } }
</style>
</head>
<body>
`)

	b.WriteString("<div class=\"header\">\n")
	fmt.Fprintf(&b, "<div class=\"name\">%s</div>\n", html.EscapeString(name))
	contact := joinNonEmpty(" | ",
		legacy.PersonalInfo.Phone,
		legacy.PersonalInfo.Email,
		legacy.PersonalInfo.LinkedIn,
		legacy.PersonalInfo.GitHub,
	)
	fmt.Fprintf(&b, "<div class=\"contact\">%s</div>\n", html.EscapeString(contact))
	b.WriteString("</div>\n")

	if legacy.Summary != "" {
		openSection(&b, "Summary")
		fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(legacy.Summary))
		b.WriteString("</div>\n")
	}

	if legacy.Skills != nil {
		openSection(&b, "Skills")
		htmlSkillCategory(&b, "Languages & Databases:", legacy.Skills.Languages)
		htmlSkillCategory(&b, "Frameworks and Libraries:", legacy.Skills.Frameworks)
		htmlSkillCategory(&b, "Developer Tools:", legacy.Skills.Tools)
		b.WriteString("</div>\n")
	}

	if len(legacy.Experience) > 0 {
		openSection(&b, "Professional Experience")
		for _, exp := range legacy.Experience {
			b.WriteString("<div class=\"experience-item\">\n")
			fmt.Fprintf(&b, "<div class=\"job-title\">%s</div>\n", html.EscapeString(exp.Position))
			fmt.Fprintf(&b, "<div class=\"company\">%s <span class=\"duration\">%s</span></div>\n",
				html.EscapeString(exp.Company), html.EscapeString(exp.Duration))
			if len(exp.Achievements) > 0 {
				b.WriteString("<ul class=\"achievements\">\n")
				for _, achievement := range exp.Achievements {
					fmt.Fprintf(&b, "<li>%s</li>\n", html.EscapeString(achievement))
				}
				b.WriteString("</ul>\n")
			}
			b.WriteString("</div>\n")
		}
		b.WriteString("</div>\n")
	}

	if legacy.Education != nil {
		openSection(&b, "Education")
		b.WriteString("<div class=\"experience-item\">\n")
		fmt.Fprintf(&b, "<div class=\"job-title\">%s</div>\n", html.EscapeString(legacy.Education.Degree))
		fmt.Fprintf(&b, "<div class=\"company\">%s</div>\n", html.EscapeString(legacy.Education.University))
		fmt.Fprintf(&b, "<div class=\"company\">%s</div>\n", html.EscapeString(educationLine(legacy.Education)))
		b.WriteString("</div>\n</div>\n")
	}

	if len(legacy.Projects) > 0 {
		openSection(&b, "Projects")
		for _, project := range legacy.Projects {
			b.WriteString("<div class=\"experience-item\">\n")
			fmt.Fprintf(&b, "<div class=\"job-title\">%s</div>\n", html.EscapeString(project.Name))
			fmt.Fprintf(&b, "<div class=\"company\">%s</div>\n", html.EscapeString(project.Description))
			if len(project.Technologies) > 0 {
				fmt.Fprintf(&b, "<div class=\"company\">Technologies: %s</div>\n",
					html.EscapeString(strings.Join(project.Technologies, ", ")))
			}
			b.WriteString("</div>\n")
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// GenerateText renders the legacy shape as plain text with ruled section
// headings. Same content as the DOCX exporter, ASCII only.
func GenerateText(legacy models.LegacyResume) string {
	var b strings.Builder
	rule := strings.Repeat("=", 50)

	name := legacy.PersonalInfo.Name
	if name == "" {
		name = "Your Name"
	}
	b.WriteString(name + "\n")
	b.WriteString(joinNonEmpty(" | ",
		legacy.PersonalInfo.Phone,
		legacy.PersonalInfo.Email,
		legacy.PersonalInfo.LinkedIn,
		legacy.PersonalInfo.GitHub,
	) + "\n\n")

	if legacy.Summary != "" {
		fmt.Fprintf(&b, "SUMMARY\n%s\n%s\n\n", rule, legacy.Summary)
	}

	if legacy.Skills != nil {
		fmt.Fprintf(&b, "SKILLS\n%s\n", rule)
		if len(legacy.Skills.Languages) > 0 {
			fmt.Fprintf(&b, "Languages & Databases: %s\n", strings.Join(legacy.Skills.Languages, ", "))
		}
		if len(legacy.Skills.Frameworks) > 0 {
			fmt.Fprintf(&b, "Frameworks and Libraries: %s\n", strings.Join(legacy.Skills.Frameworks, ", "))
		}
		if len(legacy.Skills.Tools) > 0 {
			fmt.Fprintf(&b, "Developer Tools: %s\n", strings.Join(legacy.Skills.Tools, ", "))
		}
		b.WriteString("\n")
	}

	if len(legacy.Experience) > 0 {
		fmt.Fprintf(&b, "PROFESSIONAL EXPERIENCE\n%s\n", rule)
		for _, exp := range legacy.Experience {
			fmt.Fprintf(&b, "%s\n%s - %s\n", exp.Position, exp.Company, exp.Duration)
			for _, achievement := range exp.Achievements {
				fmt.Fprintf(&b, "• %s\n", achievement)
			}
			b.WriteString("\n")
		}
	}

	if legacy.Education != nil {
		fmt.Fprintf(&b, "EDUCATION\n%s\n%s\n%s\n%s\n\n",
			rule, legacy.Education.Degree, legacy.Education.University, educationLine(legacy.Education))
	}

	if len(legacy.Projects) > 0 {
		fmt.Fprintf(&b, "PROJECTS\n%s\n", rule)
		for _, project := range legacy.Projects {
			fmt.Fprintf(&b, "%s\n%s\n", project.Name, project.Description)
			if len(project.Technologies) > 0 {
				fmt.Fprintf(&b, "Technologies: %s\n", strings.Join(project.Technologies, ", "))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func openSection(b *strings.Builder, title string) {
	b.WriteString("<div class=\"section\">\n")
	fmt.Fprintf(b, "<div class=\"section-title\">%s</div>\n", title)
}

func htmlSkillCategory(b *strings.Builder, label string, skills []string) {
	if len(skills) == 0 {
		return
	}
	b.WriteString("<div class=\"skill-category\">\n")
	fmt.Fprintf(b, "<strong>%s</strong> %s\n", label, html.EscapeString(strings.Join(skills, ", ")))
	b.WriteString("</div>\n")
}

func educationLine(edu *models.LegacyEducation) string {
	line := edu.Year
	if edu.GPA != "" {
		line = joinNonEmpty(" • ", line, "GPA: "+edu.GPA)
	}
	return line
}
