package export

import (
	"fmt"
	"math"
	"strings"

	"resumekit/models"
	"resumekit/render"
)

// LatexOutput is the result of a LaTeX generation pass.
type LatexOutput struct {
	Content  string        `json:"content"`
	Template LatexTemplate `json:"template"`
	Filename string        `json:"filename"`
}

// GenerateLaTeX renders the resume into one of the catalog templates.
// An unknown template name falls back to the classic template rather
// than erroring, so stale template ids saved in old resumes still export.
func GenerateLaTeX(r *models.Resume, templateName string, style models.StyleConfig) (*LatexOutput, error) {
	if r == nil {
		return nil, fmt.Errorf("generate latex: nil resume")
	}

	tpl := latexTemplateByID(templateName)
	body, ok := latexBodies[tpl.SourceFile]
	if !ok {
		return nil, fmt.Errorf("generate latex: template source %s not found", tpl.SourceFile)
	}

	content := processTemplate(body, r, style, tpl.ID)
	return &LatexOutput{
		Content:  content,
		Template: tpl,
		Filename: fmt.Sprintf("resume-%s.tex", tpl.ID),
	}, nil
}

func latexTemplateByID(id string) LatexTemplate {
	for _, t := range latexCatalog {
		if t.ID == id {
			return t
		}
	}
	return latexCatalog[0]
}

// cventryForm reports whether the template renders entries through the
// CV-class \cventry command instead of the plain article forms.
func cventryForm(templateID string) bool {
	return templateID == "modern" || templateID == "altacv"
}

func processTemplate(body string, r *models.Resume, style models.StyleConfig, templateID string) string {
	processed := strings.Replace(body, "<<STYLE_BLOCK>>", buildStyleBlock(style), 1)

	var skills []string
	if s := r.SectionByID("skills"); s != nil {
		skills = render.FlattenSkills(s.Items)
	}
	// Positional thirds: the store keeps skills as one flat list, so the
	// category split is by position, not by classification.
	languages, frameworks, tools := splitSkillThirds(skills)

	summary := ""
	if s := r.SectionByID("summary"); s != nil {
		summary = s.Content
	}

	replacements := map[string]string{
		"<<NAME>>":       fallbackStr(r.PersonalInfo.Name, "Your Name"),
		"<<TITLE>>":      fallbackStr(r.PersonalInfo.Title, "Software Engineer"),
		"<<ADDRESS>>":    fallbackStr(r.PersonalInfo.Location, "Your City, State"),
		"<<PHONE>>":      fallbackStr(r.PersonalInfo.Phone, "Your Phone"),
		"<<EMAIL>>":      fallbackStr(r.PersonalInfo.Email, "your.email@example.com"),
		"<<LINKEDIN>>":   r.PersonalInfo.LinkedIn,
		"<<GITHUB>>":     r.PersonalInfo.GitHub,
		"<<LOCATION>>":   fallbackStr(r.PersonalInfo.Location, "Your City, State"),
		"<<SUMMARY>>":    fallbackStr(summary, "Professional summary goes here."),
		"<<LANGUAGES>>":  fallbackStr(languages, "JavaScript, Python, Java"),
		"<<FRAMEWORKS>>": fallbackStr(frameworks, "React, Node.js, Express"),
		"<<TOOLS>>":      fallbackStr(tools, "Git, Docker, AWS"),
	}
	for placeholder, value := range replacements {
		processed = strings.ReplaceAll(processed, placeholder, value)
	}

	processed = strings.Replace(processed, "<<EXPERIENCE>>", renderExperience(sectionItems(r, "experience"), style, templateID), 1)
	processed = strings.Replace(processed, "<<EDUCATION>>", renderEducation(sectionItems(r, "education"), templateID), 1)
	processed = strings.Replace(processed, "<<PROJECTS>>", renderProjects(sectionItems(r, "projects"), templateID), 1)

	return processed
}

func sectionItems(r *models.Resume, id string) []models.Item {
	if s := r.SectionByID(id); s != nil {
		return s.Items
	}
	return nil
}

// splitSkillThirds slices a flat skill list into three positional groups
// using ceiling boundaries, so leftovers land in the earlier groups.
func splitSkillThirds(skills []string) (languages, frameworks, tools string) {
	n := len(skills)
	if n == 0 {
		return "", "", ""
	}
	first := int(math.Ceil(float64(n) / 3))
	second := int(math.Ceil(2 * float64(n) / 3))
	languages = strings.Join(skills[:first], ", ")
	frameworks = strings.Join(skills[first:second], ", ")
	tools = strings.Join(skills[second:], ", ")
	return languages, frameworks, tools
}

func fallbackStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func renderExperience(items []models.Item, style models.StyleConfig, templateID string) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	for i := range items {
		exp := &items[i]
		if cventryForm(templateID) {
			fmt.Fprintf(&b, `\cventry{%s -- %s}{%s}{%s}{%s}{}{`,
				exp.StartDate,
				fallbackStr(exp.EndDate, "Present"),
				fallbackStr(exp.Role, "Position"),
				fallbackStr(exp.Company, "Company"),
				fallbackStr(exp.Location, "Location"))
		} else {
			fmt.Fprintf(&b, "\\textbf{%s} \\hfill %s -- %s \\\\\n\\textit{%s, %s} \\\\\n",
				fallbackStr(exp.Role, "Position"),
				exp.StartDate,
				fallbackStr(exp.EndDate, "Present"),
				fallbackStr(exp.Company, "Company"),
				fallbackStr(exp.Location, "Location"))
		}

		if len(exp.Bullets) > 0 {
			fmt.Fprintf(&b, "\\begin{itemize}[leftmargin=%s, itemsep=%gpt, topsep=%gpt, parsep=0pt]\n",
				style.ListLeftMargin, style.ItemSpacingPt, style.ListTopSepPt)
			for _, bullet := range exp.Bullets {
				fmt.Fprintf(&b, "\\item %s\n", EscapeForMarkup(bullet))
			}
			b.WriteString("\\end{itemize}\n")
		}

		if cventryForm(templateID) {
			b.WriteString("}\n\n")
		} else {
			b.WriteString("\n\\vspace{5pt}\n")
		}
	}
	return b.String()
}

func renderEducation(items []models.Item, templateID string) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	for i := range items {
		edu := &items[i]
		gpa := ""
		if edu.GPA != "" {
			gpa = "GPA: " + edu.GPA
		}
		if cventryForm(templateID) {
			fmt.Fprintf(&b, "\\cventry{%s}{%s}{%s}{%s}{%s}{}\n",
				fallbackStr(edu.Year, "Year"),
				fallbackStr(edu.EducationTitle(), "Degree"),
				fallbackStr(edu.EducationSchool(), "University"),
				fallbackStr(edu.Location, "Location"),
				gpa)
		} else {
			fmt.Fprintf(&b, "\\textbf{%s} \\hfill %s \\\\\n%s \\hfill %s \\\\\n%s\n",
				fallbackStr(edu.EducationSchool(), "University"),
				fallbackStr(edu.Location, "Location"),
				fallbackStr(edu.EducationTitle(), "Degree"),
				fallbackStr(edu.Year, "Year"),
				gpa)
		}
	}
	return b.String()
}

func renderProjects(items []models.Item, templateID string) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	for i := range items {
		project := &items[i]
		if cventryForm(templateID) {
			fmt.Fprintf(&b, "\\cventry{%s}{%s}{%s}{}{}{%s}\n\n",
				project.Year,
				fallbackStr(project.Title, "Project Name"),
				project.Subtitle,
				fallbackStr(project.Description, "Project description."))
		} else {
			fmt.Fprintf(&b, "\\textbf{%s} \\hfill %s \\\\\n\\textit{%s} \\\\\n%s\n\\vspace{5pt}\n",
				fallbackStr(project.Title, "Project Name"),
				project.Year,
				project.Subtitle,
				fallbackStr(project.Description, "Project description."))
		}
	}
	return b.String()
}

// buildStyleBlock renders the injected style fragment from a StyleConfig.
// Every value is substituted with a usable default so a zero style still
// produces a compilable block.
func buildStyleBlock(style models.StyleConfig) string {
	bulletMap := map[string]string{
		"bullet": `\textbullet`,
		"dash":   "–",
		"arrow":  "→",
	}
	bulletCmd, ok := bulletMap[style.BulletStyle]
	if !ok {
		bulletCmd = `\textbullet`
	}

	lineSpacing := style.LineSpacing
	if lineSpacing <= 0 {
		lineSpacing = 1.2
	}
	leftMargin := style.ListLeftMargin
	if leftMargin == "" {
		leftMargin = "*"
	}

	lines := []string{
		"% === dynamic style block (injected) ===",
		`\usepackage{enumitem}`,
	}
	if style.MarginInches > 0 {
		lines = append(lines, fmt.Sprintf(`\usepackage[margin=%gin]{geometry}`, style.MarginInches))
	}
	lines = append(lines,
		fmt.Sprintf(`\linespread{%g}`, lineSpacing),
		fmt.Sprintf(`\setlist[itemize]{leftmargin=%s, itemsep=%gpt, topsep=%gpt, parsep=0pt, partopsep=0pt}`,
			leftMargin, style.ItemSpacingPt, style.ListTopSepPt),
		fmt.Sprintf(`\renewcommand\labelitemi{%s}`, bulletCmd),
		`\makeatletter`,
		fmt.Sprintf(`\g@addto@macro\section{\vspace{%gpt}}`, style.SectionSpacingPt),
		`\makeatother`,
		"% === end dynamic style block ===",
	)
	return strings.Join(lines, "\n")
}

// EscapeForMarkup is the hook for escaping user text before it lands in a
// template body. It currently passes text through unchanged: resume content
// is trusted input from the editor, and escaping LaTeX control sequences
// would break users who intentionally include markup in their bullets.
func EscapeForMarkup(s string) string {
	return s
}
