package parsers

import (
	"fmt"
	"regexp"
	"strings"

	"resumekit/models"
)

// TextParser recovers a canonical Resume from free-form resume text. It is
// the fallback path for AI responses that were supposed to be JSON but came
// back as prose, and for pasted plain-text resumes.
type TextParser struct {
	emailRegex *regexp.Regexp
	phoneRegex *regexp.Regexp
	dateRegex  *regexp.Regexp
	wordRegex  *regexp.Regexp
	spaceRegex *regexp.Regexp
	digitRegex *regexp.Regexp
}

// NewTextParser creates a parser with compiled regexes.
func NewTextParser() *TextParser {
	return &TextParser{
		emailRegex: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`),
		phoneRegex: regexp.MustCompile(`(\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`),
		dateRegex:  regexp.MustCompile(`(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*[\s,]*\d{4}|(\d{1,2}[\/\-]\d{1,2}[\/\-]\d{2,4})|(\d{4}[\s\-]\d{4})|present|current|now`),
		wordRegex:  regexp.MustCompile(`^[A-Za-z'-]+$`),
		spaceRegex: regexp.MustCompile(`\s+`),
		digitRegex: regexp.MustCompile(`\D`),
	}
}

// sectionHeaders maps canonical section ids to the headings that introduce
// them in typical resume text.
var sectionHeaders = map[string][]string{
	"experience": {"experience", "work experience", "employment", "professional experience", "career history"},
	"education":  {"education", "academic background", "qualifications", "degrees"},
	"skills":     {"skills", "technical skills", "competencies", "expertise", "technologies"},
	"summary":    {"summary", "profile", "objective", "about", "professional summary", "career summary"},
	"projects":   {"projects", "portfolio", "personal projects"},
}

var sectionTitles = map[string]string{
	"summary":    "Summary",
	"experience": "Professional Experience",
	"education":  "Education",
	"skills":     "Skills",
	"projects":   "Projects",
}

// Parse extracts a canonical Resume from raw text. The result still goes
// through Sanitize at the pipeline boundary like every other input.
func (p *TextParser) Parse(rawText string) (*models.Resume, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, fmt.Errorf("empty resume text")
	}

	resume := &models.Resume{Sections: []models.Section{}}
	p.extractContactInfo(resume, rawText)

	blocks := p.splitSections(rawText)

	if text, ok := blocks["summary"]; ok {
		resume.Sections = append(resume.Sections, models.Section{
			ID: "summary", Title: sectionTitles["summary"], Content: strings.TrimSpace(text),
		})
	}
	if items := p.parseExperience(blocks["experience"]); len(items) > 0 {
		resume.Sections = append(resume.Sections, models.Section{
			ID: "experience", Title: sectionTitles["experience"], Items: items,
		})
	}
	if items := p.parseEducation(blocks["education"]); len(items) > 0 {
		resume.Sections = append(resume.Sections, models.Section{
			ID: "education", Title: sectionTitles["education"], Items: items,
		})
	}
	if items := p.parseSkills(blocks["skills"]); len(items) > 0 {
		resume.Sections = append(resume.Sections, models.Section{
			ID: "skills", Title: sectionTitles["skills"], Items: items,
		})
	}

	resume.Normalize()
	return resume, nil
}

// extractContactInfo pulls name, email, and phone out of the header lines.
func (p *TextParser) extractContactInfo(resume *models.Resume, text string) {
	lines := strings.Split(text, "\n")

	if email := p.emailRegex.FindString(text); email != "" {
		resume.PersonalInfo.Email = email
	}
	if phone := p.phoneRegex.FindString(text); phone != "" {
		resume.PersonalInfo.Phone = p.normalizePhone(phone)
	}

	// The name is usually within the first few lines.
	for i, line := range lines {
		if i > 5 {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.Contains(line, "@") || p.phoneRegex.MatchString(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) >= 2 && len(words) <= 4 {
			isName := true
			for _, word := range words {
				if len(word) < 2 || !p.wordRegex.MatchString(word) {
					isName = false
					break
				}
			}
			if isName {
				resume.PersonalInfo.Name = line
				break
			}
		}
	}
}

// splitSections groups the text into blocks keyed by canonical section id.
func (p *TextParser) splitSections(text string) map[string]string {
	blocks := make(map[string]string)
	lines := strings.Split(text, "\n")

	currentSection := ""
	var currentContent []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		isHeader := false
		for sectionID, headers := range sectionHeaders {
			for _, header := range headers {
				if strings.Contains(strings.ToLower(line), header) && len(line) < 50 {
					if currentSection != "" && len(currentContent) > 0 {
						blocks[currentSection] = strings.Join(currentContent, "\n")
					}
					currentSection = sectionID
					currentContent = nil
					isHeader = true
					break
				}
			}
			if isHeader {
				break
			}
		}

		if !isHeader && currentSection != "" {
			currentContent = append(currentContent, line)
		}
	}

	if currentSection != "" && len(currentContent) > 0 {
		blocks[currentSection] = strings.Join(currentContent, "\n")
	}

	return blocks
}

// parseExperience turns an experience block into experience items.
func (p *TextParser) parseExperience(text string) []models.Item {
	if text == "" {
		return nil
	}

	var items []models.Item
	var current *models.Item

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if p.looksLikeJobHeader(line) {
			if current != nil {
				items = append(items, *current)
			}
			current = &models.Item{}
			p.parseJobHeader(current, line)
		} else if current != nil {
			bullet := strings.TrimSpace(strings.TrimLeft(line, "•-* "))
			if bullet != "" {
				current.Bullets = append(current.Bullets, bullet)
			}
		}
	}

	if current != nil {
		items = append(items, *current)
	}
	return items
}

// looksLikeJobHeader reports whether a line resembles a role/company header
// such as "Software Engineer at Google" or "Data Scientist - Facebook, 2020".
func (p *TextParser) looksLikeJobHeader(line string) bool {
	for _, keyword := range []string{" at ", " with ", "|", " - ", "•"} {
		if strings.Contains(line, keyword) {
			return true
		}
	}
	if p.dateRegex.MatchString(line) {
		return true
	}
	// Short lines are usually titles.
	return len(strings.Fields(line)) <= 6 && len(line) > 10
}

// parseJobHeader extracts role, company, and dates from a header line.
func (p *TextParser) parseJobHeader(item *models.Item, line string) {
	dates := p.dateRegex.FindAllString(line, -1)
	switch {
	case len(dates) >= 2:
		item.StartDate = dates[0]
		item.EndDate = dates[len(dates)-1]
		for _, date := range dates {
			line = strings.Replace(line, date, "", 1)
		}
	case len(dates) == 1:
		lower := strings.ToLower(dates[0])
		if strings.Contains(lower, "present") || strings.Contains(lower, "current") || strings.Contains(lower, "now") {
			item.EndDate = "Present"
		} else {
			item.StartDate = dates[0]
		}
		line = strings.Replace(line, dates[0], "", 1)
	}

	line = p.spaceRegex.ReplaceAllString(strings.TrimSpace(line), " ")

	for _, sep := range []string{" at ", " with ", " | ", " - ", " • "} {
		if strings.Contains(line, sep) {
			parts := strings.SplitN(line, sep, 2)
			item.Role = strings.TrimSpace(parts[0])
			item.Company = strings.TrimSpace(strings.Trim(parts[1], " ,-"))
			return
		}
	}
	item.Role = strings.Trim(line, " ,-")
}

// parseEducation turns an education block into education items.
func (p *TextParser) parseEducation(text string) []models.Item {
	if text == "" {
		return nil
	}

	degreeKeywords := []string{"bachelor", "master", "phd", "doctorate", "associate", "b.s.", "b.a.", "m.s.", "m.a.", "mba"}

	var items []models.Item
	var current *models.Item

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		hasDegree := false
		lower := strings.ToLower(line)
		for _, keyword := range degreeKeywords {
			if strings.Contains(lower, keyword) {
				hasDegree = true
				break
			}
		}

		if hasDegree || p.dateRegex.MatchString(line) {
			if current != nil {
				items = append(items, *current)
			}
			current = &models.Item{}
			p.parseEducationLine(current, line)
		} else if current != nil && current.School == "" {
			current.School = line
		}
	}

	if current != nil {
		items = append(items, *current)
	}
	return items
}

// parseEducationLine extracts degree and year from a single line.
func (p *TextParser) parseEducationLine(item *models.Item, line string) {
	dates := p.dateRegex.FindAllString(line, -1)
	if len(dates) > 0 {
		item.Year = dates[len(dates)-1]
		for _, date := range dates {
			line = strings.Replace(line, date, "", 1)
		}
	}

	line = strings.Trim(strings.TrimSpace(line), ",-")
	if idx := strings.Index(line, ","); idx >= 0 {
		item.Degree = strings.TrimSpace(line[:idx])
		item.School = strings.TrimSpace(line[idx+1:])
	} else {
		item.Degree = strings.TrimSpace(line)
	}
}

// parseSkills splits a skills block on the common delimiters.
func (p *TextParser) parseSkills(text string) []models.Item {
	if text == "" {
		return nil
	}

	text = strings.NewReplacer(",", "\n", ";", "\n", "|", "\n").Replace(text)

	var items []models.Item
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "•-*"))
		if line != "" && len(line) > 1 && len(line) < 50 {
			items = append(items, models.Item{Label: line})
		}
	}
	return items
}

// normalizePhone standardizes US phone number formats.
func (p *TextParser) normalizePhone(phone string) string {
	digits := p.digitRegex.ReplaceAllString(phone, "")

	if len(digits) == 10 {
		return fmt.Sprintf("(%s) %s-%s", digits[0:3], digits[3:6], digits[6:10])
	} else if len(digits) == 11 && digits[0] == '1' {
		return fmt.Sprintf("+1 (%s) %s-%s", digits[1:4], digits[4:7], digits[7:11])
	}

	return phone
}
