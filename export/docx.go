package export

import (
	"io"
	"strings"

	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"
	"baliance.com/gooxml/schema/soo/wml"

	"resumekit/models"
)

// MIMEWord is the content type served for DOCX artifacts.
const MIMEWord = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Run sizes in points. The legacy exporter measured in half-points; these
// are the same values converted.
const (
	docxNameSize    = 16 * measurement.Point
	docxSectionSize = 12 * measurement.Point
	docxBodySize    = 11 * measurement.Point
	docxContactSize = 10 * measurement.Point
)

// GenerateDOCX builds a Word document from the legacy flat shape. The
// section order and headings are fixed; empty parts are skipped entirely.
func GenerateDOCX(legacy models.LegacyResume) *document.Document {
	doc := document.New()

	addCentered(doc, legacy.PersonalInfo.Name, docxNameSize, true)

	contact := joinNonEmpty(" • ",
		legacy.PersonalInfo.Phone,
		legacy.PersonalInfo.Email,
		legacy.PersonalInfo.LinkedIn,
		legacy.PersonalInfo.GitHub,
	)
	addCentered(doc, contact, docxContactSize, false)

	if legacy.Summary != "" {
		addHeading(doc, "SUMMARY")
		addBody(doc, legacy.Summary, false)
	}

	if legacy.Skills != nil {
		addHeading(doc, "SKILLS")
		addLabeled(doc, "Languages & Databases: ", strings.Join(legacy.Skills.Languages, ", "))
		addLabeled(doc, "Frameworks and Libraries: ", strings.Join(legacy.Skills.Frameworks, ", "))
		addLabeled(doc, "Developer Tools: ", strings.Join(legacy.Skills.Tools, ", "))
	}

	if len(legacy.Experience) > 0 {
		addHeading(doc, "PROFESSIONAL EXPERIENCE")
		for _, exp := range legacy.Experience {
			addBody(doc, exp.Position, true)
			addBody(doc, exp.Company, false)
			for _, achievement := range exp.Achievements {
				addBody(doc, "• "+achievement, false)
			}
		}
	}

	if legacy.Education != nil {
		addHeading(doc, "EDUCATION")
		addBody(doc, legacy.Education.Degree, true)
		addBody(doc, legacy.Education.University, false)
		line := legacy.Education.Year
		if legacy.Education.GPA != "" {
			line = joinNonEmpty(" • ", line, "GPA: "+legacy.Education.GPA)
		}
		addBody(doc, line, false)
	}

	if len(legacy.Projects) > 0 {
		addHeading(doc, "PROJECTS")
		for _, project := range legacy.Projects {
			addBody(doc, project.Name, true)
			addBody(doc, project.Description, false)
			if len(project.Technologies) > 0 {
				addBody(doc, "Technologies: "+strings.Join(project.Technologies, ", "), false)
			}
		}
	}

	return doc
}

// WriteDOCX adapts a canonical resume to the legacy shape and writes the
// resulting document.
func WriteDOCX(w io.Writer, r *models.Resume) error {
	doc := GenerateDOCX(models.ToLegacyShape(r))
	return doc.Save(w)
}

func addCentered(doc *document.Document, text string, size measurement.Distance, bold bool) {
	if text == "" {
		return
	}
	p := doc.AddParagraph()
	p.Properties().SetAlignment(wml.ST_JcCenter)
	run := p.AddRun()
	run.Properties().SetBold(bold)
	run.Properties().SetSize(size)
	run.AddText(text)
}

func addHeading(doc *document.Document, title string) {
	p := doc.AddParagraph()
	run := p.AddRun()
	run.Properties().SetBold(true)
	run.Properties().SetSize(docxSectionSize)
	run.AddText(title)
}

func addBody(doc *document.Document, text string, bold bool) {
	if text == "" {
		return
	}
	p := doc.AddParagraph()
	run := p.AddRun()
	run.Properties().SetBold(bold)
	run.Properties().SetSize(docxBodySize)
	run.AddText(text)
}

// addLabeled writes a "Label: value" paragraph with only the label bold.
// Empty values are skipped so unpopulated skill buckets leave no trace.
func addLabeled(doc *document.Document, label, value string) {
	if value == "" {
		return
	}
	p := doc.AddParagraph()
	labelRun := p.AddRun()
	labelRun.Properties().SetBold(true)
	labelRun.Properties().SetSize(docxBodySize)
	labelRun.AddText(label)
	valueRun := p.AddRun()
	valueRun.Properties().SetSize(docxBodySize)
	valueRun.AddText(value)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
