package export

import (
	"math"
	"strings"

	"resumekit/models"
)

// MIMEPDF is the content type served for PDF artifacts.
const MIMEPDF = "application/pdf"

// TextAlign selects horizontal anchoring for a drawn string.
type TextAlign string

const (
	AlignTextLeft   TextAlign = "left"
	AlignTextCenter TextAlign = "center"
	AlignTextRight  TextAlign = "right"
)

// TextOptions carries per-call drawing state.
type TextOptions struct {
	FontSize float64
	Bold     bool
	Align    TextAlign
}

// Canvas abstracts the PDF drawing surface. The production canvas positions
// text in a page rendered by the headless-browser engine; tests use the
// recorder. Coordinates are points with the origin at the top-left.
type Canvas interface {
	PageWidth() float64
	Text(text string, x, y float64, opts TextOptions)
	// SplitText wraps text to maxWidth at the given font size and returns
	// the resulting lines.
	SplitText(text string, maxWidth, fontSize float64) []string
}

// DrawPDF walks the legacy flat shape top to bottom, advancing a y cursor,
// and emits every string onto the canvas. The layout constants match the
// original single-page exporter; content past the page bottom is the
// caller's problem, exactly as it was there.
func DrawPDF(c Canvas, legacy models.LegacyResume, style models.StyleConfig) {
	pageWidth := c.PageWidth()
	marginPt := 20 * marginOrDefault(style)
	fontSize := style.FontSize
	if fontSize <= 0 {
		fontSize = 11
	}
	lineHeight := style.LineSpacing
	if lineHeight <= 0 {
		lineHeight = 1.2
	}

	y := marginPt

	c.Text(legacy.PersonalInfo.Name, pageWidth/2, y, TextOptions{FontSize: 16, Bold: true, Align: AlignTextCenter})
	y += 10

	contact := joinNonEmpty(" • ",
		legacy.PersonalInfo.Phone,
		legacy.PersonalInfo.Email,
		legacy.PersonalInfo.LinkedIn,
		legacy.PersonalInfo.GitHub,
	)
	c.Text(contact, pageWidth/2, y, TextOptions{FontSize: 10, Align: AlignTextCenter})
	y += 15

	if legacy.Summary != "" {
		y = drawHeading(c, "SUMMARY", marginPt, y)
		lines := c.SplitText(legacy.Summary, pageWidth-2*marginPt, fontSize)
		for _, line := range lines {
			c.Text(line, marginPt, y, TextOptions{FontSize: fontSize})
			y += fontSize * lineHeight
		}
		y += 5
	}

	if legacy.Skills != nil {
		y = drawHeading(c, "SKILLS", marginPt, y)
		y = drawSkillRow(c, "Languages & Databases: ", legacy.Skills.Languages, marginPt, y, fontSize)
		y = drawSkillRow(c, "Frameworks and Libraries: ", legacy.Skills.Frameworks, marginPt, y, fontSize)
		y = drawSkillRow(c, "Developer Tools: ", legacy.Skills.Tools, marginPt, y, fontSize)
		y += 5
	}

	if len(legacy.Experience) > 0 {
		y = drawHeading(c, "PROFESSIONAL EXPERIENCE", marginPt, y)
		for _, exp := range legacy.Experience {
			c.Text(exp.Position, marginPt, y, TextOptions{FontSize: fontSize, Bold: true})
			c.Text(exp.Duration, pageWidth-marginPt, y, TextOptions{FontSize: fontSize, Align: AlignTextRight})
			y += 5
			c.Text(exp.Company, marginPt, y, TextOptions{FontSize: fontSize})
			y += 8
			for _, achievement := range exp.Achievements {
				c.Text("• "+achievement, marginPt+10, y, TextOptions{FontSize: fontSize})
				y += 5
			}
			y += 5
		}
	}

	if legacy.Education != nil {
		y = drawHeading(c, "EDUCATION", marginPt, y)
		c.Text(legacy.Education.Degree, marginPt, y, TextOptions{FontSize: fontSize, Bold: true})
		y += 5
		c.Text(legacy.Education.University, marginPt, y, TextOptions{FontSize: fontSize})
		y += 5
		line := legacy.Education.Year
		if legacy.Education.GPA != "" {
			line = joinNonEmpty(" • ", line, "GPA: "+legacy.Education.GPA)
		}
		c.Text(line, marginPt, y, TextOptions{FontSize: fontSize})
		y += 10
	}

	if len(legacy.Projects) > 0 {
		y = drawHeading(c, "PROJECTS", marginPt, y)
		for _, project := range legacy.Projects {
			c.Text(project.Name, marginPt, y, TextOptions{FontSize: fontSize, Bold: true})
			y += 5
			c.Text(project.Description, marginPt, y, TextOptions{FontSize: fontSize})
			y += 5
			if len(project.Technologies) > 0 {
				c.Text("Technologies: "+strings.Join(project.Technologies, ", "), marginPt, y, TextOptions{FontSize: fontSize})
				y += 8
			}
		}
	}
}

func drawHeading(c Canvas, title string, x, y float64) float64 {
	c.Text(title, x, y, TextOptions{FontSize: 12, Bold: true})
	return y + 8
}

func drawSkillRow(c Canvas, label string, skills []string, x, y, fontSize float64) float64 {
	if len(skills) == 0 {
		return y
	}
	c.Text(label, x, y, TextOptions{FontSize: fontSize, Bold: true})
	c.Text(strings.Join(skills, ", "), x+60, y, TextOptions{FontSize: fontSize})
	return y + 6
}

func marginOrDefault(style models.StyleConfig) float64 {
	if style.MarginInches > 0 {
		return style.MarginInches
	}
	return 1
}

// TextOp is one recorded drawing call.
type TextOp struct {
	Text string
	X, Y float64
	Opts TextOptions
}

// Recorder is a Canvas that records operations instead of drawing them.
// Tests assert against the op stream; the fallback exporters reuse it to
// enumerate drawable text.
type Recorder struct {
	Width float64
	Ops   []TextOp
}

// NewRecorder returns a recorder sized to an A4 page in points.
func NewRecorder() *Recorder {
	return &Recorder{Width: 595.28}
}

func (r *Recorder) PageWidth() float64 { return r.Width }

func (r *Recorder) Text(text string, x, y float64, opts TextOptions) {
	if text == "" {
		return
	}
	r.Ops = append(r.Ops, TextOp{Text: text, X: x, Y: y, Opts: opts})
}

// SplitText wraps on an average glyph width of roughly half the font size.
// That is the same approximation the measurement-free exporter used, and it
// only has to be stable, not typographically exact.
func (r *Recorder) SplitText(text string, maxWidth, fontSize float64) []string {
	if text == "" {
		return nil
	}
	charWidth := fontSize * 0.5
	perLine := int(math.Max(1, maxWidth/charWidth))

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > perLine {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}

// Strings returns the recorded texts in draw order.
func (r *Recorder) Strings() []string {
	out := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		out[i] = op.Text
	}
	return out
}
