package services

import (
	"fmt"
	"html"
	"strings"

	"resumekit/export"
)

// HTMLCanvas implements export.Canvas by emitting absolutely positioned
// text nodes. The resulting page reproduces the canvas exporter's layout
// exactly, which is what the headless browser then prints to PDF.
type HTMLCanvas struct {
	width      float64
	height     float64
	fontFamily string
	body       strings.Builder
}

// NewHTMLCanvas returns a canvas sized to an A4 page in points.
func NewHTMLCanvas(fontFamily string) *HTMLCanvas {
	if fontFamily == "" {
		fontFamily = "Helvetica"
	}
	return &HTMLCanvas{width: 595.28, height: 841.89, fontFamily: fontFamily}
}

func (c *HTMLCanvas) PageWidth() float64 { return c.width }

func (c *HTMLCanvas) Text(text string, x, y float64, opts export.TextOptions) {
	if text == "" {
		return
	}
	fontSize := opts.FontSize
	if fontSize <= 0 {
		fontSize = 11
	}
	weight := "normal"
	if opts.Bold {
		weight = "bold"
	}

	// The drawing origin is the text baseline; CSS positions the box top,
	// so the y offset backs up by the font size.
	style := fmt.Sprintf("position:absolute;top:%.2fpt;font-size:%.1fpt;font-weight:%s;white-space:nowrap;", y-fontSize, fontSize, weight)
	switch opts.Align {
	case export.AlignTextCenter:
		style += fmt.Sprintf("left:0;width:%.2fpt;text-align:center;", c.width)
	case export.AlignTextRight:
		style += fmt.Sprintf("right:%.2fpt;text-align:right;", c.width-x)
	default:
		style += fmt.Sprintf("left:%.2fpt;", x)
	}

	fmt.Fprintf(&c.body, "<div style=\"%s\">%s</div>\n", style, html.EscapeString(text))
}

// SplitText wraps on an average glyph width of roughly half the font size,
// the same approximation the recorder uses, so both canvases agree on line
// breaks.
func (c *HTMLCanvas) SplitText(text string, maxWidth, fontSize float64) []string {
	rec := export.Recorder{Width: c.width}
	return rec.SplitText(text, maxWidth, fontSize)
}

// Page assembles the final standalone HTML document.
func (c *HTMLCanvas) Page() string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
@page { size: A4; margin: 0; }
body { margin: 0; font-family: %s, Arial, sans-serif; position: relative; width: %.2fpt; height: %.2fpt; }
</style>
</head>
<body>
%s</body>
</html>
`, c.fontFamily, c.width, c.height, c.body.String())
}
