package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resumekit/export"
)

func TestHTMLCanvasPositionsText(t *testing.T) {
	c := NewHTMLCanvas("Helvetica")

	c.Text("left text", 20, 100, export.TextOptions{FontSize: 11})
	c.Text("centered", 0, 40, export.TextOptions{FontSize: 16, Bold: true, Align: export.AlignTextCenter})
	c.Text("right edge", 575, 100, export.TextOptions{FontSize: 11, Align: export.AlignTextRight})
	c.Text("", 0, 0, export.TextOptions{})

	page := c.Page()

	assert.Contains(t, page, "left:20.00pt")
	assert.Contains(t, page, "text-align:center")
	assert.Contains(t, page, "text-align:right")
	assert.Contains(t, page, "font-weight:bold")
	assert.Contains(t, page, "@page { size: A4; margin: 0; }")
	assert.Contains(t, page, "Helvetica")
	// Empty strings draw nothing.
	assert.Equal(t, 3, strings.Count(page, "position:absolute"))
}

func TestHTMLCanvasEscapesText(t *testing.T) {
	c := NewHTMLCanvas("")
	c.Text("<b>& more</b>", 0, 20, export.TextOptions{FontSize: 11})

	page := c.Page()
	assert.NotContains(t, page, "<b>& more</b>")
	assert.Contains(t, page, "&lt;b&gt;&amp; more&lt;/b&gt;")
}

func TestHTMLCanvasDefaultFont(t *testing.T) {
	c := NewHTMLCanvas("")
	assert.Contains(t, c.Page(), "font-family: Helvetica")
	assert.Equal(t, 595.28, c.PageWidth())
}
