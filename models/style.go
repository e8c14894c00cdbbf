package models

// StyleConfig parametrizes otherwise-fixed export templates: spacing,
// margins, bullet glyph, font. It is pure configuration, consumed and never
// mutated by the exporters.
type StyleConfig struct {
	FontFamily       string  `json:"fontFamily"`
	FontSize         float64 `json:"fontSize"`
	LineSpacing      float64 `json:"lineSpacing"`
	SectionSpacingPt float64 `json:"sectionSpacingPt"`
	ItemSpacingPt    float64 `json:"itemSpacingPt"`
	ListTopSepPt     float64 `json:"listTopSepPt"`
	ListLeftMargin   string  `json:"listLeftMargin"`
	BulletStyle      string  `json:"bulletStyle"`
	MarginInches     float64 `json:"marginInches"`
}

// DefaultStyle mirrors the editor defaults.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		FontFamily:       "Helvetica",
		FontSize:         11,
		LineSpacing:      1.2,
		SectionSpacingPt: 12,
		ItemSpacingPt:    2,
		ListTopSepPt:     2,
		ListLeftMargin:   "*",
		BulletStyle:      "bullet",
		MarginInches:     0.75,
	}
}

// StyleFromResume derives the export style from the presentation knobs
// carried on the resume itself, falling back to defaults where a knob is
// unset.
func StyleFromResume(r *Resume) StyleConfig {
	style := DefaultStyle()
	if r == nil {
		return style
	}
	if r.Font != "" {
		style.FontFamily = r.Font
	}
	if r.Spacing > 0 {
		style.LineSpacing = r.Spacing
	}
	if r.Margin.Left > 0 {
		style.MarginInches = r.Margin.Left
	}
	return style
}
