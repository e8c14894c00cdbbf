package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"resumekit/models"
)

// MIMEJSON is the content type served for JSON artifacts.
const MIMEJSON = "application/json"

// ErrBackendUnavailable reports that a binary export backend (the
// headless-browser PDF engine) cannot run. Callers respond by serving the
// HTML/text fallback instead of failing the export.
var ErrBackendUnavailable = errors.New("export backend unavailable")

// ExportJSON serializes the canonical resume with two-space indentation,
// matching the editor's save format byte for byte.
func ExportJSON(r *models.Resume) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("export json: nil resume")
	}
	return json.MarshalIndent(r, "", "  ")
}

// Filename derives a deterministic artifact name from the resume owner's
// name, e.g. "Jane Q. Doe" -> "jane-q-doe-resume.pdf". A missing name
// yields "resume.<ext>".
func Filename(r *models.Resume, ext string) string {
	base := "resume"
	if r != nil && r.PersonalInfo.Name != "" {
		slug := slugify(r.PersonalInfo.Name)
		if slug != "" {
			base = slug + "-resume"
		}
	}
	return base + "." + strings.TrimPrefix(ext, ".")
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
