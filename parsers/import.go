package parsers

import (
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"resumekit/models"
)

// ErrInvalidFormat classifies imported JSON that parsed but is not
// resume-shaped. Callers surface it as a user-facing message; the current
// in-memory resume is left untouched.
var ErrInvalidFormat = errors.New("invalid resume format")

// resumeShapeSchema is the minimal structural contract for imported files:
// both top-level keys must be present. Anything deeper is the sanitizer's
// job.
const resumeShapeSchema = `{
	"type": "object",
	"required": ["sections", "personalInfo"],
	"properties": {
		"sections":     {"type": "array"},
		"personalInfo": {"type": "object"}
	}
}`

var shapeSchema = gojsonschema.NewStringLoader(resumeShapeSchema)

// ImportJSON parses an uploaded resume file and runs it through the
// sanitizer. Non-JSON input and JSON missing the required keys both yield
// ErrInvalidFormat rather than a crash.
func ImportJSON(text string) (*models.Resume, error) {
	result, err := gojsonschema.Validate(shapeSchema, gojsonschema.NewStringLoader(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if !result.Valid() {
		details := ""
		for _, e := range result.Errors() {
			details += e.String() + "; "
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, details)
	}
	return Sanitize(text), nil
}
