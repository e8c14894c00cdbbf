package parsers

import (
	"encoding/json"

	"github.com/google/uuid"

	"resumekit/models"
	"resumekit/utils"
)

// Sanitize normalizes arbitrary resume-shaped input (AI output, imported
// JSON, partially edited drafts) into a canonical Resume. It never fails:
// fields that cannot be coerced are dropped or replaced with empty defaults.
// The input is never mutated; the result is always a fresh value.
func Sanitize(raw any) *models.Resume {
	data := toJSON(raw)

	resume := &models.Resume{Sections: []models.Section{}}

	// Decode key-by-key so one malformed field cannot take down the rest.
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		utils.LogWarn("sanitize: input is not a JSON object, using empty resume")
		return resume
	}

	if v, ok := top["personalInfo"]; ok {
		_ = json.Unmarshal(v, &resume.PersonalInfo)
	}
	if v, ok := top["sections"]; ok {
		var sections []models.Section
		if err := json.Unmarshal(v, &sections); err == nil {
			resume.Sections = sections
		} else {
			utils.LogWarn("sanitize: dropping malformed sections field")
		}
	}
	decodeString(top["template"], &resume.Template)
	decodeString(top["font"], &resume.Font)
	decodeString(top["color"], &resume.Color)
	if v, ok := top["spacing"]; ok {
		_ = json.Unmarshal(v, &resume.Spacing)
	}
	if v, ok := top["margin"]; ok {
		_ = json.Unmarshal(v, &resume.Margin)
	}

	for i := range resume.Sections {
		sanitizeSection(&resume.Sections[i])
	}
	resume.Sections = dropEmptyIDs(resume.Sections)
	resume.Normalize()
	return resume
}

// toJSON renders the input as JSON bytes. Already-encoded input passes
// through; everything else is marshalled (a Resume snapshot included, which
// doubles as the deep copy the contract requires).
func toJSON(raw any) []byte {
	switch v := raw.(type) {
	case nil:
		return []byte("{}")
	case []byte:
		return v
	case json.RawMessage:
		return v
	case string:
		return []byte(v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return []byte("{}")
		}
		return data
	}
}

func decodeString(raw json.RawMessage, dst *string) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, dst)
}

// sanitizeSection enforces the per-section invariants: content is a plain
// string (the decoder already unwrapped object-shaped content), exactly one
// content arm is populated, skills entries are flat strings, and
// experience/project entries carry stable ids.
func sanitizeSection(s *models.Section) {
	if s.Content != "" && len(s.Items) > 0 {
		// Exactly one arm: text sections keep their text, everything else
		// keeps its items.
		if s.ID == "summary" {
			s.Items = nil
		} else {
			s.Content = ""
		}
	}

	switch s.ID {
	case "skills":
		s.Items = flattenSkills(s.Items)
	case "experience":
		backfillItemIDs(s.Items, "exp")
	case "projects":
		backfillItemIDs(s.Items, "proj")
	}
}

// flattenSkills reduces every entry to its string payload and drops the
// ones that resolve to nothing.
func flattenSkills(items []models.Item) []models.Item {
	if items == nil {
		return nil
	}
	out := make([]models.Item, 0, len(items))
	for i := range items {
		if label := items[i].SkillLabel(); label != "" {
			out = append(out, models.Item{Label: label})
		}
	}
	return out
}

func backfillItemIDs(items []models.Item, prefix string) {
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = prefix + "-" + uuid.NewString()
		}
	}
}

// dropEmptyIDs removes section stubs that survived decoding with neither an
// id nor any content.
func dropEmptyIDs(sections []models.Section) []models.Section {
	out := sections[:0]
	for _, s := range sections {
		if s.ID == "" && s.Content == "" && len(s.Items) == 0 {
			continue
		}
		out = append(out, s)
	}
	return out
}
