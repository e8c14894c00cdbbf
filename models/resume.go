package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// PersonalInfo is the contact block of a resume. No field is required;
// renderers omit or placeholder whatever is missing.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Title    string `json:"title,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Margin is a four-sided, unit-agnostic margin record. Callers decide
// inches vs points at the export boundary.
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Resume is the canonical in-memory representation consumed by every
// renderer and exporter. It is always passed as a snapshot; no operation
// in this module mutates a caller's copy.
type Resume struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Sections     []Section    `json:"sections"`
	Template     string       `json:"template,omitempty"`
	Font         string       `json:"font,omitempty"`
	Color        string       `json:"color,omitempty"`
	Spacing      float64      `json:"spacing,omitempty"`
	Margin       Margin       `json:"margin"`
}

// Section is one titled block of resume content. Content and Items are a
// two-armed union: text sections (summary) carry Content, everything else
// carries Items. Sanitization guarantees at most one arm is populated.
type Section struct {
	ID      string `json:"id"`
	Title   string `json:"title,omitempty"`
	Type    string `json:"type,omitempty"`
	Content string `json:"content,omitempty"`
	Items   []Item `json:"items,omitempty"`
}

// IsText reports whether the section carries text content.
func (s *Section) IsText() bool { return s.Content != "" }

// Kind returns the dispatch key for substring-matching renderers:
// the explicit type when present, the id otherwise.
func (s *Section) Kind() string {
	if s.Type != "" {
		return s.Type
	}
	return s.ID
}

// sectionJSON mirrors Section but keeps every field raw so malformed input
// degrades field-by-field instead of failing the whole decode.
type sectionJSON struct {
	ID      json.RawMessage `json:"id"`
	Title   json.RawMessage `json:"title"`
	Type    json.RawMessage `json:"type"`
	Content json.RawMessage `json:"content"`
	Items   json.RawMessage `json:"items"`
}

// UnmarshalJSON tolerates the wrapper shape {content: {content: "..."}}
// produced by some AI responses (the wrapper is unwrapped here and never
// stored) and drops any field it cannot coerce.
func (s *Section) UnmarshalJSON(data []byte) error {
	var raw sectionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		*s = Section{}
		return nil
	}
	s.ID = asString(raw.ID)
	s.Title = asString(raw.Title)
	s.Type = asString(raw.Type)
	s.Content = unwrapContent(raw.Content)
	s.Items = nil
	if len(raw.Items) > 0 {
		var items []Item
		if err := json.Unmarshal(raw.Items, &items); err == nil {
			s.Items = items
		}
	}
	return nil
}

// UnmarshalJSON keeps only coercible string fields; a contact block that is
// not an object decodes to the zero value.
func (p *PersonalInfo) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*p = PersonalInfo{}
		return nil
	}
	p.Name = asString(raw["name"])
	p.Title = asString(raw["title"])
	p.Email = asString(raw["email"])
	p.Phone = asString(raw["phone"])
	p.Location = asString(raw["location"])
	p.LinkedIn = asString(raw["linkedin"])
	p.GitHub = asString(raw["github"])
	p.Website = asString(raw["website"])
	return nil
}

func asString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}

// unwrapContent coerces a raw content value to a plain string. Strings pass
// through; {content: "..."} objects (possibly nested) are unwrapped; anything
// else collapses to "".
func unwrapContent(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}
	var wrapper struct {
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil {
		return unwrapContent(wrapper.Content)
	}
	return ""
}

// Item is a single entry of an item-list section. The populated fields
// depend on section semantics: skills entries carry only Label, experience
// entries carry Role/Company/dates/Bullets, education entries tolerate both
// the Degree/School and Title/Subtitle field-name variants, and so on.
type Item struct {
	// Label is set when the entry arrived as a bare string (skills lists).
	Label string `json:"-"`

	ID           string   `json:"id,omitempty"`
	Role         string   `json:"role,omitempty"`
	Company      string   `json:"company,omitempty"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Bullets      []string `json:"bullets,omitempty"`
	Degree       string   `json:"degree,omitempty"`
	School       string   `json:"school,omitempty"`
	Title        string   `json:"title,omitempty"`
	Subtitle     string   `json:"subtitle,omitempty"`
	Year         string   `json:"year,omitempty"`
	GPA          string   `json:"gpa,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`

	// Object-shaped skill variants ({name|label|value|skill: "X"}). These
	// are accepted on decode and reduced to Label during sanitization.
	Name  string `json:"name,omitempty"`
	Alias string `json:"label,omitempty"`
	Value string `json:"value,omitempty"`
	Skill string `json:"skill,omitempty"`
}

// itemJSON prevents Marshal/Unmarshal recursion on Item.
type itemJSON Item

// UnmarshalJSON accepts either a bare string or an entry object.
func (it *Item) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err == nil {
		*it = Item{Label: label}
		return nil
	}
	var obj itemJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		// Unresolvable entry (number, null, ...): keep an empty item so the
		// sanitizer can drop it instead of failing the whole decode.
		*it = Item{}
		return nil
	}
	*it = Item(obj)
	return nil
}

// MarshalJSON re-emits bare-string entries as strings so JSON export
// round-trips the canonical shape.
func (it Item) MarshalJSON() ([]byte, error) {
	if it.Label != "" && isLabelOnly(it) {
		return json.Marshal(it.Label)
	}
	return json.Marshal(itemJSON(it))
}

func isLabelOnly(it Item) bool {
	return it.ID == "" && it.Role == "" && it.Company == "" &&
		it.Location == "" && it.StartDate == "" && it.EndDate == "" &&
		len(it.Bullets) == 0 && it.Degree == "" && it.School == "" &&
		it.Title == "" && it.Subtitle == "" && it.Year == "" &&
		it.GPA == "" && it.Description == "" && len(it.Technologies) == 0 &&
		it.Name == "" && it.Alias == "" && it.Value == "" && it.Skill == ""
}

// SkillLabel reduces a skills entry to its string payload, checking the
// historical object keys in fixed priority order.
func (it *Item) SkillLabel() string {
	for _, s := range []string{it.Label, it.Name, it.Alias, it.Value, it.Skill} {
		if s != "" {
			return s
		}
	}
	return ""
}

// EducationTitle returns the degree slot, tolerating both field-name
// variants.
func (it *Item) EducationTitle() string {
	if it.Title != "" {
		return it.Title
	}
	return it.Degree
}

// EducationSchool returns the institution slot, tolerating both field-name
// variants.
func (it *Item) EducationSchool() string {
	if it.Subtitle != "" {
		return it.Subtitle
	}
	return it.School
}

// EntryTitle is the generic heading for mixed/custom entries.
func (it *Item) EntryTitle() string {
	if it.Title != "" {
		return it.Title
	}
	return it.Degree
}

// EntrySubtitle is the generic subheading for mixed/custom entries.
func (it *Item) EntrySubtitle() string {
	if it.School != "" {
		return it.School
	}
	return it.Subtitle
}

// Clone deep-copies the resume so callers can hand out snapshots.
func (r *Resume) Clone() *Resume {
	buf, err := json.Marshal(r)
	if err != nil {
		// Resume contains only plain data; marshal cannot fail in practice.
		panic(fmt.Sprintf("models: clone failed: %v", err))
	}
	out := &Resume{}
	if err := json.Unmarshal(buf, out); err != nil {
		panic(fmt.Sprintf("models: clone failed: %v", err))
	}
	return out
}

// SectionByID returns the first section with the given id, or nil.
func (r *Resume) SectionByID(id string) *Section {
	for i := range r.Sections {
		if r.Sections[i].ID == id {
			return &r.Sections[i]
		}
	}
	return nil
}

// Normalize enforces the structural invariants that are maintained by
// passes rather than by construction: the summary section, when present,
// is moved to the front, and duplicate section ids are disambiguated by
// timestamp-suffixing the later ones.
func (r *Resume) Normalize() {
	for i := range r.Sections {
		if r.Sections[i].ID == "summary" && i > 0 {
			s := r.Sections[i]
			copy(r.Sections[1:i+1], r.Sections[:i])
			r.Sections[0] = s
			break
		}
	}

	seen := make(map[string]bool, len(r.Sections))
	for i := range r.Sections {
		id := r.Sections[i].ID
		if seen[id] {
			// The clock may not advance between iterations, so keep bumping
			// the suffix until the id is actually unique.
			base, nano := id, time.Now().UnixNano()
			for seen[id] {
				id = fmt.Sprintf("%s-%d", base, nano)
				nano++
			}
			r.Sections[i].ID = id
		}
		seen[id] = true
	}
}

// AddSection appends a section and returns a normalized snapshot.
func (r *Resume) AddSection(s Section) *Resume {
	out := r.Clone()
	out.Sections = append(out.Sections, s)
	out.Normalize()
	return out
}

// RemoveSection drops the section with the given id and returns a snapshot.
func (r *Resume) RemoveSection(id string) *Resume {
	out := r.Clone()
	kept := out.Sections[:0]
	for _, s := range out.Sections {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	out.Sections = kept
	out.Normalize()
	return out
}

// ReorderSections moves a section from one index to another and returns a
// normalized snapshot. Out-of-range indexes leave the order unchanged.
func (r *Resume) ReorderSections(from, to int) *Resume {
	out := r.Clone()
	n := len(out.Sections)
	if from < 0 || from >= n || to < 0 || to >= n {
		return out
	}
	moved := out.Sections[from]
	out.Sections = append(out.Sections[:from], out.Sections[from+1:]...)
	rest := append([]Section{}, out.Sections[to:]...)
	out.Sections = append(append(out.Sections[:to], moved), rest...)
	out.Normalize()
	return out
}

// UpdateSection applies fn to the section with the given id and returns a
// normalized snapshot.
func (r *Resume) UpdateSection(id string, fn func(*Section)) *Resume {
	out := r.Clone()
	for i := range out.Sections {
		if out.Sections[i].ID == id {
			fn(&out.Sections[i])
			break
		}
	}
	out.Normalize()
	return out
}
