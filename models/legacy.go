package models

// LegacyResume is the older flat resume shape still required by the DOCX
// and canvas-PDF exporters. It is derived on demand from the canonical
// model and never stored.
type LegacyResume struct {
	PersonalInfo PersonalInfo       `json:"personalInfo"`
	Summary      string             `json:"summary"`
	Skills       *LegacySkills      `json:"skills,omitempty"`
	Experience   []LegacyExperience `json:"experience"`
	Education    *LegacyEducation   `json:"education,omitempty"`
	Projects     []LegacyProject    `json:"projects"`
}

// LegacySkills carries the three historical skill categories. The canonical
// model holds a flat list, so the adapter places everything under Languages;
// the other buckets stay empty until a categorized source exists.
type LegacySkills struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Tools      []string `json:"tools"`
}

type LegacyExperience struct {
	Position     string   `json:"position"`
	Duration     string   `json:"duration"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Achievements []string `json:"achievements"`
}

// LegacyEducation is a single object, not a list. When the canonical model
// holds several education entries only the first survives the mapping; this
// is a known information-loss point of the legacy shape, kept as-is.
type LegacyEducation struct {
	Degree     string `json:"degree"`
	University string `json:"university"`
	Year       string `json:"year"`
	GPA        string `json:"gpa"`
	Location   string `json:"location"`
}

type LegacyProject struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// ToLegacyShape projects the canonical model onto the flat legacy shape.
// Pure mapping; the input is not modified.
func ToLegacyShape(r *Resume) LegacyResume {
	out := LegacyResume{
		Experience: []LegacyExperience{},
		Projects:   []LegacyProject{},
	}
	if r == nil {
		return out
	}
	out.PersonalInfo = r.PersonalInfo

	if s := r.SectionByID("summary"); s != nil {
		out.Summary = s.Content
	}

	if s := r.SectionByID("skills"); s != nil && len(s.Items) > 0 {
		flat := make([]string, 0, len(s.Items))
		for i := range s.Items {
			if label := s.Items[i].SkillLabel(); label != "" {
				flat = append(flat, label)
			}
		}
		out.Skills = &LegacySkills{
			Languages:  flat,
			Frameworks: []string{},
			Tools:      []string{},
		}
	}

	if s := r.SectionByID("experience"); s != nil {
		for i := range s.Items {
			it := &s.Items[i]
			end := it.EndDate
			if end == "" {
				end = "Present"
			}
			out.Experience = append(out.Experience, LegacyExperience{
				Position:     it.Role,
				Duration:     it.StartDate + " - " + end,
				Company:      it.Company,
				Location:     it.Location,
				Achievements: append([]string{}, it.Bullets...),
			})
		}
	}

	if s := r.SectionByID("education"); s != nil && len(s.Items) > 0 {
		first := &s.Items[0]
		out.Education = &LegacyEducation{
			Degree:     first.EducationTitle(),
			University: first.EducationSchool(),
			Year:       first.Year,
			GPA:        first.GPA,
			Location:   first.Location,
		}
	}

	if s := r.SectionByID("projects"); s != nil {
		for i := range s.Items {
			it := &s.Items[i]
			out.Projects = append(out.Projects, LegacyProject{
				Name:         it.Title,
				Description:  it.Description,
				Technologies: append([]string{}, it.Technologies...),
			})
		}
	}

	return out
}
