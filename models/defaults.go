package models

// DefaultResume returns the built-in sample resume used when no saved state
// exists and on explicit reset.
func DefaultResume() *Resume {
	return &Resume{
		PersonalInfo: PersonalInfo{
			Name:     "Your Name",
			Title:    "Software Engineer",
			Email:    "email@example.com",
			Phone:    "(123) 456-7890",
			Location: "New York, NY",
			LinkedIn: "linkedin.com/in/username",
			GitHub:   "github.com/username",
			Website:  "yourwebsite.com",
		},
		Font:     "Inter",
		Color:    "#1E293B",
		Spacing:  1.2,
		Margin:   Margin{Top: 0.75, Right: 0.75, Bottom: 0.75, Left: 0.75},
		Template: "stitch",
		Sections: []Section{
			{
				ID:      "summary",
				Title:   "Summary",
				Content: "Experienced software engineer with a passion for building scalable web applications.",
			},
			{
				ID:    "experience",
				Title: "Professional Experience",
				Items: []Item{
					{
						ID:        "exp-1",
						Role:      "Senior Software Engineer",
						Company:   "Tech Corp",
						Location:  "San Francisco, CA",
						StartDate: "2022",
						EndDate:   "Present",
						Bullets: []string{
							"Lead developer for the main product dashboard",
							"Mentored junior developers and conducted code reviews",
							"Reduced page load time by 40% through optimization",
						},
					},
				},
			},
			{
				ID:    "education",
				Title: "Education",
				Items: []Item{
					{
						ID:       "edu-1",
						Degree:   "B.S. Computer Science",
						School:   "University of Technology",
						Location: "City, State",
						Year:     "2018",
						GPA:      "3.8/4.0",
					},
				},
			},
			{
				ID:    "skills",
				Title: "Skills",
				Items: []Item{
					{Label: "JavaScript"}, {Label: "React"}, {Label: "Node.js"},
					{Label: "TypeScript"}, {Label: "Python"}, {Label: "AWS"},
					{Label: "Docker"}, {Label: "Git"},
				},
			},
			{
				ID:    "projects",
				Title: "Projects",
				Items: []Item{
					{
						ID:           "proj-1",
						Title:        "E-commerce Platform",
						Subtitle:     "Full Stack Application",
						Description:  "Built a scalable e-commerce platform using MERN stack with Redux for state management.",
						Technologies: []string{"React", "Node.js", "MongoDB"},
					},
				},
			},
			{
				ID:    "certifications",
				Title: "Certifications",
				Items: []Item{},
			},
		},
	}
}
