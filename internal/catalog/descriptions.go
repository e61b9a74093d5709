package catalog

// Description is the help record for a category or mode.
type Description struct {
	Description string `json:"description"`
	Hints       string `json:"hints"`
}

// FreestyleDescription is the help record returned for `help` in freestyle mode.
type FreestyleDescription struct {
	Description string `json:"description"`
	Hints       string `json:"hints"`
	Help        string `json:"help"`
}

// FieldDescription documents one public field.
type FieldDescription struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CommandDescription documents one terminal command.
type CommandDescription struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TerminalDescription is the help text of the terminal surface.
type TerminalDescription struct {
	Description string               `json:"description"`
	Hints       string               `json:"hints"`
	Help        string               `json:"help"`
	Commands    []CommandDescription `json:"commands"`
	Examples    []string             `json:"examples"`
}

// Descriptions bundles every help and documentation record of the catalog.
type Descriptions struct {
	Categories    map[Category]Description        `json:"categories"`
	Freestyle     FreestyleDescription            `json:"freestyle"`
	Terminal      TerminalDescription             `json:"terminal"`
	Fields        map[Category][]FieldDescription `json:"fields"`
	DefaultFields map[Category][]string           `json:"default_fields"`
}

// FieldDescriptionOf returns the description of name within category, falling back to
// "<name> information".
func (d *Descriptions) FieldDescriptionOf(category Category, name string) string {
	for _, f := range d.Fields[category] {
		if f.Name == name {
			return f.Description
		}
	}
	return name + " information"
}

func builtinDescriptions() *Descriptions {
	return &Descriptions{
		Categories: map[Category]Description{
			About: {
				Description: "Personal information and professional profile",
				Hints: "Think about what personal details a developer might keep private - casual nicknames, age, hometown, " +
					"personal contacts like WhatsApp or Discord, development preferences like favorite editor or OS, " +
					"and fun facts like coffee preferences. Try common field variations too - fullname instead of name, " +
					"gmail instead of email, mobile instead of phone.",
			},
			Experience: {
				Description: "Professional work history and career information",
				Hints: "Consider what career info developers usually don't share publicly - salary expectations, hourly rates, " +
					"work style preferences (remote vs office), visa sponsorship needs, timezone, team size preferences, " +
					"and relocation willingness. Alternative names work too - try pay instead of salary, remote instead of preferred.",
			},
			Skills: {
				Description: "Technical skills and competencies",
				Hints: "Think about honest self-assessment that developers rarely share openly - what they're currently learning, " +
					"their biggest weaknesses, greatest strengths, and what AI tools they actually use for coding. " +
					"Similar field names work - try langs instead of programming_languages, or currently_learning instead of learning.",
			},
			Education: {
				Description: "Educational background and certifications",
				Hints: "Consider personal academic memories that aren't on resumes - favorite subjects, favorite teachers, " +
					"or other nostalgic school-related details. Keep it simple and think about what you'd reminisce about from your education.",
			},
			Projects: {
				Description: "Portfolio projects and development work",
				Hints: "Think about project insights developers don't usually advertise - which project they're most proud of, " +
					"how many bugs they've actually fixed, or if they've ever had a complete project failure. " +
					"These honest developer experiences make great hidden fields.",
			},
			Hidden: {
				Description: "Confidential or sensitive information not publicly displayed",
				Hints:       "These fields contain private information and are accessed through other categories.",
			},
			Help: {
				Description: "Assistance and guidance for using the API",
				Hints:       "Get information about categories, field usage, and query examples.",
			},
		},
		Freestyle: FreestyleDescription{
			Description: "Search any field across all categories and access detailed descriptions with intelligent field mapping",
			Hints: "Mix and match fields from different categories, use similar field names, and discover hidden personal details. " +
				"This mode also unlocks the extra overlay with detailed descriptions of programming languages and technologies.",
			Help: "Get information about categories, field usage, and query examples.",
		},
		Terminal: TerminalDescription{
			Description: "Terminal-based interface for exploring my portfolio",
			Hints:       "Use tab completion for commands and fields. Try different themes with the theme command.",
			Help:        "Display this help message with available commands and usage",
			Commands: []CommandDescription{
				{Name: "help", Description: "Show this help message"},
				{Name: "clear", Description: "Clear the terminal screen"},
				{Name: "theme", Description: "Change terminal theme (matrix, dracula, monokai, cyberpunk, minimal)"},
				{Name: "fields", Description: "Show available fields for querying"},
				{Name: "stats", Description: "Show session statistics and achievements"},
				{Name: "reset", Description: "Reset session statistics"},
				{Name: "about[]", Description: "Show personal information"},
				{Name: "skills[]", Description: "List technical skills and competencies"},
				{Name: "projects[]", Description: "Show portfolio projects"},
				{Name: "experience[]", Description: "View work experience"},
				{Name: "education[]", Description: "Show educational background"},
			},
			Examples: []string{
				"theme dracula",
				"skills[]",
				"name email phone",
				"name,email,linkedin",
				"nickname salary python",
			},
		},
		Fields: map[Category][]FieldDescription{
			About: {
				{"name", "Full name as used professionally"},
				{"title", "Professional title or role"},
				{"subtitle", "Secondary title or tagline"},
				{"bio", "Professional biography"},
				{"shortBio", "Brief professional summary"},
				{"location", "Current location or residence"},
				{"email", "Primary email address"},
				{"phone", "Contact phone number"},
				{"github", "GitHub profile URL"},
				{"linkedin", "LinkedIn profile URL"},
				{"portfolio", "Portfolio website URL"},
				{"availability", "Current availability status"},
				{"languages", "Spoken languages"},
			},
			Experience: {
				{"latestRole", "Most recent job position"},
				{"presentEmployer", "Current company or organization"},
				{"availability", "Current availability for new roles"},
				{"recentCareer", "Recent work experience entries"},
				{"entireCareer", "Complete work history"},
			},
			Skills: {
				{"programming_languages", "Programming languages proficiency"},
				{"apis", "API technologies and experience"},
				{"frameworks", "Development frameworks used"},
				{"databases", "Database technologies"},
				{"devOps", "DevOps and deployment tools"},
				{"tools", "Development tools and software"},
			},
			Education: {
				{"highschool", "High school education details"},
				{"college", "College and university education"},
				{"certifications", "Professional certifications"},
				{"onlineCourses", "Online learning and courses"},
			},
			Projects: {
				{"backend", "Backend development projects"},
				{"frontend", "Frontend development projects"},
				{"fullStack", "Full-stack development projects"},
				{"analytics", "Data analytics projects"},
				{"bots", "Bot and automation projects"},
				{"other", "Other miscellaneous projects"},
			},
		},
		DefaultFields: map[Category][]string{
			About:      {"name", "title", "bio", "email", "github", "location"},
			Education:  {"college", "certifications"},
			Skills:     {"programming_languages", "frameworks", "databases"},
			Projects:   {"backend", "frontend", "fullStack"},
			Experience: {"latestRole", "presentEmployer", "recentCareer"},
			Freestyle:  {"name", "latestRole", "programming_languages", "nickname", "git"},
		},
	}
}
