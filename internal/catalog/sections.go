package catalog

// Field is a single named value within a section, overlay or result.
type Field struct {
	Name  string
	Value any
}

// Section is the public data of one real category. Fields returns the section's
// entries in authoring order; optional entries that are empty are omitted.
type Section interface {
	Category() Category
	Fields() []Field
}

// AboutSection is the personal profile.
type AboutSection struct {
	Name         string   `json:"name"`
	Title        string   `json:"title"`
	Subtitle     string   `json:"subtitle"`
	Bio          string   `json:"bio"`
	ShortBio     string   `json:"shortBio"`
	Location     string   `json:"location"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	GitHub       string   `json:"github"`
	LinkedIn     string   `json:"linkedin"`
	Portfolio    string   `json:"portfolio"`
	Availability string   `json:"availability"`
	Languages    []string `json:"languages"`
}

func (AboutSection) Category() Category { return About }

func (s AboutSection) Fields() []Field {
	return []Field{
		{"name", s.Name},
		{"title", s.Title},
		{"subtitle", s.Subtitle},
		{"bio", s.Bio},
		{"shortBio", s.ShortBio},
		{"location", s.Location},
		{"email", s.Email},
		{"phone", s.Phone},
		{"github", s.GitHub},
		{"linkedin", s.LinkedIn},
		{"portfolio", s.Portfolio},
		{"availability", s.Availability},
		{"languages", s.Languages},
	}
}

// Career is one position in the work history.
type Career struct {
	Employer     string   `json:"employer"`
	Position     string   `json:"position"`
	Duration     string   `json:"duration"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Highlights   []string `json:"highlights"`
	Technologies []string `json:"technologies"`
	Achievements []string `json:"achievements,omitempty"`
	Type         string   `json:"type,omitempty"`
	HoursPerWeek string   `json:"hoursPerWeek,omitempty"`
	Workplace    string   `json:"workplace,omitempty"`
}

// ExperienceSection is the professional history.
type ExperienceSection struct {
	LatestRole      string   `json:"latestRole"`
	PresentEmployer string   `json:"presentEmployer"`
	Availability    string   `json:"availability"`
	RecentCareer    []Career `json:"recentCareer"`
	EntireCareer    []Career `json:"entireCareer"`
}

func (ExperienceSection) Category() Category { return Experience }

func (s ExperienceSection) Fields() []Field {
	return []Field{
		{"latestRole", s.LatestRole},
		{"presentEmployer", s.PresentEmployer},
		{"availability", s.Availability},
		{"recentCareer", s.RecentCareer},
		{"entireCareer", s.EntireCareer},
	}
}

// SkillsSection groups technical skills.
type SkillsSection struct {
	ProgrammingLanguages []string `json:"programming_languages"`
	Frameworks           []string `json:"frameworks"`
	Databases            []string `json:"databases"`
	APIs                 []string `json:"apis"`
	DevOps               []string `json:"devOps"`
	Tools                []string `json:"tools"`
}

func (SkillsSection) Category() Category { return Skills }

func (s SkillsSection) Fields() []Field {
	return []Field{
		{"programming_languages", s.ProgrammingLanguages},
		{"frameworks", s.Frameworks},
		{"databases", s.Databases},
		{"apis", s.APIs},
		{"devOps", s.DevOps},
		{"tools", s.Tools},
	}
}

// Schooling describes one institution.
type Schooling struct {
	Degree      any    `json:"degree"`
	Duration    any    `json:"duration"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
}

// Certification is a professional certificate.
type Certification struct {
	Name   string   `json:"name"`
	Issuer string   `json:"issuer"`
	Year   string   `json:"year"`
	Link   string   `json:"link"`
	Skills []string `json:"skills"`
}

// OnlineCourse is a completed online course.
type OnlineCourse struct {
	Name       string `json:"name"`
	Platform   string `json:"platform"`
	Year       string `json:"year"`
	Instructor string `json:"instructor,omitempty"`
}

// EducationSection is the academic background.
type EducationSection struct {
	HighSchool     Schooling       `json:"highschool"`
	College        Schooling       `json:"college"`
	Certifications []Certification `json:"certifications"`
	OnlineCourses  []OnlineCourse  `json:"onlineCourses"`
}

func (EducationSection) Category() Category { return Education }

func (s EducationSection) Fields() []Field {
	return []Field{
		{"highschool", s.HighSchool},
		{"college", s.College},
		{"certifications", s.Certifications},
		{"onlineCourses", s.OnlineCourses},
	}
}

// ProjectImages holds media paths for a project.
type ProjectImages struct {
	Thumbnail    string   `json:"thumbnail,omitempty"`
	Screenshots  []string `json:"screenshots,omitempty"`
	Demo         string   `json:"demo,omitempty"`
	Architecture string   `json:"architecture,omitempty"`
}

// Project is one portfolio project.
type Project struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Tech         []string       `json:"tech"`
	Category     string         `json:"category,omitempty"`
	Contributors []string       `json:"contributors,omitempty"`
	Owner        string         `json:"owner,omitempty"`
	Status       string         `json:"status"`
	GitHub       string         `json:"github,omitempty"`
	Live         string         `json:"live,omitempty"`
	Features     []string       `json:"features,omitempty"`
	Images       *ProjectImages `json:"images,omitempty"`
}

// ProjectsSection groups projects by kind. Empty groups are not part of the section.
type ProjectsSection struct {
	Backend   []Project `json:"backend,omitempty"`
	Frontend  []Project `json:"frontend,omitempty"`
	FullStack []Project `json:"fullStack,omitempty"`
	Analytics []Project `json:"analytics,omitempty"`
	Bots      []Project `json:"bots,omitempty"`
	Other     []Project `json:"other,omitempty"`
}

func (ProjectsSection) Category() Category { return Projects }

func (s ProjectsSection) Fields() []Field {
	groups := []Field{
		{"fullStack", s.FullStack},
		{"frontend", s.Frontend},
		{"backend", s.Backend},
		{"analytics", s.Analytics},
		{"bots", s.Bots},
		{"other", s.Other},
	}
	fields := make([]Field, 0, len(groups))
	for _, g := range groups {
		if len(g.Value.([]Project)) > 0 {
			fields = append(fields, g)
		}
	}
	return fields
}
