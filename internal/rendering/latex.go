package rendering

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/portfolio-explorer/internal/catalog"
)

//go:embed templates/resume.tex.tmpl
var defaultTemplate string

// TemplateData is the value passed to a résumé template. Every string is already
// LaTeX-escaped.
type TemplateData struct {
	Name      string
	Title     string
	Contact   []string
	Summary   string
	Companies []EmployerSection
	Projects  []ProjectEntry
	Skills    []SkillLine
	Education []string
}

// EmployerSection is an employer with one or more positions.
type EmployerSection struct {
	Employer string
	Roles    []RoleSection
}

// RoleSection is a position held at an employer. Durations joins every stint in the
// same position.
type RoleSection struct {
	Position   string
	Durations  string
	Highlights []string
}

// ProjectEntry is one line of the projects section.
type ProjectEntry struct {
	Name        string
	Description string
	Tech        []string
}

// SkillLine is one labelled group of skills.
type SkillLine struct {
	Label string
	Items []string
}

// RenderLaTeX renders doc as a LaTeX résumé. An empty templatePath selects the
// built-in template.
func RenderLaTeX(doc catalog.Document, templatePath string) (string, error) {
	tmpl, err := parseTemplate(templatePath)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, buildTemplateData(doc)); err != nil {
		return "", &TemplateError{Message: "failed to execute template", Cause: err}
	}
	return result.String(), nil
}

func parseTemplate(templatePath string) (*template.Template, error) {
	content := defaultTemplate
	if templatePath != "" {
		data, err := os.ReadFile(templatePath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, &TemplateError{Message: fmt.Sprintf("template file not found: %s", templatePath), Cause: err}
			}
			return nil, &TemplateError{Message: fmt.Sprintf("failed to read template file: %s", templatePath), Cause: err}
		}
		content = string(data)
	}

	tmpl, err := template.New("resume").Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
		"join":   strings.Join,
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{Message: "failed to parse template", Cause: err}
	}
	return tmpl, nil
}

func buildTemplateData(doc catalog.Document) *TemplateData {
	about := doc.About

	contact := make([]string, 0, 5)
	for _, c := range []string{about.Location, about.Email, about.Phone, about.GitHub, about.LinkedIn} {
		if c = strings.TrimSpace(c); c != "" {
			contact = append(contact, EscapeLaTeX(c))
		}
	}

	summary := about.ShortBio
	if summary == "" {
		summary = about.Bio
	}

	return &TemplateData{
		Name:      EscapeLaTeX(about.Name),
		Title:     EscapeLaTeX(about.Title),
		Contact:   contact,
		Summary:   EscapeLaTeX(summary),
		Companies: groupByEmployer(doc.Experience.EntireCareer),
		Projects:  projectEntries(doc.Projects),
		Skills:    skillLines(doc.Skills),
		Education: educationLines(doc.Education),
	}
}

type roleKey struct {
	Employer string
	Position string
}

// groupByEmployer groups careers by employer and then by position, keeping the order
// in which each first appears. Repeated stints in one position merge their durations
// and highlights.
func groupByEmployer(careers []catalog.Career) []EmployerSection {
	var employerOrder []string
	positionOrder := make(map[string][]string)
	durations := make(map[roleKey][]string)
	highlights := make(map[roleKey][]string)
	seen := make(map[roleKey]bool)

	for _, c := range careers {
		key := roleKey{Employer: c.Employer, Position: c.Position}
		if _, ok := positionOrder[c.Employer]; !ok {
			employerOrder = append(employerOrder, c.Employer)
		}
		if !seen[key] {
			seen[key] = true
			positionOrder[c.Employer] = append(positionOrder[c.Employer], c.Position)
		}
		if d := strings.TrimSpace(c.Duration); d != "" {
			durations[key] = append(durations[key], EscapeLaTeX(d))
		}
		highlights[key] = append(highlights[key], escapeAll(c.Highlights)...)
	}

	sections := make([]EmployerSection, 0, len(employerOrder))
	for _, employer := range employerOrder {
		section := EmployerSection{Employer: EscapeLaTeX(employer)}
		for _, position := range positionOrder[employer] {
			key := roleKey{Employer: employer, Position: position}
			section.Roles = append(section.Roles, RoleSection{
				Position:   EscapeLaTeX(position),
				Durations:  strings.Join(durations[key], ", "),
				Highlights: highlights[key],
			})
		}
		sections = append(sections, section)
	}
	return sections
}

func projectEntries(s catalog.ProjectsSection) []ProjectEntry {
	var entries []ProjectEntry
	for _, group := range s.Fields() {
		for _, p := range group.Value.([]catalog.Project) {
			entries = append(entries, ProjectEntry{
				Name:        EscapeLaTeX(p.Name),
				Description: EscapeLaTeX(p.Description),
				Tech:        escapeAll(p.Tech),
			})
		}
	}
	return entries
}

var skillLabels = map[string]string{
	"programming_languages": "Languages",
	"frameworks":            "Frameworks",
	"databases":             "Databases",
	"apis":                  "APIs",
	"devOps":                "DevOps",
	"tools":                 "Tools",
}

func skillLines(s catalog.SkillsSection) []SkillLine {
	var lines []SkillLine
	for _, f := range s.Fields() {
		items := escapeAll(f.Value.([]string))
		if len(items) == 0 {
			continue
		}
		lines = append(lines, SkillLine{Label: skillLabels[f.Name], Items: items})
	}
	return lines
}

func educationLines(s catalog.EducationSection) []string {
	var lines []string
	lines = append(lines, schoolingLines(s.College)...)
	lines = append(lines, schoolingLines(s.HighSchool)...)
	for _, c := range s.Certifications {
		line := EscapeLaTeX(c.Name)
		if c.Issuer != "" {
			line += ", " + EscapeLaTeX(c.Issuer)
		}
		if c.Year != "" {
			line += " (" + EscapeLaTeX(c.Year) + ")"
		}
		lines = append(lines, line)
	}
	return lines
}

// schoolingLines pairs each degree with the duration at the same position. Degree and
// duration may each be a single string or a list.
func schoolingLines(s catalog.Schooling) []string {
	degrees := stringList(s.Degree)
	durations := stringList(s.Duration)

	lines := make([]string, 0, len(degrees))
	for i, degree := range degrees {
		line := EscapeLaTeX(degree)
		if s.Institution != "" {
			line += ", " + EscapeLaTeX(s.Institution)
		}
		if i < len(durations) {
			line += " (" + EscapeLaTeX(durations[i]) + ")"
		}
		lines = append(lines, line)
	}
	return lines
}

func stringList(v any) []string {
	switch t := v.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
