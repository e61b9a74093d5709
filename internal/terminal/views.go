// Package terminal implements the terminal surface: command handling, discovery views,
// themed rendering of results and an interactive read-eval-print loop.
package terminal

import (
	"sort"

	"github.com/jonathan/portfolio-explorer/internal/catalog"
	"github.com/jonathan/portfolio-explorer/internal/query"
)

// CategoryFields lists the public fields of one category.
type CategoryFields struct {
	Category catalog.Category `json:"category"`
	Fields   []string         `json:"fields"`
}

// CommandInfo documents one command for the command list.
type CommandInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Usage       []string `json:"usage"`
}

// QuickAction is a one-click query suggestion.
type QuickAction struct {
	Label   string `json:"label"`
	Command string `json:"cmd"`
}

// CategoryInfo describes one category for documentation views.
type CategoryInfo struct {
	Name              catalog.Category  `json:"name"`
	DisplayName       string            `json:"displayName"`
	Description       string            `json:"description"`
	Hints             string            `json:"hints"`
	AllFields         []string          `json:"allFields"`
	DefaultFields     []string          `json:"defaultFields"`
	ExampleQuery      string            `json:"exampleQuery"`
	FieldDescriptions map[string]string `json:"fieldDescriptions"`
}

// FreestyleField is one entry of the freestyle field list.
type FreestyleField struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    catalog.Category `json:"category"`
	IsDefault   bool             `json:"isDefault"`
}

// FreestyleInfo describes freestyle mode.
type FreestyleInfo struct {
	DisplayName   string           `json:"displayName"`
	Description   string           `json:"description"`
	Hints         string           `json:"hints"`
	DefaultFields []string         `json:"defaultFields"`
	ExampleQuery  string           `json:"exampleQuery"`
	Fields        []FreestyleField `json:"allAvailableFields"`
}

var usageExamples = struct {
	singleField   []string
	multipleSpace []string
	multipleComma []string
	theme         []string
}{
	singleField:   []string{"age", "name", "email"},
	multipleSpace: []string{"name age location", "email phone linkedin"},
	multipleComma: []string{"name,email,phone", "age,salary,location"},
	theme:         []string{"theme matrix", "theme dracula"},
}

// AvailableFields returns every public field name across the real categories, sorted and
// deduplicated. Hidden and extra fields are never listed.
func AvailableFields(c *catalog.Catalog) []string {
	seen := make(map[string]bool)
	var names []string
	for _, category := range catalog.RealCategories {
		for _, name := range c.FieldNames(category) {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// FieldsByCategory returns the sorted public field names of each real category.
func FieldsByCategory(c *catalog.Catalog) []CategoryFields {
	out := make([]CategoryFields, 0, len(catalog.RealCategories))
	for _, category := range catalog.RealCategories {
		out = append(out, CategoryFields{Category: category, Fields: c.FieldNames(category)})
	}
	return out
}

// QuickActions returns the category shorthands followed by a few field examples.
func QuickActions() []QuickAction {
	actions := make([]QuickAction, 0, len(catalog.RealCategories)+3)
	for _, category := range catalog.RealCategories {
		actions = append(actions, QuickAction{Label: category.DisplayName(), Command: string(category) + "[]"})
	}
	return append(actions,
		QuickAction{Label: "Contact Info", Command: usageExamples.multipleSpace[1]},
		QuickAction{Label: "Basic Info", Command: usageExamples.multipleSpace[0]},
		QuickAction{Label: "Fields", Command: query.CommandFields},
	)
}

// CommandList returns every command with its usage, followed by the category shorthands
// and the field query forms.
func CommandList(c *catalog.Catalog) []CommandInfo {
	commands := []CommandInfo{
		{Name: query.CommandHelp, Description: c.Descriptions().Terminal.Help, Usage: []string{"help"}},
		{Name: query.CommandClear, Description: "Clear terminal screen", Usage: []string{"clear"}},
		{Name: query.CommandTheme, Description: "Change terminal theme and visual style",
			Usage: append([]string{"theme <name>", "theme"}, usageExamples.theme...)},
		{Name: query.CommandFields, Description: "Show all available fields by category", Usage: []string{"fields"}},
		{Name: query.CommandStats, Description: "Show session statistics and achievements", Usage: []string{"stats"}},
		{Name: query.CommandReset, Description: "Reset session statistics", Usage: []string{"reset"}},
	}

	for _, category := range catalog.RealCategories {
		commands = append(commands, CommandInfo{
			Name:        string(category) + "[]",
			Description: c.Descriptions().Categories[category].Description,
			Usage:       []string{string(category) + "[]"},
		})
	}

	var fieldUsage []string
	fieldUsage = append(fieldUsage, usageExamples.singleField...)
	fieldUsage = append(fieldUsage, usageExamples.multipleSpace...)
	fieldUsage = append(fieldUsage, usageExamples.multipleComma...)
	return append(commands, CommandInfo{
		Name:        "field-queries",
		Description: "Get specific fields using field names",
		Usage:       fieldUsage,
	})
}

// DescribeCategory returns the documentation view of category.
func DescribeCategory(c *catalog.Catalog, category catalog.Category) CategoryInfo {
	descs := c.Descriptions()
	fields := make([]string, 0)
	fieldDescriptions := make(map[string]string)
	for _, f := range c.SectionFields(category) {
		fields = append(fields, f.Name)
		fieldDescriptions[f.Name] = descs.FieldDescriptionOf(category, f.Name)
	}

	return CategoryInfo{
		Name:              category,
		DisplayName:       category.DisplayName(),
		Description:       descs.Categories[category].Description,
		Hints:             descs.Categories[category].Hints,
		AllFields:         fields,
		DefaultFields:     descs.DefaultFields[category],
		ExampleQuery:      query.CategoryExample(c, category),
		FieldDescriptions: fieldDescriptions,
	}
}

// DescribeFreestyle returns the documentation view of freestyle mode. Only public fields
// are listed.
func DescribeFreestyle(c *catalog.Catalog) FreestyleInfo {
	descs := c.Descriptions()
	defaults := make(map[string]bool)
	for _, name := range descs.DefaultFields[catalog.Freestyle] {
		defaults[name] = true
	}

	var fields []FreestyleField
	for _, category := range catalog.RealCategories {
		for _, f := range c.SectionFields(category) {
			fields = append(fields, FreestyleField{
				Name:        f.Name,
				Description: descs.FieldDescriptionOf(category, f.Name),
				Category:    category,
				IsDefault:   defaults[f.Name],
			})
		}
	}

	return FreestyleInfo{
		DisplayName:   catalog.Freestyle.DisplayName(),
		Description:   descs.Freestyle.Description,
		Hints:         descs.Freestyle.Hints,
		DefaultFields: descs.DefaultFields[catalog.Freestyle],
		ExampleQuery:  query.FreestyleExample(c),
		Fields:        fields,
	}
}
