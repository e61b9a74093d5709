package catalog

import "strings"

// DefaultSuggestionLimit caps Suggest when limit is not positive.
const DefaultSuggestionLimit = 5

// Suggestion is a public field that loosely matches a search term.
type Suggestion struct {
	Category    Category `json:"category"`
	Field       string   `json:"field"`
	Description string   `json:"description"`
}

// Suggest returns public fields whose name or description contains term, case-insensitively.
// Matches come in category order, then field authoring order. Hidden and extra fields are
// never suggested. Suggest does not influence Resolve.
func (c *Catalog) Suggest(term string, limit int) []Suggestion {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}

	var out []Suggestion
	for _, category := range RealCategories {
		for _, f := range c.sections[category] {
			desc := c.descriptions.FieldDescriptionOf(category, f.Name)
			if !strings.Contains(strings.ToLower(f.Name), needle) &&
				!strings.Contains(strings.ToLower(desc), needle) {
				continue
			}
			out = append(out, Suggestion{Category: category, Field: f.Name, Description: desc})
			if len(out) == limit {
				return out
			}
		}
	}
	return out
}
