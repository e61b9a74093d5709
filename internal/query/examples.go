package query

import (
	"strings"

	"github.com/jonathan/portfolio-explorer/internal/catalog"
)

// CategoryExample renders an example category query. With no fields the category's
// default fields are used.
func CategoryExample(c *catalog.Catalog, category catalog.Category, fields ...string) string {
	if len(fields) == 0 {
		fields = c.Descriptions().DefaultFields[category]
	}
	var sb strings.Builder
	sb.WriteString("query {\n  ")
	sb.WriteString(string(category))
	sb.WriteString(" {\n")
	for _, f := range fields {
		sb.WriteString("    ")
		sb.WriteString(f)
		sb.WriteByte('\n')
	}
	sb.WriteString("  }\n}")
	return sb.String()
}

// FreestyleExample renders an example freestyle query. With no fields the freestyle
// default fields are used.
func FreestyleExample(c *catalog.Catalog, fields ...string) string {
	if len(fields) == 0 {
		fields = c.Descriptions().DefaultFields[catalog.Freestyle]
	}
	var sb strings.Builder
	sb.WriteString("query {\n")
	for _, f := range fields {
		sb.WriteString("  ")
		sb.WriteString(f)
		sb.WriteByte('\n')
	}
	sb.WriteString("}")
	return sb.String()
}
