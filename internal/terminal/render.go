package terminal

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/portfolio-explorer/internal/catalog"
	"github.com/jonathan/portfolio-explorer/internal/query"
)

// Renderer turns terminal results into styled text.
type Renderer struct {
	styles Styles
}

// NewRenderer returns a renderer using theme.
func NewRenderer(theme Theme) *Renderer {
	return &Renderer{styles: NewStyles(theme)}
}

// Theme returns the active theme.
func (r *Renderer) Theme() Theme {
	return r.styles.Theme
}

// SetTheme switches the active theme.
func (r *Renderer) SetTheme(theme Theme) {
	r.styles = NewStyles(theme)
}

// Prompt renders the input prompt.
func (r *Renderer) Prompt() string {
	return r.styles.Prompt.Render("portfolio") + r.styles.Muted.Render(" ❯ ")
}

// Render renders res. Fields are rendered one per entry, styled by classification, and
// followed by a summary line.
func (r *Renderer) Render(res query.TerminalResult) string {
	switch {
	case res.Error != nil:
		return r.styles.Invalid.Render("❌ "+res.Error.Message) + "\n" +
			r.styles.Muted.Render(`💡 Type "help" for usage examples`) + "\n"
	case res.Command != nil:
		if res.Command.Message == "" {
			return ""
		}
		style := r.styles.Text
		if res.Metadata.InvalidFields > 0 {
			style = r.styles.Invalid
		}
		return style.Render(res.Command.Message) + "\n"
	}

	var sb strings.Builder
	for _, f := range res.Fields {
		sb.WriteString(r.field(f, res.Metadata.FieldTypes[f.Name]))
		sb.WriteString("\n")
	}
	sb.WriteString(r.summary(res.Metadata))
	sb.WriteString("\n")
	return sb.String()
}

func (r *Renderer) field(f catalog.Field, classification catalog.Classification) string {
	key := r.styles.Key.Render(f.Name + ":")
	switch classification {
	case catalog.HiddenField:
		key = r.styles.Hidden.Render("🔒 " + f.Name + ":")
	case catalog.Invalid:
		return key + " " + r.styles.Invalid.Render("null")
	}

	value := formatValue(f.Value)
	if strings.Contains(value, "\n") {
		return key + "\n" + r.styles.Text.Render(indent(value, "  "))
	}
	return key + " " + r.styles.Text.Render(value)
}

func (r *Renderer) summary(md query.Metadata) string {
	parts := []string{fmt.Sprintf("✓ %d valid", md.ValidFields)}
	if md.HiddenFields > 0 {
		parts = append(parts, fmt.Sprintf("🔒 %d hidden", md.HiddenFields))
	}
	if md.InvalidFields > 0 {
		parts = append(parts, fmt.Sprintf("✗ %d invalid", md.InvalidFields))
	}
	return r.styles.Muted.Render(strings.Join(parts, " · "))
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case []string:
		lines := make([]string, len(val))
		for i, item := range val {
			lines[i] = "• " + item
		}
		return strings.Join(lines, "\n")
	default:
		data, err := json.MarshalIndent(val, "", "  ")
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(data)
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
