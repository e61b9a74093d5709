// Package observability provides boxed plain-text summaries for CLI output.
package observability

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/jonathan/portfolio-explorer/internal/query"
	"github.com/jonathan/portfolio-explorer/internal/stats"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer writes formatted summaries
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to a terminal or buffer; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStats outputs the session statistics and achievements.
func (p *Printer) PrintStats(s stats.Snapshot) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Queries:          %d\n", s.TotalQueries))
	sb.WriteString(fmt.Sprintf("Unique fields:    %d\n", s.UniqueFields))
	sb.WriteString(fmt.Sprintf("Hidden found:     %d\n", s.HiddenFound))
	sb.WriteString(fmt.Sprintf("Invalid attempts: %d\n", s.InvalidAttempts))
	sb.WriteString(fmt.Sprintf("Session minutes:  %d\n", s.SessionMinutes))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Achievements (%d/%d):\n", s.Achievements.Unlocked(), len(s.Achievements.List())))
	for _, a := range s.Achievements.List() {
		mark := "○"
		if a.Unlocked {
			mark = "✓"
		}
		sb.WriteString(fmt.Sprintf("  %s %s - %s\n", mark, a.Title, a.Description))
	}

	if len(s.RecentQueries) > 0 {
		sb.WriteString("\nRecent queries:\n")
		for _, entry := range s.RecentQueries {
			q := strings.Join(strings.Fields(entry.Query), " ")
			if len(q) > 40 {
				q = q[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", q, entry.Mode))
		}
	}

	p.printBox("SESSION STATISTICS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMetadata outputs the classification summary of one query result.
func (p *Printer) PrintMetadata(md query.Metadata) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Mode:    %s\n", md.Mode))
	sb.WriteString(fmt.Sprintf("Total:   %d\n", md.TotalFields))
	sb.WriteString(fmt.Sprintf("Valid:   %d\n", md.ValidFields))
	sb.WriteString(fmt.Sprintf("Hidden:  %d\n", md.HiddenFields))
	sb.WriteString(fmt.Sprintf("Invalid: %d\n", md.InvalidFields))

	if len(md.FieldTypes) > 0 {
		tokens := make([]string, 0, len(md.FieldTypes))
		for token := range md.FieldTypes {
			tokens = append(tokens, token)
		}
		sort.Strings(tokens)

		sb.WriteString("\n")
		count := min(len(tokens), maxItemsToShow)
		for _, token := range tokens[:count] {
			line := fmt.Sprintf("  • %s: %s", token, md.FieldTypes[token])
			if canonical := md.Resolved[token]; canonical != "" && canonical != token {
				line += fmt.Sprintf(" (as %s)", canonical)
			}
			if source := md.Sources[token]; source != "" {
				line += fmt.Sprintf(" [%s]", source)
			}
			sb.WriteString(line + "\n")
		}
		if len(tokens) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(tokens)-maxItemsToShow))
		}
	}

	p.printBox("QUERY SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCheckReport outputs the result of a catalog integrity check.
//
//nolint:errcheck // writing to a terminal or buffer; errors are not recoverable
func (p *Printer) PrintCheckReport(err error) {
	if err == nil {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ CATALOG OK")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	problems := []error{err}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		problems = merr.Errors
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problems:\n\n", len(problems)))
	for i, problem := range problems {
		sb.WriteString(fmt.Sprintf("⚠ %s", problem.Error()))
		if i < len(problems)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CATALOG INTEGRITY", sb.String())
}
