package terminal

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/portfolio-explorer/internal/catalog"
	"github.com/jonathan/portfolio-explorer/internal/observability"
	"github.com/jonathan/portfolio-explorer/internal/query"
	"github.com/jonathan/portfolio-explorer/internal/stats"
)

// Command actions reported in CommandOutput.Action.
const (
	ActionHelp   = "help"
	ActionClear  = "clear"
	ActionFields = "show-fields"
	ActionTheme  = "theme"
	ActionStats  = "stats"
	ActionReset  = "reset"
)

// Commands executes terminal commands. It implements query.CommandHandler. Theme changes
// are reported through the result; applying them is up to the caller.
type Commands struct {
	catalog *catalog.Catalog
	tracker *stats.Tracker
	logger  *zap.Logger
}

// NewCommands returns a handler over c. tracker may be nil, in which case the stats and
// reset commands report that statistics are unavailable.
func NewCommands(c *catalog.Catalog, tracker *stats.Tracker, logger *zap.Logger) *Commands {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Commands{catalog: c, tracker: tracker, logger: logger}
}

// HandleCommand implements query.CommandHandler.
func (h *Commands) HandleCommand(cmd query.CommandQuery) query.TerminalResult {
	h.logger.Debug("terminal command", zap.String("command", cmd.Name), zap.String("arg", cmd.Arg))

	switch cmd.Name {
	case query.CommandHelp:
		return ok(&query.CommandOutput{Action: ActionHelp, Message: h.helpText()}, 1)
	case query.CommandClear:
		return ok(&query.CommandOutput{Action: ActionClear}, 0)
	case query.CommandFields:
		return ok(&query.CommandOutput{Action: ActionFields, Message: h.fieldsText()}, 0)
	case query.CommandTheme:
		return h.theme(cmd.Arg)
	case query.CommandStats:
		if h.tracker == nil {
			return failed("Session statistics are not enabled")
		}
		var sb strings.Builder
		observability.NewPrinter(&sb).PrintStats(h.tracker.Snapshot())
		return ok(&query.CommandOutput{Action: ActionStats, Message: sb.String()}, 1)
	case query.CommandReset:
		if h.tracker == nil {
			return failed("Session statistics are not enabled")
		}
		h.tracker.Reset()
		return ok(&query.CommandOutput{Action: ActionReset, Message: "🔄 Session statistics reset"}, 1)
	default:
		return failed(fmt.Sprintf("Unknown command: %s", cmd.Name))
	}
}

func (h *Commands) theme(name string) query.TerminalResult {
	available := strings.Join(ThemeNames(), ", ")
	if name == "" {
		return ok(&query.CommandOutput{
			Message: fmt.Sprintf("🎨 Available themes: %s\n\n💡 Usage: theme <name>\n\nExample: %s",
				available, usageExamples.theme[0]),
		}, 1)
	}
	if theme, found := LookupTheme(name); found {
		return ok(&query.CommandOutput{
			Action:  ActionTheme,
			Theme:   theme.Name,
			Message: fmt.Sprintf("✅ Theme changed to: %s", theme.Name),
		}, 1)
	}
	res := failed(fmt.Sprintf("❌ Invalid theme: %s\n\n🎨 Available themes: %s\n\n💡 Usage: theme <name>", name, available))
	res.Metadata.TotalFields = 1
	return res
}

func (h *Commands) helpText() string {
	desc := h.catalog.Descriptions().Terminal

	var sb strings.Builder
	sb.WriteString("TERMINAL HELP\n")
	sb.WriteString("=============\n\n")
	sb.WriteString(fmt.Sprintf("Description: %s\n\n", desc.Description))

	sb.WriteString("Available Commands:\n")
	for _, c := range desc.Commands {
		sb.WriteString(fmt.Sprintf("  %-12s %s\n", c.Name, c.Description))
	}

	sb.WriteString("\nExamples:\n")
	for _, e := range desc.Examples {
		sb.WriteString(fmt.Sprintf("  $ %s\n", e))
	}

	sb.WriteString(fmt.Sprintf("\nHints: %s\n", desc.Hints))
	return sb.String()
}

func (h *Commands) fieldsText() string {
	var sb strings.Builder
	sb.WriteString("Available fields by category:\n")
	for _, group := range FieldsByCategory(h.catalog) {
		sb.WriteString(fmt.Sprintf("\n  %s[]\n", group.Category))
		sb.WriteString(fmt.Sprintf("    %s\n", strings.Join(group.Fields, ", ")))
	}
	sb.WriteString("\n💡 Similar names work too, and some fields are not listed at all.\n")
	return sb.String()
}

func ok(out *query.CommandOutput, total int) query.TerminalResult {
	return query.TerminalResult{
		Command:  out,
		Metadata: query.Metadata{TotalFields: total, ValidFields: 1},
	}
}

func failed(message string) query.TerminalResult {
	return query.TerminalResult{
		Command:  &query.CommandOutput{Message: message},
		Metadata: query.Metadata{InvalidFields: 1},
	}
}
