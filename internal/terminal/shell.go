package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/portfolio-explorer/internal/query"
	"github.com/jonathan/portfolio-explorer/internal/stats"
)

const clearScreen = "\033[H\033[2J"

// Shell is an interactive read-eval-print loop over the terminal surface.
type Shell struct {
	engine   *query.Engine
	tracker  *stats.Tracker
	renderer *Renderer
	logger   *zap.Logger
}

// NewShell returns a shell. The engine should be configured with a Commands handler
// sharing tracker. tracker may be nil to disable statistics.
func NewShell(engine *query.Engine, tracker *stats.Tracker, theme Theme, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		engine:   engine,
		tracker:  tracker,
		renderer: NewRenderer(theme),
		logger:   logger,
	}
}

// Renderer returns the shell renderer.
func (s *Shell) Renderer() *Renderer {
	return s.renderer
}

// Eval executes one line and returns the rendered output. Non-command results are
// recorded in the tracker; command results that change the theme or clear the screen
// are applied.
func (s *Shell) Eval(line string) string {
	res := s.engine.ExecuteTerminal(line)

	if res.Command == nil && s.tracker != nil && strings.TrimSpace(line) != "" {
		s.tracker.Record(line, res.Metadata)
	}

	if res.Command != nil {
		switch res.Command.Action {
		case ActionTheme:
			if theme, ok := LookupTheme(res.Command.Theme); ok {
				s.renderer.SetTheme(theme)
				s.logger.Debug("theme changed", zap.String("theme", theme.Name))
			}
		case ActionClear:
			return clearScreen
		}
	}

	return s.renderer.Render(res)
}

// Run reads lines from in until EOF, `exit` or `quit`, or until ctx is cancelled, and
// writes rendered results to out.
//
//nolint:errcheck // writing to a terminal; errors are not recoverable
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, s.renderer.styles.Title.Render("Portfolio terminal"))
	fmt.Fprintln(out, s.renderer.styles.Muted.Render(`Type "help" for commands, "exit" to leave.`))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, s.renderer.Prompt())

		if !scanner.Scan() {
			fmt.Fprintln(out)
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		}

		line := scanner.Text()
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		fmt.Fprint(out, s.Eval(line))
	}
}
