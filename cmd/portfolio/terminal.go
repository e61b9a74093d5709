package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-explorer/internal/query"
	"github.com/jonathan/portfolio-explorer/internal/stats"
	"github.com/jonathan/portfolio-explorer/internal/terminal"
)

var (
	terminalTheme string
)

var terminalCmd = &cobra.Command{
	Use:   "terminal",
	Short: "Start the interactive terminal",
	Long:  `Start an interactive prompt using the terminal syntax. Type "help" for commands and "exit" to leave.`,
	RunE:  runTerminal,
}

func init() {
	terminalCmd.Flags().StringVar(&terminalTheme, "theme", "", "Initial theme (overrides config and THEME)")
	rootCmd.AddCommand(terminalCmd)
}

func runTerminal(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	src, err := loadCatalog(ctx, appConfig, logger)
	if err != nil {
		return err
	}
	defer src.Close()

	name := appConfig.Theme
	if terminalTheme != "" {
		name = terminalTheme
	}
	theme, ok := terminal.LookupTheme(name)
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}

	tracker := stats.NewTracker(stats.WithLogger(logger))
	engine := query.NewEngine(src.Catalog,
		query.WithCommandHandler(terminal.NewCommands(src.Catalog, tracker, logger)),
		query.WithLogger(logger))

	err = terminal.NewShell(engine, tracker, theme, logger).Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
