package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-explorer/internal/catalog"
	"github.com/jonathan/portfolio-explorer/internal/observability"
	"github.com/jonathan/portfolio-explorer/internal/query"
	"github.com/jonathan/portfolio-explorer/internal/terminal"
)

var (
	queryTerminal bool
	querySummary  bool
)

var queryCmd = &cobra.Command{
	Use:   "query <query>",
	Short: "Execute one query and print the JSON result",
	Long: `Execute one query in the braced syntax, e.g. 'query { about { name email } }', and print
the result as JSON. With --terminal the input uses the terminal syntax and the result is rendered
as the interactive terminal would show it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().BoolVarP(&queryTerminal, "terminal", "t", false, "Use the terminal syntax and renderer")
	queryCmd.Flags().BoolVar(&querySummary, "summary", true, "Print a query summary after the JSON result")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	src, err := loadCatalog(cmd.Context(), appConfig, logger)
	if err != nil {
		return err
	}
	defer src.Close()

	raw := strings.Join(args, " ")
	engine := query.NewEngine(src.Catalog,
		query.WithCommandHandler(terminal.NewCommands(src.Catalog, nil, logger)),
		query.WithLogger(logger))

	if queryTerminal {
		theme, _ := terminal.LookupTheme(appConfig.Theme)
		return printTerminalQuery(cmd.OutOrStdout(), engine, theme, raw)
	}
	return printQuery(cmd.OutOrStdout(), engine, raw, querySummary)
}

// printQuery writes the JSON result of raw and, when summary is set and the query parsed,
// a boxed summary of its metadata.
func printQuery(out io.Writer, engine *query.Engine, raw string, summary bool) error {
	res := engine.Execute(raw)

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if _, err := fmt.Fprintln(out, string(data)); err != nil {
		return err
	}

	if summary && !res.Failed() {
		observability.NewPrinter(out).PrintMetadata(res.Metadata)
	}
	return nil
}

func printTerminalQuery(out io.Writer, engine *query.Engine, theme terminal.Theme, raw string) error {
	res := engine.ExecuteTerminal(raw)
	_, err := io.WriteString(out, terminal.NewRenderer(theme).Render(res))
	return err
}

// categoryArg parses a category argument, accepting freestyle.
func categoryArg(name string) (catalog.Category, error) {
	if strings.EqualFold(name, string(catalog.Freestyle)) {
		return catalog.Freestyle, nil
	}
	return catalog.ParseCategory(name)
}
