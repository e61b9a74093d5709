package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-explorer/internal/catalog"
	"github.com/jonathan/portfolio-explorer/internal/terminal"
)

var (
	fieldsSuggest string
)

var fieldsCmd = &cobra.Command{
	Use:   "fields [category]",
	Short: "List the queryable fields",
	Long: `Without arguments, list the public fields of every category. With a category (or
"freestyle"), print that category's documentation as JSON. --suggest searches field names
and descriptions.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFields,
}

func init() {
	fieldsCmd.Flags().StringVar(&fieldsSuggest, "suggest", "", "Suggest fields matching a term")
	rootCmd.AddCommand(fieldsCmd)
}

func runFields(cmd *cobra.Command, args []string) error {
	src, err := loadCatalog(cmd.Context(), appConfig, logger)
	if err != nil {
		return err
	}
	defer src.Close()

	out := cmd.OutOrStdout()
	switch {
	case fieldsSuggest != "":
		return printSuggestions(out, src.Catalog, fieldsSuggest)
	case len(args) == 1:
		return printCategory(out, src.Catalog, args[0])
	default:
		return printFields(out, src.Catalog)
	}
}

func printFields(out io.Writer, c *catalog.Catalog) error {
	var sb strings.Builder
	for _, group := range terminal.FieldsByCategory(c) {
		sb.WriteString(fmt.Sprintf("%s[]\n  %s\n", group.Category, strings.Join(group.Fields, ", ")))
	}
	_, err := io.WriteString(out, sb.String())
	return err
}

func printCategory(out io.Writer, c *catalog.Catalog, name string) error {
	category, err := categoryArg(name)
	if err != nil {
		return err
	}

	var info any
	if category == catalog.Freestyle {
		info = terminal.DescribeFreestyle(c)
	} else {
		info = terminal.DescribeCategory(c, category)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}

func printSuggestions(out io.Writer, c *catalog.Catalog, term string) error {
	suggestions := c.Suggest(term, catalog.DefaultSuggestionLimit)
	if len(suggestions) == 0 {
		_, err := fmt.Fprintf(out, "No fields match %q\n", term)
		return err
	}
	for _, s := range suggestions {
		if _, err := fmt.Fprintf(out, "%-12s %-24s %s\n", s.Category, s.Field, s.Description); err != nil {
			return err
		}
	}
	return nil
}
