package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-explorer/internal/catalog"
	"github.com/jonathan/portfolio-explorer/internal/observability"
)

var (
	checkCatalogFile string
)

var checkCatalogCmd = &cobra.Command{
	Use:   "check-catalog",
	Short: "Validate a catalog and report alias conflicts",
	Long: `Validate a catalog document against the catalog schema and check its alias table for
aliases that shadow other fields or are listed twice. Without --file the configured catalog
source is checked. Exits with status 1 when problems are found.`,
	RunE: runCheckCatalog,
}

func init() {
	checkCatalogCmd.Flags().StringVarP(&checkCatalogFile, "file", "f", "", "Path to a catalog JSON document")
	rootCmd.AddCommand(checkCatalogCmd)
}

func runCheckCatalog(cmd *cobra.Command, _ []string) error {
	var c *catalog.Catalog
	if checkCatalogFile != "" {
		doc, err := catalog.LoadFile(checkCatalogFile)
		if err != nil {
			return err
		}
		if c, err = catalog.New(doc); err != nil {
			return fmt.Errorf("%s: %w", checkCatalogFile, err)
		}
	} else {
		src, err := loadCatalog(cmd.Context(), appConfig, logger)
		if err != nil {
			return err
		}
		defer src.Close()
		c = src.Catalog
	}

	return reportCheck(cmd.OutOrStdout(), c)
}

var errIntegrity = errors.New("catalog has integrity problems")

func reportCheck(out io.Writer, c *catalog.Catalog) error {
	problems := c.Check()
	observability.NewPrinter(out).PrintCheckReport(problems)
	if problems != nil {
		return errIntegrity
	}
	return nil
}
