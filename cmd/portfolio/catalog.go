package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-explorer/internal/catalog"
	"github.com/jonathan/portfolio-explorer/internal/config"
	"github.com/jonathan/portfolio-explorer/internal/db"
	"github.com/jonathan/portfolio-explorer/internal/rendering"
)

var (
	catalogExportOut   string
	catalogPushFile    string
	catalogPushVersion string
	renderFile         string
	renderTemplate     string
	renderOut          string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage catalog documents",
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the builtin catalog as a JSON document",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		if catalogExportOut != "" {
			f, err := os.Create(catalogExportOut)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}
		return exportCatalog(out, catalog.BuiltinDocument())
	},
}

var catalogPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Store a catalog document in PostgreSQL as the newest version",
	RunE:  runCatalogPush,
}

var catalogRenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a catalog document as a LaTeX résumé",
	RunE: func(cmd *cobra.Command, _ []string) error {
		doc := catalog.BuiltinDocument()
		if renderFile != "" {
			loaded, err := catalog.LoadFile(renderFile)
			if err != nil {
				return err
			}
			doc = loaded
		}

		out := cmd.OutOrStdout()
		if renderOut != "" {
			f, err := os.Create(renderOut)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}
		return renderResume(out, doc, renderTemplate)
	},
}

var catalogVersionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List catalog versions stored in PostgreSQL",
	RunE:  runCatalogVersions,
}

func init() {
	catalogExportCmd.Flags().StringVarP(&catalogExportOut, "out", "o", "", "Output file (defaults to stdout)")

	catalogPushCmd.Flags().StringVarP(&catalogPushFile, "file", "f", "", "Catalog JSON document (defaults to the builtin catalog)")
	catalogPushCmd.Flags().StringVar(&catalogPushVersion, "version", "", "Version label (defaults to a timestamp)")

	catalogRenderCmd.Flags().StringVarP(&renderFile, "file", "f", "", "Catalog JSON document (defaults to the builtin catalog)")
	catalogRenderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "LaTeX template (defaults to the bundled template)")
	catalogRenderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file (defaults to stdout)")

	catalogCmd.AddCommand(catalogExportCmd, catalogPushCmd, catalogVersionsCmd, catalogRenderCmd)
	rootCmd.AddCommand(catalogCmd)
}

func exportCatalog(out io.Writer, doc catalog.Document) error {
	data, err := catalog.Encode(doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func renderResume(out io.Writer, doc catalog.Document, templatePath string) error {
	tex, err := rendering.RenderLaTeX(doc, templatePath)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, tex)
	return err
}

func connectDB(cmd *cobra.Command) (*db.DB, error) {
	if appConfig.DatabaseURL == "" {
		return nil, fmt.Errorf("database_url (or DATABASE_URL) is required")
	}
	database, err := db.Connect(cmd.Context(), appConfig.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(cmd.Context()); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

func runCatalogPush(cmd *cobra.Command, _ []string) error {
	doc := catalog.BuiltinDocument()
	if catalogPushFile != "" {
		var err error
		if doc, err = catalog.LoadFile(catalogPushFile); err != nil {
			return err
		}
	}
	version := catalogPushVersion
	if version == "" {
		version = time.Now().UTC().Format("20060102T150405Z")
	}

	database, err := connectDB(cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	id, err := database.SaveCatalogDocument(cmd.Context(), version, doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Stored catalog version %s (%s)\n", version, id)
	if appConfig.CatalogSource != config.SourcePostgres {
		logger.Sugar().Infof("catalog_source is %q; set it to %q to serve this version", appConfig.CatalogSource, config.SourcePostgres)
	}
	return err
}

func runCatalogVersions(cmd *cobra.Command, _ []string) error {
	database, err := connectDB(cmd)
	if err != nil {
		return err
	}
	defer database.Close()

	records, err := database.ListCatalogVersions(cmd.Context())
	if err != nil {
		return err
	}
	return printVersions(cmd.OutOrStdout(), records)
}

func printVersions(out io.Writer, records []db.CatalogRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(out, "No catalog versions stored")
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tID\tCREATED")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", rec.Version, rec.ID, rec.CreatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}
