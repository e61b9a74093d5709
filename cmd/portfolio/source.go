package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/portfolio-explorer/internal/catalog"
	"github.com/jonathan/portfolio-explorer/internal/config"
	"github.com/jonathan/portfolio-explorer/internal/db"
)

// catalogSource is a loaded catalog plus the database it came from, if any.
type catalogSource struct {
	Catalog *catalog.Catalog
	DB      *db.DB
}

// Close releases the database connection, if one was opened.
func (s *catalogSource) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}

// loadCatalog builds the catalog named by cfg.CatalogSource and logs any integrity
// problems. Problems are not fatal: resolution stays first-match-wins.
func loadCatalog(ctx context.Context, cfg *config.Config, log *zap.Logger) (*catalogSource, error) {
	opts := []catalog.Option{catalog.WithLogger(log)}
	src := &catalogSource{}

	switch cfg.CatalogSource {
	case config.SourceBuiltin:
		src.Catalog = catalog.Builtin(opts...)

	case config.SourceFile:
		doc, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		c, err := catalog.New(doc, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.CatalogPath, err)
		}
		src.Catalog = c

	case config.SourcePostgres:
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		c, err := database.LoadCatalog(ctx, opts...)
		if err != nil {
			database.Close()
			return nil, err
		}
		src.Catalog = c
		src.DB = database

	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}

	log.Info("catalog loaded", zap.String("source", cfg.CatalogSource))
	if err := src.Catalog.Check(); err != nil {
		log.Warn("catalog integrity problems", zap.Error(err))
	}
	return src, nil
}
