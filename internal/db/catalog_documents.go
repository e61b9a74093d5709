package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/portfolio-explorer/internal/catalog"
	"github.com/jonathan/portfolio-explorer/internal/schemas"
)

// ErrNoCatalog is returned when the catalog_documents table is empty.
var ErrNoCatalog = errors.New("no catalog document stored")

// CatalogRecord is one stored catalog document.
type CatalogRecord struct {
	ID        uuid.UUID `json:"id"`
	Version   string    `json:"version"`
	Content   []byte    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveCatalogDocument validates doc against the catalog schema and stores it as a new
// version. The newest row is the one LoadCatalog serves.
func (db *DB) SaveCatalogDocument(ctx context.Context, version string, doc catalog.Document) (uuid.UUID, error) {
	content, err := catalog.Encode(doc)
	if err != nil {
		return uuid.Nil, err
	}
	if err := schemas.ValidateCatalog(content); err != nil {
		return uuid.Nil, fmt.Errorf("refusing to store invalid catalog: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO catalog_documents (id, version, content) VALUES ($1, $2, $3)`,
		id, version, content,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save catalog document: %w", err)
	}
	return id, nil
}

// LatestCatalogDocument returns the most recently stored document, or ErrNoCatalog.
func (db *DB) LatestCatalogDocument(ctx context.Context) (*CatalogRecord, error) {
	var rec CatalogRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, version, content, created_at
		 FROM catalog_documents
		 ORDER BY created_at DESC
		 LIMIT 1`,
	).Scan(&rec.ID, &rec.Version, &rec.Content, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoCatalog
		}
		return nil, fmt.Errorf("failed to get latest catalog document: %w", err)
	}
	return &rec, nil
}

// ListCatalogVersions returns every stored version, newest first, without content.
func (db *DB) ListCatalogVersions(ctx context.Context) ([]CatalogRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, version, created_at FROM catalog_documents ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog versions: %w", err)
	}
	defer rows.Close()

	var records []CatalogRecord
	for rows.Next() {
		var rec CatalogRecord
		if err := rows.Scan(&rec.ID, &rec.Version, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan catalog version: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list catalog versions: %w", err)
	}
	return records, nil
}

// LoadCatalog decodes the latest stored document into an immutable catalog.
func (db *DB) LoadCatalog(ctx context.Context, opts ...catalog.Option) (*catalog.Catalog, error) {
	rec, err := db.LatestCatalogDocument(ctx)
	if err != nil {
		return nil, err
	}
	return rec.Catalog(opts...)
}

// Catalog decodes the record content.
func (rec *CatalogRecord) Catalog(opts ...catalog.Option) (*catalog.Catalog, error) {
	doc, err := catalog.Decode(rec.Content)
	if err != nil {
		return nil, fmt.Errorf("catalog version %s: %w", rec.Version, err)
	}
	return catalog.New(doc, opts...)
}
