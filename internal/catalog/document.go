package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/portfolio-explorer/internal/schemas"
)

// Decode validates data against the catalog schema and decodes it into a Document.
func Decode(data []byte) (Document, error) {
	if err := schemas.ValidateCatalog(data); err != nil {
		return Document{}, fmt.Errorf("invalid catalog document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to decode catalog document: %w", err)
	}
	if doc.Aliases == nil {
		doc.Aliases = AliasTable{}
	}
	return doc, nil
}

// LoadFile reads and decodes a catalog document from path.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	doc, err := Decode(data)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Encode renders doc as indented JSON in the format accepted by Decode.
func Encode(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog document: %w", err)
	}
	return data, nil
}
