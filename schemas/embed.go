// Package schemas embeds the JSON Schema documents shipped with the repository.
package schemas

import _ "embed"

// Catalog is the JSON Schema every catalog document must satisfy.
//
//go:embed catalog.schema.json
var Catalog string
