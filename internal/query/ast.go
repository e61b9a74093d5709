// Package query parses portfolio query strings and executes them against a catalog.
//
// Two surfaces are supported. The GraphQL-like surface accepts `{ category { f1 f2 } }`
// and `{ f1 f2 }` with an optional leading `query` keyword. The terminal surface accepts
// the same brace forms plus commands, `category[]` shorthands and flat field lists.
package query

import "github.com/jonathan/portfolio-explorer/internal/catalog"

// ParsedQuery is the closed set of query shapes produced by the parsers.
type ParsedQuery interface {
	parsedQuery()
}

// CommandQuery is a terminal command such as `help` or `theme dracula`.
type CommandQuery struct {
	Name string
	Arg  string
}

// CategoryQuery is a category-scoped block: `{ about { name email } }`. An empty Fields
// list selects the whole category.
type CategoryQuery struct {
	Category catalog.Category
	Fields   []string
}

// HelpQuery is the help block `{ help { about freestyle } }`. An empty Topics list
// selects every description record.
type HelpQuery struct {
	Topics []string
}

// FreestyleQuery is an unscoped brace query: `{ name salary python }`.
type FreestyleQuery struct {
	Fields []string
}

// CategoryShorthand is the terminal form `about[]`.
type CategoryShorthand struct {
	Category catalog.Category
}

// FieldListQuery is a bare terminal field list: `name email` or `name,email`.
type FieldListQuery struct {
	Fields []string
}

func (CommandQuery) parsedQuery()      {}
func (CategoryQuery) parsedQuery()     {}
func (HelpQuery) parsedQuery()         {}
func (FreestyleQuery) parsedQuery()    {}
func (CategoryShorthand) parsedQuery() {}
func (FieldListQuery) parsedQuery()    {}
