package query

import (
	"fmt"
	"strings"

	"github.com/jonathan/portfolio-explorer/internal/catalog"
)

// Parse parses a GraphQL-like query. It returns one of CategoryQuery, HelpQuery or
// FreestyleQuery, or a *ParseError.
func Parse(raw string) (ParsedQuery, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, emptyQueryError()
	}
	s = stripQueryKeyword(s)
	if s == "" {
		return nil, emptyQueryError()
	}
	return parseBraces(s)
}

// ParseTerminal parses a terminal-surface query. Commands are recognized first, then the
// brace forms accepted by Parse, then `category[]`, and anything else is a field list.
func ParseTerminal(raw string) (ParsedQuery, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, emptyQueryError()
	}
	if cmd, ok := parseCommand(s); ok {
		return cmd, nil
	}

	s = stripQueryKeyword(s)
	switch {
	case s == "":
		return nil, emptyQueryError()
	case strings.HasPrefix(s, "{"):
		return parseBraces(s)
	case strings.HasSuffix(s, "[]") && len(s) > 2:
		return parseShorthand(s)
	}

	fields := splitFields(s)
	if len(fields) == 0 {
		return nil, emptySectionError()
	}
	return FieldListQuery{Fields: fields}, nil
}

// parseBraces parses `{ words }` and `{ word { words } }`.
func parseBraces(s string) (ParsedQuery, error) {
	tokens := lexBraces(s)
	if len(tokens) == 0 || tokens[0].kind != tokenOpen {
		return nil, malformedError("query must start with '{'")
	}

	p := &braceParser{tokens: tokens, pos: 1}
	words, nested, err := p.words()
	if err != nil {
		return nil, err
	}

	if !nested {
		if err := p.closeAndEnd(); err != nil {
			return nil, err
		}
		if len(words) == 0 {
			return nil, emptySectionError()
		}
		return FreestyleQuery{Fields: words}, nil
	}

	// `{ name { ... } }` requires exactly one word before the nested block.
	if len(words) != 1 {
		if len(words) == 0 {
			return nil, malformedError("missing category name before '{'")
		}
		return nil, malformedError(fmt.Sprintf("unexpected fields before category %q", words[len(words)-1]))
	}
	p.pos++ // nested '{'

	fields, deeper, err := p.words()
	if err != nil {
		return nil, err
	}
	if deeper {
		return nil, malformedError("selections can only be nested one level deep")
	}
	if err := p.expectClose(); err != nil {
		return nil, err
	}
	if err := p.closeAndEnd(); err != nil {
		return nil, err
	}

	return categoryBlock(words[0], fields)
}

func categoryBlock(name string, fields []string) (ParsedQuery, error) {
	lower := strings.ToLower(name)
	if catalog.Category(lower) == catalog.Help {
		return HelpQuery{Topics: fields}, nil
	}
	category, err := catalog.ParseCategory(lower)
	if err != nil {
		return nil, &ParseError{
			Kind: KindUnknownCategory,
			Message: fmt.Sprintf("Invalid category '%s'. Must be one of: %s, %s",
				name, catalog.CategoryNames(", "), catalog.Help),
		}
	}
	return CategoryQuery{Category: category, Fields: fields}, nil
}

func parseShorthand(s string) (ParsedQuery, error) {
	name := strings.TrimSpace(strings.TrimSuffix(s, "[]"))
	category, err := catalog.ParseCategory(name)
	if err != nil {
		shorthands := make([]string, len(catalog.RealCategories))
		for i, c := range catalog.RealCategories {
			shorthands[i] = string(c) + "[]"
		}
		return nil, &ParseError{
			Kind: KindUnknownCategory,
			Message: fmt.Sprintf("Invalid category: %s[]. Available categories: %s",
				name, strings.Join(shorthands, ", ")),
		}
	}
	return CategoryShorthand{Category: category}, nil
}

type braceParser struct {
	tokens []token
	pos    int
}

// words consumes words until a brace. nested reports whether the brace is an opening one;
// the brace itself is not consumed.
func (p *braceParser) words() (words []string, nested bool, err error) {
	for p.pos < len(p.tokens) {
		t := p.tokens[p.pos]
		switch t.kind {
		case tokenWord:
			words = append(words, t.text)
			p.pos++
		case tokenOpen:
			return words, true, nil
		default:
			return words, false, nil
		}
	}
	return nil, false, malformedError("missing closing '}'")
}

func (p *braceParser) expectClose() error {
	if p.pos >= len(p.tokens) {
		return malformedError("missing closing '}'")
	}
	if p.tokens[p.pos].kind != tokenClose {
		return malformedError(fmt.Sprintf("unexpected %q", p.tokens[p.pos].text))
	}
	p.pos++
	return nil
}

func (p *braceParser) closeAndEnd() error {
	if err := p.expectClose(); err != nil {
		return err
	}
	if p.pos != len(p.tokens) {
		return malformedError("unexpected text after closing '}'")
	}
	return nil
}
