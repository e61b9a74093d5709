package query

import (
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenOpen
	tokenClose
)

type token struct {
	kind tokenKind
	text string
}

// lexBraces splits s into braces and whitespace-separated words.
func lexBraces(s string) []token {
	var tokens []token
	var word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, token{kind: tokenWord, text: word.String()})
			word.Reset()
		}
	}

	for _, r := range s {
		switch {
		case r == '{':
			flush()
			tokens = append(tokens, token{kind: tokenOpen, text: "{"})
		case r == '}':
			flush()
			tokens = append(tokens, token{kind: tokenClose, text: "}"})
		case unicode.IsSpace(r):
			flush()
		default:
			word.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// splitFields tokenizes a flat terminal field list. If s contains a comma the list is
// split on commas, otherwise on runs of whitespace. A token wrapped in matching single or
// double quotes is kept whole and the quotes are removed. A quote inside a word is a
// literal character.
func splitFields(s string) []string {
	commaMode := strings.Contains(s, ",")
	isDelim := func(r rune) bool {
		if commaMode {
			return r == ','
		}
		return unicode.IsSpace(r)
	}

	var fields []string
	var current strings.Builder
	var quote rune

	flush := func() {
		f := unquote(strings.TrimSpace(current.String()))
		if f != "" {
			fields = append(fields, f)
		}
		current.Reset()
	}

	for _, r := range s {
		switch {
		case quote != 0:
			current.WriteRune(r)
			if r == quote {
				quote = 0
			}
		case (r == '"' || r == '\'') && strings.TrimSpace(current.String()) == "":
			quote = r
			current.WriteRune(r)
		case isDelim(r):
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return fields
}

func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && first == last {
			return strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}

// stripQueryKeyword removes a leading `query` keyword, case-insensitively, when it is
// followed by whitespace, a brace or nothing.
func stripQueryKeyword(s string) string {
	const kw = "query"
	if len(s) < len(kw) || !strings.EqualFold(s[:len(kw)], kw) {
		return s
	}
	rest := s[len(kw):]
	if rest == "" {
		return ""
	}
	if r := rune(rest[0]); r == '{' || unicode.IsSpace(r) {
		return strings.TrimSpace(rest)
	}
	return s
}
