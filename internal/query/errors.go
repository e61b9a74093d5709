package query

import (
	"errors"
	"fmt"
)

// ErrorKind classifies parse failures.
type ErrorKind string

const (
	KindEmptyQuery      ErrorKind = "empty_query"
	KindMalformedSyntax ErrorKind = "malformed_syntax"
	KindUnknownCategory ErrorKind = "unknown_category"
	KindEmptySection    ErrorKind = "empty_section"
)

// ParseError is returned by the parsers. Message is meant for the person who typed the query.
type ParseError struct {
	Kind    ErrorKind
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// IsParseError reports whether err is a ParseError of the given kind.
func IsParseError(err error, kind ErrorKind) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == kind
}

const usageHint = "Use: { category { field1 field2 } } or { field1 field2 field3 }"

func emptyQueryError() *ParseError {
	return &ParseError{Kind: KindEmptyQuery, Message: "Query cannot be empty"}
}

func malformedError(detail string) *ParseError {
	return &ParseError{
		Kind:    KindMalformedSyntax,
		Message: fmt.Sprintf("Invalid query format: %s. %s", detail, usageHint),
	}
}

func emptySectionError() *ParseError {
	return &ParseError{
		Kind:    KindEmptySection,
		Message: "No fields requested. List at least one field, or use { category { } } for a whole category",
	}
}
