// Package rendering turns a catalog document into a LaTeX résumé.
package rendering

import "fmt"

// TemplateError is returned when a résumé template cannot be read, parsed or executed.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
