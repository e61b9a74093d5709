package query

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/jonathan/portfolio-explorer/internal/catalog"
)

// Mode records which path produced a result.
type Mode string

const (
	ModeCategory  Mode = "category"
	ModeFreestyle Mode = "freestyle"
	ModeHelp      Mode = "help"
	ModeCommand   Mode = "command"
	ModeError     Mode = "error"
)

// Fields is an ordered field map. It marshals to a JSON object whose keys keep insertion
// order. Setting an existing key replaces its value in place.
type Fields []catalog.Field

// Get returns the value stored under name.
func (f Fields) Get(name string) (any, bool) {
	for _, field := range f {
		if field.Name == name {
			return field.Value, true
		}
	}
	return nil, false
}

// Keys returns the field names in order.
func (f Fields) Keys() []string {
	keys := make([]string, len(f))
	for i, field := range f {
		keys[i] = field.Name
	}
	return keys
}

func (f *Fields) set(name string, value any) {
	for i := range *f {
		if (*f)[i].Name == name {
			(*f)[i].Value = value
			return
		}
	}
	*f = append(*f, catalog.Field{Name: name, Value: value})
}

// MarshalJSON writes the fields as a JSON object in order.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := f.writeObject(&buf, nil); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeObject writes f followed by the optional trailing entries as one JSON object.
func (f Fields) writeObject(buf *bytes.Buffer, trailing Fields) error {
	buf.WriteByte('{')
	first := true
	for _, list := range []Fields{f, trailing} {
		for _, field := range list {
			if !first {
				buf.WriteByte(',')
			}
			first = false

			key, err := json.Marshal(field.Name)
			if err != nil {
				return err
			}
			value, err := json.Marshal(field.Value)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(value)
		}
	}
	buf.WriteByte('}')
	return nil
}

// reservedPrefix marks result keys written by the engine itself (`__metadata`, `__error`).
const reservedPrefix = "__"

func reservedKey(token string) bool {
	return strings.HasPrefix(token, reservedPrefix)
}

// Metadata aggregates the per-field classification of one execution.
type Metadata struct {
	TotalFields   int                               `json:"totalFields"`
	ValidFields   int                               `json:"validFields"`
	HiddenFields  int                               `json:"hiddenFields"`
	InvalidFields int                               `json:"invalidFields"`
	FieldTypes    map[string]catalog.Classification `json:"fieldTypes,omitempty"`
	Sources       map[string]string                 `json:"sources,omitempty"`
	Resolved      map[string]string                 `json:"resolved,omitempty"`
	Mode          Mode                              `json:"mode,omitempty"`
}

func newMetadata(mode Mode) Metadata {
	return Metadata{
		FieldTypes: make(map[string]catalog.Classification),
		Sources:    make(map[string]string),
		Resolved:   make(map[string]string),
		Mode:       mode,
	}
}

// count tallies one requested token. Duplicate tokens are tallied every time they appear.
func (m *Metadata) count(token, canonical string, loc catalog.Location) {
	m.tally(loc.Classification)
	m.FieldTypes[token] = loc.Classification
	m.Resolved[token] = canonical
	if loc.Source != "" {
		m.Sources[token] = loc.Source
	}
}

// tally updates the counters only. Results that were not requested field by field use it
// so that nothing is reported as discovered.
func (m *Metadata) tally(c catalog.Classification) {
	m.TotalFields++
	switch c {
	case catalog.Normal:
		m.ValidFields++
	case catalog.HiddenField:
		m.HiddenFields++
	default:
		m.InvalidFields++
	}
}

// ErrorDescriptor is the payload that replaces data when a query cannot be parsed.
type ErrorDescriptor struct {
	Message string    `json:"message"`
	Type    string    `json:"type"`
	Kind    ErrorKind `json:"kind"`
}

func newErrorDescriptor(err error) *ErrorDescriptor {
	desc := &ErrorDescriptor{Message: err.Error(), Type: "error", Kind: KindMalformedSyntax}
	if pe, ok := err.(*ParseError); ok {
		desc.Message = pe.Message
		desc.Kind = pe.Kind
	}
	return desc
}

// Result is the outcome of a GraphQL-surface execution. Exactly one of Error or
// Fields/Metadata is meaningful.
type Result struct {
	Fields   Fields
	Metadata Metadata
	Error    *ErrorDescriptor
}

// Failed reports whether the query could not be parsed.
func (r Result) Failed() bool {
	return r.Error != nil
}

// MarshalJSON renders `{"__error": {...}}` for failures and otherwise the requested
// fields in order followed by `__metadata`.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Error != nil {
		return json.Marshal(struct {
			Error *ErrorDescriptor `json:"__error"`
		}{r.Error})
	}
	var buf bytes.Buffer
	if err := r.Fields.writeObject(&buf, Fields{{Name: "__metadata", Value: r.Metadata}}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CommandOutput is the data of a terminal command result.
type CommandOutput struct {
	Action  string `json:"action,omitempty"`
	Message string `json:"message,omitempty"`
	Theme   string `json:"theme,omitempty"`
}

// TerminalResult is the outcome of a terminal-surface execution. Data is carried by
// exactly one of Fields, Command or Error.
type TerminalResult struct {
	Fields   Fields
	Command  *CommandOutput
	Error    *ErrorDescriptor
	Metadata Metadata
}

// Failed reports whether the input could not be parsed.
func (r TerminalResult) Failed() bool {
	return r.Error != nil
}

// MarshalJSON renders `{"data": ..., "metadata": ...}`.
func (r TerminalResult) MarshalJSON() ([]byte, error) {
	var data any = r.Fields
	switch {
	case r.Error != nil:
		data = struct {
			Message string    `json:"message"`
			Kind    ErrorKind `json:"kind"`
		}{r.Error.Message, r.Error.Kind}
	case r.Command != nil:
		data = r.Command
	}
	return json.Marshal(struct {
		Data     any      `json:"data"`
		Metadata Metadata `json:"metadata"`
	}{data, r.Metadata})
}

// FieldResult is the outcome of a single-field lookup.
type FieldResult struct {
	Value   any                    `json:"value"`
	Type    catalog.Classification `json:"type"`
	Source  string                 `json:"source,omitempty"`
	Message string                 `json:"message,omitempty"`
}
