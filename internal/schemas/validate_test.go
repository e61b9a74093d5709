package schemas

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rootschemas "github.com/jonathan/portfolio-explorer/schemas"
)

const minimalCatalog = `{
  "about": {"name": "Ada", "title": "Engineer", "email": "ada@example.com"},
  "education": {},
  "experience": {},
  "projects": {},
  "skills": {"programming_languages": ["Go"]}
}`

func TestCatalogSchema_IsValidJSON(t *testing.T) {
	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(rootschemas.Catalog), &schema))

	assert.Equal(t, "object", schema["type"])
	assert.Contains(t, schema, "$schema")
	assert.Contains(t, schema, "properties")
	assert.Contains(t, schema, "definitions")
}

func TestValidateCatalog(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantError bool
	}{
		{name: "minimal document", doc: minimalCatalog},
		{
			name:      "missing section",
			doc:       `{"about": {"name": "Ada", "title": "x", "email": "y"}, "education": {}, "experience": {}, "projects": {}}`,
			wantError: true,
		},
		{
			name: "unknown hidden category",
			doc: `{"about": {"name": "Ada", "title": "x", "email": "y"}, "education": {}, "experience": {},
				"projects": {}, "skills": {}, "hidden": {"bogus": {"secret": 1}}}`,
			wantError: true,
		},
		{
			name: "bad project status",
			doc: `{"about": {"name": "Ada", "title": "x", "email": "y"}, "education": {}, "experience": {},
				"projects": {"other": [{"name": "p", "description": "d", "tech": [], "status": "abandoned"}]}, "skills": {}}`,
			wantError: true,
		},
		{
			name: "alias entry without canonical",
			doc: `{"about": {"name": "Ada", "title": "x", "email": "y"}, "education": {}, "experience": {},
				"projects": {}, "skills": {}, "aliases": [{"aliases": ["n"]}]}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCatalog([]byte(tt.doc))
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "error should be ValidationError type")
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateCatalog_MalformedJSON(t *testing.T) {
	err := ValidateCatalog([]byte("{ invalid json }"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "about.name", Message: "String length must be greater than or equal to 1"},
		{Field: "(root)", Message: "skills is required"},
	}}
	assert.Equal(t, "validation failed:\n"+
		"  1. about.name: String length must be greater than or equal to 1\n"+
		"  2. (root): skills is required\n", err.Error())
}
