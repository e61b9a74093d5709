package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_Builtin(t *testing.T) {
	data, err := Encode(BuiltinDocument())
	require.NoError(t, err)

	doc, err := Decode(data)
	require.NoError(t, err)

	c, err := New(doc)
	require.NoError(t, err)
	builtin := Builtin()

	for _, category := range RealCategories {
		if diff := cmp.Diff(builtin.FieldNames(category), c.FieldNames(category)); diff != "" {
			t.Errorf("%s field names mismatch (-want +got):\n%s", category, diff)
		}
		if diff := cmp.Diff(builtin.HiddenFieldNames(category), c.HiddenFieldNames(category)); diff != "" {
			t.Errorf("%s hidden names mismatch (-want +got):\n%s", category, diff)
		}
	}
	assert.Equal(t, builtin.ExtraFieldNames(), c.ExtraFieldNames())
	assert.Equal(t, builtin.Aliases(), c.Aliases())
	assert.Equal(t, "Fahad Hossain", c.Locate("name", About).Value)
	assert.Equal(t, "Shuvo", c.Locate("nickname", Freestyle).Value)
	assert.Equal(t, "mongodb", c.Resolve("mongo"))
}

func TestDecode_RejectsInvalidDocument(t *testing.T) {
	_, err := Decode([]byte(`{"about": {"name": "x"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid catalog document")
}

func TestDecode_DefaultsDescriptions(t *testing.T) {
	doc, err := Decode([]byte(`{
		"about": {"name": "Ada", "title": "Engineer", "email": "ada@example.com"},
		"education": {}, "experience": {}, "projects": {}, "skills": {}
	}`))
	require.NoError(t, err)
	assert.Nil(t, doc.Descriptions)
	assert.NotNil(t, doc.Aliases)

	c, err := New(doc)
	require.NoError(t, err)
	assert.Equal(t, "Technical skills and competencies", c.Descriptions().Categories[Skills].Description)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data, err := Encode(BuiltinDocument())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Fahad Hossain", doc.About.Name)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalog file")
}
