package query

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-explorer/internal/catalog"
)

func newTestEngine(opts ...EngineOption) *Engine {
	return NewEngine(catalog.Builtin(), opts...)
}

func TestExecute_CategoryBlockExample(t *testing.T) {
	res := newTestEngine().Execute("{ about { name nickname foo } }")
	require.False(t, res.Failed())

	name, _ := res.Fields.Get("name")
	nickname, _ := res.Fields.Get("nickname")
	foo, ok := res.Fields.Get("foo")
	assert.Equal(t, "Fahad Hossain", name)
	assert.Equal(t, "Shuvo", nickname)
	assert.True(t, ok)
	assert.Nil(t, foo)

	md := res.Metadata
	assert.Equal(t, 3, md.TotalFields)
	assert.Equal(t, 1, md.ValidFields)
	assert.Equal(t, 1, md.HiddenFields)
	assert.Equal(t, 1, md.InvalidFields)
	assert.Equal(t, map[string]catalog.Classification{
		"name":     catalog.Normal,
		"nickname": catalog.HiddenField,
		"foo":      catalog.Invalid,
	}, md.FieldTypes)
	assert.Equal(t, ModeCategory, md.Mode)
	assert.Equal(t, []string{"name", "nickname", "foo"}, res.Fields.Keys())
}

func TestExecute_HiddenFieldsScopedAndFreestyle(t *testing.T) {
	e := newTestEngine()
	c := e.Catalog()

	for _, category := range catalog.RealCategories {
		for _, field := range c.HiddenFieldNames(category) {
			scoped := e.Execute("{ " + string(category) + " { " + field + " } }")
			free := e.Execute("{ " + field + " }")

			assert.Equal(t, catalog.HiddenField, scoped.Metadata.FieldTypes[field], "%s/%s", category, field)
			assert.Equal(t, catalog.HiddenField, free.Metadata.FieldTypes[field], "%s", field)

			scopedValue, _ := scoped.Fields.Get(field)
			freeValue, _ := free.Fields.Get(field)
			assert.Equal(t, scopedValue, freeValue)
		}
	}
}

func TestExecute_Idempotent(t *testing.T) {
	e := newTestEngine()

	for _, q := range []string{
		"{ about { name nickname foo } }",
		"{ nick langs python bogus }",
		"{ skills { } }",
		"{ help { } }",
		"",
	} {
		first, err := json.Marshal(e.Execute(q))
		require.NoError(t, err)
		second, err := json.Marshal(e.Execute(q))
		require.NoError(t, err)
		assert.JSONEq(t, string(first), string(second), q)
	}
}

func TestExecute_ExtraPrecedenceAndScoping(t *testing.T) {
	c, err := catalog.New(catalog.Document{
		About:  catalog.AboutSection{Name: "Ada", Email: "ada@example.com"},
		Skills: catalog.SkillsSection{Tools: []string{"git", "make"}},
		Extra:  catalog.Overlay{"tools": "extra tools write-up"},
	})
	require.NoError(t, err)
	e := NewEngine(c)

	free := e.Execute("{ tools }")
	value, _ := free.Fields.Get("tools")
	assert.Equal(t, "extra tools write-up", value)
	assert.Equal(t, catalog.HiddenField, free.Metadata.FieldTypes["tools"])
	assert.Equal(t, "extra", free.Metadata.Sources["tools"])

	scoped := e.Execute("{ skills { tools } }")
	value, _ = scoped.Fields.Get("tools")
	assert.Equal(t, []string{"git", "make"}, value)
	assert.Equal(t, catalog.Normal, scoped.Metadata.FieldTypes["tools"])

	term := e.ExecuteTerminal("tools")
	value, _ = term.Fields.Get("tools")
	assert.Equal(t, "extra tools write-up", value)
}

func TestExecute_CategoryBlockNeverReturnsExtra(t *testing.T) {
	res := newTestEngine().Execute("{ skills { python docker } }")
	assert.Equal(t, 2, res.Metadata.InvalidFields)
	python, _ := res.Fields.Get("python")
	assert.Nil(t, python)
}

func TestExecute_AliasesDoNotDeduplicate(t *testing.T) {
	res := newTestEngine().Execute("{ fullname realname name }")

	assert.Equal(t, []string{"fullname", "realname", "name"}, res.Fields.Keys())
	for _, key := range res.Fields.Keys() {
		v, _ := res.Fields.Get(key)
		assert.Equal(t, "Fahad Hossain", v)
		assert.Equal(t, "name", res.Metadata.Resolved[key])
	}
	assert.Equal(t, 3, res.Metadata.TotalFields)
	assert.Equal(t, 3, res.Metadata.ValidFields)
}

func TestExecute_DuplicateTokenCountedTwice(t *testing.T) {
	res := newTestEngine().Execute("{ name name }")

	assert.Equal(t, []string{"name"}, res.Fields.Keys())
	assert.Equal(t, 2, res.Metadata.TotalFields)
	assert.Equal(t, 2, res.Metadata.ValidFields)
}

func TestExecute_FreestyleResolvesAcrossCategories(t *testing.T) {
	res := newTestEngine().Execute("query { biography langs salary mongo bogus }")
	md := res.Metadata

	assert.Equal(t, ModeFreestyle, md.Mode)
	assert.Equal(t, map[string]string{
		"biography": "bio",
		"langs":     "programming_languages",
		"salary":    "salary",
		"mongo":     "mongodb",
		"bogus":     "bogus",
	}, md.Resolved)
	assert.Equal(t, map[string]string{
		"biography": "about",
		"langs":     "skills",
		"salary":    "experience",
		"mongo":     "extra",
	}, md.Sources)
	assert.Equal(t, 2, md.ValidFields)
	assert.Equal(t, 2, md.HiddenFields)
	assert.Equal(t, 1, md.InvalidFields)
}

func TestExecute_WholeCategory(t *testing.T) {
	e := newTestEngine()
	res := e.Execute("{ about { } }")
	require.False(t, res.Failed())

	section := e.Catalog().SectionFields(catalog.About)
	assert.Equal(t, len(section), res.Metadata.TotalFields)
	assert.Equal(t, len(section), res.Metadata.ValidFields)
	assert.Zero(t, res.Metadata.HiddenFields)
	assert.Zero(t, res.Metadata.InvalidFields)
	_, hasNickname := res.Fields.Get("nickname")
	assert.False(t, hasNickname)
	assert.Empty(t, res.Metadata.FieldTypes, "whole-category results name no fields")
	assert.Empty(t, res.Metadata.Resolved)
	assert.Empty(t, res.Metadata.Sources)
}

func TestExecute_Help(t *testing.T) {
	e := newTestEngine()

	scoped := e.Execute("{ skills { help } }")
	assert.Equal(t, catalog.Normal, scoped.Metadata.FieldTypes["help"])
	value, _ := scoped.Fields.Get("help")
	assert.IsType(t, catalog.Description{}, value)

	free := e.Execute("{ HELP }")
	assert.Equal(t, 1, free.Metadata.ValidFields)
	value, _ = free.Fields.Get("HELP")
	assert.IsType(t, catalog.FreestyleDescription{}, value)

	block := e.Execute("{ help { about freestyle nothing } }")
	assert.Equal(t, ModeHelp, block.Metadata.Mode)
	assert.Equal(t, 2, block.Metadata.ValidFields)
	assert.Equal(t, 1, block.Metadata.InvalidFields)

	all := e.Execute("{ help { } }")
	assert.Equal(t, []string{"about", "education", "experience", "projects", "skills", "hidden", "help", "freestyle"}, all.Fields.Keys())
	assert.Equal(t, 8, all.Metadata.ValidFields)
	assert.Empty(t, all.Metadata.FieldTypes)
	assert.Empty(t, all.Metadata.Resolved)
}

func TestExecute_ReservedTokensAreInvalid(t *testing.T) {
	e := newTestEngine()

	for _, raw := range []string{"{ name __metadata }", "{ about { name __error } }", "{ help { about __metadata } }"} {
		t.Run(raw, func(t *testing.T) {
			res := e.Execute(raw)
			require.False(t, res.Failed())
			assert.Equal(t, 2, res.Metadata.TotalFields)
			assert.Equal(t, 1, res.Metadata.InvalidFields)
			assert.Len(t, res.Fields, 1)

			data, err := json.Marshal(res)
			require.NoError(t, err)
			assert.Equal(t, 1, strings.Count(string(data), `"__metadata"`), string(data))
			assert.NotContains(t, string(data), `"__error"`)
		})
	}
}

func TestExecute_Errors(t *testing.T) {
	e := newTestEngine()

	empty := e.Execute("")
	require.True(t, empty.Failed())
	assert.Equal(t, "error", empty.Error.Type)
	assert.Equal(t, KindEmptyQuery, empty.Error.Kind)
	assert.NotEmpty(t, empty.Error.Message)
	assert.Nil(t, empty.Fields)

	unknown := e.Execute("{ bogus { name } }")
	require.True(t, unknown.Failed())
	assert.Equal(t, KindUnknownCategory, unknown.Error.Kind)
	assert.Contains(t, unknown.Error.Message, catalog.CategoryNames(", "))
}

func TestResult_MarshalJSON(t *testing.T) {
	e := newTestEngine()

	data, err := json.Marshal(e.Execute("{ about { title name foo } }"))
	require.NoError(t, err)
	s := string(data)
	assert.True(t, strings.HasPrefix(s, `{"title":"Python Developer","name":"Fahad Hossain","foo":null,"__metadata":{`), s)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	md := decoded["__metadata"].(map[string]any)
	assert.EqualValues(t, 3, md["totalFields"])
	assert.EqualValues(t, 1, md["invalidFields"])

	data, err = json.Marshal(e.Execute("   "))
	require.NoError(t, err)
	assert.JSONEq(t, `{"__error":{"message":"Query cannot be empty","type":"error","kind":"empty_query"}}`, string(data))
}

type stubCommands struct {
	got []CommandQuery
}

func (s *stubCommands) HandleCommand(cmd CommandQuery) TerminalResult {
	s.got = append(s.got, cmd)
	return TerminalResult{
		Command:  &CommandOutput{Action: cmd.Name, Theme: cmd.Arg},
		Metadata: Metadata{TotalFields: 1, ValidFields: 1},
	}
}

func TestExecuteTerminal(t *testing.T) {
	commands := &stubCommands{}
	e := newTestEngine(WithCommandHandler(commands))

	t.Run("shorthand returns whole category", func(t *testing.T) {
		res := e.ExecuteTerminal("about[]")
		section := e.Catalog().SectionFields(catalog.About)
		assert.Equal(t, len(section), res.Metadata.ValidFields)
		assert.Equal(t, len(section), res.Metadata.TotalFields)
		assert.Zero(t, res.Metadata.HiddenFields)
		assert.Zero(t, res.Metadata.InvalidFields)
	})

	t.Run("flat list searches everywhere", func(t *testing.T) {
		res := e.ExecuteTerminal("name,nickname,python,bogus")
		assert.Equal(t, 1, res.Metadata.ValidFields)
		assert.Equal(t, 2, res.Metadata.HiddenFields)
		assert.Equal(t, 1, res.Metadata.InvalidFields)
		assert.Equal(t, map[string]string{"name": "about", "nickname": "about", "python": "extra"}, res.Metadata.Sources)
	})

	t.Run("commands go to the handler", func(t *testing.T) {
		res := e.ExecuteTerminal("theme monokai")
		require.NotNil(t, res.Command)
		assert.Equal(t, ModeCommand, res.Metadata.Mode)
		if diff := cmp.Diff([]CommandQuery{{Name: CommandTheme, Arg: "monokai"}}, commands.got); diff != "" {
			t.Errorf("commands mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("parse errors are data", func(t *testing.T) {
		res := e.ExecuteTerminal("bogus[]")
		require.True(t, res.Failed())
		assert.Equal(t, KindUnknownCategory, res.Error.Kind)
		assert.Equal(t, 1, res.Metadata.InvalidFields)

		res = e.ExecuteTerminal("")
		require.True(t, res.Failed())
		assert.Zero(t, res.Metadata.InvalidFields)
	})
}

func TestExecuteTerminal_NoCommandHandler(t *testing.T) {
	res := newTestEngine().ExecuteTerminal("stats")
	require.NotNil(t, res.Command)
	assert.Contains(t, res.Command.Message, "not available")
	assert.Equal(t, 1, res.Metadata.InvalidFields)
}

func TestTerminalResult_MarshalJSON(t *testing.T) {
	e := newTestEngine()

	data, err := json.Marshal(e.ExecuteTerminal("email phone"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `{"data":{"email":"fahadshuvo33@gmail.com","phone":"+880 1798-533-533"},"metadata":{`), string(data))

	data, err = json.Marshal(e.ExecuteTerminal("{ name"))
	require.NoError(t, err)
	var decoded struct {
		Data struct {
			Message string `json:"message"`
			Kind    string `json:"kind"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "malformed_syntax", decoded.Data.Kind)
}

func TestField(t *testing.T) {
	e := newTestEngine()

	res := e.Field(catalog.About, "gmail")
	assert.Equal(t, catalog.Normal, res.Type)
	assert.Equal(t, "fahadshuvo33@gmail.com", res.Value)
	assert.Empty(t, res.Message)

	res = e.Field(catalog.Skills, "nickname")
	assert.Equal(t, catalog.Invalid, res.Type)
	assert.Equal(t, "Field 'nickname' is not valid for category 'skills'", res.Message)
}

type recordingObserver struct {
	surfaces []Surface
	elapsed  []time.Duration
}

func (r *recordingObserver) ObserveQuery(surface Surface, _ Metadata, _ *ErrorDescriptor, elapsed time.Duration) {
	r.surfaces = append(r.surfaces, surface)
	r.elapsed = append(r.elapsed, elapsed)
}

func TestObserver(t *testing.T) {
	obs := &recordingObserver{}
	e := newTestEngine(WithObserver(obs))

	e.Execute("{ name }")
	e.ExecuteTerminal("name")
	e.Execute("")

	assert.Equal(t, []Surface{SurfaceGraphQL, SurfaceTerminal, SurfaceGraphQL}, obs.surfaces)
	for _, d := range obs.elapsed {
		assert.GreaterOrEqual(t, d, time.Duration(0))
	}
}

func TestExamples(t *testing.T) {
	c := catalog.Builtin()

	assert.Equal(t, "query {\n  skills {\n    programming_languages\n    frameworks\n    databases\n  }\n}",
		CategoryExample(c, catalog.Skills))
	assert.Equal(t, "query {\n  name\n  latestRole\n  programming_languages\n  nickname\n  git\n}",
		FreestyleExample(c))

	parsed, err := Parse(CategoryExample(c, catalog.About, "name", "nick"))
	require.NoError(t, err)
	assert.Equal(t, CategoryQuery{Category: catalog.About, Fields: []string{"name", "nick"}}, parsed)

	parsed, err = Parse(FreestyleExample(c))
	require.NoError(t, err)
	assert.IsType(t, FreestyleQuery{}, parsed)
}
