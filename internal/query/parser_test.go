package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-explorer/internal/catalog"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ParsedQuery
	}{
		{
			name: "category block",
			raw:  "{ about { name nickname foo } }",
			want: CategoryQuery{Category: catalog.About, Fields: []string{"name", "nickname", "foo"}},
		},
		{
			name: "query keyword stripped",
			raw:  "query { skills { langs } }",
			want: CategoryQuery{Category: catalog.Skills, Fields: []string{"langs"}},
		},
		{
			name: "keyword any case, no space",
			raw:  "QUERY{name}",
			want: FreestyleQuery{Fields: []string{"name"}},
		},
		{
			name: "multiline",
			raw:  "query {\n  experience {\n    latestRole\n    salary\n  }\n}",
			want: CategoryQuery{Category: catalog.Experience, Fields: []string{"latestRole", "salary"}},
		},
		{
			name: "category name case-insensitive",
			raw:  "{ About { name } }",
			want: CategoryQuery{Category: catalog.About, Fields: []string{"name"}},
		},
		{
			name: "whole category",
			raw:  "{ projects { } }",
			want: CategoryQuery{Category: catalog.Projects},
		},
		{
			name: "freestyle",
			raw:  "{ name salary python }",
			want: FreestyleQuery{Fields: []string{"name", "salary", "python"}},
		},
		{
			name: "bare category word is a field",
			raw:  "{ about }",
			want: FreestyleQuery{Fields: []string{"about"}},
		},
		{
			name: "help block",
			raw:  "{ help { about freestyle } }",
			want: HelpQuery{Topics: []string{"about", "freestyle"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		kind     ErrorKind
		contains string
	}{
		{name: "empty", raw: "", kind: KindEmptyQuery},
		{name: "whitespace", raw: "  \t\n ", kind: KindEmptyQuery},
		{name: "keyword only", raw: "query", kind: KindEmptyQuery},
		{name: "no braces", raw: "name email", kind: KindMalformedSyntax, contains: "must start with '{'"},
		{name: "unclosed", raw: "{ name", kind: KindMalformedSyntax, contains: "missing closing"},
		{name: "unclosed outer", raw: "{ about { name }", kind: KindMalformedSyntax, contains: "missing closing"},
		{name: "trailing", raw: "{ name } }", kind: KindMalformedSyntax, contains: "after closing"},
		{name: "too deep", raw: "{ about { name { first } } }", kind: KindMalformedSyntax},
		{name: "no category name", raw: "{ { name } }", kind: KindMalformedSyntax},
		{name: "fields before category", raw: "{ email about { name } }", kind: KindMalformedSyntax},
		{name: "empty freestyle", raw: "{ }", kind: KindEmptySection},
		{name: "unknown category", raw: "{ bogus { name } }", kind: KindUnknownCategory, contains: "about, education, experience, projects, skills, help"},
		{name: "hidden is not a category", raw: "{ hidden { nickname } }", kind: KindUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, IsParseError(err, tt.kind), "got %v", err)

			pe := err.(*ParseError)
			assert.NotEmpty(t, pe.Message)
			if tt.contains != "" {
				assert.Contains(t, pe.Message, tt.contains)
			}
		})
	}
}

func TestParseTerminal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ParsedQuery
	}{
		{name: "help", raw: "help", want: CommandQuery{Name: CommandHelp}},
		{name: "help alias", raw: " MAN ", want: CommandQuery{Name: CommandHelp}},
		{name: "clear alias", raw: "cls", want: CommandQuery{Name: CommandClear}},
		{name: "fields alias", raw: "ls", want: CommandQuery{Name: CommandFields}},
		{name: "stats", raw: "stats", want: CommandQuery{Name: CommandStats}},
		{name: "reset", raw: "Reset", want: CommandQuery{Name: CommandReset}},
		{name: "theme bare", raw: "theme", want: CommandQuery{Name: CommandTheme}},
		{name: "theme arg", raw: "theme Dracula", want: CommandQuery{Name: CommandTheme, Arg: "dracula"}},
		{name: "help with fields is a list", raw: "help name", want: FieldListQuery{Fields: []string{"help", "name"}}},
		{name: "shorthand", raw: "about[]", want: CategoryShorthand{Category: catalog.About}},
		{name: "shorthand case", raw: "Skills[]", want: CategoryShorthand{Category: catalog.Skills}},
		{name: "space list", raw: "name   email phone", want: FieldListQuery{Fields: []string{"name", "email", "phone"}}},
		{name: "comma list", raw: "name, email ,linkedin", want: FieldListQuery{Fields: []string{"name", "email", "linkedin"}}},
		{name: "comma mode keeps spaces", raw: "name,favorite subject", want: FieldListQuery{Fields: []string{"name", "favorite subject"}}},
		{name: "quoted token", raw: `name "full name" 'ai tools'`, want: FieldListQuery{Fields: []string{"name", "full name", "ai tools"}}},
		{name: "quoted comma", raw: `"a,b", c`, want: FieldListQuery{Fields: []string{"a,b", "c"}}},
		{name: "apostrophe inside word", raw: "don't email", want: FieldListQuery{Fields: []string{"don't", "email"}}},
		{name: "quote inside comma token", raw: `name, o"reilly, phone`, want: FieldListQuery{Fields: []string{"name", `o"reilly`, "phone"}}},
		{name: "theme prefix", raw: "themes", want: CommandQuery{Name: CommandTheme}},
		{name: "theme prefix with arg", raw: "Themes Monokai", want: CommandQuery{Name: CommandTheme, Arg: "monokai"}},
		{name: "brace freestyle", raw: "{ name }", want: FreestyleQuery{Fields: []string{"name"}}},
		{name: "brace category", raw: "query { about { name } }", want: CategoryQuery{Category: catalog.About, Fields: []string{"name"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTerminal(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTerminal_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind ErrorKind
	}{
		{name: "empty", raw: "   ", kind: KindEmptyQuery},
		{name: "unknown shorthand", raw: "bogus[]", kind: KindUnknownCategory},
		{name: "only commas", raw: ", ,,", kind: KindEmptySection},
		{name: "bad braces", raw: "{ name", kind: KindMalformedSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTerminal(tt.raw)
			require.Error(t, err)
			assert.True(t, IsParseError(err, tt.kind), "got %v", err)
		})
	}
}

func TestParseTerminal_UnknownShorthandListsCategories(t *testing.T) {
	_, err := ParseTerminal("bogus[]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "about[], education[], experience[], projects[], skills[]")
}
