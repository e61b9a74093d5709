package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Backend Developer", "Backend Developer"},
		{"backslash", `a\b`, `a\textbackslash{}b`},
		{"braces", "{x}", `\{x\}`},
		{"money and percent", "$5 & 10%", `\$5 \& 10\%`},
		{"hash and underscore", "#1 my_var", `\#1 my\_var`},
		{"caret and tilde", "^~", `\textasciicircum{}\textasciitilde{}`},
		{"en dash", "2022 – 2024", "2022 -- 2024"},
		{"em dash", "a—b", "a---b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLaTeX(tt.in))
		})
	}
}

func TestEscapeAll_DropsBlankItems(t *testing.T) {
	assert.Equal(t, []string{"C\\#", "Go"}, escapeAll([]string{"C#", "  ", "Go"}))
}
