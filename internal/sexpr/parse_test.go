package sexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) string {
	t.Helper()
	d, err := Parse(src)
	require.NoError(t, err, "Parse(%q)", src)
	return d.Pretty(80)
}

func TestParseText(t *testing.T) {
	assert.Equal(t, "hello", mustParse(t, `(text "hello")`))
}

func TestParseChar(t *testing.T) {
	assert.Equal(t, "x", mustParse(t, `(char "x")`))
}

func TestParseConcatAndLine(t *testing.T) {
	assert.Equal(t, "a\nb", mustParse(t, `(concat (text "a") (line) (text "b"))`))
}

func TestParseGroupFitsFlat(t *testing.T) {
	assert.Equal(t, "a b", mustParse(t, `(group (concat (text "a") (softline) (text "b")))`))
}

func TestParseNest(t *testing.T) {
	d, err := Parse(`(concat (text "a") (nest 2 (concat (line) (text "b"))))`)
	require.NoError(t, err)
	assert.Equal(t, "a\n  b", d.Pretty(80))
}

func TestParseSep(t *testing.T) {
	assert.Equal(t, "a, b, c", mustParse(t, `(sep (text ", ") (text "a") (text "b") (text "c"))`))
}

func TestParseSurroundForms(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`(angles (text "x"))`, "<x>"},
		{`(braces (text "x"))`, "{x}"},
		{`(brackets (text "x"))`, "[x]"},
		{`(quotes (text "x"))`, "'x'"},
		{`(dquotes (text "x"))`, `"x"`},
		{`(parens (text "x"))`, "(x)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mustParse(t, tt.src))
	}
}

func TestParseUnknownOperator(t *testing.T) {
	_, err := Parse(`(frobnicate "x")`)
	require.Error(t, err)
}

func TestParseUnterminatedString(t *testing.T) {
	_, err := Parse(`(text "unterminated`)
	require.Error(t, err)
}

func TestParseMissingCloseParen(t *testing.T) {
	_, err := Parse(`(text "a"`)
	require.Error(t, err)
}

func TestParseBareAtomRejected(t *testing.T) {
	_, err := Parse(`bare`)
	require.Error(t, err)
}

func TestParseEscapeSequences(t *testing.T) {
	assert.Equal(t, "a\tb", mustParse(t, `(text "a\tb")`))
}
