package bembo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docsABC() []Doc {
	return []Doc{Text("a"), Text("b"), Text("c")}
}

func TestJoin(t *testing.T) {
	require.Equal(t, "abc", Join(docsABC()...).Pretty(80))
}

func TestSepWithTextSeparator(t *testing.T) {
	got := Sep(Text(", "), docsABC()...).Pretty(80)
	assert.Equal(t, "a, b, c", got)
}

func TestSepWithSoftLineSeparator(t *testing.T) {
	tests := []struct {
		cols int
		want string
	}{
		{80, "a b c"},
		{1, "a\nb\nc"},
		{2, "a\nb\nc"},
		{3, "a b\nc"},
	}

	for _, tt := range tests {
		got := Sep(SoftLine(), docsABC()...).Pretty(tt.cols)
		assert.Equalf(t, tt.want, got, "cols=%d", tt.cols)
	}
}

func TestSepWithCommaSoftLineSeparator(t *testing.T) {
	sep := Char(',').Append(SoftLine())

	tests := []struct {
		cols int
		want string
	}{
		{3, "a,\nb,\nc"},
		{5, "a, b,\nc"},
	}

	for _, tt := range tests {
		got := Sep(sep, docsABC()...).Pretty(tt.cols)
		assert.Equalf(t, tt.want, got, "cols=%d", tt.cols)
	}
}

func TestSepEmpty(t *testing.T) {
	require.True(t, Sep(Text(", ")).IsNil())
}

func TestSurroundHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"Angles", Angles(Text("x")).Pretty(80), "<x>"},
		{"Braces", Braces(Text("x")).Pretty(80), "{x}"},
		{"Brackets", Brackets(Text("x")).Pretty(80), "[x]"},
		{"Quotes", Quotes(Text("x")).Pretty(80), "'x'"},
		{"DQuotes", DQuotes(Text("x")).Pretty(80), `"x"`},
		{"Parens", Parens(Text("x")).Pretty(80), "(x)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestSoftLineAndSoftBreak(t *testing.T) {
	hello := Text("hello")

	d := hello.Append(SoftLine()).Append(hello)
	require.Equal(t, "hello hello", d.Pretty(80))
	require.Equal(t, "hello\nhello", d.Pretty(5))

	b := hello.Append(SoftBreak()).Append(hello)
	require.Equal(t, "hellohello", b.Pretty(80))
	require.Equal(t, "hello\nhello", b.Pretty(5))
}

// TestDumpShapeStable asserts the unresolved tree shape of a Group is
// unaffected by the width it will later be rendered at — Dump reflects
// structure, not layout decisions — using go-cmp for the diff instead of
// a brittle string equality check.
func TestDumpShapeStable(t *testing.T) {
	d := Group(Text("a").Append(Line()).Append(Text("b")))

	first := d.Dump()
	_ = d.Pretty(1) // force a choice resolution on a *different* Doc copy
	second := d.Dump()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Dump() changed after Pretty() (-before +after):\n%s", diff)
	}
}
