package bembo

import (
	"bytes"
	"testing"
)

func TestRenderStreamWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewStreamWriter(&buf)

	Concat(Text("a"), Line(), Text("b")).Render(w, 80)

	if got, want := buf.String(), "a\nb"; got != want {
		t.Errorf("StreamWriter output = %q, want %q", got, want)
	}
}

func TestRenderStringWriterMatchesPretty(t *testing.T) {
	d := Group(Text("alpha").AppendLine(Text("beta")))

	w := &StringWriter{}
	d.Render(w, 6)

	if got, want := w.String(), d.Pretty(6); got != want {
		t.Errorf("Render via StringWriter = %q, want %q (Pretty)", got, want)
	}
}

func TestFitsLooksAheadIntoPendingWork(t *testing.T) {
	// hello + softline + hello: at width 8 the softline's space alone
	// fits after the first "hello" (column 6), so the choice only breaks
	// because the pending second "hello" would reach column 11. At width
	// 5 the space by itself already overflows.
	hello := Text("hello")
	d := hello.Append(SoftLine()).Append(hello)

	if got, want := d.Pretty(8), "hello\nhello"; got != want {
		t.Errorf("Pretty(8) = %q, want %q", got, want)
	}
	if got, want := d.Pretty(5), "hello\nhello"; got != want {
		t.Errorf("Pretty(5) = %q, want %q", got, want)
	}
	if got, want := d.Pretty(80), "hello hello"; got != want {
		t.Errorf("Pretty(80) = %q, want %q", got, want)
	}
}

func TestNegativeIndentProducesNoNegativeWhitespace(t *testing.T) {
	d := Text("a").Append(Nest(-5, Line().Append(Text("b"))))
	if got, want := d.Pretty(80), "a\nb"; got != want {
		t.Errorf("Pretty() = %q, want %q", got, want)
	}
}

func TestWriterLineClampsIndent(t *testing.T) {
	var sw StringWriter
	sw.Line(-3)
	sw.Write("x")
	if got, want := sw.String(), "\nx"; got != want {
		t.Errorf("StringWriter with negative indent = %q, want %q", got, want)
	}
}

// xmlTag mirrors original_source/tests/tests.cc's `tag` helper, used there
// to exercise nested Group/Nest/SoftBreak interaction.
func xmlTag(name string, body Doc) Doc {
	if body.IsNil() {
		return Angles(Text(name).AppendSpace(Char('/')))
	}
	return Concat(
		Angles(Text(name)),
		Group(Concat(Nest(2, SoftBreak().Append(body)), SoftBreak())),
		Angles(Char('/').Append(Text(name))),
	)
}

func TestXMLTagNesting(t *testing.T) {
	tests := []struct {
		name string
		doc  Doc
		cols int
		want string
	}{
		{"empty body", xmlTag("br", Nil()), 80, "<br />"},
		{"fits flat", xmlTag("a", xmlTag("b", Nil())), 80, "<a><b /></a>"},
		{"breaks once", xmlTag("a", xmlTag("b", Nil())), 6, "<a>\n  <b />\n</a>"},
		{
			"breaks twice",
			xmlTag("a", xmlTag("b", xmlTag("c", Nil()))),
			2,
			"<a>\n  <b>\n    <c />\n  </b>\n</a>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.Pretty(tt.cols); got != tt.want {
				t.Errorf("Pretty(%d) = %q, want %q", tt.cols, got, tt.want)
			}
		})
	}
}
