package render_test

import (
	"testing"

	"github.com/xavierguihot/scalafmt/internal/split"
	"github.com/xavierguihot/scalafmt/internal/style"
	"github.com/xavierguihot/scalafmt/internal/token"
	"github.com/xavierguihot/scalafmt/internal/tree"
)

// commentDoc renders a lone comment at the given indentation.
func commentDoc(t *testing.T, cfg *style.Config, text string, indent int) string {
	t.Helper()
	var d docBuilder
	d.tok(token.Comment, text)
	d.sep(split.NoIndentNewlineMod(), indent, 0)
	d.tok(token.EOF, "")
	return renderDoc(t, d.doc(t, cfg, nil))
}

func TestDocstringScaladocIndent(t *testing.T) {
	cfg := style.Default()
	cfg.ScaladocIndent = true

	got := commentDoc(t, cfg, "/**\n * a\n * b\n */", 2)
	want := "/**\n    * a\n    * b\n    */\n"
	if got != want {
		t.Fatalf("scaladoc indent:\nwant %q\ngot  %q", want, got)
	}
}

func TestDocstringJavadocIndent(t *testing.T) {
	got := commentDoc(t, style.Default(), "/**\n * a\n */", 2)
	want := "/**\n   * a\n   */\n"
	if got != want {
		t.Fatalf("javadoc indent:\nwant %q\ngot  %q", want, got)
	}
}

func TestDocstringKeepsDoubleAsteriskLines(t *testing.T) {
	got := commentDoc(t, style.Default(), "/*\n ** keep\n */", 0)
	want := "/*\n ** keep\n */\n"
	if got != want {
		t.Fatalf("double asterisk:\nwant %q\ngot  %q", want, got)
	}
}

func TestDocstringReformatDisabled(t *testing.T) {
	cfg := style.Default()
	cfg.ReformatDocstrings = false

	got := commentDoc(t, cfg, "/**\n     * a\n     */", 0)
	want := "/**\n     * a\n     */\n"
	if got != want {
		t.Fatalf("reformat off:\nwant %q\ngot  %q", want, got)
	}
}

func TestCommentTrailingWhitespaceStripped(t *testing.T) {
	cfg := style.Default()
	cfg.ReformatDocstrings = false

	got := commentDoc(t, cfg, "/* a  \n b\t\n */", 0)
	want := "/* a\n b\n */\n"
	if got != want {
		t.Fatalf("trailing whitespace:\nwant %q\ngot  %q", want, got)
	}
}

func TestLongLiteralCase(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"100l", "100L"},
		{"100L", "100L"},
		{"0xFFL", "0xFFL"},
		{"0XFFl", "0XFFL"},
	}
	for _, tc := range cases {
		var d docBuilder
		d.tok(token.LongLit, tc.in)
		d.sep(split.NewlineMod(), 0, 0)
		d.tok(token.EOF, "")
		want := tc.want + "\n"
		if got := renderDoc(t, d.doc(t, style.Default(), nil)); got != want {
			t.Fatalf("long %q:\nwant %q\ngot  %q", tc.in, want, got)
		}
	}
}

func TestFloatAndDoubleLiteralCase(t *testing.T) {
	var d docBuilder
	d.tok(token.FloatLit, "10E3F")
	d.sep(split.SpaceMod(), 0, 11)
	d.tok(token.DoubleLit, "1.5D")
	d.sep(split.NewlineMod(), 0, 0)
	d.tok(token.EOF, "")

	want := "10e3f 1.5d\n"
	if got := renderDoc(t, d.doc(t, style.Default(), nil)); got != want {
		t.Fatalf("float case:\nwant %q\ngot  %q", want, got)
	}
}

func TestStringMarginReindented(t *testing.T) {
	var d docBuilder
	d.tok(token.KwVal, "val")
	d.sep(split.SpaceMod(), 0, 5)
	d.tok(token.Ident, "x")
	d.sep(split.SpaceMod(), 0, 7)
	d.tok(token.Eq, "=")
	d.sep(split.SpaceMod(), 0, 13)
	d.tok(token.StringLit, "\"\"\"|a\n  |b\"\"\"")
	d.sep(split.NewlineMod(), 0, 0)
	d.tok(token.EOF, "")

	// The margin sits two columns past the literal's start, plus one because
	// the first content character is the pipe itself.
	want := "val x = \"\"\"|a\n           |b\"\"\"\n"
	if got := renderDoc(t, d.doc(t, style.Default(), nil)); got != want {
		t.Fatalf("margin string:\nwant %q\ngot  %q", want, got)
	}
}

func TestStringMarginDisabled(t *testing.T) {
	cfg := style.Default()
	cfg.StripMargin = false

	var d docBuilder
	d.tok(token.StringLit, "\"\"\"|a\n  |b\"\"\"")
	d.sep(split.NewlineMod(), 0, 0)
	d.tok(token.EOF, "")

	want := "\"\"\"|a\n  |b\"\"\"\n"
	if got := renderDoc(t, d.doc(t, cfg, nil)); got != want {
		t.Fatalf("strip margin off:\nwant %q\ngot  %q", want, got)
	}
}

func TestInterpolationMarginReindented(t *testing.T) {
	var d docBuilder
	d.tok(token.InterpStart, "s\"\"\"")
	d.sep(split.NoSplitMod(), 4, 4)
	d.tok(token.InterpPart, "|a\n  |b")
	d.sep(split.NoSplitMod(), 4, 0)
	d.tok(token.InterpEnd, "\"\"\"")
	d.sep(split.NewlineMod(), 0, 0)
	d.tok(token.EOF, "")

	doc := d.doc(t, style.Default(), func(tb *tree.Builder, root *tree.Node) {
		tb.Add(tree.KindTermInterpolate, root, 0, 2)
	})
	want := "s\"\"\"|a\n     |b\"\"\"\n"
	if got := renderDoc(t, doc); got != want {
		t.Fatalf("interpolation margin:\nwant %q\ngot  %q", want, got)
	}
}
