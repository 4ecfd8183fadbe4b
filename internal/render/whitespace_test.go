package render_test

import (
	"testing"

	"github.com/xavierguihot/scalafmt/internal/split"
	"github.com/xavierguihot/scalafmt/internal/style"
	"github.com/xavierguihot/scalafmt/internal/token"
)

func TestProvidedSeparatorVerbatim(t *testing.T) {
	var d docBuilder
	d.tok(token.Ident, "a")
	d.sep(split.ProvidedMod(" \t "), 0, 5)
	d.tok(token.Ident, "b")
	d.sep(split.NewlineMod(), 0, 0)
	d.tok(token.EOF, "")

	want := "a \t b\n"
	if got := renderDoc(t, d.doc(t, style.Default(), nil)); got != want {
		t.Fatalf("provided:\nwant %q\ngot  %q", want, got)
	}
}

func TestNewlineCollapseToNone(t *testing.T) {
	var d docBuilder
	d.tok(token.Ident, "x")
	d.sep(split.SpaceMod(), 0, 3)
	d.tok(token.Ident, "y")
	d.sep(split.Modification{Kind: split.Newline, CollapseToNone: true}, 4, 5)
	d.tok(token.Ident, "z")
	d.sep(split.NewlineMod(), 0, 0)
	d.tok(token.EOF, "")

	// Indent 4 is at or past the previous column 3, so the break vanishes.
	want := "x yz\n"
	if got := renderDoc(t, d.doc(t, style.Default(), nil)); got != want {
		t.Fatalf("collapse to none:\nwant %q\ngot  %q", want, got)
	}
}

func TestNewlineCollapseToNoneKeepsBreakWhenShallow(t *testing.T) {
	var d docBuilder
	d.tok(token.Ident, "x")
	d.sep(split.SpaceMod(), 0, 3)
	d.tok(token.Ident, "y")
	d.sep(split.Modification{Kind: split.Newline, CollapseToNone: true}, 1, 2)
	d.tok(token.Ident, "z")
	d.sep(split.NewlineMod(), 0, 0)
	d.tok(token.EOF, "")

	want := "x y\n z\n"
	if got := renderDoc(t, d.doc(t, style.Default(), nil)); got != want {
		t.Fatalf("collapse kept:\nwant %q\ngot  %q", want, got)
	}
}

func TestNewlineCollapseToSpace(t *testing.T) {
	var d docBuilder
	d.tok(token.Ident, "x")
	d.sep(split.SpaceMod(), 0, 3)
	d.tok(token.Ident, "y")
	d.sep(split.Modification{Kind: split.Newline, CollapseToSpace: true}, 4, 6)
	d.tok(token.Ident, "z")
	d.sep(split.NewlineMod(), 0, 0)
	d.tok(token.EOF, "")

	want := "x y z\n"
	if got := renderDoc(t, d.doc(t, style.Default(), nil)); got != want {
		t.Fatalf("collapse to space:\nwant %q\ngot  %q", want, got)
	}
}

func TestNewlineCollapseNeverSwallowsComment(t *testing.T) {
	var d docBuilder
	d.tok(token.Ident, "x")
	d.sep(split.SpaceMod(), 0, 3)
	d.tok(token.Ident, "y")
	d.sep(split.Modification{Kind: split.Newline, CollapseToNone: true}, 4, 9)
	d.tok(token.Comment, "// c")
	d.sep(split.NewlineMod(), 0, 0)
	d.tok(token.EOF, "")

	want := "x y\n    // c\n"
	if got := renderDoc(t, d.doc(t, style.Default(), nil)); got != want {
		t.Fatalf("comment survives collapse:\nwant %q\ngot  %q", want, got)
	}
}

func TestNoIndentNewline(t *testing.T) {
	var d docBuilder
	d.tok(token.Ident, "a")
	d.sep(split.NoIndentNewlineMod(), 4, 1)
	d.tok(token.Ident, "b")
	d.sep(split.NewlineMod(), 0, 0)
	d.tok(token.EOF, "")

	want := "a\nb\n"
	if got := renderDoc(t, d.doc(t, style.Default(), nil)); got != want {
		t.Fatalf("no indent:\nwant %q\ngot  %q", want, got)
	}
}

func TestDoubleNewline(t *testing.T) {
	var d docBuilder
	d.tok(token.Ident, "a")
	d.sep(split.DoubleNewlineMod(), 2, 3)
	d.tok(token.Ident, "b")
	d.sep(split.NewlineMod(), 0, 0)
	d.tok(token.EOF, "")

	want := "a\n\n  b\n"
	if got := renderDoc(t, d.doc(t, style.Default(), nil)); got != want {
		t.Fatalf("double newline:\nwant %q\ngot  %q", want, got)
	}
}

// A comment inside an already-started method chain sits at the chain indent.
func TestChainCommentIndent(t *testing.T) {
	var d docBuilder
	d.tok(token.Ident, "x")
	d.sep(split.NoSplitMod(), 0, 2)
	d.tok(token.Dot, ".")
	d.sep(split.NoSplitMod(), 0, 5)
	d.tok(token.Ident, "foo")
	d.sep(split.NewlineMod(), 2, 6)
	d.tok(token.Comment, "// c")
	d.sep(split.NewlineMod(), 2, 3)
	d.tok(token.Dot, ".")
	d.sep(split.NoSplitMod(), 2, 6)
	d.tok(token.Ident, "bar")
	d.sep(split.NewlineMod(), 0, 0)
	d.tok(token.EOF, "")

	want := "x.foo\n  // c\n  .bar\n"
	if got := renderDoc(t, d.doc(t, style.Default(), nil)); got != want {
		t.Fatalf("chain comment:\nwant %q\ngot  %q", want, got)
	}
}

// Before the first dot the chain has not started, so the comment is pushed two
// columns past the boundary indent.
func TestChainCommentBeforeFirstDot(t *testing.T) {
	var d docBuilder
	d.tok(token.Ident, "x")
	d.sep(split.NewlineMod(), 0, 6)
	d.tok(token.Comment, "// c")
	d.sep(split.NewlineMod(), 2, 3)
	d.tok(token.Dot, ".")
	d.sep(split.NoSplitMod(), 2, 6)
	d.tok(token.Ident, "foo")
	d.sep(split.NewlineMod(), 0, 0)
	d.tok(token.EOF, "")

	want := "x\n  // c\n  .foo\n"
	if got := renderDoc(t, d.doc(t, style.Default(), nil)); got != want {
		t.Fatalf("chain start comment:\nwant %q\ngot  %q", want, got)
	}
}
