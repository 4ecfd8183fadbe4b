package render

import (
	"strings"

	"github.com/xavierguihot/scalafmt/internal/split"
	"github.com/xavierguihot/scalafmt/internal/token"
)

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// whitespace computes the separator text for boundary i. Pure with respect to
// the output buffer: any retroactive edits belong to the trailing-comma pass.
func (s *session) whitespace(i int) string {
	loc := s.locs[i]
	m := loc.Split.Mod
	switch m.Kind {
	case split.Provided:
		return m.Literal
	case split.NoSplit:
		return ""
	case split.Space:
		pad := s.alignment[i]
		if i > 0 && s.locs[i-1].Split.Mod.Kind == split.NoSplit {
			// A no-split join carries its own alignment through to the next
			// spaced boundary.
			pad += s.alignment[i-1]
		}
		return " " + spaces(pad)
	case split.Newline:
		right := s.tokens[i+1]
		prevCol := 0
		if i > 0 {
			prevCol = s.locs[i-1].State.Column
		}
		if m.CollapseToNone && !right.IsComment() && loc.State.Indent >= prevCol {
			return ""
		}
		if m.CollapseToSpace && loc.State.Indent >= prevCol {
			return " "
		}
		if right.IsComment() && s.chainContinues(i) {
			indent := loc.State.Indent
			if !s.hasPriorChainDot(i) {
				indent += 2
			}
			return "\n" + spaces(indent)
		}
		nl := "\n"
		if m.DoubleBlank || s.blankBeforeTopLevel(i) {
			nl = "\n\n"
		}
		if m.NoIndent {
			return nl
		}
		return nl + spaces(loc.State.Indent)
	default:
		return ""
	}
}

// chainContinues reports whether the comment run starting at the boundary's
// right token is followed by a method-chain dot.
func (s *session) chainContinues(i int) bool {
	j := s.nextNonComment(i + 1)
	return j >= 0 && s.tokens[j].Kind == token.Dot
}

// hasPriorChainDot reports whether any earlier boundary had a dot as its
// right token, meaning the chain the comment trails has already started.
func (s *session) hasPriorChainDot(i int) bool {
	for j := i - 1; j >= 0; j-- {
		if s.tokens[j+1].Kind == token.Dot {
			return true
		}
	}
	return false
}
