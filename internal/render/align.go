package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/xavierguihot/scalafmt/internal/split"
	"github.com/xavierguihot/scalafmt/internal/tree"
)

// alignKey is the equivalence class of one alignable column: the owner's
// tree-kind and the token's kind, both remapped through the configured
// category tables.
type alignKey struct {
	tree string
	tok  string
}

// alignCandidate is one alignable boundary on a physical line.
type alignCandidate struct {
	boundary int
	key      alignKey
	owner    *tree.Node
	comment  bool
	// endCol is the layout column just past the candidate token.
	endCol int
	// width is the display width of the rendered token text.
	width int
}

// alignBlock accumulates consecutive lines whose candidates match column by
// column, and flushes padding assignments when the run breaks.
type alignBlock struct {
	lines      [][]alignCandidate
	minMatches int
	out        map[int]int
}

// computeAlignment precomputes the extra-padding map in one linear pass over
// the boundaries, before any text is emitted.
func (s *session) computeAlignment() map[int]int {
	out := make(map[int]int)
	if len(s.cfg.AlignRules) == 0 {
		return out
	}
	block := &alignBlock{out: out}
	var line []alignCandidate
	blanks := 1
	for i := range s.locs {
		if cand, ok := s.candidateAt(i); ok {
			line = append(line, cand)
		}
		m := s.locs[i].Split.Mod
		lineEnds := m.IsNewline() ||
			(m.Kind == split.Provided && strings.Contains(m.Literal, "\n"))
		if !lineEnds {
			continue
		}
		block.push(line, blanks, s.ownerOf(i))
		line = nil
		blanks = 1
		if m.DoubleBlank {
			blanks = 2
		}
	}
	block.push(line, blanks, nil)
	block.flush()
	return out
}

// candidateAt reports whether boundary i's right token is alignable under the
// configured rules.
func (s *session) candidateAt(i int) (alignCandidate, bool) {
	right := s.tokens[i+1]
	text := right.Text
	isComment := right.IsLineComment()
	if isComment {
		text = "//"
	}
	rule, ok := s.cfg.AlignRuleFor(text)
	if !ok {
		return alignCandidate{}, false
	}
	owner := s.alignOwner(i, isComment)
	if owner == nil || !rule.Owner.MatchString(owner.Kind.String()) {
		return alignCandidate{}, false
	}
	rendered := right.Text
	if !right.IsComment() {
		rendered = s.cfg.RewriteToken(rendered)
	}
	return alignCandidate{
		boundary: i,
		key: alignKey{
			tree: s.cfg.TreeCategory(owner.Kind.String()),
			tok:  s.cfg.TokenCategory(right.Kind.String()),
		},
		owner:   owner,
		comment: isComment,
		endCol:  s.locs[i].State.Column,
		width:   runewidth.StringWidth(rendered),
	}, true
}

// alignOwner attributes a candidate to a tree node. Trailing comments belong
// to the construct on their left; a bare name operand of an infix expression
// is promoted to the whole infix expression.
func (s *session) alignOwner(i int, trailingComment bool) *tree.Node {
	if trailingComment {
		return s.ownerOf(i)
	}
	owner := s.ownerOf(i + 1)
	if owner != nil && owner.Kind == tree.KindTermName &&
		owner.Parent != nil && owner.Parent.Kind == tree.KindTermApplyInfix {
		return owner.Parent
	}
	return owner
}

// push adds one finished line to the block, flushing first when the line does
// not continue the block.
func (b *alignBlock) push(line []alignCandidate, blanks int, endOwner *tree.Node) {
	if blanks > 1 {
		// A double blank severs alignment entirely; the block restarts empty,
		// not from the line that follows the gap.
		b.flush()
		b.start(nil)
		return
	}
	if len(b.lines) == 0 {
		b.start(line)
		return
	}
	matches := matchCount(b.lines[len(b.lines)-1], line, endOwner)
	if matches == 0 {
		b.flush()
		b.start(line)
		return
	}
	b.lines = append(b.lines, line)
	if matches < b.minMatches {
		b.minMatches = matches
	}
}

func (b *alignBlock) start(line []alignCandidate) {
	b.lines = nil
	b.minMatches = 0
	if len(line) > 0 {
		b.lines = [][]alignCandidate{line}
		b.minMatches = len(line)
	}
}

// flush assigns final padding for the accumulated block and resets it.
// Alignment applies uniformly only up to the shortest match count seen.
func (b *alignBlock) flush() {
	defer func() { b.lines, b.minMatches = nil, 0 }()
	if len(b.lines) < 2 {
		return
	}
	for col := 0; col < b.minMatches; col++ {
		maxWidth := 0
		widths := make([]int, len(b.lines))
		for li, line := range b.lines {
			c := line[col]
			prevEnd := 0
			if col > 0 {
				prevEnd = line[col-1].endCol
			}
			w := c.endCol - prevEnd - c.width
			widths[li] = w
			if w > maxWidth {
				maxWidth = w
			}
		}
		for li, line := range b.lines {
			b.out[line[col].boundary] = maxWidth - widths[li]
		}
	}
}

// matchCount returns the longest common prefix of matching columns between
// two consecutive lines. Comments always align with comments; anything else
// must agree on key and owner depth, and the owners must not contain one
// another below the line-ending owner.
func matchCount(prev, cur []alignCandidate, endOwner *tree.Node) int {
	n := min(len(prev), len(cur))
	for k := 0; k < n; k++ {
		a, c := prev[k], cur[k]
		if a.comment && c.comment {
			continue
		}
		if a.key != c.key {
			return k
		}
		if a.owner.Depth() != c.owner.Depth() {
			return k
		}
		if a.owner.IsAncestorWithin(c.owner, endOwner) ||
			c.owner.IsAncestorWithin(a.owner, endOwner) {
			return k
		}
	}
	return n
}
