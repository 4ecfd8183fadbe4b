package render

import (
	"errors"
	"fmt"

	"github.com/xavierguihot/scalafmt/internal/split"
	"github.com/xavierguihot/scalafmt/internal/style"
	"github.com/xavierguihot/scalafmt/internal/token"
	"github.com/xavierguihot/scalafmt/internal/tree"
)

// ErrBoundaryOverflow reports a broken caller contract: the decision sequence
// names more boundaries than the token stream has joins.
var ErrBoundaryOverflow = errors.New("render: boundary count exceeds token joins")

// Doc bundles everything one rendering run consumes. All fields are read-only
// for the duration of the call.
type Doc struct {
	Tokens []token.Token
	Tree   *tree.Tree
	Locs   []split.Location
	Style  *style.Config
}

// session owns the transient state of one Render call: the output writer, the
// precomputed alignment map, and the memoized top-level marks. Nothing in it
// survives the call.
type session struct {
	tokens    []token.Token
	tree      *tree.Tree
	cfg       *style.Config
	locs      []split.Location
	w         *writer
	alignment map[int]int
	marks     map[int]*tree.Node
}

// Render produces the formatted text for a fully resolved document in a
// single forward pass. It either returns the complete output or fails before
// emitting anything. A decision sequence covers the tokens it names: only the
// right token of the final boundary is emitted past the last decision, so a
// sequence shorter than len(Tokens)-1 truncates the output there.
func Render(doc *Doc) (string, error) {
	if doc == nil || len(doc.Tokens) == 0 {
		return "", nil
	}
	if len(doc.Locs) > len(doc.Tokens)-1 {
		return "", fmt.Errorf("%w: %d locations for %d tokens",
			ErrBoundaryOverflow, len(doc.Locs), len(doc.Tokens))
	}
	cfg := doc.Style
	if cfg == nil {
		cfg = style.Default()
	}

	capacity := 0
	for _, t := range doc.Tokens {
		capacity += len(t.Text) + 1
	}
	s := &session{
		tokens: doc.Tokens,
		tree:   doc.Tree,
		cfg:    cfg,
		locs:   doc.Locs,
		w:      newWriter(len(doc.Tokens), capacity),
	}
	s.alignment = s.computeAlignment()

	for i := range s.locs {
		loc := s.locs[i]
		s.w.writeToken(i, s.tokenText(i, loc.State))
		s.appendSep(i, s.whitespace(i))
	}

	// The loop emits the left token of every boundary; the right token of the
	// final boundary still owes its text.
	last := len(s.locs)
	if last < len(s.tokens) {
		state := split.State{}
		if last > 0 {
			state = s.locs[last-1].State
		}
		s.w.writeToken(last, s.tokenText(last, state))
	}
	return s.w.String(), nil
}

func (s *session) ownerOf(tokenIdx int) *tree.Node {
	if s.tree == nil {
		return nil
	}
	return s.tree.OwnerOf(tokenIdx)
}

// nextNonComment returns the index of the first non-comment token at or after
// from, or -1 when only comments remain.
func (s *session) nextNonComment(from int) int {
	for j := from; j < len(s.tokens); j++ {
		if !s.tokens[j].IsComment() {
			return j
		}
	}
	return -1
}
