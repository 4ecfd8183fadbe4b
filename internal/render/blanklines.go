package render

import (
	"github.com/xavierguihot/scalafmt/internal/token"
	"github.com/xavierguihot/scalafmt/internal/tree"
)

// blankBeforeTopLevel reports whether boundary i must widen to a blank line
// because its right token starts a multi-line top-level statement.
func (s *session) blankBeforeTopLevel(i int) bool {
	if !s.cfg.BlankBeforeTopLevel {
		return false
	}
	if s.marks == nil {
		s.computeMarks()
	}
	if s.cfg.LegacyPackageBlanks {
		if applies, answer := s.legacyPackageAnswer(i); applies {
			return answer
		}
	}
	node, ok := s.marks[i+1]
	if !ok {
		return false
	}
	decl := node
	if decl.Kind.IsModifier() && decl.Parent != nil {
		decl = decl.Parent
	}
	// A statement that already breaks across lines inside its own extent owes
	// a full blank line, not just the newline the split chose.
	end := decl.Last
	for b := decl.First; b < end && b < len(s.locs); b++ {
		if s.locs[b].Split.Mod.IsNewline() {
			return true
		}
	}
	return false
}

// computeMarks records, once per session, the first token (with its leading
// comments) of every top-level statement. Block-expression bodies are not
// descended into: their statements are not top-level.
func (s *session) computeMarks() {
	s.marks = make(map[int]*tree.Node)
	if s.tree == nil || s.tree.Root() == nil {
		return
	}
	var walk func(n *tree.Node)
	walk = func(n *tree.Node) {
		for _, child := range n.Children {
			if child.Kind == tree.KindTermBlock {
				continue
			}
			if child.Kind.IsTopLevelStatement() {
				first := child.First
				for first > 0 && s.tokens[first-1].IsComment() {
					first--
				}
				if _, exists := s.marks[first]; !exists {
					s.marks[first] = child
				}
			}
			walk(child)
		}
	}
	walk(s.tree.Root())
}

// legacyPackageAnswer implements the pre-1.x package-clause special case: a
// package whose first statement sits behind an explicit opening brace gets
// the blank line, a braceless package clause does not. The second result is
// meaningful only when the first is true.
func (s *session) legacyPackageAnswer(i int) (bool, bool) {
	// A closing delimiter never starts a statement; without this guard the
	// package's own closing brace, owned by the Pkg node, would claim the
	// blank line meant for the first statement behind the opening brace.
	if s.tokens[i+1].IsCloseDelim() {
		return false, false
	}
	owner := s.ownerOf(i + 1)
	if owner == nil {
		return false, false
	}
	switch owner.Kind {
	case tree.KindPkg, tree.KindTermSelect, tree.KindTermName:
	default:
		return false, false
	}
	pkg := owner.NearestOfKind(tree.KindPkg)
	if pkg == nil {
		return false, false
	}
	var firstStmt *tree.Node
	for _, child := range pkg.Children {
		if child.Kind == tree.KindTermSelect || child.Kind == tree.KindTermName {
			continue
		}
		firstStmt = child
		break
	}
	if firstStmt == nil {
		return false, false
	}
	for j := pkg.First; j < firstStmt.First && j < len(s.tokens); j++ {
		if s.tokens[j].Kind == token.LBrace {
			return true, true
		}
	}
	return true, false
}
