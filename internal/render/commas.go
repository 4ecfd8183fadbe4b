package render

import (
	"strings"

	"github.com/xavierguihot/scalafmt/internal/style"
	"github.com/xavierguihot/scalafmt/internal/token"
)

// appendSep applies trailing-comma normalization for boundary i and then
// appends the computed separator. Outside recognized comma lists, or when the
// dialect forbids trailing commas, it degrades to a plain append.
//
// The rules run in order, first match wins:
//  1. always: insert a comma after the last element of a multi-line list;
//  2. always: insert a comma before a trailing comment, by offset surgery;
//  3. never: delete the comma before a multi-line close delimiter;
//  4. never: remove the comma hidden behind a trailing comment;
//  5. any policy: delete a trailing comma on a single physical line.
func (s *session) appendSep(i int, ws string) {
	if !s.cfg.Dialect.AllowTrailingCommas() {
		s.w.append(ws)
		return
	}
	cd, ok := s.closeDelimAfterComments(i)
	if !ok || !s.commaListOwner(cd) {
		s.w.append(ws)
		return
	}

	left := s.tokens[i]
	right := s.tokens[i+1]
	ownLine := strings.HasPrefix(ws, "\n")
	policy := s.cfg.TrailingCommas

	switch {
	case policy == style.TrailingCommasAlways && ownLine && !right.IsComment() &&
		left.Kind != token.Comma && !left.IsComment() && !left.IsOpenDelim():
		s.w.append(",")

	case policy == style.TrailingCommasAlways && ownLine && left.IsComment() &&
		i > 0 && !s.tokens[i-1].IsComment() && s.tokens[i-1].Kind != token.Comma:
		// The comma belongs before the trailing comment, right after the last
		// content token already in the buffer.
		pos := s.w.tokenEnd(i - 1)
		if _, aligned := s.alignment[i-1]; aligned && pos < s.w.len() {
			// Consume one padding space so the aligned comment column holds.
			s.w.overwrite(pos, ',')
		} else {
			s.w.insert(pos, ',')
		}

	case policy == style.TrailingCommasNever && ownLine &&
		left.Kind == token.Comma && !right.IsComment():
		s.w.deleteByte(s.w.tokenEnd(i) - 1)

	case policy == style.TrailingCommasNever && ownLine && left.IsComment():
		if j, found := s.commaBeforeComments(i); found {
			pos := s.w.tokenEnd(j) - 1
			if _, aligned := s.alignment[j]; aligned {
				s.w.overwrite(pos, ' ')
			} else {
				s.w.deleteByte(pos)
			}
		}

	case left.Kind == token.Comma && !right.IsComment() && !ownLine:
		// Trailing commas are never kept on a single physical line.
		s.w.deleteByte(s.w.tokenEnd(i) - 1)
	}

	s.w.append(ws)
}

// closeDelimAfterComments finds the token that closes the current list,
// skipping any comments between the boundary and the delimiter. A closing
// brace only qualifies inside an import.
func (s *session) closeDelimAfterComments(i int) (int, bool) {
	j := s.nextNonComment(i + 1)
	if j < 0 {
		return 0, false
	}
	switch s.tokens[j].Kind {
	case token.RParen, token.RBracket:
		return j, true
	case token.RBrace:
		for n := s.ownerOf(j); n != nil; n = n.Parent {
			if n.Kind.IsImportRelated() {
				return j, true
			}
		}
	}
	return 0, false
}

// commaListOwner reports whether the close delimiter belongs to an importer,
// a call site, or a definition argument list.
func (s *session) commaListOwner(cd int) bool {
	owner := s.ownerOf(cd)
	return owner != nil && owner.Kind.IsCommaListOwner()
}

// commaBeforeComments walks back over the comment run ending at token i and
// returns the comma token directly before it.
func (s *session) commaBeforeComments(i int) (int, bool) {
	k := i
	for k >= 0 && s.tokens[k].IsComment() {
		k--
	}
	if k >= 0 && s.tokens[k].Kind == token.Comma {
		return k, true
	}
	return 0, false
}
