package render

import (
	"regexp"
	"strings"

	"github.com/xavierguihot/scalafmt/internal/split"
	"github.com/xavierguihot/scalafmt/internal/style"
	"github.com/xavierguihot/scalafmt/internal/token"
	"github.com/xavierguihot/scalafmt/internal/tree"
)

var (
	// asteriskLine matches the leading spaces and asterisk run of one comment
	// line; only single-asterisk lines are re-indented.
	asteriskLine = regexp.MustCompile(`(?m)^ *\*+`)
	// trailingWS matches trailing blanks on any line.
	trailingWS = regexp.MustCompile(`(?m)[ \t]+$`)
	// marginLine matches a margin-delimited continuation line. Anchoring on
	// the newline keeps a pipe that opens the very first line alone: that one
	// sits mid-line in the output, right after the opening delimiter.
	marginLine = regexp.MustCompile(`\n *\|`)
)

// tokenText renders the text of token i. Always total: unexpected shapes fall
// through unchanged.
func (s *session) tokenText(i int, state split.State) string {
	t := s.tokens[i]
	switch t.Kind {
	case token.Comment:
		return s.formatComment(t, state.Indent)
	case token.StringLit:
		return s.formatStringMargin(t)
	case token.InterpPart:
		return s.formatInterpPart(t, i, state.Indent)
	case token.LongLit:
		return formatLong(t.Text, s.cfg.LongLiteralCase)
	case token.FloatLit:
		return s.cfg.FloatLiteralCase.Apply(t.Text)
	case token.DoubleLit:
		return s.cfg.DoubleLiteralCase.Apply(t.Text)
	default:
		return s.cfg.RewriteToken(t.Text)
	}
}

// formatComment re-indents block-comment asterisk lines to the boundary's
// indentation and strips trailing whitespace from every line.
func (s *session) formatComment(t token.Token, indent int) string {
	text := t.Text
	if s.cfg.ReformatDocstrings && strings.HasPrefix(text, "/*") {
		pad := indent + 1
		if t.IsDocComment() && s.cfg.ScaladocIndent {
			pad = indent + 2
		}
		text = asteriskLine.ReplaceAllStringFunc(text, func(m string) string {
			if strings.TrimLeft(m, " ") != "*" {
				return m
			}
			return strings.Repeat(" ", pad) + "*"
		})
	}
	return trailingWS.ReplaceAllString(text, "")
}

// formatStringMargin re-indents the pipe margin of a multiline string
// literal. The margin column is two columns past the string's own start, so
// the distance to the last emitted newline decides the indent.
func (s *session) formatStringMargin(t token.Token) string {
	text := t.Text
	if !s.cfg.StripMargin || !marginLine.MatchString(text) {
		return text
	}
	indent := 2 + s.w.column()
	if firstContentChar(text) == '|' {
		indent++
	}
	return marginLine.ReplaceAllString(text, "\n"+strings.Repeat(" ", indent)+"|")
}

// formatInterpPart re-indents the pipe margin of one interpolation fragment.
// The extra column applies when the interpolation's first fragment opens with
// a pipe, regardless of which fragment is being rendered.
func (s *session) formatInterpPart(t token.Token, i int, indent int) string {
	text := t.Text
	if !s.cfg.StripMargin || !marginLine.MatchString(text) {
		return text
	}
	if s.interpOpensWithPipe(i) {
		indent++
	}
	return marginLine.ReplaceAllString(text, "\n"+strings.Repeat(" ", indent)+"|")
}

func (s *session) interpOpensWithPipe(i int) bool {
	owner := s.ownerOf(i)
	if owner == nil {
		return false
	}
	interp := owner.NearestOfKind(tree.KindTermInterpolate)
	if interp == nil {
		return false
	}
	for j := interp.First; j <= interp.Last && j < len(s.tokens); j++ {
		if s.tokens[j].Kind == token.InterpPart {
			return strings.HasPrefix(s.tokens[j].Text, "|")
		}
	}
	return false
}

// firstContentChar returns the first character of a string literal past its
// opening quotes, or zero when the literal is all delimiter.
func firstContentChar(text string) byte {
	trimmed := strings.TrimLeft(text, `"`)
	if trimmed == "" {
		return 0
	}
	return trimmed[0]
}

// formatLong normalizes a long literal's case, keeping an 0x prefix verbatim
// so hex digits keep their source casing convention marker.
func formatLong(text string, c style.Case) string {
	if len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		return text[:2] + c.Apply(text[2:])
	}
	return c.Apply(text)
}
