package token

import (
	"strings"

	"github.com/xavierguihot/scalafmt/internal/source"
)

// Token represents a single source token with its location and literal text.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsComment reports whether the token is any comment flavor.
func (t Token) IsComment() bool { return t.Kind == Comment }

// IsLineComment reports whether the token is a single-line comment.
func (t Token) IsLineComment() bool {
	return t.Kind == Comment && strings.HasPrefix(t.Text, "//")
}

// IsBlockComment reports whether the token is a block (or doc) comment.
func (t Token) IsBlockComment() bool {
	return t.Kind == Comment && strings.HasPrefix(t.Text, "/*")
}

// IsDocComment reports whether the token is a scaladoc comment. The empty
// block comment "/**/" opens with "/**" but is not a doc comment.
func (t Token) IsDocComment() bool {
	return t.Kind == Comment && strings.HasPrefix(t.Text, "/**") && t.Text != "/**/"
}

// IsLiteral reports whether the token is a literal of any kind.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, LongLit, FloatLit, DoubleLit, CharLit, StringLit, BoolLit, SymbolLit, XmlLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwPackage, KwImport, KwClass, KwTrait, KwObject, KwDef, KwVal, KwVar,
		KwType, KwExtends, KwWith, KwCase, KwMatch, KwIf, KwElse, KwWhile,
		KwFor, KwYield, KwNew, KwReturn, KwImplicit, KwLazy, KwOverride,
		KwPrivate, KwProtected, KwSealed, KwAbstract, KwFinal:
		return true
	default:
		return false
	}
}

// IsOpenDelim reports whether the token opens a delimited group.
func (t Token) IsOpenDelim() bool {
	switch t.Kind {
	case LParen, LBracket, LBrace:
		return true
	default:
		return false
	}
}

// IsCloseDelim reports whether the token closes a delimited group.
func (t Token) IsCloseDelim() bool {
	switch t.Kind {
	case RParen, RBracket, RBrace:
		return true
	default:
		return false
	}
}
