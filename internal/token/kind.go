package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// BOF marks the beginning of the source input.
	BOF
	// EOF marks the end of the source input.
	EOF

	// Ident represents an alphanumeric identifier token.
	Ident
	// OpIdent represents a symbolic (operator) identifier token.
	OpIdent

	// KwPackage represents the 'package' keyword.
	KwPackage // package
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwTrait represents the 'trait' keyword.
	KwTrait // trait
	// KwObject represents the 'object' keyword.
	KwObject // object
	// KwDef represents the 'def' keyword.
	KwDef // def
	// KwVal represents the 'val' keyword.
	KwVal // val
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwType represents the 'type' keyword.
	KwType // type
	// KwExtends represents the 'extends' keyword.
	KwExtends // extends
	// KwWith represents the 'with' keyword.
	KwWith // with
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwMatch represents the 'match' keyword.
	KwMatch // match
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwYield represents the 'yield' keyword.
	KwYield // yield
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwImplicit represents the 'implicit' keyword.
	KwImplicit // implicit
	// KwLazy represents the 'lazy' keyword.
	KwLazy // lazy
	// KwOverride represents the 'override' keyword.
	KwOverride // override
	// KwPrivate represents the 'private' keyword.
	KwPrivate // private
	// KwProtected represents the 'protected' keyword.
	KwProtected // protected
	// KwSealed represents the 'sealed' keyword.
	KwSealed // sealed
	// KwAbstract represents the 'abstract' keyword.
	KwAbstract // abstract
	// KwFinal represents the 'final' keyword.
	KwFinal // final

	// IntLit represents an integer literal token.
	IntLit
	// LongLit represents a long integer literal token (l/L suffix).
	LongLit
	// FloatLit represents a float literal token (f/F suffix).
	FloatLit
	// DoubleLit represents a double literal token.
	DoubleLit
	// CharLit represents a character literal token.
	CharLit
	// StringLit represents a plain or triple-quoted string literal token.
	StringLit
	// BoolLit represents a boolean literal token.
	BoolLit
	// SymbolLit represents a symbol literal token.
	SymbolLit
	// InterpStart represents the opening id+quote of an interpolated string.
	InterpStart
	// InterpPart represents a literal fragment inside an interpolated string.
	InterpPart
	// InterpEnd represents the closing quote of an interpolated string.
	InterpEnd
	// XmlLit represents an inline XML literal token.
	XmlLit

	// Comment represents a line, block, or doc comment token.
	Comment

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Colon represents the colon token.
	Colon // :
	// Eq represents the assignment token.
	Eq // =
	// Arrow represents the function arrow token.
	Arrow // =>
	// LeftArrow represents the generator arrow token.
	LeftArrow // <-
	// At represents the at token.
	At // @
	// Hash represents the hash token.
	Hash // #
	// Underscore represents the underscore token.
	Underscore // _
	// Viewbound represents the view-bound token.
	Viewbound // <%
	// Subtype represents the subtype-bound token.
	Subtype // <:
	// Supertype represents the supertype-bound token.
	Supertype // >:
)
