package token

var kindNames = map[Kind]string{
	Invalid:     "Invalid",
	BOF:         "BOF",
	EOF:         "EOF",
	Ident:       "Ident",
	OpIdent:     "OpIdent",
	KwPackage:   "KwPackage",
	KwImport:    "KwImport",
	KwClass:     "KwClass",
	KwTrait:     "KwTrait",
	KwObject:    "KwObject",
	KwDef:       "KwDef",
	KwVal:       "KwVal",
	KwVar:       "KwVar",
	KwType:      "KwType",
	KwExtends:   "KwExtends",
	KwWith:      "KwWith",
	KwCase:      "KwCase",
	KwMatch:     "KwMatch",
	KwIf:        "KwIf",
	KwElse:      "KwElse",
	KwWhile:     "KwWhile",
	KwFor:       "KwFor",
	KwYield:     "KwYield",
	KwNew:       "KwNew",
	KwReturn:    "KwReturn",
	KwImplicit:  "KwImplicit",
	KwLazy:      "KwLazy",
	KwOverride:  "KwOverride",
	KwPrivate:   "KwPrivate",
	KwProtected: "KwProtected",
	KwSealed:    "KwSealed",
	KwAbstract:  "KwAbstract",
	KwFinal:     "KwFinal",
	IntLit:      "IntLit",
	LongLit:     "LongLit",
	FloatLit:    "FloatLit",
	DoubleLit:   "DoubleLit",
	CharLit:     "CharLit",
	StringLit:   "StringLit",
	BoolLit:     "BoolLit",
	SymbolLit:   "SymbolLit",
	InterpStart: "InterpStart",
	InterpPart:  "InterpPart",
	InterpEnd:   "InterpEnd",
	XmlLit:      "XmlLit",
	Comment:     "Comment",
	LParen:      "LParen",
	RParen:      "RParen",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	Comma:       "Comma",
	Dot:         "Dot",
	Semicolon:   "Semicolon",
	Colon:       "Colon",
	Eq:          "Eq",
	Arrow:       "Arrow",
	LeftArrow:   "LeftArrow",
	At:          "At",
	Hash:        "Hash",
	Underscore:  "Underscore",
	Viewbound:   "Viewbound",
	Subtype:     "Subtype",
	Supertype:   "Supertype",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Invalid"
}
