package tree

// Kind represents the syntactic category of a tree node. The names mirror the
// upstream parser's class names, which alignment owner rules match by regex.
type Kind uint8

const (
	// KindUnknown indicates a node the parser could not classify.
	KindUnknown Kind = iota
	// KindSource is the root node of a source file.
	KindSource
	// KindPkg is a package clause.
	KindPkg
	// KindPkgObject is a package object definition.
	KindPkgObject
	// KindImport is an import statement.
	KindImport
	// KindImporter is one import expression within an import statement.
	KindImporter
	// KindTemplate is a class/object/trait body.
	KindTemplate
	// KindCtorPrimary is a primary constructor.
	KindCtorPrimary
	// KindParamClause is a definition parameter list.
	KindParamClause
	// KindCase is one case of a match or partial function.
	KindCase
	// KindTermName is a plain term name.
	KindTermName
	// KindTermSelect is a qualified reference (a.b).
	KindTermSelect
	// KindTermApply is a function or method call.
	KindTermApply
	// KindTermApplyInfix is an infix application (a op b).
	KindTermApplyInfix
	// KindTermBlock is a block expression.
	KindTermBlock
	// KindTermInterpolate is an interpolated string expression.
	KindTermInterpolate
	// KindTermAssign is an assignment expression.
	KindTermAssign
	// KindTermFunction is a function literal.
	KindTermFunction
	// KindTypeName is a type name.
	KindTypeName
	// KindDefnDef is a method definition.
	KindDefnDef
	// KindDefnVal is a val definition.
	KindDefnVal
	// KindDefnVar is a var definition.
	KindDefnVar
	// KindDefnType is a type alias definition.
	KindDefnType
	// KindDefnClass is a class definition.
	KindDefnClass
	// KindDefnTrait is a trait definition.
	KindDefnTrait
	// KindDefnObject is an object definition.
	KindDefnObject
	// KindDeclDef is an abstract method declaration.
	KindDeclDef
	// KindDeclVal is an abstract val declaration.
	KindDeclVal
	// KindDeclVar is an abstract var declaration.
	KindDeclVar
	// KindDeclType is an abstract type declaration.
	KindDeclType
	// KindModAnnot is an annotation modifier.
	KindModAnnot
	// KindModMarker is any other modifier node.
	KindModMarker
	// KindEnumerator is a for-comprehension enumerator.
	KindEnumerator

	kindCount
)

var kindNames = [kindCount]string{
	KindUnknown:         "Unknown",
	KindSource:          "Source",
	KindPkg:             "Pkg",
	KindPkgObject:       "Pkg.Object",
	KindImport:          "Import",
	KindImporter:        "Importer",
	KindTemplate:        "Template",
	KindCtorPrimary:     "Ctor.Primary",
	KindParamClause:     "Member.ParamClause",
	KindCase:            "Case",
	KindTermName:        "Term.Name",
	KindTermSelect:      "Term.Select",
	KindTermApply:       "Term.Apply",
	KindTermApplyInfix:  "Term.ApplyInfix",
	KindTermBlock:       "Term.Block",
	KindTermInterpolate: "Term.Interpolate",
	KindTermAssign:      "Term.Assign",
	KindTermFunction:    "Term.Function",
	KindTypeName:        "Type.Name",
	KindDefnDef:         "Defn.Def",
	KindDefnVal:         "Defn.Val",
	KindDefnVar:         "Defn.Var",
	KindDefnType:        "Defn.Type",
	KindDefnClass:       "Defn.Class",
	KindDefnTrait:       "Defn.Trait",
	KindDefnObject:      "Defn.Object",
	KindDeclDef:         "Decl.Def",
	KindDeclVal:         "Decl.Val",
	KindDeclVar:         "Decl.Var",
	KindDeclType:        "Decl.Type",
	KindModAnnot:        "Mod.Annot",
	KindModMarker:       "Mod",
	KindEnumerator:      "Enumerator.Generator",
}

func (k Kind) String() string {
	if k >= kindCount {
		return "Unknown"
	}
	return kindNames[k]
}
