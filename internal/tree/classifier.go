package tree

// IsTopLevelStatement reports whether a node of this kind is a candidate
// top-level statement for blank-line placement.
func (k Kind) IsTopLevelStatement() bool {
	switch k {
	case KindDefnDef, KindDefnVal, KindDefnVar, KindDefnType, KindDefnClass,
		KindDefnTrait, KindDefnObject, KindPkgObject,
		KindDeclDef, KindDeclVal, KindDeclVar, KindDeclType,
		KindImport:
		return true
	default:
		return false
	}
}

// IsModifier reports whether a node of this kind is a modifier attached to a
// declaration rather than a declaration itself.
func (k Kind) IsModifier() bool {
	return k == KindModAnnot || k == KindModMarker
}

// IsCommaListOwner reports whether a node of this kind owns a comma-separated
// list eligible for trailing-comma normalization: importers, call sites, and
// definition argument lists. Stray commas in other constructs (e.g. statement
// lists inside constructor bodies) are deliberately left alone.
func (k Kind) IsCommaListOwner() bool {
	switch k {
	case KindImporter, KindTermApply, KindParamClause, KindCtorPrimary:
		return true
	default:
		return false
	}
}

// IsImportRelated reports whether a node belongs to an import statement. A
// closing brace counts as a trailing-comma close delimiter only here.
func (k Kind) IsImportRelated() bool {
	return k == KindImport || k == KindImporter
}
