package split

// ModKind discriminates the separator decision for a boundary.
type ModKind uint8

const (
	// NoSplit emits no separator text.
	NoSplit ModKind = iota
	// Space emits one space, extendable by alignment padding.
	Space
	// Newline emits a line break, with the flag variants below.
	Newline
	// Provided emits an exact preserved string, bypassing every other rule.
	Provided
)

func (k ModKind) String() string {
	switch k {
	case NoSplit:
		return "NoSplit"
	case Space:
		return "Space"
	case Newline:
		return "Newline"
	case Provided:
		return "Provided"
	default:
		return "Invalid"
	}
}

// Modification is the tagged decision for one boundary's separator.
type Modification struct {
	Kind ModKind
	// DoubleBlank forces a blank line (two newlines) for Newline.
	DoubleBlank bool
	// NoIndent suppresses indentation after a Newline.
	NoIndent bool
	// CollapseToNone allows the Newline to degrade to nothing when the next
	// content already starts at or past the previous boundary's column.
	CollapseToNone bool
	// CollapseToSpace allows the Newline to degrade to a single space under
	// the same column comparison.
	CollapseToSpace bool
	// Literal is the exact text for Provided.
	Literal string
}

// NoSplitMod returns a no-separator decision.
func NoSplitMod() Modification { return Modification{Kind: NoSplit} }

// SpaceMod returns a single-space decision.
func SpaceMod() Modification { return Modification{Kind: Space} }

// NewlineMod returns a plain line-break decision.
func NewlineMod() Modification { return Modification{Kind: Newline} }

// DoubleNewlineMod returns a forced blank-line decision.
func DoubleNewlineMod() Modification {
	return Modification{Kind: Newline, DoubleBlank: true}
}

// NoIndentNewlineMod returns a line break that suppresses indentation.
func NoIndentNewlineMod() Modification {
	return Modification{Kind: Newline, NoIndent: true}
}

// ProvidedMod returns a verbatim separator decision.
func ProvidedMod(text string) Modification {
	return Modification{Kind: Provided, Literal: text}
}

// IsNewline reports whether the decision is any Newline variant.
func (m Modification) IsNewline() bool { return m.Kind == Newline }

// Split wraps a Modification. Policy metadata the search attaches never
// reaches the renderer, so the wrapper stays thin on this side.
type Split struct {
	Mod Modification
}

// State is the running layout at a boundary after its decision is applied:
// the indentation of the current line and the column just past the boundary's
// right token.
type State struct {
	Indent int
	Column int
}

// Location ties one boundary to its decision and layout: the atomic unit the
// renderer consumes. Index is the boundary index, equal to the index of the
// boundary's left token.
type Location struct {
	Index int
	Split Split
	State State
}
