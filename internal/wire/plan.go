package wire

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"github.com/xavierguihot/scalafmt/internal/render"
	"github.com/xavierguihot/scalafmt/internal/source"
	"github.com/xavierguihot/scalafmt/internal/split"
	"github.com/xavierguihot/scalafmt/internal/style"
	"github.com/xavierguihot/scalafmt/internal/token"
	"github.com/xavierguihot/scalafmt/internal/tree"
)

// Current schema version - increment when the plan format changes.
const SchemaVersion uint16 = 1

// ErrSchemaMismatch reports a plan written by an incompatible version.
var ErrSchemaMismatch = errors.New("wire: plan schema mismatch")

// ErrMalformedPlan reports a plan whose internal references do not hold.
var ErrMalformedPlan = errors.New("wire: malformed plan")

// Plan is the serialized form of one file's render inputs.
type Plan struct {
	// Schema version for safe invalidation when the format changes.
	Schema uint16

	// Path identifies the source file the plan was produced for.
	Path string

	Tokens []PlanToken
	Nodes  []PlanNode
	Steps  []PlanStep
}

// PlanToken is one token with its original source span.
type PlanToken struct {
	Kind  uint8
	Start uint32
	End   uint32
	Text  string
}

// PlanNode is one syntax-tree node in preorder. Parent indexes an earlier
// node, or is -1 for the root.
type PlanNode struct {
	Kind   uint8
	Parent int32
	First  int32
	Last   int32
}

// PlanStep is the decision and layout for one boundary, in boundary order.
type PlanStep struct {
	Kind            uint8
	DoubleBlank     bool
	NoIndent        bool
	CollapseToNone  bool
	CollapseToSpace bool
	Literal         string
	Indent          int32
	Column          int32
}

// FromDoc flattens render inputs into a plan. The tree is emitted in
// preorder so that every parent precedes its children.
func FromDoc(path string, doc *render.Doc) (*Plan, error) {
	p := &Plan{Schema: SchemaVersion, Path: path}
	if doc == nil {
		return p, nil
	}

	p.Tokens = make([]PlanToken, len(doc.Tokens))
	for i, t := range doc.Tokens {
		p.Tokens[i] = PlanToken{
			Kind:  uint8(t.Kind),
			Start: t.Span.Start,
			End:   t.Span.End,
			Text:  t.Text,
		}
	}

	if doc.Tree != nil && doc.Tree.Root() != nil {
		if err := p.flattenTree(doc.Tree.Root()); err != nil {
			return nil, err
		}
	}

	p.Steps = make([]PlanStep, len(doc.Locs))
	for i, loc := range doc.Locs {
		indent, err := safecast.Conv[int32](loc.State.Indent)
		if err != nil {
			return nil, fmt.Errorf("wire: step %d indent: %w", i, err)
		}
		column, err := safecast.Conv[int32](loc.State.Column)
		if err != nil {
			return nil, fmt.Errorf("wire: step %d column: %w", i, err)
		}
		m := loc.Split.Mod
		p.Steps[i] = PlanStep{
			Kind:            uint8(m.Kind),
			DoubleBlank:     m.DoubleBlank,
			NoIndent:        m.NoIndent,
			CollapseToNone:  m.CollapseToNone,
			CollapseToSpace: m.CollapseToSpace,
			Literal:         m.Literal,
			Indent:          indent,
			Column:          column,
		}
	}
	return p, nil
}

func (p *Plan) flattenTree(root *tree.Node) error {
	index := make(map[*tree.Node]int32)
	var walk func(n *tree.Node, parent int32) error
	walk = func(n *tree.Node, parent int32) error {
		first, err := safecast.Conv[int32](n.First)
		if err != nil {
			return fmt.Errorf("wire: node range: %w", err)
		}
		last, err := safecast.Conv[int32](n.Last)
		if err != nil {
			return fmt.Errorf("wire: node range: %w", err)
		}
		self, err := safecast.Conv[int32](len(p.Nodes))
		if err != nil {
			return fmt.Errorf("wire: node count: %w", err)
		}
		index[n] = self
		p.Nodes = append(p.Nodes, PlanNode{
			Kind:   uint8(n.Kind),
			Parent: parent,
			First:  first,
			Last:   last,
		})
		for _, child := range n.Children {
			if err := walk(child, self); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root, -1)
}

// Doc rebuilds render inputs from the plan. The style is supplied by the
// caller: configuration never travels inside plans.
func (p *Plan) Doc(cfg *style.Config) (*render.Doc, error) {
	if p.Schema != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchemaMismatch, p.Schema, SchemaVersion)
	}

	tokens := make([]token.Token, len(p.Tokens))
	for i, t := range p.Tokens {
		tokens[i] = token.Token{
			Kind: token.Kind(t.Kind),
			Span: source.Span{Start: t.Start, End: t.End},
			Text: t.Text,
		}
	}

	tb := tree.NewBuilder(len(tokens))
	built := make([]*tree.Node, len(p.Nodes))
	for i, n := range p.Nodes {
		var parent *tree.Node
		if n.Parent >= 0 {
			if int(n.Parent) >= i {
				return nil, fmt.Errorf("%w: node %d references parent %d", ErrMalformedPlan, i, n.Parent)
			}
			parent = built[n.Parent]
		}
		built[i] = tb.Add(tree.Kind(n.Kind), parent, int(n.First), int(n.Last))
	}

	locs := make([]split.Location, len(p.Steps))
	for i, st := range p.Steps {
		locs[i] = split.Location{
			Index: i,
			Split: split.Split{Mod: split.Modification{
				Kind:            split.ModKind(st.Kind),
				DoubleBlank:     st.DoubleBlank,
				NoIndent:        st.NoIndent,
				CollapseToNone:  st.CollapseToNone,
				CollapseToSpace: st.CollapseToSpace,
				Literal:         st.Literal,
			}},
			State: split.State{Indent: int(st.Indent), Column: int(st.Column)},
		}
	}

	return &render.Doc{Tokens: tokens, Tree: tb.Build(), Locs: locs, Style: cfg}, nil
}
