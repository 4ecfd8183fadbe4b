package tree

// Node is a single syntax-tree node. First and Last are the token indexes the
// node covers, inclusive on both ends.
type Node struct {
	Kind     Kind
	Parent   *Node
	Children []*Node
	First    int
	Last     int
}

// Root returns the topmost ancestor of the node.
func (n *Node) Root() *Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// Depth returns the node's distance from its root.
func (n *Node) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// Ancestors returns the parent chain from the node's parent up to the root.
func (n *Node) Ancestors() []*Node {
	var out []*Node
	for p := n.Parent; p != nil; p = p.Parent {
		out = append(out, p)
	}
	return out
}

// IsAncestorOf reports whether n is a strict ancestor of m.
func (n *Node) IsAncestorOf(m *Node) bool {
	if m == nil {
		return false
	}
	for p := m.Parent; p != nil; p = p.Parent {
		if p == n {
			return true
		}
	}
	return false
}

// IsAncestorWithin reports whether n is a strict ancestor of m on the chain
// below stop. The walk never crosses stop, so two constructs that only share
// ancestry above stop are not related for alignment purposes.
func (n *Node) IsAncestorWithin(m, stop *Node) bool {
	if m == nil {
		return false
	}
	for p := m.Parent; p != nil && p != stop; p = p.Parent {
		if p == n {
			return true
		}
	}
	return false
}

// NearestOfKind returns the closest node of the given kind on the chain from
// n (inclusive) to the root, or nil.
func (n *Node) NearestOfKind(k Kind) *Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Kind == k {
			return cur
		}
	}
	return nil
}

// Tree is the immutable oracle over one file's syntax tree.
type Tree struct {
	root   *Node
	owners []*Node
}

// Root returns the root node.
func (t *Tree) Root() *Node { return t.root }

// OwnerOf returns the deepest node owning the token at index i. Tokens not
// claimed by any node (synthetic BOF/EOF) resolve to the root.
func (t *Tree) OwnerOf(i int) *Node {
	if t == nil {
		return nil
	}
	if i < 0 || i >= len(t.owners) || t.owners[i] == nil {
		return t.root
	}
	return t.owners[i]
}

// Builder assembles a Tree. Nodes must be added parent before child so that
// deeper nodes overwrite ownership of their token range.
type Builder struct {
	tree *Tree
}

// NewBuilder creates a builder for a file with the given token count.
func NewBuilder(numTokens int) *Builder {
	return &Builder{tree: &Tree{owners: make([]*Node, numTokens)}}
}

// Add registers a node. The first node added with a nil parent becomes the
// root. Ranges outside the token stream are clamped.
func (b *Builder) Add(kind Kind, parent *Node, first, last int) *Node {
	n := &Node{Kind: kind, Parent: parent, First: first, Last: last}
	if parent == nil {
		if b.tree.root == nil {
			b.tree.root = n
		}
	} else {
		parent.Children = append(parent.Children, n)
	}
	lo, hi := first, last
	if lo < 0 {
		lo = 0
	}
	if hi >= len(b.tree.owners) {
		hi = len(b.tree.owners) - 1
	}
	for i := lo; i <= hi; i++ {
		b.tree.owners[i] = n
	}
	return n
}

// Build finalizes and returns the tree.
func (b *Builder) Build() *Tree {
	return b.tree
}
