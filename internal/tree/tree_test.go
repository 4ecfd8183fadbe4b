package tree_test

import (
	"testing"

	"github.com/xavierguihot/scalafmt/internal/tree"
)

func TestOwnerOfDeepestWins(t *testing.T) {
	b := tree.NewBuilder(6)
	root := b.Add(tree.KindSource, nil, 0, 5)
	defn := b.Add(tree.KindDefnVal, root, 1, 4)
	name := b.Add(tree.KindTermName, defn, 2, 2)
	tr := b.Build()

	if got := tr.OwnerOf(0); got != root {
		t.Fatalf("token 0: want root, got %v", got.Kind)
	}
	if got := tr.OwnerOf(2); got != name {
		t.Fatalf("token 2: want Term.Name, got %v", got.Kind)
	}
	if got := tr.OwnerOf(4); got != defn {
		t.Fatalf("token 4: want Defn.Val, got %v", got.Kind)
	}
	if got := tr.OwnerOf(99); got != root {
		t.Fatalf("out-of-range token must resolve to root, got %v", got)
	}
}

func TestAncestry(t *testing.T) {
	b := tree.NewBuilder(4)
	root := b.Add(tree.KindSource, nil, 0, 3)
	apply := b.Add(tree.KindTermApply, root, 0, 3)
	arg := b.Add(tree.KindTermName, apply, 1, 1)
	other := b.Add(tree.KindTermName, root, 3, 3)
	_ = b.Build()

	if arg.Depth() != 2 {
		t.Fatalf("depth: want 2, got %d", arg.Depth())
	}
	if !root.IsAncestorOf(arg) || !apply.IsAncestorOf(arg) {
		t.Fatalf("ancestor chain broken")
	}
	if apply.IsAncestorOf(other) {
		t.Fatalf("apply must not be ancestor of sibling leaf")
	}
	if got := len(arg.Ancestors()); got != 2 {
		t.Fatalf("ancestors: want 2, got %d", got)
	}
	// Walk stops at the boundary node: root is above apply, so it is not
	// reachable within apply.
	if root.IsAncestorWithin(arg, apply) {
		t.Fatalf("root must not be ancestor of arg within apply")
	}
	if !apply.IsAncestorWithin(arg, root) {
		t.Fatalf("apply must be ancestor of arg within root")
	}
}

func TestNearestOfKind(t *testing.T) {
	b := tree.NewBuilder(3)
	root := b.Add(tree.KindSource, nil, 0, 2)
	pkg := b.Add(tree.KindPkg, root, 0, 2)
	ref := b.Add(tree.KindTermSelect, pkg, 1, 2)
	_ = b.Build()

	if got := ref.NearestOfKind(tree.KindPkg); got != pkg {
		t.Fatalf("nearest Pkg: want pkg node, got %v", got)
	}
	if got := ref.NearestOfKind(tree.KindTemplate); got != nil {
		t.Fatalf("nearest Template: want nil, got %v", got.Kind)
	}
}
