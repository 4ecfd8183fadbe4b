// Package tree is the read-only syntax-tree oracle the renderer queries.
// It answers "which node owns this token", "what is a node's ancestor chain",
// and "what kind of construct is this" without owning any parsing logic; the
// external parser flattens its tree into this shape inside a render plan.
// Invariants:
//   - nodes are added parent-first, so the owner of a token is always the
//     deepest node whose span covers it;
//   - the tree is immutable once built.
package tree
