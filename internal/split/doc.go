// Package split carries the per-boundary formatting decisions the renderer
// consumes. The decisions themselves are produced by the external best-first
// search; this package only models them.
// Invariants:
//   - one Location per token boundary, in original token order;
//   - Locations are never reordered or mutated after construction;
//   - State is the layout the search computed for the boundary, the renderer
//     reads it but never recomputes it.
package split
