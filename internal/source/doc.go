// Package source defines byte-offset spans into the original source text.
// Invariants:
//   - Span.Start is inclusive, Span.End exclusive, both in bytes.
//   - Spans always refer to the single file a render plan was built from;
//     the renderer never mixes spans across files.
package source
