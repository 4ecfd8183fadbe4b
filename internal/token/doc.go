// Package token defines the lexical token kinds consumed by the renderer.
// Invariants:
//   - Token.Text is exactly the literal text the tokenizer produced; the
//     renderer never mutates a token, it only re-renders its text.
//   - Token.Span matches Text in the original source (Start..End).
//   - Comments are a single kind; line/block/doc flavor is recovered from the
//     text prefix, mirroring how the upstream tokenizer reports them.
package token
