// Package wire serializes fully resolved render plans. A plan is the
// flattened form of everything the renderer consumes for one file: tokens,
// syntax-tree shape, and per-boundary layout decisions. Plans travel between
// the formatting pipeline and the renderer as msgpack, with a schema version
// for safe invalidation when the format changes.
package wire
