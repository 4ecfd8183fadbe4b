// Package style holds the formatter configuration the renderer reads. A
// Config is built once per run, either in code or from a .scalafmt.toml file,
// and is never mutated while rendering.
package style
