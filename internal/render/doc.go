// Package render turns a fully resolved sequence of format locations into the
// final formatted text. It is the last stage of the formatter: the external
// search has already chosen a split and layout for every token boundary, and
// this package only decides the exact bytes each decision produces, including
// comment re-indentation, literal normalization, trailing-comma surgery, and
// vertical token alignment.
//
// The whole package is a pure function of (tokens, tree, locations, style):
// no I/O, no shared state, and concurrent calls over independent documents
// are safe.
package render
