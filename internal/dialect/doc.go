// Package dialect names the Scala language editions the formatter can target
// and the grammar gates that differ between them. Only the gates the renderer
// consults are modeled; full grammar differences live in the external parser.
package dialect
