// Package svgdoc reads design shapes from SVG documents and writes book art
// patterns as Inkscape multi-page SVG.
//
// Parsing is lenient in the way browsers are: the document is read with an
// HTML5 parser, unknown elements are ignored, and paints other than plain
// colors resolve to black. Malformed geometry, such as broken path data,
// is an error.
package svgdoc
