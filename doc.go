// Package bookart computes cut and fold patterns for book art.
//
// Book art is the craft of folding or trimming the pages of a book so that,
// viewed from the fore edge, the pages reproduce a silhouette. This package
// takes such a silhouette (the design), made of rectangles, circles,
// ellipses and paths, and turns it into printable guide lines: one vertical
// line per book page, clipped to the design, colored and labeled with page
// numbers, and split across as many sheets of paper as needed.
//
// # Pipeline
//
// [Generate] runs the whole computation. It is made of five stages that can
// also be used on their own:
//
//   - [Collect] gathers the eligible shapes of a [Source], bakes their
//     transforms into their geometry and groups them by fill color into
//     [PatternGroup] values.
//   - [ScaleDesign] stretches the design horizontally so that one guide line
//     lands on every book page the design spans. With a line distance of zero
//     the natural spacing of the design is adopted instead.
//   - [BuildClipMasks] produces one [ClipMask] per pattern group.
//   - [GenerateSegment] computes the guide lines of one sheet, assigns each
//     line to its [LineBand] values and produces the page number labels.
//   - [Layout] decides how many sheets are needed and centers every sheet's
//     content on its page rectangle.
//
// The result is a [Pattern], which can be applied to any [Canvas]. The
// svgdoc and pdfdoc packages provide canvases that write SVG and PDF.
//
// # Bands
//
// Lines are assigned to bands by an ordered list of predicates. The first
// predicate that matches claims the line:
//
//   - lines whose page number is a multiple of ten are drawn in every
//     pattern band. Each pattern band is clipped to its own group;
//   - lines whose page number is a multiple of five go to the half-decade
//     band;
//   - all remaining lines go to the innermost pattern band only.
//
// Lines of the blank pages before and after the design follow the same
// rules. The outermost background band receives no lines.
//
// Page numbers start at the first even page and grow by two per line, which
// means that, as long as page numbers stay even, the half-decade band never
// receives a line. It is kept as an explicit rule so that the precedence
// list is complete.
//
// # Coordinates
//
// All coordinates are document user units in a y-down space, as in SVG.
// [Derive] converts the unit-bearing [Config] into [Settings] expressed in
// user units.
package bookart
