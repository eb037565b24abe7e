package bookart

import "slices"

// Source provides the shapes of a document.
type Source interface {
	// Shapes returns every shape of the document in paint order, lowest
	// drawn first.
	Shapes() []Shape
	// Selection returns the shapes the user selected explicitly, in paint
	// order, with selected groups expanded to their descendants. It
	// returns nil if nothing is selected.
	Selection() []Shape
}

// Collect gathers the design from src. The selection is used if there is
// one, all of the document's shapes otherwise.
//
// Shapes are taken topmost first. With s.KeepPatternColor set, consecutive
// shapes with identical fills form one group each. Otherwise all shapes form a single group colored
// s.Colors.Pattern.
//
// A document without eligible shapes yields an empty design.
func Collect(src Source, s Settings) *Design {
	shapes := src.Selection()
	if len(shapes) == 0 {
		shapes = src.Shapes()
	}
	return CollectShapes(shapes, s.KeepPatternColor, s.Colors.Pattern)
}

// CollectShapes groups shapes like [Collect]. shapes are in paint order and
// are taken in reverse, topmost first. Ineligible shapes are skipped and the
// transforms of the remaining shapes are baked into their geometry.
func CollectShapes(shapes []Shape, keepColor bool, color Color) *Design {
	d := &Design{}
	var run []Shape
	runColor := color
	flush := func() {
		if len(run) > 0 {
			d.Groups = append(d.Groups, newPatternGroup(runColor, run...))
			run = nil
		}
	}
	for _, sh := range slices.Backward(shapes) {
		if !sh.Eligible() {
			continue
		}
		sh = sh.Bake()
		if keepColor && len(run) > 0 && sh.Fill != runColor {
			flush()
		}
		if keepColor && len(run) == 0 {
			runColor = sh.Fill
		}
		run = append(run, sh)
	}
	flush()
	return d
}
