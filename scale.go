package bookart

import (
	"honnef.co/go/curve"
)

// Scaling describes what [ScaleDesign] did.
type Scaling struct {
	// NaturalSpacing is the design width divided by the number of design
	// pages, before scaling.
	NaturalSpacing float64
	// Factor is the horizontal scale factor that was applied, or 1.
	Factor float64
	// Applied is set if the design was scaled.
	Applied bool
	// AutoFit is set if the natural spacing was adopted as line distance.
	AutoFit bool
}

// ScaleDesign stretches d horizontally so that its width equals
// s.LineDistance × s.DesignPages, placing one guide line on every page the
// design spans. Only the horizontal axis is scaled so that the silhouette's
// height, which maps onto the book's height, is preserved.
//
// With s.AutoLineDistance set, the design keeps its size and its natural
// spacing becomes the line distance of the returned settings.
//
// Designs without width and settings without design pages are left alone.
func ScaleDesign(d *Design, s Settings) (Settings, Scaling) {
	sc := Scaling{Factor: 1}
	if d.Empty() || s.DesignPages <= 0 {
		return s, sc
	}
	width := d.Width()
	if width == 0 {
		return s, sc
	}
	natural := width / float64(s.DesignPages)
	sc.NaturalSpacing = natural
	if s.AutoLineDistance {
		sc.AutoFit = true
		s = s.WithLineDistance(natural)
		if s.LineDistance == natural {
			return s, sc
		}
		// The natural spacing is below the minimum line distance; fall
		// through and stretch the design to the minimum instead.
	}

	f := s.LineDistance / natural
	aff := curve.Scale(f, 1)
	for _, g := range d.Groups {
		g.transform = aff.Mul(g.transform)
	}
	sc.Factor = f
	sc.Applied = true
	return s, sc
}
