package svgdoc

import (
	"fmt"
	"math"
	"strings"

	"honnef.co/go/curve"
)

// parseTransform parses the value of a transform attribute. The listed
// transforms apply right to left, as if nested.
func parseTransform(s string) (curve.Affine, error) {
	aff := curve.Identity
	sc := &scanner{s: s}
	for !sc.done() {
		start := sc.pos
		for c := sc.peek(); c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'; c = sc.peek() {
			sc.pos++
		}
		name := sc.s[start:sc.pos]
		sc.skipSpace()
		if name == "" || sc.peek() != '(' {
			return curve.Identity, &ParseError{"transform", s, ErrSyntax}
		}
		sc.pos++

		var args []float64
		for sc.skipSpace(); sc.peek() != ')'; sc.skipSpace() {
			if sc.pos >= len(sc.s) {
				return curve.Identity, &ParseError{"transform", s, ErrSyntax}
			}
			v, err := sc.number()
			if err != nil {
				return curve.Identity, &ParseError{"transform", s, err}
			}
			args = append(args, v)
		}
		sc.pos++
		sc.skipSep()

		t, err := transformFunc(name, args)
		if err != nil {
			return curve.Identity, &ParseError{"transform", s, err}
		}
		aff = aff.Mul(t)
	}
	return aff, nil
}

func transformFunc(name string, args []float64) (curve.Affine, error) {
	want := func(counts ...int) error {
		for _, n := range counts {
			if len(args) == n {
				return nil
			}
		}
		return fmt.Errorf("%w: %s takes %v, got %d", ErrArgCount, name, counts, len(args))
	}
	deg := func(v float64) float64 { return v * math.Pi / 180 }

	switch strings.ToLower(name) {
	case "matrix":
		if err := want(6); err != nil {
			return curve.Identity, err
		}
		return curve.NewAffine([6]float64(args)), nil
	case "translate":
		if err := want(1, 2); err != nil {
			return curve.Identity, err
		}
		v := curve.Vec(args[0], 0)
		if len(args) == 2 {
			v.Y = args[1]
		}
		return curve.Translate(v), nil
	case "scale":
		if err := want(1, 2); err != nil {
			return curve.Identity, err
		}
		if len(args) == 1 {
			return curve.Scale(args[0], args[0]), nil
		}
		return curve.Scale(args[0], args[1]), nil
	case "rotate":
		if err := want(1, 3); err != nil {
			return curve.Identity, err
		}
		if len(args) == 3 {
			return curve.RotateAbout(deg(args[0]), curve.Pt(args[1], args[2])), nil
		}
		return curve.Rotate(deg(args[0])), nil
	case "skewx":
		if err := want(1); err != nil {
			return curve.Identity, err
		}
		return curve.Skew(math.Tan(deg(args[0])), 0), nil
	case "skewy":
		if err := want(1); err != nil {
			return curve.Identity, err
		}
		return curve.Skew(0, math.Tan(deg(args[0]))), nil
	default:
		return curve.Identity, fmt.Errorf("%w: unknown transform %q", ErrSyntax, name)
	}
}

// formatTransform formats aff for a transform attribute.
func formatTransform(aff curve.Affine) string {
	c := aff.Coefficients()
	if c[0] == 1 && c[1] == 0 && c[2] == 0 && c[3] == 1 {
		return fmt.Sprintf("translate(%g,%g)", c[4], c[5])
	}
	return fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)", c[0], c[1], c[2], c[3], c[4], c[5])
}
