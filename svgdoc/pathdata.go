package svgdoc

import (
	"fmt"
	"math"

	"honnef.co/go/curve"
)

// arcTolerance is the accuracy, in user units, of the cubic Béziers that
// approximate elliptical arcs.
const arcTolerance = 1e-3

// parsePathData parses the d attribute of a path element.
func parsePathData(d string) (curve.BezPath, error) {
	var pb pathBuilder
	sc := &scanner{s: d}
	var cmd byte
	for !sc.done() {
		if c := sc.peek(); !sc.atNumber() {
			cmd = c
			sc.pos++
			sc.skipSpace()
		} else if cmd == 0 {
			return nil, &ParseError{"d", d, fmt.Errorf("%w: path data must start with a command", ErrSyntax)}
		}
		if len(pb.path) == 0 && cmd != 'M' && cmd != 'm' {
			return nil, &ParseError{"d", d, fmt.Errorf("%w: path data must start with a moveto", ErrSyntax)}
		}
		if err := pb.command(sc, cmd); err != nil {
			return nil, &ParseError{"d", d, err}
		}
		// Coordinates following a moveto are implicit linetos.
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		case 'Z', 'z':
			if sc.atNumber() {
				return nil, &ParseError{"d", d, fmt.Errorf("%w: numbers after closepath", ErrSyntax)}
			}
		}
	}
	return pb.path, nil
}

type pathBuilder struct {
	path  curve.BezPath
	cur   curve.Point
	start curve.Point
	// ctrl is the last control point of the previous segment, used to
	// reflect the control point of smooth curves.
	ctrl curve.Point
	last byte
}

func (pb *pathBuilder) command(sc *scanner, cmd byte) error {
	rel := cmd >= 'a' && cmd <= 'z'
	abs := cmd
	if rel {
		abs = cmd - 'a' + 'A'
	}
	pt := func(x, y float64) curve.Point {
		if rel {
			return curve.Pt(pb.cur.X+x, pb.cur.Y+y)
		}
		return curve.Pt(x, y)
	}
	var n [7]float64

	switch abs {
	case 'M':
		if err := sc.numbers(n[:2]); err != nil {
			return err
		}
		p := pt(n[0], n[1])
		pb.path.MoveTo(p)
		pb.cur, pb.start, pb.ctrl = p, p, p
	case 'L':
		if err := sc.numbers(n[:2]); err != nil {
			return err
		}
		pb.lineTo(pt(n[0], n[1]))
	case 'H':
		if err := sc.numbers(n[:1]); err != nil {
			return err
		}
		x := n[0]
		if rel {
			x += pb.cur.X
		}
		pb.lineTo(curve.Pt(x, pb.cur.Y))
	case 'V':
		if err := sc.numbers(n[:1]); err != nil {
			return err
		}
		y := n[0]
		if rel {
			y += pb.cur.Y
		}
		pb.lineTo(curve.Pt(pb.cur.X, y))
	case 'C':
		if err := sc.numbers(n[:6]); err != nil {
			return err
		}
		pb.cubicTo(pt(n[0], n[1]), pt(n[2], n[3]), pt(n[4], n[5]))
	case 'S':
		if err := sc.numbers(n[:4]); err != nil {
			return err
		}
		p1 := pb.cur
		if pb.last == 'C' || pb.last == 'S' {
			p1 = reflect(pb.ctrl, pb.cur)
		}
		pb.cubicTo(p1, pt(n[0], n[1]), pt(n[2], n[3]))
	case 'Q':
		if err := sc.numbers(n[:4]); err != nil {
			return err
		}
		pb.quadTo(pt(n[0], n[1]), pt(n[2], n[3]))
	case 'T':
		if err := sc.numbers(n[:2]); err != nil {
			return err
		}
		p1 := pb.cur
		if pb.last == 'Q' || pb.last == 'T' {
			p1 = reflect(pb.ctrl, pb.cur)
		}
		pb.quadTo(p1, pt(n[0], n[1]))
	case 'A':
		if err := sc.numbers(n[:3]); err != nil {
			return err
		}
		large, err := sc.flag()
		if err != nil {
			return err
		}
		sweep, err := sc.flag()
		if err != nil {
			return err
		}
		if err := sc.numbers(n[3:5]); err != nil {
			return err
		}
		pb.arcTo(n[0], n[1], n[2], large, sweep, pt(n[3], n[4]))
	case 'Z':
		if len(pb.path) > 0 {
			pb.path.ClosePath()
		}
		pb.cur, pb.ctrl = pb.start, pb.start
	default:
		return fmt.Errorf("%w: unknown command %q", ErrSyntax, cmd)
	}
	pb.last = abs
	return nil
}

// ensureStart starts a subpath at the current point if the previous one was
// closed.
func (pb *pathBuilder) ensureStart() {
	if len(pb.path) == 0 || pb.path[len(pb.path)-1].Kind == curve.ClosePathKind {
		pb.path.MoveTo(pb.cur)
		pb.start = pb.cur
	}
}

func (pb *pathBuilder) lineTo(p curve.Point) {
	pb.ensureStart()
	pb.path.LineTo(p)
	pb.cur, pb.ctrl = p, p
}

func (pb *pathBuilder) cubicTo(p1, p2, p3 curve.Point) {
	pb.ensureStart()
	pb.path.CubicTo(p1, p2, p3)
	pb.cur, pb.ctrl = p3, p2
}

func (pb *pathBuilder) quadTo(p1, p2 curve.Point) {
	pb.ensureStart()
	pb.path.QuadTo(p1, p2)
	pb.cur, pb.ctrl = p2, p1
}

// arcTo appends an elliptical arc in SVG endpoint notation, converted to
// center notation.
func (pb *pathBuilder) arcTo(rx, ry, rotation float64, large, sweep bool, to curve.Point) {
	from := pb.cur
	if from == to {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		pb.lineTo(to)
		return
	}
	pb.ensureStart()

	phi := rotation * math.Pi / 180
	sin, cos := math.Sincos(phi)
	dx, dy := (from.X-to.X)/2, (from.Y-to.Y)/2
	x1 := cos*dx + sin*dy
	y1 := -sin*dx + cos*dy

	// Scale radii that are too small to span the endpoints.
	if l := x1*x1/(rx*rx) + y1*y1/(ry*ry); l > 1 {
		s := math.Sqrt(l)
		rx, ry = rx*s, ry*s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(max(num/den, 0))
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx
	center := curve.Pt(
		cos*cx1-sin*cy1+(from.X+to.X)/2,
		sin*cx1+cos*cy1+(from.Y+to.Y)/2,
	)

	angle := func(ux, uy, vx, vy float64) float64 {
		return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	}
	theta := angle(1, 0, (x1-cx1)/rx, (y1-cy1)/ry)
	delta := angle((x1-cx1)/rx, (y1-cy1)/ry, (-x1-cx1)/rx, (-y1-cy1)/ry)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	arc := curve.Arc{
		Center:     center,
		Radii:      curve.Vec(rx, ry),
		StartAngle: theta,
		SweepAngle: delta,
		XRotation:  phi,
	}
	first := true
	for el := range arc.PathElements(arcTolerance) {
		if first {
			// The arc starts at the current point.
			first = false
			continue
		}
		pb.path.Push(el)
	}
	// Snap to the exact endpoint.
	if last := len(pb.path) - 1; pb.path[last].Kind == curve.CubicToKind {
		pb.path[last].P2 = to
	}
	pb.cur, pb.ctrl = to, to
}

func reflect(ctrl, about curve.Point) curve.Point {
	return curve.Pt(2*about.X-ctrl.X, 2*about.Y-ctrl.Y)
}
