package bookart

import (
	"honnef.co/go/curve"
)

// BandKind is the purpose of a [LineBand].
type BandKind int

const (
	// PatternBand carries the lines of one pattern group, clipped to it.
	PatternBand BandKind = iota
	// HalfDecadeBand carries lines on multiples of five that aren't
	// multiples of ten.
	HalfDecadeBand
	// BackgroundBand is the outermost band. No rule assigns lines to it; it
	// is kept so that canvases always see the same band layout.
	BackgroundBand
)

func (k BandKind) String() string {
	switch k {
	case PatternBand:
		return "pattern"
	case HalfDecadeBand:
		return "half-decade"
	case BackgroundBand:
		return "background"
	default:
		return "invalid"
	}
}

// Stroke is one vertical guide line.
type Stroke struct {
	X      float64
	Top    float64
	Bottom float64
}

// LineBand is the set of lines of one color on one sheet. Its strokes are
// disjoint and ordered by x.
type LineBand struct {
	// Index is the band's position, innermost first. Pattern band i uses
	// clip mask i.
	Index int
	Kind  BandKind
	Color Color
	// Clip is the clip mask of pattern bands, nil for the others.
	Clip    *ClipMask
	Strokes []Stroke
	// Pages holds the page number of every stroke.
	Pages []int
}

// Len returns the number of strokes.
func (b *LineBand) Len() int { return len(b.Strokes) }

func (b *LineBand) add(l guideLine, box curve.Rect) {
	b.Strokes = append(b.Strokes, Stroke{X: l.x, Top: box.Y0, Bottom: box.Y1})
	b.Pages = append(b.Pages, l.page)
}

// Path returns the strokes as one compound path.
func (b *LineBand) Path() curve.BezPath {
	p := make(curve.BezPath, 0, 2*len(b.Strokes))
	for _, s := range b.Strokes {
		p.MoveTo(curve.Pt(s.X, s.Top))
		p.LineTo(curve.Pt(s.X, s.Bottom))
	}
	return p
}

// BoundingBox returns the bounding box of the strokes. It returns false if
// the band has none.
func (b *LineBand) BoundingBox() (curve.Rect, bool) {
	if len(b.Strokes) == 0 {
		return curve.Rect{}, false
	}
	first, last := b.Strokes[0], b.Strokes[len(b.Strokes)-1]
	return curve.Rect{
		X0: first.X,
		Y0: min(first.Top, first.Bottom),
		X1: last.X,
		Y1: max(first.Top, first.Bottom),
	}, true
}

// RenderedBox returns the bounding box of the visible part of the band,
// which for clipped bands is limited to the clip mask. It returns false if
// nothing of the band is visible.
func (b *LineBand) RenderedBox() (curve.Rect, bool) {
	bbox, ok := b.BoundingBox()
	if !ok || b.Clip == nil {
		return bbox, ok
	}
	c := b.Clip.Box
	if bbox.X1 < c.X0 || bbox.X0 > c.X1 || bbox.Y1 < c.Y0 || bbox.Y0 > c.Y1 {
		return curve.Rect{}, false
	}
	return bbox.Intersect(c), true
}

// guideLine is one line before it is assigned to a band.
type guideLine struct {
	page int
	x    float64
}

// decade reports whether the line's page is a multiple of ten.
func (l guideLine) decade() bool {
	return l.page%10 == 0
}

// major reports whether the line gets a normal label. Page zero doesn't
// exist in a book and isn't labeled as a decade.
func (l guideLine) major() bool {
	return l.page != 0 && l.decade()
}

type bandRule struct {
	kind BandKind
	// every adds the line to every band of kind instead of only the
	// innermost one.
	every  bool
	claims func(guideLine) bool
}

// bandRules assigns lines to bands. The first matching rule claims the
// line.
var bandRules = []bandRule{
	{PatternBand, true, guideLine.decade},
	{HalfDecadeBand, false, func(l guideLine) bool { return l.page%5 == 0 }},
	{PatternBand, false, func(guideLine) bool { return true }},
}

func classify(l guideLine) bandRule {
	for _, r := range bandRules {
		if r.claims(l) {
			return r
		}
	}
	panic("unreachable")
}

// LineBox returns the rectangle spanned by the guide lines of all sheets:
// the design's bounding box extended by the padding pages horizontally and
// sized to the book's height vertically.
func LineBox(d *Design, s Settings) curve.Rect {
	bbox := d.BoundingBox()
	left := bbox.X0 - float64(s.PagesBefore)*s.LineDistance
	right := bbox.X1 + float64(s.PagesAfter)*s.LineDistance
	var top, bottom float64
	if s.MarginBottom == 0 {
		spacing := (s.BookHeight - bbox.Height()) / 2
		top = bbox.Y0 - spacing
		bottom = bbox.Y1 + spacing
	} else {
		bottom = bbox.Y1 + s.MarginBottom
		top = bottom - s.BookHeight
	}
	return curve.Rect{
		X0: left,
		Y0: top - s.VerticalAdjustment,
		X1: right,
		Y1: bottom - s.VerticalAdjustment,
	}
}

// Segment is the content of one sheet.
type Segment struct {
	Index int
	// Box is the line box shared by all sheets.
	Box curve.Rect
	// Pages holds the page numbers of the sheet's lines, in order.
	Pages []int
	// Bands holds the line bands, innermost first: one pattern band per
	// pattern group, then the half-decade band and the background band.
	Bands  []*LineBand
	Labels PageLabelSet
	// BottomLine is the optional alignment stroke, drawn in BottomLineColor.
	BottomLine      *curve.Line
	BottomLineColor Color
	// StrokeWidth is the width of all strokes.
	StrokeWidth float64
}

// Lines returns the number of lines of the segment.
func (seg *Segment) Lines() int { return len(seg.Pages) }

// Empty reports whether the segment has no lines.
func (seg *Segment) Empty() bool { return len(seg.Pages) == 0 }

// ContentBox returns the bounding box of everything visible on the sheet:
// the rendered bands, the labels and the bottom line. It returns false for
// sheets without visible content.
func (seg *Segment) ContentBox(m Metrics) (curve.Rect, bool) {
	var bbox curve.Rect
	found := false
	add := func(r curve.Rect) {
		if found {
			bbox = bbox.Union(r)
		} else {
			bbox = r
			found = true
		}
	}
	for _, b := range seg.Bands {
		if r, ok := b.RenderedBox(); ok {
			add(r)
		}
	}
	if r, ok := seg.Labels.BoundingBox(m); ok {
		add(r)
	}
	if seg.BottomLine != nil {
		add(curve.NewRectFromPoints(seg.BottomLine.P0, seg.BottomLine.P1))
	}
	return bbox, found
}

// GenerateSegment computes the guide lines of sheet index, which holds up to
// linesPerSegment lines. masks must be the clip masks of d.
//
// Line k of the sheet is the book page s.PageNumber(index*linesPerSegment+k).
// The sheet ends early once lines would exceed s.TotalPages or the last
// page. Multiples of ten are drawn in every pattern band, other multiples
// of five in the half-decade band and all remaining lines in the innermost
// pattern band only. Pages that are multiples of ten get a normal label, the
// first and last line of the sheet a small one.
func GenerateSegment(d *Design, s Settings, masks []ClipMask, index, linesPerSegment int) Segment {
	seg := Segment{
		Index: index,
		Labels: PageLabelSet{
			FontSize: s.FontSize,
		},
		BottomLineColor: s.Colors.Highlight1,
		StrokeWidth:     s.StrokeWidth,
	}
	if d.Empty() || linesPerSegment <= 0 {
		return seg
	}
	box := LineBox(d, s)
	seg.Box = box
	seg.Labels.Baseline = box.Y1 + s.FontSize + LabelGap

	var lines []guideLine
	first := index * linesPerSegment
	lastPage := s.LastEvenPage()
	for k := range linesPerSegment {
		g := first + k
		page := s.PageNumber(g)
		if g >= s.TotalPages || page > lastPage {
			break
		}
		lines = append(lines, guideLine{
			page: page,
			x:    box.X0 + float64(g)*s.LineDistance,
		})
	}
	if len(lines) == 0 {
		return seg
	}

	n := len(d.Groups)
	patterns := make([]*LineBand, n)
	for i, g := range d.Groups {
		b := &LineBand{Index: i, Kind: PatternBand, Color: g.Color}
		if i < len(masks) {
			b.Clip = &masks[i]
		}
		patterns[i] = b
	}
	halfDecade := &LineBand{Index: n, Kind: HalfDecadeBand, Color: s.Colors.Highlight2}
	background := &LineBand{Index: n + 1, Kind: BackgroundBand, Color: s.Colors.Background}

	for i, l := range lines {
		seg.Pages = append(seg.Pages, l.page)
		switch r := classify(l); {
		case r.kind == HalfDecadeBand:
			halfDecade.add(l, box)
		case r.every:
			for _, b := range patterns {
				b.add(l, box)
			}
		default:
			patterns[0].add(l, box)
		}

		switch {
		case l.major():
			seg.Labels.Labels = append(seg.Labels.Labels, PageLabel{X: l.x, Page: l.page, Size: NormalLabel})
		case i == 0 || i == len(lines)-1:
			seg.Labels.Labels = append(seg.Labels.Labels, PageLabel{X: l.x, Page: l.page, Size: SmallLabel})
		}
	}
	seg.Bands = append(patterns, halfDecade, background)

	if s.BottomLine {
		if r, ok := patterns[0].RenderedBox(); ok {
			seg.BottomLine = &curve.Line{P0: curve.Pt(r.X0, r.Y1), P1: curve.Pt(r.X1, r.Y1)}
		}
	}
	return seg
}
