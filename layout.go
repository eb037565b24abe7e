package bookart

import (
	"fmt"
	"math"

	"honnef.co/go/curve"
)

// PhysicalPage is one sheet of the printed pattern. Sheets are placed left
// to right on the canvas, [PageGap] apart.
type PhysicalPage struct {
	Index  int
	X      float64
	Y      float64
	Width  float64
	Height float64
	// Translate moves the segment's content so that it is centered on the
	// page.
	Translate curve.Vec2
	Segment   Segment
}

// Name returns the page's display name, counting from one.
func (p PhysicalPage) Name() string {
	return fmt.Sprintf("Page #%d", p.Index+1)
}

// Rect returns the page rectangle on the canvas.
func (p PhysicalPage) Rect() curve.Rect {
	return curve.Rect{X0: p.X, Y0: p.Y, X1: p.X + p.Width, Y1: p.Y + p.Height}
}

// Transform returns the transform that places the segment's content on
// the page.
func (p PhysicalPage) Transform() curve.Affine {
	return curve.Translate(p.Translate)
}

// Pattern is the result of a layout.
type Pattern struct {
	// Settings are the settings the layout used, including the effective
	// line distance.
	Settings Settings
	Design   *Design
	Scaling  Scaling
	Clips    []ClipMask
	// LinesPerPage is the maximum number of lines per sheet.
	LinesPerPage int
	Pages        []PhysicalPage
}

// Empty reports whether the pattern has nothing to draw.
func (p *Pattern) Empty() bool {
	return p == nil || p.Design.Empty() || len(p.Pages) == 0
}

// Canvas is a document that can hold a pattern.
type Canvas interface {
	// SetCanvasSize sets the size of the document's viewport.
	SetCanvasSize(width, height float64)
	// RemovePages removes all pages and their content.
	RemovePages()
	// RegisterClipMasks makes clip masks available to pages added later.
	RegisterClipMasks(masks []ClipMask)
	AddPage(p PhysicalPage)
}

// Apply replaces the pages of dst with the pattern's pages, resizing its
// viewport to a single sheet. Applying the same pattern again yields the
// same pages. An empty pattern leaves dst untouched.
func (p *Pattern) Apply(dst Canvas) {
	if p.Empty() {
		return
	}
	dst.SetCanvasSize(p.Settings.PageWidth, p.Settings.PageHeight)
	dst.RemovePages()
	dst.RegisterClipMasks(p.Clips)
	for _, page := range p.Pages {
		dst.AddPage(page)
	}
}

// Paginate returns the number of sheets needed for the lines of s and the
// number of lines per sheet. If the page margins leave no room, all lines
// go on a single sheet.
func Paginate(s Settings) (pages, linesPerPage int) {
	total := s.TotalPages
	if total <= 0 {
		return 0, 0
	}
	cw := s.ContentWidth()
	if cw <= 0 {
		return 1, total
	}
	// Forgive rounding errors of the line distance, which would otherwise
	// add an empty sheet when the lines fit exactly.
	const epsilon = 1e-9
	pages = int(math.Ceil(s.LineDistance*float64(total)/cw - epsilon))
	pages = max(pages, 1)
	linesPerPage = (total + pages - 1) / pages
	return pages, linesPerPage
}

// Layout splits the guide lines of d across sheets and centers each sheet's
// content on its page.
func Layout(d *Design, s Settings, masks []ClipMask, m Metrics) *Pattern {
	if m == nil {
		m = DefaultMetrics()
	}
	p := &Pattern{
		Settings: s,
		Design:   d,
		Clips:    masks,
	}
	if d.Empty() {
		return p
	}
	n, lpp := Paginate(s)
	p.LinesPerPage = lpp
	for i := range n {
		page := PhysicalPage{
			Index:   i,
			X:       float64(i) * (s.PageWidth + PageGap),
			Y:       0,
			Width:   s.PageWidth,
			Height:  s.PageHeight,
			Segment: GenerateSegment(d, s, masks, i, lpp),
		}
		if box, ok := page.Segment.ContentBox(m); ok {
			c := box.Center()
			page.Translate = curve.Vec(
				page.X+page.Width/2-c.X,
				page.Y+page.Height/2-c.Y,
			)
		}
		p.Pages = append(p.Pages, page)
	}
	return p
}
