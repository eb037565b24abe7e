package bookart

import (
	"testing"

	"honnef.co/go/curve"
)

func TestPaginate(t *testing.T) {
	base := mustDerive(t, testConfig(0, 20))
	f := func(total int, ld, width, margins float64, wantPages, wantLines int) {
		t.Helper()
		s := base
		s.TotalPages = total
		s.LineDistance = ld
		s.PageWidth = width
		s.PageMargins = margins
		pages, lines := Paginate(s)
		if pages != wantPages || lines != wantLines {
			t.Errorf("%d lines, distance %v, content width %v: got (%d, %d), want (%d, %d)",
				total, ld, width-2*margins, pages, lines, wantPages, wantLines)
		}
	}
	f(250, 1, 100, 0, 3, 84)
	f(10, 1, 100, 0, 1, 10)
	// Lines that fit exactly don't need another sheet.
	f(200, 0.5, 100, 0, 1, 200)
	f(201, 0.5, 100, 0, 2, 101)
	f(30, 0.1, 12, 5, 2, 15)
	// Margins that leave no room put everything on one sheet.
	f(40, 1, 100, 50, 1, 40)
	f(40, 1, 100, 60, 1, 40)
	f(0, 1, 100, 0, 0, 0)
}

func TestLayoutCentersPages(t *testing.T) {
	d, s, masks := generate(t, testConfig(0, 40), rectShape("a", 0, 0, 10, 50, red))
	s.PageWidth = 12
	s.PageHeight = 200
	s.PageMargins = 1

	p := Layout(d, s, masks, fixedMetrics{})
	if len(p.Pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(p.Pages))
	}
	if p.LinesPerPage != 10 {
		t.Errorf("got %d lines per page, want 10", p.LinesPerPage)
	}
	for i, page := range p.Pages {
		if page.Index != i {
			t.Errorf("page %d has index %d", i, page.Index)
		}
		diff(t, float64(i)*(12+PageGap), page.X, approx)
		box, ok := page.Segment.ContentBox(fixedMetrics{})
		if !ok {
			t.Fatalf("page %d has no content", i)
		}
		got := box.Center().Translate(page.Translate)
		diff(t, page.Rect().Center(), got, approx)
	}
	diff(t, "Page #2", p.Pages[1].Name())
	diff(t, []int{20, 22, 24, 26, 28, 30, 32, 34, 36, 38}, p.Pages[1].Segment.Pages)
}

func TestLayoutPaddingPages(t *testing.T) {
	cfg := testConfig(0, 40)
	cfg.PagesBefore = 3
	cfg.PagesAfter = 4
	d, s, masks := generate(t, cfg, rectShape("a", 0, 0, 13, 50, red))
	s.PageWidth = 12
	s.PageHeight = 200
	s.PageMargins = 1

	p := Layout(d, s, masks, fixedMetrics{})
	if len(p.Pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(p.Pages))
	}
	var pages []int
	for _, page := range p.Pages {
		pages = append(pages, page.Segment.Pages...)
	}
	if len(pages) != s.TotalPages {
		t.Fatalf("got %d lines, want %d", len(pages), s.TotalPages)
	}
	want := make([]int, s.TotalPages)
	for i := range want {
		want[i] = s.PageNumber(i)
	}
	diff(t, want, pages)

	// The blank pages before the design start the first sheet, those after
	// it end the last one.
	first := p.Pages[0].Segment
	diff(t, d.BoundingBox().X0-3*s.LineDistance, first.Box.X0, approx)
	diff(t, first.Box.X0, first.Bands[0].Strokes[0].X, approx)
	last := p.Pages[len(p.Pages)-1].Segment
	diff(t, 38, last.Pages[len(last.Pages)-1])
	strokes := last.Bands[0].Strokes
	diff(t, first.Box.X0+float64(s.TotalPages-1)*s.LineDistance, strokes[len(strokes)-1].X, approx)
}

func TestLayoutEmpty(t *testing.T) {
	s := mustDerive(t, testConfig(0, 20))
	p := Layout(&Design{}, s, nil, fixedMetrics{})
	if !p.Empty() {
		t.Errorf("layout of an empty design has %d pages", len(p.Pages))
	}
	var nilPattern *Pattern
	if !nilPattern.Empty() {
		t.Error("nil pattern should be empty")
	}
}

type recordingCanvas struct {
	width, height float64
	clips         []ClipMask
	pages         []PhysicalPage
	calls         int
}

func (c *recordingCanvas) SetCanvasSize(w, h float64) {
	c.calls++
	c.width, c.height = w, h
}

func (c *recordingCanvas) RemovePages() {
	c.calls++
	c.pages = nil
}

func (c *recordingCanvas) RegisterClipMasks(masks []ClipMask) {
	c.calls++
	c.clips = masks
}

func (c *recordingCanvas) AddPage(p PhysicalPage) {
	c.calls++
	c.pages = append(c.pages, p)
}

func TestApply(t *testing.T) {
	d, s, masks := generate(t, testConfig(0, 400), rectShape("a", 0, 0, 10, 50, red))
	s.PageWidth = 50
	s.PageMargins = 0
	p := Layout(d, s, masks, fixedMetrics{})
	if len(p.Pages) < 2 {
		t.Fatalf("got %d pages, want several", len(p.Pages))
	}

	c := &recordingCanvas{pages: []PhysicalPage{{Index: 99}}}
	p.Apply(c)
	p.Apply(c)
	if len(c.pages) != len(p.Pages) {
		t.Fatalf("got %d pages on the canvas, want %d", len(c.pages), len(p.Pages))
	}
	for i := range c.pages {
		if c.pages[i].Index != i {
			t.Errorf("canvas page %d has index %d", i, c.pages[i].Index)
		}
	}
	diff(t, [2]float64{s.PageWidth, s.PageHeight}, [2]float64{c.width, c.height})
	if len(c.clips) != len(d.Groups) {
		t.Errorf("got %d clip masks, want %d", len(c.clips), len(d.Groups))
	}

	c = &recordingCanvas{}
	(&Pattern{Settings: s}).Apply(c)
	if c.calls != 0 {
		t.Errorf("empty pattern made %d canvas calls", c.calls)
	}
}

func TestPhysicalPageTransform(t *testing.T) {
	page := PhysicalPage{Translate: curve.Vec(3, -4)}
	got := page.Transform()
	want := curve.Translate(curve.Vec(3, -4))
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
