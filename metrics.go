package bookart

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// TextExtent describes the size of a line of text. Ascent and Descent are
// both positive distances from the baseline.
type TextExtent struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Metrics measures label text. Labels take part in centering a page's
// content, so their extents have to be known without rendering them.
type Metrics interface {
	Measure(text string, size float64) TextExtent
}

// Faces are measured at this size and scaled linearly, which avoids the
// coarse 26.6 fixed point resolution at small font sizes.
const referenceSize = 100

type faceMetrics struct {
	// font.Face implementations keep internal buffers.
	mu   sync.Mutex
	face font.Face
}

// NewFaceMetrics returns metrics for an OpenType font.
func NewFaceMetrics(f *opentype.Font) (Metrics, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    referenceSize,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	return &faceMetrics{face: face}, nil
}

func (m *faceMetrics) Measure(text string, size float64) TextExtent {
	m.mu.Lock()
	defer m.mu.Unlock()
	scale := size / referenceSize
	met := m.face.Metrics()
	return TextExtent{
		Width:   fixedToFloat(font.MeasureString(m.face, text)) * scale,
		Ascent:  fixedToFloat(met.Ascent) * scale,
		Descent: fixedToFloat(met.Descent) * scale,
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

var defaultMetrics = sync.OnceValue(func() Metrics {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
	m, err := NewFaceMetrics(f)
	if err != nil {
		panic(err)
	}
	return m
})

// DefaultMetrics returns metrics for the Go Regular font, a close match of
// the sans-serif fonts labels are usually rendered with.
func DefaultMetrics() Metrics {
	return defaultMetrics()
}
