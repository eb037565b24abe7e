package bookart

import "strings"

// Unit is a CSS length unit.
type Unit string

const (
	UnitPixel      Unit = "px"
	UnitPoint      Unit = "pt"
	UnitPica       Unit = "pc"
	UnitMillimeter Unit = "mm"
	UnitCentimeter Unit = "cm"
	UnitInch       Unit = "in"
)

// Pixels per unit, using the CSS reference of 96 pixels per inch.
var pxPerUnit = map[Unit]float64{
	UnitPixel:      1,
	UnitPoint:      96.0 / 72.0,
	UnitPica:       16,
	UnitMillimeter: 96.0 / 25.4,
	UnitCentimeter: 96.0 / 2.54,
	UnitInch:       96,
}

// ParseUnit parses a unit name. The empty string means pixels.
func ParseUnit(s string) (Unit, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return UnitPixel, nil
	}
	u := Unit(s)
	if _, ok := pxPerUnit[u]; !ok {
		return "", ErrUnknownUnit
	}
	return u, nil
}

// Valid reports whether u is a known unit.
func (u Unit) Valid() bool {
	_, ok := pxPerUnit[u]
	return ok
}

// Pixels converts v, expressed in u, to pixels.
func (u Unit) Pixels(v float64) float64 {
	return v * pxPerUnit[u]
}

// Convert converts v from one unit to another.
func Convert(v float64, from, to Unit) float64 {
	return from.Pixels(v) / pxPerUnit[to]
}
