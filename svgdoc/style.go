package svgdoc

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"honnef.co/go/bookart"
)

// attr returns the value of the attribute key of n.
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

// parseStyle parses the declarations of a style attribute.
func parseStyle(s string) map[string]string {
	decls := make(map[string]string)
	for _, decl := range strings.Split(s, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		k = strings.ToLower(strings.TrimSpace(k))
		v = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "!important"))
		if k != "" {
			decls[k] = strings.TrimSpace(v)
		}
	}
	return decls
}

// property returns the value of a presentation property of n. Declarations
// in the style attribute take precedence over presentation attributes.
func property(n *html.Node, name string) (string, bool) {
	if style, ok := attr(n, "style"); ok {
		if v, ok := parseStyle(style)[name]; ok {
			return v, true
		}
	}
	return attr(n, name)
}

// resolveFill returns the fill of n, given the fill inherited from its
// parent. Paints that aren't plain colors, such as gradients, resolve to
// black.
func resolveFill(n *html.Node, inherited bookart.Color) bookart.Color {
	fill := inherited
	if v, ok := property(n, "fill"); ok && v != "inherit" && v != "" {
		if c, err := bookart.ParseColor(v); err == nil {
			fill = c
		} else {
			fill = bookart.Black
		}
	}
	if v, ok := property(n, "fill-opacity"); ok {
		if op, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			op = min(max(op, 0), 1)
			fill.A = uint8(float64(fill.A)*op + 0.5)
		}
	}
	return fill
}

// clipped reports whether n carries a clip path.
func clipped(n *html.Node) bool {
	v, ok := property(n, "clip-path")
	return ok && v != "" && v != "none"
}

// parseLength parses a length with an optional unit.
func parseLength(s string) (float64, bookart.Unit, error) {
	s = strings.TrimSpace(s)
	i := len(s)
	for i > 0 && (s[i-1] >= 'a' && s[i-1] <= 'z' || s[i-1] >= 'A' && s[i-1] <= 'Z' || s[i-1] == '%') {
		i--
	}
	unit, err := bookart.ParseUnit(s[i:])
	if err != nil {
		return 0, "", err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return v, unit, nil
}

// lengthAttr returns the attribute key of n as a length in user units,
// or def if it is absent.
func lengthAttr(n *html.Node, key string, def float64) (float64, error) {
	s, ok := attr(n, key)
	if !ok || strings.TrimSpace(s) == "" {
		return def, nil
	}
	v, u, err := parseLength(s)
	if err != nil {
		return 0, &ParseError{key, s, err}
	}
	return u.Pixels(v), nil
}

// parseViewBox parses the value of a viewBox attribute.
func parseViewBox(s string) ([4]float64, error) {
	var vb [4]float64
	sc := &scanner{s: s}
	if err := sc.numbers(vb[:]); err != nil {
		return vb, &ParseError{"viewBox", s, err}
	}
	if !sc.done() {
		return vb, &ParseError{"viewBox", s, ErrArgCount}
	}
	if vb[2] <= 0 || vb[3] <= 0 {
		return vb, &ParseError{"viewBox", s, fmt.Errorf("%w: non-positive size", ErrSyntax)}
	}
	return vb, nil
}
