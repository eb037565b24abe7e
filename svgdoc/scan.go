package svgdoc

import (
	"fmt"
	"strconv"
)

// scanner tokenizes the number lists of path data and transforms.
type scanner struct {
	s   string
	pos int
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (sc *scanner) skipSpace() {
	for sc.pos < len(sc.s) && isSpace(sc.s[sc.pos]) {
		sc.pos++
	}
}

// skipSep skips whitespace and at most one comma.
func (sc *scanner) skipSep() {
	sc.skipSpace()
	if sc.pos < len(sc.s) && sc.s[sc.pos] == ',' {
		sc.pos++
		sc.skipSpace()
	}
}

func (sc *scanner) done() bool {
	sc.skipSpace()
	return sc.pos >= len(sc.s)
}

func (sc *scanner) peek() byte {
	if sc.pos >= len(sc.s) {
		return 0
	}
	return sc.s[sc.pos]
}

// atNumber reports whether a number starts at the current position.
func (sc *scanner) atNumber() bool {
	c := sc.peek()
	return isDigit(c) || c == '-' || c == '+' || c == '.'
}

// number reads one number. Numbers need no separator when the next one
// starts with a sign or a second decimal point, as in "1-2" or "0.5.5".
func (sc *scanner) number() (float64, error) {
	sc.skipSpace()
	start := sc.pos
	if c := sc.peek(); c == '-' || c == '+' {
		sc.pos++
	}
	digits := 0
	for isDigit(sc.peek()) {
		sc.pos++
		digits++
	}
	if sc.peek() == '.' {
		sc.pos++
		for isDigit(sc.peek()) {
			sc.pos++
			digits++
		}
	}
	if digits == 0 {
		sc.pos = start
		return 0, fmt.Errorf("%w: expected number at offset %d", ErrSyntax, start)
	}
	if c := sc.peek(); c == 'e' || c == 'E' {
		mark := sc.pos
		sc.pos++
		if c := sc.peek(); c == '-' || c == '+' {
			sc.pos++
		}
		if !isDigit(sc.peek()) {
			// Not an exponent, e.g. the "e" of "em".
			sc.pos = mark
		}
		for isDigit(sc.peek()) {
			sc.pos++
		}
	}
	v, err := strconv.ParseFloat(sc.s[start:sc.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	sc.skipSep()
	return v, nil
}

// flag reads an arc flag, a single 0 or 1 that needs no separator.
func (sc *scanner) flag() (bool, error) {
	sc.skipSpace()
	switch sc.peek() {
	case '0':
		sc.pos++
		sc.skipSep()
		return false, nil
	case '1':
		sc.pos++
		sc.skipSep()
		return true, nil
	default:
		return false, fmt.Errorf("%w: expected flag at offset %d", ErrSyntax, sc.pos)
	}
}

// numbers reads exactly len(dst) numbers.
func (sc *scanner) numbers(dst []float64) error {
	for i := range dst {
		v, err := sc.number()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}
