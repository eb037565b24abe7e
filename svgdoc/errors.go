package svgdoc

import (
	"errors"
	"fmt"
)

var (
	ErrNoSVG     = errors.New("svgdoc: document has no svg element")
	ErrUnknownID = errors.New("svgdoc: unknown element id")
	ErrSyntax    = errors.New("syntax error")
	ErrArgCount  = errors.New("wrong number of arguments")
)

// ParseError reports a malformed attribute value.
type ParseError struct {
	Attr  string // attribute name, e.g. "d"
	Value string // offending value
	Err   error  // underlying error
}

func (e *ParseError) Error() string {
	v := e.Value
	if len(v) > 40 {
		v = v[:40] + "..."
	}
	return fmt.Sprintf("svgdoc: invalid %s %q: %v", e.Attr, v, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
