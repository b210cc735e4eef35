package geometry

import (
	"fmt"
)

// ErrorKind classifies a conversion failure. Every kind is fatal for
// the geometry being built.
type ErrorKind int

const (
	// KindUnsupportedElement: a start element with no grammar rule at
	// the current position.
	KindUnsupportedElement ErrorKind = iota + 1
	// KindUnexpectedElement: an end element that does not close the
	// element currently open.
	KindUnexpectedElement
	// KindUnsupportedSRS: an srsName not in the known table.
	KindUnsupportedSRS
	// KindDegenerateArc: colinear points passed to circle fitting.
	KindDegenerateArc
	// KindMalformedCurve: wrong control point count, or a Curve with
	// zero or several segments.
	KindMalformedCurve
	// KindMalformedGeometry: missing or duplicate required children,
	// unreadable coordinate text.
	KindMalformedGeometry
	// KindInvalidPrecision: a linearization precision that is not a
	// finite positive number.
	KindInvalidPrecision
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnsupportedElement:
		return "unsupported element"
	case KindUnexpectedElement:
		return "unexpected element"
	case KindUnsupportedSRS:
		return "unsupported spatial reference"
	case KindDegenerateArc:
		return "degenerate arc"
	case KindMalformedCurve:
		return "malformed curve"
	case KindMalformedGeometry:
		return "malformed geometry"
	case KindInvalidPrecision:
		return "invalid precision"
	default:
		return "unknown error"
	}
}

// Error makes a kind usable as an errors.Is target:
//
//	errors.Is(err, geometry.KindDegenerateArc)
func (k ErrorKind) Error() string { return k.String() }

// Error is a conversion failure. Space and Local name the offending
// element when the failure was detected by the parser.
type Error struct {
	Kind   ErrorKind
	Space  string
	Local  string
	Reason string
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Local != "" {
		if e.Space != "" {
			msg = fmt.Sprintf("%s {%s}%s", msg, e.Space, e.Local)
		} else {
			msg = fmt.Sprintf("%s %s", msg, e.Local)
		}
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is matches an ErrorKind target against e.Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// Errorf returns an *Error of kind for the element {space}local.
func Errorf(kind ErrorKind, space, local, format string, args ...interface{}) *Error {
	e := newError(kind, format, args...)
	e.Space, e.Local = space, local
	return e
}
