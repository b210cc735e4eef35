package gml

import "github.com/beetlebugorg/gmlwkt/internal/geometry"

// Error is a conversion failure. Space and Local name the offending GML
// element when the parser detected the failure.
//
// Match on the kind with errors.Is:
//
//	if errors.Is(err, gml.KindUnsupportedSRS) {
//	    ...
//	}
type Error = geometry.Error

// ErrorKind classifies an Error.
type ErrorKind = geometry.ErrorKind

const (
	KindUnsupportedElement = geometry.KindUnsupportedElement
	KindUnexpectedElement  = geometry.KindUnexpectedElement
	KindUnsupportedSRS     = geometry.KindUnsupportedSRS
	KindDegenerateArc      = geometry.KindDegenerateArc
	KindMalformedCurve     = geometry.KindMalformedCurve
	KindMalformedGeometry  = geometry.KindMalformedGeometry
	KindInvalidPrecision   = geometry.KindInvalidPrecision
)
