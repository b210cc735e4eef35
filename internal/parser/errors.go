package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/beetlebugorg/gmlwkt/internal/geometry"
)

// errUnsupported reports an element with no rule at this position.
func errUnsupported(name xml.Name, parent xml.Name) error {
	if parent.Local == "" {
		return geometry.Errorf(geometry.KindUnsupportedElement, name.Space, name.Local,
			"not a supported geometry")
	}
	return geometry.Errorf(geometry.KindUnsupportedElement, name.Space, name.Local,
		"not allowed in %s", parent.Local)
}

// errUnexpectedEnd reports an end element that does not close start.
func errUnexpectedEnd(name xml.Name, start xml.Name) error {
	return geometry.Errorf(geometry.KindUnexpectedElement, name.Space, name.Local,
		"expected end of %s", start.Local)
}

// errMalformed reports a structural problem in the element start.
func errMalformed(kind geometry.ErrorKind, start xml.Name, format string, args ...interface{}) error {
	return geometry.Errorf(kind, start.Space, start.Local, format, args...)
}

// atElement attaches the element name to geometry errors raised by
// constructors, which do not know where they were called from.
func atElement(err error, start xml.Name) error {
	var gerr *geometry.Error
	if errors.As(err, &gerr) && gerr.Local == "" {
		located := *gerr
		located.Space, located.Local = start.Space, start.Local
		return &located
	}
	return err
}

// readErr wraps a token source failure inside the element start.
func readErr(err error, start xml.Name) error {
	if err == io.EOF {
		return fmt.Errorf("%s not closed: %w", start.Local, io.ErrUnexpectedEOF)
	}
	var gerr *geometry.Error
	if errors.As(err, &gerr) {
		return err
	}
	return fmt.Errorf("read %s: %w", start.Local, err)
}
