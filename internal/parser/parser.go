// Package parser reads the GML 3.2 geometry grammar from an XML token
// stream and builds geometry trees.
//
// Supported elements: Point, LineString, LinearRing, Polygon, Ring,
// Curve (ArcString, Arc, Circle, LineStringSegment segments), MultiPoint,
// MultiCurve and MultiSurface. Anything else aborts the parse with a
// KindUnsupportedElement error naming the element; there is no recovery
// at this level.
package parser

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/beetlebugorg/gmlwkt/internal/geometry"
)

// Namespace is the GML 3.2 namespace URI.
const Namespace = "http://www.opengis.net/gml/3.2"

// Parser builds geometries from GML.
type Parser interface {
	// Parse reads a document whose root element is a GML geometry.
	Parse(r io.Reader) (geometry.Geometry, error)

	// ParseElement parses the geometry element src is positioned on and
	// leaves src just after its end tag.
	ParseElement(src TokenSource) (geometry.Geometry, error)

	// ParseProperty parses the geometry inside the element src is
	// positioned on (a feature property such as <definicniBod>) and
	// leaves src just after the property's end tag. It returns nil when
	// the property is empty.
	ParseProperty(src TokenSource) (geometry.Geometry, error)
}

// ParseOptions configures parsing behavior
type ParseOptions struct {
	// SRS adds srsName to SRID mappings to the built-in table. An
	// srsName found in neither is a KindUnsupportedSRS error.
	SRS map[string]int
}

// DefaultParseOptions returns parse options with defaults
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		SRS: nil,
	}
}

// defaultParser implements the Parser interface
type defaultParser struct {
	srs map[string]int
}

// NewParser creates a new GML parser
func NewParser() Parser {
	return NewParserWithOptions(DefaultParseOptions())
}

// NewParserWithOptions creates a GML parser with custom options
func NewParserWithOptions(opts ParseOptions) Parser {
	return &defaultParser{srs: SupportedSRS(opts.SRS)}
}

// Parse reads a document whose root element is a GML geometry.
func (p *defaultParser) Parse(r io.Reader) (geometry.Geometry, error) {
	src := NewXMLSource(r)
	for {
		ev, err := src.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("no geometry element: %w", io.ErrUnexpectedEOF)
		}
		if err != nil {
			return nil, fmt.Errorf("read document: %w", err)
		}
		if ev == StartElement {
			return p.ParseElement(src)
		}
	}
}

// ParseElement parses the geometry element src is positioned on.
func (p *defaultParser) ParseElement(src TokenSource) (geometry.Geometry, error) {
	d := &decoder{src: src, srs: p.srs}
	return d.geometry(src.Name(), 0, xml.Name{})
}

// ParseProperty parses the geometry inside the property element src is
// positioned on.
func (p *defaultParser) ParseProperty(src TokenSource) (geometry.Geometry, error) {
	d := &decoder{src: src, srs: p.srs}
	enclosing := src.Name()

	var result geometry.Geometry
	err := d.children(enclosing, func(name xml.Name) error {
		if result != nil {
			return errMalformed(geometry.KindUnsupportedElement, name,
				"%s already holds a %v", enclosing.Local, result.Kind())
		}
		g, err := d.geometry(name, 0, enclosing)
		if err != nil {
			return err
		}
		result = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// IsGeometryElement reports whether name starts a geometry the parser
// can build as a root.
func IsGeometryElement(name xml.Name) bool {
	if name.Space != Namespace {
		return false
	}
	return rootElements[name.Local]
}
