// Package gml provides a public API for converting GML 3.2 geometries to
// Well-Known Text, Extended WKT and EWKB.
//
// Parse a standalone geometry document with a Parser:
//
//	g, err := gml.NewParser().Parse(strings.NewReader(doc))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.WKT()) // SRID=2065;POINT(496547.0 1139895.0)
//
// Or walk a feature document and convert every geometry found in it
// with a Converter.
package gml

import (
	"io"

	"github.com/beetlebugorg/gmlwkt/internal/geometry"
	"github.com/beetlebugorg/gmlwkt/internal/parser"
	"github.com/beetlebugorg/gmlwkt/internal/wkt"
)

// Parser parses GML geometry documents.
//
// Create a parser with NewParser and use Parse or ParseWithOptions.
type Parser interface {
	// Parse reads a document whose root element is a GML geometry.
	//
	// Returns an *Error for unsupported or malformed geometry and a
	// wrapped read error for invalid XML.
	Parse(r io.Reader) (*Geometry, error)

	// ParseWithOptions parses a geometry document with custom options.
	ParseWithOptions(r io.Reader, opts ParseOptions) (*Geometry, error)
}

// NewParser creates a new GML parser with default settings.
//
// Example:
//
//	parser := gml.NewParser()
//	g, err := parser.Parse(f)
func NewParser() Parser {
	return &parserWrapper{opts: DefaultParseOptions()}
}

// parserWrapper wraps the internal parser and converts types
type parserWrapper struct {
	opts ParseOptions
}

func (p *parserWrapper) Parse(r io.Reader) (*Geometry, error) {
	return p.ParseWithOptions(r, p.opts)
}

func (p *parserWrapper) ParseWithOptions(r io.Reader, opts ParseOptions) (*Geometry, error) {
	if opts.Linearize {
		if err := geometry.ValidatePrecision(opts.Precision); err != nil {
			return nil, err
		}
	}
	g, err := opts.internal().Parse(r)
	if err != nil {
		return nil, err
	}
	return finish(g, opts)
}

// finish applies the post-parse options to g.
func finish(g geometry.Geometry, opts ParseOptions) (*Geometry, error) {
	if opts.Linearize && geometry.IsCurved(g) {
		lin, err := geometry.Linearize(g, opts.Precision)
		if err != nil {
			return nil, err
		}
		g = lin
	}
	return &Geometry{g: g}, nil
}

func (opts ParseOptions) internal() parser.Parser {
	return parser.NewParserWithOptions(parser.ParseOptions{SRS: opts.SRS})
}

// Geometry is a parsed GML geometry.
//
// Geometries are immutable. Linearize returns a new Geometry and leaves
// the receiver unchanged.
type Geometry struct {
	g geometry.Geometry
}

// GeometryType identifies the variant of a Geometry.
type GeometryType = geometry.Kind

const (
	GeometryTypePoint          = geometry.KindPoint
	GeometryTypeLineString     = geometry.KindLineString
	GeometryTypeCircularString = geometry.KindCircularString
	GeometryTypeCircle         = geometry.KindCircle
	GeometryTypeCompoundCurve  = geometry.KindCompoundCurve
	GeometryTypePolygon        = geometry.KindPolygon
	GeometryTypeMultiPoint     = geometry.KindMultiPoint
	GeometryTypeMultiLine      = geometry.KindMultiLine
	GeometryTypeMultiPolygon   = geometry.KindMultiPolygon
)

// Type returns the geometry variant.
func (g *Geometry) Type() GeometryType {
	return g.g.Kind()
}

// SRID returns the spatial reference ID, 0 when the GML carried no
// srsName.
func (g *Geometry) SRID() int {
	return g.g.SRID()
}

// WKT returns the geometry as text. The SRID=n; prefix of Extended WKT
// is present when the geometry has an SRID.
func (g *Geometry) WKT() string {
	return wkt.Marshal(g.g)
}

// String implements fmt.Stringer.
func (g *Geometry) String() string {
	return g.WKT()
}

// IsCurved reports whether the geometry contains circular arcs.
func (g *Geometry) IsCurved() bool {
	return geometry.IsCurved(g.g)
}

// IsEmpty reports whether the geometry has no coordinates, which is
// only possible for an empty multi-geometry.
func (g *Geometry) IsEmpty() bool {
	empty := true
	geometry.Walk(g.g, func(geometry.Coord) { empty = false })
	return empty
}

// Linearize returns a copy of the geometry with every arc replaced by
// chords that deviate from it by at most precision, in coordinate units.
func (g *Geometry) Linearize(precision float64) (*Geometry, error) {
	lin, err := geometry.Linearize(g.g, precision)
	if err != nil {
		return nil, err
	}
	return &Geometry{g: lin}, nil
}

// Coordinates returns the control points of the geometry in document
// order. Arcs contribute their control points, not a linearization.
func (g *Geometry) Coordinates() [][2]float64 {
	var coords [][2]float64
	geometry.Walk(g.g, func(c geometry.Coord) {
		coords = append(coords, [2]float64{c.X, c.Y})
	})
	return coords
}
