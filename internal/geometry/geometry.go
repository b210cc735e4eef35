// Package geometry holds the in-memory geometry model built from GML:
// linear and circular-arc features, the arc math used to fit and
// linearize them, and the error kinds shared by the parser and
// serializer.
//
// Geometry values are immutable once constructed. Slices returned from
// accessors are shared with the value and must not be modified.
package geometry

// Coord is a 2-D coordinate in the units of the geometry's SRS.
type Coord struct {
	X, Y float64
}

// Kind identifies a Geometry variant.
type Kind int

const (
	KindPoint Kind = iota + 1
	KindLineString
	KindCircularString
	KindCircle
	KindCompoundCurve
	KindPolygon
	KindMultiPoint
	KindMultiLine
	KindMultiPolygon
)

// String returns the string representation of the geometry kind.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindLineString:
		return "LineString"
	case KindCircularString:
		return "CircularString"
	case KindCircle:
		return "Circle"
	case KindCompoundCurve:
		return "CompoundCurve"
	case KindPolygon:
		return "Polygon"
	case KindMultiPoint:
		return "MultiPoint"
	case KindMultiLine:
		return "MultiLine"
	case KindMultiPolygon:
		return "MultiPolygon"
	default:
		return "Unknown"
	}
}

// Geometry is the closed set of geometry variants. Only types in this
// package implement it; consumers switch on the concrete type.
type Geometry interface {
	Kind() Kind
	// SRID returns the spatial reference identifier, 0 when unset.
	SRID() int
	geometry()
}

// Curve is a geometry usable as a polygon ring, a compound curve
// segment or a multi-curve member.
type Curve interface {
	Geometry
	curve()
}

// Point is a single coordinate.
type Point struct {
	coord Coord
	srid  int
}

// NewPoint returns a point at c.
func NewPoint(c Coord, srid int) (Point, error) {
	if err := validateCoords(KindPoint, []Coord{c}); err != nil {
		return Point{}, err
	}
	return Point{coord: c, srid: srid}, nil
}

func (p Point) Kind() Kind   { return KindPoint }
func (p Point) SRID() int    { return p.srid }
func (p Point) Coord() Coord { return p.coord }
func (p Point) geometry()    {}

// LineString is an ordered polyline. It also represents polygon rings
// without arcs.
type LineString struct {
	points []Coord
	srid   int
}

// NewLineString returns a line string through points. At least two
// points are required.
func NewLineString(points []Coord, srid int) (LineString, error) {
	if len(points) < 2 {
		return LineString{}, newError(KindMalformedGeometry, "line string needs at least 2 points, got %d", len(points))
	}
	if err := validateCoords(KindLineString, points); err != nil {
		return LineString{}, err
	}
	return LineString{points: points, srid: srid}, nil
}

func (l LineString) Kind() Kind      { return KindLineString }
func (l LineString) SRID() int       { return l.srid }
func (l LineString) Points() []Coord { return l.points }
func (l LineString) geometry()       {}
func (l LineString) curve()          {}

// CircularString is a chain of circular arcs. Every consecutive triple
// (1,2,3), (3,4,5), ... of control points defines one arc.
type CircularString struct {
	points []Coord
	srid   int
}

// NewCircularString returns a circular string through points. The
// point count must be odd and at least 3, and no arc triple may be
// colinear.
func NewCircularString(points []Coord, srid int) (CircularString, error) {
	if len(points) < 3 || len(points)%2 == 0 {
		return CircularString{}, newError(KindMalformedCurve, "circular string needs an odd number of at least 3 points, got %d", len(points))
	}
	if err := validateCoords(KindCircularString, points); err != nil {
		return CircularString{}, err
	}
	for i := 0; i+2 < len(points); i += 2 {
		if _, err := ArcCenter(points[i], points[i+1], points[i+2]); err != nil {
			return CircularString{}, err
		}
	}
	return CircularString{points: points, srid: srid}, nil
}

func (c CircularString) Kind() Kind      { return KindCircularString }
func (c CircularString) SRID() int       { return c.srid }
func (c CircularString) Points() []Coord { return c.points }
func (c CircularString) geometry()       {}
func (c CircularString) curve()          {}

// NumArcs returns the number of arc segments.
func (c CircularString) NumArcs() int { return (len(c.points) - 1) / 2 }

// Circle is a full circle through three control points.
type Circle struct {
	points [3]Coord
	srid   int
}

// NewCircle returns the circle through the three points.
func NewCircle(points []Coord, srid int) (Circle, error) {
	if len(points) != 3 {
		return Circle{}, newError(KindMalformedCurve, "circle needs exactly 3 points, got %d", len(points))
	}
	if err := validateCoords(KindCircle, points); err != nil {
		return Circle{}, err
	}
	if _, err := ArcCenter(points[0], points[1], points[2]); err != nil {
		return Circle{}, err
	}
	return Circle{points: [3]Coord{points[0], points[1], points[2]}, srid: srid}, nil
}

func (c Circle) Kind() Kind      { return KindCircle }
func (c Circle) SRID() int       { return c.srid }
func (c Circle) Points() []Coord { return c.points[:] }
func (c Circle) geometry()       {}
func (c Circle) curve()          {}

// Center returns the centre of the circle.
func (c Circle) Center() Coord {
	center, _ := ArcCenter(c.points[0], c.points[1], c.points[2])
	return center
}

// Closed returns the canonical closed control points of the full
// circle: the start point, its antipode and the start point again.
func (c Circle) Closed() []Coord {
	center := c.Center()
	start := c.points[0]
	antipode := Coord{X: 2*center.X - start.X, Y: 2*center.Y - start.Y}
	return []Coord{start, antipode, start}
}

// CompoundCurve is a sequence of endpoint-contiguous segments. Segments
// are LineString, CircularString or Circle values.
type CompoundCurve struct {
	segments []Curve
	srid     int
}

// NewCompoundCurve returns a compound curve of segments. Contiguity is
// assumed from well-formed input and not checked.
func NewCompoundCurve(segments []Curve, srid int) (CompoundCurve, error) {
	if len(segments) == 0 {
		return CompoundCurve{}, newError(KindMalformedCurve, "compound curve has no segments")
	}
	for _, s := range segments {
		if _, ok := s.(CompoundCurve); ok {
			return CompoundCurve{}, newError(KindMalformedCurve, "compound curve cannot nest another compound curve")
		}
	}
	return CompoundCurve{segments: segments, srid: srid}, nil
}

func (c CompoundCurve) Kind() Kind        { return KindCompoundCurve }
func (c CompoundCurve) SRID() int         { return c.srid }
func (c CompoundCurve) Segments() []Curve { return c.segments }
func (c CompoundCurve) geometry()         {}
func (c CompoundCurve) curve()            {}

// Polygon is an outer ring with zero or more holes.
type Polygon struct {
	outer  Curve
	inners []Curve
	srid   int
}

// NewPolygon returns a polygon bounded by outer with holes inners.
func NewPolygon(outer Curve, inners []Curve, srid int) (Polygon, error) {
	if outer == nil {
		return Polygon{}, newError(KindMalformedGeometry, "polygon has no exterior ring")
	}
	return Polygon{outer: outer, inners: inners, srid: srid}, nil
}

func (p Polygon) Kind() Kind      { return KindPolygon }
func (p Polygon) SRID() int       { return p.srid }
func (p Polygon) Outer() Curve    { return p.outer }
func (p Polygon) Inners() []Curve { return p.inners }
func (p Polygon) geometry()       {}

// MultiPoint is a collection of points.
type MultiPoint struct {
	points []Point
	srid   int
}

// NewMultiPoint returns a collection of points.
func NewMultiPoint(points []Point, srid int) MultiPoint {
	return MultiPoint{points: points, srid: srid}
}

func (m MultiPoint) Kind() Kind      { return KindMultiPoint }
func (m MultiPoint) SRID() int       { return m.srid }
func (m MultiPoint) Points() []Point { return m.points }
func (m MultiPoint) geometry()       {}

// MultiLine is a collection of curves, linear or not.
type MultiLine struct {
	segments []Curve
	srid     int
}

// NewMultiLine returns a collection of the curves in segments.
func NewMultiLine(segments []Curve, srid int) MultiLine {
	return MultiLine{segments: segments, srid: srid}
}

func (m MultiLine) Kind() Kind        { return KindMultiLine }
func (m MultiLine) SRID() int         { return m.srid }
func (m MultiLine) Segments() []Curve { return m.segments }
func (m MultiLine) geometry()         {}

// MultiPolygon is a collection of polygons.
type MultiPolygon struct {
	polygons []Polygon
	srid     int
}

// NewMultiPolygon returns a collection of polygons.
func NewMultiPolygon(polygons []Polygon, srid int) MultiPolygon {
	return MultiPolygon{polygons: polygons, srid: srid}
}

func (m MultiPolygon) Kind() Kind          { return KindMultiPolygon }
func (m MultiPolygon) SRID() int           { return m.srid }
func (m MultiPolygon) Polygons() []Polygon { return m.polygons }
func (m MultiPolygon) geometry()           {}

// IsCurved reports whether g contains a circular arc anywhere in its
// tree. It is recomputed on every call.
func IsCurved(g Geometry) bool {
	switch g := g.(type) {
	case CircularString, Circle, CompoundCurve:
		return true
	case Polygon:
		if IsCurved(g.outer) {
			return true
		}
		for _, r := range g.inners {
			if IsCurved(r) {
				return true
			}
		}
	case MultiLine:
		for _, s := range g.segments {
			if IsCurved(s) {
				return true
			}
		}
	case MultiPolygon:
		for _, p := range g.polygons {
			if IsCurved(p) {
				return true
			}
		}
	}
	return false
}

// Walk calls fn for every coordinate stored in g, in document order.
// Arcs contribute their control points.
func Walk(g Geometry, fn func(Coord)) {
	switch g := g.(type) {
	case Point:
		fn(g.coord)
	case LineString:
		walkCoords(g.points, fn)
	case CircularString:
		walkCoords(g.points, fn)
	case Circle:
		walkCoords(g.points[:], fn)
	case CompoundCurve:
		for _, s := range g.segments {
			Walk(s, fn)
		}
	case Polygon:
		Walk(g.outer, fn)
		for _, r := range g.inners {
			Walk(r, fn)
		}
	case MultiPoint:
		for _, p := range g.points {
			fn(p.coord)
		}
	case MultiLine:
		for _, s := range g.segments {
			Walk(s, fn)
		}
	case MultiPolygon:
		for _, p := range g.polygons {
			Walk(p, fn)
		}
	}
}

func walkCoords(coords []Coord, fn func(Coord)) {
	for _, c := range coords {
		fn(c)
	}
}
