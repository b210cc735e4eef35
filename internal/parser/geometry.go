package parser

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/beetlebugorg/gmlwkt/internal/geometry"
)

// rootElements are the GML elements accepted as a top-level geometry.
var rootElements = map[string]bool{
	"Point":        true,
	"LineString":   true,
	"Polygon":      true,
	"Curve":        true,
	"MultiPoint":   true,
	"MultiCurve":   true,
	"MultiSurface": true,
}

// decoder is the state of one parse: the cursor and the SRS table.
// Each grammar rule is a method called with the cursor positioned on
// the rule's start element; it returns after consuming the matching
// end element.
type decoder struct {
	src TokenSource
	srs map[string]int
}

// geometry dispatches a top-level geometry element.
func (d *decoder) geometry(start xml.Name, parent int, enclosing xml.Name) (geometry.Geometry, error) {
	if !IsGeometryElement(start) {
		return nil, errUnsupported(start, enclosing)
	}
	switch start.Local {
	case "Point":
		return asGeometry(d.point(start, parent))
	case "LineString":
		return asGeometry(d.lineString(start, parent))
	case "Polygon":
		return asGeometry(d.polygon(start, parent))
	case "Curve":
		return asGeometry(d.curve(start, parent))
	case "MultiPoint":
		return asGeometry(d.multiPoint(start, parent))
	case "MultiCurve":
		return asGeometry(d.multiCurve(start, parent))
	default: // MultiSurface
		return asGeometry(d.multiSurface(start, parent))
	}
}

func asGeometry[T geometry.Geometry](g T, err error) (geometry.Geometry, error) {
	if err != nil {
		return nil, err
	}
	return g, nil
}

// enter reads the attributes of the element just started. The SRID
// comes from srsName, or from the parent when srsName is absent.
func (d *decoder) enter(start xml.Name, parent int) (int, error) {
	srid := parent
	if name, ok := d.src.Attr("", "srsName"); ok {
		id, known := d.srs[strings.TrimSpace(name)]
		if !known {
			return 0, errMalformed(geometry.KindUnsupportedSRS, start, "srsName %q", name)
		}
		if id <= 0 {
			return 0, errMalformed(geometry.KindUnsupportedSRS, start, "srsName %q maps to SRID %d", name, id)
		}
		srid = id
	}
	if dim, ok := d.src.Attr("", "srsDimension"); ok && strings.TrimSpace(dim) != "2" {
		return 0, errMalformed(geometry.KindMalformedGeometry, start,
			"srsDimension %q, only 2 is supported", dim)
	}
	return srid, nil
}

// children pulls events until the end of start, calling child with the
// name of every child start element. Text between children is ignored.
func (d *decoder) children(start xml.Name, child func(name xml.Name) error) error {
	for {
		ev, err := d.src.Next()
		if err != nil {
			return readErr(err, start)
		}
		switch ev {
		case StartElement:
			if err := child(d.src.Name()); err != nil {
				return err
			}
		case EndElement:
			if name := d.src.Name(); name != start {
				return errUnexpectedEnd(name, start)
			}
			return nil
		}
	}
}

func isGML(name xml.Name, local string) bool {
	return name.Space == Namespace && name.Local == local
}

// point: Point → pos
func (d *decoder) point(start xml.Name, parent int) (geometry.Point, error) {
	srid, err := d.enter(start, parent)
	if err != nil {
		return geometry.Point{}, err
	}
	var (
		coord geometry.Coord
		found bool
	)
	err = d.children(start, func(name xml.Name) error {
		if !isGML(name, "pos") {
			return errUnsupported(name, start)
		}
		if found {
			return errMalformed(geometry.KindMalformedGeometry, name, "point has more than one pos")
		}
		c, err := d.position(name, srid)
		if err != nil {
			return err
		}
		coord, found = c, true
		return nil
	})
	if err != nil {
		return geometry.Point{}, err
	}
	if !found {
		return geometry.Point{}, errMalformed(geometry.KindMalformedGeometry, start, "point has no pos")
	}
	p, err := geometry.NewPoint(coord, srid)
	return p, atElement(err, start)
}

// position reads a pos element.
func (d *decoder) position(start xml.Name, parent int) (geometry.Coord, error) {
	if _, err := d.enter(start, parent); err != nil {
		return geometry.Coord{}, err
	}
	text, err := d.src.ElementText()
	if err != nil {
		return geometry.Coord{}, readErr(err, start)
	}
	return parsePosition(text, start)
}

// points reads the control points of a linear or arc element: one
// posList, or a sequence of pos elements.
func (d *decoder) points(start xml.Name, srid int) ([]geometry.Coord, error) {
	var (
		coords  []geometry.Coord
		posList bool
	)
	err := d.children(start, func(name xml.Name) error {
		switch {
		case isGML(name, "posList") && !posList && len(coords) == 0:
			if _, err := d.enter(name, srid); err != nil {
				return err
			}
			text, err := d.src.ElementText()
			if err != nil {
				return readErr(err, name)
			}
			coords, err = parseCoordinates(text, name)
			posList = true
			return err
		case isGML(name, "pos") && !posList:
			c, err := d.position(name, srid)
			if err != nil {
				return err
			}
			coords = append(coords, c)
			return nil
		case isGML(name, "posList"), isGML(name, "pos"):
			return errMalformed(geometry.KindMalformedGeometry, name,
				"%s mixes posList with other positions", start.Local)
		default:
			return errUnsupported(name, start)
		}
	})
	return coords, err
}

// lineString: LineString | LinearRing | LineStringSegment → posList | pos*
func (d *decoder) lineString(start xml.Name, parent int) (geometry.LineString, error) {
	srid, err := d.enter(start, parent)
	if err != nil {
		return geometry.LineString{}, err
	}
	coords, err := d.points(start, srid)
	if err != nil {
		return geometry.LineString{}, err
	}
	ls, err := geometry.NewLineString(coords, srid)
	return ls, atElement(err, start)
}

// polygon: Polygon → exterior interior*
func (d *decoder) polygon(start xml.Name, parent int) (geometry.Polygon, error) {
	srid, err := d.enter(start, parent)
	if err != nil {
		return geometry.Polygon{}, err
	}
	var (
		outer  geometry.Curve
		inners []geometry.Curve
	)
	err = d.children(start, func(name xml.Name) error {
		switch {
		case isGML(name, "exterior"):
			if outer != nil {
				return errMalformed(geometry.KindMalformedGeometry, name, "polygon has more than one exterior")
			}
			r, err := d.ringProperty(name, srid)
			if err != nil {
				return err
			}
			outer = r
		case isGML(name, "interior"):
			r, err := d.ringProperty(name, srid)
			if err != nil {
				return err
			}
			inners = append(inners, r)
		default:
			return errUnsupported(name, start)
		}
		return nil
	})
	if err != nil {
		return geometry.Polygon{}, err
	}
	p, err := geometry.NewPolygon(outer, inners, srid)
	return p, atElement(err, start)
}

// ringProperty: exterior | interior → LinearRing | Ring
func (d *decoder) ringProperty(start xml.Name, parent int) (geometry.Curve, error) {
	srid, err := d.enter(start, parent)
	if err != nil {
		return nil, err
	}
	var ring geometry.Curve
	err = d.children(start, func(name xml.Name) error {
		if ring != nil {
			return errMalformed(geometry.KindMalformedGeometry, name, "%s holds more than one ring", start.Local)
		}
		switch {
		case isGML(name, "LinearRing"):
			ls, err := d.lineString(name, srid)
			if err != nil {
				return err
			}
			ring = ls
		case isGML(name, "Ring"):
			cc, err := d.ring(name, srid)
			if err != nil {
				return err
			}
			ring = cc
		default:
			return errUnsupported(name, start)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if ring == nil {
		return nil, errMalformed(geometry.KindMalformedGeometry, start, "%s holds no ring", start.Local)
	}
	return ring, nil
}

// ring: Ring → curveMember+
func (d *decoder) ring(start xml.Name, parent int) (geometry.CompoundCurve, error) {
	srid, err := d.enter(start, parent)
	if err != nil {
		return geometry.CompoundCurve{}, err
	}
	var segments []geometry.Curve
	err = d.children(start, func(name xml.Name) error {
		if !isGML(name, "curveMember") {
			return errUnsupported(name, start)
		}
		c, err := d.curveProperty(name, srid)
		if err != nil {
			return err
		}
		segments = append(segments, c)
		return nil
	})
	if err != nil {
		return geometry.CompoundCurve{}, err
	}
	cc, err := geometry.NewCompoundCurve(segments, srid)
	return cc, atElement(err, start)
}

// curveProperty: curveMember → LineString | Curve
func (d *decoder) curveProperty(start xml.Name, parent int) (geometry.Curve, error) {
	srid, err := d.enter(start, parent)
	if err != nil {
		return nil, err
	}
	var curve geometry.Curve
	err = d.children(start, func(name xml.Name) error {
		if curve != nil {
			return errMalformed(geometry.KindMalformedGeometry, name, "%s holds more than one curve", start.Local)
		}
		c, err := d.curveElement(name, srid, start)
		if err != nil {
			return err
		}
		curve = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	if curve == nil {
		return nil, errMalformed(geometry.KindMalformedGeometry, start, "%s holds no curve", start.Local)
	}
	return curve, nil
}

// curveElement parses a LineString or Curve child of enclosing.
func (d *decoder) curveElement(name xml.Name, srid int, enclosing xml.Name) (geometry.Curve, error) {
	switch {
	case isGML(name, "LineString"):
		return asCurve(d.lineString(name, srid))
	case isGML(name, "Curve"):
		return d.curve(name, srid)
	default:
		return nil, errUnsupported(name, enclosing)
	}
}

func asCurve[T geometry.Curve](c T, err error) (geometry.Curve, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}

// curve: Curve → segments
func (d *decoder) curve(start xml.Name, parent int) (geometry.Curve, error) {
	srid, err := d.enter(start, parent)
	if err != nil {
		return nil, err
	}
	var curve geometry.Curve
	err = d.children(start, func(name xml.Name) error {
		if !isGML(name, "segments") {
			return errUnsupported(name, start)
		}
		if curve != nil {
			return errMalformed(geometry.KindMalformedCurve, name, "curve has more than one segments element")
		}
		c, err := d.segments(name, srid)
		if err != nil {
			return err
		}
		curve = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	if curve == nil {
		return nil, errMalformed(geometry.KindMalformedCurve, start, "curve has no segments")
	}
	return curve, nil
}

// segments: segments → ArcString | Arc | Circle | LineStringSegment
//
// Only a single segment per curve is supported.
func (d *decoder) segments(start xml.Name, srid int) (geometry.Curve, error) {
	var segment geometry.Curve
	err := d.children(start, func(name xml.Name) error {
		if segment != nil {
			return errMalformed(geometry.KindMalformedCurve, name, "curve has more than one segment")
		}
		var err error
		switch {
		case isGML(name, "ArcString"):
			segment, err = asCurve(d.arcString(name, srid))
		case isGML(name, "Arc"):
			segment, err = asCurve(d.arc(name, srid))
		case isGML(name, "Circle"):
			segment, err = asCurve(d.circle(name, srid))
		case isGML(name, "LineStringSegment"):
			segment, err = asCurve(d.lineString(name, srid))
		default:
			err = errUnsupported(name, start)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if segment == nil {
		return nil, errMalformed(geometry.KindMalformedCurve, start, "curve has no segments")
	}
	return segment, nil
}

// arcString: ArcString → posList | pos*
func (d *decoder) arcString(start xml.Name, parent int) (geometry.CircularString, error) {
	srid, err := d.enter(start, parent)
	if err != nil {
		return geometry.CircularString{}, err
	}
	numArc, hasNumArc := d.src.Attr("", "numArc")
	coords, err := d.points(start, srid)
	if err != nil {
		return geometry.CircularString{}, err
	}
	cs, err := geometry.NewCircularString(coords, srid)
	if err != nil {
		return geometry.CircularString{}, atElement(err, start)
	}
	if hasNumArc {
		n, perr := strconv.Atoi(strings.TrimSpace(numArc))
		if perr != nil || n != cs.NumArcs() {
			return geometry.CircularString{}, errMalformed(geometry.KindMalformedCurve, start,
				"numArc %q does not match %d arcs", numArc, cs.NumArcs())
		}
	}
	return cs, nil
}

// arc: Arc → posList | pos{3}
func (d *decoder) arc(start xml.Name, parent int) (geometry.CircularString, error) {
	srid, err := d.enter(start, parent)
	if err != nil {
		return geometry.CircularString{}, err
	}
	coords, err := d.points(start, srid)
	if err != nil {
		return geometry.CircularString{}, err
	}
	if len(coords) != 3 {
		return geometry.CircularString{}, errMalformed(geometry.KindMalformedCurve, start,
			"arc needs exactly 3 points, got %d", len(coords))
	}
	cs, err := geometry.NewCircularString(coords, srid)
	return cs, atElement(err, start)
}

// circle: Circle → posList | pos{3}
func (d *decoder) circle(start xml.Name, parent int) (geometry.Circle, error) {
	srid, err := d.enter(start, parent)
	if err != nil {
		return geometry.Circle{}, err
	}
	coords, err := d.points(start, srid)
	if err != nil {
		return geometry.Circle{}, err
	}
	c, err := geometry.NewCircle(coords, srid)
	return c, atElement(err, start)
}

// multiPoint: MultiPoint → (pointMember | pointMembers)*
func (d *decoder) multiPoint(start xml.Name, parent int) (geometry.MultiPoint, error) {
	srid, err := d.enter(start, parent)
	if err != nil {
		return geometry.MultiPoint{}, err
	}
	var points []geometry.Point
	err = d.children(start, func(name xml.Name) error {
		if !isGML(name, "pointMember") && !isGML(name, "pointMembers") {
			return errUnsupported(name, start)
		}
		single := name.Local == "pointMember"
		return d.members(name, srid, single, func(member xml.Name, srid int) error {
			if !isGML(member, "Point") {
				return errUnsupported(member, name)
			}
			p, err := d.point(member, srid)
			if err != nil {
				return err
			}
			points = append(points, p)
			return nil
		})
	})
	if err != nil {
		return geometry.MultiPoint{}, err
	}
	return geometry.NewMultiPoint(points, srid), nil
}

// multiCurve: MultiCurve → (curveMember | curveMembers)*
func (d *decoder) multiCurve(start xml.Name, parent int) (geometry.MultiLine, error) {
	srid, err := d.enter(start, parent)
	if err != nil {
		return geometry.MultiLine{}, err
	}
	var curves []geometry.Curve
	err = d.children(start, func(name xml.Name) error {
		if !isGML(name, "curveMember") && !isGML(name, "curveMembers") {
			return errUnsupported(name, start)
		}
		single := name.Local == "curveMember"
		return d.members(name, srid, single, func(member xml.Name, srid int) error {
			c, err := d.curveElement(member, srid, name)
			if err != nil {
				return err
			}
			curves = append(curves, c)
			return nil
		})
	})
	if err != nil {
		return geometry.MultiLine{}, err
	}
	return geometry.NewMultiLine(curves, srid), nil
}

// multiSurface: MultiSurface → (surfaceMember | surfaceMembers)*
func (d *decoder) multiSurface(start xml.Name, parent int) (geometry.MultiPolygon, error) {
	srid, err := d.enter(start, parent)
	if err != nil {
		return geometry.MultiPolygon{}, err
	}
	var polygons []geometry.Polygon
	err = d.children(start, func(name xml.Name) error {
		if !isGML(name, "surfaceMember") && !isGML(name, "surfaceMembers") {
			return errUnsupported(name, start)
		}
		single := name.Local == "surfaceMember"
		return d.members(name, srid, single, func(member xml.Name, srid int) error {
			if !isGML(member, "Polygon") {
				return errUnsupported(member, name)
			}
			p, err := d.polygon(member, srid)
			if err != nil {
				return err
			}
			polygons = append(polygons, p)
			return nil
		})
	})
	if err != nil {
		return geometry.MultiPolygon{}, err
	}
	return geometry.NewMultiPolygon(polygons, srid), nil
}

// members walks a member property element. A single member property
// (pointMember, curveMember, surfaceMember) must hold exactly one
// child; a plural one (pointMembers, ...) any number.
func (d *decoder) members(start xml.Name, parent int, single bool, member func(name xml.Name, srid int) error) error {
	srid, err := d.enter(start, parent)
	if err != nil {
		return err
	}
	count := 0
	err = d.children(start, func(name xml.Name) error {
		if single && count == 1 {
			return errMalformed(geometry.KindMalformedGeometry, name, "%s holds more than one member", start.Local)
		}
		count++
		return member(name, srid)
	})
	if err != nil {
		return err
	}
	if single && count == 0 {
		return errMalformed(geometry.KindMalformedGeometry, start, "%s holds no member", start.Local)
	}
	return nil
}
