// Package wkt serializes geometry trees to Well-Known Text, or to
// Extended WKT when the root carries an SRID.
//
// Curve-aware keywords (CIRCULARSTRING, COMPOUNDCURVE, CURVEPOLYGON,
// MULTICURVE, MULTISURFACE) are chosen by inspecting the tree. Inside
// a container the keyword of a member is dropped when it is the
// container's default member type (LINESTRING rings and lines, POLYGON
// members), leaving only the bracketed list. Curved members keep their
// CIRCULARSTRING, COMPOUNDCURVE or CURVEPOLYGON keyword so readers can
// tell them from the default type.
//
// Coordinates are written with the shortest decimal representation that
// round-trips to the same float64, never in exponent form, and always
// with a fractional part: 496547 is written as 496547.0.
package wkt

import (
	"strconv"
	"strings"

	"github.com/beetlebugorg/gmlwkt/internal/geometry"
)

// Marshal returns the text form of g, prefixed with "SRID=n;" when g
// has an SRID.
func Marshal(g geometry.Geometry) string {
	var b strings.Builder
	if srid := g.SRID(); srid != 0 {
		b.WriteString("SRID=")
		b.WriteString(strconv.Itoa(srid))
		b.WriteByte(';')
	}
	writeGeometry(&b, g)
	return b.String()
}

// FormatFloat formats a single coordinate value.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func writeGeometry(b *strings.Builder, g geometry.Geometry) {
	switch g := g.(type) {
	case geometry.Point:
		b.WriteString("POINT(")
		writeCoord(b, g.Coord())
		b.WriteByte(')')
	case geometry.LineString:
		b.WriteString("LINESTRING")
		writeCoords(b, g.Points())
	case geometry.CircularString:
		b.WriteString("CIRCULARSTRING")
		writeCoords(b, g.Points())
	case geometry.Circle:
		b.WriteString("CIRCULARSTRING")
		writeCoords(b, g.Closed())
	case geometry.CompoundCurve:
		b.WriteString("COMPOUNDCURVE(")
		for i, s := range g.Segments() {
			if i > 0 {
				b.WriteByte(',')
			}
			writeGeometry(b, s)
		}
		b.WriteByte(')')
	case geometry.Polygon:
		if geometry.IsCurved(g) {
			b.WriteString("CURVEPOLYGON")
		} else {
			b.WriteString("POLYGON")
		}
		writePolygonBody(b, g)
	case geometry.MultiPoint:
		b.WriteString("MULTIPOINT")
		points := g.Points()
		if len(points) == 0 {
			b.WriteString(" EMPTY")
			return
		}
		b.WriteByte('(')
		for i, p := range points {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCoord(b, p.Coord())
		}
		b.WriteByte(')')
	case geometry.MultiLine:
		if geometry.IsCurved(g) {
			b.WriteString("MULTICURVE")
		} else {
			b.WriteString("MULTILINESTRING")
		}
		segments := g.Segments()
		if len(segments) == 0 {
			b.WriteString(" EMPTY")
			return
		}
		b.WriteByte('(')
		for i, s := range segments {
			if i > 0 {
				b.WriteByte(',')
			}
			writeMemberCurve(b, s)
		}
		b.WriteByte(')')
	case geometry.MultiPolygon:
		if geometry.IsCurved(g) {
			b.WriteString("MULTISURFACE")
		} else {
			b.WriteString("MULTIPOLYGON")
		}
		polygons := g.Polygons()
		if len(polygons) == 0 {
			b.WriteString(" EMPTY")
			return
		}
		b.WriteByte('(')
		for i, p := range polygons {
			if i > 0 {
				b.WriteByte(',')
			}
			if geometry.IsCurved(p) {
				writeGeometry(b, p)
			} else {
				writePolygonBody(b, p)
			}
		}
		b.WriteByte(')')
	}
}

// writePolygonBody writes the ring list of p without a keyword.
func writePolygonBody(b *strings.Builder, p geometry.Polygon) {
	b.WriteByte('(')
	writeMemberCurve(b, p.Outer())
	for _, r := range p.Inners() {
		b.WriteByte(',')
		writeMemberCurve(b, r)
	}
	b.WriteByte(')')
}

// writeMemberCurve writes a ring or multi-curve member. Line strings
// lose their keyword; curves keep theirs.
func writeMemberCurve(b *strings.Builder, c geometry.Curve) {
	if ls, ok := c.(geometry.LineString); ok {
		writeCoords(b, ls.Points())
		return
	}
	writeGeometry(b, c)
}

func writeCoords(b *strings.Builder, coords []geometry.Coord) {
	b.WriteByte('(')
	for i, c := range coords {
		if i > 0 {
			b.WriteByte(',')
		}
		writeCoord(b, c)
	}
	b.WriteByte(')')
}

func writeCoord(b *strings.Builder, c geometry.Coord) {
	b.WriteString(FormatFloat(c.X))
	b.WriteByte(' ')
	b.WriteString(FormatFloat(c.Y))
}
