package gml

import (
	"encoding/binary"
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkb"

	"github.com/beetlebugorg/gmlwkt/internal/geometry"
)

// ewkbByteOrder is the byte order of EWKB produced by EWKB.
var ewkbByteOrder = binary.LittleEndian

// Geom returns the geometry as a go-geom value carrying the SRID.
//
// go-geom has no curve types, so curved geometries are linearized at
// DefaultPrecision first; call Linearize beforehand for a different
// precision.
func (g *Geometry) Geom() (geom.T, error) {
	src := g.g
	if geometry.IsCurved(src) {
		lin, err := geometry.Linearize(src, DefaultPrecision)
		if err != nil {
			return nil, err
		}
		src = lin
	}
	return toGeom(src)
}

// EWKB returns the geometry as little-endian Extended WKB, the format
// PostGIS accepts for geometry columns. Curved geometries are
// linearized as in Geom.
func (g *Geometry) EWKB() ([]byte, error) {
	t, err := g.Geom()
	if err != nil {
		return nil, err
	}
	b, err := ewkb.Marshal(t, ewkbByteOrder)
	if err != nil {
		return nil, fmt.Errorf("marshal ewkb: %w", err)
	}
	return b, nil
}

// toGeom converts a linear geometry tree.
func toGeom(g geometry.Geometry) (geom.T, error) {
	srid := g.SRID()
	switch g := g.(type) {
	case geometry.Point:
		return pointGeom(g).SetSRID(srid), nil
	case geometry.LineString:
		return geom.NewLineStringFlat(geom.XY, flatCoords(nil, g.Points())).SetSRID(srid), nil
	case geometry.Polygon:
		p, err := polygonGeom(g)
		if err != nil {
			return nil, err
		}
		return p.SetSRID(srid), nil
	case geometry.MultiPoint:
		mp := geom.NewMultiPoint(geom.XY).SetSRID(srid)
		for _, p := range g.Points() {
			if err := mp.Push(pointGeom(p)); err != nil {
				return nil, err
			}
		}
		return mp, nil
	case geometry.MultiLine:
		mls := geom.NewMultiLineString(geom.XY).SetSRID(srid)
		for _, s := range g.Segments() {
			ls, ok := s.(geometry.LineString)
			if !ok {
				return nil, fmt.Errorf("multiline member %v is not linear", s.Kind())
			}
			if err := mls.Push(geom.NewLineStringFlat(geom.XY, flatCoords(nil, ls.Points()))); err != nil {
				return nil, err
			}
		}
		return mls, nil
	case geometry.MultiPolygon:
		mp := geom.NewMultiPolygon(geom.XY).SetSRID(srid)
		for _, member := range g.Polygons() {
			p, err := polygonGeom(member)
			if err != nil {
				return nil, err
			}
			if err := mp.Push(p); err != nil {
				return nil, err
			}
		}
		return mp, nil
	default:
		return nil, fmt.Errorf("%v has no linear go-geom form", g.Kind())
	}
}

func pointGeom(p geometry.Point) *geom.Point {
	c := p.Coord()
	return geom.NewPointFlat(geom.XY, []float64{c.X, c.Y})
}

func polygonGeom(p geometry.Polygon) (*geom.Polygon, error) {
	rings := append([]geometry.Curve{p.Outer()}, p.Inners()...)
	var (
		flat []float64
		ends = make([]int, 0, len(rings))
	)
	for _, r := range rings {
		ls, ok := r.(geometry.LineString)
		if !ok {
			return nil, fmt.Errorf("polygon ring %v is not linear", r.Kind())
		}
		flat = flatCoords(flat, ls.Points())
		ends = append(ends, len(flat))
	}
	return geom.NewPolygonFlat(geom.XY, flat, ends), nil
}

// flatCoords appends coords to flat as x, y pairs.
func flatCoords(flat []float64, coords []geometry.Coord) []float64 {
	for _, c := range coords {
		flat = append(flat, c.X, c.Y)
	}
	return flat
}
