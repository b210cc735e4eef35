package gml

import (
	"github.com/beetlebugorg/gmlwkt/internal/geometry"
)

// Bounds represents an axis-aligned bounding box in the coordinates of
// the geometry's spatial reference.
type Bounds struct {
	MinX float64 // Western edge
	MaxX float64 // Eastern edge
	MinY float64 // Southern edge
	MaxY float64 // Northern edge
}

// Contains returns true if the point (x, y) is within the bounds.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX &&
		y >= b.MinY && y <= b.MaxY
}

// Intersects returns true if the given bounds intersects with this bounds.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxX < b.MinX ||
		other.MinX > b.MaxX ||
		other.MaxY < b.MinY ||
		other.MinY > b.MaxY)
}

// Expand returns a new Bounds expanded by the given margin in all directions.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinX: b.MinX - margin,
		MaxX: b.MaxX + margin,
		MinY: b.MinY - margin,
		MaxY: b.MaxY + margin,
	}
}

// Union returns the smallest bounds containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		MinX: min(b.MinX, other.MinX),
		MaxX: max(b.MaxX, other.MaxX),
		MinY: min(b.MinY, other.MinY),
		MaxY: max(b.MaxY, other.MaxY),
	}
}

// Bounds returns the bounding box of the geometry, or the zero Bounds
// for an empty geometry.
//
// Arcs are measured on their linearization at DefaultPrecision, so the
// box includes the bulge of each arc and not only its control points.
func (g *Geometry) Bounds() Bounds {
	src := g.g
	if geometry.IsCurved(src) {
		if lin, err := geometry.Linearize(src, DefaultPrecision); err == nil {
			src = lin
		}
	}
	return coordBounds(src)
}

// coordBounds calculates the bounding box of every coordinate of g.
func coordBounds(g geometry.Geometry) Bounds {
	var (
		bounds Bounds
		first  = true
	)
	geometry.Walk(g, func(c geometry.Coord) {
		if first {
			bounds = Bounds{MinX: c.X, MaxX: c.X, MinY: c.Y, MaxY: c.Y}
			first = false
			return
		}
		if c.X < bounds.MinX {
			bounds.MinX = c.X
		}
		if c.X > bounds.MaxX {
			bounds.MaxX = c.X
		}
		if c.Y < bounds.MinY {
			bounds.MinY = c.Y
		}
		if c.Y > bounds.MaxY {
			bounds.MaxY = c.Y
		}
	})
	return bounds
}
