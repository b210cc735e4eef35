package geometry

import (
	"math"
)

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Coord) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Orientation returns twice the signed area of the triangle abc. It is
// positive when a, b, c wind counter-clockwise, negative when they wind
// clockwise and zero when they are colinear.
func Orientation(a, b, c Coord) float64 {
	return (c.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(c.Y-b.Y)
}

// ArcCenter returns the centre of the unique circle through p1, p2 and
// p3. Colinear points have no such circle and yield KindDegenerateArc.
func ArcCenter(p1, p2, p3 Coord) (Coord, error) {
	if Orientation(p1, p2, p3) == 0 {
		return Coord{}, newError(KindDegenerateArc, "points (%v %v), (%v %v), (%v %v) are colinear",
			p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
	}

	// Perpendicular bisector intersection, solved relative to p1 so
	// large projected coordinates keep their precision.
	bx, by := p2.X-p1.X, p2.Y-p1.Y
	cx, cy := p3.X-p1.X, p3.Y-p1.Y
	d := 2 * (bx*cy - by*cx)
	b2 := bx*bx + by*by
	c2 := cx*cx + cy*cy
	ux := (cy*b2 - by*c2) / d
	uy := (bx*c2 - cx*b2) / d

	center := Coord{X: p1.X + ux, Y: p1.Y + uy}
	if d == 0 || !isFinite(center.X) || !isFinite(center.Y) {
		return Coord{}, newError(KindDegenerateArc, "points (%v %v), (%v %v), (%v %v) have no finite circle centre",
			p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y)
	}
	return center, nil
}

// arc is one circular arc resolved from its control points.
type arc struct {
	start, end Coord
	center     Coord
	radius     float64
	startAngle float64
	sweep      float64 // always in (0, 2π]
	ccw        bool

	// minSegments keeps closed arcs from collapsing to a single chord.
	minSegments int
}

// resolveArc fits the arc running from p1 through p2 to p3.
func resolveArc(p1, p2, p3 Coord) (arc, error) {
	center, err := ArcCenter(p1, p2, p3)
	if err != nil {
		return arc{}, err
	}
	a1 := math.Atan2(p1.Y-center.Y, p1.X-center.X)
	a3 := math.Atan2(p3.Y-center.Y, p3.X-center.X)
	ccw := Orientation(p1, p2, p3) > 0

	var sweep float64
	if ccw {
		sweep = normalizeSweep(a3 - a1)
	} else {
		sweep = normalizeSweep(a1 - a3)
	}
	return arc{
		start:      p1,
		end:        p3,
		center:     center,
		radius:     Distance(p2, center),
		startAngle: a1,
		sweep:      sweep,
		ccw:        ccw,
	}, nil
}

// fullCircle returns the closed 2π arc of c starting at its first
// control point.
func fullCircle(c Circle) arc {
	p1, p2, p3 := c.points[0], c.points[1], c.points[2]
	center, _ := ArcCenter(p1, p2, p3)
	return arc{
		start:      p1,
		end:        p1,
		center:     center,
		radius:     Distance(p2, center),
		startAngle: math.Atan2(p1.Y-center.Y, p1.X-center.X),
		sweep:      2 * math.Pi,
		ccw:        Orientation(p1, p2, p3) > 0,

		minSegments: 3,
	}
}

// normalizeSweep maps an angle difference into (0, 2π].
func normalizeSweep(delta float64) float64 {
	delta = math.Mod(delta, 2*math.Pi)
	if delta <= 0 {
		delta += 2 * math.Pi
	}
	return delta
}

// maxArcSegments caps the chords generated for a single arc. A
// precision needing more is rejected as KindInvalidPrecision.
const maxArcSegments = 1 << 20

// segments returns how many chords approximate a within precision.
// Each chord's sagitta r(1-cos θ/2) stays at or below precision.
func (a arc) segments(precision float64) (int, error) {
	n := 1
	if 2*a.radius > precision {
		// acos(1-p/r) written as 2·asin(√(p/2r)) stays accurate when
		// p/r is far below machine epsilon.
		half := 2 * math.Asin(math.Sqrt(precision/(2*a.radius)))
		count := math.Ceil(0.5 * a.sweep / half)
		if math.IsNaN(count) || count > maxArcSegments {
			return 0, newError(KindInvalidPrecision,
				"precision %v on an arc of radius %v needs more than %d segments", precision, a.radius, maxArcSegments)
		}
		n = int(count)
	}
	return max(n, a.minSegments, 1), nil
}

// points returns the arc's polyline: its exact start, n-1 interior
// points on the circle and its exact end.
func (a arc) points(precision float64) ([]Coord, error) {
	n, err := a.segments(precision)
	if err != nil {
		return nil, err
	}
	step := a.sweep / float64(n)
	if !a.ccw {
		step = -step
	}
	out := make([]Coord, 0, n+1)
	out = append(out, a.start)
	for i := 1; i < n; i++ {
		angle := a.startAngle + float64(i)*step
		out = append(out, Coord{
			X: a.center.X + a.radius*math.Cos(angle),
			Y: a.center.Y + a.radius*math.Sin(angle),
		})
	}
	return append(out, a.end), nil
}
