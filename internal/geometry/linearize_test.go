package geometry

import (
	"errors"
	"math"
	"testing"
)

// chordDeviation samples the arc between angles from and to (around
// c with radius r) and returns the largest distance to the chord ab.
func chordDeviation(c Coord, r, from, to float64, a, b Coord) float64 {
	const samples = 64
	worst := 0.0
	for i := 0; i <= samples; i++ {
		angle := from + (to-from)*float64(i)/samples
		q := Coord{X: c.X + r*math.Cos(angle), Y: c.Y + r*math.Sin(angle)}
		worst = math.Max(worst, segmentDistance(q, a, b))
	}
	return worst
}

func segmentDistance(q, a, b Coord) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return Distance(q, a)
	}
	t := ((q.X-a.X)*dx + (q.Y-a.Y)*dy) / l2
	t = math.Max(0, math.Min(1, t))
	return Distance(q, Coord{X: a.X + t*dx, Y: a.Y + t*dy})
}

func TestLinearizeArc(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2, p3 Coord
		precision  float64
	}{
		{"clockwise semicircle", pt(0, 0), pt(2, 2), pt(4, 0), 0.01},
		{"counter-clockwise semicircle", pt(4, 0), pt(2, 2), pt(0, 0), 0.01},
		{"minor arc", pt(10, 0), pt(7.0710678118654755, 7.0710678118654755), pt(0, 10), 0.001},
		{"major arc", pt(1, 0), pt(-1, 0), pt(0, -1), 0.0001},
		{"projected coordinates", pt(-740000, -1040000), pt(-739900, -1039900), pt(-739800, -1040000), 0.05},
		{"precision far below radius", pt(-1e6, 0), pt(0, 1e6), pt(1e6, 0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := mustCircularString(t, 2065, tt.p1, tt.p2, tt.p3)
			g, err := Linearize(cs, tt.precision)
			if err != nil {
				t.Fatalf("Linearize() error = %v", err)
			}
			ls, ok := g.(LineString)
			if !ok {
				t.Fatalf("Linearize() returned %T, want LineString", g)
			}
			if ls.SRID() != 2065 {
				t.Errorf("SRID = %d, want 2065", ls.SRID())
			}

			points := ls.Points()
			if points[0] != tt.p1 || points[len(points)-1] != tt.p3 {
				t.Fatalf("endpoints %v, %v drifted from %v, %v", points[0], points[len(points)-1], tt.p1, tt.p3)
			}

			a, _ := resolveArc(tt.p1, tt.p2, tt.p3)
			n, _ := a.segments(tt.precision)
			if len(points) != n+1 {
				t.Errorf("got %d points, want %d", len(points), n+1)
			}
			eps := 1e-9 * math.Max(1, a.radius)
			for _, q := range points[1 : len(points)-1] {
				if d := math.Abs(Distance(q, a.center) - a.radius); d > eps {
					t.Errorf("interior point %v is %g off the circle", q, d)
				}
			}

			step := a.sweep / float64(len(points)-1)
			if !a.ccw {
				step = -step
			}
			for i := 0; i+1 < len(points); i++ {
				from := a.startAngle + float64(i)*step
				dev := chordDeviation(a.center, a.radius, from, from+step, points[i], points[i+1])
				if dev > tt.precision+eps {
					t.Errorf("chord %d deviates %g from the arc, precision %g", i, dev, tt.precision)
				}
			}
		})
	}
}

func TestLinearizeArcPassesThroughMidpoint(t *testing.T) {
	// Both windings of the top semicircle must bulge towards (2, 2).
	for _, cs := range []CircularString{
		mustCircularString(t, 0, pt(0, 0), pt(2, 2), pt(4, 0)),
		mustCircularString(t, 0, pt(4, 0), pt(2, 2), pt(0, 0)),
	} {
		ls, err := LinearizeCurve(cs, 0.01)
		if err != nil {
			t.Fatal(err)
		}
		points := ls.Points()
		for _, q := range points[1 : len(points)-1] {
			if q.Y <= 0 {
				t.Errorf("interior point %v is below the chord", q)
			}
		}
	}
}

func TestLinearizeCoarsePrecision(t *testing.T) {
	cs := mustCircularString(t, 0, pt(0, 0), pt(1, 1), pt(2, 0))
	ls, err := LinearizeCurve(cs, 5)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Coord{pt(0, 0), pt(2, 0)}, ls.Points())
}

func TestLinearizeMultiArc(t *testing.T) {
	cs := mustCircularString(t, 0, pt(0, 0), pt(1, 1), pt(2, 0), pt(3, -1), pt(4, 0))
	ls, err := LinearizeCurve(cs, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	points := ls.Points()
	if points[0] != pt(0, 0) || points[len(points)-1] != pt(4, 0) {
		t.Errorf("endpoints drifted: %v, %v", points[0], points[len(points)-1])
	}
	shared := 0
	for _, q := range points {
		if q == pt(2, 0) {
			shared++
		}
	}
	if shared != 1 {
		t.Errorf("shared control point appears %d times, want 1", shared)
	}
}

func TestLinearizeCircle(t *testing.T) {
	c, err := NewCircle([]Coord{pt(1, 0), pt(0, 1), pt(-1, 0)}, 0)
	if err != nil {
		t.Fatal(err)
	}
	ls, err := LinearizeCurve(c, 0.001)
	if err != nil {
		t.Fatal(err)
	}
	points := ls.Points()
	if points[0] != pt(1, 0) || points[len(points)-1] != pt(1, 0) {
		t.Errorf("circle is not closed at its start point: %v ... %v", points[0], points[len(points)-1])
	}
	if len(points) < 4 {
		t.Errorf("got %d points, want a ring", len(points))
	}
	for _, q := range points {
		if d := math.Abs(Distance(q, pt(0, 0)) - 1); d > 1e-9 {
			t.Errorf("point %v is %g off the circle", q, d)
		}
	}
	// Counter-clockwise control points: the second vertex is above the x axis.
	if points[1].Y <= 0 {
		t.Errorf("circle runs clockwise, second point %v", points[1])
	}

	coarse, err := LinearizeCurve(c, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(coarse.Points()) != 4 {
		t.Errorf("coarse circle has %d points, want 4", len(coarse.Points()))
	}
}

func TestLinearizeCompoundCurve(t *testing.T) {
	arc := mustCircularString(t, 0, pt(0, 0), pt(2, 2), pt(4, 0))
	line := mustLineString(t, 0, pt(4, 0), pt(0, 0))
	cc, err := NewCompoundCurve([]Curve{arc, line}, 0)
	if err != nil {
		t.Fatal(err)
	}
	ls, err := LinearizeCurve(cc, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	points := ls.Points()
	if len(points) != 18 {
		t.Errorf("got %d points, want 17 arc points plus the closing point", len(points))
	}
	if points[0] != points[len(points)-1] {
		t.Errorf("ring is not closed")
	}
}

func TestLinearizeIdempotent(t *testing.T) {
	ring := mustLineString(t, 0, pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 0))
	poly, _ := NewPolygon(ring, nil, 0)
	p, _ := NewPoint(pt(1, 1), 0)

	for _, g := range []Geometry{
		p,
		ring,
		poly,
		NewMultiPoint([]Point{p}, 0),
		NewMultiLine([]Curve{ring, mustLineString(t, 0, pt(9, 9), pt(8, 8))}, 31),
		NewMultiPolygon([]Polygon{poly}, 0),
	} {
		t.Run(g.Kind().String(), func(t *testing.T) {
			got, err := Linearize(g, 0.01)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, g, got)

			again, err := Linearize(got, 0.01)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, got, again)
		})
	}
}

func TestLinearizeContainers(t *testing.T) {
	ring := mustLineString(t, 0, pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 0))
	arc := mustCircularString(t, 0, pt(0, 0), pt(2, 2), pt(4, 0))
	cc, _ := NewCompoundCurve([]Curve{arc, mustLineString(t, 0, pt(4, 0), pt(0, 0))}, 0)
	linear, _ := NewPolygon(ring, nil, 0)
	curved, _ := NewPolygon(cc, []Curve{ring}, 0)

	mp := NewMultiPolygon([]Polygon{linear, curved}, 2065)
	g, err := Linearize(mp, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	out := g.(MultiPolygon)
	if IsCurved(out) {
		t.Error("linearized multipolygon is still curved")
	}
	if out.SRID() != 2065 {
		t.Errorf("SRID = %d, want 2065", out.SRID())
	}
	diff(t, linear, out.Polygons()[0])
	diff(t, ring, out.Polygons()[1].Inners()[0])
	if !IsCurved(mp) {
		t.Error("original multipolygon was modified")
	}

	ml := NewMultiLine([]Curve{ring, arc}, 0)
	g, err = Linearize(ml, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	segs := g.(MultiLine).Segments()
	diff(t, ring, segs[0])
	if _, ok := segs[1].(LineString); !ok {
		t.Errorf("curved member is %T, want LineString", segs[1])
	}
	if _, ok := ml.Segments()[1].(CircularString); !ok {
		t.Error("original multiline was modified")
	}
}

func TestLinearizeInvalidPrecision(t *testing.T) {
	arc := mustCircularString(t, 0, pt(0, 0), pt(2, 2), pt(4, 0))
	for _, p := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := Linearize(arc, p); !errors.Is(err, KindInvalidPrecision) {
			t.Errorf("Linearize(precision=%v) error = %v, want invalid precision", p, err)
		}
	}
}

func TestLinearizeTooManySegments(t *testing.T) {
	wide := mustCircularString(t, 0, pt(-1e6, 0), pt(0, 1e6), pt(1e6, 0))
	for _, p := range []float64{1e-6, 1e-9, 1e-11, 1e-12} {
		_, err := Linearize(wide, p)
		if !errors.Is(err, KindInvalidPrecision) {
			t.Errorf("Linearize(precision=%v) error = %v, want invalid precision", p, err)
		}
	}
	if _, err := Linearize(wide, 1); err != nil {
		t.Errorf("Linearize(precision=1) error = %v", err)
	}
}

func BenchmarkLinearizeArc(b *testing.B) {
	cs := mustCircularString(b, 0, pt(-740000, -1040000), pt(-739900, -1039900), pt(-739800, -1040000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = LinearizeCurve(cs, 0.01)
	}
}
