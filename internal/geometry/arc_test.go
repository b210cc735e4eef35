package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	if d := Distance(pt(0, 0), pt(3, 4)); d != 5 {
		t.Errorf("got %v, want 5", d)
	}
}

func TestOrientation(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Coord
		sign    int
	}{
		{"counter-clockwise", pt(1, 0), pt(0, 1), pt(-1, 0), 1},
		{"clockwise", pt(0, 0), pt(2, 2), pt(4, 0), -1},
		{"colinear", pt(0, 0), pt(1, 1), pt(2, 2), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Orientation(tt.a, tt.b, tt.c)
			var sign int
			switch {
			case o > 0:
				sign = 1
			case o < 0:
				sign = -1
			}
			if sign != tt.sign {
				t.Errorf("Orientation() = %v, want sign %d", o, tt.sign)
			}
		})
	}
}

func TestArcCenter(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2, p3 Coord
		want       Coord
	}{
		{"unit circle", pt(1, 0), pt(0, 1), pt(-1, 0), pt(0, 0)},
		{"clockwise semicircle", pt(0, 0), pt(2, 2), pt(4, 0), pt(2, 0)},
		{"projected coordinates", pt(-740000, -1040000), pt(-739900, -1039900), pt(-739800, -1040000), pt(-739900, -1040000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ArcCenter(tt.p1, tt.p2, tt.p3)
			if err != nil {
				t.Fatalf("ArcCenter() error = %v", err)
			}
			if Distance(got, tt.want) > 1e-9 {
				t.Errorf("ArcCenter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArcCenterColinear(t *testing.T) {
	_, err := ArcCenter(pt(0, 0), pt(1, 1), pt(2, 2))
	if !errors.Is(err, KindDegenerateArc) {
		t.Fatalf("expected degenerate arc error, got %v", err)
	}
}

func TestNormalizeSweep(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{math.Pi / 2, math.Pi / 2},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{0, 2 * math.Pi},
		{2 * math.Pi, 2 * math.Pi},
		{5 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		if got := normalizeSweep(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("normalizeSweep(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestArcSegments(t *testing.T) {
	a, err := resolveArc(pt(0, 0), pt(2, 2), pt(4, 0))
	if err != nil {
		t.Fatal(err)
	}
	if a.ccw {
		t.Error("expected clockwise arc")
	}
	if math.Abs(a.sweep-math.Pi) > 1e-12 {
		t.Errorf("sweep = %v, want π", a.sweep)
	}
	if n, err := a.segments(0.01); err != nil || n != 16 {
		t.Errorf("segments(0.01) = %d, %v, want 16", n, err)
	}
	if n, err := a.segments(4); err != nil || n != 1 {
		t.Errorf("segments(4) = %d, %v, want 1 for a precision covering the diameter", n, err)
	}
}

func TestArcSegmentsLimit(t *testing.T) {
	a, err := resolveArc(pt(-1e6, 0), pt(0, 1e6), pt(1e6, 0))
	if err != nil {
		t.Fatal(err)
	}
	if n, err := a.segments(1); err != nil || n != 1111 {
		t.Errorf("segments(1) = %d, %v, want 1111", n, err)
	}
	for _, precision := range []float64{1e-6, 1e-9, 1e-11, 1e-12, 1e-20} {
		n, err := a.segments(precision)
		if !errors.Is(err, KindInvalidPrecision) {
			t.Errorf("segments(%v) = %d, %v, want KindInvalidPrecision", precision, n, err)
		}
	}
}
