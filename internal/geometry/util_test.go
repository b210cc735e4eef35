package geometry

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// allFields lets cmp look inside the unexported geometry fields.
var allFields = cmp.Exporter(func(reflect.Type) bool { return true })

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	opts = append(opts, allFields)
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func pt(x, y float64) Coord { return Coord{X: x, Y: y} }

func mustCircularString(t testing.TB, srid int, points ...Coord) CircularString {
	t.Helper()
	cs, err := NewCircularString(points, srid)
	if err != nil {
		t.Fatalf("NewCircularString: %v", err)
	}
	return cs
}

func mustLineString(t testing.TB, srid int, points ...Coord) LineString {
	t.Helper()
	ls, err := NewLineString(points, srid)
	if err != nil {
		t.Fatalf("NewLineString: %v", err)
	}
	return ls
}
