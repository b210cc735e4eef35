package geometry

// Linearize returns a purely linear equivalent of g in which every
// circular arc is replaced by chords deviating from the arc by at most
// precision. CircularString, Circle and CompoundCurve become
// LineString; containers keep their shape. Linear parts are returned
// unchanged and g itself is never modified.
func Linearize(g Geometry, precision float64) (Geometry, error) {
	if err := ValidatePrecision(precision); err != nil {
		return nil, err
	}
	return linearize(g, precision)
}

// LinearizeCurve linearizes a single curve into a line string.
func LinearizeCurve(c Curve, precision float64) (LineString, error) {
	if err := ValidatePrecision(precision); err != nil {
		return LineString{}, err
	}
	return linearizeCurve(c, precision)
}

func linearize(g Geometry, precision float64) (Geometry, error) {
	switch g := g.(type) {
	case Point, LineString, MultiPoint:
		return g, nil
	case CircularString, Circle, CompoundCurve:
		ls, err := linearizeCurve(g.(Curve), precision)
		if err != nil {
			return nil, err
		}
		return ls, nil
	case Polygon:
		p, err := linearizePolygon(g, precision)
		if err != nil {
			return nil, err
		}
		return p, nil
	case MultiLine:
		if !IsCurved(g) {
			return g, nil
		}
		segments := make([]Curve, len(g.segments))
		for i, s := range g.segments {
			ls, err := linearizeCurve(s, precision)
			if err != nil {
				return nil, err
			}
			segments[i] = ls
		}
		return MultiLine{segments: segments, srid: g.srid}, nil
	case MultiPolygon:
		if !IsCurved(g) {
			return g, nil
		}
		polygons := make([]Polygon, len(g.polygons))
		for i, p := range g.polygons {
			lp, err := linearizePolygon(p, precision)
			if err != nil {
				return nil, err
			}
			polygons[i] = lp
		}
		return MultiPolygon{polygons: polygons, srid: g.srid}, nil
	}
	return nil, newError(KindMalformedGeometry, "cannot linearize %T", g)
}

func linearizePolygon(p Polygon, precision float64) (Polygon, error) {
	if !IsCurved(p) {
		return p, nil
	}
	outer, err := linearizeCurve(p.outer, precision)
	if err != nil {
		return Polygon{}, err
	}
	inners := make([]Curve, len(p.inners))
	for i, r := range p.inners {
		ls, err := linearizeCurve(r, precision)
		if err != nil {
			return Polygon{}, err
		}
		inners[i] = ls
	}
	return Polygon{outer: outer, inners: inners, srid: p.srid}, nil
}

func linearizeCurve(c Curve, precision float64) (LineString, error) {
	switch c := c.(type) {
	case LineString:
		return c, nil
	case CircularString:
		points, err := linearizeArcs(c.points, precision)
		if err != nil {
			return LineString{}, err
		}
		return LineString{points: points, srid: c.srid}, nil
	case Circle:
		points, err := fullCircle(c).points(precision)
		if err != nil {
			return LineString{}, err
		}
		return LineString{points: points, srid: c.srid}, nil
	case CompoundCurve:
		var points []Coord
		for _, s := range c.segments {
			ls, err := linearizeCurve(s, precision)
			if err != nil {
				return LineString{}, err
			}
			points = join(points, ls.points)
		}
		return LineString{points: points, srid: c.srid}, nil
	}
	return LineString{}, newError(KindMalformedGeometry, "cannot linearize curve %T", c)
}

// linearizeArcs linearizes each arc triple of a circular string and
// joins the pieces, keeping every shared control point once.
func linearizeArcs(controls []Coord, precision float64) ([]Coord, error) {
	if len(controls) < 3 || len(controls)%2 == 0 {
		return nil, newError(KindMalformedCurve, "circular string needs an odd number of at least 3 points, got %d", len(controls))
	}
	var points []Coord
	for i := 0; i+2 < len(controls); i += 2 {
		a, err := resolveArc(controls[i], controls[i+1], controls[i+2])
		if err != nil {
			return nil, err
		}
		arcPoints, err := a.points(precision)
		if err != nil {
			return nil, err
		}
		points = join(points, arcPoints)
	}
	return points, nil
}

// join appends next to points, dropping next's first point when it
// repeats the current end.
func join(points, next []Coord) []Coord {
	if len(points) > 0 && len(next) > 0 && points[len(points)-1] == next[0] {
		next = next[1:]
	}
	return append(points, next...)
}
