package parser

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/beetlebugorg/gmlwkt/internal/geometry"
)

// parseCoordinates reads a whitespace separated list of numbers with
// an even count and pairs them into coordinates.
// GML 3.2 §10.1.4.1: posList holds srsDimension values per position.
func parseCoordinates(text string, start xml.Name) ([]geometry.Coord, error) {
	fields := strings.Fields(text)
	if len(fields)%2 != 0 {
		return nil, errMalformed(geometry.KindMalformedGeometry, start,
			"odd number of values (%d) in coordinate list", len(fields))
	}
	coords := make([]geometry.Coord, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := parseNumber(fields[i], start)
		if err != nil {
			return nil, err
		}
		y, err := parseNumber(fields[i+1], start)
		if err != nil {
			return nil, err
		}
		coords = append(coords, geometry.Coord{X: x, Y: y})
	}
	return coords, nil
}

// parsePosition reads a single pos value.
func parsePosition(text string, start xml.Name) (geometry.Coord, error) {
	coords, err := parseCoordinates(text, start)
	if err != nil {
		return geometry.Coord{}, err
	}
	if len(coords) != 1 {
		return geometry.Coord{}, errMalformed(geometry.KindMalformedGeometry, start,
			"position needs 2 values, got %d", 2*len(coords))
	}
	return coords[0], nil
}

func parseNumber(field string, start xml.Name) (float64, error) {
	f, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, errMalformed(geometry.KindMalformedGeometry, start, "invalid number %q", field)
	}
	return f, nil
}
