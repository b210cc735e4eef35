package gml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/beetlebugorg/gmlwkt/internal/geometry"
	"github.com/beetlebugorg/gmlwkt/internal/parser"
)

// Feature is a geometry found while walking a document.
type Feature struct {
	ID       string    // gml:id of the geometry element, empty if absent
	Property string    // Local name of the element enclosing the geometry
	Geometry *Geometry
}

// ErrStop can be returned by an Each callback to end the walk early
// without error.
var ErrStop = errors.New("gml: stop")

// Converter walks an arbitrary XML document, such as a WFS response or
// a cadastral exchange file, and converts every GML geometry in it.
//
// A geometry is any GML root element (Point, LineString, Polygon,
// Curve, MultiPoint, MultiCurve, MultiSurface) found outside another
// geometry. Everything else in the document is ignored.
type Converter struct {
	Options ConvertOptions

	// Log receives a warning for every geometry skipped with
	// SkipInvalid and a debug line per converted geometry.
	Log logrus.FieldLogger
}

// NewConverter returns a converter logging to the logrus standard
// logger.
func NewConverter(opts ConvertOptions) *Converter {
	return &Converter{
		Options: opts,
		Log:     logrus.StandardLogger(),
	}
}

// Each calls fn for every geometry in the document, in document order.
// A non-nil error from fn ends the walk and is returned, except ErrStop
// which ends it with a nil error.
func (c *Converter) Each(r io.Reader, fn func(Feature) error) error {
	opts := c.Options.ParseOptions
	if opts.Linearize {
		if err := geometry.ValidatePrecision(opts.Precision); err != nil {
			return err
		}
	}
	log := c.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	src := parser.NewXMLSource(r)
	p := opts.internal()

	// Enclosing non-geometry elements; geometries are consumed whole.
	var open []xml.Name
	for {
		ev, err := src.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}

		switch ev {
		case parser.EndElement:
			if len(open) > 0 {
				open = open[:len(open)-1]
			}
			continue
		case parser.StartElement:
		default:
			continue
		}

		name := src.Name()
		if !parser.IsGeometryElement(name) {
			open = append(open, name)
			continue
		}

		feature := Feature{}
		feature.ID, _ = src.Attr(parser.Namespace, "id")
		if len(open) > 0 {
			feature.Property = open[len(open)-1].Local
		}
		depth := src.Depth()

		g, err := p.ParseElement(src)
		if err == nil {
			feature.Geometry, err = finish(g, opts)
		}
		if err != nil {
			var gerr *Error
			if !c.Options.SkipInvalid || !errors.As(err, &gerr) {
				return fmt.Errorf("convert %s %q: %w", name.Local, feature.ID, err)
			}
			log.WithFields(logrus.Fields{
				"element": name.Local,
				"id":      feature.ID,
				"kind":    gerr.Kind.String(),
				"error":   err,
			}).Warn("skipping invalid geometry")
			if err := src.Skip(depth); err != nil {
				return fmt.Errorf("skip %s %q: %w", name.Local, feature.ID, err)
			}
			continue
		}

		log.WithFields(logrus.Fields{
			"element":  name.Local,
			"id":       feature.ID,
			"property": feature.Property,
			"type":     feature.Geometry.Type().String(),
		}).Debug("converted geometry")

		if err := fn(feature); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
	}
}

// All returns every geometry in the document.
func (c *Converter) All(r io.Reader) ([]Feature, error) {
	var features []Feature
	err := c.Each(r, func(f Feature) error {
		features = append(features, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return features, nil
}

// Index converts the document and indexes its geometries.
func (c *Converter) Index(r io.Reader) (*Index, error) {
	idx := NewIndex()
	err := c.Each(r, func(f Feature) error {
		idx.Insert(f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return idx, nil
}
