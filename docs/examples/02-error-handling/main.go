package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/beetlebugorg/gmlwkt/pkg/gml"
)

func convertFile(path string, skipInvalid bool) ([]gml.Feature, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	opts := gml.DefaultConvertOptions()
	opts.SkipInvalid = skipInvalid
	c := gml.NewConverter(opts)

	features, err := c.All(f)
	if err != nil {
		var gerr *gml.Error
		switch {
		case errors.Is(err, gml.KindUnsupportedSRS):
			log.Printf("%s uses an unknown spatial reference: %v", path, err)
		case errors.As(err, &gerr):
			log.Printf("%s: invalid GML element %s: %v", path, gerr.Local, gerr.Kind)
		}
		return nil, err
	}

	if len(features) == 0 {
		log.Printf("Warning: %s contains no geometries", path)
	}
	return features, nil
}

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s file.xml", os.Args[0])
	}
	path := os.Args[1]
	logrus.SetLevel(logrus.DebugLevel)

	// Strict: the first invalid geometry aborts the file
	if _, err := convertFile(path, false); err != nil {
		log.Printf("Strict conversion failed: %v", err)
	}

	// Lenient: invalid geometries are logged and skipped
	features, err := convertFile(path, true)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	for _, f := range features {
		fmt.Printf("%s\t%s\t%s\n", f.ID, f.Property, f.Geometry.WKT())
	}
}
