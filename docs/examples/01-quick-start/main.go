package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/beetlebugorg/gmlwkt/pkg/gml"
)

const parcel = `<gml:Polygon xmlns:gml="http://www.opengis.net/gml/3.2" srsName="urn:ogc:def:crs:EPSG::2065">
	<gml:exterior><gml:Ring>
		<gml:curveMember><gml:Curve><gml:segments>
			<gml:ArcString><gml:posList>-740100 -1046400 -740000 -1046300 -739900 -1046400</gml:posList></gml:ArcString>
		</gml:segments></gml:Curve></gml:curveMember>
		<gml:curveMember><gml:LineString>
			<gml:posList>-739900 -1046400 -740100 -1046400</gml:posList>
		</gml:LineString></gml:curveMember>
	</gml:Ring></gml:exterior>
</gml:Polygon>`

func main() {
	// Create parser
	parser := gml.NewParser()

	// Parse geometry
	g, err := parser.Parse(strings.NewReader(parcel))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Type: %v\n", g.Type())
	fmt.Printf("Curved: %v\n", g.IsCurved())
	fmt.Printf("EWKT: %s\n", g.WKT())

	// Replace the arc with chords at most 1 cm from it
	lin, err := g.Linearize(0.01)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Linearized points: %d\n", len(lin.Coordinates()))

	// Get geometry bounds
	bounds := g.Bounds()
	fmt.Printf("Bounds: [%.2f,%.2f] to [%.2f,%.2f]\n",
		bounds.MinX, bounds.MinY,
		bounds.MaxX, bounds.MaxY)
}
