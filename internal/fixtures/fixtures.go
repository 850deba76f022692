// Package fixtures loads the site sets used by tests. Each fixture is an SVG
// file in fixtures/ whose circle centres and polygon corners are the sites, so
// fixtures can be eyeballed in any image viewer. This is not a general svg
// parser: anything other than circles and polygons is ignored, and anything
// malformed is fatal.
package fixtures

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/golang/geo/r2"
)

//go:embed fixtures
var fixtures embed.FS

// Load returns the sites of the named fixture, in document order.
func Load(name string) []r2.Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	var sites []r2.Point
	for _, polygon := range rootEl.FindAll("polygon") {
		sites = append(sites, parsePolygonPoints(name, polygon.Attributes["points"])...)
	}
	for _, circle := range rootEl.FindAll("circle") {
		sites = append(sites, r2.Point{
			X: parseCoordinate(name, circle.Attributes["cx"]),
			Y: parseCoordinate(name, circle.Attributes["cy"]),
		})
	}
	if len(sites) == 0 {
		log.Fatalf("No sites found in fixture %q", name)
	}
	return sites
}

// Polygon points are "x,y" pairs separated by spaces.
func parsePolygonPoints(name, pointString string) []r2.Point {
	var points []r2.Point
	for _, pair := range strings.Split(pointString, " ") {
		if pair == "" {
			continue
		}

		coordinates := strings.Split(pair, ",")
		if len(coordinates) != 2 {
			log.Fatalf("Invalid point string %q in fixture %q", pair, name)
		}
		points = append(points, r2.Point{
			X: parseCoordinate(name, coordinates[0]),
			Y: parseCoordinate(name, coordinates[1]),
		})
	}
	return points
}

func parseCoordinate(name, value string) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Fatalf("Invalid coordinate %q in fixture %q: %v", value, name, err)
	}
	return f
}
