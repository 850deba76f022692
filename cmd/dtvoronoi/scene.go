package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/dtvoronoi"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Point = dtvoronoi.Point

// A scene is a set of sites, plus some points to ask about.
//
// In YAML:
//
//	sites: [[0, 0], [2, 0], [1, 2]]
//	queries: [[1, 0.75]]
type scene struct {
	Sites   []Point
	Queries []Point
}

type sceneFile struct {
	Sites   [][2]float64 `yaml:"sites"`
	Queries [][2]float64 `yaml:"queries"`
}

func loadScene(path string) (*scene, error) {
	if path == "" || path == "-" {
		return readScene(os.Stdin)
	}

	in, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening scene")
	}
	defer in.Close()
	return decodeScene(in)
}

func decodeScene(in io.Reader) (*scene, error) {
	var file sceneFile
	if err := yaml.NewDecoder(in).Decode(&file); err != nil {
		return nil, errors.Wrap(err, "decoding scene")
	}
	return &scene{Sites: toPoints(file.Sites), Queries: toPoints(file.Queries)}, nil
}

func toPoints(pairs [][2]float64) []Point {
	points := make([]Point, len(pairs))
	for i, pair := range pairs {
		points[i] = Point{X: pair[0], Y: pair[1]}
	}
	return points
}

// Read a scene in the plain text form: newline separated points in the form
// "x y", with the sites and the queries separated by an extra newline.
func readScene(in io.Reader) (*scene, error) {
	result := &scene{}
	target := &result.Sites

	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// The first blank line after some sites starts the queries
		if line == "" {
			if len(result.Sites) > 0 {
				target = &result.Queries
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		*target = append(*target, point)
	}
	return result, errors.Wrap(scanner.Err(), "reading scene")
}

func parsePoint(line string) (Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Point{}, errors.Wrap(err, "parsing x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Point{}, errors.Wrap(err, "parsing y")
	}
	return Point{X: x, Y: y}, nil
}
