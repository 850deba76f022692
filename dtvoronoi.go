// Point location and degeneracy detection for Voronoi diagrams, worked out
// entirely on the dual Delaunay triangulation with exact predicates.
//
// This package wires the exact kernel into the locator and the degeneracy
// tester. Bring your own dual graph and use package advanced directly, or let
// package triangulation build one from a set of sites.
package dtvoronoi

import (
	"github.com/osuushi/dtvoronoi/advanced"
	"github.com/osuushi/dtvoronoi/kernel"
	"github.com/osuushi/dtvoronoi/triangulation"
	"github.com/osuushi/dtvoronoi/voronoi"
)

type Point = advanced.Point
type DualGraph = advanced.DualGraph
type LocateResult = advanced.LocateResult
type Diagram = voronoi.Diagram

var (
	locator = advanced.NewLocator(kernel.Exact{})
	tester  = advanced.NewEdgeDegeneracyTester(kernel.Exact{})
)

// Triangulate builds the Delaunay triangulation of the sites. Duplicate sites
// are merged.
func Triangulate(sites ...Point) (*triangulation.Triangulation, error) {
	return triangulation.New(sites)
}

// Locate finds the dual graph feature whose Voronoi feature contains p: a
// vertex for the interior of its cell, an edge for its Voronoi edge, or a face
// for its Voronoi vertex.
func Locate(g DualGraph, p Point) (LocateResult, error) {
	return locator.Locate(g, p)
}

// IsDegenerate reports whether the Voronoi edge dual to the edge of face f
// opposite its vertex i has zero length.
func IsDegenerate(g DualGraph, f advanced.FaceHandle, i int) bool {
	return tester.IsDegenerate(g, f, i)
}

func NewDiagram(sites []Point, opts ...voronoi.Option) (*Diagram, error) {
	return voronoi.New(sites, opts...)
}
