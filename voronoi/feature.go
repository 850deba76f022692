package voronoi

import (
	"fmt"

	"github.com/osuushi/dtvoronoi/advanced"
)

// Unbounded marks the missing end of a Voronoi edge that runs off to infinity.
const Unbounded = -1

// Vertex is a Voronoi vertex: the shared circumcentre of one or more dual faces.
// Several faces only share a vertex when their sites are cocircular, in which
// case the dual edges between them are degenerate.
type Vertex struct {
	ID     int
	Center Point
	// The dual faces merged into this vertex, lowest handle first
	Faces []advanced.FaceHandle
	// Every site on the circle, by vertex handle
	Sites []advanced.FiniteVertex
}

func (v Vertex) String() string {
	return fmt.Sprintf("V%d(%g, %g)", v.ID, v.Center.X, v.Center.Y)
}

// Edge is a Voronoi edge of non-zero length, on the bisector of two sites.
type Edge struct {
	ID   int
	Dual advanced.Edge
	// The sites on either side, in the order the dual edge runs
	Sites [2]advanced.FiniteVertex
	// The Voronoi vertex dual to the edge's own face, and to the face across it.
	// Either may be Unbounded, and in dimension 1 both are.
	Ends [2]int
}

func (e Edge) IsBounded() bool {
	return e.Ends[0] != Unbounded && e.Ends[1] != Unbounded
}

func (e Edge) String() string {
	return fmt.Sprintf("E%d[%v | %v]", e.ID, e.Sites[0], e.Sites[1])
}

// Feature is the part of the diagram a located point lies on.
type Feature interface {
	fmt.Stringer

	// Dummy method restricting the union to the types in this file.
	featureTypeHint()
}

func (Cell) featureTypeHint()          {}
func (EdgeFeature) featureTypeHint()   {}
func (VertexFeature) featureTypeHint() {}

// Cell is the interior of a Voronoi face, owned by a single site.
type Cell struct {
	Site advanced.FiniteVertex
}

type EdgeFeature struct {
	Edge Edge
}

type VertexFeature struct {
	Vertex Vertex
}

func (c Cell) String() string {
	return fmt.Sprintf("VORONOI FACE of %v", c.Site)
}

func (e EdgeFeature) String() string {
	return fmt.Sprintf("VORONOI EDGE between %v and %v", e.Edge.Sites[0], e.Edge.Sites[1])
}

func (v VertexFeature) String() string {
	return fmt.Sprintf("VORONOI VERTEX at (%g, %g)", v.Vertex.Center.X, v.Vertex.Center.Y)
}
