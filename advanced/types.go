package advanced

import (
	"fmt"

	"github.com/osuushi/dtvoronoi/kernel"
)

type Point = kernel.Point

// Handles are plain indexes into whatever storage the dual graph uses. They
// are only meaningful for the graph that produced them, and only until that
// graph is next mutated.
type VertexHandle int
type FaceHandle int

// Vertex is a union of the two kinds of vertex found in a dual graph: vertices
// that own a site, and the single sentinel vertex at infinity which closes the
// triangulation combinatorially. Code that needs the site must type switch, so
// the infinite case cannot be forgotten.
type Vertex interface {
	Handle() VertexHandle

	// Dummy method restricting the union to the types in this file.
	vertexTypeHint()
}

func (FiniteVertex) vertexTypeHint()   {}
func (InfiniteVertex) vertexTypeHint() {}

type FiniteVertex struct {
	Ref  VertexHandle
	Site Point
}

func (v FiniteVertex) Handle() VertexHandle { return v.Ref }

func (v FiniteVertex) String() string {
	return fmt.Sprintf("v%d(%g, %g)", v.Ref, v.Site.X, v.Site.Y)
}

type InfiniteVertex struct {
	Ref VertexHandle
}

func (v InfiniteVertex) Handle() VertexHandle { return v.Ref }

func (v InfiniteVertex) String() string {
	return fmt.Sprintf("v%d(∞)", v.Ref)
}

func IsInfinite(v Vertex) bool {
	_, ok := v.(InfiniteVertex)
	return ok
}

// Face is a snapshot of a dual graph face. In dimension 2 it is a triangle
// with its vertices in counterclockwise order. In dimension 1 faces are the
// segments of the collinear chain, and the third vertex is nil.
type Face struct {
	Ref      FaceHandle
	Vertices [3]Vertex
}

func (f Face) Vertex(i int) Vertex {
	return f.Vertices[i]
}

// Index gives the position of the vertex within the face. Asking for a vertex
// that isn't on the face is a bug in the caller.
func (f Face) Index(v VertexHandle) int {
	for i, vertex := range f.Vertices {
		if vertex != nil && vertex.Handle() == v {
			return i
		}
	}
	fatalf("vertex %d is not on face %d", v, f.Ref)
	return -1
}

func (f Face) HasVertex(v VertexHandle) bool {
	for _, vertex := range f.Vertices {
		if vertex != nil && vertex.Handle() == v {
			return true
		}
	}
	return false
}

func (f Face) IsInfinite() bool {
	for _, vertex := range f.Vertices {
		if vertex != nil && IsInfinite(vertex) {
			return true
		}
	}
	return false
}

func (f Face) String() string {
	return fmt.Sprintf("f%d%v", f.Ref, f.Vertices)
}

// Edge names the edge of a face opposite one of its vertices. In dimension 1
// the index is always 2, so the edge is the whole segment.
type Edge struct {
	Face  FaceHandle
	Index int
}

func (e Edge) String() string {
	return fmt.Sprintf("e(f%d, %d)", e.Face, e.Index)
}

// CCW and CW give the next vertex index counterclockwise and clockwise within a
// triangle.
func CCW(i int) int {
	return CircularIndex(i+1, 3)
}

func CW(i int) int {
	return CircularIndex(i+2, 3)
}

// We often want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
