package advanced

import "github.com/osuushi/dtvoronoi/kernel"

// DualGraph is the read only view of a Delaunay triangulation that the
// locator and the degeneracy tester work against. Implementations are owned
// by the caller; nothing here holds on to a graph after a call returns.
type DualGraph interface {
	// -1 when empty, 0 for a single site, 1 when every site is on one line,
	// and 2 otherwise.
	Dimension() int

	// NearestVertex returns a vertex whose site is nearest to p. Only called
	// when the dimension is at least 0.
	NearestVertex(p Point) FiniteVertex

	// The edges and faces around a vertex, in counterclockwise order. Each
	// feature appears exactly once.
	IncidentEdges(v VertexHandle) []Edge
	IncidentFaces(v VertexHandle) []Face

	Face(f FaceHandle) Face

	// MirrorVertex is the vertex of the neighbouring face across edge (f, i)
	// which is not on that edge. Only meaningful in dimension 2.
	MirrorVertex(f FaceHandle, i int) Vertex

	// MirrorEdge is the same edge as seen from the neighbouring face.
	MirrorEdge(e Edge) Edge
}

// DistanceComparer compares the distance from p to q with the distance from p
// to r. The answer must be exact.
type DistanceComparer interface {
	CompareDistance(p, q, r Point) kernel.Comparison
}

// CircleOrienter locates t relative to the circle through p, q and r, oriented
// by their order. The answer must be exact.
type CircleOrienter interface {
	SideOfOrientedCircle(p, q, r, t Point) kernel.OrientedSide
}

// EdgeCursor is anything positioned on an edge, such as an edge iterator.
type EdgeCursor interface {
	Edge() Edge
}

// EdgeVertices returns the two endpoints of an edge, in the order they appear
// going counterclockwise around its face.
func EdgeVertices(g DualGraph, e Edge) (Vertex, Vertex) {
	f := g.Face(e.Face)
	return f.Vertex(CCW(e.Index)), f.Vertex(CW(e.Index))
}

// IsInfiniteEdge reports whether either endpoint of the edge is the infinite
// vertex. These are the edges on the outer boundary of the triangulation.
func IsInfiniteEdge(g DualGraph, e Edge) bool {
	a, b := EdgeVertices(g, e)
	return IsInfinite(a) || IsInfinite(b)
}
