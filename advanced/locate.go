package advanced

import (
	"github.com/osuushi/dtvoronoi/kernel"
	"github.com/pkg/errors"
)

// Point location against a Voronoi diagram, answered entirely in terms of its
// dual Delaunay graph. A query point is either strictly inside the Voronoi cell
// of its nearest site, on a Voronoi edge (equidistant from exactly the two
// sites of a dual edge), or on a Voronoi vertex (equidistant from the three
// sites of a dual face). We never construct any Voronoi coordinates; all ties
// are decided by the exact distance predicate.

type LocateKind int

const (
	// The query is inside the Voronoi cell dual to a vertex.
	LocatedOnVertex LocateKind = iota
	// The query is on the Voronoi edge dual to an edge.
	LocatedOnEdge
	// The query is on the Voronoi vertex dual to a face.
	LocatedOnFace
)

func (k LocateKind) String() string {
	switch k {
	case LocatedOnVertex:
		return "VERTEX"
	case LocatedOnEdge:
		return "EDGE"
	case LocatedOnFace:
		return "FACE"
	}
	return "INVALID_LOCATE_KIND"
}

// LocateResult is a union of the three dual features a query can land on.
type LocateResult interface {
	Kind() LocateKind

	// Dummy method restricting the union to the types in this file.
	locateResultTypeHint()
}

func (VertexResult) locateResultTypeHint() {}
func (EdgeResult) locateResultTypeHint()   {}
func (FaceResult) locateResultTypeHint()   {}

type VertexResult struct {
	Vertex FiniteVertex
}

type EdgeResult struct {
	Edge Edge
}

type FaceResult struct {
	Face Face
}

func (VertexResult) Kind() LocateKind { return LocatedOnVertex }
func (EdgeResult) Kind() LocateKind   { return LocatedOnEdge }
func (FaceResult) Kind() LocateKind   { return LocatedOnFace }

type Locator struct {
	distance DistanceComparer
}

func NewLocator(distance DistanceComparer) *Locator {
	return &Locator{distance: distance}
}

// Locate classifies p against the Voronoi diagram of the graph's sites. The
// only error is for bad input. A graph whose nearest vertex turns out not to be
// nearest causes an InvariantViolation panic.
func (l *Locator) Locate(g DualGraph, p Point) (LocateResult, error) {
	if !kernel.IsFinite(p) {
		return nil, errors.Wrapf(ErrInvalidPoint, "cannot locate (%g, %g)", p.X, p.Y)
	}

	dimension := g.Dimension()
	switch dimension {
	case -1:
		return nil, ErrEmptyGraph
	case 0:
		// The whole plane is one cell
		return VertexResult{Vertex: g.NearestVertex(p)}, nil
	case 1:
		return l.locateOnLine(g, p), nil
	case 2:
		return l.locateInPlane(g, p), nil
	}
	return nil, errors.Errorf("unsupported dual graph dimension %d", dimension)
}

// Compare the distance from p to a neighbour of the nearest vertex with the
// distance to the nearest vertex itself. The vertex at infinity is always
// farther.
func (l *Locator) compareToNearest(p Point, nearest FiniteVertex, neighbor Vertex) kernel.Comparison {
	switch neighbor := neighbor.(type) {
	case InfiniteVertex:
		return kernel.Larger
	case FiniteVertex:
		c := l.distance.CompareDistance(p, neighbor.Site, nearest.Site)
		if c == kernel.Smaller {
			fatalf("%v is nearer to (%g, %g) than the nearest vertex %v", neighbor, p.X, p.Y, nearest)
		}
		return c
	}
	fatalf("unknown vertex type %T", neighbor)
	return kernel.Larger
}

// All the sites are on one line, so the Voronoi edges are parallel lines, and
// there are no Voronoi vertices.
func (l *Locator) locateOnLine(g DualGraph, p Point) LocateResult {
	nearest := g.NearestVertex(p)

	for _, edge := range g.IncidentEdges(nearest.Ref) {
		a, b := EdgeVertices(g, edge)
		var other Vertex
		switch nearest.Ref {
		case a.Handle():
			other = b
		case b.Handle():
			other = a
		default:
			fatalf("incident edge %v does not touch vertex %v", edge, nearest)
		}

		if l.compareToNearest(p, nearest, other) == kernel.Equal {
			return EdgeResult{Edge: edge}
		}
	}

	return VertexResult{Vertex: nearest}
}

// How the two other corners of an incident face compare with the nearest
// vertex. ccw is the corner counterclockwise from the nearest vertex.
type cornerComparison struct {
	face    Face
	index   int
	ccw, cw kernel.Comparison
}

func (l *Locator) locateInPlane(g DualGraph, p Point) LocateResult {
	nearest := g.NearestVertex(p)
	faces := g.IncidentFaces(nearest.Ref)

	comparisons := make([]cornerComparison, len(faces))
	for n, face := range faces {
		i := face.Index(nearest.Ref)
		comparisons[n] = cornerComparison{
			face:  face,
			index: i,
			ccw:   l.compareToNearest(p, nearest, face.Vertex(CCW(i))),
			cw:    l.compareToNearest(p, nearest, face.Vertex(CW(i))),
		}
	}

	// First check if the point is on a Voronoi vertex. If four or more sites are
	// cocircular around p, several faces qualify, and any of them will do.
	for _, c := range comparisons {
		if c.ccw == kernel.Equal && c.cw == kernel.Equal {
			return FaceResult{Face: c.face}
		}
	}

	// Now check if it is on a Voronoi edge. The edge we want joins the nearest
	// vertex to the equidistant corner, so it is the one opposite the other
	// corner.
	for _, c := range comparisons {
		switch {
		case c.ccw == kernel.Equal && c.cw == kernel.Equal:
			fatalf("face %v is equidistant but was not found on the vertex pass", c.face)
		case c.ccw == kernel.Equal:
			return EdgeResult{Edge: Edge{Face: c.face.Ref, Index: CW(c.index)}}
		case c.cw == kernel.Equal:
			return EdgeResult{Edge: Edge{Face: c.face.Ref, Index: CCW(c.index)}}
		}
	}

	// Strictly inside the nearest vertex's cell
	return VertexResult{Vertex: nearest}
}
