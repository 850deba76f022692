package advanced

import "github.com/osuushi/dtvoronoi/kernel"

// A Voronoi edge has zero length exactly when the two Delaunay triangles on
// either side of its dual edge share a circumcircle, because the endpoints of
// the Voronoi edge are those circumcentres. Such edges are collapsed when the
// diagram is assembled, so a false answer in either direction corrupts its
// topology. The in-circle test is therefore always exact.

type EdgeDegeneracyTester struct {
	circle CircleOrienter
}

func NewEdgeDegeneracyTester(circle CircleOrienter) *EdgeDegeneracyTester {
	return &EdgeDegeneracyTester{circle: circle}
}

// IsDegenerate reports whether the Voronoi edge dual to edge (f, i) has zero
// length. Edges on the outer boundary, and every edge of a graph of dimension
// less than 2, are never degenerate.
func (t *EdgeDegeneracyTester) IsDegenerate(g DualGraph, f FaceHandle, i int) bool {
	if g.Dimension() < 2 {
		return false
	}

	edge := Edge{Face: f, Index: i}
	if IsInfiniteEdge(g, edge) {
		return false
	}

	face := g.Face(f)
	p3, ok := siteOf(face.Vertex(i))
	if !ok {
		return false
	}
	p4, ok := siteOf(g.MirrorVertex(f, i))
	if !ok {
		return false
	}

	// Both endpoints are finite, checked above
	p1, _ := siteOf(face.Vertex(CCW(i)))
	p2, _ := siteOf(face.Vertex(CW(i)))

	return t.circle.SideOfOrientedCircle(p1, p2, p3, p4) == kernel.OnOrientedBoundary
}

func (t *EdgeDegeneracyTester) IsDegenerateEdge(g DualGraph, e Edge) bool {
	return t.IsDegenerate(g, e.Face, e.Index)
}

// IsDegenerateAt tests whatever edge the cursor is positioned on.
func (t *EdgeDegeneracyTester) IsDegenerateAt(g DualGraph, cursor EdgeCursor) bool {
	return t.IsDegenerateEdge(g, cursor.Edge())
}

func siteOf(v Vertex) (Point, bool) {
	switch v := v.(type) {
	case FiniteVertex:
		return v.Site, true
	case InfiniteVertex:
		return Point{}, false
	}
	fatalf("unknown vertex type %T", v)
	return Point{}, false
}
