package triangulation

import (
	"github.com/osuushi/dtvoronoi/advanced"
	"github.com/osuushi/dtvoronoi/kernel"
)

// This file implements advanced.DualGraph, plus a few accessors used for
// iterating the whole triangulation.

var _ advanced.DualGraph = (*Triangulation)(nil)

func (t *Triangulation) Dimension() int {
	return t.dimension
}

func (t *Triangulation) NumberOfVertices() int {
	return len(t.sites) - 1
}

func (t *Triangulation) Vertex(h advanced.VertexHandle) advanced.Vertex {
	return t.vertex(int(h))
}

func (t *Triangulation) vertex(h int) advanced.Vertex {
	switch h {
	case none:
		return nil
	case infinite:
		return advanced.InfiniteVertex{Ref: infinite}
	}
	return t.finiteVertex(h)
}

func (t *Triangulation) finiteVertex(h int) advanced.FiniteVertex {
	return advanced.FiniteVertex{Ref: advanced.VertexHandle(h), Site: t.sites[h]}
}

func (t *Triangulation) Face(f advanced.FaceHandle) advanced.Face {
	raw := &t.faces[f]
	return advanced.Face{
		Ref:      f,
		Vertices: [3]advanced.Vertex{t.vertex(raw.v[0]), t.vertex(raw.v[1]), t.vertex(raw.v[2])},
	}
}

// NearestVertex walks greedily towards p, moving to any neighbour that is
// strictly nearer. In a Delaunay triangulation a vertex with no nearer
// neighbour is a nearest vertex overall, and since the distance strictly
// decreases at every step, the walk terminates.
func (t *Triangulation) NearestVertex(p Point) advanced.FiniteVertex {
	if t.dimension < 0 {
		fatalf("nearest vertex query on an empty triangulation")
	}

	current := t.firstFiniteVertex()
	for moved := true; moved; {
		moved = false
		for _, neighbor := range t.neighbors(current) {
			if neighbor == infinite {
				continue
			}
			if kernel.CompareDistance(p, t.sites[neighbor], t.sites[current]) == kernel.Smaller {
				current = neighbor
				moved = true
				break
			}
		}
	}
	return t.finiteVertex(current)
}

func (t *Triangulation) firstFiniteVertex() int {
	return 1
}

// The vertices adjacent to v, in counterclockwise order (or along the chain in
// dimension 1).
func (t *Triangulation) neighbors(v int) []int {
	switch t.dimension {
	case 1:
		var result []int
		for _, f := range t.incidentFaces(v) {
			other := t.faces[f].v[0]
			if other == v {
				other = t.faces[f].v[1]
			}
			result = append(result, other)
		}
		return result
	case 2:
		var result []int
		for _, f := range t.incidentFaces(v) {
			raw := &t.faces[f]
			result = append(result, raw.v[advanced.CCW(raw.index(v))])
		}
		return result
	}
	return nil
}

// Faces around v, counterclockwise. Going counterclockwise around v, the face
// after f is the one across the edge opposite f's counterclockwise corner.
// The rotation can visit at most every face once, so that bound is checked
// instead of trusting the neighbour links to close the loop.
func (t *Triangulation) incidentFaces(v int) []int {
	start := t.vertexFace[v]
	switch t.dimension {
	case 1:
		// Each vertex is v[0] of one segment and v[1] of the previous one
		return []int{t.faces[start].n[1], start}
	case 2:
		var result []int
		f := start
		for range t.faces {
			result = append(result, f)
			raw := &t.faces[f]
			i := raw.index(v)
			if i == none {
				fatalf("face %d is linked around vertex %d but does not contain it", f, v)
			}
			f = raw.n[advanced.CCW(i)]
			if f == start {
				return result
			}
		}
		fatalf("faces around vertex %d do not close into a cycle", v)
	}
	return nil
}

func (t *Triangulation) IncidentFaces(v advanced.VertexHandle) []advanced.Face {
	var result []advanced.Face
	for _, f := range t.incidentFaces(int(v)) {
		result = append(result, t.Face(advanced.FaceHandle(f)))
	}
	return result
}

func (t *Triangulation) IncidentEdges(v advanced.VertexHandle) []advanced.Edge {
	var result []advanced.Edge
	for _, f := range t.incidentFaces(int(v)) {
		switch t.dimension {
		case 1:
			result = append(result, advanced.Edge{Face: advanced.FaceHandle(f), Index: 2})
		case 2:
			// The edge from v to the counterclockwise corner
			i := t.faces[f].index(int(v))
			result = append(result, advanced.Edge{Face: advanced.FaceHandle(f), Index: advanced.CW(i)})
		}
	}
	return result
}

// The neighbouring face across (f, i), and the index of the same edge within
// it. The index is found by looking for the vertex that is not on the shared
// edge.
func (t *Triangulation) mirror(f, i int) (int, int) {
	raw := &t.faces[f]
	neighbor := raw.n[i]
	a, b := raw.v[advanced.CCW(i)], raw.v[advanced.CW(i)]
	for j, w := range t.faces[neighbor].v {
		if w != a && w != b {
			return neighbor, j
		}
	}
	fatalf("face %d does not share edge %d-%d with face %d", neighbor, a, b, f)
	return none, none
}

func (t *Triangulation) MirrorVertex(f advanced.FaceHandle, i int) advanced.Vertex {
	if t.dimension != 2 {
		fatalf("mirror vertex is only defined in dimension 2")
	}
	neighbor, j := t.mirror(int(f), i)
	return t.vertex(t.faces[neighbor].v[j])
}

func (t *Triangulation) MirrorEdge(e advanced.Edge) advanced.Edge {
	if t.dimension != 2 {
		// A segment is its own mirror
		return e
	}
	neighbor, j := t.mirror(int(e.Face), e.Index)
	return advanced.Edge{Face: advanced.FaceHandle(neighbor), Index: j}
}

func (t *Triangulation) FiniteVertices() []advanced.FiniteVertex {
	result := make([]advanced.FiniteVertex, 0, t.NumberOfVertices())
	for h := 1; h < len(t.sites); h++ {
		result = append(result, t.finiteVertex(h))
	}
	return result
}

// Faces of the triangulation that don't touch the infinite vertex. Only
// dimension 2 triangulations have any.
func (t *Triangulation) FiniteFaces() []advanced.Face {
	if t.dimension != 2 {
		return nil
	}
	var result []advanced.Face
	for f := range t.faces {
		if t.faces[f].index(infinite) == none {
			result = append(result, t.Face(advanced.FaceHandle(f)))
		}
	}
	return result
}

// AllEdges lists every edge once, including those to the infinite vertex.
func (t *Triangulation) AllEdges() []advanced.Edge {
	var result []advanced.Edge
	switch t.dimension {
	case 1:
		for f := range t.faces {
			result = append(result, advanced.Edge{Face: advanced.FaceHandle(f), Index: 2})
		}
	case 2:
		for f := range t.faces {
			for i := 0; i < 3; i++ {
				// Each edge is seen from two faces; keep the lower numbered one
				if f < t.faces[f].n[i] {
					result = append(result, advanced.Edge{Face: advanced.FaceHandle(f), Index: i})
				}
			}
		}
	}
	return result
}

func (t *Triangulation) FiniteEdges() []advanced.Edge {
	var result []advanced.Edge
	for _, e := range t.AllEdges() {
		if !advanced.IsInfiniteEdge(t, e) {
			result = append(result, e)
		}
	}
	return result
}

// EdgeIterator walks a snapshot of the edges. It is positioned before the
// first edge until Next is called.
type EdgeIterator struct {
	edges []advanced.Edge
	next  int
}

func (t *Triangulation) Edges() *EdgeIterator {
	return &EdgeIterator{edges: t.AllEdges()}
}

func (t *Triangulation) FiniteEdgeIterator() *EdgeIterator {
	return &EdgeIterator{edges: t.FiniteEdges()}
}

func (iter *EdgeIterator) Next() bool {
	if iter.next >= len(iter.edges) {
		return false
	}
	iter.next++
	return true
}

func (iter *EdgeIterator) Edge() advanced.Edge {
	if iter.next == 0 {
		fatalf("edge iterator read before Next")
	}
	return iter.edges[iter.next-1]
}

var _ advanced.EdgeCursor = (*EdgeIterator)(nil)
