// Package triangulation maintains a Delaunay triangulation of a set of sites,
// closed by a vertex at infinity, and exposes it as an advanced.DualGraph.
//
// Storage follows the usual triangle based layout: every face knows its three
// vertices in counterclockwise order, and the neighbour opposite each of them.
// Vertex 0 is the vertex at infinity. Every hull edge is shared with an
// infinite face, so there are no "outside" special cases when walking around a
// vertex.
//
// While every site is on one line the triangulation has dimension 1, and the
// faces are instead the segments of the chain of sites, closed into a cycle by
// two segments to the infinite vertex.
package triangulation

import (
	"sort"

	"github.com/osuushi/dtvoronoi/advanced"
	"github.com/osuushi/dtvoronoi/kernel"
	"github.com/pkg/errors"
)

type Point = advanced.Point

var ErrInvalidSite = errors.New("site coordinates must be finite")

// Handle of the vertex at infinity.
const infinite = 0

// Marks an unused vertex slot (the third vertex of a segment) or a missing
// neighbour.
const none = -1

type face struct {
	v [3]int
	// n[i] is the neighbour across the edge opposite v[i]
	n [3]int
}

func (f *face) index(v int) int {
	for i, w := range f.v {
		if w == v {
			return i
		}
	}
	return none
}

type Triangulation struct {
	dimension int
	// Indexed by vertex handle. sites[infinite] is unused.
	sites []Point
	// Exact duplicate detection
	handles map[Point]int
	faces   []face
	// Some face incident to each vertex
	vertexFace []int
	// While dimension < 2, the finite vertices in lexicographic order
	chain []int
}

// New triangulates the given sites. Duplicate sites are merged.
func New(sites []Point) (*Triangulation, error) {
	t := Empty()
	for _, site := range sites {
		if _, err := t.Insert(site); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func Empty() *Triangulation {
	return &Triangulation{
		dimension:  -1,
		sites:      []Point{{}},
		handles:    make(map[Point]int),
		vertexFace: []int{none},
	}
}

// Insert adds a site, keeping the triangulation Delaunay. If the site is
// already present, its existing vertex is returned.
func (t *Triangulation) Insert(p Point) (advanced.FiniteVertex, error) {
	if !kernel.IsFinite(p) {
		return advanced.FiniteVertex{}, errors.Wrapf(ErrInvalidSite, "cannot insert (%g, %g)", p.X, p.Y)
	}
	if h, ok := t.handles[p]; ok {
		return t.finiteVertex(h), nil
	}

	h := len(t.sites)
	t.sites = append(t.sites, p)
	t.vertexFace = append(t.vertexFace, none)
	t.handles[p] = h

	switch t.dimension {
	case -1:
		t.dimension = 0
		t.chain = []int{h}
	case 0:
		t.dimension = 1
		t.insertIntoChain(h)
	case 1:
		first, last := t.sites[t.chain[0]], t.sites[t.chain[len(t.chain)-1]]
		if kernel.Orient(first, last, p) == kernel.Collinear {
			t.insertIntoChain(h)
		} else {
			t.raiseDimension(h)
		}
	case 2:
		t.insertInPlane(h)
	}
	return t.finiteVertex(h), nil
}

// Lexicographic order. Along any line this is one of the two directions of
// travel, so it keeps a collinear chain sorted.
func lexLess(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func (t *Triangulation) insertIntoChain(h int) {
	p := t.sites[h]
	at := sort.Search(len(t.chain), func(i int) bool {
		return lexLess(p, t.sites[t.chain[i]])
	})
	t.chain = append(t.chain, 0)
	copy(t.chain[at+1:], t.chain[at:])
	t.chain[at] = h
	t.rebuildChain()
}

// Lay out the chain as a cycle of segments. Segment k runs from v[0] to v[1],
// and the v[1] of each segment is the v[0] of the next, passing through the
// infinite vertex once.
func (t *Triangulation) rebuildChain() {
	t.faces = t.faces[:0]
	cycle := append([]int{infinite}, t.chain...)
	for i := range cycle {
		next := cycle[advanced.CircularIndex(i+1, len(cycle))]
		t.faces = append(t.faces, face{v: [3]int{cycle[i], next, none}, n: [3]int{none, none, none}})
	}
	// As for triangles, n[i] is opposite v[i]: n[0] is the next segment, n[1]
	// the previous one.
	for i := range t.faces {
		t.faces[i].n[0] = advanced.CircularIndex(i+1, len(t.faces))
		t.faces[i].n[1] = advanced.CircularIndex(i-1, len(t.faces))
		t.vertexFace[t.faces[i].v[0]] = i
	}
}

// The first site off the line. Every segment of the chain becomes the base of
// a triangle with apex h. That triangulation is already Delaunay: a circle
// through two consecutive chain sites crosses the line only between them, so
// it cannot contain any other chain site.
func (t *Triangulation) raiseDimension(h int) {
	chain := append([]int(nil), t.chain...)
	p := t.sites[h]
	if kernel.Orient(t.sites[chain[0]], t.sites[chain[len(chain)-1]], p) == kernel.Clockwise {
		for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
			chain[i], chain[j] = chain[j], chain[i]
		}
	}
	// h is now to the left of the chain's direction of travel

	var faces []face
	for i := 0; i+1 < len(chain); i++ {
		faces = append(faces,
			face{v: [3]int{chain[i], chain[i+1], h}},
			face{v: [3]int{chain[i+1], chain[i], infinite}},
		)
	}
	last := chain[len(chain)-1]
	faces = append(faces,
		face{v: [3]int{chain[0], h, infinite}},
		face{v: [3]int{h, last, infinite}},
	)

	t.dimension = 2
	t.chain = nil
	t.link(faces)
}

// Bowyer-Watson insertion: remove every face in conflict with the new site,
// and connect the site to the boundary of the resulting cavity.
func (t *Triangulation) insertInPlane(h int) {
	p := t.sites[h]

	inCavity := make(map[int]bool)
	for f := range t.faces {
		if t.conflicts(&t.faces[f], p) {
			inCavity[f] = true
		}
	}
	if len(inCavity) == 0 {
		// A new site is always in some triangle's circumcircle, or beyond some
		// hull edge.
		fatalf("no face conflicts with site %d (%g, %g)", h, p.X, p.Y)
	}

	faces := make([]face, 0, len(t.faces)+2)
	for f := range t.faces {
		if !inCavity[f] {
			faces = append(faces, face{v: t.faces[f].v})
		}
	}
	for f := range t.faces {
		if !inCavity[f] {
			continue
		}
		current := &t.faces[f]
		for i := 0; i < 3; i++ {
			if inCavity[current.n[i]] {
				continue
			}
			// The cavity is star shaped from p, so p sees the boundary edge from
			// the inside and the new triangle is counterclockwise.
			faces = append(faces, face{v: [3]int{current.v[advanced.CCW(i)], current.v[advanced.CW(i)], h}})
		}
	}

	t.link(faces)
}

// A finite face is in conflict when p is strictly inside its circumcircle. An
// infinite face is in conflict when p is strictly outside its hull edge, or in
// the interior of the hull edge itself.
func (t *Triangulation) conflicts(f *face, p Point) bool {
	inf := f.index(infinite)
	if inf == none {
		a, b, c := t.sites[f.v[0]], t.sites[f.v[1]], t.sites[f.v[2]]
		return kernel.SideOfOrientedCircle(a, b, c, p) == kernel.OnPositiveSide
	}

	// The triangulation is to the right of a -> b
	a, b := t.sites[f.v[advanced.CCW(inf)]], t.sites[f.v[advanced.CW(inf)]]
	switch kernel.Orient(a, b, p) {
	case kernel.CounterClockwise:
		return true
	case kernel.Collinear:
		return (lexLess(a, p) && lexLess(p, b)) || (lexLess(b, p) && lexLess(p, a))
	}
	return false
}

// Replace the face list, and recompute all neighbour relationships from
// scratch. This is quadratic over a full build, which is fine for a reference
// dual graph.
func (t *Triangulation) link(faces []face) {
	type directedEdge struct{ from, to int }
	owners := make(map[directedEdge]int, 3*len(faces))
	for f := range faces {
		for i := 0; i < 3; i++ {
			edge := directedEdge{faces[f].v[advanced.CCW(i)], faces[f].v[advanced.CW(i)]}
			if _, ok := owners[edge]; ok {
				fatalf("directed edge %d -> %d appears in two faces", edge.from, edge.to)
			}
			owners[edge] = f
		}
	}

	for f := range faces {
		for i := 0; i < 3; i++ {
			reverse := directedEdge{faces[f].v[advanced.CW(i)], faces[f].v[advanced.CCW(i)]}
			neighbor, ok := owners[reverse]
			if !ok {
				fatalf("edge %d -> %d has no neighbouring face", reverse.to, reverse.from)
			}
			faces[f].n[i] = neighbor
		}
		for _, v := range faces[f].v {
			t.vertexFace[v] = f
		}
	}
	t.faces = faces
}
