// Package voronoi presents a Delaunay triangulation as its dual Voronoi
// diagram. Voronoi vertices are the circumcentres of dual faces, with faces
// sharing a circumcircle merged into one vertex; Voronoi edges are the dual
// edges whose Voronoi edge has non-zero length. Point location and the
// degeneracy decisions are delegated to package advanced, with exact
// predicates, so the topology never depends on floating point rounding. Only
// the vertex coordinates are approximate.
//
// A Diagram is immutable once built and safe for concurrent queries.
package voronoi

import (
	"sort"

	"github.com/osuushi/dtvoronoi/advanced"
	"github.com/osuushi/dtvoronoi/kernel"
	"github.com/osuushi/dtvoronoi/triangulation"
	"go.uber.org/zap"
)

type Point = advanced.Point

type Diagram struct {
	graph   *triangulation.Triangulation
	locator *advanced.Locator
	tester  *advanced.EdgeDegeneracyTester
	logger  *zap.Logger

	vertices   []Vertex
	faceVertex map[advanced.FaceHandle]int
	edges      []Edge
	// Indexed by both the dual edge and its mirror
	edgeIndex map[advanced.Edge]int
}

type Option func(*Diagram)

// WithLogger makes the diagram log construction details at debug level. By
// default nothing is logged.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Diagram) {
		d.logger = logger
	}
}

// New triangulates the sites and builds the diagram over them.
func New(sites []Point, opts ...Option) (*Diagram, error) {
	graph, err := triangulation.New(sites)
	if err != nil {
		return nil, err
	}
	return FromTriangulation(graph, opts...), nil
}

// FromTriangulation builds a diagram over an existing triangulation. The
// triangulation must not be modified afterwards.
func FromTriangulation(graph *triangulation.Triangulation, opts ...Option) *Diagram {
	d := &Diagram{
		graph:      graph,
		locator:    advanced.NewLocator(kernel.Exact{}),
		tester:     advanced.NewEdgeDegeneracyTester(kernel.Exact{}),
		logger:     zap.NewNop(),
		faceVertex: make(map[advanced.FaceHandle]int),
		edgeIndex:  make(map[advanced.Edge]int),
	}
	for _, opt := range opts {
		opt(d)
	}

	degenerate := d.buildVertices()
	d.buildEdges()

	d.logger.Debug("built voronoi diagram",
		zap.Int("dimension", graph.Dimension()),
		zap.Int("sites", graph.NumberOfVertices()),
		zap.Int("vertices", len(d.vertices)),
		zap.Int("edges", len(d.edges)),
		zap.Int("degenerateEdges", degenerate),
	)
	return d
}

// Group the finite faces across degenerate edges, and make a vertex of each
// group. Returns the number of degenerate edges.
func (d *Diagram) buildVertices() int {
	faces := d.graph.FiniteFaces()
	if len(faces) == 0 {
		return 0
	}

	sets := newFaceSets()
	for _, f := range faces {
		sets.add(f.Ref)
	}
	degenerate := 0
	for _, e := range d.graph.FiniteEdges() {
		if !d.tester.IsDegenerateEdge(d.graph, e) {
			continue
		}
		degenerate++
		mirror := d.graph.MirrorEdge(e)
		d.logger.Debug("merging faces across degenerate edge",
			zap.Stringer("edge", e),
			zap.Stringer("face", d.graph.Face(e.Face)),
			zap.Stringer("mirror", d.graph.Face(mirror.Face)),
		)
		sets.union(e.Face, mirror.Face)
	}

	// Faces come out in handle order, so each group's root is seen first
	groups := make(map[advanced.FaceHandle]int)
	for _, f := range faces {
		root := sets.find(f.Ref)
		id, ok := groups[root]
		if !ok {
			id = len(d.vertices)
			groups[root] = id
			d.vertices = append(d.vertices, Vertex{ID: id, Center: circumcenter(f)})
		}
		d.faceVertex[f.Ref] = id
		d.vertices[id].Faces = append(d.vertices[id].Faces, f.Ref)
		d.vertices[id].Sites = mergeSites(d.vertices[id].Sites, f)
	}
	return degenerate
}

func (d *Diagram) buildEdges() {
	for _, e := range d.graph.FiniteEdges() {
		if d.tester.IsDegenerateEdge(d.graph, e) {
			continue
		}
		a, b := advanced.EdgeVertices(d.graph, e)
		mirror := d.graph.MirrorEdge(e)
		edge := Edge{
			ID:    len(d.edges),
			Dual:  e,
			Sites: [2]advanced.FiniteVertex{a.(advanced.FiniteVertex), b.(advanced.FiniteVertex)},
			Ends:  [2]int{d.vertexOfFace(e.Face), d.vertexOfFace(mirror.Face)},
		}
		d.edges = append(d.edges, edge)
		d.edgeIndex[e] = edge.ID
		d.edgeIndex[mirror] = edge.ID
	}
}

func (d *Diagram) vertexOfFace(f advanced.FaceHandle) int {
	if id, ok := d.faceVertex[f]; ok {
		return id
	}
	return Unbounded
}

func mergeSites(sites []advanced.FiniteVertex, f advanced.Face) []advanced.FiniteVertex {
	for _, v := range f.Vertices {
		site := v.(advanced.FiniteVertex)
		at := sort.Search(len(sites), func(i int) bool { return sites[i].Ref >= site.Ref })
		if at < len(sites) && sites[at].Ref == site.Ref {
			continue
		}
		sites = append(sites, advanced.FiniteVertex{})
		copy(sites[at+1:], sites[at:])
		sites[at] = site
	}
	return sites
}

// The centre of the circle through the three sites of a finite face. This is
// the one inexact construction in the package.
func circumcenter(f advanced.Face) Point {
	a := f.Vertex(0).(advanced.FiniteVertex).Site
	b := f.Vertex(1).(advanced.FiniteVertex).Site.Sub(a)
	c := f.Vertex(2).(advanced.FiniteVertex).Site.Sub(a)
	d := 2 * b.Cross(c)
	bb, cc := b.Dot(b), c.Dot(c)
	return a.Add(Point{X: (c.Y*bb - b.Y*cc) / d, Y: (b.X*cc - c.X*bb) / d})
}

func (d *Diagram) Graph() *triangulation.Triangulation {
	return d.graph
}

func (d *Diagram) Vertices() []Vertex {
	return d.vertices
}

func (d *Diagram) Edges() []Edge {
	return d.edges
}

// Locate finds the feature of the diagram that p lies on.
func (d *Diagram) Locate(p Point) (Feature, error) {
	result, err := d.locator.Locate(d.graph, p)
	if err != nil {
		return nil, err
	}

	switch result := result.(type) {
	case advanced.VertexResult:
		return Cell{Site: result.Vertex}, nil
	case advanced.EdgeResult:
		// A point equidistant from exactly two sites can't be on a Voronoi edge
		// of zero length, since that would make it equidistant from four
		id, ok := d.edgeIndex[result.Edge]
		if !ok {
			fatalf("located (%g, %g) on %v, which has no Voronoi edge", p.X, p.Y, result.Edge)
		}
		return EdgeFeature{Edge: d.edges[id]}, nil
	case advanced.FaceResult:
		id, ok := d.faceVertex[result.Face.Ref]
		if !ok {
			fatalf("located (%g, %g) on %v, which has no Voronoi vertex", p.X, p.Y, result.Face)
		}
		return VertexFeature{Vertex: d.vertices[id]}, nil
	}
	fatalf("unknown locate result %T", result)
	return nil, nil
}

// CellEdges lists the Voronoi edges bounding the cell of a site,
// counterclockwise.
func (d *Diagram) CellEdges(site advanced.VertexHandle) []Edge {
	if d.graph.Dimension() < 1 {
		return nil
	}
	var result []Edge
	for _, e := range d.graph.IncidentEdges(site) {
		if id, ok := d.edgeIndex[e]; ok {
			result = append(result, d.edges[id])
		}
	}
	return result
}

// IsFaceDegenerate reports whether the Voronoi cell of a site has collapsed,
// which happens exactly when every one of its dual edges is degenerate. For
// point sites this never happens, since a circle through all of a vertex's
// neighbours would have to pass through the vertex too.
func (d *Diagram) IsFaceDegenerate(site advanced.VertexHandle) bool {
	if d.graph.Dimension() < 2 {
		return false
	}
	edges := d.graph.IncidentEdges(site)
	if len(edges) == 0 {
		return false
	}
	for _, e := range edges {
		if !d.tester.IsDegenerateEdge(d.graph, e) {
			return false
		}
	}
	return true
}

// IsEdgeDegenerate reports whether the Voronoi edge dual to e has zero length.
func (d *Diagram) IsEdgeDegenerate(e advanced.Edge) bool {
	return d.tester.IsDegenerateEdge(d.graph, e)
}
