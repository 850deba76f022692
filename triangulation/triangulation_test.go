package triangulation

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/dtvoronoi/advanced"
	"github.com/osuushi/dtvoronoi/internal/fixtures"
	"github.com/osuushi/dtvoronoi/kernel"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	tri := Empty()
	assert.Equal(t, -1, tri.Dimension())
	assert.Equal(t, 0, tri.NumberOfVertices())
	assert.NoError(t, tri.Validate())
	assert.Empty(t, tri.AllEdges())
	assert.Panics(t, func() { tri.NearestVertex(Point{X: 1, Y: 1}) })
}

func TestSingleSite(t *testing.T) {
	tri, err := New([]Point{{X: 3, Y: 4}})
	require.NoError(t, err)
	assert.Equal(t, 0, tri.Dimension())
	assert.NoError(t, tri.Validate())

	v := tri.NearestVertex(Point{X: -100, Y: 7})
	assert.Equal(t, Point{X: 3, Y: 4}, v.Site)
	assert.Empty(t, tri.IncidentFaces(v.Ref))
	assert.Empty(t, tri.IncidentEdges(v.Ref))
}

func TestDuplicateSites(t *testing.T) {
	tri, err := New([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	require.NoError(t, err)

	again, err := tri.Insert(Point{X: 1, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, advanced.VertexHandle(2), again.Ref)
	assert.Equal(t, 3, tri.NumberOfVertices())
	assert.NoError(t, tri.Validate())
}

func TestInvalidSite(t *testing.T) {
	for _, p := range []Point{{X: math.NaN(), Y: 0}, {X: 0, Y: math.Inf(1)}} {
		_, err := New([]Point{{X: 0, Y: 0}, p})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidSite))
	}
}

func TestCollinearSites(t *testing.T) {
	tri, err := New(fixtures.Load("line"))
	require.NoError(t, err)
	assert.Equal(t, 1, tri.Dimension())
	require.NoError(t, tri.Validate())

	// Four finite segments plus two to infinity
	assert.Len(t, tri.AllEdges(), 6)
	assert.Len(t, tri.FiniteEdges(), 4)
	assert.Empty(t, tri.FiniteFaces())

	for _, v := range tri.FiniteVertices() {
		edges := tri.IncidentEdges(v.Ref)
		require.Len(t, edges, 2)
		for _, e := range edges {
			a, b := advanced.EdgeVertices(tri, e)
			assert.True(t, a.Handle() == v.Ref || b.Handle() == v.Ref, "edge %v does not touch %v", e, v)
			assert.Equal(t, e, tri.MirrorEdge(e))
		}
	}

	// The end of the chain is next to the infinite vertex
	end := tri.NearestVertex(Point{X: 100, Y: 50})
	assert.Equal(t, Point{X: 50, Y: 25}, end.Site)
	infiniteNeighbors := 0
	for _, e := range tri.IncidentEdges(end.Ref) {
		if advanced.IsInfiniteEdge(tri, e) {
			infiniteNeighbors++
		}
	}
	assert.Equal(t, 1, infiniteNeighbors)
}

func TestRaiseDimension(t *testing.T) {
	line := []Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 3, Y: 0}}
	for _, apex := range []Point{{X: 1.5, Y: 2}, {X: 1.5, Y: -2}, {X: -1, Y: 1}} {
		sites := append(append([]Point(nil), line...), apex)
		tri, err := New(sites)
		require.NoError(t, err)
		assert.Equal(t, 2, tri.Dimension())
		require.NoError(t, tri.Validate())
		assert.Len(t, tri.FiniteFaces(), 3)
	}
}

func TestFixtures(t *testing.T) {
	cases := []struct {
		name        string
		finiteFaces int
	}{
		// Each unit square of the 5x5 lattice is split in two
		{"lattice", 32},
		// Twelve spokes from the centre
		{"ring", 12},
		{"scattered", -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tri, err := New(fixtures.Load(c.name))
			require.NoError(t, err)
			assert.Equal(t, 2, tri.Dimension())
			require.NoError(t, tri.Validate())
			if c.finiteFaces >= 0 {
				assert.Len(t, tri.FiniteFaces(), c.finiteFaces)
			}

			// Euler's formula, counting the infinite vertex
			v := tri.NumberOfVertices() + 1
			assert.Len(t, tri.AllEdges(), 3*v-6)

			count := 0
			for iter := tri.Edges(); iter.Next(); {
				count++
			}
			assert.Equal(t, 3*v-6, count)
		})
	}
}

// Random lattice sites have plenty of collinear and cocircular subsets, which
// is where insertion is most likely to go wrong.
func TestRandomLatticeInsertion(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		tri := Empty()
		for i := 0; i < 30; i++ {
			_, err := tri.Insert(Point{X: float64(rng.Intn(7)), Y: float64(rng.Intn(7))})
			require.NoError(t, err)
			require.NoError(t, tri.Validate(), "trial %d after %d insertions", trial, i+1)
		}
	}
}

func TestIncidentFacesRotation(t *testing.T) {
	tri, err := New(fixtures.Load("scattered"))
	require.NoError(t, err)

	for _, v := range append([]advanced.Vertex{advanced.InfiniteVertex{}}, asVertices(tri.FiniteVertices())...) {
		faces := tri.IncidentFaces(v.Handle())
		edges := tri.IncidentEdges(v.Handle())
		require.NotEmpty(t, faces)
		assert.Len(t, edges, len(faces))

		seen := map[advanced.FaceHandle]bool{}
		for k, f := range faces {
			assert.False(t, seen[f.Ref], "face %v visited twice", f)
			seen[f.Ref] = true

			// Counterclockwise, the clockwise corner of one face is the
			// counterclockwise corner of the next
			next := faces[advanced.CircularIndex(k+1, len(faces))]
			i, j := f.Index(v.Handle()), next.Index(v.Handle())
			assert.Equal(t, f.Vertex(advanced.CW(i)).Handle(), next.Vertex(advanced.CCW(j)).Handle())

			a, b := advanced.EdgeVertices(tri, edges[k])
			assert.Equal(t, v.Handle(), a.Handle())
			assert.Equal(t, f.Vertex(advanced.CCW(i)).Handle(), b.Handle())
		}
	}
}

func TestMirrorEdge(t *testing.T) {
	tri, err := New(fixtures.Load("lattice"))
	require.NoError(t, err)

	for _, e := range tri.AllEdges() {
		mirror := tri.MirrorEdge(e)
		assert.NotEqual(t, e.Face, mirror.Face)
		assert.Equal(t, e, tri.MirrorEdge(mirror))

		a, b := advanced.EdgeVertices(tri, e)
		c, d := advanced.EdgeVertices(tri, mirror)
		assert.Equal(t, a.Handle(), d.Handle())
		assert.Equal(t, b.Handle(), c.Handle())

		assert.Equal(t, tri.Face(mirror.Face).Vertex(mirror.Index), tri.MirrorVertex(e.Face, e.Index))
	}
}

func TestNearestVertexMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sites := make([]Point, 200)
	for i := range sites {
		sites[i] = Point{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}
	tri, err := New(sites)
	require.NoError(t, err)

	for i := 0; i < 500; i++ {
		q := Point{X: rng.Float64()*140 - 20, Y: rng.Float64()*140 - 20}
		best := sites[0]
		for _, s := range sites[1:] {
			if kernel.CompareDistance(q, s, best) == kernel.Smaller {
				best = s
			}
		}
		found := tri.NearestVertex(q)
		assert.Equal(t, kernel.Equal, kernel.CompareDistance(q, found.Site, best))
	}
}

func TestEdgeIteratorAsCursor(t *testing.T) {
	tri, err := New(fixtures.Load("ring"))
	require.NoError(t, err)

	iter := tri.FiniteEdgeIterator()
	assert.Panics(t, func() { iter.Edge() })

	var edges []advanced.Edge
	for iter.Next() {
		var cursor advanced.EdgeCursor = iter
		edges = append(edges, cursor.Edge())
	}
	assert.Equal(t, tri.FiniteEdges(), edges)
	assert.False(t, iter.Next())
}

func TestRender(t *testing.T) {
	tri, err := New(fixtures.Load("scattered"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "triangulation.png")
	err = tri.Render(path, DrawOptions{
		Scale:     3,
		Highlight: func(e advanced.Edge) bool { return e.Index == 0 },
		Marks:     []Point{{X: 50, Y: 50}},
	})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func asVertices(vertices []advanced.FiniteVertex) []advanced.Vertex {
	result := make([]advanced.Vertex, len(vertices))
	for i, v := range vertices {
		result[i] = v
	}
	return result
}
