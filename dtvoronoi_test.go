package dtvoronoi

import (
	"testing"

	"github.com/osuushi/dtvoronoi/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestLocate(t *testing.T) {
	points := []Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	}

	g, err := Triangulate(points...)
	require.NoError(t, err)

	result, err := Locate(g, Point{})
	assert.NoError(t, err)
	assert.Equal(t, advanced.LocatedOnFace, result.Kind())

	degenerate := 0
	for _, e := range g.FiniteEdges() {
		if IsDegenerate(g, e.Face, e.Index) {
			degenerate++
		}
	}
	assert.Equal(t, 1, degenerate)

	d, err := NewDiagram(points)
	require.NoError(t, err)
	assert.Len(t, d.Vertices(), 1)
	assert.Len(t, d.Edges(), 4)
}
