package kernel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareDistance(t *testing.T) {
	cases := []struct {
		name     string
		p, q, r  Point
		expected Comparison
	}{
		{"nearer", Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 2, Y: 0}, Smaller},
		{"farther", Point{X: 0, Y: 0}, Point{X: 0, Y: 3}, Point{X: 2, Y: 0}, Larger},
		{"bisector", Point{X: 1, Y: 5}, Point{X: 0, Y: 0}, Point{X: 2, Y: 0}, Equal},
		{"decimal tie", Point{X: 0.1, Y: 0}, Point{X: 0, Y: 0}, Point{X: 0.2, Y: 0}, Equal},
		{"same point", Point{X: 3, Y: 4}, Point{X: 3, Y: 4}, Point{X: 3, Y: 4}, Equal},
		{"query on site", Point{X: 3, Y: 4}, Point{X: 3, Y: 4}, Point{X: 3, Y: 5}, Smaller},
		{
			"one ulp off the bisector",
			Point{X: math.Nextafter(1, 2), Y: 7},
			Point{X: 0, Y: 0},
			Point{X: 2, Y: 0},
			Larger,
		},
		{
			"huge coordinates",
			Point{X: 1e300, Y: 0},
			Point{X: -1e300, Y: 0},
			Point{X: 1e300, Y: 1e300},
			Larger,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, CompareDistance(c.p, c.q, c.r))
			// Swapping the compared points must flip the answer
			assert.Equal(t, -c.expected, CompareDistance(c.p, c.r, c.q))
		})
	}
}

func TestOrient(t *testing.T) {
	cases := []struct {
		name     string
		a, b, c  Point
		expected Orientation
	}{
		{"left turn", Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 0, Y: 1}, CounterClockwise},
		{"right turn", Point{X: 0, Y: 0}, Point{X: 0, Y: 1}, Point{X: 1, Y: 0}, Clockwise},
		{"collinear", Point{X: 0.5, Y: 0.5}, Point{X: 12, Y: 12}, Point{X: 24, Y: 24}, Collinear},
		{"repeated point", Point{X: 1, Y: 1}, Point{X: 1, Y: 1}, Point{X: 5, Y: 3}, Collinear},
		{
			"nearly collinear",
			Point{X: 0.5, Y: 0.5},
			Point{X: 12, Y: 12},
			Point{X: 24, Y: math.Nextafter(24, 25)},
			CounterClockwise,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, Orient(c.a, c.b, c.c))
			assert.Equal(t, c.expected, Orient(c.b, c.c, c.a), "rotation must not change orientation")
			assert.Equal(t, -c.expected, Orient(c.b, c.a, c.c), "swap must invert orientation")
		})
	}
}

func TestSideOfOrientedCircle(t *testing.T) {
	east, north, west := Point{X: 1, Y: 0}, Point{X: 0, Y: 1}, Point{X: -1, Y: 0}

	cases := []struct {
		name     string
		t        Point
		expected OrientedSide
	}{
		{"cocircular", Point{X: 0, Y: -1}, OnOrientedBoundary},
		{"centre", Point{X: 0, Y: 0}, OnPositiveSide},
		{"far away", Point{X: 2, Y: 0}, OnNegativeSide},
		{"just inside", Point{X: 0, Y: math.Nextafter(-1, 0)}, OnPositiveSide},
		{"just outside", Point{X: 0, Y: math.Nextafter(-1, -2)}, OnNegativeSide},
		{"repeats a defining point", east, OnOrientedBoundary},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, SideOfOrientedCircle(east, north, west, c.t))
			// Reversing the orientation of the circle swaps the sides
			assert.Equal(t, -c.expected, SideOfOrientedCircle(west, north, east, c.t))
		})
	}

	t.Run("scaled cocircular lattice points", func(t *testing.T) {
		// 3-4-5 triangles put these on a circle of radius 5 around (0.5, 0.25)
		offset := Point{X: 0.5, Y: 0.25}
		pts := []Point{{X: 5, Y: 0}, {X: 3, Y: 4}, {X: -4, Y: 3}, {X: 0, Y: -5}, {X: -3, Y: -4}}
		for i := range pts {
			pts[i] = pts[i].Add(offset)
		}
		for _, q := range pts[3:] {
			assert.Equal(t, OnOrientedBoundary, SideOfOrientedCircle(pts[0], pts[1], pts[2], q))
		}
	})
}

// The float filters may give up, but they must never give an answer that
// disagrees with exact arithmetic.
func TestTriageAgreesWithExact(t *testing.T) {
	rng := rand.New(rand.NewSource(1234567))
	randomPoint := func() Point {
		// Snapping to a coarse grid makes exact ties common
		if rng.Intn(2) == 0 {
			return Point{X: float64(rng.Intn(8)) / 4, Y: float64(rng.Intn(8)) / 4}
		}
		return Point{X: rng.Float64()*200 - 100, Y: rng.Float64()*200 - 100}
	}

	for i := 0; i < 5000; i++ {
		p, q, r, s := randomPoint(), randomPoint(), randomPoint(), randomPoint()

		if c, ok := triageCompareDistance(p, q, r); ok {
			assert.Equal(t, exactCompareDistance(p, q, r), c)
		}
		if o, ok := triageOrient(p, q, r); ok {
			assert.Equal(t, exactOrient(p, q, r), o)
		}
		if side, ok := triageSideOfOrientedCircle(p, q, r, s); ok {
			assert.Equal(t, exactSideOfOrientedCircle(p, q, r, s), side)
		}
	}
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(Point{X: 1, Y: -2}))
	assert.False(t, IsFinite(Point{X: math.NaN(), Y: 0}))
	assert.False(t, IsFinite(Point{X: 0, Y: math.Inf(-1)}))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "EQUAL", Equal.String())
	assert.Equal(t, "COUNTERCLOCKWISE", CounterClockwise.String())
	assert.Equal(t, "ON_ORIENTED_BOUNDARY", OnOrientedBoundary.String())
	assert.Equal(t, "INVALID_COMPARISON", Comparison(7).String())
}
