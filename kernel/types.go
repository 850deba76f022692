// Package kernel provides the exact geometric predicates that the Voronoi
// classification relies on. Nothing in here ever uses a tolerance: ties are
// ties only when they are mathematically exact.
package kernel

import "github.com/golang/geo/r2"

type Point = r2.Point

// Comparison is the result of a three way comparison.
type Comparison int

const (
	Smaller Comparison = -1
	Equal   Comparison = 0
	Larger  Comparison = 1
)

func (c Comparison) String() string {
	switch c {
	case Smaller:
		return "SMALLER"
	case Equal:
		return "EQUAL"
	case Larger:
		return "LARGER"
	}
	return "INVALID_COMPARISON"
}

type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "CLOCKWISE"
	case Collinear:
		return "COLLINEAR"
	case CounterClockwise:
		return "COUNTERCLOCKWISE"
	}
	return "INVALID_ORIENTATION"
}

// OrientedSide says which side of an oriented circle a point is on.
type OrientedSide int

const (
	OnNegativeSide     OrientedSide = -1
	OnOrientedBoundary OrientedSide = 0
	OnPositiveSide     OrientedSide = 1
)

func (s OrientedSide) String() string {
	switch s {
	case OnNegativeSide:
		return "ON_NEGATIVE_SIDE"
	case OnOrientedBoundary:
		return "ON_ORIENTED_BOUNDARY"
	case OnPositiveSide:
		return "ON_POSITIVE_SIDE"
	}
	return "INVALID_ORIENTED_SIDE"
}

// Exact bundles the package predicates behind methods, so that it can be
// injected wherever a predicate interface is expected.
type Exact struct{}

func (Exact) CompareDistance(p, q, r Point) Comparison { return CompareDistance(p, q, r) }
func (Exact) Orient(a, b, c Point) Orientation         { return Orient(a, b, c) }
func (Exact) SideOfOrientedCircle(p, q, r, t Point) OrientedSide {
	return SideOfOrientedCircle(p, q, r, t)
}
