package kernel

// The predicates in this file must never disagree with exact arithmetic. Each
// one first evaluates its determinant in float64 along with a bound on the
// rounding error. When the sign is certain we are done; otherwise we redo the
// computation with big.Float at maximum precision, where the products and
// sums of float64 inputs are exact.
//
// The error bounds are the ones from Shewchuk's "Adaptive Precision
// Floating-Point Arithmetic and Fast Robust Geometric Predicates", rounded up.

import (
	"math"
	"math/big"
)

const (
	// dblEpsilon is the C++ DBL_EPSILON equivalent.
	dblEpsilon = 2.220446049250313e-16

	// Error multipliers for the float filters. These are applied to the
	// "permanent" of each determinant, i.e. the same expression with every
	// term replaced by its absolute value.
	distanceErrorMultiplier = 4 * dblEpsilon
	orientErrorMultiplier   = 3.3307e-16
	inCircleErrorMultiplier = 1.1103e-15

	// Below this magnitude intermediate products may have underflowed, and the
	// relative error bounds stop holding.
	underflowGuard = 1e-280
)

// CompareDistance compares the distance from p to q with the distance from p
// to r. Smaller means q is strictly nearer to p than r is.
func CompareDistance(p, q, r Point) Comparison {
	if c, ok := triageCompareDistance(p, q, r); ok {
		return c
	}
	return exactCompareDistance(p, q, r)
}

func triageCompareDistance(p, q, r Point) (Comparison, bool) {
	qx, qy := p.X-q.X, p.Y-q.Y
	rx, ry := p.X-r.X, p.Y-r.Y
	dq := qx*qx + qy*qy
	dr := rx*rx + ry*ry
	diff := dq - dr
	permanent := dq + dr
	if !isFinite(diff) || !isFinite(permanent) || permanent < underflowGuard {
		return Equal, false
	}
	bound := distanceErrorMultiplier * permanent
	if diff > bound {
		return Larger, true
	}
	if diff < -bound {
		return Smaller, true
	}
	return Equal, false
}

func exactCompareDistance(p, q, r Point) Comparison {
	px, py := bigFloat(p.X), bigFloat(p.Y)
	qx, qy := sub(px, bigFloat(q.X)), sub(py, bigFloat(q.Y))
	rx, ry := sub(px, bigFloat(r.X)), sub(py, bigFloat(r.Y))
	dq := add(mul(qx, qx), mul(qy, qy))
	dr := add(mul(rx, rx), mul(ry, ry))
	return Comparison(dq.Cmp(dr))
}

// Orient reports whether a, b, c make a left turn (CounterClockwise), a right
// turn (Clockwise), or lie on a common line.
func Orient(a, b, c Point) Orientation {
	if o, ok := triageOrient(a, b, c); ok {
		return o
	}
	return exactOrient(a, b, c)
}

func triageOrient(a, b, c Point) (Orientation, bool) {
	left := (b.X - a.X) * (c.Y - a.Y)
	right := (b.Y - a.Y) * (c.X - a.X)
	det := left - right
	permanent := math.Abs(left) + math.Abs(right)
	if !isFinite(det) || !isFinite(permanent) || permanent < underflowGuard {
		return Collinear, false
	}
	bound := orientErrorMultiplier * permanent
	if det > bound {
		return CounterClockwise, true
	}
	if det < -bound {
		return Clockwise, true
	}
	return Collinear, false
}

func exactOrient(a, b, c Point) Orientation {
	ax, ay := bigFloat(a.X), bigFloat(a.Y)
	left := mul(sub(bigFloat(b.X), ax), sub(bigFloat(c.Y), ay))
	right := mul(sub(bigFloat(b.Y), ay), sub(bigFloat(c.X), ax))
	return Orientation(sub(left, right).Sign())
}

// SideOfOrientedCircle locates t relative to the circle through p, q and r,
// oriented by the order of those three points. For a counterclockwise triple,
// OnPositiveSide means t is strictly inside the circle. For a clockwise triple
// the sides are swapped. OnOrientedBoundary means the four points are
// cocircular (or, for a collinear triple, that t is on the same line).
func SideOfOrientedCircle(p, q, r, t Point) OrientedSide {
	if s, ok := triageSideOfOrientedCircle(p, q, r, t); ok {
		return s
	}
	return exactSideOfOrientedCircle(p, q, r, t)
}

func triageSideOfOrientedCircle(p, q, r, t Point) (OrientedSide, bool) {
	adx, ady := p.X-t.X, p.Y-t.Y
	bdx, bdy := q.X-t.X, q.Y-t.Y
	cdx, cdy := r.X-t.X, r.Y-t.Y

	bdxcdy, cdxbdy := bdx*cdy, cdx*bdy
	cdxady, adxcdy := cdx*ady, adx*cdy
	adxbdy, bdxady := adx*bdy, bdx*ady

	alift := adx*adx + ady*ady
	blift := bdx*bdx + bdy*bdy
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)
	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*alift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*blift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*clift
	if !isFinite(det) || !isFinite(permanent) || permanent < underflowGuard {
		return OnOrientedBoundary, false
	}
	bound := inCircleErrorMultiplier * permanent
	if det > bound {
		return OnPositiveSide, true
	}
	if det < -bound {
		return OnNegativeSide, true
	}
	return OnOrientedBoundary, false
}

func exactSideOfOrientedCircle(p, q, r, t Point) OrientedSide {
	tx, ty := bigFloat(t.X), bigFloat(t.Y)
	adx, ady := sub(bigFloat(p.X), tx), sub(bigFloat(p.Y), ty)
	bdx, bdy := sub(bigFloat(q.X), tx), sub(bigFloat(q.Y), ty)
	cdx, cdy := sub(bigFloat(r.X), tx), sub(bigFloat(r.Y), ty)

	alift := add(mul(adx, adx), mul(ady, ady))
	blift := add(mul(bdx, bdx), mul(bdy, bdy))
	clift := add(mul(cdx, cdx), mul(cdy, cdy))

	det := mul(alift, sub(mul(bdx, cdy), mul(cdx, bdy)))
	det = add(det, mul(blift, sub(mul(cdx, ady), mul(adx, cdy))))
	det = add(det, mul(clift, sub(mul(adx, bdy), mul(bdx, ady))))
	return OrientedSide(det.Sign())
}

// newBigFloat constructs a new big.Float with maximum precision.
func newBigFloat() *big.Float { return new(big.Float).SetPrec(big.MaxPrec) }

func bigFloat(x float64) *big.Float { return newBigFloat().SetFloat64(x) }

func add(a, b *big.Float) *big.Float { return newBigFloat().Add(a, b) }
func sub(a, b *big.Float) *big.Float { return newBigFloat().Sub(a, b) }
func mul(a, b *big.Float) *big.Float { return newBigFloat().Mul(a, b) }

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// IsFinite reports whether both coordinates of p are ordinary numbers. The
// predicates in this package are undefined for anything else.
func IsFinite(p Point) bool {
	return isFinite(p.X) && isFinite(p.Y)
}
