package triangulation

import (
	"github.com/osuushi/dtvoronoi/advanced"
	"github.com/osuushi/dtvoronoi/kernel"
	"github.com/pkg/errors"
)

// Validate checks the triangulation's structure and that it is Delaunay. It is
// meant for tests and debugging; a triangulation built through Insert should
// always be valid.
func (t *Triangulation) Validate() error {
	n := t.NumberOfVertices()
	switch t.dimension {
	case -1, 0:
		if n != t.dimension+1 {
			return errors.Errorf("dimension %d with %d vertices", t.dimension, n)
		}
		return nil
	case 1:
		return t.validateChain()
	case 2:
		return t.validatePlane()
	}
	return errors.Errorf("invalid dimension %d", t.dimension)
}

func (t *Triangulation) validateChain() error {
	n := t.NumberOfVertices()
	if len(t.chain) != n || len(t.faces) != n+1 {
		return errors.Errorf("chain of %d vertices has %d entries and %d segments", n, len(t.chain), len(t.faces))
	}
	first, last := t.sites[t.chain[0]], t.sites[t.chain[n-1]]
	for i, h := range t.chain {
		if kernel.Orient(first, last, t.sites[h]) != kernel.Collinear {
			return errors.Errorf("vertex %d is off the line of the chain", h)
		}
		if i > 0 && !lexLess(t.sites[t.chain[i-1]], t.sites[h]) {
			return errors.Errorf("chain is out of order at vertex %d", h)
		}
	}
	for f := range t.faces {
		next := t.faces[t.faces[f].n[0]]
		if next.v[0] != t.faces[f].v[1] || next.n[1] != f {
			return errors.Errorf("segment %d is not linked to the next segment", f)
		}
	}
	return nil
}

func (t *Triangulation) validatePlane() error {
	n := t.NumberOfVertices()
	// Euler's formula on the sphere, counting the infinite vertex
	if len(t.faces) != 2*(n+1)-4 {
		return errors.Errorf("%d vertices should have %d faces, found %d", n, 2*(n+1)-4, len(t.faces))
	}

	for f := range t.faces {
		raw := &t.faces[f]
		for i := 0; i < 3; i++ {
			neighbor := raw.n[i]
			if neighbor < 0 || neighbor >= len(t.faces) {
				return errors.Errorf("face %d has no neighbour %d", f, i)
			}
			j := t.faces[neighbor].index(raw.v[advanced.CW(i)])
			if j == none || t.faces[neighbor].v[advanced.CCW(j)] != raw.v[advanced.CCW(i)] {
				return errors.Errorf("faces %d and %d do not share edge %d", f, neighbor, i)
			}
			if t.faces[neighbor].n[advanced.CW(j)] != f {
				return errors.Errorf("face %d is not a neighbour of its neighbour %d", f, neighbor)
			}
		}

		if raw.index(infinite) != none {
			continue
		}
		a, b, c := t.sites[raw.v[0]], t.sites[raw.v[1]], t.sites[raw.v[2]]
		if kernel.Orient(a, b, c) != kernel.CounterClockwise {
			return errors.Errorf("face %d is not counterclockwise", f)
		}
		for i := 0; i < 3; i++ {
			neighbor, j := t.mirror(f, i)
			apex := t.faces[neighbor].v[j]
			if apex == infinite {
				continue
			}
			if kernel.SideOfOrientedCircle(a, b, c, t.sites[apex]) == kernel.OnPositiveSide {
				return errors.Errorf("vertex %d is inside the circumcircle of face %d", apex, f)
			}
		}
	}

	for v := range t.sites {
		if t.faces[t.vertexFace[v]].index(v) == none {
			return errors.Errorf("vertex %d is linked to face %d which does not contain it", v, t.vertexFace[v])
		}
	}
	return nil
}
