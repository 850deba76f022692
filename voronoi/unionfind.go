package voronoi

import "github.com/osuushi/dtvoronoi/advanced"

// Groups dual faces whose circumcircles coincide. Each group is a single
// Voronoi vertex.
type faceSets struct {
	parent map[advanced.FaceHandle]advanced.FaceHandle
}

func newFaceSets() *faceSets {
	return &faceSets{parent: make(map[advanced.FaceHandle]advanced.FaceHandle)}
}

func (s *faceSets) add(f advanced.FaceHandle) {
	if _, ok := s.parent[f]; !ok {
		s.parent[f] = f
	}
}

func (s *faceSets) find(f advanced.FaceHandle) advanced.FaceHandle {
	root := f
	for s.parent[root] != root {
		root = s.parent[root]
	}
	// Path compression
	for f != root {
		next := s.parent[f]
		s.parent[f] = root
		f = next
	}
	return root
}

func (s *faceSets) union(a, b advanced.FaceHandle) {
	a, b = s.find(a), s.find(b)
	if a == b {
		return
	}
	// Keep the lower handle as the root, so that grouping doesn't depend on the
	// order edges are visited in
	if b < a {
		a, b = b, a
	}
	s.parent[b] = a
}
