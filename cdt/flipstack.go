package cdt

import "github.com/hatchtri/delaunay/types"

// flipPair is a pending Delaunay check: tri is a triangle that has the
// newly inserted vertex as one of its corners, against is its neighbour
// across the edge opposite that vertex.
type flipPair struct {
	tri, against types.TriIndex
}

type flipStack struct {
	items []flipPair
}

func newFlipStack() *flipStack {
	return &flipStack{}
}

// push queues (tri, against) for a Delaunay check. Pairs with no
// neighbour (against invalid) need no check and are dropped.
func (s *flipStack) push(tri, against types.TriIndex) {
	if against.IsValid() {
		s.items = append(s.items, flipPair{tri, against})
	}
}

func (s *flipStack) empty() bool {
	return len(s.items) == 0
}

func (s *flipStack) pop() (types.TriIndex, types.TriIndex) {
	n := len(s.items) - 1
	p := s.items[n]
	s.items = s.items[:n]
	return p.tri, p.against
}
