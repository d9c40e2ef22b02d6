package maxflow

import (
	"math/rand"

	"github.com/lrleon/Aleph-w-sub008/core"
)

// randomSelector discharges a uniformly random active node each step,
// removing it from the pool in O(1) via swap-with-last.
type randomSelector[N any] struct {
	items []*core.Node[N]
	pos   map[*core.Node[N]]int
	rng   *rand.Rand
}

func newRandomSelector[N any](rng *rand.Rand) *randomSelector[N] {
	return &randomSelector[N]{pos: make(map[*core.Node[N]]int), rng: rng}
}

func (s *randomSelector[N]) Add(v *core.Node[N]) {
	if _, ok := s.pos[v]; ok {
		return
	}
	s.pos[v] = len(s.items)
	s.items = append(s.items, v)
}

func (s *randomSelector[N]) Empty() bool { return len(s.items) == 0 }

func (s *randomSelector[N]) Next() *core.Node[N] {
	i := s.rng.Intn(len(s.items))
	v := s.items[i]
	last := len(s.items) - 1
	s.items[i] = s.items[last]
	s.pos[s.items[i]] = i
	s.items = s.items[:last]
	delete(s.pos, v)
	return v
}

// PreflowRandom computes max-flow by push-relabel, discharging a uniformly
// random active node at each step. seed makes the run reproducible: the
// same seed always picks the same sequence of nodes.
func PreflowRandom[N, A any](nw *core.Network[N, A], source, sink *core.Node[N], seed int64) (int64, error) {
	rng := rand.New(rand.NewSource(seed))
	return preflowPush[N, A](nw, source, sink, func(map[*core.Node[N]]int64) selector[N] { return newRandomSelector[N](rng) })
}
