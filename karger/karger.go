package karger

import (
	"math"
	"math/rand"

	"github.com/lrleon/Aleph-w-sub008/core"
)

// defaultIterations returns the high-probability trial count,
// roughly n^2 * ln(n), for an n-node graph.
func defaultIterations(n int) int {
	if n < 2 {
		return 1
	}
	return int(math.Ceil(float64(n) * float64(n) * math.Log(float64(n))))
}

// trial runs one contraction to two super-nodes and reports its cut.
func trial[N, A any](mg *multigraph[N, A], rng *rand.Rand) *Cut[N, A] {
	c := mg.clone()
	c.contract(rng, 2)
	return c.cutResult()
}

// MinCut runs numIter independent contraction trials (or the default
// n^2*ln(n) when numIter <= 0) and keeps the smallest cut found. seed
// makes the run reproducible across calls.
func MinCut[N, A any](g *core.Graph[N, A], seed int64, numIter int) (*Cut[N, A], error) {
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	if g.NumNodes() < 2 {
		return nil, ErrTooFewNodes
	}
	if numIter <= 0 {
		numIter = defaultIterations(g.NumNodes())
	}

	rng := rand.New(rand.NewSource(seed))
	mg := snapshot(g)

	best := trial(mg, rng)
	for i := 1; i < numIter; i++ {
		c := trial(mg, rng)
		if c.Size < best.Size {
			best = c
		}
	}
	return best, nil
}
