package karger

import (
	"math"
	"math/rand"

	"github.com/lrleon/Aleph-w-sub008/core"
)

// kargerSteinBaseline is the node count at or below which recursing further
// buys nothing; the base case instead runs a handful of direct contraction
// trials and keeps the best.
const kargerSteinBaseline = 6

// kargerSteinBaseTrials is how many direct trials the base case runs.
const kargerSteinBaseTrials = 5

// KargerStein computes min-cut via the recursive refinement of MinCut's
// single-trial contraction: above kargerSteinBaseline nodes,
// it contracts two independent clones down to ceil(1 + n/sqrt(2))
// super-nodes, recurses into each, and keeps the smaller of the two
// results — asymptotically O(n^2 log^3 n) instead of MinCut's default
// n^2 ln n trials of a full O(n^2) contraction each.
func KargerStein[N, A any](g *core.Graph[N, A], seed int64) (*Cut[N, A], error) {
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	if g.NumNodes() < 2 {
		return nil, ErrTooFewNodes
	}
	rng := rand.New(rand.NewSource(seed))
	return kargerStein(snapshot(g), rng), nil
}

func kargerStein[N, A any](mg *multigraph[N, A], rng *rand.Rand) *Cut[N, A] {
	if mg.live <= kargerSteinBaseline {
		best := trial(mg, rng)
		for i := 1; i < kargerSteinBaseTrials; i++ {
			if c := trial(mg, rng); c.Size < best.Size {
				best = c
			}
		}
		return best
	}

	target := int(math.Ceil(1 + float64(mg.live)/math.Sqrt2))

	a := mg.clone()
	a.contract(rng, target)
	b := mg.clone()
	b.contract(rng, target)

	ra := kargerStein(a, rng)
	rb := kargerStein(b, rng)
	if ra.Size <= rb.Size {
		return ra
	}
	return rb
}
