package ccl

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/ccgraph/cgraph"
	"github.com/katalvlaran/ccgraph/forest"
	"github.com/katalvlaran/ccgraph/minselect"
	"github.com/katalvlaran/ccgraph/prune"
	"github.com/katalvlaran/ccgraph/seed"
)

// ErrRoundCapExceeded is returned when the driver loop runs past its
// safety cap without the working graph emptying out. Every non-trivial
// round deactivates at least one vertex, so hitting the cap means that
// invariant was violated upstream — a fatal algorithmic inconsistency,
// never something to retry or partially report.
var ErrRoundCapExceeded = errors.New("ccl: round cap exceeded")

// Stats reports how the computation unfolded, for callers (typically a
// CLI) that want to log or display it; it carries no information the
// core's correctness depends on.
type Stats struct {
	Rounds     int
	ForestSize int
}

// Run computes seed: V → V for the undirected graph described by edges.
func Run(ctx context.Context, edges []cgraph.Edge, opts ...Option) (map[cgraph.VertexID]cgraph.VertexID, Stats, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := cgraph.New(cgraph.Undirected)
	for _, e := range edges {
		g.AddEdge(e.U, e.V)
	}
	allVertices := g.Nodes()

	roundCap := cfg.roundCap
	if roundCap <= 0 {
		roundCap = 2 * len(allVertices)
		if roundCap == 0 {
			roundCap = 1
		}
	}

	t := forest.New()
	rounds := 0
	for g.NodeCount() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, Stats{}, err
		}
		if rounds >= roundCap {
			return nil, Stats{}, fmt.Errorf("%w: after %d rounds with %d vertices remaining", ErrRoundCapExceeded, rounds, g.NodeCount())
		}

		h, err := minselect.Run(ctx, g, cfg.workers)
		if err != nil {
			return nil, Stats{}, err
		}
		g, err = prune.Run(ctx, h, t, cfg.workers)
		if err != nil {
			return nil, Stats{}, err
		}
		rounds++
	}

	seeds, err := seed.Propagate(t, allVertices)
	if err != nil {
		return nil, Stats{}, err
	}

	return seeds, Stats{Rounds: rounds, ForestSize: t.Size()}, nil
}
