package minselect

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ccgraph/cgraph"
)

// Run computes H = MS(g): a fresh Directed cgraph.Graph rewritten per the
// case analysis in doc.go. workers <= 0 means "runtime chooses"
// (runtime.GOMAXPROCS(0)), mirroring the rest of the pipeline's worker
// configuration.
//
// Run never mutates g: it takes one read-only Neighborhoods/
// ClosedNeighborhoods snapshot up front and derives everything else from
// that snapshot plus a v-min table allocated fresh for this call. Neither
// is reused across rounds, since the working graph changes shape every
// round and a stale v-min would misdirect the case analysis below.
func Run(ctx context.Context, g *cgraph.Graph, workers int) (*cgraph.Graph, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	nodes := g.Nodes()
	open := g.Neighborhoods()
	closed := g.ClosedNeighborhoods()

	rank := make(map[cgraph.VertexID]int, len(nodes))
	for i, u := range nodes {
		rank[u] = i
	}

	// Pass 1: v-min table. Each fan-out task handles one index i of
	// `nodes` and writes only vmin[i] — safe without any lock, since
	// concurrent writes to disjoint indices of the same slice never race
	// (unlike concurrent writes to a shared map).
	vmin := make([]cgraph.VertexID, len(nodes))
	if err := fanOut(ctx, workers, len(nodes), func(i int) error {
		u := nodes[i]
		m := u
		for _, w := range closed[u] {
			if w < m {
				m = w
			}
		}
		vmin[i] = m
		return nil
	}); err != nil {
		return nil, err
	}

	vminOf := func(u cgraph.VertexID) cgraph.VertexID {
		return vmin[rank[u]]
	}

	h := cgraph.New(cgraph.Directed)

	// Pass 2: edge emission, per the case analysis. H.AddEdge is safe
	// under concurrent invocation from every worker.
	err := fanOut(ctx, workers, len(nodes), func(i int) error {
		u := nodes[i]
		um := vminOf(u)
		neighbors := open[u]

		if u == um {
			// u is a local minimum.
			for _, z := range neighbors {
				zm := vminOf(z)
				if zm == u {
					h.AddEdge(z, u)
				} else {
					h.AddEdge(z, zm)
					h.AddEdge(u, zm)
				}
			}
			return nil
		}

		// u is not a local minimum: redirect u and every neighbor toward um.
		h.AddEdge(u, um)
		for _, z := range neighbors {
			h.AddEdge(z, um)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return h, nil
}

// fanOut runs fn(i) for i in [0, n) across a bounded pool of goroutines,
// stopping and returning the first error encountered (and respecting
// ctx cancellation), in the errgroup.SetLimit style used throughout this
// pipeline.
func fanOut(ctx context.Context, workers, n int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return fn(i)
		})
	}
	return g.Wait()
}
