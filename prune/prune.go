package prune

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ccgraph/cgraph"
	"github.com/katalvlaran/ccgraph/forest"
)

// Run computes (G', T') = PR(h, t) per the case analysis in doc.go.
// workers <= 0 means "runtime chooses".
func Run(ctx context.Context, h *cgraph.Graph, t *forest.Forest, workers int) (*cgraph.Graph, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	nodes := h.Nodes()
	out := h.Neighborhoods()
	next := cgraph.New(cgraph.Undirected)
	deactivated := newDeactivatedSet(shardCountFor(len(nodes)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, u := range nodes {
		u := u
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			return processVertex(u, out[u], next, t, deactivated)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Removal pass: strictly after every emission/deactivation completes.
	for _, u := range nodes {
		if deactivated.has(u) {
			next.RemoveNode(u)
		}
	}

	return next, nil
}

// processVertex applies the three-step case analysis from doc.go to a
// single vertex u, given its out-neighborhood in H.
func processVertex(u cgraph.VertexID, outU []cgraph.VertexID, next *cgraph.Graph, t *forest.Forest, deactivated *deactivatedSet) error {
	if len(outU) == 0 {
		// m(u) undefined; an isolated vertex never reaches H with an empty
		// out-set in the first place, but guard defensively rather than
		// indexing outU[0] below on an empty slice.
		return nil
	}

	m := outU[0]
	for _, v := range outU[1:] {
		if v < m {
			m = v
		}
	}

	hasSelfLoop := false
	if len(outU) == 1 && outU[0] == u {
		// Seed preservation: out(u) is exactly {u}. Neither deactivated
		// nor re-emitted; carried forward as a bare vertex.
		next.EnsureVertex(u)
		return nil
	}
	for _, v := range outU {
		if v == u {
			hasSelfLoop = true
			break
		}
	}

	// Step 1: edge emission.
	if len(outU) > 1 {
		for _, v := range outU {
			if v != m {
				next.AddEdge(v, m)
			}
		}
	}

	// Step 2: deactivation.
	if !hasSelfLoop {
		if err := t.AddParent(m, u); err != nil {
			return err
		}
		deactivated.add(u)
	}

	return nil
}

// shardCountFor picks a deactivation-set shard count proportional to the
// round's vertex count, bounded to a sane range, so tiny rounds don't pay
// for 256 empty shards and huge rounds don't serialize on a handful.
func shardCountFor(n int) int {
	switch {
	case n <= 0:
		return 1
	case n < 32:
		return 8
	case n > 256:
		return 256
	default:
		return n
	}
}
