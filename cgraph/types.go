// File: types.go
// Role: Graph struct, shard struct, options, constructor.
// Concurrency:
//   - Each shard guards its own slice of the vertex space with sync.RWMutex.
//   - Shard selection is a pure function of VertexID; it never changes after
//     construction, so no rebalancing/rehashing is ever needed.
package cgraph

import "sync"

// shard owns the adjacency state for every VertexID that hashes to it.
// forward[u] is u's out-neighbors; reverse[u] is u's in-neighbors. For an
// Undirected graph every insertion populates both maps symmetrically on
// both endpoints' shards, so forward and reverse are always equal — the
// duplication is kept anyway so that Graph's removal and snapshot logic
// does not need to special-case orientation.
type shard struct {
	mu      sync.RWMutex
	forward map[VertexID]map[VertexID]struct{}
	reverse map[VertexID]map[VertexID]struct{}
}

func newShard() *shard {
	return &shard{
		forward: make(map[VertexID]map[VertexID]struct{}),
		reverse: make(map[VertexID]map[VertexID]struct{}),
	}
}

// Graph is the core concurrent adjacency structure described in doc.go.
type Graph struct {
	orientation Orientation
	shardCount  uint32
	shards      []*shard
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithShardCount overrides the default shard count (32). n <= 0 is ignored.
func WithShardCount(n int) Option {
	return func(g *Graph) {
		if n > 0 {
			g.shardCount = uint32(n)
		}
	}
}

// New constructs an empty Graph with the given orientation.
// Complexity: O(ShardCount).
func New(orientation Orientation, opts ...Option) *Graph {
	g := &Graph{
		orientation: orientation,
		shardCount:  defaultShardCount,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.shards = make([]*shard, g.shardCount)
	for i := range g.shards {
		g.shards[i] = newShard()
	}
	return g
}

// Orientation reports the graph's construction-time orientation.
func (g *Graph) Orientation() Orientation { return g.orientation }

// Directed reports whether this graph is the Directed orientation.
func (g *Graph) Directed() bool { return g.orientation == Directed }

func (g *Graph) shardFor(v VertexID) *shard {
	return g.shards[v%g.shardCount]
}

// shardIndices returns the (possibly equal) shard indices for u and v,
// in ascending order, so callers can lock consistently and avoid
// deadlocking against a concurrent AddEdge(v, u).
func (g *Graph) shardIndices(u, v VertexID) (int, int) {
	iu, iv := int(u%g.shardCount), int(v%g.shardCount)
	if iu <= iv {
		return iu, iv
	}
	return iv, iu
}
