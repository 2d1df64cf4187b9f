// File: snapshot.go
// Role: Read-only snapshot queries: NodeCount, EdgeCount, Nodes,
// Neighborhoods, ClosedNeighborhoods, IncomingEdges.
// Determinism:
//   - Nodes() returns IDs sorted ascending.
//   - Neighborhoods()/ClosedNeighborhoods() take every shard's read lock
//     before copying any of them, so the result never observes a partial
//     write from a concurrent AddEdge straddling two shards.
package cgraph

import "sort"

// NodeCount returns the number of distinct registered vertices.
// Complexity: O(ShardCount + V).
func (g *Graph) NodeCount() int {
	n := 0
	for _, s := range g.shards {
		s.mu.RLock()
		n += len(s.forward)
		s.mu.RUnlock()
	}
	return n
}

// EdgeCount returns the number of distinct edges. For Undirected graphs a
// non-loop edge {u,v} is counted once.
// Complexity: O(V + E).
func (g *Graph) EdgeCount() int {
	count := 0
	for _, s := range g.shards {
		s.mu.RLock()
		for u, nbrs := range s.forward {
			for v := range nbrs {
				if g.orientation == Directed {
					count++
				} else if v >= u {
					// count each undirected pair once; loops (v==u) once too
					count++
				}
			}
		}
		s.mu.RUnlock()
	}
	return count
}

// Nodes returns every registered vertex, sorted ascending.
// Complexity: O(ShardCount + V log V).
func (g *Graph) Nodes() []VertexID {
	out := make([]VertexID, 0)
	for _, s := range g.shards {
		s.mu.RLock()
		for u := range s.forward {
			out = append(out, u)
		}
		s.mu.RUnlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// lockAllShards acquires every shard's read lock in ascending index order
// and returns an unlock function. Used by the two snapshot methods below
// to guarantee no interleaving with a concurrent AddEdge.
func (g *Graph) lockAllShards() func() {
	for _, s := range g.shards {
		s.mu.RLock()
	}
	return func() {
		for i := len(g.shards) - 1; i >= 0; i-- {
			g.shards[i].mu.RUnlock()
		}
	}
}

// Neighborhoods returns a fresh copy of the open neighborhood N(u) for
// every registered vertex u.
// Complexity: O(V + E).
func (g *Graph) Neighborhoods() map[VertexID][]VertexID {
	unlock := g.lockAllShards()
	defer unlock()

	out := make(map[VertexID][]VertexID)
	for _, s := range g.shards {
		for u, nbrs := range s.forward {
			lst := make([]VertexID, 0, len(nbrs))
			for v := range nbrs {
				lst = append(lst, v)
			}
			out[u] = lst
		}
	}
	return out
}

// ClosedNeighborhoods returns N⁺(u) = N(u) ∪ {u} for every registered
// vertex u.
// Complexity: O(V + E).
func (g *Graph) ClosedNeighborhoods() map[VertexID][]VertexID {
	open := g.Neighborhoods()
	for u, nbrs := range open {
		found := false
		for _, v := range nbrs {
			if v == u {
				found = true
				break
			}
		}
		if !found {
			open[u] = append(nbrs, u)
		}
	}
	return open
}

// IncomingEdges returns the predecessors of u: every v such that (v,u) is
// an edge. Defined for both orientations, but only meaningful as "who
// points at me" for Directed graphs (for Undirected graphs it equals the
// open neighborhood).
// Complexity: O(indeg(u)).
func (g *Graph) IncomingEdges(u VertexID) []VertexID {
	s := g.shardFor(u)
	s.mu.RLock()
	defer s.mu.RUnlock()

	nbrs := s.reverse[u]
	out := make([]VertexID, 0, len(nbrs))
	for p := range nbrs {
		out = append(out, p)
	}
	return out
}

// HasVertex reports whether u is registered.
func (g *Graph) HasVertex(u VertexID) bool {
	s := g.shardFor(u)
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.forward[u]
	return ok
}
