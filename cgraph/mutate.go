// File: mutate.go
// Role: AddEdge, EnsureVertex, RemoveNode — the three mutators.
// Concurrency:
//   - AddEdge always locks shards in ascending index order (see
//     Graph.shardIndices), so two concurrent AddEdge calls — regardless of
//     which endpoint each names first — can never deadlock against each
//     other.
//   - RemoveNode snapshots the target's forward/reverse sets under its own
//     shard lock, releases it, then mutates each neighbor's shard one at a
//     time. It must not run concurrently with AddEdge on the same graph,
//     and must not run concurrently with another RemoveNode on the same
//     vertex, but is otherwise safe across distinct vertices.
package cgraph

// ensureLocked registers v in s's forward/reverse maps with an empty
// neighbor set if absent. Caller must hold s.mu for writing.
func ensureLocked(s *shard, v VertexID) {
	if _, ok := s.forward[v]; !ok {
		s.forward[v] = make(map[VertexID]struct{})
	}
	if _, ok := s.reverse[v]; !ok {
		s.reverse[v] = make(map[VertexID]struct{})
	}
}

// EnsureVertex registers u with an empty neighbor set if it is not already
// present. It is a no-op if u already has any recorded edge. This lets a
// caller carry a vertex forward bare, with no edges, without having to
// fabricate a self-edge just to keep it registered.
// Complexity: O(1).
func (g *Graph) EnsureVertex(u VertexID) {
	s := g.shardFor(u)
	s.mu.Lock()
	ensureLocked(s, u)
	s.mu.Unlock()
}

// AddEdge inserts u and v as vertices if absent and adds v to adj(u);
// for an Undirected graph it also adds u to adj(v). Idempotent: adding
// the same edge twice (from any number of concurrent callers) leaves the
// same state as adding it once, since neighbor sets are Go maps.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v VertexID) {
	iu, iv := g.shardIndices(u, v)
	if iu == iv {
		s := g.shards[iu]
		s.mu.Lock()
		g.insertLocked(s, s, u, v)
		s.mu.Unlock()
		return
	}

	first, second := g.shards[iu], g.shards[iv]
	first.mu.Lock()
	second.mu.Lock()
	g.insertLocked(first, second, u, v)
	second.mu.Unlock()
	first.mu.Unlock()
}

// insertLocked performs the actual edge insertion once the relevant
// shard(s) are held for writing. su is u's shard, sv is v's shard (they
// may be the same shard).
func (g *Graph) insertLocked(su, sv *shard, u, v VertexID) {
	ensureLocked(su, u)
	ensureLocked(sv, v)

	su.forward[u][v] = struct{}{}
	sv.reverse[v][u] = struct{}{}

	if g.orientation == Undirected && u != v {
		sv.forward[v][u] = struct{}{}
		su.reverse[u][v] = struct{}{}
	}
}

// RemoveNode removes u and every edge incident to u, in either direction.
// Safe to call concurrently with RemoveNode on other vertices; must not
// be called concurrently with AddEdge on this graph.
// Complexity: O(deg(u)).
func (g *Graph) RemoveNode(u VertexID) {
	su := g.shardFor(u)

	su.mu.Lock()
	outNbrs := make([]VertexID, 0, len(su.forward[u]))
	for v := range su.forward[u] {
		outNbrs = append(outNbrs, v)
	}
	inNbrs := make([]VertexID, 0, len(su.reverse[u]))
	for p := range su.reverse[u] {
		inNbrs = append(inNbrs, p)
	}
	delete(su.forward, u)
	delete(su.reverse, u)
	su.mu.Unlock()

	for _, v := range outNbrs {
		if v == u {
			continue
		}
		sv := g.shardFor(v)
		sv.mu.Lock()
		delete(sv.reverse[v], u)
		delete(sv.forward[v], u)
		sv.mu.Unlock()
	}
	for _, p := range inNbrs {
		if p == u {
			continue
		}
		sp := g.shardFor(p)
		sp.mu.Lock()
		delete(sp.forward[p], u)
		delete(sp.reverse[p], u)
		sp.mu.Unlock()
	}
}
