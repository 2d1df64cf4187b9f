package prune

import "sync"

// deactivatedSet is a sharded concurrent set of VertexID, written once per
// member during the deactivation fan-out and read during the sequential
// removal pass — the same sharding discipline cgraph.Graph uses, scaled
// down to a bare set since no neighbor information is needed here.
type deactivatedSet struct {
	shards []*deactivatedShard
	count  uint32
}

type deactivatedShard struct {
	mu      sync.Mutex
	members map[uint32]struct{}
}

func newDeactivatedSet(shardCount int) *deactivatedSet {
	d := &deactivatedSet{count: uint32(shardCount)}
	d.shards = make([]*deactivatedShard, shardCount)
	for i := range d.shards {
		d.shards[i] = &deactivatedShard{members: make(map[uint32]struct{})}
	}
	return d
}

func (d *deactivatedSet) add(u uint32) {
	s := d.shards[u%d.count]
	s.mu.Lock()
	s.members[u] = struct{}{}
	s.mu.Unlock()
}

func (d *deactivatedSet) has(u uint32) bool {
	s := d.shards[u%d.count]
	s.mu.Lock()
	_, ok := s.members[u]
	s.mu.Unlock()
	return ok
}
