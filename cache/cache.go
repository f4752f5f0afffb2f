// Package cache holds the memoized scores of searched positions. A search
// sub-problem is identified by a 64-bit hash; the full key is kept alongside
// the score so that two sub-problems sharing a hash never share a result.
package cache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"

	"github.com/domino14/inarow/move"
)

const DefaultCapacity = 1000

// Key fully identifies a search sub-problem: the remaining depth, the
// position after the move was applied (packed cells), and the mark that made
// the move.
type Key struct {
	Depth int
	Cells string
	Mark  move.Mark
}

type entry struct {
	key   Key
	score int
}

// Stats are cumulative since creation or the last Purge.
type Stats struct {
	Lookups    uint64
	Hits       uint64
	Stores     uint64
	Collisions uint64
	Len        int
	Capacity   int
}

// ScoreCache is a bounded least-recently-used map of search scores. It is
// safe for concurrent use; concurrent stores of the same key keep the last
// writer's score, which is fine because scores are pure.
type ScoreCache struct {
	entries  *lru.Cache[uint64, entry]
	capacity int

	lookups    atomic.Uint64
	hits       atomic.Uint64
	stores     atomic.Uint64
	collisions atomic.Uint64
}

// New creates a cache holding at most capacity entries. A non-positive
// capacity falls back to DefaultCapacity.
func New(capacity int) *ScoreCache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	entries, err := lru.New[uint64, entry](capacity)
	if err != nil {
		// only returned for a non-positive size
		panic(err)
	}
	log.Debug().Int("capacity", capacity).Msg("created-score-cache")
	return &ScoreCache{entries: entries, capacity: capacity}
}

// Lookup returns the score stored for key. A hash hit whose stored key
// differs is a collision and reported as a miss.
func (c *ScoreCache) Lookup(hash uint64, key Key) (int, bool) {
	c.lookups.Add(1)
	e, ok := c.entries.Get(hash)
	if !ok {
		return 0, false
	}
	if e.key != key {
		c.collisions.Add(1)
		return 0, false
	}
	c.hits.Add(1)
	return e.score, true
}

// Store records score for key, replacing whatever shared its hash and
// evicting the least recently used entry when full.
func (c *ScoreCache) Store(hash uint64, key Key, score int) {
	c.entries.Add(hash, entry{key: key, score: score})
	c.stores.Add(1)
}

func (c *ScoreCache) Len() int {
	return c.entries.Len()
}

func (c *ScoreCache) Capacity() int {
	return c.capacity
}

// Purge empties the cache and resets its counters.
func (c *ScoreCache) Purge() {
	c.entries.Purge()
	c.lookups.Store(0)
	c.hits.Store(0)
	c.stores.Store(0)
	c.collisions.Store(0)
}

func (c *ScoreCache) Stats() Stats {
	return Stats{
		Lookups:    c.lookups.Load(),
		Hits:       c.hits.Load(),
		Stores:     c.stores.Load(),
		Collisions: c.collisions.Load(),
		Len:        c.entries.Len(),
		Capacity:   c.capacity,
	}
}
