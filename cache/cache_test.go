package cache

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/inarow/move"
)

func TestStoreAndLookup(t *testing.T) {
	is := is.New(t)
	c := New(10)
	k := Key{Depth: 3, Cells: "\x01\x00\x02\x00", Mark: move.Bot}
	_, ok := c.Lookup(42, k)
	is.True(!ok)
	c.Store(42, k, -7)
	score, ok := c.Lookup(42, k)
	is.True(ok)
	is.Equal(score, -7)

	st := c.Stats()
	is.Equal(st.Lookups, uint64(2))
	is.Equal(st.Hits, uint64(1))
	is.Equal(st.Stores, uint64(1))
	is.Equal(st.Len, 1)
	is.Equal(st.Capacity, 10)
}

func TestCollision(t *testing.T) {
	is := is.New(t)
	c := New(10)
	k1 := Key{Depth: 1, Cells: "\x01\x00", Mark: move.Player}
	k2 := Key{Depth: 2, Cells: "\x01\x00", Mark: move.Player}
	c.Store(99, k1, 5)
	// same hash, different sub-problem
	_, ok := c.Lookup(99, k2)
	is.True(!ok)
	is.Equal(c.Stats().Collisions, uint64(1))

	// the newer store wins the slot
	c.Store(99, k2, 6)
	_, ok = c.Lookup(99, k1)
	is.True(!ok)
	score, ok := c.Lookup(99, k2)
	is.True(ok)
	is.Equal(score, 6)
}

func TestLRUEviction(t *testing.T) {
	is := is.New(t)
	c := New(2)
	k := func(d int) Key { return Key{Depth: d} }
	c.Store(1, k(1), 1)
	c.Store(2, k(2), 2)
	// touch 1 so 2 becomes least recently used
	_, ok := c.Lookup(1, k(1))
	is.True(ok)
	c.Store(3, k(3), 3)
	is.Equal(c.Len(), 2)
	_, ok = c.Lookup(2, k(2))
	is.True(!ok)
	_, ok = c.Lookup(1, k(1))
	is.True(ok)
	_, ok = c.Lookup(3, k(3))
	is.True(ok)
}

func TestPurge(t *testing.T) {
	is := is.New(t)
	c := New(0)
	is.Equal(c.Capacity(), DefaultCapacity)
	c.Store(1, Key{}, 1)
	c.Lookup(1, Key{})
	c.Purge()
	is.Equal(c.Len(), 0)
	is.Equal(c.Stats(), Stats{Capacity: DefaultCapacity})
}
