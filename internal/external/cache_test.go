package external

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetGet(t *testing.T) {
	c := newCache(time.Minute, 10)
	c.set("q", []string{"a", "b"})
	got, ok := c.get("q")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestCache_ExpiresAfterTTL(t *testing.T) {
	c := newCache(time.Millisecond, 10)
	c.set("q", []string{"a"})
	time.Sleep(5 * time.Millisecond)
	_, ok := c.get("q")
	assert.False(t, ok)
}

func TestCache_EvictsOldestAtCapacity(t *testing.T) {
	c := newCache(time.Minute, 3)
	c.set("a", []string{"1"})
	c.set("b", []string{"2"})
	c.set("c", []string{"3"})
	c.set("d", []string{"4"}) // evicts "a"

	_, ok := c.get("a")
	assert.False(t, ok)
	_, ok = c.get("d")
	assert.True(t, ok)
	assert.Equal(t, 3, c.size())
}

func TestCache_BoundedUnderManyInsertions(t *testing.T) {
	c := newCache(time.Minute, 500)
	for i := 0; i < 10000; i++ {
		c.set("key-"+strconv.Itoa(i), []string{"x"})
	}
	assert.LessOrEqual(t, c.size(), 500)
}

func TestCache_ReinsertAfterExpiryDoesNotCorruptOrder(t *testing.T) {
	c := newCache(time.Millisecond, 2)
	c.set("a", []string{"1"})
	time.Sleep(5 * time.Millisecond)

	_, ok := c.get("a") // lazily expires and removes "a" from order
	assert.False(t, ok)

	c.set("a", []string{"2"}) // reinsert
	c.set("b", []string{"3"})
	c.set("c", []string{"4"}) // at capacity 2, should evict "a", not corrupt state

	assert.LessOrEqual(t, c.size(), 2)
	_, ok = c.get("c")
	assert.True(t, ok)
}
