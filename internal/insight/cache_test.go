package insight

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUCache_BasicGetPut(t *testing.T) {
	c := newLRUCache[int](3)

	c.put("a", 1)
	c.put("b", 2)

	v, ok := c.get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.get("missing")
	assert.False(t, ok)
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newLRUCache[int](2)

	c.put("a", 1)
	c.put("b", 2)
	_, _ = c.get("a") // a is now most recent
	c.put("c", 3)     // evicts b

	_, ok := c.get("b")
	assert.False(t, ok, "b should be evicted")
	_, ok = c.get("a")
	assert.True(t, ok)
	_, ok = c.get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.len())
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	c := newLRUCache[int](2)

	c.put("a", 1)
	c.put("a", 10)

	v, ok := c.get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, 1, c.len())
}

func TestLRUCache_ZeroSizeDisabled(t *testing.T) {
	c := newLRUCache[int](0)

	c.put("a", 1)

	_, ok := c.get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.len())
}

func TestLRUCache_Purge(t *testing.T) {
	c := newLRUCache[int](4)
	c.put("a", 1)
	c.put("b", 2)

	c.purge()

	assert.Equal(t, 0, c.len())
	c.put("c", 3)
	v, ok := c.get("c")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestLRUCache_ConcurrentAccess(t *testing.T) {
	c := newLRUCache[int](16)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				key := fmt.Sprintf("k%d", (i*100+j)%32)
				c.put(key, j)
				_, _ = c.get(key)
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, c.len(), 16)
}
