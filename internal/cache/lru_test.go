package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLRUBasic(t *testing.T) {
	c := NewLRU[int](10, time.Minute)

	c.Set("a", 1, 0)
	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = c.Get("missing")
	require.False(t, ok)

	c.Delete("a")
	_, ok = c.Get("a")
	require.False(t, ok)
}

func TestLRUEviction(t *testing.T) {
	c := NewLRU[int](3, time.Minute)

	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("k%d", i), i, 0)
	}
	// Touch k0 so k1 becomes the eviction candidate.
	_, ok := c.Get("k0")
	require.True(t, ok)

	c.Set("k3", 3, 0)
	require.Equal(t, 3, c.Len())

	_, ok = c.Get("k1")
	require.False(t, ok, "least recently used entry should be evicted")
	_, ok = c.Get("k0")
	require.True(t, ok)
}

func TestLRUExpiry(t *testing.T) {
	c := NewLRU[string](10, time.Minute)

	c.Set("soon", "gone", time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get("soon")
	require.False(t, ok, "expired entry should be absent")
}

func TestLRUUpdateExisting(t *testing.T) {
	c := NewLRU[int](2, time.Minute)

	c.Set("a", 1, 0)
	c.Set("a", 2, 0)
	require.Equal(t, 1, c.Len())

	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 2, v)
}
