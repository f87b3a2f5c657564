package geocoding

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseCache_HitWithinTTL(t *testing.T) {
	cache := newResponseCache(4, time.Minute)
	cache.Set("paris", []byte(`[]`))

	payload, ok := cache.Get("paris")
	require.True(t, ok)
	assert.Equal(t, []byte(`[]`), payload)
}

func TestResponseCache_ExpiredEntryIsEvictedOnLookup(t *testing.T) {
	cache := newResponseCache(4, time.Minute)
	current := time.Now()
	cache.now = func() time.Time { return current }

	cache.Set("paris", []byte(`[]`))

	// Advance past the TTL; the lookup must miss and drop the entry.
	current = current.Add(2 * time.Minute)

	_, ok := cache.Get("paris")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestResponseCache_BoundedSize(t *testing.T) {
	cache := newResponseCache(3, time.Minute)

	for i := 0; i < 10; i++ {
		cache.Set(fmt.Sprintf("query-%d", i), []byte(`[]`))
	}

	assert.Equal(t, 3, cache.Len())
}

func TestResponseCache_EvictsClosestToExpiryWhenFull(t *testing.T) {
	cache := newResponseCache(2, time.Minute)
	current := time.Now()
	cache.now = func() time.Time { return current }

	cache.Set("oldest", []byte(`[]`))
	current = current.Add(10 * time.Second)
	cache.Set("newer", []byte(`[]`))
	current = current.Add(10 * time.Second)
	cache.Set("newest", []byte(`[]`))

	_, oldestOK := cache.Get("oldest")
	_, newerOK := cache.Get("newer")
	_, newestOK := cache.Get("newest")

	assert.False(t, oldestOK)
	assert.True(t, newerOK)
	assert.True(t, newestOK)
}

func TestResponseCache_UpdateExistingKeyDoesNotEvict(t *testing.T) {
	cache := newResponseCache(2, time.Minute)
	cache.Set("a", []byte(`1`))
	cache.Set("b", []byte(`2`))
	cache.Set("a", []byte(`3`))

	payload, ok := cache.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte(`3`), payload)

	_, ok = cache.Get("b")
	assert.True(t, ok)
}
