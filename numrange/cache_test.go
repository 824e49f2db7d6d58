package numrange

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_MemoizesIsInRange(t *testing.T) {
	cache, err := NewCache(0)
	require.NoError(t, err)

	opts := Options{Cache: cache}
	for i := 0; i < 3; i++ {
		ok, err := IsInRange(Float(10), Float(0), Float(19), opts)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	// reversed boundaries normalize to the same key
	ok, err := IsInRange(Float(10), Float(19), Float(0), opts)
	require.NoError(t, err)
	assert.True(t, ok)

	stats := cache.Stats()
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, DefaultCacheCapacity, stats.Capacity)
	assert.Equal(t, uint64(3), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	require.Len(t, stats.Entries, 1)
	assert.Equal(t, CacheEntry{Key: "10|0|19", InRange: true}, stats.Entries[0])

	ok, err = IsInRange(Float(10), Float(0), Float(10), Options{Cache: cache, Exclusive: true})
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = IsInRange(Int(10), Int(0), Int(19), opts)
	require.NoError(t, err)
	assert.True(t, ok)

	keys := make([]string, 0, 3)
	for _, e := range cache.Stats().Entries {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"10|0|19", "10|0|10|x", "10n|0n|19n"}, keys)

	cache.Clear()
	stats = cache.Stats()
	assert.Equal(t, 0, stats.Size)
	assert.Zero(t, stats.Hits)
	assert.Zero(t, stats.Misses)
	assert.Empty(t, stats.Entries)
}

func TestCache_Evicts(t *testing.T) {
	cache, err := NewCache(2)
	require.NoError(t, err)
	opts := Options{Cache: cache}
	for _, v := range []float64{1, 2, 3} {
		_, err := IsInRange(Float(v), Float(0), Float(10), opts)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, cache.Len())
	stats := cache.Stats()
	assert.Equal(t, 2, stats.Capacity)
	assert.Equal(t, "2|0|10", stats.Entries[0].Key)
	assert.Equal(t, "3|0|10", stats.Entries[1].Key)
}

func TestCache_SameAnswers(t *testing.T) {
	cache, err := NewCache(16)
	require.NoError(t, err)
	points := []Scalar{Float(-1), Float(0), Float(2.5), Int(3), Float(5), Int(7)}
	for round := 0; round < 2; round++ {
		for _, x := range points {
			for _, a := range points {
				for _, b := range points {
					for _, exclusive := range []bool{false, true} {
						plain, err := IsInRange(x, a, b, Options{Exclusive: exclusive})
						require.NoError(t, err)
						cached, err := IsInRange(x, a, b, Options{Exclusive: exclusive, Cache: cache})
						require.NoError(t, err)
						require.Equal(t, plain, cached, "x=%v a=%v b=%v exclusive=%v", x, a, b, exclusive)
					}
				}
			}
		}
	}
}

func TestCache_Concurrent(t *testing.T) {
	cache, err := NewCache(64)
	require.NoError(t, err)
	validator := NewValidator(Int(0), Int(100), Options{Cache: cache})

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := int64(-20); i < 120; i++ {
				ok, err := validator(Int(i))
				if err != nil || ok != (i >= 0 && i <= 100) {
					t.Errorf("goroutine %d: validator(%d) = %v, %v", g, i, ok, err)
					return
				}
			}
		}(g)
	}
	wg.Wait()
	stats := cache.Stats()
	assert.Equal(t, uint64(8*140), stats.Hits+stats.Misses)
	assert.LessOrEqual(t, stats.Size, 64)
}
