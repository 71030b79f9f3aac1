package common

import (
	"sync"
	"testing"
)

func setupTestEnvironment(t *testing.T) (*Cache, func()) {
	t.Helper()

	// Set up the test environment
	cache := NewCache(0, 0)

	cleanup := func() {
		cache.Flush()
	}

	return cache, cleanup
}

func TestCache_Set(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cache.Set("key", "value")

	if _, ok := cache.Get("key"); !ok {
		t.Error("expected key to be set")
	}
}

func TestCache_Flush(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cache.Set("key", "value")
	cache.Flush()

	if _, ok := cache.Get("key"); ok {
		t.Error("expected cache to be flushed")
	}
}

func TestCache_GetOrAdd(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	first := cache.GetOrAdd(CacheKeyClient("10.0.0.1"), func() interface{} { return "first" })
	second := cache.GetOrAdd(CacheKeyClient("10.0.0.1"), func() interface{} { return "second" })

	if first != "first" || second != "first" {
		t.Errorf("expected both calls to return the first value, got %v and %v", first, second)
	}
}

func TestCache_GetOrAddConcurrent(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	var wg sync.WaitGroup
	results := make([]interface{}, 20)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = cache.GetOrAdd("shared", func() interface{} { return new(int) })
		}(i)
	}
	wg.Wait()

	for i := range results {
		if results[i] != results[0] {
			t.Fatalf("expected a single stored value, result %d differs", i)
		}
	}
}
