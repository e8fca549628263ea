package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryCacheSetGet(t *testing.T) {
	mc := NewMemoryCache()
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	if err := mc.Set(ctx, "key", payload{Name: "x", Count: 3}, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got payload
	if err := mc.Get(ctx, "key", &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "x" || got.Count != 3 {
		t.Fatalf("round trip wrong: %+v", got)
	}
}

func TestMemoryCacheMiss(t *testing.T) {
	mc := NewMemoryCache()
	var dest string
	if err := mc.Get(context.Background(), "absent", &dest); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	mc := NewMemoryCache()
	ctx := context.Background()
	_ = mc.Set(ctx, "a", 1, time.Minute)
	_ = mc.Set(ctx, "b", 2, time.Minute)

	if err := mc.Delete(ctx, "a", "b"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var dest int
	if err := mc.Get(ctx, "a", &dest); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected miss after delete, got %v", err)
	}
}

func TestMemoryCacheExpiration(t *testing.T) {
	mc := NewMemoryCache()
	ctx := context.Background()
	_ = mc.Set(ctx, "short", "v", time.Millisecond)

	time.Sleep(5 * time.Millisecond)
	var dest string
	if err := mc.Get(ctx, "short", &dest); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected expiry miss, got %v", err)
	}
}

func TestMemoryCacheEviction(t *testing.T) {
	mc := NewMemoryCache(WithMemoryMaxSize(2))
	ctx := context.Background()

	_ = mc.Set(ctx, "first", 1, time.Minute)
	time.Sleep(time.Millisecond)
	_ = mc.Set(ctx, "second", 2, time.Minute)
	time.Sleep(time.Millisecond)
	_ = mc.Set(ctx, "third", 3, time.Minute)

	var dest int
	if err := mc.Get(ctx, "first", &dest); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("oldest entry not evicted, got %v", err)
	}
	if err := mc.Get(ctx, "third", &dest); err != nil {
		t.Fatalf("newest entry lost: %v", err)
	}
}
