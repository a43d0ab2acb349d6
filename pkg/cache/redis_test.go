package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
)

func newTestCache(t *testing.T) *RedisCache {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedis(mr.Addr(), "", 0)
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestRedisCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	want := payload{Name: "requests", Count: 3}
	if err := c.Set(ctx, "k", want, 60); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got payload
	ok, err := c.Get(ctx, "k", &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("Get reported a miss for a freshly set key")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestRedisCacheMissAndDelete(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	var got payload
	ok, err := c.Get(ctx, "absent", &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("Get reported a hit for an absent key")
	}

	if err := c.Set(ctx, "k", payload{Name: "x"}, 60); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	ok, err = c.Get(ctx, "k", &got)
	if err != nil {
		t.Fatalf("Get after Del: %v", err)
	}
	if ok {
		t.Error("deleted key must read as a miss")
	}
}

func TestRedisCacheTTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	c := NewRedis(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := c.Set(ctx, "k", payload{Name: "x"}, 30); err != nil {
		t.Fatalf("Set: %v", err)
	}
	mr.FastForward(31 * time.Second)

	var got payload
	ok, err := c.Get(ctx, "k", &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("key should have expired after the TTL window")
	}
}
