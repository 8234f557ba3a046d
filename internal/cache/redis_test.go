package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"hotel_platform/internal/cache"
)

func TestRedis_GetSetDel(t *testing.T) {
	mr := miniredis.RunT(t)
	r := cache.NewRedis(mr.Addr(), "", 0)
	ctx := context.Background()

	var out payload
	if ok, err := r.Get(ctx, "missing", &out); ok || err != nil {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	in := payload{RoomID: 1, Body: "hello"}
	if err := r.Set(ctx, "k", in, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if ok, err := r.Get(ctx, "k", &out); !ok || err != nil || out != in {
		t.Fatalf("get: ok=%v err=%v out=%+v", ok, err, out)
	}

	if err := r.Del(ctx, "k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := r.Get(ctx, "k", &out); ok {
		t.Fatal("key should be gone")
	}
}

func TestRedis_TTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	r := cache.NewRedis(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := r.Set(ctx, "k", payload{Body: "v"}, 10*time.Minute); err != nil {
		t.Fatal(err)
	}
	mr.FastForward(11 * time.Minute)

	var out payload
	if ok, _ := r.Get(ctx, "k", &out); ok {
		t.Fatal("key should have expired")
	}
}

func TestRedis_DelPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	r := cache.NewRedis(mr.Addr(), "", 0)
	ctx := context.Background()

	for _, k := range []string{"requests:pending", "requests:room:2", "reviews:room:2"} {
		if err := r.Set(ctx, k, payload{Body: k}, time.Minute); err != nil {
			t.Fatal(err)
		}
	}
	if err := r.DelPrefix(ctx, "requests:"); err != nil {
		t.Fatalf("del prefix: %v", err)
	}

	var out payload
	if ok, _ := r.Get(ctx, "requests:pending", &out); ok {
		t.Error("requests:pending should be gone")
	}
	if ok, _ := r.Get(ctx, "requests:room:2", &out); ok {
		t.Error("requests:room:2 should be gone")
	}
	if ok, _ := r.Get(ctx, "reviews:room:2", &out); !ok {
		t.Error("reviews:room:2 should survive")
	}
}

func TestMemory_DelPrefixUsesOwnKeyIndex(t *testing.T) {
	m := cache.NewMemory()
	ctx := context.Background()

	for _, k := range []string{"reviews:room:1:a", "reviews:room:1:b", "reviews:room:2:a"} {
		if err := m.Set(ctx, k, payload{Body: k}, time.Minute); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.DelPrefix(ctx, "reviews:room:1"); err != nil {
		t.Fatal(err)
	}
	if got := m.Len(); got != 1 {
		t.Fatalf("expected 1 surviving entry, got %d", got)
	}
}
