package cache

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"hotel_platform/internal/adapters/observability"
	"hotel_platform/internal/domain"
)

const (
	DefaultL1TTL = 2 * time.Minute
	DefaultL2TTL = 10 * time.Minute
)

// TwoLevel composes an in-process tier (L1) and a distributed tier (L2).
// Reads promote L2 hits into L1; writes and deletes fan out to both tiers.
// A failing tier degrades to a miss instead of failing the request.
type TwoLevel struct {
	l1, l2 domain.Cache
	l1TTL  time.Duration
	l2TTL  time.Duration
	log    zerolog.Logger
}

func NewTwoLevel(l1, l2 domain.Cache, l1TTL, l2TTL time.Duration, log zerolog.Logger) *TwoLevel {
	if l1TTL <= 0 {
		l1TTL = DefaultL1TTL
	}
	if l2TTL <= 0 {
		l2TTL = DefaultL2TTL
	}
	return &TwoLevel{l1: l1, l2: l2, l1TTL: l1TTL, l2TTL: l2TTL, log: log}
}

func (t *TwoLevel) Get(ctx context.Context, key string, dst any) (bool, error) {
	if ok, err := t.l1.Get(ctx, key, dst); err != nil {
		t.log.Warn().Err(err).Str("key", key).Msg("l1 cache get failed")
	} else if ok {
		observability.ObserveCache("two_level", "hit")
		return true, nil
	}

	ok, err := t.l2.Get(ctx, key, dst)
	if err != nil {
		t.log.Warn().Err(err).Str("key", key).Msg("l2 cache get failed")
		observability.ObserveCache("two_level", "miss")
		return false, nil
	}
	if !ok {
		observability.ObserveCache("two_level", "miss")
		return false, nil
	}

	// Promote into L1 at the short TTL.
	if err := t.l1.Set(ctx, key, dst, t.l1TTL); err != nil {
		t.log.Warn().Err(err).Str("key", key).Msg("l1 cache promote failed")
	}
	observability.ObserveCache("two_level", "hit")
	return true, nil
}

// SetTTL writes to both tiers concurrently with explicit expirations.
// Non-positive TTLs fall back to the configured defaults.
func (t *TwoLevel) SetTTL(ctx context.Context, key string, v any, l1TTL, l2TTL time.Duration) error {
	if l1TTL <= 0 {
		l1TTL = t.l1TTL
	}
	if l2TTL <= 0 {
		l2TTL = t.l2TTL
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := t.l1.Set(gctx, key, v, l1TTL); err != nil {
			t.log.Warn().Err(err).Str("key", key).Msg("l1 cache set failed")
		}
		return nil
	})
	g.Go(func() error {
		if err := t.l2.Set(gctx, key, v, l2TTL); err != nil {
			t.log.Warn().Err(err).Str("key", key).Msg("l2 cache set failed")
		}
		return nil
	})
	_ = g.Wait()
	observability.ObserveCache("two_level", "set")
	return nil
}

func (t *TwoLevel) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	return t.SetTTL(ctx, key, v, t.l1TTL, ttl)
}

func (t *TwoLevel) Del(ctx context.Context, key string) error {
	t.fanOut(ctx, key, func(c domain.Cache, ctx context.Context) error {
		return c.Del(ctx, key)
	})
	observability.ObserveCache("two_level", "del")
	return nil
}

func (t *TwoLevel) DelPrefix(ctx context.Context, prefix string) error {
	t.fanOut(ctx, prefix, func(c domain.Cache, ctx context.Context) error {
		return c.DelPrefix(ctx, prefix)
	})
	observability.ObserveCache("two_level", "del")
	return nil
}

func (t *TwoLevel) fanOut(ctx context.Context, key string, op func(domain.Cache, context.Context) error) {
	g, gctx := errgroup.WithContext(ctx)
	for tier, c := range map[string]domain.Cache{"l1": t.l1, "l2": t.l2} {
		tier, c := tier, c
		g.Go(func() error {
			if err := op(c, gctx); err != nil {
				t.log.Warn().Err(err).Str("tier", tier).Str("key", key).Msg("cache delete failed")
			}
			return nil
		})
	}
	_ = g.Wait()
}
