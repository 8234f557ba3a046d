package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"hotel_platform/internal/adapters/observability"
)

const defaultMemoryTTL = 5 * time.Minute

// Memory is the in-process tier. It owns its key index (the items map) behind
// one mutex so prefix invalidation never touches ambient state.
type Memory struct {
	mu    sync.Mutex
	items map[string]memoryItem
}

type memoryItem struct {
	data    []byte
	expires time.Time
}

func NewMemory() *Memory {
	return &Memory{items: make(map[string]memoryItem)}
}

func (m *Memory) Get(ctx context.Context, key string, dst any) (bool, error) {
	m.mu.Lock()
	it, ok := m.items[key]
	if ok && time.Now().After(it.expires) {
		delete(m.items, key)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		observability.ObserveCache("memory", "miss")
		return false, nil
	}
	observability.ObserveCache("memory", "hit")
	return true, json.Unmarshal(it.data, dst)
}

func (m *Memory) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultMemoryTTL
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.items[key] = memoryItem{data: b, expires: time.Now().Add(ttl)}
	m.mu.Unlock()
	observability.ObserveCache("memory", "set")
	return nil
}

func (m *Memory) Del(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	observability.ObserveCache("memory", "del")
	return nil
}

func (m *Memory) DelPrefix(ctx context.Context, prefix string) error {
	m.mu.Lock()
	for k := range m.items {
		if strings.HasPrefix(k, prefix) {
			delete(m.items, k)
		}
	}
	m.mu.Unlock()
	observability.ObserveCache("memory", "del")
	return nil
}

// Len reports live (non-expired) entries; used by tests.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	now := time.Now()
	for _, it := range m.items {
		if now.Before(it.expires) {
			n++
		}
	}
	return n
}
