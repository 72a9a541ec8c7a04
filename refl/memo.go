// Package refl: per-instance memoization of expensive derived values.
package refl

import "sync"

// Memo is a per-instance cache keyed by an operation name plus any encoded
// arguments (e.g. "cardinality" or "rational:5"). Values are stored once and
// never mutated afterwards, so concurrent readers are safe; callers that
// cache pointer-typed big values must hand out copies, not the cached value
// itself.
type Memo struct {
	mu sync.RWMutex
	m  map[string]interface{}
}

// NewMemo returns an empty cache.
func NewMemo() *Memo {
	return &Memo{m: make(map[string]interface{})}
}

// Load returns the cached value for key, if present.
func (m *Memo) Load(key string) (interface{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.m[key]
	return v, ok
}

// Store records v under key if the key is still vacant and returns the value
// that ended up cached. The first writer wins, so concurrent computations of
// the same deterministic value agree.
func (m *Memo) Store(key string, v interface{}) interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.m[key]; ok {
		return prev
	}
	m.m[key] = v
	return v
}

// Do returns the cached value for key, computing and caching it via fn on a
// miss. fn runs outside the lock; duplicate computation under contention is
// harmless because all values here are deterministic.
func (m *Memo) Do(key string, fn func() interface{}) interface{} {
	if v, ok := m.Load(key); ok {
		return v
	}
	return m.Store(key, fn())
}
