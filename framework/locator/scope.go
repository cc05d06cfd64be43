package locator

import (
	"context"
	"sync"
)

// ── Scope ─────────────────────────────────────────────────────────────────────

// Scope owns the resolved-instance cache for one unit of work — one
// inbound request, one test. The host creates a Scope at the start of
// the unit, attaches it to the context with WithScope, and discards it
// when the unit ends.
type Scope struct {
	mu        sync.RWMutex
	instances map[string]any
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{instances: make(map[string]any)}
}

// Register stores a component under key, replacing any prior entry.
func (s *Scope) Register(key string, component any) error {
	if key == "" {
		return ErrInvalidKey
	}
	if component == nil {
		return ErrInvalidComponent
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instances[key] = component
	return nil
}

// Has reports whether an instance is cached under key.
func (s *Scope) Has(key string) (bool, error) {
	if key == "" {
		return false, ErrInvalidKey
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.instances[key]
	return ok, nil
}

// Retrieve returns the cached instance for key, or ErrNotFound.
func (s *Scope) Retrieve(key string) (any, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	inst, ok := s.instances[key]
	if !ok {
		return nil, ErrNotFound
	}
	return inst, nil
}

// Unregister removes the entry for key. Absent keys are a no-op.
func (s *Scope) Unregister(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.instances, key)
	return nil
}

// UnregisterAll empties the scope.
func (s *Scope) UnregisterAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instances = make(map[string]any)
}

// Len returns the number of cached instances (for tests/debugging).
func (s *Scope) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.instances)
}

// ── Context propagation ───────────────────────────────────────────────────────

type scopeCtxKey struct{}

// WithScope attaches a scope to the context. Every Locator call that
// takes this context uses s as its instance cache.
func WithScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, s)
}

// ScopeFrom extracts the scope attached to the context, if any.
func ScopeFrom(ctx context.Context) (*Scope, bool) {
	s, ok := ctx.Value(scopeCtxKey{}).(*Scope)
	return s, ok
}
