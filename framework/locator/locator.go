package locator

import (
	"context"
	"sync"
)

// ── Locator ───────────────────────────────────────────────────────────────────

// Locator is the component registry and resolver. Construct one
// explicitly and pass it to callers; the registration tables, the
// constructor registry and the convention mask it carries are shared
// process-wide configuration, while resolved instances live in the
// per-unit-of-work Scope taken from the context.
type Locator struct {
	mu sync.RWMutex

	// capability key → factory identifier
	factories map[string]string

	// capability key → concrete implementation identifier
	types map[string]string

	// identifier → constructor; the stand-in for the runtime type
	// system, survives Reset
	constructors map[string]Constructor

	mask string

	// fallback holds resolved instances for callers whose context
	// carries no scope. Shared across all such callers.
	fallback *Scope
}

// New creates an empty Locator with the default convention mask.
func New() *Locator {
	return &Locator{
		factories:    make(map[string]string),
		types:        make(map[string]string),
		constructors: make(map[string]Constructor),
		mask:         DefaultMask,
		fallback:     NewScope(),
	}
}

// scope returns the context's scope, or the process-wide fallback.
func (l *Locator) scope(ctx context.Context) *Scope {
	if s, ok := ScopeFrom(ctx); ok {
		return s
	}
	return l.fallback
}

// ── Constructor registry ──────────────────────────────────────────────────────

// RegisterConstructor backs an identifier with a constructor function.
// Every identifier the engine may need to instantiate — concrete
// capabilities, type associations, factory types, convention-derived
// implementations — must be registered here.
func (l *Locator) RegisterConstructor(identifier string, fn Constructor) error {
	if identifier == "" {
		return ErrInvalidKey
	}
	if fn == nil {
		return ErrInvalidComponent
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.constructors[identifier] = fn
	return nil
}

// HasConstructor reports whether an identifier is constructible.
func (l *Locator) HasConstructor(identifier string) (bool, error) {
	if identifier == "" {
		return false, ErrInvalidKey
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.constructors[identifier]
	return ok, nil
}

// UnregisterConstructor removes an identifier's constructor.
func (l *Locator) UnregisterConstructor(identifier string) error {
	if identifier == "" {
		return ErrInvalidKey
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.constructors, identifier)
	return nil
}

func (l *Locator) constructor(identifier string) (Constructor, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn, ok := l.constructors[identifier]
	return fn, ok
}

// ── Factory table ─────────────────────────────────────────────────────────────

// RegisterFactory maps a capability key to a factory identifier,
// overwriting any prior mapping. Factory registrations take precedence
// over every other resolution strategy.
func (l *Locator) RegisterFactory(key, factoryID string) error {
	if key == "" || factoryID == "" {
		return ErrInvalidKey
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.factories[key] = factoryID
	return nil
}

// HasFactory reports whether a factory is registered for key.
func (l *Locator) HasFactory(key string) (bool, error) {
	if key == "" {
		return false, ErrInvalidKey
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.factories[key]
	return ok, nil
}

// UnregisterFactory removes the factory mapping for key. Absent keys
// are a no-op.
func (l *Locator) UnregisterFactory(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.factories, key)
	return nil
}

// UnregisterAllFactories clears the factory table.
func (l *Locator) UnregisterAllFactories() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.factories = make(map[string]string)
}

func (l *Locator) factoryFor(key string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	id, ok := l.factories[key]
	return id, ok
}

// ── Type table ────────────────────────────────────────────────────────────────

// RegisterType maps a capability key to a concrete implementation
// identifier, overwriting any prior mapping. A key may carry both a
// factory and a type association; the factory wins at resolution time.
func (l *Locator) RegisterType(key, implementationID string) error {
	if key == "" || implementationID == "" {
		return ErrInvalidKey
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.types[key] = implementationID
	return nil
}

// HasType reports whether a type association is registered for key.
func (l *Locator) HasType(key string) (bool, error) {
	if key == "" {
		return false, ErrInvalidKey
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.types[key]
	return ok, nil
}

// UnregisterType removes the type association for key. Absent keys are
// a no-op.
func (l *Locator) UnregisterType(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.types, key)
	return nil
}

// UnregisterAllTypes clears the type table.
func (l *Locator) UnregisterAllTypes() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.types = make(map[string]string)
}

func (l *Locator) typeFor(key string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	id, ok := l.types[key]
	return id, ok
}

// ── Instances (scoped) ────────────────────────────────────────────────────────

// RegisterInstance stores a pre-built component in the current scope
// under key, replacing any prior entry. The key is usually a
// capability key but may be any string, so multiple named instances of
// one capability can coexist in a scope.
func (l *Locator) RegisterInstance(ctx context.Context, key string, component any) error {
	return l.scope(ctx).Register(key, component)
}

// HasInstance reports whether the current scope caches an instance
// under key.
func (l *Locator) HasInstance(ctx context.Context, key string) (bool, error) {
	return l.scope(ctx).Has(key)
}

// UnregisterInstance removes the current scope's entry for key.
func (l *Locator) UnregisterInstance(ctx context.Context, key string) error {
	return l.scope(ctx).Unregister(key)
}

// UnregisterAllInstances empties the current scope.
func (l *Locator) UnregisterAllInstances(ctx context.Context) {
	l.scope(ctx).UnregisterAll()
}

// ── Convention mask ───────────────────────────────────────────────────────────

// Mask returns the current convention mask.
func (l *Locator) Mask() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.mask
}

// SetMask replaces the convention mask. The mask is a single pattern
// with one "*" placeholder; see DefaultMask. Syntax is not validated —
// a broken mask surfaces as construction failures when the convention
// path is hit.
func (l *Locator) SetMask(mask string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.mask = mask
}

// ── Reset ─────────────────────────────────────────────────────────────────────

// Reset returns the Locator to a pristine state: both registration
// tables are cleared, the context's scope (when present) and the
// process-wide fallback scope are emptied, and the convention mask is
// restored to DefaultMask. The constructor registry survives — it
// describes what CAN be built, not what has been configured.
//
// Call Reset between logical units of work that share the fallback
// scope (e.g. between tests).
func (l *Locator) Reset(ctx context.Context) {
	l.mu.Lock()
	l.factories = make(map[string]string)
	l.types = make(map[string]string)
	l.mask = DefaultMask
	l.mu.Unlock()

	if s, ok := ScopeFrom(ctx); ok {
		s.UnregisterAll()
	}
	l.fallback.UnregisterAll()
}

// ── Generic conveniences ──────────────────────────────────────────────────────

// RegisterFactoryFor registers a factory for capability T under its
// KeyOf key.
func RegisterFactoryFor[T any](l *Locator, factoryID string) error {
	return l.RegisterFactory(KeyOf[T](), factoryID)
}

// HasFactoryFor reports whether capability T has a registered factory.
func HasFactoryFor[T any](l *Locator) bool {
	ok, _ := l.HasFactory(KeyOf[T]())
	return ok
}

// UnregisterFactoryFor removes capability T's factory registration.
func UnregisterFactoryFor[T any](l *Locator) error {
	return l.UnregisterFactory(KeyOf[T]())
}

// RegisterTypeFor registers a type association for capability T under
// its KeyOf key.
func RegisterTypeFor[T any](l *Locator, implementationID string) error {
	return l.RegisterType(KeyOf[T](), implementationID)
}

// HasTypeFor reports whether capability T has a type association.
func HasTypeFor[T any](l *Locator) bool {
	ok, _ := l.HasType(KeyOf[T]())
	return ok
}

// UnregisterTypeFor removes capability T's type association.
func UnregisterTypeFor[T any](l *Locator) error {
	return l.UnregisterType(KeyOf[T]())
}

// RegisterConstructorFor backs capability T's own identifier with a
// constructor.
func RegisterConstructorFor[T any](l *Locator, fn Constructor) error {
	return l.RegisterConstructor(KeyOf[T](), fn)
}

// RegisterInstanceFor stores a pre-built component under capability
// T's default key in the current scope.
func RegisterInstanceFor[T any](ctx context.Context, l *Locator, component T) error {
	return l.RegisterInstance(ctx, KeyOf[T](), component)
}

// HasInstanceFor reports whether the current scope caches an instance
// under capability T's default key.
func HasInstanceFor[T any](ctx context.Context, l *Locator) bool {
	ok, _ := l.HasInstance(ctx, KeyOf[T]())
	return ok
}

// UnregisterInstanceFor removes capability T's default-key entry from
// the current scope.
func UnregisterInstanceFor[T any](ctx context.Context, l *Locator) error {
	return l.UnregisterInstance(ctx, KeyOf[T]())
}
