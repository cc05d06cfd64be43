package locator

import (
	"context"
	"fmt"
)

// ── Resolution engine ─────────────────────────────────────────────────────────

// Make resolves a capability cache-first: a cached instance under
// cap.Key is returned as-is; on a miss a new instance is constructed
// and stored in the current scope before being returned.
func (l *Locator) Make(ctx context.Context, cap Capability, args ...any) (any, error) {
	return l.retrieveOrCreate(ctx, cap, true, args)
}

// MakeUncached is Make without the store-back: a cached instance is
// still returned when present, but a miss constructs an instance
// without touching the cache.
func (l *Locator) MakeUncached(ctx context.Context, cap Capability, args ...any) (any, error) {
	return l.retrieveOrCreate(ctx, cap, false, args)
}

// MakeFresh always constructs a brand-new instance, ignoring any
// cached one, and overwrites the cache entry under cap.Key.
func (l *Locator) MakeFresh(ctx context.Context, cap Capability, args ...any) (any, error) {
	return l.retrieveFresh(ctx, cap, true, args)
}

// Build always constructs a brand-new instance and leaves the cache
// untouched.
func (l *Locator) Build(ctx context.Context, cap Capability, args ...any) (any, error) {
	return l.retrieveFresh(ctx, cap, false, args)
}

// Retrieve returns the instance cached under key in the current scope.
// It never falls back to construction; a miss is ErrNotFound. This is
// the path for instances registered under arbitrary string keys that
// have no capability type.
func (l *Locator) Retrieve(ctx context.Context, key string) (any, error) {
	return l.scope(ctx).Retrieve(key)
}

func (l *Locator) retrieveOrCreate(ctx context.Context, cap Capability, register bool, args []any) (any, error) {
	if cap.Key == "" {
		return nil, ErrInvalidKey
	}
	s := l.scope(ctx)
	if inst, err := s.Retrieve(cap.Key); err == nil {
		return inst, nil
	}
	return l.create(s, cap, register, args)
}

func (l *Locator) retrieveFresh(ctx context.Context, cap Capability, register bool, args []any) (any, error) {
	if cap.Key == "" {
		return nil, ErrInvalidKey
	}
	return l.create(l.scope(ctx), cap, register, args)
}

func (l *Locator) create(s *Scope, cap Capability, register bool, args []any) (any, error) {
	inst, err := l.construct(cap, args)
	if err != nil {
		return nil, err
	}
	if register {
		if err := s.Register(cap.Key, inst); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// construct picks the construction strategy for cap. Precedence for
// abstractions is fixed: factory > type association > naming
// convention. Concrete capabilities instantiate directly.
func (l *Locator) construct(cap Capability, args []any) (any, error) {
	switch cap.Kind {
	case KindConcrete:
		return l.instantiate(cap.Key, args)

	case KindInterface:
		if factoryID, ok := l.factoryFor(cap.Key); ok {
			return l.throughFactory(factoryID, args)
		}
		if implID, ok := l.typeFor(cap.Key); ok {
			return l.instantiate(implID, args)
		}
		return l.instantiate(deriveImplementation(cap.Key, l.Mask()), args)

	case KindAbstract:
		if factoryID, ok := l.factoryFor(cap.Key); ok {
			return l.throughFactory(factoryID, args)
		}
		if implID, ok := l.typeFor(cap.Key); ok {
			return l.instantiate(implID, args)
		}
		return nil, constructionErr(cap.Key,
			"abstract capability has neither a factory nor a type association")
	}
	return nil, constructionErr(cap.Key, fmt.Sprintf("unknown capability kind %d", cap.Kind))
}

// throughFactory constructs the registered factory (args go to the
// factory's own constructor), then asks it to produce the component.
func (l *Locator) throughFactory(factoryID string, args []any) (any, error) {
	raw, err := l.instantiate(factoryID, args)
	if err != nil {
		return nil, err
	}
	factory, ok := raw.(Factory)
	if !ok {
		return nil, constructionErr(factoryID,
			fmt.Sprintf("registered factory %T does not implement locator.Factory", raw))
	}
	inst, err := factory.Create()
	if err != nil {
		return nil, constructionWrap(factoryID, "factory failed to produce a component", err)
	}
	if inst == nil {
		return nil, constructionErr(factoryID, "factory produced a nil component")
	}
	return inst, nil
}

// instantiate runs the constructor registered for identifier.
func (l *Locator) instantiate(identifier string, args []any) (any, error) {
	fn, ok := l.constructor(identifier)
	if !ok {
		return nil, constructionErr(identifier, "no constructor registered")
	}
	inst, err := fn(args...)
	if err != nil {
		return nil, constructionWrap(identifier, "constructor failed", err)
	}
	if inst == nil {
		return nil, constructionErr(identifier, "constructor returned nil")
	}
	return inst, nil
}

// ── Generic helpers ───────────────────────────────────────────────────────────

// Make resolves capability T (interface kind, default key) and asserts
// the result. A component that does not implement T — a misbehaving
// factory, a wrong type association — is a construction failure.
func Make[T any](ctx context.Context, l *Locator, args ...any) (T, error) {
	return assertAs[T](l.Make(ctx, InterfaceOf[T](), args...))
}

// MakeFresh is the generic form of (*Locator).MakeFresh for capability
// T (interface kind, default key).
func MakeFresh[T any](ctx context.Context, l *Locator, args ...any) (T, error) {
	return assertAs[T](l.MakeFresh(ctx, InterfaceOf[T](), args...))
}

// Retrieve returns the instance cached under key, typed as T.
func Retrieve[T any](ctx context.Context, l *Locator, key string) (T, error) {
	var zero T
	raw, err := l.Retrieve(ctx, key)
	if err != nil {
		return zero, err
	}
	typed, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("locator: instance under %q is %T, not %T", key, raw, zero)
	}
	return typed, nil
}

func assertAs[T any](raw any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := raw.(T)
	if !ok {
		return zero, constructionErr(KeyOf[T](),
			fmt.Sprintf("produced component %T does not implement the capability", raw))
	}
	return typed, nil
}
