// Package locator provides a runtime component registry and resolver —
// a single place where code asks "give me the implementation for
// capability X" without hard-wiring a constructor call.
//
// # Overview
//
// A Locator satisfies a request for a capability (identified by a
// package-qualified type name or an arbitrary string key) through one of
// four strategies, in fixed precedence order:
//
//  1. A registered factory — a helper whose sole job is producing
//     instances of the capability.
//  2. A registered type association — a direct mapping to a concrete
//     implementation identifier.
//  3. A naming convention — the implementation identifier is derived
//     from the capability identifier by stripping a configurable marker
//     (default: a leading "I").
//  4. Direct instantiation, for concrete (non-abstract) capabilities.
//
// Because Go cannot instantiate a type from its name at runtime, every
// instantiable identifier must be backed by a Constructor function in
// the Locator's constructor registry. The convention path derives an
// identifier string and looks it up there.
//
// # Capabilities
//
//	// Build a descriptor from a Go type
//	cap := locator.InterfaceOf[EmployeeStore]()
//
//	// Or spell the key out for types that only exist as strings
//	cap := locator.Capability{Key: "app.IWidget", Kind: locator.KindInterface}
//
// # Registration
//
//	l := locator.New()
//
//	// Constructors back every instantiable identifier
//	l.RegisterConstructor("app.Widget", func(args ...any) (any, error) {
//	    return &Widget{}, nil
//	})
//
//	// Precedence overrides
//	l.RegisterFactory("app.IWidget", "app.WidgetFactory") // wins
//	l.RegisterType("app.IWidget", "app.PlainWidget")      // shadowed
//
//	// Pre-built instances live in the current scope
//	l.RegisterInstance(ctx, "app.IWidget", myWidget)
//
// # Resolving
//
//	// Cache-first; constructs and caches on miss
//	w, err := l.Make(ctx, cap)
//
//	// Always a fresh instance (overwrites the cache entry)
//	w, err := l.MakeFresh(ctx, cap)
//
//	// By-key lookup only — never constructs
//	w, err := l.Retrieve(ctx, "app.IWidget")
//
//	// Generic (preferred — no type assertion required)
//	store, err := locator.Make[EmployeeStore](ctx, l)
//
// # Scopes
//
// Resolved instances are cached per unit of work. The host creates a
// Scope at the start of a request, attaches it to the context, and lets
// it die with the request:
//
//	ctx = locator.WithScope(ctx, locator.NewScope())
//
// When the context carries no scope the Locator falls back to a single
// process-wide scope. That fallback is shared by every caller and is
// not safe under concurrent units of work; call Reset between logical
// units (e.g. between tests).
//
// Registration tables and the convention mask are process-wide
// configuration. They are meant to be populated during a quiescent
// startup phase (see Registrar); mutating them while other goroutines
// resolve is serialized by the Locator's lock but remains a
// configuration smell, not a feature.
package locator
