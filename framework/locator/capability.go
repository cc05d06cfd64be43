package locator

import "reflect"

// ── Capability descriptors ────────────────────────────────────────────────────

// Kind classifies a capability for the resolution engine. Go has no
// runtime notion of "abstractness", so callers tag the descriptor
// explicitly.
type Kind int

const (
	// KindInterface resolves via factory > type association > convention.
	KindInterface Kind = iota

	// KindAbstract resolves via factory > type association only; there
	// is no reliable convention for locating an abstract role's
	// implementation, so resolution fails without a registration.
	KindAbstract

	// KindConcrete resolves by constructing the capability's own
	// identifier directly, bypassing the registration tables.
	KindConcrete
)

func (k Kind) String() string {
	switch k {
	case KindInterface:
		return "interface"
	case KindAbstract:
		return "abstract"
	case KindConcrete:
		return "concrete"
	}
	return "unknown"
}

// Capability identifies what a caller wants resolved. Key is an opaque
// string — usually a package-qualified type name from KeyOf, but any
// exact-match string works.
type Capability struct {
	Key  string
	Kind Kind
}

// KeyOf returns the package-qualified name of T, the default capability
// key for a Go type.
//
//	locator.KeyOf[EmployeeStore]()  // "main.EmployeeStore"
func KeyOf[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.PkgPath() + "." + t.Name()
}

// InterfaceOf builds an interface-kind descriptor for T.
func InterfaceOf[T any]() Capability {
	return Capability{Key: KeyOf[T](), Kind: KindInterface}
}

// AbstractOf builds an abstract-kind descriptor for T.
func AbstractOf[T any]() Capability {
	return Capability{Key: KeyOf[T](), Kind: KindAbstract}
}

// ConcreteOf builds a concrete-kind descriptor for T.
func ConcreteOf[T any]() Capability {
	return Capability{Key: KeyOf[T](), Kind: KindConcrete}
}

// ── Construction contracts ────────────────────────────────────────────────────

// Constructor builds a component from optional caller-supplied
// arguments. Every instantiable identifier in the Locator is backed by
// one; the convention path derives an identifier string and looks its
// Constructor up.
type Constructor func(args ...any) (any, error)

// Factory is the one-method contract for registered component
// factories: produce an instance of the capability. Factories are
// themselves constructed through the constructor registry, so they may
// take construction arguments of their own.
type Factory interface {
	Create() (any, error)
}
