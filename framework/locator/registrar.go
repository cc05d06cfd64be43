package locator

import "context"

// ── Registrar ─────────────────────────────────────────────────────────────────

// Registrar groups the registrations for one area of an application.
// Register runs during the quiescent configuration phase and should
// only populate tables; Boot runs after every registrar has
// registered, so it may resolve components.
type Registrar interface {
	Register(l *Locator) error
	Boot(ctx context.Context, l *Locator) error
}

// BaseRegistrar is an embeddable no-op Boot. Embed it and override
// only Register when boot logic is not needed.
type BaseRegistrar struct{}

func (BaseRegistrar) Boot(_ context.Context, _ *Locator) error { return nil }

// ── Bootstrap ─────────────────────────────────────────────────────────────────

// Bootstrap runs registrars against a Locator in two phases: all
// Register calls first, then all Boot calls.
type Bootstrap struct {
	locator    *Locator
	registrars []Registrar
	registered map[Registrar]bool
	booted     bool
}

// NewBootstrap creates a Bootstrap bound to l.
func NewBootstrap(l *Locator) *Bootstrap {
	return &Bootstrap{
		locator:    l,
		registered: make(map[Registrar]bool),
	}
}

// Register adds a registrar and runs its Register phase. Registering
// the same registrar instance twice is a no-op. If Boot has already
// run, the registrar is booted immediately.
func (b *Bootstrap) Register(ctx context.Context, r Registrar) error {
	if b.registered[r] {
		return nil
	}
	b.registered[r] = true

	if err := r.Register(b.locator); err != nil {
		return err
	}
	b.registrars = append(b.registrars, r)

	if b.booted {
		return r.Boot(ctx, b.locator)
	}
	return nil
}

// Boot runs the Boot phase on all registrars, in registration order.
// Subsequent calls are no-ops.
func (b *Bootstrap) Boot(ctx context.Context) error {
	if b.booted {
		return nil
	}
	b.booted = true
	for _, r := range b.registrars {
		if err := r.Boot(ctx, b.locator); err != nil {
			return err
		}
	}
	return nil
}

// Booted reports whether Boot has been called.
func (b *Bootstrap) Booted() bool { return b.booted }

// Registrars returns the registrars in registration order.
func (b *Bootstrap) Registrars() []Registrar { return b.registrars }
