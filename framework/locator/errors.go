package locator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is returned when an operation receives an empty
	// key or capability identifier.
	ErrInvalidKey = errors.New("locator: key must not be empty")

	// ErrInvalidComponent is returned when an instance registration is
	// attempted with a nil component.
	ErrInvalidComponent = errors.New("locator: component must not be nil")

	// ErrNotFound is returned when a by-key retrieval finds no
	// registered instance for the key.
	ErrNotFound = errors.New("locator: no instance registered")

	// ErrConstruction is the sentinel wrapped by every
	// ConstructionError. Callers should treat it as a configuration
	// defect (missing registration, typo'd convention), not a
	// transient condition.
	ErrConstruction = errors.New("locator: construction failed")
)

// ConstructionError reports that the resolution engine could not
// produce an instance. Identifier is the implementation identifier it
// attempted to construct (or the capability key when no identifier
// could be derived).
type ConstructionError struct {
	Identifier string
	Reason     string
	Err        error
}

func (e *ConstructionError) Error() string {
	msg := fmt.Sprintf("locator: construction failed for %q: %s", e.Identifier, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConstructionError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrConstruction
}

// Is lets errors.Is(err, ErrConstruction) match even when a cause is
// wrapped.
func (e *ConstructionError) Is(target error) bool {
	return target == ErrConstruction
}

func constructionErr(identifier, reason string) *ConstructionError {
	return &ConstructionError{Identifier: identifier, Reason: reason}
}

func constructionWrap(identifier, reason string, err error) *ConstructionError {
	return &ConstructionError{Identifier: identifier, Reason: reason, Err: err}
}
