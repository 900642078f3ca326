package resolver

import (
	"errors"
	"fmt"
)

// Resolver maps a package reference to the root of its installed tree.
// Implementations must be deterministic: the same reference always resolves
// to the same path for the lifetime of the resolver.
type Resolver interface {
	Resolve(ref string) (string, error)
}

// MissingDependencyError is returned when a declared package reference cannot
// be located. It is the only error kind a resolver produces; callers
// propagate it unchanged.
type MissingDependencyError struct {
	Ref string
}

// Error implements the error interface.
func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("missing dependency: package reference %q could not be resolved", e.Ref)
}

// IsMissingDependency reports whether err is, or wraps, a MissingDependencyError.
func IsMissingDependency(err error) bool {
	var missing *MissingDependencyError
	return errors.As(err, &missing)
}
