package resolver

// Static resolves references from a fixed in-memory mapping. It is the
// resolver of choice for library callers and tests that already know where
// every package lives.
type Static struct {
	paths map[string]string
}

// NewStatic creates a Static resolver from the given mapping. The mapping is
// copied, so later mutation of the argument does not affect the resolver.
func NewStatic(paths map[string]string) *Static {
	copied := make(map[string]string, len(paths))
	for ref, path := range paths {
		copied[ref] = path
	}
	return &Static{paths: copied}
}

// Resolve implements the Resolver interface.
func (s *Static) Resolve(ref string) (string, error) {
	path, ok := s.paths[ref]
	if !ok {
		return "", &MissingDependencyError{Ref: ref}
	}
	return path, nil
}
