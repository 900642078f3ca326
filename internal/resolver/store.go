package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// storeEntry is one installed package tree found in the store directory.
// Version is nil for entries whose directory name carries no version suffix.
type storeEntry struct {
	path    string
	version *semver.Version
}

// Store resolves references by scanning a store directory whose entries are
// named <hash>-<name> or <hash>-<name>-<version>. When several versions of a
// package are installed, the highest one satisfying the reference's version
// constraint wins. The directory is scanned once at construction; Resolve is
// a pure lookup afterwards.
type Store struct {
	dir         string
	constraints map[string]*semver.Constraints
	entries     map[string][]storeEntry
}

// NewStore scans the given store directory. Constraints are keyed by package
// reference; references without an entry are unconstrained. Entries that do
// not follow the store naming convention are skipped.
func NewStore(dir string, constraints map[string]string) (*Store, error) {
	parsed := make(map[string]*semver.Constraints, len(constraints))
	for ref, rangeStr := range constraints {
		c, err := semver.NewConstraint(rangeStr)
		if err != nil {
			return nil, fmt.Errorf("invalid constraint %q for package %q: %w", rangeStr, ref, err)
		}
		parsed[ref] = c
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read store directory %s: %w", dir, err)
	}

	store := &Store{
		dir:         dir,
		constraints: parsed,
		entries:     map[string][]storeEntry{},
	}
	for _, dirEntry := range dirEntries {
		if !dirEntry.IsDir() {
			continue
		}
		name, version, ok := splitStoreName(dirEntry.Name())
		if !ok {
			continue
		}
		store.entries[name] = append(store.entries[name], storeEntry{
			path:    filepath.Join(dir, dirEntry.Name()),
			version: version,
		})
	}

	// Sort candidates descending by version, unversioned entries last, with
	// the path as a tie-breaker. Resolve can then take the first match.
	for _, candidates := range store.entries {
		sort.Slice(candidates, func(i, j int) bool {
			vi, vj := candidates[i].version, candidates[j].version
			switch {
			case vi != nil && vj != nil && !vi.Equal(vj):
				return vi.GreaterThan(vj)
			case vi != nil && vj == nil:
				return true
			case vi == nil && vj != nil:
				return false
			default:
				return candidates[i].path < candidates[j].path
			}
		})
	}

	return store, nil
}

// Resolve implements the Resolver interface.
func (s *Store) Resolve(ref string) (string, error) {
	candidates := s.entries[ref]
	constraint := s.constraints[ref]

	for _, candidate := range candidates {
		if constraint != nil {
			if candidate.version == nil || !constraint.Check(candidate.version) {
				continue
			}
		}
		return candidate.path, nil
	}

	return "", &MissingDependencyError{Ref: ref}
}

// splitStoreName splits a store directory name into its package name and
// optional version, discarding the leading hash. The version is the suffix
// after the last dash iff that suffix parses as a version, so names
// containing dashes (pkg-config) still resolve correctly.
func splitStoreName(dirName string) (string, *semver.Version, bool) {
	hash, rest, found := strings.Cut(dirName, "-")
	if !found || hash == "" || rest == "" {
		return "", nil, false
	}

	if idx := strings.LastIndex(rest, "-"); idx > 0 {
		if version, err := semver.NewVersion(rest[idx+1:]); err == nil {
			return rest[:idx], version, true
		}
	}

	return rest, nil, true
}
