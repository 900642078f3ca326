package resolver

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// lockfileDoc is the on-disk shape of a package lockfile:
//
//	packages:
//	  libclang: /nix/store/ccc-libclang
//	  llvm: /nix/store/bbb-llvm
type lockfileDoc struct {
	Packages map[string]string `yaml:"packages"`
}

// LoadLockfile reads a YAML lockfile mapping package references to their
// installed locations and returns a resolver backed by it. All I/O happens
// here; the returned resolver is a pure lookup.
func LoadLockfile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lockfile %s: %w", path, err)
	}

	var doc lockfileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse lockfile %s: %w", path, err)
	}
	if len(doc.Packages) == 0 {
		return nil, fmt.Errorf("lockfile %s declares no packages", path)
	}

	return NewStatic(doc.Packages), nil
}
