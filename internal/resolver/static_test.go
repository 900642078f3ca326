package resolver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticResolve(t *testing.T) {
	t.Parallel()

	mapping := map[string]string{
		"libclang": "/nix/store/ccc-libclang",
	}
	static := NewStatic(mapping)

	path, err := static.Resolve("libclang")
	require.NoError(t, err)
	assert.Equal(t, "/nix/store/ccc-libclang", path)

	// The resolver holds a copy, so mutating the source map has no effect.
	mapping["libclang"] = "/elsewhere"
	path, err = static.Resolve("libclang")
	require.NoError(t, err)
	assert.Equal(t, "/nix/store/ccc-libclang", path)
}

func TestStaticResolve_Missing(t *testing.T) {
	t.Parallel()

	static := NewStatic(map[string]string{"llvm": "/nix/store/bbb-llvm"})

	_, err := static.Resolve("libclang")

	require.Error(t, err)
	assert.True(t, IsMissingDependency(err))

	var missing *MissingDependencyError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "libclang", missing.Ref)
}
