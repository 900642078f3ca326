// Package hclutil provides small helpers for working with HCL expressions
// and traversals, shared by the descriptor model and the resolution engine.
package hclutil

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

// TraversalKey generates a stable, canonical string representation for an
// hcl.Traversal, suitable for use as a map key or in diagnostics.
func TraversalKey(t hcl.Traversal) string {
	// e.g., pkg.libclang
	return string(hclwrite.TokensForTraversal(t).Bytes())
}

// RefName reports whether the traversal is exactly a two-step reference
// rooted at the given symbol (e.g. pkg.libclang) and, if so, returns the
// attribute name.
func RefName(t hcl.Traversal, root string) (string, bool) {
	if len(t) != 2 {
		return "", false
	}
	rootStep, ok := t[0].(hcl.TraverseRoot)
	if !ok || rootStep.Name != root {
		return "", false
	}
	attrStep, ok := t[1].(hcl.TraverseAttr)
	if !ok {
		return "", false
	}
	return attrStep.Name, true
}

// References walks the given expressions and collects the unique attribute
// names referenced under the root symbol. The result is sorted so callers
// that report on it produce deterministic output.
func References(root string, exprs ...hcl.Expression) []string {
	seen := make(map[string]struct{})
	for _, expr := range exprs {
		if expr == nil {
			continue
		}
		for _, traversal := range expr.Variables() {
			if name, ok := RefName(traversal, root); ok {
				seen[name] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
