// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Shell structure, the unit of declaration within a
// Workspace. It represents a single named development shell: which packages
// it needs, which versions are acceptable, and which environment variables
// are derived from the install locations of those packages.
//
// Why keep dependencies ordered?
//
// The order of the `dependencies` list defines the order of the resolved
// search paths. Resolution must be deterministic, so the model preserves the
// order the user wrote rather than normalizing it.
package model

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/devshellgo/internal/hclutil"
)

// PackageRoot is the root symbol under which package references appear in
// descriptor expressions, as in pkg.libclang.
const PackageRoot = "pkg"

// Shell is the in-memory representation of a `shell` block.
type Shell struct {
	Name          string
	FSInformation *FSInfo

	// Dependencies holds the declared package references in source order.
	Dependencies []string

	// Constraints maps a package reference to a semver range consulted by
	// resolvers that can choose between installed versions.
	Constraints map[string]string

	// Env maps a variable name to its unevaluated expression. Evaluation is
	// deferred until every package reference has been resolved to a path.
	Env map[string]hcl.Expression
}

// hclShell represents a single 'shell' block for initial decoding from HCL.
type hclShell struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

var shellBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "dependencies", Required: true},
		{Name: "constraints"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "environment"},
	},
}

// NewShellFromHCL creates a Shell from a parsed HCL shell block. The returned
// diagnostics cover both structural decoding and the shell's own validation
// rules, so a Shell that comes back without error diagnostics is well-formed.
func NewShellFromHCL(parsed *hclShell, filePath string) (*Shell, hcl.Diagnostics) {
	shell := &Shell{
		Name:          parsed.Name,
		FSInformation: NewFSInfo(filePath),
		Constraints:   map[string]string{},
		Env:           map[string]hcl.Expression{},
	}

	var allDiags hcl.Diagnostics

	bodyContent, contentDiags := parsed.Body.Content(shellBodySchema)
	allDiags = append(allDiags, contentDiags...)
	if contentDiags.HasErrors() {
		return nil, allDiags
	}

	depsAttr := bodyContent.Attributes["dependencies"]
	deps, depDiags := parseDependencies(depsAttr)
	allDiags = append(allDiags, depDiags...)
	shell.Dependencies = deps

	if attr, exists := bodyContent.Attributes["constraints"]; exists {
		constraints, consDiags := parseConstraints(attr)
		allDiags = append(allDiags, consDiags...)
		shell.Constraints = constraints
	}

	envBlock, blockDiags := hclutil.FindUniqueBlock(bodyContent.Blocks, "environment")
	allDiags = append(allDiags, blockDiags...)
	if envBlock != nil {
		attrs, attrDiags := envBlock.Body.JustAttributes()
		allDiags = append(allDiags, attrDiags...)
		for name, attr := range attrs {
			shell.Env[name] = attr.Expr
		}
	}

	if allDiags.HasErrors() {
		return nil, allDiags
	}

	allDiags = append(allDiags, shell.validate()...)
	if allDiags.HasErrors() {
		return nil, allDiags
	}

	return shell, allDiags
}

// parseDependencies extracts the ordered package references from the
// `dependencies` list. Every element must be a plain pkg.<name> reference;
// anything else is a diagnostic, as is declaring the same reference twice.
func parseDependencies(attr *hcl.Attribute) ([]string, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	elems, listDiags := hcl.ExprList(attr.Expr)
	diags = append(diags, listDiags...)
	if listDiags.HasErrors() {
		return nil, diags
	}

	seen := make(map[string]struct{}, len(elems))
	deps := make([]string, 0, len(elems))
	for _, elem := range elems {
		traversal, travDiags := hcl.AbsTraversalForExpr(elem)
		if travDiags.HasErrors() {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid dependency",
				Detail:   fmt.Sprintf("Dependencies must be plain %s.<name> references.", PackageRoot),
				Subject:  elem.Range().Ptr(),
			})
			continue
		}

		ref, ok := hclutil.RefName(traversal, PackageRoot)
		if !ok {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid dependency",
				Detail: fmt.Sprintf("%q is not a %s.<name> reference.",
					hclutil.TraversalKey(traversal), PackageRoot),
				Subject: elem.Range().Ptr(),
			})
			continue
		}

		if _, dup := seen[ref]; dup {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate dependency",
				Detail:   fmt.Sprintf("Package reference %q is declared more than once.", ref),
				Subject:  elem.Range().Ptr(),
			})
			continue
		}
		seen[ref] = struct{}{}
		deps = append(deps, ref)
	}

	return deps, diags
}

// parseConstraints decodes the `constraints` map eagerly. Constraint values
// carry no package interpolations, so they can be evaluated without a
// resolver in hand.
func parseConstraints(attr *hcl.Attribute) (map[string]string, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	val, valDiags := attr.Expr.Value(nil)
	diags = append(diags, valDiags...)
	if valDiags.HasErrors() {
		return nil, diags
	}

	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid constraints",
			Detail:   "The constraints attribute must be a map of package reference to version range.",
			Subject:  attr.Expr.Range().Ptr(),
		})
		return nil, diags
	}

	constraints := map[string]string{}
	for ref, rangeVal := range val.AsValueMap() {
		if rangeVal.Type() != cty.String {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid constraint",
				Detail:   fmt.Sprintf("The constraint for %q must be a version range string.", ref),
				Subject:  attr.Expr.Range().Ptr(),
			})
			continue
		}
		constraints[ref] = rangeVal.AsString()
	}

	return constraints, diags
}
