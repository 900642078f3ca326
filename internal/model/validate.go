// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file holds the shell's static validation rules.
//
// Why validate at load time rather than at resolve time?
//
// A shell whose environment interpolates a package it never declared is a
// logic error in the descriptor itself, not a property of any particular
// resolver mapping. Catching it here means resolution can assume referential
// consistency and stay a pure function of the mapping.
package model

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/hashicorp/hcl/v2"

	"github.com/vk/devshellgo/internal/hclutil"
)

// validate enforces the shell's internal consistency rules: every package
// reference used by an environment expression or a constraint must appear in
// the dependencies list, and every constraint must be a parseable version
// range.
func (s *Shell) validate() hcl.Diagnostics {
	var diags hcl.Diagnostics

	declared := make(map[string]struct{}, len(s.Dependencies))
	for _, ref := range s.Dependencies {
		declared[ref] = struct{}{}
	}

	for name, expr := range s.Env {
		for _, ref := range hclutil.References(PackageRoot, expr) {
			if _, ok := declared[ref]; !ok {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Undeclared package reference",
					Detail: fmt.Sprintf("Environment variable %q references %s.%s, which is not in the dependencies of shell %q.",
						name, PackageRoot, ref, s.Name),
					Subject: expr.Range().Ptr(),
				})
			}
		}
	}

	for ref, rangeStr := range s.Constraints {
		if _, ok := declared[ref]; !ok {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Undeclared package reference",
				Detail: fmt.Sprintf("A version constraint is set for %q, which is not in the dependencies of shell %q.",
					ref, s.Name),
			})
		}
		if _, err := semver.NewConstraint(rangeStr); err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid version constraint",
				Detail:   fmt.Sprintf("The constraint %q for package %q is not a valid version range: %s.", rangeStr, ref, err),
			})
		}
	}

	return diags
}
