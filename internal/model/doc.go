// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go struct representation of devshellgo's HCL
// descriptor files. Its core purpose is to create a strongly-typed, in-memory
// model of the user's shell declarations by parsing the raw HCL files.
//
// # Core Concepts
//
// The model is built around a few key structures:
//
//   - Workspace: The root container representing everything loaded from a
//     descriptor path. It aggregates all shells parsed from one or more .hcl
//     files and enforces workspace-wide rules such as shell name uniqueness.
//
//   - Shell: A single `shell` block: an ordered list of package references,
//     optional version constraints, and a set of environment variable
//     expressions that interpolate package install paths.
//
//   - Environment: The fully-resolved output of a shell: concrete search
//     paths and concrete variable values. It contains no expressions.
//
//   - FSInfo: Metadata linking every Shell back to its source file, used in
//     error messages.
//
// Why store raw hcl.Expression fields for environment variables?
//
// A declared variable like LIBCLANG_PATH = "${pkg.libclang}/lib/libclang.so"
// cannot be evaluated until a resolver has mapped every package reference to
// an install location. The model therefore captures the user's intent as an
// unevaluated expression, and the engine package resolves it into a concrete
// string once all dependency paths are known. This keeps parsing free of any
// resolver knowledge, and keeps resolution a pure function of the mapping.
package model
