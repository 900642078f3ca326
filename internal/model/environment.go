// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Environment structure, the fully-resolved output of
// a shell. Unlike Shell, it contains no expressions: every value is a
// concrete string, ready to be rendered or exported.
package model

// Environment is the materialized form of a shell: the search paths of its
// resolved dependencies, in declaration order, and the concrete values of its
// declared variables.
type Environment struct {
	SearchPaths []string          `json:"search_paths"`
	Variables   map[string]string `json:"variables"`
}
