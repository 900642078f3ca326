// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the FSInfo struct, which stores file system metadata.
//
// Why store the file path?
//
// The file path connects a parsed in-memory Shell back to its physical source
// on disk. When a workspace spans several descriptor files, diagnostics such
// as "duplicate shell name" can then report exactly which file declared the
// conflicting block.
package model

type FSInfo struct {
	FilePath string
}

func NewFSInfo(filePath string) *FSInfo {
	return &FSInfo{
		FilePath: filePath,
	}
}
