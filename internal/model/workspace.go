// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Workspace structure, which is the root container for
// all shells loaded from a user's .hcl descriptor files.
//
// Why have a Workspace?
//
// A user might keep several shells in one file, or split them across a
// directory of files. The Workspace discovers all `shell` blocks and
// consolidates them into a single view, which is where workspace-wide rules
// such as shell name uniqueness are enforced.
package model

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/devshellgo/internal/ctxlog"
	"github.com/vk/devshellgo/internal/fsutil"
)

// Workspace holds every shell found under a descriptor path.
type Workspace struct {
	Shells []*Shell
}

// NewWorkspace creates and returns an initialized Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{
		Shells: []*Shell{},
	}
}

// hclShellFile represents the top-level structure of a descriptor file for decoding.
type hclShellFile struct {
	Shells []*hclShell `hcl:"shell,block"`
}

// newShellsFromHCL parses a single HCL file and returns the shells found within it.
func newShellsFromHCL(filePath string, parser *hclparse.Parser) ([]*Shell, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
	}

	var parsedFile hclShellFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsedFile)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filePath, diags)
	}

	shells := make([]*Shell, 0, len(parsedFile.Shells))
	for _, parsedShell := range parsedFile.Shells {
		shell, shellDiags := NewShellFromHCL(parsedShell, filePath)
		if shellDiags.HasErrors() {
			return nil, fmt.Errorf("error parsing shell in file %s: %w", filePath, shellDiags)
		}
		shells = append(shells, shell)
	}

	return shells, nil
}

// LoadWorkspace finds and parses all HCL files under a descriptor path into a
// Workspace. The path may be a single file or a directory; files are loaded
// in sorted order so that the workspace's contents are deterministic.
func LoadWorkspace(ctx context.Context, descriptorPath string) (*Workspace, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading workspace from path", "path", descriptorPath)

	files, err := fsutil.FindFilesByExtension(descriptorPath, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find descriptor files in %s: %w", descriptorPath, err)
	}

	workspace := NewWorkspace()
	if len(files) == 0 {
		logger.Warn("No .hcl descriptor files found in path, returning empty workspace", "path", descriptorPath)
		return workspace, nil
	}

	parser := hclparse.NewParser()
	byName := map[string]*Shell{}
	for _, file := range files {
		shells, err := newShellsFromHCL(file, parser)
		if err != nil {
			return nil, err
		}
		for _, shell := range shells {
			if existing, ok := byName[shell.Name]; ok {
				return nil, fmt.Errorf("duplicate shell %q: declared in %s and %s",
					shell.Name, existing.FSInformation.FilePath, shell.FSInformation.FilePath)
			}
			byName[shell.Name] = shell
			workspace.Shells = append(workspace.Shells, shell)
		}
	}

	logger.Info("Workspace loaded successfully.", "shells_found", len(workspace.Shells))
	return workspace, nil
}

// Shell returns the shell with the given name, if present.
func (w *Workspace) Shell(name string) (*Shell, bool) {
	for _, shell := range w.Shells {
		if shell.Name == name {
			return shell, true
		}
	}
	return nil, false
}

// Default returns the workspace's only shell. It fails when the workspace is
// empty or when a name would be needed to disambiguate.
func (w *Workspace) Default() (*Shell, error) {
	switch len(w.Shells) {
	case 0:
		return nil, fmt.Errorf("workspace declares no shells")
	case 1:
		return w.Shells[0], nil
	default:
		return nil, fmt.Errorf("workspace declares %d shells (%v): select one by name",
			len(w.Shells), w.ShellNames())
	}
}

// ShellNames returns the sorted names of every shell in the workspace.
func (w *Workspace) ShellNames() []string {
	names := make([]string, 0, len(w.Shells))
	for _, shell := range w.Shells {
		names = append(names, shell.Name)
	}
	sort.Strings(names)
	return names
}
