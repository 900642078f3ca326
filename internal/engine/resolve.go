package engine

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/devshellgo/internal/ctxlog"
	"github.com/vk/devshellgo/internal/model"
	"github.com/vk/devshellgo/internal/resolver"
)

// Resolve materializes a shell against the given resolver. The returned
// Environment holds one search path per declared dependency, in declaration
// order, and the concrete value of every declared environment variable.
//
// A MissingDependencyError from the resolver aborts resolution and is
// propagated unchanged; no partial Environment is ever returned.
func Resolve(ctx context.Context, shell *model.Shell, r resolver.Resolver) (*model.Environment, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolving shell.", "shell", shell.Name, "dependency_count", len(shell.Dependencies))

	searchPaths := make([]string, 0, len(shell.Dependencies))
	pkgValues := make(map[string]cty.Value, len(shell.Dependencies))
	for _, ref := range shell.Dependencies {
		path, err := r.Resolve(ref)
		if err != nil {
			return nil, err
		}
		logger.Debug("Dependency resolved.", "ref", ref, "path", path)
		searchPaths = append(searchPaths, path)
		pkgValues[ref] = cty.StringVal(path)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			model.PackageRoot: cty.ObjectVal(pkgValues),
		},
	}

	variables := make(map[string]string, len(shell.Env))
	for name, expr := range shell.Env {
		val, diags := expr.Value(evalCtx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate environment variable %q in shell %q: %w", name, shell.Name, diags)
		}
		strVal, err := convert.Convert(val, cty.String)
		if err != nil {
			return nil, fmt.Errorf("environment variable %q in shell %q is not a string: %w", name, shell.Name, err)
		}
		if strVal.IsNull() {
			return nil, fmt.Errorf("environment variable %q in shell %q is null", name, shell.Name)
		}
		variables[name] = strVal.AsString()
	}

	logger.Debug("Shell resolved.", "shell", shell.Name, "variable_count", len(variables))
	return &model.Environment{
		SearchPaths: searchPaths,
		Variables:   variables,
	}, nil
}
