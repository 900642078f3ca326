package app

import (
	"context"
	"fmt"

	"github.com/vk/devshellgo/internal/ctxlog"
	"github.com/vk/devshellgo/internal/engine"
	"github.com/vk/devshellgo/internal/model"
	"github.com/vk/devshellgo/internal/render"
	"github.com/vk/devshellgo/internal/resolver"
)

// Run executes the main application logic: load the workspace, select a
// shell, resolve it against the configured resolver, and render the result.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	workspace, err := model.LoadWorkspace(ctx, a.config.DescriptorPath)
	if err != nil {
		return fmt.Errorf("failed to load workspace: %w", err)
	}

	if a.config.ListShells {
		for _, name := range workspace.ShellNames() {
			fmt.Fprintln(a.outW, name)
		}
		return nil
	}

	shell, err := a.selectShell(workspace)
	if err != nil {
		return err
	}
	a.logger.Debug("Shell selected.", "shell", shell.Name)

	res, err := a.buildResolver(shell)
	if err != nil {
		return err
	}

	environment, err := engine.Resolve(ctx, shell, res)
	if err != nil {
		return fmt.Errorf("failed to resolve shell %q: %w", shell.Name, err)
	}

	output, err := render.Render(a.config.Format, environment, a.config.SearchPathVar)
	if err != nil {
		return err
	}
	fmt.Fprint(a.outW, output)

	a.logger.Debug("App.Run method finished.")
	return nil
}

// selectShell picks the shell named in the config, or the workspace's only
// shell when no name was given.
func (a *App) selectShell(workspace *model.Workspace) (*model.Shell, error) {
	if a.config.ShellName != "" {
		shell, ok := workspace.Shell(a.config.ShellName)
		if !ok {
			return nil, fmt.Errorf("shell %q not found; workspace declares %v",
				a.config.ShellName, workspace.ShellNames())
		}
		return shell, nil
	}
	return workspace.Default()
}

// buildResolver constructs the resolver selected by the configuration. The
// lockfile resolver pins exact paths, so shell constraints only apply to the
// store resolver, which may have several versions to choose from.
func (a *App) buildResolver(shell *model.Shell) (resolver.Resolver, error) {
	if a.config.PackagesPath != "" {
		return resolver.LoadLockfile(a.config.PackagesPath)
	}
	return resolver.NewStore(a.config.StorePath, shell.Constraints)
}
