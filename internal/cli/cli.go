package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/devshellgo/internal/app"
	"github.com/vk/devshellgo/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Flags the user set explicitly win over values from the tool config file
// and DEVSHELL_ environment variables.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("devshellgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
devshellgo - resolves declarative dev-shell descriptors into concrete environments.

Usage:
  devshellgo [options] [SHELL_PATH]

Arguments:
  SHELL_PATH
    Path to a single .hcl descriptor file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	shellFlag := flagSet.String("shell", "", "Name of the shell to resolve. Defaults to the only declared shell.")
	sFlag := flagSet.String("s", "", "Name of the shell to resolve (shorthand).")
	packagesFlag := flagSet.String("packages", "", "Path to a YAML lockfile mapping package references to install paths.")
	storeFlag := flagSet.String("store", "", "Path to a store directory of installed package trees.")
	formatFlag := flagSet.String("format", "", "Output format. Options: 'export', 'dotenv' or 'json'.")
	listFlag := flagSet.Bool("list", false, "List the shells declared by the workspace and exit.")
	configFlag := flagSet.String("config", "", "Path to the tool configuration file.")
	searchPathVarFlag := flagSet.String("search-path-var", "", "Name of the variable carrying the colon-joined search paths.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	// Tool config supplies the defaults; explicit flags override it.
	toolCfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("failed to load tool configuration: %s", err)}
	}

	shellName := firstNonEmpty(*shellFlag, *sFlag)
	packagesPath := firstNonEmpty(*packagesFlag, toolCfg.Packages)
	storePath := firstNonEmpty(*storeFlag, toolCfg.Store)
	// A lockfile flag on the command line beats a store path from the config
	// file, and vice versa; only keep both when both came from the same layer.
	if *packagesFlag != "" && *storeFlag == "" {
		storePath = ""
	}
	if *storeFlag != "" && *packagesFlag == "" {
		packagesPath = ""
	}

	format := strings.ToLower(firstNonEmpty(*formatFlag, toolCfg.Format))
	logFormat := strings.ToLower(firstNonEmpty(*logFormatFlag, toolCfg.LogFormat))
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(firstNonEmpty(*logLevelFlag, toolCfg.LogLevel))
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	appConfig, err := app.NewConfig(app.Config{
		DescriptorPath: path,
		ShellName:      shellName,
		PackagesPath:   packagesPath,
		StorePath:      storePath,
		Format:         format,
		SearchPathVar:  firstNonEmpty(*searchPathVarFlag, toolCfg.SearchPathVar),
		ListShells:     *listFlag,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return appConfig, false, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
