// Package render serializes a resolved Environment for consumption by a
// shell or another tool. All renderers are deterministic: variables are
// emitted in sorted order and search paths in declaration order, so the same
// Environment always renders to the same bytes.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/devshellgo/internal/model"
)

// Output formats accepted by Render.
const (
	FormatExport = "export"
	FormatDotenv = "dotenv"
	FormatJSON   = "json"
)

// Render serializes the environment in the given format. searchPathVar is
// the name of the variable carrying the colon-joined search paths; it is
// ignored by the json format, which reports search paths structurally.
func Render(format string, env *model.Environment, searchPathVar string) (string, error) {
	switch format {
	case FormatExport:
		return Export(env, searchPathVar), nil
	case FormatDotenv:
		return Dotenv(env, searchPathVar), nil
	case FormatJSON:
		return JSON(env)
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

// Export renders `export K="v"` lines suitable for eval in a POSIX shell.
func Export(env *model.Environment, searchPathVar string) string {
	var b strings.Builder
	for _, name := range sortedNames(env) {
		fmt.Fprintf(&b, "export %s=%s\n", name, quote(env.Variables[name]))
	}
	fmt.Fprintf(&b, "export %s=%s\n", searchPathVar, quote(strings.Join(env.SearchPaths, ":")))
	return b.String()
}

// Dotenv renders plain `K=v` lines. Values containing line breaks would
// corrupt the line-oriented format, so those are emitted double-quoted with
// the breaks escaped.
func Dotenv(env *model.Environment, searchPathVar string) string {
	var b strings.Builder
	for _, name := range sortedNames(env) {
		fmt.Fprintf(&b, "%s=%s\n", name, dotenvValue(env.Variables[name]))
	}
	fmt.Fprintf(&b, "%s=%s\n", searchPathVar, dotenvValue(strings.Join(env.SearchPaths, ":")))
	return b.String()
}

func dotenvValue(value string) string {
	if !strings.ContainsAny(value, "\n\r") {
		return value
	}
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
	)
	return `"` + replacer.Replace(value) + `"`
}

// JSON renders the environment as an indented JSON document.
func JSON(env *model.Environment) (string, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return "", fmt.Errorf("failed to encode environment as JSON: %w", err)
	}
	return b.String(), nil
}

func sortedNames(env *model.Environment) []string {
	names := make([]string, 0, len(env.Variables))
	for name := range env.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// quote wraps a value in double quotes, escaping the characters the shell
// would otherwise interpret inside them.
func quote(value string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		`$`, `\$`,
		"`", "\\`",
	)
	return `"` + replacer.Replace(value) + `"`
}
