// Package cli parses devshellgo's command-line arguments into an app.Config,
// layering them over the tool configuration loaded by the config package.
package cli
