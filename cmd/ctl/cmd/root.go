// Package cmd holds the cobra command tree for the ctl CLI: the reference
// test harness spec.md §6 describes (parse a file, print its AST, or
// render a diagnostic) plus an eval subcommand and a lex debugging aid,
// grounded in cmd/dwscript/cmd's root/version/parse/lex shape.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ctl",
	Short: "CTL configuration expression language tools",
	Long: `ctl parses and evaluates CTL, a small configuration expression
language: integer/double/string literals, identifiers, C-like operators,
list and object aggregates.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().Bool("color", false, "force-enable ANSI color in diagnostics")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
