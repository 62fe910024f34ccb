package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information, set by build flags.
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	evalExpr string
	dumpAST  bool
	trace    bool
)

// rootCmd is both the root and the (only) run command: spec §6.3
// defines a single CLI surface, `pebble <file>`, so there are no
// subcommands to dispatch to.
var rootCmd = &cobra.Command{
	Use:     "pebble [file]",
	Short:   "Run a pebble script",
	Version: Version,
	Long: `pebble is a small tree-walking interpreter.

Examples:
  # Run a script file
  pebble script.pbl

  # Evaluate inline source
  pebble -e 'print(1 + 2)'

  # Dump the parsed AST instead of running
  pebble --dump-ast script.pbl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	rootCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST instead of running it")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "print a one-line execution trace header to stderr")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
