package cmd

import (
	"fmt"
	"os"

	"github.com/pebble-lang/pebble/internal/ast"
	"github.com/pebble-lang/pebble/internal/interp"
	"github.com/pebble-lang/pebble/internal/lexer"
	"github.com/pebble-lang/pebble/internal/parser"
	"github.com/spf13/cobra"
)

// runScript implements spec §6.3's single CLI contract: lex, parse,
// and interpret the given file (or -e source), exiting 0 on success
// and 1 on any file-read failure, syntax error, or runtime error.
func runScript(_ *cobra.Command, args []string) error {
	var source string
	var name string

	switch {
	case evalExpr != "":
		source = evalExpr
		name = "<eval>"
	case len(args) == 1:
		name = args[0]
		content, err := os.ReadFile(name)
		if err != nil {
			exitWithError("failed to read %s: %v", name, err)
		}
		source = string(content)
	default:
		return fmt.Errorf("provide a script file or -e inline code")
	}

	if trace {
		fmt.Fprintf(os.Stderr, "[trace] running %s\n", name)
	}

	p := parser.New(lexer.New(source))
	program, err := p.ParseProgram()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if dumpAST {
		fmt.Print(ast.Dump(program))
		return nil
	}

	interpreter := interp.New(os.Stdout, os.Stdin)
	if err := interpreter.Interpret(program); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return nil
}
