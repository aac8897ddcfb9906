/*
File    : go-pico/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// go-pico is the command-line driver for the Pico interpreter.
//
// Pico is a small dynamically-typed expression language with integers,
// booleans, strings, let bindings, first-class functions with closures,
// conditionals, and return statements.
//
// The CLI supports three modes of operation:
//   - Interactive REPL mode (the default, no arguments)
//   - File execution mode (go-pico run file.pico)
//   - One-shot expression mode (go-pico eval 'expr', optionally --ast)
//
// Examples:
//
//	go-pico                              # Start the REPL
//	go-pico run script.pico              # Execute a file
//	go-pico eval '1 + 2 * 3'             # Evaluate an expression
//	go-pico eval --ast 'fn(x) { x; }'    # Dump the parsed AST
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/go-pico/file"
	"github.com/akashmaji946/go-pico/lexer"
	"github.com/akashmaji946/go-pico/parser"
	"github.com/akashmaji946/go-pico/repl"
	"github.com/spf13/cobra"
)

// Interpreter identity shown by the REPL banner.
const (
	BANNER = `
  ____  _  ____ ___
 |  _ \(_)/ ___/ _ \
 | |_) | | |  | | | |
 |  __/| | |__| |_| |
 |_|   |_|\____\___/
`
	VERSION = "v1.0.0"
	AUTHOR  = "akashmaji(@iisc.ac.in)"
	LINE    = "----------------------------------------------------------------"
	LICENSE = "MIT"
	PROMPT  = ">> "
)

// showAst controls whether the eval command dumps the parsed tree
// instead of evaluating it.
var showAst bool

// rootCmd starts the interactive REPL when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "go-pico",
	Short: "Pico language interpreter",
	Long:  "go-pico is a tree-walking interpreter for the Pico language.\nWithout arguments it starts an interactive REPL.",
	Run: func(cmd *cobra.Command, args []string) {
		r := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
		r.Start(os.Stdin, os.Stdout)
	},
}

// runCmd executes a Pico source file.
var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Execute a Pico source file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(file.RunFile(args[0], os.Stdout))
	},
}

// evalCmd evaluates a single expression given on the command line.
// With --ast it prints the parsed node tree instead of evaluating.
var evalCmd = &cobra.Command{
	Use:   "eval <expr>",
	Short: "Evaluate a Pico expression",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if showAst {
			os.Exit(dumpAst(args[0]))
		}
		os.Exit(file.RunSource(args[0], os.Stdout))
	},
}

// dumpAst parses the source and renders the node tree through the
// printing visitor. Parse errors are printed and make the run fail.
func dumpAst(src string) int {
	par := parser.NewParser(lexer.NewLexer(src))
	rootNode := par.Parse()

	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			fmt.Fprintln(os.Stderr, msg)
		}
		return 1
	}

	visitor := &PrintingVisitor{}
	rootNode.Accept(visitor)
	fmt.Print(visitor)
	return 0
}

func init() {
	evalCmd.Flags().BoolVar(&showAst, "ast", false, "print the parsed AST instead of evaluating")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(evalCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
