/*
File    : go-pico/file/file.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package file implements script-file execution for the Pico interpreter.
// It reads a whole source file, runs it through the pipeline, and reports
// results and errors. Unlike the REPL, a file run is one-shot: parse
// errors are fatal, and a runtime error terminates the run with a
// non-zero status.
package file

import (
	"io"
	"os"

	"github.com/akashmaji946/go-pico/eval"
	"github.com/akashmaji946/go-pico/lexer"
	"github.com/akashmaji946/go-pico/objects"
	"github.com/akashmaji946/go-pico/parser"
	"github.com/fatih/color"
)

// Color definitions for file-runner output, matching the REPL's scheme:
// yellow for results, red for errors.
var (
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
)

// RunFile reads and executes a Pico source file.
//
// The full pipeline runs once over the file contents:
//  1. The file is read from disk
//  2. The source is parsed; every accumulated parse error is printed
//     and the run aborts
//  3. The program is evaluated in a fresh global scope
//  4. A runtime error is printed in red; a final non-null value is
//     printed in yellow
//
// Parameters:
//   - path: Path to the Pico source file to execute
//   - writer: Output destination for results and errors
//
// Returns:
//   - int: 0 on success, 1 when the file is unreadable, parsing failed,
//     or evaluation produced a runtime error (usable as a process exit code)
func RunFile(path string, writer io.Writer) int {
	// Read the entire file content
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(writer, "could not read file %s: %v\n", path, err)
		return 1
	}

	return RunSource(string(src), writer)
}

// RunSource executes Pico source text against a fresh global scope and
// reports to the given writer. It is the shared core of RunFile and the
// driver's one-shot expression mode.
//
// Parameters:
//   - src: The Pico source text to execute
//   - writer: Output destination for results and errors
//
// Returns:
//   - int: 0 on success, 1 on parse or runtime errors
func RunSource(src string, writer io.Writer) int {
	// Parse the source into an AST, collecting every error in one pass
	par := parser.NewParser(lexer.NewLexer(src))
	rootNode := par.Parse()

	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return 1
	}

	// Evaluate the program in a fresh global scope
	evaluator := eval.NewEvaluator()
	result := evaluator.Eval(rootNode)

	if result == nil {
		return 0
	}

	if result.GetType() == objects.ErrorType {
		redColor.Fprintf(writer, "%s\n", result.ToString())
		return 1
	}

	// Print the final value unless the program ended on null
	if result.GetType() != objects.NullType {
		yellowColor.Fprintf(writer, "%s\n", result.ToString())
	}
	return 0
}
