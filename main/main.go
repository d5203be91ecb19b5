// Package main is the entry point of the esparse command line tool.
//
// Usage:
//
//	esparse <file.js>      parse a file and print its syntax tree
//	esparse tokens <file>  dump the raw token stream
//	esparse repl           start the interactive shell
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/esparse/esparse/ast"
	"github.com/esparse/esparse/lexer"
	"github.com/esparse/esparse/parser"
	"github.com/esparse/esparse/repl"
)

// VERSION is the current version of the esparse tool.
var VERSION = "v1.0.0"

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "esparse >>> "

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	root := &cobra.Command{
		Use:     "esparse [file]",
		Short:   "esparse parses JavaScript into a syntax tree",
		Version: VERSION,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				repl.NewRepl(VERSION, LINE, PROMPT).Start(os.Stdout)
				return nil
			}
			return parseFile(args[0])
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "repl",
		Short: "Start the interactive shell",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			repl.NewRepl(VERSION, LINE, PROMPT).Start(os.Stdout)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the raw token stream of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpTokens(args[0])
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseFile parses one source file and prints its tree; recorded syntax
// errors are printed with their source spans and make the run fail.
func parseFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	program, _ := parser.Parse(string(source))

	for _, e := range program.Errors {
		start, end := clampSpan(program.Source, e.Start, e.End)
		redColor.Fprintf(os.Stderr, "%s: %q\n", e.Error(), program.Source[start:end])
	}

	printer := &ast.Printer{}
	printer.Statements(program.Body)
	yellowColor.Print(printer.String())
	cyanColor.Printf("%d statements, %d nodes, %d errors\n",
		len(program.Body), program.Nodes(), len(program.Errors))

	if len(program.Errors) != 0 {
		return fmt.Errorf("%d syntax errors in %s", len(program.Errors), path)
	}
	return nil
}

// dumpTokens prints one line per raw token. Regular expressions and
// template tails need parser context, so the stream is the raw scanner
// view.
func dumpTokens(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	for _, token := range lexer.NewLexer(string(source)).ScanAll() {
		if token.Value != "" {
			fmt.Printf("%5d..%-5d %q\n", token.Start, token.End, token.Value)
		} else {
			fmt.Printf("%5d..%-5d %s\n", token.Start, token.End, string(source[token.Start:token.End]))
		}
	}
	return nil
}

func clampSpan(source string, start, end int) (int, int) {
	if start > len(source) {
		start = len(source)
	}
	if end > len(source) {
		end = len(source)
	}
	if start > end {
		start = end
	}
	return start, end
}
