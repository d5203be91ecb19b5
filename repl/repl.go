// Package repl implements the interactive shell of the esparse CLI.
// Each input line is parsed; the recorded syntax errors, with their
// source spans, are printed back, followed by the (possibly partial)
// resulting tree. The shell
// keeps line history and supports the usual editing keys through the
// readline library.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/esparse/esparse/ast"
	"github.com/esparse/esparse/parser"
)

// Color definitions for REPL output: blue for separators, yellow for
// trees, red for errors, cyan for informational messages.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the configuration of one interactive session.
type Repl struct {
	Version string // version string shown in the banner
	Line    string // separator line for visual formatting
	Prompt  string // prompt shown to the user
}

// NewRepl creates a REPL with the given banner configuration.
func NewRepl(version, line, prompt string) *Repl {
	return &Repl{Version: version, Line: line, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "esparse %s — type JavaScript, get its syntax tree\n", r.Version)
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit; use up/down arrows for history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main read-parse-print loop until '.exit' or EOF.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.parseWithRecovery(writer, line)
	}
}

// parseWithRecovery parses one input line and prints the recorded
// errors followed by the tree. A panic in the parser is caught so the session
// survives parser bugs.
func (r *Repl) parseWithRecovery(writer io.Writer, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "internal error: %v\n", rec)
		}
	}()

	program, _ := parser.Parse(line)

	for _, e := range program.Errors {
		redColor.Fprintf(writer, "%s: %s\n", e.Error(), errorSpan(line, e))
	}

	printer := &ast.Printer{}
	printer.Statements(program.Body)
	yellowColor.Fprint(writer, printer.String())
}

// errorSpan cuts the offending slice out of the input for display.
func errorSpan(source string, e *parser.SyntaxError) string {
	start, end := e.Start, e.End
	if start > len(source) {
		start = len(source)
	}
	if end > len(source) {
		end = len(source)
	}
	if start >= end {
		return "<end of input>"
	}
	return source[start:end]
}
