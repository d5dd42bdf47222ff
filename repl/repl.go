/*
File    : langcore/repl/repl.go
*/

// Package repl implements a Read-Eval-Print Loop for langcore.
//
// A single scope.Scope persists across the whole session, so a `let`
// on one line is visible to every line after it, and the same
// eval.Evaluator instance is reused so its recursion-depth counter
// survives correctly across calls.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/lenna-dev/langcore/eval"
	"github.com/lenna-dev/langcore/objects"
	"github.com/lenna-dev/langcore/parser"
	"github.com/lenna-dev/langcore/scope"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl with the given display configuration.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to langcore!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop until EOF, an error from readline, or
// the user typing ".exit".
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := scope.NewScope(nil)
	evaluator := eval.NewEvaluator()

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

		r.executeWithRecovery(writer, line, evaluator, env)
	}
}

// executeWithRecovery parses and evaluates one line of input, printing
// the result or any parse/runtime errors. A panic recovery wrapper
// keeps a single malformed line from killing the session — unlike file
// execution, the REPL must survive a bad input and keep prompting.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator, env *scope.Scope) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	program, errs := parser.Parse(line)
	if len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	if result.GetType() == objects.ERROR_OBJ {
		redColor.Fprintf(writer, "%s\n", result.ToString())
	} else {
		yellowColor.Fprintf(writer, "%s\n", result.ToString())
	}
}
