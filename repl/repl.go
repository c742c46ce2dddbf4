/*
File    : plox/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package repl implements plox's interactive Read-Eval-Print Loop: a
// readline-backed prompt that lexes, parses, resolves, and interprets
// one line at a time against a single long-lived interpreter, so
// variables and functions defined on one line stay visible to the next.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/akashmaji946/plox/interpreter"
	"github.com/akashmaji946/plox/lexer"
	"github.com/akashmaji946/plox/parser"
	"github.com/akashmaji946/plox/resolver"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Repl holds the cosmetic identity (banner, version, prompt) the driver
// configures it with, plus the interpreter state carried across lines.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	interp *interpreter.Interpreter
}

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// NewRepl constructs a Repl with a fresh interpreter. The interpreter is
// created once here rather than per-line, so REPL state persists across
// inputs exactly like a single running plox program.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Author:  author,
		Line:    line,
		License: license,
		Prompt:  prompt,
		interp:  interpreter.New(nil),
	}
}

// PrintBannerInfo writes the startup banner and metadata to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintln(writer, r.Banner)
	cyanColor.Fprintf(writer, "plox %s — a tree-walking Lox-family interpreter\n", r.Version)
	cyanColor.Fprintf(writer, "Author : %s\n", r.Author)
	cyanColor.Fprintf(writer, "License: %s\n", r.License)
	fmt.Fprintln(writer, r.Line)
	yellowColor.Fprintln(writer, "Type .exit to quit, .scope to inspect globals.")
	fmt.Fprintln(writer, r.Line)
}

// Start runs the REPL loop, reading lines from reader and writing
// prompts, banners, and results to writer. It returns once the user
// types .exit or the input stream is exhausted.
func (r *Repl) Start(reader io.ReadCloser, writer io.Writer) {
	r.interp.SetWriter(writer)
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            r.Prompt,
		HistoryFile:       "/tmp/.plox_history",
		InterruptExpected: true,
		Stdin:             reader,
		Stdout:            writer,
	})
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch line {
		case ".exit":
			greenColor.Fprintln(writer, "bye.")
			return
		case ".scope":
			r.printScope(writer)
			continue
		}

		r.executeWithRecovery(line, writer)
	}
}

// printScope dumps the current global environment's bindings, the
// .scope meta-command's whole purpose: a quick look at what's defined
// without leaving the prompt.
func (r *Repl) printScope(writer io.Writer) {
	globals := r.interp.Globals
	if len(globals.Values) == 0 {
		yellowColor.Fprintln(writer, "(no bindings)")
		return
	}
	for name, value := range globals.Values {
		yellowColor.Fprintf(writer, "%s = %s\n", name, value.ToString())
	}
}

// executeWithRecovery runs one line through the full lex/parse/resolve/
// interpret pipeline, reporting errors at whichever stage they surface
// and recovering from any panic so a single bad line never kills the
// session.
func (r *Repl) executeWithRecovery(line string, writer io.Writer) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	lex := lexer.NewLexer(line)
	tokens := lex.ConsumeTokens()
	if len(lex.Errors) > 0 {
		for _, lexErr := range lex.Errors {
			redColor.Fprintf(writer, "[LEX ERROR] %s\n", lexErr)
		}
		return
	}

	p := parser.New(tokens)
	program, perrs := p.Parse()
	if len(perrs) > 0 {
		for _, perr := range perrs {
			redColor.Fprintf(writer, "[PARSE ERROR] %s\n", perr.Error())
		}
		return
	}

	res := resolver.New()
	res.Resolve(program)
	if res.HasErrors() {
		for _, rerr := range res.Errors {
			redColor.Fprintf(writer, "[RESOLVE ERROR] %s\n", rerr.Error())
		}
		return
	}

	for expr, depth := range res.Locals {
		r.interp.Locals[expr] = depth
	}

	if err := r.interp.Interpret(program); err != nil {
		redColor.Fprintf(writer, "[RUNTIME ERROR] %s\n", err.Error())
	}
}
