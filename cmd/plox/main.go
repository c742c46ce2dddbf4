/*
File    : plox/cmd/plox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the plox interpreter. It provides
three modes of operation:
 1. REPL Mode (default): interactive read-eval-print loop
 2. File Mode: execute a plox source file from the command line
 3. Server Mode: REPL-over-TCP, one interpreter per connection

The interpreter uses a lexer-parser-resolver-interpreter pipeline to
process plox source.
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/akashmaji946/plox/astdump"
	"github.com/akashmaji946/plox/interpreter"
	"github.com/akashmaji946/plox/lexer"
	"github.com/akashmaji946/plox/parser"
	"github.com/akashmaji946/plox/repl"
	"github.com/akashmaji946/plox/resolver"
	"github.com/fatih/color"
)

// VERSION is the current version of the plox interpreter.
var VERSION = "v1.0.0"

// AUTHOR is the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE is the software license.
var LICENSE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "plox >>> "

// BANNER is the ASCII art logo shown on REPL startup.
var BANNER = `
         _
  _ __  | |  ___   __  __
 | '_ \ | | / _ \  \ \/ /
 | |_) || || (_) |  >  <
 | .__/ |_| \___/  /_/\_\
 |_|
`

// LINE is a separator used for visual formatting.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// Exit codes, per the interpreter's documented contract: 0 on success,
// 65 on a lex/parse/resolve (static) error, 70 on a runtime error.
const (
	exitOK        = 0
	exitDataError = 65
	exitSoftware  = 70
)

func main() {
	printAST := false
	args := os.Args[1:]

	var filtered []string
	for _, a := range args {
		if a == "--print-ast" {
			printAST = true
			continue
		}
		filtered = append(filtered, a)
	}
	args = filtered

	if len(args) == 0 {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
		return
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
		os.Exit(exitOK)
	case "--version", "-v":
		showVersion()
		os.Exit(exitOK)
	case "server":
		if len(args) < 2 {
			redColor.Fprintln(os.Stderr, "[USAGE ERROR] missing port for server mode. Usage: plox server <port>")
			os.Exit(exitSoftware)
		}
		startServer(args[1])
	default:
		runFile(args[0], printAST)
	}
}

func showHelp() {
	cyanColor.Println("plox — a tree-walking interpreter for a small Lox-family language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  plox                    start interactive REPL mode")
	yellowColor.Println("  plox <path-to-file>     execute a plox source file (.lox)")
	yellowColor.Println("  plox server <port>      start a REPL server on the given port")
	yellowColor.Println("  plox --print-ast <file> execute, printing the parsed AST first")
	yellowColor.Println("  plox --help             display this help message")
	yellowColor.Println("  plox --version          display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                   exit the REPL")
	yellowColor.Println("  .scope                  show current global bindings")
}

func showVersion() {
	cyanColor.Println("plox — a tree-walking interpreter for a small Lox-family language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a plox source file, exiting with the
// documented exit code for whichever stage fails.
func runFile(fileName string, printAST bool) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file '%s': %v\n", fileName, err)
		os.Exit(exitSoftware)
	}
	os.Exit(run(string(source), printAST))
}

// run executes source to completion, returning the process exit code.
func run(source string, printAST bool) int {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	lex := lexer.NewLexer(source)
	tokens := lex.ConsumeTokens()
	if len(lex.Errors) > 0 {
		for _, lexErr := range lex.Errors {
			redColor.Fprintf(os.Stderr, "[LEX ERROR] %s\n", lexErr)
		}
		return exitDataError
	}

	p := parser.New(tokens)
	program, perrs := p.Parse()
	if len(perrs) > 0 {
		for _, perr := range perrs {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", perr.Error())
		}
		return exitDataError
	}

	res := resolver.New()
	res.Resolve(program)
	if res.HasErrors() {
		for _, rerr := range res.Errors {
			redColor.Fprintf(os.Stderr, "[RESOLVE ERROR] %s\n", rerr.Error())
		}
		return exitDataError
	}

	if printAST {
		fmt.Fprint(os.Stdout, astdump.Dump(program))
		fmt.Fprintln(os.Stdout, LINE)
	}

	interp := interpreter.New(res.Locals)
	if err := interp.Interpret(program); err != nil {
		redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %s\n", err.Error())
		return exitSoftware
	}
	return exitOK
}

// startServer listens on port, handing each connection its own
// interpreter so concurrent sessions never share state.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to start server on port %s: %v\n", port, err)
		os.Exit(exitSoftware)
	}
	cyanColor.Printf("plox REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("new client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
