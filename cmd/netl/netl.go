package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/crnvl/netl/pkg/ast"
	"github.com/crnvl/netl/pkg/eval"
	"github.com/crnvl/netl/pkg/parser"
	"github.com/crnvl/netl/pkg/scanner"
)

var log = logrus.New()

// set via -ldflags
var Version = "development"

var (
	app    = kingpin.New("netl", "Run a netl script, or start a REPL when no script is given.")
	debug  = app.Flag("debug", "Dump tokens and the parsed AST before running.").Short('d').Bool()
	script = app.Arg("script", "Path of the script to run.").String()
)

// Run the file at the given path as a netl program.
func runFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	interp := eval.New(os.Stdout)
	return run(interp, string(content))
}

// Runs the REPL. Bindings persist across lines within one session.
func runRepl() {
	interp := eval.New(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() { // on ctrl-D
			fmt.Print("\n")
			return
		}
		if err := run(interp, scanner.Text()); err != nil {
			log.Error(err)
		}
	}
}

// Parses and evaluates one chunk of source against the interpreter.
func run(interp *eval.Interp, source string) error {
	toks := scanner.Scan(source)
	if *debug {
		fmt.Println("Tokens scanned:")
		for _, tok := range toks {
			fmt.Printf("  %s\n", tok)
		}
	}
	prog, err := parser.Parse(toks)
	if err != nil {
		return err
	}
	if *debug {
		fmt.Println("\nAST parsed:")
		ast.PrettyPrint(prog)
	}
	return interp.Run(prog)
}

func main() {
	log.Out = os.Stderr
	app.Version(Version)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *script == "" {
		runRepl()
		return
	}
	if err := runFile(*script); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
