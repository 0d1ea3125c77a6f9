package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/slugc/slug/internal/ast"
	"github.com/slugc/slug/internal/lexer"
	"github.com/slugc/slug/internal/parser"
)

var (
	promptColor = color.New(color.FgCyan)
	dumpColor   = color.New(color.FgYellow)
)

// runRepl lexes, parses, and pretty-prints the AST of one program per
// line typed, over the front half of the pipeline only — lowering's
// whole-program, two-pass model doesn't fit a line-at-a-time loop, so
// the REPL stops at the AST printer stage (§4.3). A line does not
// persist any state into the next: each is parsed as a standalone
// program, the way the file-mode pipeline parses a standalone source
// file.
func runRepl() error {
	promptColor.Println("slug repl — one Slug program per line, Ctrl+D to exit")

	rl, err := readline.New("slug> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		runLine(line)
	}
}

func runLine(line string) {
	tokens, err := lexer.New().Lex(line)
	if err != nil {
		errColor.Printf("%v\n", err)
		return
	}
	prog, err := parser.NewParser(tokens).ParseProgram()
	if err != nil {
		errColor.Printf("%v\n", err)
		return
	}
	dumpColor.Println(ast.PrettyPrint(prog))
}
