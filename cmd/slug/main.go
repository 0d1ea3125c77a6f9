// Command slug is the CLI entry point for the Slug compiler front end:
// lex, parse, validate, lower to SSA IR, verify, and hand the module to
// the backend collaborator.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/slugc/slug/internal/backend"
	"github.com/slugc/slug/internal/lexer"
	"github.com/slugc/slug/internal/lower"
	"github.com/slugc/slug/internal/parser"
)

// sourceExt is the only extension compileFile accepts (spec.md §6).
const sourceExt = ".slg"

var (
	version = "0.1.0"

	errColor = color.New(color.FgRed, color.Bold)
	okColor  = color.New(color.FgGreen)
	log      = logrus.New()
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "slug <path.slg>",
		Short:   "Compile a Slug source file down to verified SSA IR",
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return compileFile(args[0])
		},
	}
	root.AddCommand(newReplCommand())
	return root
}

// compileFile runs the pipeline's phases in order, logging each one,
// and stops at the first error — the pipeline has no partial-success
// contract (spec.md §5).
func compileFile(path string) error {
	if filepath.Ext(path) != sourceExt {
		err := fmt.Errorf("slug: input file %q must have a %s extension", path, sourceExt)
		errColor.Fprintf(os.Stderr, "%v\n", err)
		return err
	}

	source, err := os.ReadFile(path)
	if err != nil {
		errColor.Fprintf(os.Stderr, "slug: %v\n", err)
		return err
	}

	log.Info("lexing")
	tokens, err := lexer.New().Lex(string(source))
	if err != nil {
		errColor.Fprintf(os.Stderr, "slug: %v\n", err)
		return err
	}

	log.Info("parsing")
	prog, err := parser.NewParser(tokens).ParseProgram()
	if err != nil {
		errColor.Fprintf(os.Stderr, "slug: %v\n", err)
		return err
	}

	log.Info("lowering to SSA IR")
	module, err := lower.Lower(prog)
	if err != nil {
		errColor.Fprintf(os.Stderr, "slug: %v\n", err)
		return err
	}

	outPath := backend.ObjectPath(path)
	log.WithField("path", outPath).Info("emitting")
	writer := backend.NewTextObjectWriter()
	if err := writer.EmitObject(module, outPath); err != nil {
		errColor.Fprintf(os.Stderr, "slug: %v\n", err)
		return err
	}

	okColor.Fprintf(os.Stdout, "compiled %s -> %s\n", path, outPath)
	return nil
}

func newReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive Slug session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl()
		},
	}
}

func init() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}
