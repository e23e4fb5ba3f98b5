package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/alexflint/go-arg"
	errwrap "github.com/pkg/errors"
	"github.com/sanity-io/litter"
	"github.com/thiremani/graphtex/compiler"
	"github.com/thiremani/graphtex/config"
	"github.com/thiremani/graphtex/latex"
	"github.com/thiremani/graphtex/lexer"
	"github.com/thiremani/graphtex/parser"
	"github.com/thiremani/graphtex/types"
)

const (
	exitOK       = 0
	exitUser     = 1 // bad input, bad flags, unreadable files
	exitInternal = 2 // the compiler itself is at fault
)

// Args is the CLI parsing structure and type of the parsed result.
type Args struct {
	Input   string `arg:"positional,required" help:"source file to compile"`
	Globals string `arg:"--globals" help:"yaml file declaring global variables and their types"`
	Output  string `arg:"--output,-o" help:"write the LaTeX to this file instead of stdout"`
	Dump    bool   `arg:"--dump" help:"print the output tree to stderr"`
	Debug   bool   `arg:"--debug" help:"log compiler decisions to stderr"`
	Watch   bool   `arg:"--watch" help:"recompile whenever the input file is written"`
}

// Version returns the version string. Implementing this signature is part of
// the API for the cli library.
func (obj *Args) Version() string {
	return versionString()
}

// Description returns a description string for the help text.
func (obj *Args) Description() string {
	return "graphtex compiles math source into graphing calculator LaTeX"
}

// builder compiles one input file with a fixed set of globals.
type builder struct {
	args    *Args
	globals map[string]types.ValType
	stdout  io.Writer
	stderr  io.Writer
	logger  *log.Logger
}

func (b *builder) logf(format string, v ...interface{}) {
	if b.args.Debug {
		b.logger.Printf(format, v...)
	}
}

// compileSource lexes, parses and compiles source. All parse errors are
// returned together. Compilation stops at the first error.
func compileSource(fileName, source string, globals map[string]types.ValType, logf func(string, ...interface{})) ([]latex.Node, error) {
	p := parser.New(lexer.New(fileName, source))
	program := p.ParseProgram()
	if err := p.Err(); err != nil {
		return nil, err
	}

	ctx := compiler.NewContext(globals)
	ctx.Logf = logf
	return ctx.CompileProgram(program)
}

// renderLines renders one line of LaTeX per statement.
func renderLines(nodes []latex.Node) string {
	var out strings.Builder
	for _, n := range nodes {
		out.WriteString(latex.Render(n))
		out.WriteString("\n")
	}
	return out.String()
}

func (b *builder) build() error {
	source, err := os.ReadFile(b.args.Input)
	if err != nil {
		return errwrap.Wrapf(err, "could not read input")
	}

	nodes, err := compileSource(b.args.Input, string(source), b.globals, b.logf)
	if err != nil {
		return err
	}
	if b.args.Dump {
		fmt.Fprintln(b.stderr, litter.Options{
			StripPackageNames: true,
			HidePrivateFields: true,
			HideZeroValues:    true,
		}.Sdump(nodes))
	}

	text := renderLines(nodes)
	if b.args.Output == "" {
		_, err := io.WriteString(b.stdout, text)
		return err
	}
	if err := writeOutput(b.args.Output, text); err != nil {
		return err
	}
	b.logf("wrote %d statement(s) to %s", len(nodes), b.args.Output)
	return nil
}

// report prints err, if any, and returns the matching exit status.
func (b *builder) report(err error) int {
	code := exitCode(err)
	if code != exitOK {
		fmt.Fprintf(b.stderr, "%v\n", err)
	}
	return code
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ie *compiler.InternalError
	if errors.As(err, &ie) {
		return exitInternal
	}
	return exitUser
}

func run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	args := Args{}
	cfg := arg.Config{
		Program: "graphtex",
	}
	p, err := arg.NewParser(cfg, &args)
	if err != nil {
		// programming error
		fmt.Fprintf(stderr, "cli config error: %v\n", err)
		return exitInternal
	}
	err = p.Parse(argv)
	if err == arg.ErrHelp {
		p.WriteHelp(stdout)
		return exitOK
	}
	if err == arg.ErrVersion {
		fmt.Fprintln(stdout, versionString())
		return exitOK
	}
	if err != nil {
		p.WriteUsage(stderr)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUser
	}

	globals, err := config.LoadGlobals(args.Globals)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitUser
	}

	b := &builder{
		args:    &args,
		globals: globals,
		stdout:  stdout,
		stderr:  stderr,
		logger:  log.New(stderr, "graphtex: ", 0),
	}
	if args.Watch {
		return b.report(b.watch(ctx))
	}
	return b.report(b.build())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
