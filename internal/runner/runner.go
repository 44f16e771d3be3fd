package runner

import (
	"fmt"
	"io"
	"os"

	"rickroll/internal/config"
	"rickroll/pkg/codegen"
	"rickroll/pkg/color"
	"rickroll/pkg/errs"
	"rickroll/pkg/interpreter"
	"rickroll/pkg/lexer"
	"rickroll/pkg/stdlib"

	"github.com/charmbracelet/log"
	"github.com/kr/pretty"
)

type Runner struct {
	Help       bool          // Show help message
	Debug      bool          // Dump bytecode and log each stage
	NoColor    bool          // Disable colored output
	ConfigFile string        // Path to a YAML config, empty for rickroll.yaml
	SourceFile string        // Path to the source file
	Config     config.Config // Limits passed to the interpreter, zero fields take defaults
	Stdout     io.Writer     // Program output, os.Stdout when nil
	Stdin      io.Reader     // Program input, os.Stdin when nil
}

// Run reads the source file, compiles it to bytecode and executes it
func (opts *Runner) Run() error {
	log.Info("Processing file", "file", opts.SourceFile)

	input, err := os.ReadFile(opts.SourceFile)
	if err != nil {
		return errs.Newf(errs.File, errs.NoLine, "Could not read file %s", opts.SourceFile)
	}

	return opts.Exec(string(input))
}

// Exec compiles and executes src
func (opts *Runner) Exec(src string) error {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	cfg := opts.Config.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	im, err := lexer.Lex(src, lexer.WithFunctions(stdlib.Arities()))
	if err != nil {
		return err
	}
	log.Debug("Lexed source", "statements", len(im))

	bc, err := codegen.Compile(im)
	if err != nil {
		return err
	}

	if opts.Debug {
		opts.dump(cfg, im, bc)
	}

	it := interpreter.NewInterpreter(bc,
		interpreter.WithWriter(stdout),
		interpreter.WithReader(stdin),
		interpreter.WithMaxDepth(cfg.MaxRecursionDepth),
		interpreter.WithUnwindLimit(cfg.UnwindLimit),
		interpreter.WithMaxSteps(cfg.MaxSteps),
	)

	ret, err := it.Execute()
	if err != nil {
		return err
	}

	log.Debug("Program finished", "result", ret)
	return nil
}

// dump writes the resolved config, the lexed statements and the disassembly
// to stderr
func (opts *Runner) dump(cfg config.Config, im lexer.Intermediate, bc *codegen.Bytecode) {
	fmt.Fprintln(os.Stderr, color.GreenText("=== Config ==="))
	fmt.Fprintf(os.Stderr, "%# v\n", pretty.Formatter(cfg))

	fmt.Fprintln(os.Stderr, color.GreenText("\n=== Statements ==="))
	fmt.Fprint(os.Stderr, color.CyanText(im.String()))

	fmt.Fprintln(os.Stderr, color.GreenText("\n=== Bytecode ==="))
	if len(bc.Functions) == 0 {
		fmt.Fprintln(os.Stderr, color.GrayText("No code generated."))
		return
	}
	fmt.Fprint(os.Stderr, bc.String())
}
