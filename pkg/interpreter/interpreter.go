package interpreter

import (
	"bufio"
	"io"
	"os"

	"rickroll/pkg/codegen"
	"rickroll/pkg/errs"
	"rickroll/pkg/stack"
	"rickroll/pkg/stdlib"
	"rickroll/pkg/value"

	"github.com/charmbracelet/log"
)

const (
	DefaultMaxDepth    = 10000 // nested frames before a stack overflow
	DefaultUnwindLimit = 8     // frames reported in a traceback
)

// Interpreter executes compiled bytecode on a stack machine
type Interpreter struct {
	bc *codegen.Bytecode // program, never mutated

	frames   *stack.Stack[*Frame]          // call stack, innermost on top
	scope    *value.Scope                  // live scope
	contexts *stack.Stack[[]value.Context] // caller contexts saved across calls
	queue    []value.Value                 // argument queue (FIFO)

	out io.Writer         // output writer for put and PutChar
	in  stdlib.LineReader // input source for ReadLine

	// Exec hook (implemented in step.go)
	execStep func(*Interpreter) (halted bool, err error)

	result value.Value // value returned by the last finished entry function

	maxDepth    int // maximum number of frames
	unwindLimit int // maximum tracebacks added while unwinding
	maxSteps    int // maximum steps (0 = unlimited)
	steps       int // steps executed
}

type Option func(*Interpreter)

// WithWriter sets the output writer for print statements
func WithWriter(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithReader sets the input source for ReadLine
func WithReader(r io.Reader) Option {
	return func(i *Interpreter) { i.in = bufio.NewReader(r) }
}

// WithMaxDepth sets the recursion ceiling
func WithMaxDepth(n int) Option {
	return func(i *Interpreter) { i.maxDepth = n }
}

// WithUnwindLimit sets how many frames are reported when an error escapes
func WithUnwindLimit(n int) Option {
	return func(i *Interpreter) { i.unwindLimit = n }
}

// WithMaxSteps sets a maximum number of interpreter steps before returning ErrMaxStepsExceeded
func WithMaxSteps(n int) Option {
	return func(i *Interpreter) { i.maxSteps = n }
}

// NewInterpreter creates a new Interpreter instance
func NewInterpreter(bc *codegen.Bytecode, opts ...Option) *Interpreter {
	it := &Interpreter{
		bc:          bc,
		frames:      stack.NewStack[*Frame](),
		scope:       value.NewScope(),
		contexts:    stack.NewStack[[]value.Context](),
		maxDepth:    DefaultMaxDepth,
		unwindLimit: DefaultUnwindLimit,
		maxSteps:    0, // 0 => unlimited
		execStep:    coreStep,
	}

	for _, o := range opts {
		o(it)
	}

	if it.out == nil {
		it.out = os.Stdout
	}
	if it.in == nil {
		it.in = bufio.NewReader(os.Stdin)
	}

	return it
}

// Execute runs [Intro] when present and then [Chorus], returning the value
// [Chorus] returned
func (i *Interpreter) Execute() (value.Value, error) {
	if !i.bc.HasMain {
		return value.Value{}, errs.New(errs.Runtime, "Could not find a [Chorus] to execute", errs.NoLine)
	}

	if i.bc.HasGlobal {
		if _, err := i.Run(codegen.GlobalName); err != nil {
			return value.Value{}, err
		}
	}

	return i.Run(codegen.MainName)
}

// Run executes a single function to completion
func (i *Interpreter) Run(name string) (value.Value, error) {
	fn, ok := i.bc.Function(name)
	if !ok {
		return value.Value{}, errs.Newf(errs.Name, errs.NoLine, "Function name %s doesn't exist", name)
	}

	log.Debug("Running entry function", "name", name)
	i.frames.Push(&Frame{Fn: fn})

	for {
		halted, err := i.Step()
		if err != nil {
			return value.Value{}, i.unwind(err)
		}

		if halted {
			return i.result, nil
		}
	}
}

// Step executes a single instruction, returning (halted, error)
func (i *Interpreter) Step() (bool, error) {
	if i.maxSteps > 0 && i.steps >= i.maxSteps {
		return false, ErrMaxStepsExceeded
	}

	halted, err := i.execStep(i)
	i.steps++

	return halted, err
}

// Scope returns the live scope
func (i *Interpreter) Scope() *value.Scope {
	return i.scope
}

// Depth returns the number of active frames
func (i *Interpreter) Depth() int {
	return i.frames.Size()
}

// unwind pops every open frame, wrapping err in one traceback per frame up
// to the unwind limit
func (i *Interpreter) unwind(err error) error {
	for n := 0; !i.frames.Empty(); n++ {
		f := i.frames.Pop()
		if n < i.unwindLimit {
			err = errs.Wrap(err, f.Line())
		}
	}

	i.contexts.Clear()
	i.queue = i.queue[:0]
	i.scope.Behead()

	return err
}

// currentFrame returns the current call frame, or nil if none
func (i *Interpreter) currentFrame() *Frame {
	return i.frames.Peek()
}

// enqueue appends a value to the argument queue
func (i *Interpreter) enqueue(v value.Value) {
	i.queue = append(i.queue, v)
}

// dequeue removes the oldest value from the argument queue
func (i *Interpreter) dequeue() (value.Value, error) {
	if len(i.queue) == 0 {
		return value.Value{}, errs.New(errs.Runtime, "Argument queue is empty", errs.NoLine)
	}

	v := i.queue[0]
	i.queue = i.queue[1:]

	return v, nil
}

var ErrMaxStepsExceeded = errs.New(errs.Runtime, "Maximum steps exceeded", errs.NoLine)
