package codegen

import (
	"rickroll/pkg/errs"
	"rickroll/pkg/lexer"
	"rickroll/pkg/stack"

	"github.com/charmbracelet/log"
)

// handle is an open Check awaiting its end statement
type handle struct {
	hole int // index of the placeholder jump
	line int // source line of the Check
}

type Codegen struct {
	checks  *stack.Stack[handle] // open Check handles (back-patch stack)
	fn      *Function            // function being accumulated, nil before the first block
	inIntro bool                 // Let compiles to Glb inside [Intro]
	line    int                  // line of the statement being compiled
	bc      *Bytecode
}

// NewCodegen creates a new Codegen instance
func NewCodegen() *Codegen {
	return &Codegen{
		checks: stack.NewStack[handle](),
		bc:     newBytecode(),
	}
}

// Compile lowers a lexed program into bytecode
func Compile(im lexer.Intermediate) (*Bytecode, error) {
	return NewCodegen().Run(im)
}

// Run compiles every statement and seals the last open block
func (c *Codegen) Run(im lexer.Intermediate) (*Bytecode, error) {
	for _, e := range im {
		c.line = e.Line
		if err := c.statement(e.Stmt); err != nil {
			return nil, err
		}
	}

	if err := c.sealAction(); err != nil {
		return nil, err
	}

	return c.bc, nil
}

// statement dispatches a statement to its action
func (c *Codegen) statement(s lexer.Statement) error {
	switch s := s.(type) {
	case lexer.Chorus:
		return c.blockAction(MainName, nil, false)
	case lexer.Intro:
		return c.blockAction(GlobalName, nil, true)
	case lexer.Verse:
		return c.blockAction(s.Name, s.Params, false)
	}

	if c.fn == nil {
		return errs.New(errs.Syntax, "Unblocked statement", c.line)
	}

	switch s := s.(type) {
	case lexer.Say:
		c.sayAction(s)
	case lexer.Let:
		c.letAction(s)
	case lexer.Assign:
		c.setAction(s)
	case lexer.Check:
		c.checkAction(s)
	case lexer.WhileEnd:
		return c.whileEndAction()
	case lexer.IfEnd:
		return c.ifEndAction()
	case lexer.Return:
		c.returnAction(s)
	case lexer.Run:
		c.runAction(s.Func, s.Args, "")
	case lexer.RunAssign:
		c.runAction(s.Func, s.Args, s.Var)
	default:
		return errs.New(errs.Syntax, "Illegal statement", c.line)
	}

	return nil
}

// emit appends an instruction tagged with the current line and returns its index
func (c *Codegen) emit(in Instruction) int {
	return c.emitAt(in, c.line)
}

func (c *Codegen) emitAt(in Instruction, line int) int {
	c.fn.Instructions = append(c.fn.Instructions, in)
	c.fn.Lines = append(c.fn.Lines, line)
	return len(c.fn.Instructions) - 1
}

// here returns the index the next emitted instruction will get
func (c *Codegen) here() int {
	return len(c.fn.Instructions)
}

// patch replaces the placeholder at index with a jump to target
func (c *Codegen) patch(index, target int) {
	c.fn.Instructions[index] = Instruction{Op: OpJmp, Target: target}
	log.Debug("Backpatched jump", "func", c.fn.Name, "at", index, "target", target)
}
