package codegen

import (
	"rickroll/pkg/errs"
	"rickroll/pkg/lexer"

	"github.com/charmbracelet/log"
)

// sayAction prints an expression
func (c *Codegen) sayAction(s lexer.Say) {
	c.emit(Instruction{Op: OpPut, Expr: s.Expr})
}

// letAction declares a variable, globally inside [Intro]
func (c *Codegen) letAction(s lexer.Let) {
	if c.inIntro {
		c.emit(Instruction{Op: OpGlb, Name: s.Name})
		return
	}

	c.emit(Instruction{Op: OpLet, Name: s.Name})
}

// setAction assigns an expression to a declared variable
func (c *Codegen) setAction(s lexer.Assign) {
	c.emit(Instruction{Op: OpSet, Name: s.Name, Expr: s.Expr})
}

// checkAction opens an if or while region: a conditional jump over the
// placeholder, the placeholder itself, then the region's context
func (c *Codegen) checkAction(s lexer.Check) {
	c.emit(Instruction{Op: OpJmpif, Expr: s.Expr, Target: c.here() + 2})
	hole := c.emit(Instruction{Op: OpHole})
	c.checks.Push(handle{hole: hole, line: c.line})
	c.emit(Instruction{Op: OpPctx})
}

// whileEndAction closes a loop: jump back to the condition and patch the
// exit past the backward jump
func (c *Codegen) whileEndAction() error {
	if c.checks.Empty() {
		return errs.New(errs.Syntax, "Mismatched while or if end", c.line)
	}

	h := c.checks.Pop()
	c.emit(Instruction{Op: OpDctx})
	c.emit(Instruction{Op: OpJmp, Target: h.hole - 1})
	c.patch(h.hole, c.here())

	return nil
}

// ifEndAction closes a conditional region
func (c *Codegen) ifEndAction() error {
	if c.checks.Empty() {
		return errs.New(errs.Syntax, "Mismatched while or if end", c.line)
	}

	h := c.checks.Pop()
	c.emit(Instruction{Op: OpDctx})
	c.patch(h.hole, c.here())

	return nil
}

// returnAction returns an expression to the caller
func (c *Codegen) returnAction(s lexer.Return) {
	c.emit(Instruction{Op: OpRet, Expr: s.Expr})
}

// runAction enqueues the arguments and calls fn, binding the result to
// result when it is not empty
func (c *Codegen) runAction(fn string, args []string, result string) {
	for _, a := range args {
		c.emit(Instruction{Op: OpPushq, Name: a})
	}

	if result == "" {
		c.emit(Instruction{Op: OpCall, Name: fn, Argc: len(args)})
		return
	}

	c.emit(Instruction{Op: OpScall, Name: fn, Result: result, Argc: len(args)})
}

// blockAction seals the current function and starts a new one
func (c *Codegen) blockAction(name string, params []string, intro bool) error {
	if err := c.sealAction(); err != nil {
		return err
	}

	c.fn = &Function{Name: name, Params: params}
	c.inIntro = intro
	c.emit(Instruction{Op: OpPctx})
	for _, p := range params {
		c.emit(Instruction{Op: OpExp, Name: p})
	}

	return nil
}

// sealAction closes the current function and registers it
func (c *Codegen) sealAction() error {
	if c.fn == nil {
		return nil
	}

	if !c.checks.Empty() {
		return errs.New(errs.Syntax, "Mismatched while or if start", c.checks.Peek().line)
	}

	c.emitAt(Instruction{Op: OpDctx}, errs.NoLine)
	if err := c.fn.Validate(); err != nil {
		return err
	}

	switch c.fn.Name {
	case MainName:
		c.bc.HasMain = true
	case GlobalName:
		c.bc.HasGlobal = true
	}
	c.bc.Functions[c.fn.Name] = c.fn
	log.Debug("Sealed function", "name", c.fn.Name, "params", len(c.fn.Params), "instructions", c.fn.Len())

	c.fn = nil
	c.inIntro = false

	return nil
}
