package interpreter

import (
	"fmt"

	"rickroll/pkg/codegen"
	"rickroll/pkg/errs"
	"rickroll/pkg/expr"
	"rickroll/pkg/stdlib"
	"rickroll/pkg/value"

	"github.com/charmbracelet/log"
)

// coreStep is the main single-step execution function
// it returns (halted, error).
func coreStep(i *Interpreter) (bool, error) {
	fr := i.currentFrame()
	if fr == nil {
		return true, nil
	}

	in, ok := fr.Current()
	if !ok {
		// falling off the end of a function returns UNDEFINED
		return i.ret(value.Undefined)
	}

	switch in.Op {
	case codegen.OpPut:
		v, err := i.eval(in.Expr)
		if err != nil {
			return false, err
		}
		if _, err := fmt.Fprintln(i.out, v.String()); err != nil {
			return false, errs.New(errs.File, err.Error(), fr.Line())
		}

	case codegen.OpLet:
		i.scope.Declare(in.Name)

	case codegen.OpGlb:
		i.scope.DeclareGlobal(in.Name)

	case codegen.OpSet:
		v, err := i.eval(in.Expr)
		if err != nil {
			return false, err
		}
		if !i.scope.Set(in.Name, v) {
			return false, errs.Newf(errs.Name, fr.Line(), "Variable %s not found", in.Name)
		}

	case codegen.OpJmp:
		fr.IP = in.Target
		return false, nil

	case codegen.OpJmpif:
		v, err := i.eval(in.Expr)
		if err != nil {
			return false, err
		}
		if v.Kind != value.KindBool {
			return false, errs.New(errs.IllegalArgument, "Unexpected non-boolean argument", fr.Line())
		}
		if v.Bool {
			fr.IP = in.Target
			return false, nil
		}

	case codegen.OpPctx:
		i.scope.Push()

	case codegen.OpDctx:
		i.scope.Pop()

	case codegen.OpCall, codegen.OpScall:
		return i.call(fr, in)

	case codegen.OpRet:
		v, err := i.eval(in.Expr)
		if err != nil {
			return false, err
		}
		return i.ret(v)

	case codegen.OpPushq:
		v, ok := i.scope.Get(in.Name)
		if !ok {
			return false, errs.Newf(errs.Name, fr.Line(), "Variable %s not found", in.Name)
		}
		i.enqueue(v)

	case codegen.OpExp:
		v, err := i.dequeue()
		if err != nil {
			return false, err
		}
		i.scope.Declare(in.Name)
		i.scope.Set(in.Name, v)

	default:
		return false, errs.Newf(errs.Runtime, fr.Line(), "Unhandled operation %s", in.Op)
	}

	fr.IP++
	return false, nil
}

// eval evaluates an expression against the live scope
func (i *Interpreter) eval(tokens []expr.Token) (value.Value, error) {
	return expr.Eval(tokens, i.scope)
}

// call enters a user function, or runs a host function in place
func (i *Interpreter) call(fr *Frame, in codegen.Instruction) (bool, error) {
	fn, ok := i.bc.Function(in.Name)
	if !ok {
		return i.callHost(fr, in)
	}

	if i.frames.Size() >= i.maxDepth {
		return false, errs.Newf(errs.StackOverflow, fr.Line(), "Too many recursive calls for function %s", in.Name)
	}

	log.Debug("Calling function", "name", in.Name, "depth", i.frames.Size())

	// the caller keeps IP on the call so the return can see an OpScall
	i.contexts.Push(i.scope.Behead())
	i.frames.Push(&Frame{Fn: fn})

	return false, nil
}

// callHost runs a standard library function with Argc queued arguments
func (i *Interpreter) callHost(fr *Frame, in codegen.Instruction) (bool, error) {
	args := make([]value.Value, in.Argc)
	for n := range args {
		v, err := i.dequeue()
		if err != nil {
			return false, err
		}
		args[n] = v
	}

	res, err := stdlib.Call(in.Name, args, i.out, i.in)
	if err != nil {
		return false, err
	}

	if in.Op == codegen.OpScall && !i.scope.Set(in.Result, res) {
		return false, errs.Newf(errs.Name, fr.Line(), "Variable %s not found", in.Result)
	}

	fr.IP++
	return false, nil
}

// ret leaves the current frame. Returning from the last frame halts with v
// as the result, otherwise the caller's contexts come back and an OpScall
// binds v.
func (i *Interpreter) ret(v value.Value) (bool, error) {
	i.scope.Behead()
	i.frames.Pop()

	if i.frames.Empty() {
		i.result = v
		return true, nil
	}

	i.scope.Restore(i.contexts.Pop())

	caller := i.currentFrame()
	if in, ok := caller.Current(); ok && in.Op == codegen.OpScall {
		if !i.scope.Set(in.Result, v) {
			return false, errs.Newf(errs.Name, caller.Line(), "Variable %s not found", in.Result)
		}
	}
	caller.IP++

	return false, nil
}
