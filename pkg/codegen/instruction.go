package codegen

import (
	"fmt"
	"rickroll/pkg/expr"
)

type Operation string

// List of bytecode operations
const (
	OpPut   Operation = "put"   // print an expression
	OpLet   Operation = "let"   // declare in the innermost context
	OpGlb   Operation = "glb"   // declare in the global context
	OpSet   Operation = "set"   // assign to the nearest declaration
	OpJmp   Operation = "jmp"   // unconditional jump
	OpJmpif Operation = "jmpif" // jump when the expression is TRUE
	OpPctx  Operation = "pctx"  // push a context
	OpDctx  Operation = "dctx"  // pop a context
	OpCall  Operation = "call"  // call, discard the result
	OpScall Operation = "scall" // call, bind the result
	OpRet   Operation = "ret"   // return an expression
	OpPushq Operation = "pushq" // enqueue a variable for the callee
	OpExp   Operation = "exp"   // dequeue into a fresh local
	OpHole  Operation = "hole"  // unpatched jump, never present in sealed bytecode
)

type Instruction struct {
	Op Operation

	Name   string       // variable or function name
	Result string       // result variable of OpScall
	Expr   []expr.Token // expression operand
	Target int          // jump target
	Argc   int          // argument count of OpCall and OpScall
}

// IsJump reports whether the instruction transfers control within its function
func (i Instruction) IsJump() bool {
	return i.Op == OpJmp || i.Op == OpJmpif
}

// String returns a disassembly of the instruction
func (i Instruction) String() string {
	switch i.Op {
	case OpPut, OpRet:
		return fmt.Sprintf("%s %s", i.Op, expr.Format(i.Expr))
	case OpLet, OpGlb, OpPushq, OpExp:
		return fmt.Sprintf("%s %s", i.Op, i.Name)
	case OpSet:
		return fmt.Sprintf("%s %s %s", i.Op, i.Name, expr.Format(i.Expr))
	case OpJmp:
		return fmt.Sprintf("%s %d", i.Op, i.Target)
	case OpJmpif:
		return fmt.Sprintf("%s %s -> %d", i.Op, expr.Format(i.Expr), i.Target)
	case OpCall:
		return fmt.Sprintf("%s %s/%d", i.Op, i.Name, i.Argc)
	case OpScall:
		return fmt.Sprintf("%s %s/%d -> %s", i.Op, i.Name, i.Argc, i.Result)
	default:
		return string(i.Op)
	}
}
