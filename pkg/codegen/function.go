package codegen

import (
	"fmt"
	"rickroll/pkg/errs"
	"slices"
	"strings"
)

// Reserved function names of the two implicit entry blocks
const (
	MainName   = "[Main]"
	GlobalName = "[Global]"
)

// Function is one compiled block. Instructions and Lines are parallel.
type Function struct {
	Name         string
	Params       []string
	Instructions []Instruction
	Lines        []int
}

// Len returns the number of instructions
func (f *Function) Len() int {
	return len(f.Instructions)
}

// Line returns the source line of the instruction at ip. Positions past the
// end report the line of the last instruction.
func (f *Function) Line(ip int) int {
	if len(f.Lines) == 0 {
		return errs.NoLine
	}
	if ip < 0 {
		ip = 0
	}
	if ip >= len(f.Lines) {
		ip = len(f.Lines) - 1
	}

	return f.Lines[ip]
}

// Validate checks that no placeholder is left and every jump lands inside
// the function
func (f *Function) Validate() error {
	for ip, in := range f.Instructions {
		if in.Op == OpHole {
			return errs.Newf(errs.Syntax, f.Line(ip), "Unresolved jump at %d in %s", ip, f.Name)
		}
		if in.IsJump() && (in.Target < 0 || in.Target >= len(f.Instructions)) {
			return errs.Newf(errs.Syntax, f.Line(ip), "Jump target %d out of range in %s", in.Target, f.Name)
		}
	}

	return nil
}

// String returns the disassembly of the function
func (f *Function) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s(%s):\n", f.Name, strings.Join(f.Params, ", "))
	for ip, in := range f.Instructions {
		fmt.Fprintf(&sb, "  %4d  L%-4d %s\n", ip, f.Lines[ip], in)
	}

	return sb.String()
}

// Bytecode is the compiled program. It is never mutated after compilation.
type Bytecode struct {
	Functions map[string]*Function
	HasMain   bool
	HasGlobal bool
}

func newBytecode() *Bytecode {
	return &Bytecode{Functions: make(map[string]*Function)}
}

// Function looks up a compiled function by name
func (b *Bytecode) Function(name string) (*Function, bool) {
	f, ok := b.Functions[name]
	return f, ok
}

// Names returns every function name in sorted order
func (b *Bytecode) Names() []string {
	names := make([]string, 0, len(b.Functions))
	for name := range b.Functions {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// String returns the disassembly of every function in sorted name order
func (b *Bytecode) String() string {
	var sb strings.Builder
	for i, name := range b.Names() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.Functions[name].String())
	}

	return sb.String()
}
