package interpreter

import "rickroll/pkg/codegen"

// Frame represents a function call frame.
type Frame struct {
	Fn *codegen.Function // function executing in this frame, shared and read-only
	IP int               // instruction pointer into Fn.Instructions
}

// Line returns the source line the frame is currently at
func (f *Frame) Line() int {
	return f.Fn.Line(f.IP)
}

// Current returns the instruction at IP and whether IP is inside the function
func (f *Frame) Current() (codegen.Instruction, bool) {
	if f.IP < 0 || f.IP >= f.Fn.Len() {
		return codegen.Instruction{}, false
	}

	return f.Fn.Instructions[f.IP], true
}
