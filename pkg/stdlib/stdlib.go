// Package stdlib holds the host functions callable from programs by name.
package stdlib

import (
	"errors"
	"fmt"
	"io"
	"rickroll/pkg/errs"
	"rickroll/pkg/value"
	"strings"
)

// Variadic marks a function accepting any number of arguments
const Variadic = -1

// LineReader is the input source of ReadLine. *bufio.Reader satisfies it.
type LineReader interface {
	ReadString(delim byte) (string, error)
}

type Func func(args []value.Value, out io.Writer, in LineReader) (value.Value, error)

type Entry struct {
	Arity int
	Fn    Func
}

var library = map[string]Entry{
	"ArrayOf":      {Variadic, arrayOf},
	"ArrayPop":     {2, arrayPop},
	"ArrayPush":    {3, arrayPush},
	"ArrayReplace": {3, arrayReplace},
	"ArrayLength":  {1, arrayLength},
	"PutChar":      {1, putChar},
	"ReadLine":     {0, readLine},
}

// Lookup finds a host function by name
func Lookup(name string) (Entry, bool) {
	e, ok := library[name]
	return e, ok
}

// Arities returns name -> arity for every host function
func Arities() map[string]int {
	out := make(map[string]int, len(library))
	for name, e := range library {
		out[name] = e.Arity
	}

	return out
}

// Call invokes a host function after checking its argument count
func Call(name string, args []value.Value, out io.Writer, in LineReader) (value.Value, error) {
	e, ok := library[name]
	if !ok {
		return value.Value{}, errs.Newf(errs.Name, errs.NoLine, "Function name %s doesn't exist", name)
	}
	if e.Arity != Variadic && e.Arity != len(args) {
		return value.Value{}, errs.Newf(errs.IllegalArgument, errs.NoLine,
			"Function %s takes %d arguments but %d were given", name, e.Arity, len(args))
	}

	return e.Fn(args, out, in)
}

func arrayOf(args []value.Value, _ io.Writer, _ LineReader) (value.Value, error) {
	return value.NewArray(args...), nil
}

func arrayPop(args []value.Value, _ io.Writer, _ LineReader) (value.Value, error) {
	arr, i, err := arrayIndex("ArrayPop", args[0], args[1], 0)
	if err != nil {
		return value.Value{}, err
	}

	arr.Array = append(arr.Array[:i], arr.Array[i+1:]...)
	return arr, nil
}

func arrayPush(args []value.Value, _ io.Writer, _ LineReader) (value.Value, error) {
	// inserting at the length appends
	arr, i, err := arrayIndex("ArrayPush", args[0], args[1], 1)
	if err != nil {
		return value.Value{}, err
	}

	arr.Array = append(arr.Array[:i], append([]value.Value{args[2].Clone()}, arr.Array[i:]...)...)
	return arr, nil
}

func arrayReplace(args []value.Value, _ io.Writer, _ LineReader) (value.Value, error) {
	arr, i, err := arrayIndex("ArrayReplace", args[0], args[1], 0)
	if err != nil {
		return value.Value{}, err
	}

	arr.Array[i] = args[2].Clone()
	return arr, nil
}

func arrayLength(args []value.Value, _ io.Writer, _ LineReader) (value.Value, error) {
	if args[0].Kind != value.KindArray {
		return value.Value{}, errs.Newf(errs.IllegalArgument, errs.NoLine, "ArrayLength is not defined for %s", args[0].Kind)
	}

	return value.NewInt(int32(len(args[0].Array))), nil
}

func putChar(args []value.Value, out io.Writer, _ LineReader) (value.Value, error) {
	if args[0].Kind != value.KindChar {
		return value.Value{}, errs.Newf(errs.IllegalArgument, errs.NoLine, "PutChar is not defined for %s", args[0].Kind)
	}

	if _, err := fmt.Fprint(out, string(args[0].Char)); err != nil {
		return value.Value{}, errs.New(errs.File, err.Error(), errs.NoLine)
	}

	return value.Undefined, nil
}

func readLine(_ []value.Value, _ io.Writer, in LineReader) (value.Value, error) {
	if in == nil {
		return value.Value{}, errs.New(errs.File, "No input source", errs.NoLine)
	}

	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return value.Value{}, errs.New(errs.File, err.Error(), errs.NoLine)
	}

	line = strings.TrimRight(line, "\r\n")
	chars := make([]value.Value, 0, len(line))
	for _, r := range line {
		chars = append(chars, value.NewChar(r))
	}

	return value.NewArray(chars...), nil
}

// arrayIndex validates an (Array, Int) pair and returns a copy of the array.
// slack widens the valid index range past the last element.
func arrayIndex(fn string, arr, idx value.Value, slack int) (value.Value, int, error) {
	if arr.Kind != value.KindArray || idx.Kind != value.KindInt {
		return value.Value{}, 0, errs.Newf(errs.IllegalArgument, errs.NoLine, "%s is not defined for %s and %s", fn, arr.Kind, idx.Kind)
	}

	i := int(idx.Int)
	if i < 0 || i >= len(arr.Array)+slack {
		return value.Value{}, 0, errs.Newf(errs.IndexOutOfBounds, errs.NoLine, "Index %d out of bounds for length %d", i, len(arr.Array))
	}

	return arr.Clone(), i, nil
}
