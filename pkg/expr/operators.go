package expr

import (
	"math"
	"rickroll/pkg/errs"
	"rickroll/pkg/value"
)

// Apply evaluates op on its operands. Unary operators take exactly one
// operand, binary operators exactly two in source order.
func Apply(op Operator, args ...value.Value) (value.Value, error) {
	if len(args) != op.Arity() {
		return value.Value{}, errs.New(errs.IllegalArgument, "Not enough arguments", errs.NoLine)
	}

	if op.IsUnary() {
		return evalUnary(op, args[0])
	}

	return evalBinary(op, args[0], args[1])
}

func evalUnary(op Operator, a value.Value) (value.Value, error) {
	switch op {
	case Negate:
		switch a.Kind {
		case value.KindInt:
			return value.NewInt(-a.Int), nil
		case value.KindFloat:
			return value.NewFloat(-a.Float), nil
		}
	case Not:
		if a.Kind == value.KindBool {
			return value.NewBool(!a.Bool), nil
		}
	}

	return value.Value{}, errs.Newf(errs.IllegalArgument, errs.NoLine, "%s is not defined for %s", op, a.Kind)
}

// evalBinary evaluates a binary operation on two Values
func evalBinary(op Operator, a, b value.Value) (value.Value, error) {
	switch op {
	case Equals:
		return value.NewBool(value.Equal(a, b)), nil

	case NotEquals:
		return value.NewBool(!value.Equal(a, b)), nil

	case Add, Subtract, Multiply, Divide, Modulo:
		if !a.IsNumeric() || !b.IsNumeric() {
			break
		}
		if a.Kind == value.KindInt && b.Kind == value.KindInt {
			return intArith(op, a.Int, b.Int)
		}
		af, _ := a.AsFloat32()
		bf, _ := b.AsFloat32()
		return floatArith(op, af, bf)

	case And, Or:
		if a.Kind != value.KindBool || b.Kind != value.KindBool {
			break
		}
		if op == And {
			return value.NewBool(a.Bool && b.Bool), nil
		}
		return value.NewBool(a.Bool || b.Bool), nil

	case Greater, Less, GreaterEquals, LessEquals:
		switch {
		case a.Kind == value.KindChar && b.Kind == value.KindChar:
			return compare(op, float64(a.Char), float64(b.Char)), nil
		case a.Kind == value.KindInt && b.Kind == value.KindInt:
			return compare(op, float64(a.Int), float64(b.Int)), nil
		case a.IsNumeric() && b.IsNumeric():
			af, _ := a.AsFloat32()
			bf, _ := b.AsFloat32()
			return compare(op, float64(af), float64(bf)), nil
		}

	case ArrayAccess:
		if a.Kind != value.KindArray || b.Kind != value.KindInt {
			break
		}
		if b.Int < 0 || int(b.Int) >= len(a.Array) {
			return value.Value{}, errs.Newf(errs.IndexOutOfBounds, errs.NoLine,
				"Index %d out of bounds for length %d", b.Int, len(a.Array))
		}
		return a.Array[b.Int].Clone(), nil
	}

	return value.Value{}, errs.Newf(errs.IllegalArgument, errs.NoLine, "%s is not defined for %s and %s", op, a.Kind, b.Kind)
}

// integer arithmetic wraps on overflow
func intArith(op Operator, a, b int32) (value.Value, error) {
	switch op {
	case Add:
		return value.NewInt(a + b), nil
	case Subtract:
		return value.NewInt(a - b), nil
	case Multiply:
		return value.NewInt(a * b), nil
	case Divide:
		if b == 0 {
			return value.Value{}, errs.New(errs.Runtime, "Division by zero", errs.NoLine)
		}
		return value.NewInt(a / b), nil
	default:
		if b == 0 {
			return value.Value{}, errs.New(errs.Runtime, "Modulo by zero", errs.NoLine)
		}
		return value.NewInt(a % b), nil
	}
}

func floatArith(op Operator, a, b float32) (value.Value, error) {
	switch op {
	case Add:
		return value.NewFloat(a + b), nil
	case Subtract:
		return value.NewFloat(a - b), nil
	case Multiply:
		return value.NewFloat(a * b), nil
	case Divide:
		if b == 0 {
			return value.Value{}, errs.New(errs.Runtime, "Division by zero", errs.NoLine)
		}
		return value.NewFloat(a / b), nil
	default:
		if b == 0 {
			return value.Value{}, errs.New(errs.Runtime, "Modulo by zero", errs.NoLine)
		}
		return value.NewFloat(float32(math.Mod(float64(a), float64(b)))), nil
	}
}

func compare(op Operator, a, b float64) value.Value {
	switch op {
	case Greater:
		return value.NewBool(a > b)
	case Less:
		return value.NewBool(a < b)
	case GreaterEquals:
		return value.NewBool(a >= b)
	default:
		return value.NewBool(a <= b)
	}
}
