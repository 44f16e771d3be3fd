package expr

import (
	"rickroll/pkg/errs"
	"rickroll/pkg/stack"
	"rickroll/pkg/value"
)

// Lookup resolves variable names during evaluation. *value.Scope satisfies it.
type Lookup interface {
	Get(name string) (value.Value, bool)
}

// Evaluator reduces a token sequence to a single value with the
// Shunting-Yard algorithm, applying operators as soon as they are popped.
type Evaluator struct {
	scope  Lookup
	values *stack.Stack[value.Value]
	ops    *stack.Stack[Token] // OPERATOR and LPAREN tokens
}

// Eval evaluates tokens against scope
func Eval(tokens []Token, scope Lookup) (value.Value, error) {
	e := &Evaluator{
		scope:  scope,
		values: stack.NewStack[value.Value](),
		ops:    stack.NewStack[Token](),
	}

	return e.run(tokens)
}

// ParseAndEval tokenizes and evaluates s in one step
func ParseAndEval(s string, scope Lookup) (value.Value, error) {
	tokens, err := Tokenize(s)
	if err != nil {
		return value.Value{}, err
	}

	return Eval(tokens, scope)
}

func (e *Evaluator) run(tokens []Token) (value.Value, error) {
	for _, tok := range tokens {
		if err := e.feed(tok); err != nil {
			return value.Value{}, err
		}
	}

	for !e.ops.Empty() {
		if e.ops.Peek().Type == LPAREN {
			return value.Value{}, errs.New(errs.Syntax, "Unbalanced parenthesis", errs.NoLine)
		}
		if err := e.reduce(); err != nil {
			return value.Value{}, err
		}
	}

	if e.values.Size() != 1 {
		return value.Value{}, errs.New(errs.Syntax, "Illegal expression syntax", errs.NoLine)
	}

	return e.values.Pop(), nil
}

func (e *Evaluator) feed(tok Token) error {
	switch tok.Type {
	case VALUE:
		e.values.Push(tok.Value.Clone())

	case NAME:
		v, ok := e.scope.Get(tok.Name)
		if !ok {
			return errs.Newf(errs.Name, errs.NoLine, "Variable %s not found", tok.Name)
		}
		e.values.Push(v)

	case LPAREN:
		e.ops.Push(tok)

	case RPAREN:
		for {
			if e.ops.Empty() {
				return errs.New(errs.Syntax, "Unbalanced parenthesis", errs.NoLine)
			}
			if e.ops.Peek().Type == LPAREN {
				e.ops.Pop()
				break
			}
			if err := e.reduce(); err != nil {
				return err
			}
		}

	case OPERATOR:
		// unary operators wait for their operand
		if tok.Op.IsUnary() {
			e.ops.Push(tok)
			return nil
		}

		for !e.ops.Empty() {
			top := e.ops.Peek()
			if top.Type != OPERATOR || top.Op.Precedence() < tok.Op.Precedence() {
				break
			}
			if err := e.reduce(); err != nil {
				return err
			}
		}
		e.ops.Push(tok)
	}

	return nil
}

// reduce pops the top operator and applies it to its operands
func (e *Evaluator) reduce() error {
	op := e.ops.Pop().Op
	n := op.Arity()
	if e.values.Size() < n {
		return errs.New(errs.IllegalArgument, "Not enough arguments", errs.NoLine)
	}

	args := make([]value.Value, n)
	for i := n - 1; i >= 0; i-- {
		args[i] = e.values.Pop()
	}

	res, err := Apply(op, args...)
	if err != nil {
		return err
	}
	e.values.Push(res)

	return nil
}
