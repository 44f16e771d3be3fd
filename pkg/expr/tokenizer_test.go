package expr_test

import (
	"rickroll/pkg/errs"
	"rickroll/pkg/expr"
	"rickroll/pkg/value"
	"testing"
)

func TestTokenizeTypes(t *testing.T) {
	tokens, err := expr.Tokenize("(x + 3.5) * -y >= 'a' && !TRUE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []expr.TokenType{
		expr.LPAREN, expr.NAME, expr.OPERATOR, expr.VALUE, expr.RPAREN,
		expr.OPERATOR, expr.OPERATOR, expr.NAME,
		expr.OPERATOR, expr.VALUE,
		expr.OPERATOR, expr.OPERATOR, expr.VALUE,
	}

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %s", len(expected), len(tokens), expr.Format(tokens))
	}
	for i, typ := range expected {
		if tokens[i].Type != typ {
			t.Errorf("Token %d: expected %s, got %s", i, typ, tokens[i].Type)
		}
	}

	if tokens[6].Op != expr.Negate {
		t.Errorf("expected unary minus after *, got %s", tokens[6].Op)
	}
	if tokens[8].Op != expr.GreaterEquals {
		t.Errorf("expected >=, got %s", tokens[8].Op)
	}
}

func TestTokenizeMinus(t *testing.T) {
	tests := []struct {
		input    string
		expected []expr.Operator
	}{
		{"-1", []expr.Operator{expr.Negate}},
		{"1 - 1", []expr.Operator{expr.Subtract}},
		{"1 - -1", []expr.Operator{expr.Subtract, expr.Negate}},
		{"(-1)", []expr.Operator{expr.Negate}},
		{"x -1", []expr.Operator{expr.Subtract}},
		{"(1) - 1", []expr.Operator{expr.Subtract}},
	}

	for _, test := range tests {
		tokens, err := expr.Tokenize(test.input)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.input, err)
			continue
		}

		var ops []expr.Operator
		for _, tok := range tokens {
			if tok.Type == expr.OPERATOR {
				ops = append(ops, tok.Op)
			}
		}
		if len(ops) != len(test.expected) {
			t.Errorf("%q: expected %v, got %v", test.input, test.expected, ops)
			continue
		}
		for i := range ops {
			if ops[i] != test.expected[i] {
				t.Errorf("%q: operator %d expected %s, got %s", test.input, i, test.expected[i], ops[i])
			}
		}
	}
}

func TestTokenizeLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected value.Value
	}{
		{"42", value.NewInt(42)},
		{"2147483647", value.NewInt(2147483647)},
		{"3.25", value.NewFloat(3.25)},
		{"'x'", value.NewChar('x')},
		{"'\\n'", value.NewChar('\n')},
		{"' '", value.NewChar(' ')},
		{"TRUE", value.NewBool(true)},
		{"FALSE", value.NewBool(false)},
		{"UNDEFINED", value.Undefined},
		{"ARRAY", value.NewArray()},
	}

	for _, test := range tests {
		tokens, err := expr.Tokenize(test.input)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.input, err)
			continue
		}
		if len(tokens) != 1 || tokens[0].Type != expr.VALUE {
			t.Errorf("%q: expected a single value token, got %s", test.input, expr.Format(tokens))
			continue
		}
		got := tokens[0].Value
		if got.Kind != test.expected.Kind || !value.Equal(got, test.expected) {
			t.Errorf("%q: expected %#v, got %#v", test.input, test.expected, got)
		}
	}
}

func TestTokenizeNames(t *testing.T) {
	tokens, err := expr.Tokenize("first_name + Second")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := expr.Names(tokens)
	if len(names) != 2 || names[0] != "first_name" || names[1] != "Second" {
		t.Errorf("unexpected names %v", names)
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  errs.Kind
		desc  string
	}{
		{"", errs.Syntax, "Unexpected end of statement"},
		{"   ", errs.Syntax, "Unexpected end of statement"},
		{"(1 + 2", errs.Syntax, "Unbalanced parenthesis"},
		{"1 + 2)", errs.Syntax, "Unbalanced parenthesis"},
		{")(", errs.Syntax, "Unbalanced parenthesis"},
		{"1.2.3", errs.IllegalChar, "Unknown character '.'"},
		{"2147483648", errs.IllegalArgument, "literal too large"},
		{"'ab'", errs.IllegalChar, "More than one character in literal"},
		{"''", errs.IllegalChar, "Empty literal"},
		{"'a", errs.IllegalChar, "Trailing character literal"},
		{"1 <> 2", errs.Runtime, "Operator <> not found"},
		{"!!TRUE", errs.Runtime, "Operator !! not found"},
		{"1 = 2", errs.Runtime, "Operator = not found"},
		{"1 # 2", errs.IllegalChar, "Illegal character in expression"},
	}

	for _, test := range tests {
		_, err := expr.Tokenize(test.input)
		if err == nil {
			t.Errorf("%q: expected an error", test.input)
			continue
		}

		e := errs.From(err)
		if e.Kind != test.kind || e.Desc != test.desc {
			t.Errorf("%q: expected %s %q, got %s %q", test.input, test.kind, test.desc, e.Kind, e.Desc)
		}
	}
}
