package expr

import (
	"fmt"
	"rickroll/pkg/value"
	"strings"
)

type TokenType int

const (
	VALUE    TokenType = iota // literal value
	OPERATOR                  // unary or binary operator
	NAME                      // variable name, resolved at evaluation time
	LPAREN                    // (
	RPAREN                    // )
)

var tokenTypeNames = [...]string{"VALUE", "OPERATOR", "NAME", "LPAREN", "RPAREN"}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

type Operator int

const (
	ArrayAccess   Operator = iota // :
	Add                           // +
	Subtract                      // -
	Multiply                      // *
	Divide                        // /
	Modulo                        // %
	Negate                        // unary -
	And                           // &&
	Or                            // ||
	Not                           // !
	Greater                       // >
	Less                          // <
	GreaterEquals                 // >=
	LessEquals                    // <=
	Equals                        // ==
	NotEquals                     // !=
)

var operatorNames = map[Operator]string{
	ArrayAccess:   "ArrayAccess",
	Add:           "Add",
	Subtract:      "Subtract",
	Multiply:      "Multiply",
	Divide:        "Divide",
	Modulo:        "Modulo",
	Negate:        "UnaryMinus",
	And:           "And",
	Or:            "Or",
	Not:           "Not",
	Greater:       "Greater",
	Less:          "Less",
	GreaterEquals: "GreaterEquals",
	LessEquals:    "LessEquals",
	Equals:        "Equals",
	NotEquals:     "NotEquals",
}

var operatorSymbols = map[Operator]string{
	ArrayAccess:   ":",
	Add:           "+",
	Subtract:      "-",
	Multiply:      "*",
	Divide:        "/",
	Modulo:        "%",
	Negate:        "-",
	And:           "&&",
	Or:            "||",
	Not:           "!",
	Greater:       ">",
	Less:          "<",
	GreaterEquals: ">=",
	LessEquals:    "<=",
	Equals:        "==",
	NotEquals:     "!=",
}

// String returns the operator name used in diagnostics
func (o Operator) String() string {
	if name, ok := operatorNames[o]; ok {
		return name
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(o))
}

// Symbol returns the source spelling of the operator
func (o Operator) Symbol() string {
	return operatorSymbols[o]
}

// Precedence returns the binding strength, higher binds tighter
func (o Operator) Precedence() int {
	switch o {
	case Or:
		return 1
	case And:
		return 2
	case Greater, Less, GreaterEquals, LessEquals, Equals, NotEquals:
		return 3
	case Add, Subtract:
		return 4
	case Multiply, Divide, Modulo:
		return 5
	case ArrayAccess:
		return 6
	case Not:
		return 7
	case Negate:
		return 8
	default:
		return 0
	}
}

// IsUnary reports whether the operator takes a single operand
func (o Operator) IsUnary() bool {
	return o == Not || o == Negate
}

// Arity returns the number of operands the operator consumes
func (o Operator) Arity() int {
	if o.IsUnary() {
		return 1
	}

	return 2
}

// multi-character operators built from runs of operator characters
var compoundOperators = map[string]Operator{
	"&&": And,
	"||": Or,
	">":  Greater,
	"<":  Less,
	">=": GreaterEquals,
	"<=": LessEquals,
	"==": Equals,
	"!=": NotEquals,
	"!":  Not,
}

type Token struct {
	Type  TokenType   // Type of the token
	Value value.Value // literal value for VALUE tokens
	Op    Operator    // operator for OPERATOR tokens
	Name  string      // variable name for NAME tokens
}

// NewValue creates a literal token
func NewValue(v value.Value) Token {
	return Token{Type: VALUE, Value: v}
}

// NewOperator creates an operator token
func NewOperator(op Operator) Token {
	return Token{Type: OPERATOR, Op: op}
}

// NewName creates a name token
func NewName(name string) Token {
	return Token{Type: NAME, Name: name}
}

// String returns the source-like spelling of the token
func (t Token) String() string {
	switch t.Type {
	case VALUE:
		if t.Value.Kind == value.KindChar {
			return fmt.Sprintf("%q", t.Value.Char)
		}
		return t.Value.String()
	case OPERATOR:
		return t.Op.Symbol()
	case NAME:
		return t.Name
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(t.Type))
	}
}

// Format renders a token sequence as an expression
func Format(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}

	return strings.Join(parts, " ")
}

// Names returns every variable name referenced by tokens, in order
func Names(tokens []Token) []string {
	var names []string
	for _, t := range tokens {
		if t.Type == NAME {
			names = append(names, t.Name)
		}
	}

	return names
}
