package expr

import (
	"rickroll/pkg/errs"
	"rickroll/pkg/value"
	"strconv"
	"strings"
)

// characters that combine into multi-character operators
const operatorChars = "!&|<>="

type Tokenizer struct {
	input    []rune  // expression being tokenized
	length   int     // number of runes in the input
	position int     // current position in the input
	balance  int     // running parenthesis balance
	tokens   []Token // tokens produced so far
}

// Create a new tokenizer instance
func NewTokenizer(s string) *Tokenizer {
	input := []rune(strings.TrimSpace(s))
	return &Tokenizer{
		input:  input,
		length: len(input),
	}
}

// Tokenize splits an expression into a flat token sequence
func Tokenize(s string) ([]Token, error) {
	return NewTokenizer(s).Run()
}

// Run consumes the whole input and returns the produced tokens
func (t *Tokenizer) Run() ([]Token, error) {
	for {
		t.skipWhitespace()
		if t.position >= t.length {
			break
		}

		if err := t.next(); err != nil {
			return nil, err
		}
	}

	if len(t.tokens) == 0 {
		return nil, errs.New(errs.Syntax, "Unexpected end of statement", errs.NoLine)
	}
	if t.balance != 0 {
		return nil, errs.New(errs.Syntax, "Unbalanced parenthesis", errs.NoLine)
	}

	return t.tokens, nil
}

// Produce the token starting at the current position
func (t *Tokenizer) next() error {
	ch := t.input[t.position]

	switch {
	case isDigit(ch):
		return t.number()
	case isLetter(ch):
		t.identifier()
		return nil
	case ch == '\'':
		return t.char()
	case strings.ContainsRune(operatorChars, ch):
		return t.compound()
	}

	switch ch {
	case '(':
		t.balance++
		t.emit(Token{Type: LPAREN})
	case ')':
		t.balance--
		if t.balance < 0 {
			return errs.New(errs.Syntax, "Unbalanced parenthesis", errs.NoLine)
		}
		t.emit(Token{Type: RPAREN})
	case '+':
		t.emit(NewOperator(Add))
	case '*':
		t.emit(NewOperator(Multiply))
	case '/':
		t.emit(NewOperator(Divide))
	case '%':
		t.emit(NewOperator(Modulo))
	case ':':
		t.emit(NewOperator(ArrayAccess))
	case '-':
		if t.prevAllowsUnary() {
			t.emit(NewOperator(Negate))
		} else {
			t.emit(NewOperator(Subtract))
		}
	default:
		return errs.New(errs.IllegalChar, "Illegal character in expression", errs.NoLine)
	}

	t.position++
	return nil
}

// Scan an integer or float literal
func (t *Tokenizer) number() error {
	start := t.position
	dotted := false

	for t.position < t.length {
		ch := t.input[t.position]
		if ch == '.' {
			if dotted {
				return errs.New(errs.IllegalChar, "Unknown character '.'", errs.NoLine)
			}
			dotted = true
		} else if !isDigit(ch) {
			break
		}
		t.position++
	}

	lexeme := string(t.input[start:t.position])
	if dotted {
		f, err := strconv.ParseFloat(lexeme, 32)
		if err != nil {
			return errs.Newf(errs.IllegalArgument, errs.NoLine, "Invalid float literal %s", lexeme)
		}
		t.emit(NewValue(value.NewFloat(float32(f))))
		return nil
	}

	i, err := strconv.ParseInt(lexeme, 10, 32)
	if err != nil {
		return errs.New(errs.IllegalArgument, "literal too large", errs.NoLine)
	}
	t.emit(NewValue(value.NewInt(int32(i))))

	return nil
}

// Scan a constant or a variable name
func (t *Tokenizer) identifier() {
	start := t.position
	t.position++
	for t.position < t.length && (isLetter(t.input[t.position]) || t.input[t.position] == '_') {
		t.position++
	}

	word := string(t.input[start:t.position])
	if v, ok := value.FromConstant(word); ok {
		t.emit(NewValue(v))
		return
	}

	t.emit(NewName(word))
}

// Scan a character literal such as 'a' or '\n'
func (t *Tokenizer) char() error {
	t.position++ // opening quote

	var body []rune
	closed := false
	for t.position < t.length {
		ch := t.input[t.position]
		t.position++
		if ch == '\'' {
			closed = true
			break
		}
		body = append(body, ch)
	}

	if !closed {
		return errs.New(errs.IllegalChar, "Trailing character literal", errs.NoLine)
	}

	switch {
	case len(body) == 0:
		return errs.New(errs.IllegalChar, "Empty literal", errs.NoLine)
	case len(body) == 2 && body[0] == '\\' && body[1] == 'n':
		t.emit(NewValue(value.NewChar('\n')))
	case len(body) == 1:
		t.emit(NewValue(value.NewChar(body[0])))
	default:
		return errs.New(errs.IllegalChar, "More than one character in literal", errs.NoLine)
	}

	return nil
}

// Greedily consume a run of operator characters
func (t *Tokenizer) compound() error {
	start := t.position
	for t.position < t.length && strings.ContainsRune(operatorChars, t.input[t.position]) {
		t.position++
	}

	run := string(t.input[start:t.position])
	op, ok := compoundOperators[run]
	if !ok {
		return errs.Newf(errs.Runtime, errs.NoLine, "Operator %s not found", run)
	}
	t.emit(NewOperator(op))

	return nil
}

func (t *Tokenizer) emit(tok Token) {
	t.tokens = append(t.tokens, tok)
}

// Skip spaces and tabs
func (t *Tokenizer) skipWhitespace() {
	for t.position < t.length {
		switch t.input[t.position] {
		case ' ', '\t', '\r', '\n':
			t.position++
		default:
			return
		}
	}
}

// Check if the previous token allows a unary minus
func (t *Tokenizer) prevAllowsUnary() bool {
	if len(t.tokens) == 0 {
		return true
	}

	switch t.tokens[len(t.tokens)-1].Type {
	case OPERATOR, LPAREN:
		return true
	default:
		return false
	}
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}
