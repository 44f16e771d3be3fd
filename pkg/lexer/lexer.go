package lexer

import (
	"rickroll/pkg/errs"
	"rickroll/pkg/expr"
	"rickroll/pkg/stack"
	"rickroll/pkg/stdlib"
	"rickroll/pkg/value"
	"strings"

	"github.com/charmbracelet/log"
)

// Lexer turns source text into an Intermediate while rejecting undeclared
// names, bad nesting and wrong call arities before compilation.
type Lexer struct {
	lines  []string       // raw source lines
	verses map[string]int // declared Verse name -> parameter count
	hosts  map[string]int // host function name -> arity, shadowed by verses
	scope  *value.Scope   // static scope, values are never read
	checks *stack.Stack[int]

	block      StatementKind // current block marker, ILLEGAL before the first one
	seenChorus bool
	seenIntro  bool

	out Intermediate
}

type Option func(*Lexer)

// WithFunctions registers host functions (name -> arity, stdlib.Variadic
// for any). A Verse of the same name takes precedence.
func WithFunctions(fns map[string]int) Option {
	return func(l *Lexer) {
		for name, arity := range fns {
			l.hosts[name] = arity
		}
	}
}

// Create a new lexer instance
func NewLexer(src string, opts ...Option) *Lexer {
	l := &Lexer{
		lines:  strings.Split(src, "\n"),
		verses: make(map[string]int),
		hosts:  make(map[string]int),
		scope:  value.NewScope(),
		checks: stack.NewStack[int](),
		block:  ILLEGAL,
	}

	for _, o := range opts {
		o(l)
	}

	return l
}

// Lex is a shorthand for NewLexer(src, opts...).Run()
func Lex(src string, opts ...Option) (Intermediate, error) {
	return NewLexer(src, opts...).Run()
}

// Run lexes the whole source
func (l *Lexer) Run() (Intermediate, error) {
	if err := l.registerVerses(); err != nil {
		return nil, err
	}

	for i, raw := range l.lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		stmt, err := l.statement(line, i+1)
		if err != nil {
			return nil, err
		}

		log.Debug("Lexed statement", "line", i+1, "category", stmt.Kind().GetCategory(), "stmt", stmt)
		l.out = append(l.out, Entry{Line: i + 1, Stmt: stmt})
	}

	if !l.checks.Empty() {
		return nil, errs.New(errs.Syntax, "Mismatched while or if start", l.checks.Peek())
	}

	return l.out, nil
}

// registerVerses records every function header before the main pass so calls
// may precede the declaration of their callee
func (l *Lexer) registerVerses() error {
	for i, raw := range l.lines {
		kind, groups, ok := MatchStatement(strings.TrimSpace(raw))
		if !ok || kind != VERSE {
			continue
		}

		name := groups[0]
		if _, exists := l.verses[name]; exists {
			return errs.Newf(errs.Name, i+1, "Function named %s already exists", name)
		}

		params, err := parseParams(groups[1], i+1)
		if err != nil {
			return err
		}
		l.verses[name] = len(params)
	}

	return nil
}

// statement recognizes a single trimmed line and validates it
func (l *Lexer) statement(line string, n int) (Statement, error) {
	kind, groups, ok := MatchStatement(line)
	if !ok {
		return nil, errs.New(errs.Syntax, "Illegal statement", n)
	}

	if kind.GetCategory() == BLOCK {
		return l.openBlock(kind, groups, n)
	}

	switch kind {
	case SAY:
		tokens, err := l.expression(groups[0], n)
		if err != nil {
			return nil, err
		}
		return Say{Expr: tokens}, nil

	case LET:
		return l.let(groups[0], n)

	case ASSIGN:
		if !l.scope.Has(groups[0]) {
			return nil, errs.Newf(errs.Name, n, "Variable %s not found", groups[0])
		}
		tokens, err := l.expression(groups[1], n)
		if err != nil {
			return nil, err
		}
		return Assign{Name: groups[0], Expr: tokens}, nil

	case CHECK:
		tokens, err := l.expression(groups[0], n)
		if err != nil {
			return nil, err
		}
		l.checks.Push(n)
		l.scope.Push()
		return Check{Expr: tokens}, nil

	case WHILEEND, IFEND:
		if l.checks.Empty() {
			return nil, errs.New(errs.Syntax, "Mismatched while or if end", n)
		}
		l.checks.Pop()
		l.scope.Pop()
		if kind == WHILEEND {
			return WhileEnd{}, nil
		}
		return IfEnd{}, nil

	case RETURN:
		tokens, err := l.expression(groups[0], n)
		if err != nil {
			return nil, err
		}
		return Return{Expr: tokens}, nil

	case RUN:
		args, err := l.call(groups[0], groups[1], n)
		if err != nil {
			return nil, err
		}
		return Run{Func: groups[0], Args: args}, nil

	case RUNASSIGN:
		if !l.scope.Has(groups[0]) {
			return nil, errs.Newf(errs.Name, n, "Variable %s not found", groups[0])
		}
		args, err := l.call(groups[1], groups[2], n)
		if err != nil {
			return nil, err
		}
		return RunAssign{Var: groups[0], Func: groups[1], Args: args}, nil
	}

	return nil, errs.New(errs.Syntax, "Illegal statement", n)
}

func (l *Lexer) let(name string, n int) (Statement, error) {
	// declarations inside [Intro] are global at any nesting depth
	if l.block == INTRO {
		if l.scope.HasGlobal(name) {
			return nil, errs.Newf(errs.Name, n, "Variable %s already exists", name)
		}
		l.scope.DeclareGlobal(name)
		return Let{Name: name}, nil
	}

	if l.scope.HasLocal(name) {
		return nil, errs.Newf(errs.Name, n, "Variable %s already exists", name)
	}
	l.scope.Declare(name)

	return Let{Name: name}, nil
}

// openBlock opens a new block. Each block sees only the global context plus
// its own fresh context.
func (l *Lexer) openBlock(kind StatementKind, groups []string, n int) (Statement, error) {
	if !l.checks.Empty() {
		return nil, errs.New(errs.Syntax, "Mismatched while or if start", l.checks.Peek())
	}

	var stmt Statement
	switch kind {
	case CHORUS:
		if l.seenChorus {
			return nil, errs.New(errs.Syntax, "Duplicate block", n)
		}
		l.seenChorus = true
		stmt = Chorus{}
	case INTRO:
		if l.seenIntro {
			return nil, errs.New(errs.Syntax, "Duplicate block", n)
		}
		l.seenIntro = true
		stmt = Intro{}
	default:
		params, err := parseParams(groups[1], n)
		if err != nil {
			return nil, err
		}
		stmt = Verse{Name: groups[0], Params: params}
	}

	l.block = kind
	l.scope.Behead()
	l.scope.Push()
	if v, ok := stmt.(Verse); ok {
		for _, p := range v.Params {
			l.scope.Declare(p)
		}
	}

	return stmt, nil
}

// call validates a function invocation and returns its argument names
func (l *Lexer) call(fn, rawArgs string, n int) ([]string, error) {
	arity, ok := l.verses[fn]
	if !ok {
		arity, ok = l.hosts[fn]
	}
	if !ok {
		return nil, errs.Newf(errs.Name, n, "Function name %s doesn't exist", fn)
	}

	args, err := parseArgs(rawArgs, n)
	if err != nil {
		return nil, err
	}

	if arity != stdlib.Variadic && arity != len(args) {
		return nil, errs.Newf(errs.IllegalArgument, n, "Function %s takes %d arguments but %d were given", fn, arity, len(args))
	}

	for _, a := range args {
		if !l.scope.Has(a) {
			return nil, errs.Newf(errs.Name, n, "Variable %s not found", a)
		}
	}

	return args, nil
}

// expression tokenizes an embedded expression and checks every name it
// references. Errors are wrapped in a traceback for line n.
func (l *Lexer) expression(s string, n int) ([]expr.Token, error) {
	tokens, err := expr.Tokenize(s)
	if err != nil {
		return nil, errs.Wrap(err, n)
	}

	for _, name := range expr.Names(tokens) {
		if !l.scope.Has(name) {
			return nil, errs.Wrap(errs.Newf(errs.Name, errs.NoLine, "Variable %s not found", name), n)
		}
	}

	return tokens, nil
}

// parseArgs splits a call argument list. The single word "you" means none.
func parseArgs(s string, n int) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "you" {
		return nil, nil
	}

	return parseNames(s, n)
}

// parseParams splits a Verse parameter list. Empty or "up" means none.
func parseParams(s string, n int) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "up" {
		return nil, nil
	}

	names, err := parseNames(s, n)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, errs.Newf(errs.Name, n, "Duplicate parameter %s", name)
		}
		seen[name] = true
	}

	return names, nil
}

func parseNames(s string, n int) ([]string, error) {
	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if !isIdent(p) {
			return nil, errs.New(errs.Syntax, "Illegal argument list", n)
		}
		names = append(names, p)
	}

	return names, nil
}
