package lexer

import (
	"fmt"
	"rickroll/pkg/expr"
	"strings"
)

type StatementKind int
type StatementCategory int

const (
	NONE StatementCategory = iota
	BLOCK                  // block markers opening a function body
	CONTROL                // if/while open and close
	CALL                   // function invocation and return
	SIMPLE                 // everything else
)

const (
	ILLEGAL StatementKind = iota // unmatched line

	SAY       // Never gonna say <expr>
	LET       // Never gonna let <name> down
	ASSIGN    // Never gonna give <name> <expr>
	CHECK     // Inside we both know <expr>
	WHILEEND  // We know the game and we're gonna play it
	IFEND     // Your heart's been aching but you're too shy to say it
	CHORUS    // [Chorus]
	INTRO     // [Intro]
	VERSE     // [Verse <name>]
	RETURN    // (Ooh) Never gonna give, never gonna give (give you <expr>)
	RUN       // Never gonna run <func> and desert <args>
	RUNASSIGN // (Ooh give you <var>) Never gonna run <func> and desert <args>
)

var statementKindNames = map[StatementKind]string{
	ILLEGAL:   "Illegal",
	SAY:       "Say",
	LET:       "Let",
	ASSIGN:    "Assign",
	CHECK:     "Check",
	WHILEEND:  "WhileEnd",
	IFEND:     "IfEnd",
	CHORUS:    "Chorus",
	INTRO:     "Intro",
	VERSE:     "Verse",
	RETURN:    "Return",
	RUN:       "Run",
	RUNASSIGN: "RunAssign",
}

// String returns a string representation of the StatementKind
func (k StatementKind) String() string {
	if str, ok := statementKindNames[k]; ok {
		return str
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(k))
}

func (c StatementCategory) String() string {
	switch c {
	case BLOCK:
		return "Block"
	case CONTROL:
		return "Control"
	case CALL:
		return "Call"
	case SIMPLE:
		return "Simple"
	default:
		return "None"
	}
}

// GetCategory returns the category of the statement kind
func (k StatementKind) GetCategory() StatementCategory {
	switch k {
	case CHORUS, INTRO, VERSE:
		return BLOCK
	case CHECK, WHILEEND, IFEND:
		return CONTROL
	case RUN, RUNASSIGN, RETURN:
		return CALL
	case SAY, LET, ASSIGN:
		return SIMPLE
	default:
		return NONE
	}
}

// Statement is one recognized source construct. The set of implementations
// is closed to this package.
type Statement interface {
	Kind() StatementKind
	String() string
	statement()
}

type Say struct{ Expr []expr.Token }
type Let struct{ Name string }
type Assign struct {
	Name string
	Expr []expr.Token
}
type Check struct{ Expr []expr.Token }
type WhileEnd struct{}
type IfEnd struct{}
type Chorus struct{}
type Intro struct{}
type Verse struct {
	Name   string
	Params []string
}
type Return struct{ Expr []expr.Token }
type Run struct {
	Func string
	Args []string
}
type RunAssign struct {
	Var  string
	Func string
	Args []string
}

func (Say) Kind() StatementKind       { return SAY }
func (Let) Kind() StatementKind       { return LET }
func (Assign) Kind() StatementKind    { return ASSIGN }
func (Check) Kind() StatementKind     { return CHECK }
func (WhileEnd) Kind() StatementKind  { return WHILEEND }
func (IfEnd) Kind() StatementKind     { return IFEND }
func (Chorus) Kind() StatementKind    { return CHORUS }
func (Intro) Kind() StatementKind     { return INTRO }
func (Verse) Kind() StatementKind     { return VERSE }
func (Return) Kind() StatementKind    { return RETURN }
func (Run) Kind() StatementKind       { return RUN }
func (RunAssign) Kind() StatementKind { return RUNASSIGN }

func (Say) statement()       {}
func (Let) statement()       {}
func (Assign) statement()    {}
func (Check) statement()     {}
func (WhileEnd) statement()  {}
func (IfEnd) statement()     {}
func (Chorus) statement()    {}
func (Intro) statement()     {}
func (Verse) statement()     {}
func (Return) statement()    {}
func (Run) statement()       {}
func (RunAssign) statement() {}

func (s Say) String() string      { return fmt.Sprintf("Say(%s)", expr.Format(s.Expr)) }
func (s Let) String() string      { return fmt.Sprintf("Let(%s)", s.Name) }
func (s Assign) String() string   { return fmt.Sprintf("Assign(%s, %s)", s.Name, expr.Format(s.Expr)) }
func (s Check) String() string    { return fmt.Sprintf("Check(%s)", expr.Format(s.Expr)) }
func (WhileEnd) String() string   { return "WhileEnd" }
func (IfEnd) String() string      { return "IfEnd" }
func (Chorus) String() string     { return "Chorus" }
func (Intro) String() string      { return "Intro" }
func (s Verse) String() string    { return fmt.Sprintf("Verse(%s, [%s])", s.Name, strings.Join(s.Params, ", ")) }
func (s Return) String() string   { return fmt.Sprintf("Return(%s)", expr.Format(s.Expr)) }
func (s Run) String() string      { return fmt.Sprintf("Run(%s, [%s])", s.Func, strings.Join(s.Args, ", ")) }
func (s RunAssign) String() string {
	return fmt.Sprintf("RunAssign(%s, %s, [%s])", s.Var, s.Func, strings.Join(s.Args, ", "))
}

// Entry is a statement tagged with its 1-based source line
type Entry struct {
	Line int
	Stmt Statement
}

// Intermediate is the ordered lexer output consumed by the compiler
type Intermediate []Entry

// String lists one statement per line
func (im Intermediate) String() string {
	var sb strings.Builder
	for _, e := range im {
		fmt.Fprintf(&sb, "%d: %s\n", e.Line, e.Stmt)
	}

	return sb.String()
}
