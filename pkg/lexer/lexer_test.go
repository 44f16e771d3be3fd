package lexer_test

import (
	"rickroll/pkg/errs"
	"rickroll/pkg/lexer"
	"rickroll/pkg/stdlib"
	"strings"
	"testing"
)

func lines(ls ...string) string {
	return strings.Join(ls, "\n")
}

func TestStatementKinds(t *testing.T) {
	input := lines(
		"[Intro]",
		"Never gonna let g down",
		"",
		"[Verse add] (Ooh give you a, b)",
		"(Ooh) Never gonna give, never gonna give (give you a + b)",
		"",
		"[Chorus]",
		"   Never gonna let x down   ",
		"Never gonna give x 3",
		"Inside we both know x > 0",
		"  Never gonna say x",
		"  Never gonna give x x - 1",
		"We know the game and we're gonna play it",
		"Inside we both know x == 0",
		"Your heart's been aching but you're too shy to say it",
		"Never gonna run add and desert x, x",
		"(Ooh give you x) Never gonna run add and desert x, g",
	)

	out, err := lexer.Lex(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []struct {
		line int
		kind lexer.StatementKind
	}{
		{1, lexer.INTRO}, {2, lexer.LET},
		{4, lexer.VERSE}, {5, lexer.RETURN},
		{7, lexer.CHORUS}, {8, lexer.LET}, {9, lexer.ASSIGN},
		{10, lexer.CHECK}, {11, lexer.SAY}, {12, lexer.ASSIGN}, {13, lexer.WHILEEND},
		{14, lexer.CHECK}, {15, lexer.IFEND},
		{16, lexer.RUN}, {17, lexer.RUNASSIGN},
	}

	if len(out) != len(expected) {
		t.Fatalf("expected %d statements, got %d:\n%s", len(expected), len(out), out)
	}
	for i, e := range expected {
		if out[i].Line != e.line || out[i].Stmt.Kind() != e.kind {
			t.Errorf("Statement %d: expected %s on line %d, got %s on line %d",
				i, e.kind, e.line, out[i].Stmt.Kind(), out[i].Line)
		}
	}

	verse := out[2].Stmt.(lexer.Verse)
	if verse.Name != "add" || len(verse.Params) != 2 || verse.Params[1] != "b" {
		t.Errorf("unexpected verse %s", verse)
	}

	ra := out[14].Stmt.(lexer.RunAssign)
	if ra.Var != "x" || ra.Func != "add" || len(ra.Args) != 2 || ra.Args[1] != "g" {
		t.Errorf("unexpected run-assign %s", ra)
	}
}

func TestCategories(t *testing.T) {
	tests := []struct {
		kind     lexer.StatementKind
		expected lexer.StatementCategory
	}{
		{lexer.CHORUS, lexer.BLOCK},
		{lexer.VERSE, lexer.BLOCK},
		{lexer.CHECK, lexer.CONTROL},
		{lexer.IFEND, lexer.CONTROL},
		{lexer.RUNASSIGN, lexer.CALL},
		{lexer.RETURN, lexer.CALL},
		{lexer.SAY, lexer.SIMPLE},
		{lexer.ILLEGAL, lexer.NONE},
	}

	for _, test := range tests {
		if got := test.kind.GetCategory(); got != test.expected {
			t.Errorf("%s: expected %s, got %s", test.kind, test.expected, got)
		}
	}
}

func TestIntermediateString(t *testing.T) {
	out, err := lexer.Lex(lines(
		"[Chorus]",
		"",
		"Never gonna let x down",
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "1: Chorus\n3: Let(x)\n"
	if out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}
}

func TestMatchStatement(t *testing.T) {
	tests := []struct {
		input    string
		expected lexer.StatementKind
		groups   []string
	}{
		{"Never gonna say 1 + 2", lexer.SAY, []string{" 1 + 2"}},
		{"Never gonna let count down", lexer.LET, []string{"count"}},
		{"Never gonna give count count + 1", lexer.ASSIGN, []string{"count", " count + 1"}},
		{"Inside we both know TRUE", lexer.CHECK, []string{" TRUE"}},
		{"[Verse fib] (Ooh give you up)", lexer.VERSE, []string{"fib", "up"}},
		{"[Verse main_loop]", lexer.VERSE, []string{"main_loop", ""}},
		{"Never gonna run fib and desert you", lexer.RUN, []string{"fib", "you"}},
		{"(Ooh give you r) Never gonna run fib and desert n", lexer.RUNASSIGN, []string{"r", "fib", "n"}},
		{"(Ooh) Never gonna give, never gonna give (give you (n - 1))", lexer.RETURN, []string{" (n - 1)"}},
		{"[Chorus]", lexer.CHORUS, []string{}},
		{"[Intro]", lexer.INTRO, []string{}},
	}

	for _, test := range tests {
		kind, groups, ok := lexer.MatchStatement(test.input)
		if !ok {
			t.Errorf("Failed to match %q", test.input)
			continue
		}
		if kind != test.expected {
			t.Errorf("%q: expected %s, got %s", test.input, test.expected, kind)
			continue
		}
		if len(groups) != len(test.groups) {
			t.Errorf("%q: expected groups %q, got %q", test.input, test.groups, groups)
			continue
		}
		for i := range groups {
			if groups[i] != test.groups[i] {
				t.Errorf("%q: group %d expected %q, got %q", test.input, i, test.groups[i], groups[i])
			}
		}
	}

	for _, bad := range []string{"Never gonna tell a lie", "[Verse]", "never gonna say 1", "[Chorus] x"} {
		if kind, _, ok := lexer.MatchStatement(bad); ok {
			t.Errorf("%q: expected no match, got %s", bad, kind)
		}
	}
}

func TestVerseCallBeforeDeclaration(t *testing.T) {
	input := lines(
		"[Chorus]",
		"Never gonna let r down",
		"(Ooh give you r) Never gonna run later and desert you",
		"[Verse later] (Ooh give you up)",
		"(Ooh) Never gonna give, never gonna give (give you 1)",
	)

	if _, err := lexer.Lex(input); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestHostFunctions(t *testing.T) {
	input := lines(
		"[Chorus]",
		"Never gonna let a down",
		"Never gonna let arr down",
		"(Ooh give you arr) Never gonna run ArrayOf and desert a, a, a",
		"(Ooh give you a) Never gonna run ArrayLength and desert arr",
	)

	fns := map[string]int{"ArrayOf": stdlib.Variadic, "ArrayLength": 1}
	if _, err := lexer.Lex(input, lexer.WithFunctions(fns)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestVerseShadowsHostFunction(t *testing.T) {
	input := lines(
		"[Verse ArrayLength] (Ooh give you a, b)",
		"(Ooh) Never gonna give, never gonna give (give you a + b)",
		"[Chorus]",
		"Never gonna let x down",
		"Never gonna give x 1",
		"(Ooh give you x) Never gonna run ArrayLength and desert x, x",
	)

	if _, err := lexer.Lex(input, lexer.WithFunctions(stdlib.Arities())); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	// the host arity no longer applies
	bad := strings.Replace(input, "desert x, x", "desert x", 1)
	_, err := lexer.Lex(bad, lexer.WithFunctions(stdlib.Arities()))
	if err == nil || err.Error() != "Illegal Argument on line 6: Function ArrayLength takes 2 arguments but 1 were given" {
		t.Errorf("expected the verse arity to be checked, got %v", err)
	}
}

func TestIntroLetIsGlobal(t *testing.T) {
	input := lines(
		"[Intro]",
		"Inside we both know TRUE",
		"Never gonna let counter down",
		"Your heart's been aching but you're too shy to say it",
		"[Verse bump] (Ooh give you up)",
		"Never gonna give counter counter + 1",
		"[Chorus]",
		"Never gonna say counter",
	)

	if _, err := lexer.Lex(input); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestScopeIsolation(t *testing.T) {
	input := lines(
		"[Chorus]",
		"Never gonna let x down",
		"[Verse f] (Ooh give you up)",
		"Never gonna say x",
	)

	_, err := lexer.Lex(input)
	if err == nil {
		t.Fatalf("expected function body not to see chorus locals")
	}
	if err.Error() != "Traceback on line 4\nName Error: Variable x not found" {
		t.Errorf("unexpected error %q", err.Error())
	}
}

func TestCheckScope(t *testing.T) {
	input := lines(
		"[Chorus]",
		"Inside we both know TRUE",
		"Never gonna let inner down",
		"Your heart's been aching but you're too shy to say it",
		"Never gonna give inner 1",
	)

	_, err := lexer.Lex(input)
	if err == nil || err.Error() != "Name Error on line 5: Variable inner not found" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"illegal statement",
			lines("[Chorus]", "Never gonna tell a lie"),
			"Syntax Error on line 2: Illegal statement",
		},
		{
			"duplicate let",
			lines("[Chorus]", "Never gonna let x down", "Never gonna let x down"),
			"Name Error on line 3: Variable x already exists",
		},
		{
			"assign undeclared",
			lines("[Chorus]", "Never gonna give y 1"),
			"Name Error on line 2: Variable y not found",
		},
		{
			"expression error",
			lines("[Chorus]", "Never gonna say (1 + 2"),
			"Traceback on line 2\nSyntax Error: Unbalanced parenthesis",
		},
		{
			"empty expression",
			lines("[Chorus]", "Never gonna say"),
			"Traceback on line 2\nSyntax Error: Unexpected end of statement",
		},
		{
			"unclosed check",
			lines("[Chorus]", "Inside we both know TRUE", "Never gonna say 1"),
			"Syntax Error on line 2: Mismatched while or if start",
		},
		{
			"block inside check",
			lines("[Chorus]", "Inside we both know TRUE", "[Intro]"),
			"Syntax Error on line 2: Mismatched while or if start",
		},
		{
			"stray end",
			lines("[Chorus]", "We know the game and we're gonna play it"),
			"Syntax Error on line 2: Mismatched while or if end",
		},
		{
			"duplicate chorus",
			lines("[Chorus]", "[Chorus]"),
			"Syntax Error on line 2: Duplicate block",
		},
		{
			"duplicate verse",
			lines("[Verse f]", "[Verse f]"),
			"Name Error on line 2: Function named f already exists",
		},
		{
			"duplicate parameter",
			lines("[Verse f] (Ooh give you a, a)"),
			"Name Error on line 1: Duplicate parameter a",
		},
		{
			"unknown function",
			lines("[Chorus]", "Never gonna run nope and desert you"),
			"Name Error on line 2: Function name nope doesn't exist",
		},
		{
			"wrong arity",
			lines("[Verse f] (Ooh give you a)", "[Chorus]", "Never gonna run f and desert you"),
			"Illegal Argument on line 3: Function f takes 1 arguments but 0 were given",
		},
		{
			"undeclared argument",
			lines("[Verse f] (Ooh give you a)", "[Chorus]", "Never gonna run f and desert z"),
			"Name Error on line 3: Variable z not found",
		},
		{
			"undeclared result",
			lines("[Verse f]", "[Chorus]", "(Ooh give you r) Never gonna run f and desert you"),
			"Name Error on line 3: Variable r not found",
		},
		{
			"bad argument list",
			lines("[Verse f] (Ooh give you a)", "[Chorus]", "Never gonna let x down", "Never gonna run f and desert x,"),
			"Syntax Error on line 4: Illegal argument list",
		},
	}

	for _, test := range tests {
		_, err := lexer.Lex(test.input)
		if err == nil {
			t.Errorf("%s: expected an error", test.name)
			continue
		}
		if err.Error() != test.expected {
			t.Errorf("%s: expected %q, got %q", test.name, test.expected, err.Error())
		}
		if _, ok := errs.KindOf(err); !ok {
			t.Errorf("%s: expected a language error", test.name)
		}
	}
}
