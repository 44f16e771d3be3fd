package lexer

import (
	"regexp"
)

// identifier accepted for variables, functions and parameters
const identRaw = `[A-Za-z][A-Za-z_]*`

var identRegex = regexp.MustCompile(`^` + identRaw + `$`)

// Statement regex patterns, matched against a trimmed source line.
// Expression captures use \b(.*) so an empty expression still matches and
// is rejected by the tokenizer instead of as an illegal statement.
var statementRegexes = map[StatementKind]*regexp.Regexp{
	RUNASSIGN: regexp.MustCompile(`^\(Ooh give you (` + identRaw + `)\) Never gonna run (` + identRaw + `) and desert (.*)$`),
	RETURN:    regexp.MustCompile(`^\(Ooh\) Never gonna give, never gonna give \(give you\b(.*)\)$`),
	VERSE:     regexp.MustCompile(`^\[Verse (` + identRaw + `)\](?:\s*\(Ooh give you (.*)\))?$`),
	CHORUS:    regexp.MustCompile(`^\[Chorus\]$`),
	INTRO:     regexp.MustCompile(`^\[Intro\]$`),
	SAY:       regexp.MustCompile(`^Never gonna say\b(.*)$`),
	LET:       regexp.MustCompile(`^Never gonna let (` + identRaw + `) down$`),
	RUN:       regexp.MustCompile(`^Never gonna run (` + identRaw + `) and desert (.*)$`),
	ASSIGN:    regexp.MustCompile(`^Never gonna give (` + identRaw + `)\b(.*)$`),
	CHECK:     regexp.MustCompile(`^Inside we both know\b(.*)$`),
	WHILEEND:  regexp.MustCompile(`^We know the game and we're gonna play it$`),
	IFEND:     regexp.MustCompile(`^Your heart's been aching but you're too shy to say it$`),
}

// Statement precedence order for matching (call and return forms first, they
// share prefixes with plainer statements)
var statementPrecedenceOrder = []StatementKind{
	RUNASSIGN, RETURN, VERSE, CHORUS, INTRO,
	SAY, LET, RUN, ASSIGN, CHECK, WHILEEND, IFEND,
}

// Get the regex pattern for a statement kind
func (k StatementKind) Regex() *regexp.Regexp {
	return statementRegexes[k]
}

// MatchStatement finds the first statement shape matching a trimmed line and
// returns its capture groups
func MatchStatement(line string) (StatementKind, []string, bool) {
	for _, kind := range statementPrecedenceOrder {
		if match := kind.Regex().FindStringSubmatch(line); match != nil {
			return kind, match[1:], true
		}
	}

	return ILLEGAL, nil, false
}

// isIdent reports whether s is a valid identifier
func isIdent(s string) bool {
	return identRegex.MatchString(s)
}
