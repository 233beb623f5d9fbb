package grammar

import "strings"

// StatementSeparator separates statements on a line.
const StatementSeparator = ";"

// SplitProgram splits program text into statements, and statements into
// words. An empty statement results in a nil word list.
func SplitProgram(text string) [][]string {
	var statements [][]string
	for _, line := range strings.Split(text, "\n") {
		statements = append(statements, SplitLine(line)...)
	}
	tracer().Debugf("program split into %d statements", len(statements))
	return statements
}

// SplitLine splits a single line of text into statements, and these into words.
func SplitLine(line string) [][]string {
	line = strings.TrimSuffix(line, "\r")
	parts := strings.Split(line, StatementSeparator)
	statements := make([][]string, len(parts))
	for i, s := range parts {
		statements[i] = SplitStatement(s)
	}
	return statements
}

// SplitStatement trims a statement and splits it on single spaces.
// Consecutive spaces result in empty words.
func SplitStatement(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, " ")
}
