package grammar

import (
	"fmt"
	"sync"

	"github.com/npillmayer/chira"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Category is the token category of a word.
type Category int

// Token categories
const (
	Literal   Category = iota // a word not matched by the scanner
	Ident                     // identifier, possibly a variable name
	Number                    // integer or float literal
	String                    // double-quoted string literal
	Boolean                   // true, false
	TypeName                  // int, str, float, bool
	Keyword                   // if, print, quit, load
	AssignOp                  // =, +=, …
	CompareOp                 // ==, <, …
	ArithOp                   // +, -, …
	UnknownOp                 // operator-like word which is not an operator
	Evaluated                 // an already reduced value
)

var categoryNames = []string{
	"Literal", "Ident", "Number", "String", "Boolean", "TypeName", "Keyword",
	"AssignOp", "CompareOp", "ArithOp", "UnknownOp", "Evaluated",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// IsOperator is a predicate: is c one of the operator categories?
func (c Category) IsOperator() bool {
	return c >= AssignOp && c <= UnknownOp
}

// Keywords
const (
	If    = "if"
	Print = "print"
	Quit  = "quit"
	Load  = "load"
)

var keywords = []string{If, Print, Quit, Load}

// AssignmentOps are the assignment operators, '=' first.
var AssignmentOps = []string{"=", "+=", "-=", "*=", "/=", "%=", "**="}

// ComparisonOps are the comparison operators.
var ComparisonOps = []string{"==", "!=", ">", "<", ">=", "<="}

// ArithmeticOps are recognized, but have no meaning of their own in a statement.
var ArithmeticOps = []string{"+", "-", "*", "/", "%", "**"}

// categoryFromLexeme will be set in initTokens()
var categoryFromLexeme map[string]Category

var initOnce sync.Once // monitors one-time initialization

var wordLexer *lexmachine.Lexer

func initTokens() {
	initOnce.Do(func() {
		categoryFromLexeme = make(map[string]Category)
		for _, k := range keywords {
			categoryFromLexeme[k] = Keyword
		}
		for _, t := range chira.TypeNames() {
			categoryFromLexeme[t] = TypeName
		}
		for _, b := range []string{"true", "false", "True", "False"} {
			categoryFromLexeme[b] = Boolean
		}
		for _, op := range AssignmentOps {
			categoryFromLexeme[op] = AssignOp
		}
		for _, op := range ComparisonOps {
			categoryFromLexeme[op] = CompareOp
		}
		for _, op := range ArithmeticOps {
			categoryFromLexeme[op] = ArithOp
		}
		var err error
		if wordLexer, err = newWordLexer(); err != nil {
			panic(fmt.Sprintf("cannot create lexer: %v", err))
		}
	})
}

// newWordLexer creates a lexmachine lexer for single words.
func newWordLexer() (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`"[^"]*"`), makeToken(String))
	lexer.Add([]byte(`[\+\-]?[0-9]+`), makeToken(Number))
	lexer.Add([]byte(`[\+\-]?([0-9]+\.[0-9]*|\.[0-9]+)([eE][\+\-]?[0-9]+)?`), makeToken(Number))
	lexer.Add([]byte(`[\+\-]?[0-9]+[eE][\+\-]?[0-9]+`), makeToken(Number))
	lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeSymbol(Ident))
	lexer.Add([]byte(`[=!<>\+\-\*/%&\|]+`), makeSymbol(UnknownOp))
	if err := lexer.Compile(); err != nil {
		return nil, err
	}
	return lexer, nil
}

func makeToken(c Category) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(c), string(m.Bytes), m), nil
	}
}

// makeSymbol creates an action which checks for reserved lexemes first and
// falls back to category c.
func makeSymbol(c Category) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		lexeme := string(m.Bytes)
		if cat, ok := categoryFromLexeme[lexeme]; ok {
			return s.Token(int(cat), lexeme, m), nil
		}
		return s.Token(int(c), lexeme, m), nil
	}
}

// Classify returns the token category of a word. The word has to be matched
// as a whole; "x=5" is a Literal, not an identifier followed by more tokens.
func Classify(word string) Category {
	initTokens()
	if word == "" {
		return Literal
	}
	scanner, err := wordLexer.Scanner([]byte(word))
	if err != nil {
		tracer().Errorf("cannot scan word %q: %v", word, err)
		return Literal
	}
	tok, err, eos := scanner.Next()
	if err != nil || eos {
		return Literal
	}
	t := tok.(*lexmachine.Token)
	if len(t.Lexeme) != len(word) {
		return Literal
	}
	return Category(t.Type)
}
