package grammar

import (
	"strings"

	"github.com/npillmayer/chira"
)

// Token is a word of a statement, or a value a sub-span of a statement has
// been reduced to.
type Token struct {
	Lexeme string
	Cat    Category
	Value  chira.Value // nil for words which are not yet evaluated
}

// Word creates a token from a word, classifying it.
func Word(w string) Token {
	return Token{Lexeme: w, Cat: Classify(w)}
}

// Reduced creates a token for an evaluated value.
func Reduced(v chira.Value) Token {
	return Token{Lexeme: v.String(), Cat: Evaluated, Value: v}
}

// IsValue is a predicate: has this token already been evaluated?
func (t Token) IsValue() bool {
	return t.Value != nil
}

// Is is a predicate: is t the (unevaluated) word w?
func (t Token) Is(w string) bool {
	return t.Value == nil && t.Lexeme == w
}

// Raw returns the token's value if evaluated, or its word otherwise.
// The result is suitable as input for chira.Coerce.
func (t Token) Raw() interface{} {
	if t.Value != nil {
		return t.Value
	}
	return t.Lexeme
}

// AsValue returns the token's value. Words are turned into literal values.
func (t Token) AsValue() chira.Value {
	if t.Value != nil {
		return t.Value
	}
	return chira.Literal(t.Lexeme)
}

func (t Token) String() string {
	if t.Value != nil {
		return "⟨" + t.Value.Type() + ":" + t.Value.String() + "⟩"
	}
	return t.Lexeme
}

// Tokenize classifies a statement's words.
func Tokenize(words []string) []Token {
	toks := make([]Token, len(words))
	for i, w := range words {
		toks[i] = Word(w)
	}
	return toks
}

// Dump is a debugging helper which returns a statement's tokens as a string.
func Dump(toks []Token) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	b.WriteByte(']')
	return b.String()
}
