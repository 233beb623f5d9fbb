package evaluator

import "github.com/npillmayer/chira/grammar"

// splice replaces toks[from:to] by t, in place.
func splice(toks []grammar.Token, from, to int, t grammar.Token) []grammar.Token {
	toks[from] = t
	n := copy(toks[from+1:], toks[to:])
	return toks[:from+1+n]
}

// find returns the index of the first unevaluated token for which match is
// true, or -1.
func find(toks []grammar.Token, match func(grammar.Token) bool) int {
	for i, t := range toks {
		if !t.IsValue() && match(t) {
			return i
		}
	}
	return -1
}

func isCategory(cats ...grammar.Category) func(grammar.Token) bool {
	return func(t grammar.Token) bool {
		for _, c := range cats {
			if t.Cat == c {
				return true
			}
		}
		return false
	}
}

// findComparison returns the index of the first comparison operator, or -1.
// An unknown operator counts only if it has an operand on either side.
func findComparison(toks []grammar.Token) int {
	for i, t := range toks {
		if t.IsValue() {
			continue
		}
		switch t.Cat {
		case grammar.CompareOp:
			return i
		case grammar.UnknownOp:
			if i > 0 && i+1 < len(toks) && isOperand(toks[i-1]) && isOperand(toks[i+1]) {
				return i
			}
		}
	}
	return -1
}

// isOperand is a predicate: may t stand on one side of a comparison?
func isOperand(t grammar.Token) bool {
	return t.IsValue() || (t.Cat != grammar.Keyword && !t.Cat.IsOperator())
}
