package evaluator

import (
	"fmt"

	"github.com/npillmayer/chira"
	"github.com/npillmayer/chira/grammar"
	"github.com/npillmayer/chira/variables"
)

// Result is the outcome of evaluating a statement.
type Result struct {
	Value chira.Value // value of a sub-expression, nil otherwise
	Quit  bool        // statement executed 'quit'
}

// Evaluator reduces the tokens of a single statement. It reads and writes
// variables through an accessor, usually a statement transaction, and
// collects output until the statement is done.
type Evaluator struct {
	vars   variables.Accessor
	strict bool          // unknown identifiers are errors
	output []chira.Value // values printed by the statement
}

// NewEvaluator creates an evaluator working on vars.
// If strict is set, identifiers naming no variable are an error instead of
// a literal.
func NewEvaluator(vars variables.Accessor, strict bool) *Evaluator {
	return &Evaluator{vars: vars, strict: strict}
}

// Output returns the values printed so far.
func (ev *Evaluator) Output() []chira.Value {
	return ev.output
}

// Evaluate reduces a statement. toks will be modified.
// If sub is set, the statement is the condition of an 'if' and its value,
// if any, is returned in the result.
func (ev *Evaluator) Evaluate(toks []grammar.Token, sub bool) (Result, error) {
	if len(toks) == 0 {
		return Result{}, nil
	}
	tracer().Debugf("evaluate %s", grammar.Dump(toks))
	// conditional extraction
	if i := find(toks, func(t grammar.Token) bool { return t.Is(grammar.If) }); i >= 0 {
		return ev.conditional(toks, i, sub)
	}
	var err error
	if toks, err = ev.assignments(toks); err != nil {
		return Result{}, err
	}
	if toks, err = ev.substitute(toks); err != nil {
		return Result{}, err
	}
	if toks, err = ev.comparisons(toks); err != nil {
		return Result{}, err
	}
	quit, err := ev.functions(toks)
	if err != nil {
		return Result{}, err
	}
	if quit {
		return Result{Quit: true}, nil
	}
	if sub && len(toks) == 1 {
		return Result{Value: toks[0].AsValue()}, nil
	}
	return Result{}, nil
}

// conditional handles
//
//    if a op b …
//
// The three tokens following 'if' are evaluated as a sub-expression. If it
// is true, evaluation continues with the tokens after the condition.
// Otherwise the statement evaluates to nothing. Tokens in front of 'if' are
// dropped in both cases.
func (ev *Evaluator) conditional(toks []grammar.Token, i int, sub bool) (Result, error) {
	if len(toks) < i+4 {
		return Result{}, chira.Syntax("Incomplete condition")
	}
	if i > 0 {
		tracer().Debugf("dropping %d token(s) in front of %q", i, grammar.If)
	}
	cond := make([]grammar.Token, 3)
	copy(cond, toks[i+1:i+4])
	r, err := ev.Evaluate(cond, true)
	if err != nil {
		return Result{}, err
	}
	if r.Value == nil {
		return Result{}, chira.Syntax("Condition does not evaluate to a value")
	}
	if !chira.Truthy(r.Value) {
		tracer().Debugf("condition is false, skipping %d token(s)", len(toks)-i-4)
		return Result{}, nil
	}
	return ev.Evaluate(toks[i+4:], sub)
}

// assignments reduces every assignment, first to last.
func (ev *Evaluator) assignments(toks []grammar.Token) ([]grammar.Token, error) {
	for {
		i := find(toks, isCategory(grammar.AssignOp))
		if i < 0 {
			return toks, nil
		}
		var err error
		if toks, err = ev.reduceAssignment(toks, i); err != nil {
			return toks, err
		}
		tracer().Debugf("after assignment: %s", grammar.Dump(toks))
	}
}

// reduceAssignment reduces an assignment with operator at position i:
//
//    assignment : [type] name op value
//
// The type is allowed for '=' only. Without a type, an existing variable
// keeps its type and a new variable gets the type of the literal value.
func (ev *Evaluator) reduceAssignment(toks []grammar.Token, i int) ([]grammar.Token, error) {
	op := toks[i].Lexeme
	if i < 1 || i+1 >= len(toks) {
		return toks, chira.Syntax()
	}
	target := toks[i-1]
	if target.IsValue() || target.Cat != grammar.Ident {
		return toks, chira.Syntax(fmt.Sprintf("Cannot assign to %q", target.Lexeme))
	}
	name := target.Lexeme
	value, err := ev.operand(toks[i+1])
	if err != nil {
		return toks, err
	}
	from := i - 1
	var typename string
	if op == "=" {
		if i >= 2 && !toks[i-2].IsValue() {
			switch prefix := toks[i-2]; prefix.Cat {
			case grammar.TypeName:
				typename, from = prefix.Lexeme, i-2
			case grammar.Ident:
				return toks, chira.InvalidType(prefix.Lexeme)
			}
		}
		if typename == "" {
			if typename, err = ev.vars.GetType(name); err != nil {
				typename = inferType(value)
			}
		}
	} else if typename, err = ev.vars.GetType(name); err != nil {
		return toks, err
	}
	result, err := ev.assign(typename, name, op, value.Raw())
	if err != nil {
		return toks, err
	}
	return splice(toks, from, i+2, grammar.Reduced(result)), nil
}

// operand prepares the right hand side of an assignment. Variable names are
// replaced by the variable's value.
func (ev *Evaluator) operand(t grammar.Token) (grammar.Token, error) {
	if t.IsValue() {
		return t, nil
	}
	if t.Cat.IsOperator() {
		return t, chira.Syntax(fmt.Sprintf("Operator %q is not a value", t.Lexeme))
	}
	if t.Cat == grammar.Ident {
		if ev.vars.Exists(t.Lexeme) {
			v, err := ev.vars.Get(t.Lexeme)
			if err != nil {
				return t, err
			}
			return grammar.Reduced(v), nil
		} else if ev.strict {
			return t, chira.NoVariableFound(t.Lexeme)
		}
	}
	return t, nil
}

func inferType(t grammar.Token) string {
	if t.IsValue() {
		return t.Value.Type()
	}
	return chira.Infer(t.Lexeme)
}

// substitute replaces every identifier naming a variable by its value.
func (ev *Evaluator) substitute(toks []grammar.Token) ([]grammar.Token, error) {
	for i, t := range toks {
		if t.IsValue() || t.Cat != grammar.Ident {
			continue
		}
		if !ev.vars.Exists(t.Lexeme) {
			if ev.strict {
				return toks, chira.NoVariableFound(t.Lexeme)
			}
			continue
		}
		v, err := ev.vars.Get(t.Lexeme)
		if err != nil {
			return toks, err
		}
		toks[i] = grammar.Reduced(v)
	}
	return toks, nil
}

// comparisons reduces every comparison, first to last. Words looking like an
// operator, but which are none, are treated as comparison operators if they
// stand between two operands, for compare to reject them. Otherwise they are
// left as literals.
func (ev *Evaluator) comparisons(toks []grammar.Token) ([]grammar.Token, error) {
	for {
		i := findComparison(toks)
		if i < 0 {
			return toks, nil
		}
		if i < 1 || i+1 >= len(toks) {
			return toks, chira.Syntax()
		}
		b, err := compare(toks[i-1].Raw(), toks[i].Lexeme, toks[i+1].Raw())
		if err != nil {
			return toks, err
		}
		toks = splice(toks, i-1, i+2, grammar.Reduced(b))
		tracer().Debugf("after comparison: %s", grammar.Dump(toks))
	}
}

// functions dispatches the built-in functions. 'load' is handled by the
// caller, before statements reach the evaluator.
func (ev *Evaluator) functions(toks []grammar.Token) (quit bool, err error) {
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		switch {
		case t.Is(grammar.Print):
			if i+1 >= len(toks) {
				return false, chira.Syntax(fmt.Sprintf("%q needs an argument", grammar.Print))
			}
			ev.print(toks[i+1])
			i++
		case t.Is(grammar.Quit):
			tracer().Debugf("quit")
			return true, nil
		}
	}
	return false, nil
}

func (ev *Evaluator) print(t grammar.Token) {
	var v chira.Value
	if t.IsValue() {
		v = t.Value
	} else {
		v = chira.Str(chira.Unquote(t.Lexeme))
	}
	if chira.IsEmpty(v) {
		return
	}
	ev.output = append(ev.output, v)
}
