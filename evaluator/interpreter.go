package evaluator

import (
	"github.com/google/uuid"
	"github.com/npillmayer/chira"
	"github.com/npillmayer/chira/grammar"
	"github.com/npillmayer/chira/variables"
)

// OutputSink receives the values printed by statements. It is never called
// with an empty value.
type OutputSink func(chira.Value)

// ErrorSink receives statement errors.
type ErrorSink func(error)

// Interpreter interprets Chira programs. It owns the variables of an
// interpreter session.
//
// An Interpreter is not safe for concurrent use.
type Interpreter struct {
	vars    *variables.Store
	out     OutputSink
	onError ErrorSink
	strict  bool
	session string
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithStrict makes identifiers which name no variable an error.
func WithStrict(strict bool) Option {
	return func(intp *Interpreter) {
		intp.strict = strict
	}
}

// WithErrorSink sets a receiver for errors of statements run by Parse.
func WithErrorSink(sink ErrorSink) Option {
	return func(intp *Interpreter) {
		intp.onError = sink
	}
}

// NewInterpreter creates a new interpreter for the Chira language, printing
// to out. out may be nil, discarding all output.
func NewInterpreter(out OutputSink, opts ...Option) *Interpreter {
	intp := &Interpreter{
		vars:    variables.NewStore(),
		out:     out,
		session: uuid.New().String(),
	}
	for _, opt := range opts {
		opt(intp)
	}
	tracer().P("session", intp.session).Infof("new interpreter, strict=%v", intp.strict)
	return intp
}

// Session returns an ID unique to this interpreter.
func (intp *Interpreter) Session() string {
	return intp.session
}

// Variables returns the variable store of this interpreter.
// Clients should treat it as read-only.
func (intp *Interpreter) Variables() *variables.Store {
	return intp.vars
}

// Parse runs every statement of a program, line by line and left to right.
// An error in a statement is reported to the error sink and does not keep
// later statements from running. Returns true if a statement executed 'quit';
// statements after it are not run.
func (intp *Interpreter) Parse(program string) (quit bool) {
	for _, words := range grammar.SplitProgram(program) {
		r, err := intp.ParseStatement(words)
		if err != nil {
			intp.reportError(err)
			continue
		}
		if r.Quit {
			return true
		}
	}
	return false
}

// ParseStatement evaluates a single statement, given as a list of words.
// Variable changes and output take effect only if the statement succeeds.
func (intp *Interpreter) ParseStatement(words []string) (Result, error) {
	if len(words) == 0 {
		return Result{}, nil
	}
	tx := intp.vars.Begin()
	ev := NewEvaluator(tx, intp.strict)
	r, err := ev.Evaluate(grammar.Tokenize(words), false)
	if err != nil {
		tx.Rollback()
		tracer().P("session", intp.session).Debugf("statement failed: %v", err)
		return Result{}, err
	}
	tx.Commit()
	if intp.out != nil {
		for _, v := range ev.Output() {
			intp.out(v)
		}
	}
	return r, nil
}

func (intp *Interpreter) reportError(err error) {
	if intp.onError != nil {
		intp.onError(err)
		return
	}
	tracer().P("session", intp.session).Errorf(err.Error())
}
