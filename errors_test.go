package chira

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorText(t *testing.T) {
	for i, x := range []struct {
		err  error
		text string
	}{
		{Syntax(), "SyntaxError: Statement is invalid"},
		{Syntax("Incomplete condition"), "SyntaxError: Incomplete condition"},
		{NoVariableFound("x"), `NoVariableFoundError: Could not find variable named "x"`},
		{InvalidOperator("<>"), `InvalidOperatorError: Invalid operator "<>"`},
		{InvalidAssignment(), "InvalidAssignmentError: Invalid assignment type"},
		{InvalidType("foo"), `InvalidTypeError: Invalid type "foo"`},
		{InvalidValue("abc", FloatType), `InvalidValueError: Cannot convert "abc" to float`},
		{ZeroDivision(), "ZeroDivisionError: Division by zero"},
	} {
		if x.err.Error() != x.text {
			t.Errorf("test %d: expected %q, is %q", i, x.text, x.err.Error())
		}
	}
}

func TestErrorKinds(t *testing.T) {
	err := fmt.Errorf("in file: %w", NoVariableFound("y"))
	if !IsKind(err, NoVariableFoundError) {
		t.Errorf("expected wrapped error to be a NoVariableFoundError, is %v", err)
	}
	if IsKind(err, SyntaxError) {
		t.Error("expected wrapped error not to be a SyntaxError, is")
	}
	if !errors.Is(err, Kind(NoVariableFoundError)) {
		t.Error("expected errors.Is to match on kind, doesn't")
	}
	if errors.Is(err, NoVariableFound("z")) {
		t.Error("expected errors.Is to respect messages, doesn't")
	}
	if IsKind(errors.New("other"), SyntaxError) {
		t.Error("expected a plain error to have no kind")
	}
}
