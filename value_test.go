package chira

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFloatString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chira")
	defer teardown()
	//
	for i, x := range []struct {
		f Float
		s string
	}{
		{8, "8.0"},
		{-2, "-2.0"},
		{0, "0.0"},
		{0.5, "0.5"},
		{2.25, "2.25"},
		{0.1, "0.1"},
		{123456789, "123456789.0"},
		{1e16, "1e+16"},
		{1e-05, "1e-05"},
		{0.0001, "0.0001"},
		{Float(math.Inf(1)), "inf"},
		{Float(math.Inf(-1)), "-inf"},
		{Float(math.NaN()), "nan"},
	} {
		if x.f.String() != x.s {
			t.Errorf("test %d: expected %s, is %s", i, x.s, x.f.String())
		}
	}
}

func TestPrintedForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chira")
	defer teardown()
	//
	if Bool(true).String() != "True" || Bool(false).String() != "False" {
		t.Errorf("expected True/False, are %s/%s", Bool(true), Bool(false))
	}
	if Int(-42).String() != "-42" {
		t.Errorf("expected -42, is %s", Int(-42))
	}
}

func TestCoerce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chira")
	defer teardown()
	//
	for i, x := range []struct {
		typename string
		raw      interface{}
		value    Value
		kind     ErrorKind
	}{
		{typename: IntType, raw: "5", value: Int(5)},
		{typename: IntType, raw: `"7"`, value: Int(7)},
		{typename: IntType, raw: Float(3.9), value: Int(3)},
		{typename: IntType, raw: Float(-3.9), value: Int(-3)},
		{typename: IntType, raw: Bool(true), value: Int(1)},
		{typename: IntType, raw: Str("12"), value: Int(12)},
		{typename: IntType, raw: "5.5", kind: InvalidValueError},
		{typename: IntType, raw: "abc", kind: InvalidValueError},
		{typename: IntType, raw: Float(math.Inf(1)), kind: InvalidValueError},
		{typename: FloatType, raw: "2.5", value: Float(2.5)},
		{typename: FloatType, raw: "1e3", value: Float(1000)},
		{typename: FloatType, raw: Int(2), value: Float(2)},
		{typename: FloatType, raw: `"abc"`, kind: InvalidValueError},
		{typename: StrType, raw: `"hello"`, value: Str("hello")},
		{typename: StrType, raw: "hello", value: Str("hello")},
		{typename: StrType, raw: Float(2), value: Str("2.0")},
		{typename: StrType, raw: Bool(false), value: Str("False")},
		{typename: BoolType, raw: "true", value: Bool(true)},
		{typename: BoolType, raw: "False", value: Bool(false)},
		{typename: BoolType, raw: "0", value: Bool(false)},
		{typename: BoolType, raw: "1", value: Bool(true)},
		{typename: BoolType, raw: "yes", value: Bool(true)},
		{typename: BoolType, raw: `""`, value: Bool(false)},
		{typename: BoolType, raw: Int(0), value: Bool(false)},
		{typename: BoolType, raw: Str(""), value: Bool(false)},
		{typename: "complex", raw: "1", kind: InvalidTypeError},
	} {
		v, err := Coerce(x.typename, x.raw)
		if x.kind != "" {
			if !IsKind(err, x.kind) {
				t.Errorf("test %d: expected %s, is %v", i, x.kind, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		if v != x.value {
			t.Errorf("test %d: expected %#v, is %#v", i, x.value, v)
		}
	}
}

func TestInfer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chira")
	defer teardown()
	//
	for word, typ := range map[string]string{
		"5":       IntType,
		"-5":      IntType,
		"5.0":     FloatType,
		"1e10":    FloatType,
		`"5"`:     StrType,
		"true":    BoolType,
		"False":   BoolType,
		"hello":   StrType,
		"":        StrType,
		`"a b"`:   StrType,
		"inf_var": StrType,
	} {
		if Infer(word) != typ {
			t.Errorf("expected %q to be inferred as %s, is %s", word, typ, Infer(word))
		}
	}
	if Literal(`"x"`) != Str("x") {
		t.Errorf("expected literal \"x\" to be unquoted, is %v", Literal(`"x"`))
	}
}

func TestTruthy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chira")
	defer teardown()
	//
	if !Truthy(Bool(true)) || Truthy(Bool(false)) {
		t.Error("expected booleans to be their own truth value")
	}
	if Truthy(Int(0)) || !Truthy(Int(3)) || Truthy(Str("")) || !Truthy(Str("x")) {
		t.Error("expected zero values to be false, others true")
	}
	if Truthy(nil) {
		t.Error("expected nil to be false, isn't")
	}
}

func TestTypeNames(t *testing.T) {
	names := TypeNames()
	expected := []string{BoolType, FloatType, IntType, StrType}
	if len(names) != len(expected) {
		t.Fatalf("expected %d type names, have %d", len(expected), len(names))
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("expected type name #%d to be %s, is %s", i, expected[i], names[i])
		}
	}
	if !IsType("float") || IsType("double") {
		t.Error("expected float to be a type and double not to be one")
	}
}
