package chira

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chira'.
func tracer() tracing.Trace {
	return tracing.Select("chira")
}

// Names of the predefined types.
const (
	IntType   = "int"
	StrType   = "str"
	FloatType = "float"
	BoolType  = "bool"
)

// --- Value -----------------------------------------------------------------

// Value is an interface for all values which Chira can handle.
type Value interface {
	Type() string   // name of the type of the value
	String() string // user visible representation, as printed by 'print'
}

// Int is an integer value.
type Int int64

// Type returns IntType.
func (i Int) Type() string { return IntType }

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// Float is a floating point value.
type Float float64

// Type returns FloatType.
func (f Float) Type() string { return FloatType }

// String formats f in shortest round-trip form. Integral values keep a
// trailing ".0", large and tiny magnitudes switch to exponent notation.
func (f Float) String() string {
	x := float64(f)
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	var s string
	if a := math.Abs(x); a != 0 && (a < 1e-4 || a >= 1e16) {
		s = strconv.FormatFloat(x, 'e', -1, 64)
	} else {
		s = strconv.FormatFloat(x, 'f', -1, 64)
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Str is a string value.
type Str string

// Type returns StrType.
func (s Str) Type() string { return StrType }

func (s Str) String() string { return string(s) }

// Bool is a boolean value.
type Bool bool

// Type returns BoolType.
func (b Bool) Type() string { return BoolType }

func (b Bool) String() string {
	if b {
		return "True"
	}
	return "False"
}

// IsEmpty is a predicate: is v absent or the empty string?
// Empty values are never sent to an output sink.
func IsEmpty(v Value) bool {
	if v == nil {
		return true
	}
	s, ok := v.(Str)
	return ok && s == ""
}

// Truthy returns the boolean interpretation of a value.
func Truthy(v Value) bool {
	b, err := Coerce(BoolType, v)
	if err != nil {
		return false
	}
	return bool(b.(Bool))
}

// --- Type registry ---------------------------------------------------------

// Coercion converts a raw value to a value of a fixed type. Raw values are
// either words (string) as they appear in a statement, or Values.
type Coercion func(raw interface{}) (Value, error)

var registry = map[string]Coercion{
	IntType:   toInt,
	StrType:   toStr,
	FloatType: toFloat,
	BoolType:  toBool,
}

// Coerce converts raw to a value of type typename.
// Will return an InvalidTypeError if typename is not a registered type.
func Coerce(typename string, raw interface{}) (Value, error) {
	c, ok := registry[typename]
	if !ok {
		return nil, InvalidType(typename)
	}
	return c(raw)
}

// IsType is a predicate: is name a registered type name?
func IsType(name string) bool {
	_, ok := registry[name]
	return ok
}

// TypeNames returns the registered type names, sorted.
func TypeNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unquote strips a single pair of enclosing double quotes from a word.
func Unquote(word string) string {
	if len(word) >= 2 && word[0] == '"' && word[len(word)-1] == '"' {
		return word[1 : len(word)-1]
	}
	return word
}

// Literal creates a value from a word, inferring its type.
func Literal(word string) Value {
	v, err := Coerce(Infer(word), word)
	if err != nil { // cannot happen for an inferred type
		tracer().Errorf("literal %q does not match its inferred type", word)
		return Str(Unquote(word))
	}
	return v
}

// Infer decides on a type for an untyped literal word.
func Infer(word string) string {
	if len(word) >= 2 && word[0] == '"' && word[len(word)-1] == '"' {
		return StrType
	}
	switch word {
	case "true", "false", "True", "False":
		return BoolType
	}
	if _, err := strconv.ParseInt(word, 10, 64); err == nil {
		return IntType
	}
	if _, err := strconv.ParseFloat(word, 64); err == nil {
		return FloatType
	}
	return StrType
}

func toInt(raw interface{}) (Value, error) {
	switch v := raw.(type) {
	case Int:
		return v, nil
	case Float:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= 1<<63 {
			return nil, InvalidValue(v.String(), IntType)
		}
		return Int(int64(f)), nil // truncates toward zero
	case Bool:
		if v {
			return Int(1), nil
		}
		return Int(0), nil
	case Str:
		return parseInt(string(v))
	case string:
		return parseInt(Unquote(v))
	}
	return nil, InvalidValue(fmt.Sprintf("%v", raw), IntType)
}

func parseInt(s string) (Value, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil, InvalidValue(s, IntType)
	}
	return Int(n), nil
}

func toFloat(raw interface{}) (Value, error) {
	switch v := raw.(type) {
	case Int:
		return Float(float64(v)), nil
	case Float:
		return v, nil
	case Bool:
		if v {
			return Float(1), nil
		}
		return Float(0), nil
	case Str:
		return parseFloat(string(v))
	case string:
		return parseFloat(Unquote(v))
	}
	return nil, InvalidValue(fmt.Sprintf("%v", raw), FloatType)
}

func parseFloat(s string) (Value, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, InvalidValue(s, FloatType)
	}
	return Float(f), nil
}

func toStr(raw interface{}) (Value, error) {
	switch v := raw.(type) {
	case Value:
		return Str(v.String()), nil
	case string:
		return Str(Unquote(v)), nil
	}
	return nil, InvalidValue(fmt.Sprintf("%v", raw), StrType)
}

func toBool(raw interface{}) (Value, error) {
	switch v := raw.(type) {
	case Bool:
		return v, nil
	case Int:
		return Bool(v != 0), nil
	case Float:
		return Bool(v != 0), nil
	case Str:
		return Bool(v != ""), nil
	case string:
		switch v {
		case "true", "True", "1":
			return Bool(true), nil
		case "false", "False", "0", "":
			return Bool(false), nil
		}
		return Bool(Unquote(v) != ""), nil
	}
	return nil, InvalidValue(fmt.Sprintf("%v", raw), BoolType)
}
