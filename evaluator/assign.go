package evaluator

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/chira"
)

// maxStringLen limits the result of string repetition.
const maxStringLen = 1 << 24

/*
assign performs an assignment to variable name of type typename.

'=' creates or re-declares a variable. Compound operators need an existing
variable and keep its type; the operand is converted to that type and the
result is converted again before it is stored.

   bool       supports '=' only
   str        supports '=', '+=' (concatenation) and '*=' (repetition)
   int, float support all operators
*/
func (ev *Evaluator) assign(typename, name, op string, raw interface{}) (chira.Value, error) {
	tracer().P("var", name).Debugf("assign %s %s %v", typename, op, raw)
	if op == "=" {
		v, err := chira.Coerce(typename, raw)
		if err != nil {
			return nil, err
		}
		return ev.vars.Set(name, typename, v), nil
	}
	if !ev.vars.Exists(name) {
		return nil, chira.NoVariableFound(name)
	}
	if typename == chira.BoolType {
		return nil, chira.InvalidAssignment()
	}
	current, err := ev.vars.Get(name)
	if err != nil {
		return nil, err
	}
	var result chira.Value
	if typename == chira.StrType {
		result, err = stringOp(current, op, raw)
	} else {
		result, err = numericOp(typename, current, op, raw)
	}
	if err != nil {
		return nil, err
	}
	v, err := chira.Coerce(typename, result)
	if err != nil {
		return nil, err
	}
	return ev.vars.Set(name, typename, v), nil
}

func stringOp(current chira.Value, op string, raw interface{}) (chira.Value, error) {
	s := current.String()
	switch op {
	case "+=":
		operand, err := chira.Coerce(chira.StrType, raw)
		if err != nil {
			return nil, err
		}
		return chira.Str(s + operand.String()), nil
	case "*=":
		n, err := chira.Coerce(chira.IntType, raw)
		if err != nil {
			return nil, err
		}
		count := int64(n.(chira.Int))
		if count <= 0 || s == "" {
			return chira.Str(""), nil
		}
		if count > maxStringLen/int64(len(s)) {
			return nil, chira.InvalidValue(n.String(), "repetition count")
		}
		return chira.Str(strings.Repeat(s, int(count))), nil
	}
	return nil, chira.InvalidAssignment()
}

func numericOp(typename string, current chira.Value, op string, raw interface{}) (chira.Value, error) {
	operand, err := chira.Coerce(typename, raw)
	if err != nil {
		return nil, err
	}
	a, err := chira.Coerce(typename, current)
	if err != nil {
		return nil, err
	}
	if typename == chira.IntType {
		return intOp(int64(a.(chira.Int)), op, int64(operand.(chira.Int)))
	}
	return floatOp(float64(a.(chira.Float)), op, float64(operand.(chira.Float)))
}

func intOp(a int64, op string, b int64) (chira.Value, error) {
	switch op {
	case "+=":
		r := a + b
		if (b > 0 && r < a) || (b < 0 && r > a) {
			return nil, intOverflow(a, op, b)
		}
		return chira.Int(r), nil
	case "-=":
		r := a - b
		if (b < 0 && r < a) || (b > 0 && r > a) {
			return nil, intOverflow(a, op, b)
		}
		return chira.Int(r), nil
	case "*=":
		if a == 0 || b == 0 {
			return chira.Int(0), nil
		}
		r := a * b
		if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
			return nil, intOverflow(a, op, b)
		}
		return chira.Int(r), nil
	case "/=":
		if b == 0 {
			return nil, chira.ZeroDivision()
		}
		return chira.Float(float64(a) / float64(b)), nil
	case "%=":
		if b == 0 {
			return nil, chira.ZeroDivision()
		}
		r := a % b
		if r != 0 && (r < 0) != (b < 0) {
			r += b
		}
		return chira.Int(r), nil
	case "**=":
		return power(float64(a), float64(b))
	}
	return nil, chira.InvalidOperator(op)
}

// intOverflow reports an int result out of 64-bit range.
func intOverflow(a int64, op string, b int64) error {
	return chira.InvalidValue(fmt.Sprintf("%d %s %d", a, op, b), chira.IntType)
}

func floatOp(a float64, op string, b float64) (chira.Value, error) {
	switch op {
	case "+=":
		return chira.Float(a + b), nil
	case "-=":
		return chira.Float(a - b), nil
	case "*=":
		return chira.Float(a * b), nil
	case "/=":
		if b == 0 {
			return nil, chira.ZeroDivision()
		}
		return chira.Float(a / b), nil
	case "%=":
		if b == 0 {
			return nil, chira.ZeroDivision()
		}
		r := math.Mod(a, b)
		if r != 0 && (r < 0) != (b < 0) {
			r += b
		}
		return chira.Float(r), nil
	case "**=":
		return power(a, b)
	}
	return nil, chira.InvalidOperator(op)
}

func power(a, b float64) (chira.Value, error) {
	if a == 0 && b < 0 {
		return nil, chira.ZeroDivision()
	}
	return chira.Float(math.Pow(a, b)), nil
}
