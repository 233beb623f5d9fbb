package evaluator

import "github.com/npillmayer/chira"

// compare compares two operands. Both operands are converted to float first,
// whatever their type, so strings compare only if they hold numbers.
func compare(a interface{}, op string, b interface{}) (chira.Value, error) {
	var cmp func(x, y float64) bool
	switch op {
	case "==":
		cmp = func(x, y float64) bool { return x == y }
	case "!=":
		cmp = func(x, y float64) bool { return x != y }
	case ">":
		cmp = func(x, y float64) bool { return x > y }
	case "<":
		cmp = func(x, y float64) bool { return x < y }
	case ">=":
		cmp = func(x, y float64) bool { return x >= y }
	case "<=":
		cmp = func(x, y float64) bool { return x <= y }
	default:
		return nil, chira.InvalidOperator(op)
	}
	x, err := chira.Coerce(chira.FloatType, a)
	if err != nil {
		return nil, err
	}
	y, err := chira.Coerce(chira.FloatType, b)
	if err != nil {
		return nil, err
	}
	r := cmp(float64(x.(chira.Float)), float64(y.(chira.Float)))
	tracer().Debugf("compare %v %s %v = %v", x, op, y, r)
	return chira.Bool(r), nil
}
