package evaluator

import (
	"reflect"

	"github.com/m-ou-se/configtaal/internal/operator"
	"github.com/m-ou-se/configtaal/internal/value"
)

// registerDefaultPreamble installs the default operator table (spec §4.5
// "Preamble"): int64/double/string comparisons and arithmetic, plus
// logical-and/-or over int64, double, and their mixed pairs, interpreting
// either operand as truthy if nonzero. `**` and `%` on doubles are
// deliberate omissions, not oversights.
func registerDefaultPreamble(e *Engine) {
	i := value.TypeOf[int64]()
	f := value.TypeOf[float64]()
	s := value.TypeOf[string]()

	registerIntInt(e, i)
	registerDoubleDouble(e, f)
	registerMixed(e, i, f)
	registerStringString(e, s)
}

func registerIntInt(e *Engine, i reflect.Type) {
	bin := func(op operator.Operator, fn func(a, b int64) value.Value) {
		e.RegisterBinary(op, i, i, func(lhs, rhs value.Value) (value.Value, error) {
			return fn(value.MustAs[int64](lhs), value.MustAs[int64](rhs)), nil
		})
	}
	bin(operator.Equal, func(a, b int64) value.Value { return value.Bool(a == b) })
	bin(operator.Inequal, func(a, b int64) value.Value { return value.Bool(a != b) })
	bin(operator.Greater, func(a, b int64) value.Value { return value.Bool(a > b) })
	bin(operator.Less, func(a, b int64) value.Value { return value.Bool(a < b) })
	bin(operator.GreaterOrEqual, func(a, b int64) value.Value { return value.Bool(a >= b) })
	bin(operator.LessOrEqual, func(a, b int64) value.Value { return value.Bool(a <= b) })
	bin(operator.Plus, func(a, b int64) value.Value { return value.Int(a + b) })
	bin(operator.Minus, func(a, b int64) value.Value { return value.Int(a - b) })
	bin(operator.Times, func(a, b int64) value.Value { return value.Int(a * b) })
	bin(operator.Divide, func(a, b int64) value.Value { return value.Int(a / b) })
	bin(operator.Modulo, func(a, b int64) value.Value { return value.Int(a % b) })
	bin(operator.LeftShift, func(a, b int64) value.Value { return value.Int(a << uint(b)) })
	bin(operator.RightShift, func(a, b int64) value.Value { return value.Int(a >> uint(b)) })
	bin(operator.BitAnd, func(a, b int64) value.Value { return value.Int(a & b) })
	bin(operator.BitOr, func(a, b int64) value.Value { return value.Int(a | b) })
	bin(operator.BitXor, func(a, b int64) value.Value { return value.Int(a ^ b) })
	bin(operator.LogicalAnd, func(a, b int64) value.Value { return value.Bool(a != 0 && b != 0) })
	bin(operator.LogicalOr, func(a, b int64) value.Value { return value.Bool(a != 0 || b != 0) })

	e.RegisterUnary(operator.UnaryPlus, i, func(v value.Value) (value.Value, error) {
		return v, nil
	})
	e.RegisterUnary(operator.UnaryMinus, i, func(v value.Value) (value.Value, error) {
		return value.Int(-value.MustAs[int64](v)), nil
	})
	e.RegisterUnary(operator.Complement, i, func(v value.Value) (value.Value, error) {
		return value.Int(^value.MustAs[int64](v)), nil
	})
	e.RegisterUnary(operator.LogicalNot, i, func(v value.Value) (value.Value, error) {
		return value.Bool(value.MustAs[int64](v) == 0), nil
	})
}

func registerDoubleDouble(e *Engine, f reflect.Type) {
	bin := func(op operator.Operator, fn func(a, b float64) value.Value) {
		e.RegisterBinary(op, f, f, func(lhs, rhs value.Value) (value.Value, error) {
			return fn(value.MustAs[float64](lhs), value.MustAs[float64](rhs)), nil
		})
	}
	bin(operator.Equal, func(a, b float64) value.Value { return value.Bool(a == b) })
	bin(operator.Inequal, func(a, b float64) value.Value { return value.Bool(a != b) })
	bin(operator.Greater, func(a, b float64) value.Value { return value.Bool(a > b) })
	bin(operator.Less, func(a, b float64) value.Value { return value.Bool(a < b) })
	bin(operator.GreaterOrEqual, func(a, b float64) value.Value { return value.Bool(a >= b) })
	bin(operator.LessOrEqual, func(a, b float64) value.Value { return value.Bool(a <= b) })
	bin(operator.Plus, func(a, b float64) value.Value { return value.Double(a + b) })
	bin(operator.Minus, func(a, b float64) value.Value { return value.Double(a - b) })
	bin(operator.Times, func(a, b float64) value.Value { return value.Double(a * b) })
	bin(operator.Divide, func(a, b float64) value.Value { return value.Double(a / b) })
	bin(operator.LogicalAnd, func(a, b float64) value.Value { return value.Bool(a != 0 && b != 0) })
	bin(operator.LogicalOr, func(a, b float64) value.Value { return value.Bool(a != 0 || b != 0) })

	e.RegisterUnary(operator.UnaryPlus, f, func(v value.Value) (value.Value, error) {
		return v, nil
	})
	e.RegisterUnary(operator.UnaryMinus, f, func(v value.Value) (value.Value, error) {
		return value.Double(-value.MustAs[float64](v)), nil
	})
}

// registerMixed wires the (double, int64) and (int64, double) type pairs:
// comparisons and logical operators return bool, arithmetic promotes the
// int64 operand to float64 and returns a double.
func registerMixed(e *Engine, i, f reflect.Type) {
	di := func(op operator.Operator, fn func(a float64, b int64) value.Value) {
		e.RegisterBinary(op, f, i, func(lhs, rhs value.Value) (value.Value, error) {
			return fn(value.MustAs[float64](lhs), value.MustAs[int64](rhs)), nil
		})
	}
	id := func(op operator.Operator, fn func(a int64, b float64) value.Value) {
		e.RegisterBinary(op, i, f, func(lhs, rhs value.Value) (value.Value, error) {
			return fn(value.MustAs[int64](lhs), value.MustAs[float64](rhs)), nil
		})
	}

	di(operator.Equal, func(a float64, b int64) value.Value { return value.Bool(a == float64(b)) })
	di(operator.Inequal, func(a float64, b int64) value.Value { return value.Bool(a != float64(b)) })
	di(operator.Greater, func(a float64, b int64) value.Value { return value.Bool(a > float64(b)) })
	di(operator.Less, func(a float64, b int64) value.Value { return value.Bool(a < float64(b)) })
	di(operator.GreaterOrEqual, func(a float64, b int64) value.Value { return value.Bool(a >= float64(b)) })
	di(operator.LessOrEqual, func(a float64, b int64) value.Value { return value.Bool(a <= float64(b)) })
	di(operator.Plus, func(a float64, b int64) value.Value { return value.Double(a + float64(b)) })
	di(operator.Minus, func(a float64, b int64) value.Value { return value.Double(a - float64(b)) })
	di(operator.Times, func(a float64, b int64) value.Value { return value.Double(a * float64(b)) })
	di(operator.Divide, func(a float64, b int64) value.Value { return value.Double(a / float64(b)) })
	di(operator.LogicalAnd, func(a float64, b int64) value.Value { return value.Bool(a != 0 && b != 0) })
	di(operator.LogicalOr, func(a float64, b int64) value.Value { return value.Bool(a != 0 || b != 0) })

	id(operator.Equal, func(a int64, b float64) value.Value { return value.Bool(float64(a) == b) })
	id(operator.Inequal, func(a int64, b float64) value.Value { return value.Bool(float64(a) != b) })
	id(operator.Greater, func(a int64, b float64) value.Value { return value.Bool(float64(a) > b) })
	id(operator.Less, func(a int64, b float64) value.Value { return value.Bool(float64(a) < b) })
	id(operator.GreaterOrEqual, func(a int64, b float64) value.Value { return value.Bool(float64(a) >= b) })
	id(operator.LessOrEqual, func(a int64, b float64) value.Value { return value.Bool(float64(a) <= b) })
	id(operator.Plus, func(a int64, b float64) value.Value { return value.Double(float64(a) + b) })
	id(operator.Minus, func(a int64, b float64) value.Value { return value.Double(float64(a) - b) })
	id(operator.Times, func(a int64, b float64) value.Value { return value.Double(float64(a) * b) })
	id(operator.Divide, func(a int64, b float64) value.Value { return value.Double(float64(a) / b) })
	id(operator.LogicalAnd, func(a int64, b float64) value.Value { return value.Bool(a != 0 && b != 0) })
	id(operator.LogicalOr, func(a int64, b float64) value.Value { return value.Bool(a != 0 || b != 0) })
}

func registerStringString(e *Engine, s reflect.Type) {
	bin := func(op operator.Operator, fn func(a, b string) value.Value) {
		e.RegisterBinary(op, s, s, func(lhs, rhs value.Value) (value.Value, error) {
			return fn(value.MustAs[string](lhs), value.MustAs[string](rhs)), nil
		})
	}
	bin(operator.Equal, func(a, b string) value.Value { return value.Bool(a == b) })
	bin(operator.Inequal, func(a, b string) value.Value { return value.Bool(a != b) })
	bin(operator.Greater, func(a, b string) value.Value { return value.Bool(a > b) })
	bin(operator.Less, func(a, b string) value.Value { return value.Bool(a < b) })
	bin(operator.GreaterOrEqual, func(a, b string) value.Value { return value.Bool(a >= b) })
	bin(operator.LessOrEqual, func(a, b string) value.Value { return value.Bool(a <= b) })
	bin(operator.Plus, func(a, b string) value.Value { return value.Str(a + b) })
}
