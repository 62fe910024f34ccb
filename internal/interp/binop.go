package interp

import (
	"math"

	"github.com/pebble-lang/pebble/internal/ast"
	"github.com/pebble-lang/pebble/internal/value"
)

// evalBinOp applies the rules of spec §4.3, tried in order: logical
// operators (strict, never short-circuiting), canonical-string
// equality, numeric arithmetic/relational, string concatenation via
// '+', and finally Null for any other combination.
func (it *Interpreter) evalBinOp(node *ast.BinOp, env *Environment) (value.Value, error) {
	if node.Op == "&&" || node.Op == "||" {
		return it.evalLogical(node, env)
	}

	left, err := it.evalExpr(node.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := it.evalExpr(node.Right, env)
	if err != nil {
		return nil, err
	}

	switch node.Op {
	case "==":
		return value.NewBool(left.String() == right.String()), nil
	case "!=":
		return value.NewBool(left.String() != right.String()), nil
	}

	if isNumeric(left) && isNumeric(right) {
		return evalNumericOp(node.Op, left, right), nil
	}

	if node.Op == "+" && (isString(left) || isString(right)) {
		return value.NewString(left.String() + right.String()), nil
	}

	return value.NullValue, nil
}

// evalLogical evaluates both operands unconditionally (spec §4.3's
// baseline, non-short-circuiting contract; see DESIGN.md for the
// Open Question decision).
func (it *Interpreter) evalLogical(node *ast.BinOp, env *Environment) (value.Value, error) {
	left, err := it.evalExpr(node.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := it.evalExpr(node.Right, env)
	if err != nil {
		return nil, err
	}

	lt, rt := value.Truthy(left), value.Truthy(right)
	if node.Op == "&&" {
		return value.NewBool(lt && rt), nil
	}
	return value.NewBool(lt || rt), nil
}

func isNumeric(v value.Value) bool {
	switch v.(type) {
	case *value.Integer, *value.Float:
		return true
	default:
		return false
	}
}

func isString(v value.Value) bool {
	_, ok := v.(*value.String)
	return ok
}

func isFloatValue(v value.Value) bool {
	_, ok := v.(*value.Float)
	return ok
}

// evalNumericOp coerces both operands to double and computes the
// result per spec §4.3: Float if either operand was Float, otherwise
// the double result truncated toward zero to Integer. Division always
// yields Float; division (and modulo) by zero yields zero rather than
// erroring.
func evalNumericOp(op string, left, right value.Value) value.Value {
	lf, rf := value.ToFloat(left), value.ToFloat(right)
	floatResult := isFloatValue(left) || isFloatValue(right)

	switch op {
	case "<":
		return value.NewBool(lf < rf)
	case ">":
		return value.NewBool(lf > rf)
	case "<=":
		return value.NewBool(lf <= rf)
	case ">=":
		return value.NewBool(lf >= rf)
	case "/":
		if rf == 0 {
			return value.NewFloat(0)
		}
		return value.NewFloat(lf / rf)
	}

	var f float64
	switch op {
	case "+":
		f = lf + rf
	case "-":
		f = lf - rf
	case "*":
		f = lf * rf
	case "%":
		if rf == 0 {
			f = 0
		} else {
			f = math.Mod(lf, rf)
		}
	default:
		return value.NullValue
	}

	if floatResult {
		return value.NewFloat(f)
	}
	return value.NewInteger(int64(f))
}
