package interp

import (
	"github.com/pebble-lang/pebble/internal/errors"
	"github.com/pebble-lang/pebble/internal/value"
)

// builtin is the shape of a built-in function (spec §6.2): it
// receives already-evaluated arguments and the call site's line for
// diagnostics.
type builtin func(args []value.Value, line int) (value.Value, error)

var builtins = map[string]builtin{
	"int":    builtinInt,
	"float":  builtinFloat,
	"string": builtinString,
	"typeof": builtinTypeof,
	"len":    builtinLen,
	"append": builtinAppend,
}

// arg returns args[i], or Null if fewer than i+1 arguments were
// supplied — built-ins other than append are lenient about arity
// (spec §7 names only append's argument-count error as fatal).
func arg(args []value.Value, i int) value.Value {
	if i < len(args) {
		return args[i]
	}
	return value.NullValue
}

func builtinInt(args []value.Value, _ int) (value.Value, error) {
	return value.NewInteger(value.ToInt(arg(args, 0))), nil
}

func builtinFloat(args []value.Value, _ int) (value.Value, error) {
	return value.NewFloat(value.ToFloat(arg(args, 0))), nil
}

func builtinString(args []value.Value, _ int) (value.Value, error) {
	return value.NewString(arg(args, 0).String()), nil
}

func builtinTypeof(args []value.Value, _ int) (value.Value, error) {
	return value.NewString(arg(args, 0).Type()), nil
}

func builtinLen(args []value.Value, _ int) (value.Value, error) {
	switch v := arg(args, 0).(type) {
	case *value.String:
		return value.NewInteger(int64(len(v.Value))), nil
	case *value.List:
		return value.NewInteger(int64(len(v.Elements))), nil
	default:
		return value.NewInteger(0), nil
	}
}

// builtinAppend mutates the first argument's backing List in place
// with a deep copy of the second argument, and returns Null (spec
// §6.2). This is the one built-in spec §7 requires to raise a runtime
// error, for the two conditions it names.
func builtinAppend(args []value.Value, line int) (value.Value, error) {
	if len(args) < 2 {
		return nil, errors.NewRuntimeError(line, "append requires 2 arguments")
	}
	list, ok := args[0].(*value.List)
	if !ok {
		return nil, errors.NewRuntimeError(line, "append's first argument must be a list")
	}
	list.Elements = append(list.Elements, value.DeepCopy(args[1]))
	return value.NullValue, nil
}
