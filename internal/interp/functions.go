package interp

import (
	"fmt"

	"github.com/pebble-lang/pebble/internal/ast"
	"github.com/pebble-lang/pebble/internal/errors"
	"github.com/pebble-lang/pebble/internal/value"
)

// evalCall dispatches a call by name: built-ins are tried first, then
// a user function in the environment chain, else a runtime error
// (spec §4.3). Argument expressions are always evaluated in the
// caller's environment, matching the dynamic-scoping contract of
// invokeFunc.
func (it *Interpreter) evalCall(node *ast.Call, env *Environment) (value.Value, error) {
	args := make([]value.Value, len(node.Args))
	for i, argExpr := range node.Args {
		v, err := it.evalExpr(argExpr, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if builtin, ok := builtins[node.Callee]; ok {
		return builtin(args, node.Line())
	}

	fn, ok := env.GetFunc(node.Callee)
	if !ok {
		return nil, errors.NewRuntimeError(node.Line(), fmt.Sprintf("undefined function '%s'", node.Callee))
	}
	return it.invokeFunc(fn, args, env)
}

// invokeFunc implements spec §4.5: the callee's environment is a
// fresh child of the CALLER's current environment, not the
// definition environment (dynamic scoping, preserved per §9's design
// note rather than "fixed" to lexical scoping). Missing parameters
// bind to Null; excess arguments are discarded.
func (it *Interpreter) invokeFunc(fn *ast.FuncDef, args []value.Value, callerEnv *Environment) (value.Value, error) {
	callEnv := NewEnclosedEnvironment(callerEnv)
	for i, param := range fn.Params {
		v := value.Value(value.NullValue)
		if i < len(args) {
			v = args[i]
		}
		callEnv.DefineVar(param, v)
	}

	if err := it.execStatements(fn.Body.Statements, callEnv); err != nil {
		return nil, err
	}

	if it.cf.IsReturn() {
		result := it.cf.Value()
		it.cf.Clear()
		return result, nil
	}
	return value.NullValue, nil
}
