package interp

import (
	"fmt"

	"github.com/pebble-lang/pebble/internal/ast"
	"github.com/pebble-lang/pebble/internal/errors"
	"github.com/pebble-lang/pebble/internal/value"
)

// execStmt dispatches a single statement (spec §4.3 "Statement
// evaluation").
func (it *Interpreter) execStmt(stmt ast.Statement, env *Environment) error {
	switch node := stmt.(type) {
	case *ast.Let:
		return it.execLet(node, env)
	case *ast.Assign:
		return it.execAssign(node, env)
	case *ast.Print:
		return it.execPrint(node, env)
	case *ast.If:
		return it.execIf(node, env)
	case *ast.While:
		return it.execWhile(node, env)
	case *ast.Switch:
		return it.execSwitch(node, env)
	case *ast.Block:
		return it.execBlock(node, env)
	case *ast.FuncDef:
		env.DefineFunc(node.Name, node)
		return nil
	case *ast.Return:
		v, err := it.evalExpr(node.Value, env)
		if err != nil {
			return err
		}
		it.cf.SetReturn(v)
		return nil
	case *ast.Break:
		it.cf.SetBreak()
		return nil
	case *ast.Continue:
		it.cf.SetContinue()
		return nil
	case *ast.ExprStmt:
		_, err := it.evalExpr(node.X, env)
		return err
	default:
		return errors.NewRuntimeError(stmt.Line(), fmt.Sprintf("unsupported statement %T", stmt))
	}
}

func (it *Interpreter) execLet(node *ast.Let, env *Environment) error {
	v, err := it.evalExpr(node.Init, env)
	if err != nil {
		return err
	}
	env.DefineVar(node.Name, v)
	return nil
}

// execAssign overwrites an existing binding. Unlike a read, this is
// strict: an undefined target is a runtime error (spec §4.3, §7).
func (it *Interpreter) execAssign(node *ast.Assign, env *Environment) error {
	v, err := it.evalExpr(node.Value, env)
	if err != nil {
		return err
	}
	if !env.SetVar(node.Name, v) {
		return errors.NewRuntimeError(node.Line(), fmt.Sprintf("undefined variable '%s'", node.Name))
	}
	return nil
}

func (it *Interpreter) execPrint(node *ast.Print, env *Environment) error {
	for _, argExpr := range node.Args {
		v, err := it.evalExpr(argExpr, env)
		if err != nil {
			return err
		}
		it.out.WriteString(v.String())
		it.out.WriteByte(' ')
	}
	it.out.WriteByte('\n')
	return nil
}

func (it *Interpreter) execIf(node *ast.If, env *Environment) error {
	cond, err := it.evalExpr(node.Cond, env)
	if err != nil {
		return err
	}
	if value.Truthy(cond) {
		return it.execBlock(node.Then, env)
	}
	if node.Else != nil {
		return it.execStmt(node.Else, env)
	}
	return nil
}

func (it *Interpreter) execWhile(node *ast.While, env *Environment) error {
	for {
		cond, err := it.evalExpr(node.Cond, env)
		if err != nil {
			return err
		}
		if !value.Truthy(cond) {
			return nil
		}

		if err := it.execBlock(node.Body, env); err != nil {
			return err
		}

		switch {
		case it.cf.IsBreak():
			it.cf.Clear()
			return nil
		case it.cf.IsContinue():
			it.cf.Clear()
		case it.cf.IsActive(): // a pending return: propagate to the call boundary
			return nil
		}
	}
}

// execSwitch matches cases in source order by canonical string form
// (spec §4.3, §9): the first case whose value's String() equals the
// discriminant's wins, with no fall-through regardless of whether the
// matched body used break.
func (it *Interpreter) execSwitch(node *ast.Switch, env *Environment) error {
	discVal, err := it.evalExpr(node.Discriminant, env)
	if err != nil {
		return err
	}
	discStr := discVal.String()

	for _, c := range node.Cases {
		matchVal, err := it.evalExpr(c.Match, env)
		if err != nil {
			return err
		}
		if matchVal.String() != discStr {
			continue
		}
		if err := it.execBlock(c.Body, env); err != nil {
			return err
		}
		if it.cf.IsBreak() {
			it.cf.Clear()
		}
		return nil
	}

	if node.Default != nil {
		if err := it.execBlock(node.Default, env); err != nil {
			return err
		}
		if it.cf.IsBreak() {
			it.cf.Clear()
		}
	}
	return nil
}
