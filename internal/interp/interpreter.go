// Package interp implements the tree-walking evaluator of spec.md
// §4.3-§4.5: expression and statement evaluation against a
// lexically-scoped-per-block, dynamically-scoped-per-call environment
// chain (spec §4.5, §9), with the tagged Value model of
// internal/value and the non-local control-flow signal of signal.go.
package interp

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pebble-lang/pebble/internal/ast"
	"github.com/pebble-lang/pebble/internal/errors"
	"github.com/pebble-lang/pebble/internal/value"
)

// Interpreter runs a single program to completion. It is not
// reentrant: a fresh Interpreter (and a fresh root Environment) must
// be used per interpretation (spec §5).
type Interpreter struct {
	out *bufio.Writer
	in  *bufio.Reader
	cf  *ControlFlow
}

// New creates an Interpreter writing print/input-prompt output to out
// and reading input() lines from in.
func New(out io.Writer, in io.Reader) *Interpreter {
	return &Interpreter{
		out: bufio.NewWriter(out),
		in:  bufio.NewReader(in),
		cf:  NewControlFlow(),
	}
}

// Interpret runs program in a freshly created root environment. Side
// effects are the program's observable behavior; a runtime error
// aborts execution and is returned for the caller to report (spec
// §4.3, §7).
func (it *Interpreter) Interpret(program *ast.Block) error {
	env := NewEnvironment()
	err := it.execStatements(program.Statements, env)
	it.out.Flush()
	if err != nil {
		return err
	}

	// return/break/continue that escaped every enclosing construct is
	// not caught anywhere; spec §7 permits converting it to a
	// diagnostic rather than leaving it silently unhandled.
	if it.cf.IsActive() {
		kind := it.cf.Kind()
		it.cf.Clear()
		return errors.NewRuntimeError(0, fmt.Sprintf("%s used outside of its enclosing construct", kind))
	}
	return nil
}

// execStatements runs stmts in env without introducing a new scope,
// stopping as soon as a control-flow signal becomes active.
func (it *Interpreter) execStatements(stmts []ast.Statement, env *Environment) error {
	for _, stmt := range stmts {
		if err := it.execStmt(stmt, env); err != nil {
			return err
		}
		if it.cf.IsActive() {
			return nil
		}
	}
	return nil
}

// execBlock runs block in a fresh child scope of env (spec §3.4: if,
// while body, switch case, plain block, and function invocation each
// get their own child environment).
func (it *Interpreter) execBlock(block *ast.Block, env *Environment) error {
	child := NewEnclosedEnvironment(env)
	return it.execStatements(block.Statements, child)
}

// evalExpr evaluates an expression node against env.
func (it *Interpreter) evalExpr(expr ast.Expression, env *Environment) (value.Value, error) {
	switch node := expr.(type) {
	case *ast.NumberLit:
		return value.NewInteger(node.Value), nil
	case *ast.FloatLit:
		return value.NewFloat(node.Value), nil
	case *ast.StringLit:
		return value.NewString(node.Value), nil
	case *ast.BoolLit:
		return value.NewBool(node.Value), nil
	case *ast.Ident:
		// A read that misses every scope is lenient (spec §4.3): Null,
		// never an error. Writes are strict; see execAssign.
		if v, ok := env.GetVar(node.Name); ok {
			return v, nil
		}
		return value.NullValue, nil
	case *ast.ListLit:
		return it.evalListLit(node, env)
	case *ast.BinOp:
		return it.evalBinOp(node, env)
	case *ast.Index:
		return it.evalIndex(node, env)
	case *ast.Call:
		return it.evalCall(node, env)
	case *ast.Input:
		return it.evalInput(node, env)
	default:
		return nil, errors.NewRuntimeError(expr.Line(), fmt.Sprintf("unsupported expression %T", expr))
	}
}

func (it *Interpreter) evalListLit(node *ast.ListLit, env *Environment) (value.Value, error) {
	elements := make([]value.Value, len(node.Elements))
	for i, elExpr := range node.Elements {
		v, err := it.evalExpr(elExpr, env)
		if err != nil {
			return nil, err
		}
		elements[i] = v
	}
	return value.NewList(elements), nil
}

// evalIndex is deliberately conservative (spec §9 Open Question): a
// bounds-checked read on a List, Null for anything else, including
// out-of-range indices and non-List targets. It never errors.
func (it *Interpreter) evalIndex(node *ast.Index, env *Environment) (value.Value, error) {
	target, err := it.evalExpr(node.Target, env)
	if err != nil {
		return nil, err
	}
	idxVal, err := it.evalExpr(node.Index, env)
	if err != nil {
		return nil, err
	}

	list, ok := target.(*value.List)
	if !ok {
		return value.NullValue, nil
	}
	i := value.ToInt(idxVal)
	if i < 0 || i >= int64(len(list.Elements)) {
		return value.NullValue, nil
	}
	return list.Elements[i], nil
}

// evalInput prints the prompt (if any) without a trailing newline,
// flushes, and reads one line from standard input (spec §4.3). If
// input is closed, it returns the empty string rather than erroring.
func (it *Interpreter) evalInput(node *ast.Input, env *Environment) (value.Value, error) {
	if node.Prompt != nil {
		promptVal, err := it.evalExpr(node.Prompt, env)
		if err != nil {
			return nil, err
		}
		it.out.WriteString(promptVal.String())
	}
	it.out.Flush()

	line, err := it.in.ReadString('\n')
	if err != nil && line == "" {
		return value.NewString(""), nil
	}
	line = trimTrailingNewline(line)
	return value.NewString(line), nil
}

func trimTrailingNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '\r' {
		s = s[:len(s)-1]
	}
	return s
}
