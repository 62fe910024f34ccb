package interp

import (
	"github.com/pebble-lang/pebble/internal/ast"
	"github.com/pebble-lang/pebble/internal/value"
)

// Environment is a single lexical scope: a pair of independent
// name->Value and name->FuncDef namespaces, plus a link to the
// enclosing scope (spec §3.4). An identifier defined in a scope
// shadows the same identifier in any enclosing scope.
type Environment struct {
	vars  map[string]value.Value
	funcs map[string]*ast.FuncDef
	outer *Environment
}

// NewEnvironment creates a root-level environment with no enclosing
// scope.
func NewEnvironment() *Environment {
	return &Environment{
		vars:  make(map[string]value.Value),
		funcs: make(map[string]*ast.FuncDef),
	}
}

// NewEnclosedEnvironment creates a child scope of outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

// GetVar searches the current scope and then each enclosing scope in
// turn for name.
func (e *Environment) GetVar(name string) (value.Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.outer != nil {
		return e.outer.GetVar(name)
	}
	return nil, false
}

// DefineVar binds name to v in the current scope, shadowing any
// binding of the same name in an enclosing scope.
func (e *Environment) DefineVar(name string, v value.Value) {
	e.vars[name] = v
}

// SetVar overwrites an existing binding of name, searching outward
// through enclosing scopes. It reports false if name is not bound
// anywhere in the chain (spec §4.3 Assign: a strict write).
func (e *Environment) SetVar(name string, v value.Value) bool {
	if _, ok := e.vars[name]; ok {
		e.vars[name] = v
		return true
	}
	if e.outer != nil {
		return e.outer.SetVar(name, v)
	}
	return false
}

// GetFunc searches the current scope and then each enclosing scope in
// turn for a function named name.
func (e *Environment) GetFunc(name string) (*ast.FuncDef, bool) {
	if fn, ok := e.funcs[name]; ok {
		return fn, true
	}
	if e.outer != nil {
		return e.outer.GetFunc(name)
	}
	return nil, false
}

// DefineFunc binds name to fn in the current scope's function
// namespace, independent of the variable namespace.
func (e *Environment) DefineFunc(name string, fn *ast.FuncDef) {
	e.funcs[name] = fn
}
