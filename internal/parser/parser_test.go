package parser

import (
	"testing"

	"github.com/pebble-lang/pebble/internal/ast"
	"github.com/pebble-lang/pebble/internal/errors"
	"github.com/pebble-lang/pebble/internal/lexer"
)

func parse(t *testing.T, src string) *ast.Block {
	t.Helper()
	p := New(lexer.New(src))
	program, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return program
}

func TestParseLetAndPrint(t *testing.T) {
	program := parse(t, `let x = 1 + 2
print(x)`)
	if len(program.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(program.Statements))
	}
	let, ok := program.Statements[0].(*ast.Let)
	if !ok || let.Name != "x" {
		t.Fatalf("statement 0 = %#v, want Let x", program.Statements[0])
	}
	if _, ok := program.Statements[1].(*ast.Print); !ok {
		t.Fatalf("statement 1 = %#v, want Print", program.Statements[1])
	}
}

func TestParseOperatorPrecedence(t *testing.T) {
	program := parse(t, `let x = 1 + 2 * 3`)
	let := program.Statements[0].(*ast.Let)
	bin, ok := let.Init.(*ast.BinOp)
	if !ok || bin.Op != "+" {
		t.Fatalf("top level op = %#v, want '+' at the top (lower precedence binds looser)", let.Init)
	}
	right, ok := bin.Right.(*ast.BinOp)
	if !ok || right.Op != "*" {
		t.Fatalf("right operand = %#v, want '*' subtree", bin.Right)
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	program := parse(t, `let x = 1 - 2 - 3`)
	let := program.Statements[0].(*ast.Let)
	top, ok := let.Init.(*ast.BinOp)
	if !ok || top.Op != "-" {
		t.Fatalf("got %#v", let.Init)
	}
	// Left-associative: (1 - 2) - 3, so the left child is itself a BinOp.
	if _, ok := top.Left.(*ast.BinOp); !ok {
		t.Fatalf("left operand = %#v, want nested BinOp for left-associativity", top.Left)
	}
	if _, ok := top.Right.(*ast.NumberLit); !ok {
		t.Fatalf("right operand = %#v, want NumberLit 3", top.Right)
	}
}

func TestParseCallAndIndexChain(t *testing.T) {
	program := parse(t, `print(a(1)[0])`)
	print := program.Statements[0].(*ast.Print)
	idx, ok := print.Args[0].(*ast.Index)
	if !ok {
		t.Fatalf("got %#v, want Index wrapping a Call", print.Args[0])
	}
	if _, ok := idx.Target.(*ast.Call); !ok {
		t.Fatalf("index target = %#v, want Call", idx.Target)
	}
}

func TestParseNonIdentCalleeIsSyntaxError(t *testing.T) {
	p := New(lexer.New(`print((1+2)(3))`))
	if _, err := p.ParseProgram(); err == nil {
		t.Fatal("expected a syntax error for a non-identifier call target")
	}
}

func TestParseAssignRequiresIdentLHS(t *testing.T) {
	p := New(lexer.New(`1 + 2 = 3`))
	if _, err := p.ParseProgram(); err == nil {
		t.Fatal("expected a syntax error for a non-identifier assignment target")
	}
}

func TestParseFuncDef(t *testing.T) {
	program := parse(t, `func add(a, b) {
  return a + b
}`)
	fn := program.Statements[0].(*ast.FuncDef)
	if fn.Name != "add" || len(fn.Params) != 2 {
		t.Fatalf("got %#v", fn)
	}
}

func TestParseElseIf(t *testing.T) {
	program := parse(t, `if (1) { print(1) } else if (2) { print(2) } else { print(3) }`)
	ifStmt := program.Statements[0].(*ast.If)
	elseIf, ok := ifStmt.Else.(*ast.If)
	if !ok {
		t.Fatalf("else branch = %#v, want nested If for 'else if'", ifStmt.Else)
	}
	if _, ok := elseIf.Else.(*ast.Block); !ok {
		t.Fatalf("final else = %#v, want Block", elseIf.Else)
	}
}

func TestParseSwitchNoFallthroughShape(t *testing.T) {
	program := parse(t, `switch (2) {
case 1:
  print("a")
  break
case 2:
  print("b")
  break
default:
  print("c")
}`)
	sw := program.Statements[0].(*ast.Switch)
	if len(sw.Cases) != 2 {
		t.Fatalf("got %d cases, want 2", len(sw.Cases))
	}
	if sw.Default == nil {
		t.Fatal("expected a default block")
	}
}

func TestParseSyntaxErrorAbortsWithLexemeAndLine(t *testing.T) {
	p := New(lexer.New("let x = \nlet y = 1"))
	_, err := p.ParseProgram()
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	se, ok := err.(*errors.SyntaxError)
	if !ok {
		t.Fatalf("got %T, want *errors.SyntaxError", err)
	}
	// The parser reaches for an expression and finds the NEWLINE ending line 1.
	if se.Lexeme != "\n" || se.Line != 1 {
		t.Fatalf("got lexeme %q at line %d, want %q at line 1", se.Lexeme, se.Line, "\n")
	}
}

func TestParseEmptyProgram(t *testing.T) {
	program := parse(t, "")
	if len(program.Statements) != 0 {
		t.Fatalf("got %d statements, want 0", len(program.Statements))
	}
}

func TestParseOnlyCommentsAndNewlines(t *testing.T) {
	program := parse(t, "# just a comment\n\n// another\n")
	if len(program.Statements) != 0 {
		t.Fatalf("got %d statements, want 0", len(program.Statements))
	}
}
