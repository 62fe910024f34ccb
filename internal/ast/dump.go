package ast

import (
	"fmt"
	"strings"
)

// Dump renders block as an indented tree, in the spirit of the
// teacher's Program.String() debug dump, for the CLI's --dump-ast
// flag. It is a debugging aid only; nothing in the evaluator depends
// on its output.
func Dump(block *Block) string {
	var b strings.Builder
	dumpBlock(&b, block, 0)
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func dumpBlock(b *strings.Builder, block *Block, depth int) {
	for _, stmt := range block.Statements {
		dumpStatement(b, stmt, depth)
	}
}

func dumpStatement(b *strings.Builder, stmt Statement, depth int) {
	indent(b, depth)
	switch node := stmt.(type) {
	case *Let:
		fmt.Fprintf(b, "Let %s = %s\n", node.Name, dumpExpr(node.Init))
	case *Assign:
		fmt.Fprintf(b, "Assign %s = %s\n", node.Name, dumpExpr(node.Value))
	case *Print:
		fmt.Fprintf(b, "Print(%s)\n", dumpExprList(node.Args))
	case *If:
		fmt.Fprintf(b, "If %s\n", dumpExpr(node.Cond))
		dumpBlock(b, node.Then, depth+1)
		if node.Else != nil {
			indent(b, depth)
			b.WriteString("Else\n")
			dumpStatement(b, node.Else, depth+1)
		}
	case *While:
		fmt.Fprintf(b, "While %s\n", dumpExpr(node.Cond))
		dumpBlock(b, node.Body, depth+1)
	case *Switch:
		fmt.Fprintf(b, "Switch %s\n", dumpExpr(node.Discriminant))
		for _, c := range node.Cases {
			indent(b, depth+1)
			fmt.Fprintf(b, "Case %s\n", dumpExpr(c.Match))
			dumpBlock(b, c.Body, depth+2)
		}
		if node.Default != nil {
			indent(b, depth+1)
			b.WriteString("Default\n")
			dumpBlock(b, node.Default, depth+2)
		}
	case *Block:
		b.WriteString("Block\n")
		dumpBlock(b, node, depth+1)
	case *FuncDef:
		fmt.Fprintf(b, "FuncDef %s(%s)\n", node.Name, strings.Join(node.Params, ", "))
		dumpBlock(b, node.Body, depth+1)
	case *Return:
		fmt.Fprintf(b, "Return %s\n", dumpExpr(node.Value))
	case *Break:
		b.WriteString("Break\n")
	case *Continue:
		b.WriteString("Continue\n")
	case *ExprStmt:
		fmt.Fprintf(b, "ExprStmt %s\n", dumpExpr(node.X))
	default:
		fmt.Fprintf(b, "<unknown statement %T>\n", stmt)
	}
}

func dumpExprList(exprs []Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = dumpExpr(e)
	}
	return strings.Join(parts, ", ")
}

func dumpExpr(expr Expression) string {
	if expr == nil {
		return "<nil>"
	}
	switch node := expr.(type) {
	case *NumberLit:
		return fmt.Sprintf("%d", node.Value)
	case *FloatLit:
		return fmt.Sprintf("%g", node.Value)
	case *StringLit:
		return fmt.Sprintf("%q", node.Value)
	case *BoolLit:
		return fmt.Sprintf("%t", node.Value)
	case *Ident:
		return node.Name
	case *ListLit:
		return fmt.Sprintf("[%s]", dumpExprList(node.Elements))
	case *BinOp:
		return fmt.Sprintf("(%s %s %s)", dumpExpr(node.Left), node.Op, dumpExpr(node.Right))
	case *Index:
		return fmt.Sprintf("%s[%s]", dumpExpr(node.Target), dumpExpr(node.Index))
	case *Call:
		return fmt.Sprintf("%s(%s)", node.Callee, dumpExprList(node.Args))
	case *Input:
		if node.Prompt == nil {
			return "input()"
		}
		return fmt.Sprintf("input(%s)", dumpExpr(node.Prompt))
	default:
		return fmt.Sprintf("<unknown expression %T>", expr)
	}
}
