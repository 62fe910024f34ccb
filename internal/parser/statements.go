package parser

import (
	"github.com/pebble-lang/pebble/internal/ast"
	"github.com/pebble-lang/pebble/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Kind {
	case token.LET:
		return p.parseLet()
	case token.PRINT:
		return p.parsePrint()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.SWITCH:
		return p.parseSwitch()
	case token.BREAK:
		line := p.cur.Pos.Line
		p.advance()
		return ast.NewBreak(line)
	case token.CONTINUE:
		line := p.cur.Pos.Line
		p.advance()
		return ast.NewContinue(line)
	case token.RETURN:
		line := p.cur.Pos.Line
		p.advance()
		value := p.parseExpression()
		return ast.NewReturn(line, value)
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLet() *ast.Let {
	line := p.cur.Pos.Line
	p.advance() // 'let'
	name := p.expect(token.IDENT).Lexeme
	p.expect(token.ASSIGN)
	init := p.parseExpression()
	return ast.NewLet(line, name, init)
}

func (p *Parser) parsePrint() *ast.Print {
	line := p.cur.Pos.Line
	p.advance() // 'print'
	p.expect(token.LPAREN)

	var args []ast.Expression
	if p.cur.Kind != token.RPAREN {
		args = append(args, p.parseExpression())
		for p.cur.Kind == token.COMMA {
			p.advance()
			args = append(args, p.parseExpression())
		}
	}
	p.expect(token.RPAREN)
	return ast.NewPrint(line, args)
}

func (p *Parser) parseIf() *ast.If {
	line := p.cur.Pos.Line
	p.advance() // 'if'
	p.expect(token.LPAREN)
	cond := p.parseExpression()
	p.expect(token.RPAREN)
	p.expect(token.LBRACE)
	then := p.parseBlock()

	var els ast.Statement
	if p.cur.Kind == token.ELSE {
		p.advance()
		if p.cur.Kind == token.IF {
			els = p.parseIf()
		} else {
			p.expect(token.LBRACE)
			els = p.parseBlock()
		}
	}

	return ast.NewIf(line, cond, then, els)
}

func (p *Parser) parseWhile() *ast.While {
	line := p.cur.Pos.Line
	p.advance() // 'while'
	p.expect(token.LPAREN)
	cond := p.parseExpression()
	p.expect(token.RPAREN)
	p.expect(token.LBRACE)
	body := p.parseBlock()
	return ast.NewWhile(line, cond, body)
}

func (p *Parser) parseSwitch() *ast.Switch {
	line := p.cur.Pos.Line
	p.advance() // 'switch'
	p.expect(token.LPAREN)
	discriminant := p.parseExpression()
	p.expect(token.RPAREN)
	p.expect(token.LBRACE)

	var cases []*ast.Case
	var defaultBlock *ast.Block

	for {
		p.skipNewlines()
		switch p.cur.Kind {
		case token.CASE:
			cases = append(cases, p.parseCase())
		case token.DEFAULT:
			p.advance()
			p.expect(token.COLON)
			defaultBlock = p.parseCaseItems()
		case token.RBRACE:
			p.advance()
			return ast.NewSwitch(line, discriminant, cases, defaultBlock)
		default:
			p.fail("expected 'case', 'default', or '}'")
		}
	}
}

func (p *Parser) parseCase() *ast.Case {
	line := p.cur.Pos.Line
	p.advance() // 'case'
	match := p.parseExpression()
	p.expect(token.COLON)
	body := p.parseCaseItems()
	return ast.NewCase(line, match, body)
}

// parseCaseItems parses statements belonging to a case/default clause,
// stopping (without consuming) at the next 'case', 'default', or '}'.
func (p *Parser) parseCaseItems() *ast.Block {
	line := p.cur.Pos.Line
	var stmts []ast.Statement
	for {
		p.skipNewlines()
		switch p.cur.Kind {
		case token.CASE, token.DEFAULT, token.RBRACE:
			return ast.NewBlock(line, stmts)
		case token.EOF:
			p.fail("expected 'case', 'default', or '}'")
		default:
			stmts = append(stmts, p.parseStatement())
		}
	}
}

// parseExpressionStatement parses an expression, rewriting it into an
// Assign node when followed by '=' (spec §4.2: "assignment iff LHS is
// IDENT").
func (p *Parser) parseExpressionStatement() ast.Statement {
	line := p.cur.Pos.Line
	expr := p.parseExpression()

	if p.cur.Kind != token.ASSIGN {
		return ast.NewExprStmt(line, expr)
	}

	ident, ok := expr.(*ast.Ident)
	if !ok {
		p.fail("assignment target must be an identifier")
	}
	p.advance() // '='
	value := p.parseExpression()
	return ast.NewAssign(line, ident.Name, value)
}
