package parser

import (
	"github.com/pebble-lang/pebble/internal/ast"
	"github.com/pebble-lang/pebble/internal/token"
)

// parseExpression parses the lowest precedence level (logical OR) and
// climbs down through the grammar of spec §4.2.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseOr()
}

func (p *Parser) parseOr() ast.Expression {
	left := p.parseAnd()
	for p.cur.Kind == token.OR {
		line := p.cur.Pos.Line
		p.advance()
		right := p.parseAnd()
		left = ast.NewBinOp(line, "||", left, right)
	}
	return left
}

func (p *Parser) parseAnd() ast.Expression {
	left := p.parseEquality()
	for p.cur.Kind == token.AND {
		line := p.cur.Pos.Line
		p.advance()
		right := p.parseEquality()
		left = ast.NewBinOp(line, "&&", left, right)
	}
	return left
}

func (p *Parser) parseEquality() ast.Expression {
	left := p.parseRelational()
	for p.cur.Kind == token.EQ || p.cur.Kind == token.NEQ {
		op := p.cur.Lexeme
		line := p.cur.Pos.Line
		p.advance()
		right := p.parseRelational()
		left = ast.NewBinOp(line, op, left, right)
	}
	return left
}

func (p *Parser) parseRelational() ast.Expression {
	left := p.parseAdditive()
	for p.cur.Kind == token.LT || p.cur.Kind == token.GT ||
		p.cur.Kind == token.LTE || p.cur.Kind == token.GTE {
		op := p.cur.Lexeme
		line := p.cur.Pos.Line
		p.advance()
		right := p.parseAdditive()
		left = ast.NewBinOp(line, op, left, right)
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for p.cur.Kind == token.PLUS || p.cur.Kind == token.MINUS {
		op := p.cur.Lexeme
		line := p.cur.Pos.Line
		p.advance()
		right := p.parseMultiplicative()
		left = ast.NewBinOp(line, op, left, right)
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parsePostfix()
	for p.cur.Kind == token.STAR || p.cur.Kind == token.SLASH || p.cur.Kind == token.PERCENT {
		op := p.cur.Lexeme
		line := p.cur.Pos.Line
		p.advance()
		right := p.parsePostfix()
		left = ast.NewBinOp(line, op, left, right)
	}
	return left
}

// parsePostfix parses a primary expression and then applies any chain
// of call/index suffixes. A call is only legal directly on an
// identifier primary (spec §4.2); once applied, a call's result can
// still be indexed but not called again, and index chains may follow
// any primary.
func (p *Parser) parsePostfix() ast.Expression {
	line := p.cur.Pos.Line
	ident, isIdent := p.curIdentIfAny()
	expr := p.parsePrimary()

	for {
		switch p.cur.Kind {
		case token.LPAREN:
			if !isIdent {
				p.fail("call target must be an identifier")
			}
			args := p.parseCallArgs()
			expr = ast.NewCall(line, ident, args)
			isIdent = false
		case token.LBRACKET:
			p.advance()
			idx := p.parseExpression()
			p.expect(token.RBRACKET)
			expr = ast.NewIndex(line, expr, idx)
			isIdent = false
		default:
			return expr
		}
	}
}

// curIdentIfAny reports whether the current token is an identifier,
// returning its lexeme, without consuming it.
func (p *Parser) curIdentIfAny() (string, bool) {
	if p.cur.Kind == token.IDENT {
		return p.cur.Lexeme, true
	}
	return "", false
}

func (p *Parser) parseCallArgs() []ast.Expression {
	p.advance() // '('
	var args []ast.Expression
	if p.cur.Kind != token.RPAREN {
		args = append(args, p.parseExpression())
		for p.cur.Kind == token.COMMA {
			p.advance()
			args = append(args, p.parseExpression())
		}
	}
	p.expect(token.RPAREN)
	return args
}

func (p *Parser) parsePrimary() ast.Expression {
	line := p.cur.Pos.Line
	switch p.cur.Kind {
	case token.NUMBER:
		v := p.cur.IntValue
		p.advance()
		return ast.NewNumberLit(line, v)
	case token.FLOAT:
		v := p.cur.FloatValue
		p.advance()
		return ast.NewFloatLit(line, v)
	case token.STRING:
		v := p.cur.Lexeme
		p.advance()
		return ast.NewStringLit(line, v)
	case token.TRUE:
		p.advance()
		return ast.NewBoolLit(line, true)
	case token.FALSE:
		p.advance()
		return ast.NewBoolLit(line, false)
	case token.IDENT:
		name := p.cur.Lexeme
		p.advance()
		return ast.NewIdent(line, name)
	case token.LPAREN:
		p.advance()
		expr := p.parseExpression()
		p.expect(token.RPAREN)
		return expr
	case token.LBRACKET:
		return p.parseListLit()
	case token.INPUT:
		return p.parseInput()
	default:
		p.fail("unexpected token in expression")
		return nil // unreachable: fail panics
	}
}

func (p *Parser) parseListLit() *ast.ListLit {
	line := p.cur.Pos.Line
	p.advance() // '['
	var elements []ast.Expression
	if p.cur.Kind != token.RBRACKET {
		elements = append(elements, p.parseExpression())
		for p.cur.Kind == token.COMMA {
			p.advance()
			elements = append(elements, p.parseExpression())
		}
	}
	p.expect(token.RBRACKET)
	return ast.NewListLit(line, elements)
}

func (p *Parser) parseInput() *ast.Input {
	line := p.cur.Pos.Line
	p.advance() // 'input'
	p.expect(token.LPAREN)
	var prompt ast.Expression
	if p.cur.Kind != token.RPAREN {
		prompt = p.parseExpression()
	}
	p.expect(token.RPAREN)
	return ast.NewInput(line, prompt)
}
