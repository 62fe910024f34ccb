// Package parser implements the recursive-descent, operator-precedence
// parser of spec.md §4.2: it pulls tokens from a lexer.Lexer and emits
// a Block AST for the whole program. The first syntax error aborts
// parsing with a single diagnostic; there is no error recovery.
package parser

import (
	"fmt"

	"github.com/pebble-lang/pebble/internal/ast"
	"github.com/pebble-lang/pebble/internal/errors"
	"github.com/pebble-lang/pebble/internal/lexer"
	"github.com/pebble-lang/pebble/internal/token"
)

// Parser consumes tokens from a Lexer and produces an AST.
type Parser struct {
	l    *lexer.Lexer
	cur  token.Token
	peek token.Token
}

// New creates a Parser reading from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

// abort is the internal panic payload used to unwind out of the
// recursive-descent call stack on the first syntax error, the same
// technique go/parser in the standard library uses to avoid threading
// an error return through every parse function.
type abort struct {
	err *errors.SyntaxError
}

func (p *Parser) fail(format string, args ...any) {
	panic(abort{errors.NewSyntaxError(p.cur.Pos.Line, p.cur.Lexeme, fmt.Sprintf(format, args...))})
}

func (p *Parser) expect(kind token.Kind) token.Token {
	if p.cur.Kind != kind {
		p.fail("expected %s", kind)
	}
	tok := p.cur
	p.advance()
	return tok
}

func (p *Parser) skipNewlines() {
	for p.cur.Kind == token.NEWLINE {
		p.advance()
	}
}

// ParseProgram consumes all tokens up to EOF and returns a Block AST
// whose items are top-level statements and function definitions.
func (p *Parser) ParseProgram() (program *ast.Block, err error) {
	defer func() {
		if r := recover(); r != nil {
			a, ok := r.(abort)
			if !ok {
				panic(r)
			}
			program = nil
			err = a.err
		}
	}()

	var stmts []ast.Statement
	line := p.cur.Pos.Line
	for p.cur.Kind != token.EOF {
		if p.cur.Kind == token.NEWLINE {
			p.advance()
			continue
		}
		stmts = append(stmts, p.parseTopLevel())
	}
	return ast.NewBlock(line, stmts), nil
}

func (p *Parser) parseTopLevel() ast.Statement {
	if p.cur.Kind == token.FUNC {
		return p.parseFuncDef()
	}
	return p.parseStatement()
}

func (p *Parser) parseFuncDef() *ast.FuncDef {
	line := p.cur.Pos.Line
	p.advance() // 'func'
	name := p.expect(token.IDENT).Lexeme
	p.expect(token.LPAREN)

	var params []string
	if p.cur.Kind != token.RPAREN {
		params = append(params, p.expect(token.IDENT).Lexeme)
		for p.cur.Kind == token.COMMA {
			p.advance()
			params = append(params, p.expect(token.IDENT).Lexeme)
		}
	}
	p.expect(token.RPAREN)
	p.expect(token.LBRACE)
	body := p.parseBlock()

	return ast.NewFuncDef(line, name, params, body)
}

// parseBlock parses statements up to and consuming the closing '}'.
// The opening '{' must already have been consumed by the caller.
func (p *Parser) parseBlock() *ast.Block {
	line := p.cur.Pos.Line
	var stmts []ast.Statement
	for p.cur.Kind != token.RBRACE {
		if p.cur.Kind == token.EOF {
			p.fail("expected '}'")
		}
		if p.cur.Kind == token.NEWLINE {
			p.advance()
			continue
		}
		stmts = append(stmts, p.parseStatement())
	}
	p.advance() // consume '}'
	return ast.NewBlock(line, stmts)
}
