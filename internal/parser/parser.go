// Package parser is a recursive-descent parser that consumes tokens from
// internal/lexer and constructs an internal/ir Module, reporting syntax
// errors to a diag.Sink. The grammar is LL(1) apart from expressions,
// which this parser handles with precedence-climbing recursive descent
// (see DESIGN.md).
package parser

import (
	"fmt"

	"github.com/tay10r/pathway/internal/diag"
	"github.com/tay10r/pathway/internal/ir"
	"github.com/tay10r/pathway/internal/lexer"
	"github.com/tay10r/pathway/internal/token"
)

// Parser holds the state of one module parse.
type Parser struct {
	file string
	l    *lexer.Lexer
	sink diag.Sink

	cur  token.Token
	peek token.Token
}

// New creates a Parser over src, attributed to file, reporting diagnostics
// to sink. The caller is responsible for calling sink.BeginFile/EndFile
// around Parse.
func New(src []byte, file string, sink diag.Sink) *Parser {
	p := &Parser{
		file: file,
		l:    lexer.New(lexer.Normalize(src), file),
		sink: sink,
	}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curIs(k token.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekIs(k token.Kind) bool { return p.peek.Kind == k }

func (p *Parser) errorf(loc token.Location, format string, args ...any) {
	p.sink.Observe(diag.New(loc, diag.SyntaxError, fmt.Sprintf(format, args...)))
}

// Parse consumes the whole token stream and returns a (possibly partial)
// Module. Parse never panics on malformed input; every syntax error is
// reported through the sink and the parser recovers to the next statement
// boundary.
func (p *Parser) Parse() *ir.Module {
	m := &ir.Module{Path: p.file}

	for !p.curIs(token.EOF) {
		decl, ok := p.parseTopLevel()
		if !ok {
			p.recoverToStatementBoundary()
			continue
		}
		if decl != nil {
			m.Append(decl)
		}
	}

	return m
}

// recoverToStatementBoundary skips tokens until a likely statement/decl
// boundary (';' or '}') so downstream top-level parsing can resume.
func (p *Parser) recoverToStatementBoundary() {
	for !p.curIs(token.EOF) {
		if p.curIs(token.SEMI) {
			p.advance()
			return
		}
		if p.curIs(token.RBRACE) {
			p.advance()
			return
		}
		p.advance()
	}
}
