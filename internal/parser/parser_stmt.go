package parser

import (
	"github.com/tay10r/pathway/internal/ir"
	"github.com/tay10r/pathway/internal/token"
)

func (p *Parser) parseCompoundStmt() (*ir.CompoundStmt, bool) {
	start := p.cur.Loc
	if !p.expect(token.LBRACE) {
		return nil, false
	}

	var stmts []ir.Stmt
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		s, ok := p.parseStmt()
		if !ok {
			p.recoverToStatementBoundary()
			continue
		}
		if s != nil {
			stmts = append(stmts, s)
		}
	}

	end := p.cur.Loc
	if !p.expect(token.RBRACE) {
		return nil, false
	}

	return &ir.CompoundStmt{Stmts: stmts, Location: token.Join(start, end)}, true
}

// parseStmt parses one statement: a local declaration, an assignment, a
// return, or a nested compound block. Control-flow tokens are recognized
// and rejected as a syntax error; see the Open Question decision recorded
// in DESIGN.md.
func (p *Parser) parseStmt() (ir.Stmt, bool) {
	switch {
	case p.curIs(token.LBRACE):
		return p.parseCompoundStmt()
	case p.curIs(token.RETURN):
		return p.parseReturnStmt()
	case p.isTypeKeyword(p.cur.Kind):
		return p.parseDeclStmt()
	case token.ControlFlowKeyword(p.cur.Kind):
		p.errorf(p.cur.Loc, "control flow ('%s') is not supported by this compiler", p.cur.Kind)
		return nil, false
	default:
		return p.parseAssignmentStmt()
	}
}

func (p *Parser) parseReturnStmt() (ir.Stmt, bool) {
	start := p.cur.Loc
	p.advance() // 'return'

	var expr ir.Expr
	if !p.curIs(token.SEMI) {
		e, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		expr = e
	}

	end := p.cur.Loc
	if !p.expect(token.SEMI) {
		return nil, false
	}

	return &ir.ReturnStmt{Expr: expr, Location: token.Join(start, end)}, true
}

// parseDeclStmt parses a local variable declaration; locals never carry a
// uniform/varying prefix.
func (p *Parser) parseDeclStmt() (ir.Stmt, bool) {
	start := p.cur.Loc
	typeID, ok := p.parseType()
	if !ok {
		return nil, false
	}

	if !p.curIs(token.IDENT) {
		p.errorf(p.cur.Loc, "expected an identifier, got %s", p.cur.Kind)
		return nil, false
	}
	name := p.cur.Literal
	nameLoc := p.cur.Loc
	p.advance()

	varDecl := &ir.VarDecl{
		Type:     ir.T(typeID, ir.Unbound),
		Name:     name,
		NameLoc:  nameLoc,
		Location: token.Join(start, nameLoc),
	}

	if p.curIs(token.ASSIGN) {
		p.advance()
		init, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		varDecl.Init = init
		varDecl.Location = token.Join(varDecl.Location, init.Loc())
	}

	end := p.cur.Loc
	if !p.expect(token.SEMI) {
		return nil, false
	}

	return &ir.DeclStmt{Decl: varDecl, Location: token.Join(varDecl.Location, end)}, true
}

// parseAssignmentStmt parses `<lvalue expr> = <rvalue expr> ;`. Assignment
// is a statement, not an expression operator: there is no assignment
// operator inside an expression.
func (p *Parser) parseAssignmentStmt() (ir.Stmt, bool) {
	lvalue, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	if !p.expect(token.ASSIGN) {
		return nil, false
	}

	rvalue, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	end := p.cur.Loc
	if !p.expect(token.SEMI) {
		return nil, false
	}

	return &ir.AssignmentStmt{Lvalue: lvalue, Rvalue: rvalue, Location: token.Join(lvalue.Loc(), end)}, true
}
