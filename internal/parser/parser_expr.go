package parser

import (
	"math"
	"strconv"

	"github.com/tay10r/pathway/internal/ir"
	"github.com/tay10r/pathway/internal/token"
)

// parseExpr parses a full expression: additive, built on term, built on
// unary, built on postfix member access over a primary.
func (p *Parser) parseExpr() (ir.Expr, bool) {
	return p.parseAdditive()
}

func (p *Parser) parseAdditive() (ir.Expr, bool) {
	left, ok := p.parseTerm()
	if !ok {
		return nil, false
	}

	for p.curIs(token.PLUS) || p.curIs(token.MINUS) {
		op := ir.Add
		if p.curIs(token.MINUS) {
			op = ir.Sub
		}
		p.advance()

		right, ok := p.parseTerm()
		if !ok {
			return nil, false
		}
		left = &ir.BinaryExpr{Left: left, Right: right, Op: op, Location: token.Join(left.Loc(), right.Loc())}
	}

	return left, true
}

func (p *Parser) parseTerm() (ir.Expr, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return nil, false
	}

	for p.curIs(token.STAR) || p.curIs(token.SLASH) || p.curIs(token.PERCENT) {
		var op ir.BinaryOp
		switch p.cur.Kind {
		case token.STAR:
			op = ir.Mul
		case token.SLASH:
			op = ir.Div
		case token.PERCENT:
			op = ir.Mod
		}
		p.advance()

		right, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		left = &ir.BinaryExpr{Left: left, Right: right, Op: op, Location: token.Join(left.Loc(), right.Loc())}
	}

	return left, true
}

func (p *Parser) parseUnary() (ir.Expr, bool) {
	var op ir.UnaryOp
	switch p.cur.Kind {
	case token.BANG:
		op = ir.LogicalNot
	case token.TILDE:
		op = ir.BitwiseNot
	case token.MINUS:
		op = ir.Negate
	default:
		return p.parsePostfix()
	}

	start := p.cur.Loc
	p.advance()

	inner, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	return &ir.UnaryExpr{Op: op, Inner: inner, Location: token.Join(start, inner.Loc())}, true
}

// parsePostfix parses a primary expression followed by zero or more
// `.member` accesses.
func (p *Parser) parsePostfix() (ir.Expr, bool) {
	base, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}

	for p.curIs(token.DOT) {
		p.advance()
		if !p.curIs(token.IDENT) {
			p.errorf(p.cur.Loc, "expected a member name after '.', got %s", p.cur.Kind)
			return nil, false
		}
		member := p.cur.Literal
		memberLoc := p.cur.Loc
		p.advance()
		base = &ir.MemberExpr{Base: base, MemberName: member, Location: token.Join(base.Loc(), memberLoc)}
	}

	return base, true
}

func (p *Parser) parsePrimary() (ir.Expr, bool) {
	switch {
	case p.curIs(token.INT):
		return p.parseIntLiteral()
	case p.curIs(token.FLOAT):
		return p.parseFloatLiteral()
	case p.curIs(token.TRUE):
		loc := p.cur.Loc
		p.advance()
		return &ir.BoolLiteral{Value: true, Location: loc}, true
	case p.curIs(token.FALSE):
		loc := p.cur.Loc
		p.advance()
		return &ir.BoolLiteral{Value: false, Location: loc}, true
	case p.curIs(token.PI):
		loc := p.cur.Loc
		p.advance()
		return &ir.FloatLiteral{Value: math.Pi, Kind: ir.FloatLiteralPi, Location: loc}, true
	case p.curIs(token.INFINITY):
		loc := p.cur.Loc
		p.advance()
		return &ir.FloatLiteral{Value: math.Inf(1), Kind: ir.FloatLiteralInfinity, Location: loc}, true
	case p.curIs(token.LPAREN):
		return p.parseGroupExpr()
	case p.isTypeKeyword(p.cur.Kind):
		return p.parseTypeConstructor()
	case p.curIs(token.IDENT):
		return p.parseIdentExpr()
	default:
		p.errorf(p.cur.Loc, "unexpected token %s in expression", p.cur.Kind)
		return nil, false
	}
}

func (p *Parser) parseIntLiteral() (ir.Expr, bool) {
	loc := p.cur.Loc
	lit := p.cur.Literal
	v, err := strconv.ParseUint(lit, 10, 64)
	if err != nil {
		p.errorf(loc, "invalid integer literal %q", lit)
		return nil, false
	}
	p.advance()
	return &ir.IntLiteral{Value: v, Location: loc}, true
}

func (p *Parser) parseFloatLiteral() (ir.Expr, bool) {
	loc := p.cur.Loc
	lit := p.cur.Literal
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		p.errorf(loc, "invalid float literal %q", lit)
		return nil, false
	}
	p.advance()
	return &ir.FloatLiteral{Value: v, Kind: ir.FloatLiteralPlain, Location: loc}, true
}

func (p *Parser) parseGroupExpr() (ir.Expr, bool) {
	start := p.cur.Loc
	p.advance() // '('

	inner, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	end := p.cur.Loc
	if !p.expect(token.RPAREN) {
		return nil, false
	}

	return &ir.GroupExpr{Inner: inner, Location: token.Join(start, end)}, true
}

// parseTypeConstructor parses `<type> ( <args>,* )`.
func (p *Parser) parseTypeConstructor() (ir.Expr, bool) {
	start := p.cur.Loc
	typeID, ok := p.parseType()
	if !ok {
		return nil, false
	}

	if !p.expect(token.LPAREN) {
		return nil, false
	}

	args, ok := p.parseArgList()
	if !ok {
		return nil, false
	}

	end := p.cur.Loc
	if !p.expect(token.RPAREN) {
		return nil, false
	}

	return &ir.TypeConstructor{Type: ir.T(typeID, ir.Unbound), Args: args, Location: token.Join(start, end)}, true
}

// parseIdentExpr parses either a function call (an identifier followed by
// '(') or a plain variable reference.
func (p *Parser) parseIdentExpr() (ir.Expr, bool) {
	name := p.cur.Literal
	loc := p.cur.Loc
	p.advance()

	if !p.curIs(token.LPAREN) {
		return &ir.VarRef{Name: name, Location: loc}, true
	}

	p.advance() // '('
	args, ok := p.parseArgList()
	if !ok {
		return nil, false
	}

	end := p.cur.Loc
	if !p.expect(token.RPAREN) {
		return nil, false
	}

	return &ir.FuncCall{Name: name, Args: args, Location: token.Join(loc, end)}, true
}

func (p *Parser) parseArgList() ([]ir.Expr, bool) {
	var args []ir.Expr
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		if len(args) > 0 {
			if !p.expect(token.COMMA) {
				return nil, false
			}
		}
		arg, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		args = append(args, arg)
	}
	return args, true
}
