package parser

import (
	"strings"

	"github.com/tay10r/pathway/internal/ir"
	"github.com/tay10r/pathway/internal/token"
)

// parseTopLevel parses one top-level declaration: a module has at most one
// export declaration, any number of import declarations, global
// variables, and functions.
func (p *Parser) parseTopLevel() (ir.Decl, bool) {
	switch {
	case p.curIs(token.MODULE):
		return p.parseModuleExport()
	case p.curIs(token.IMPORT):
		return p.parseModuleImport()
	case p.curIs(token.UNIFORM) || p.curIs(token.VARYING):
		return p.parseGlobalVar()
	case p.isTypeKeyword(p.cur.Kind):
		return p.parseFuncOrGlobalVar(ir.Unbound)
	default:
		p.errorf(p.cur.Loc, "unexpected token %s at top level", p.cur.Kind)
		return nil, false
	}
}

// parseDottedIdent parses `IDENT ('.' IDENT)*`, used for module export and
// import paths: a dotted name becomes a nested namespace.
func (p *Parser) parseDottedIdent() (string, token.Location, bool) {
	if !p.curIs(token.IDENT) {
		p.errorf(p.cur.Loc, "expected an identifier, got %s", p.cur.Kind)
		return "", token.Location{}, false
	}
	loc := p.cur.Loc
	var parts []string
	parts = append(parts, p.cur.Literal)
	p.advance()

	for p.curIs(token.DOT) {
		p.advance()
		if !p.curIs(token.IDENT) {
			p.errorf(p.cur.Loc, "expected an identifier after '.'")
			return "", token.Location{}, false
		}
		loc = token.Join(loc, p.cur.Loc)
		parts = append(parts, p.cur.Literal)
		p.advance()
	}

	return strings.Join(parts, "."), loc, true
}

func (p *Parser) parseModuleExport() (ir.Decl, bool) {
	start := p.cur.Loc
	p.advance() // 'module'

	name, loc, ok := p.parseDottedIdent()
	if !ok {
		return nil, false
	}
	if !p.expect(token.SEMI) {
		return nil, false
	}
	return &ir.ModuleExportDecl{Name: name, Location: token.Join(start, loc)}, true
}

func (p *Parser) parseModuleImport() (ir.Decl, bool) {
	start := p.cur.Loc
	p.advance() // 'import'

	name, loc, ok := p.parseDottedIdent()
	if !ok {
		return nil, false
	}
	if !p.expect(token.SEMI) {
		return nil, false
	}
	return &ir.ModuleImportDecl{Name: name, Location: token.Join(start, loc)}, true
}

// parseGlobalVar parses `[uniform|varying]? <type> <identifier> (= <expr>)? ;`.
// Variability defaults to Unbound when neither keyword is present.
func (p *Parser) parseGlobalVar() (ir.Decl, bool) {
	start := p.cur.Loc
	variability := ir.Unbound
	if p.curIs(token.UNIFORM) {
		variability = ir.Uniform
		p.advance()
	} else if p.curIs(token.VARYING) {
		variability = ir.Varying
		p.advance()
	}

	decl, ok := p.parseFuncOrGlobalVar(variability)
	if !ok {
		return nil, false
	}
	if v, isVar := decl.(*ir.VarDecl); isVar {
		v.Location = token.Join(start, v.Location)
	}
	return decl, true
}

// parseFuncOrGlobalVar parses `<type> <identifier>` and then looks ahead:
// a '(' makes it a function declaration, anything else a variable
// declaration.
func (p *Parser) parseFuncOrGlobalVar(variability ir.Variability) (ir.Decl, bool) {
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

	if p.curIs(token.LPAREN) {
		return p.parseFuncDecl(typeID, name, nameLoc, start)
	}

	varDecl := &ir.VarDecl{
		Type:     ir.T(typeID, variability),
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

	if !p.expect(token.SEMI) {
		return nil, false
	}

	return varDecl, true
}

// parseFuncDecl parses `(<paramList>) <compoundStmt>` having already
// consumed the return type and name.
func (p *Parser) parseFuncDecl(returnType ir.TypeID, name string, nameLoc, start token.Location) (ir.Decl, bool) {
	if !p.expect(token.LPAREN) {
		return nil, false
	}

	var params []*ir.Param
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		if len(params) > 0 {
			if !p.expect(token.COMMA) {
				return nil, false
			}
		}
		pType, pLoc, pName, pNameLoc, ok := p.parseParam()
		if !ok {
			return nil, false
		}
		params = append(params, &ir.Param{Type: ir.T(pType, ir.Unbound), Name: pName, Location: token.Join(pLoc, pNameLoc)})
	}

	if !p.expect(token.RPAREN) {
		return nil, false
	}

	body, ok := p.parseCompoundStmt()
	if !ok {
		return nil, false
	}

	return &ir.FuncDecl{
		ReturnType: ir.T(returnType, ir.Unbound),
		Name:       name,
		Params:     params,
		Body:       body,
		NameLoc:    nameLoc,
		Location:   token.Join(start, body.Location),
	}, true
}

func (p *Parser) parseParam() (ir.TypeID, token.Location, string, token.Location, bool) {
	loc := p.cur.Loc
	typeID, ok := p.parseType()
	if !ok {
		return ir.Void, loc, "", token.Location{}, false
	}
	if !p.curIs(token.IDENT) {
		p.errorf(p.cur.Loc, "expected a parameter name, got %s", p.cur.Kind)
		return ir.Void, loc, "", token.Location{}, false
	}
	name := p.cur.Literal
	nameLoc := p.cur.Loc
	p.advance()
	return typeID, loc, name, nameLoc, true
}

// expect consumes cur if it matches k, else reports a syntax error.
func (p *Parser) expect(k token.Kind) bool {
	if !p.curIs(k) {
		p.errorf(p.cur.Loc, "expected %s, got %s", k, p.cur.Kind)
		return false
	}
	p.advance()
	return true
}
