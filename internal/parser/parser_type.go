package parser

import (
	"github.com/tay10r/pathway/internal/ir"
	"github.com/tay10r/pathway/internal/token"
)

var typeKeywords = map[token.Kind]ir.TypeID{
	token.VOID:    ir.Void,
	token.BOOL:    ir.Bool,
	token.INT_T:   ir.Int,
	token.FLOAT_T: ir.Float,
	token.VEC2:    ir.Vec2,
	token.VEC3:    ir.Vec3,
	token.VEC4:    ir.Vec4,
	token.VEC2I:   ir.Vec2i,
	token.VEC3I:   ir.Vec3i,
	token.VEC4I:   ir.Vec4i,
	token.MAT2:    ir.Mat2,
	token.MAT3:    ir.Mat3,
	token.MAT4:    ir.Mat4,
}

func (p *Parser) isTypeKeyword(k token.Kind) bool {
	_, ok := typeKeywords[k]
	return ok
}

// parseType parses a bare type keyword (no variability prefix), used for
// parameters, return types and local declarations.
func (p *Parser) parseType() (ir.TypeID, bool) {
	id, ok := typeKeywords[p.cur.Kind]
	if !ok {
		p.errorf(p.cur.Loc, "expected a type, got %s", p.cur.Kind)
		return ir.Void, false
	}
	p.advance()
	return id, true
}
