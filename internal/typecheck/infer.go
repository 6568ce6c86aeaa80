// Package typecheck computes the type of every expression bottom-up and
// implements the implicit-conversion rules (common-type table, swizzle
// component types, type coercion) used to make two mismatched operand
// types compatible.
package typecheck

import "github.com/tay10r/pathway/internal/ir"

// Infer computes e's type. It reports false if inference fails: an
// unresolved reference, an ambiguous call, or operands with no common
// type. Infer never mutates e; it is meant to be called repeatedly as
// passes refine the module.
func Infer(e ir.Expr) (ir.Type, bool) {
	switch v := e.(type) {
	case *ir.BoolLiteral:
		return ir.T(ir.Bool, ir.Unbound), true
	case *ir.IntLiteral:
		return ir.T(ir.Int, ir.Unbound), true
	case *ir.FloatLiteral:
		return ir.T(ir.Float, ir.Unbound), true
	case *ir.VarRef:
		return inferVarRef(v)
	case *ir.GroupExpr:
		return Infer(v.Inner)
	case *ir.UnaryExpr:
		return inferUnary(v)
	case *ir.BinaryExpr:
		return inferBinary(v)
	case *ir.FuncCall:
		return inferCall(v)
	case *ir.TypeConstructor:
		return v.Type, true
	case *ir.MemberExpr:
		return inferMember(v)
	}
	return ir.Type{}, false
}

func inferVarRef(v *ir.VarRef) (ir.Type, bool) {
	if v.Resolved == nil {
		return ir.Type{}, false
	}
	return v.Resolved.BindingType(), true
}

func inferCall(v *ir.FuncCall) (ir.Type, bool) {
	fn, ok := v.Resolved()
	if !ok {
		return ir.Type{}, false
	}
	return fn.ReturnType, true
}

// inferUnary preserves the operand's type: logical/bitwise negation and
// arithmetic negation all map a type back onto itself.
func inferUnary(v *ir.UnaryExpr) (ir.Type, bool) {
	return Infer(v.Inner)
}

func inferBinary(v *ir.BinaryExpr) (ir.Type, bool) {
	leftType, ok := Infer(v.Left)
	if !ok {
		return ir.Type{}, false
	}
	rightType, ok := Infer(v.Right)
	if !ok {
		return ir.Type{}, false
	}

	if leftType.Equal(rightType) {
		return leftType, true
	}

	if leftType.Variability != rightType.Variability {
		return ir.Type{}, false
	}

	id, ok := CommonType(leftType.ID, rightType.ID)
	if !ok {
		return ir.Type{}, false
	}
	return ir.T(id, leftType.Variability), true
}

func inferMember(v *ir.MemberExpr) (ir.Type, bool) {
	baseType, ok := Infer(v.Base)
	if !ok {
		return ir.Type{}, false
	}

	switch baseType.ID {
	case ir.Vec2, ir.Vec3, ir.Vec4:
		n, _ := baseType.VectorComponentCount()
		return vectorMemberType(v.MemberName, n, baseType.Variability, false)
	case ir.Vec2i, ir.Vec3i, ir.Vec4i:
		n, _ := baseType.VectorComponentCount()
		return vectorMemberType(v.MemberName, n, baseType.Variability, true)
	default:
		return ir.Type{}, false
	}
}

func vectorMemberType(pattern string, vecSize int, variability ir.Variability, isInt bool) (ir.Type, bool) {
	indices, ok := ParseSwizzle(pattern, vecSize)
	if !ok {
		return ir.Type{}, false
	}

	switch len(indices) {
	case 1:
		if isInt {
			return ir.T(ir.Int, variability), true
		}
		return ir.T(ir.Float, variability), true
	case 2, 3, 4:
		scalar := ir.Float
		if isInt {
			scalar = ir.Int
		}
		id, ok := ir.VectorTypeFor(scalar, len(indices))
		if !ok {
			return ir.Type{}, false
		}
		return ir.T(id, variability), true
	}
	return ir.Type{}, false
}
