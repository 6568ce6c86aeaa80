package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tay10r/pathway/internal/ir"
	"github.com/tay10r/pathway/internal/typecheck"
)

// varOrigin classifies how a resolved VarRef should be rendered: as a
// bare local identifier, or qualified through the frame/pixel data the
// enclosing function was given.
type varOrigin int

const (
	originLocal varOrigin = iota
	originUniformGlobal
	originVaryingGlobal
)

func resolveVarOrigin(b ir.VarBinding) varOrigin {
	decl, ok := b.(*ir.VarDecl)
	if !ok || !decl.IsGlobal {
		return originLocal
	}
	if decl.Type.Variability == ir.Uniform {
		return originUniformGlobal
	}
	return originVaryingGlobal
}

// lowerExpr renders e as a C++ expression. Variable references are
// qualified per resolveVarOrigin, and function calls thread the frame
// argument through when the callee's body (transitively) touches uniform
// state.
func lowerExpr(e ir.Expr, ctx *genCtx) string {
	var b strings.Builder
	writeExpr(&b, e, ctx)
	return b.String()
}

func writeExpr(b *strings.Builder, e ir.Expr, ctx *genCtx) {
	switch v := e.(type) {
	case *ir.IntLiteral:
		fmt.Fprintf(b, "%s(%d)", ctx.intName, v.Value)
	case *ir.BoolLiteral:
		if v.Value {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case *ir.FloatLiteral:
		switch v.Kind {
		case ir.FloatLiteralPi:
			fmt.Fprintf(b, "%s(3.14159265358979323846)", ctx.floatName)
		case ir.FloatLiteralInfinity:
			fmt.Fprintf(b, "std::numeric_limits<%s>::infinity()", ctx.floatName)
		default:
			fmt.Fprintf(b, "%s(%s)", ctx.floatName, strconv.FormatFloat(v.Value, 'g', -1, 64))
		}
	case *ir.GroupExpr:
		b.WriteByte('(')
		writeExpr(b, v.Inner, ctx)
		b.WriteByte(')')
	case *ir.UnaryExpr:
		b.WriteString(v.Op.String())
		writeExpr(b, v.Inner, ctx)
	case *ir.BinaryExpr:
		writeExpr(b, v.Left, ctx)
		b.WriteByte(' ')
		b.WriteString(v.Op.String())
		b.WriteByte(' ')
		writeExpr(b, v.Right, ctx)
	case *ir.VarRef:
		writeVarRef(b, v)
	case *ir.MemberExpr:
		if base, ok := typecheck.Infer(v.Base); ok {
			if n, isVec := base.VectorComponentCount(); isVec {
				if indices, ok := typecheck.ParseSwizzle(v.MemberName, n); ok {
					parts := make([]string, len(indices))
					for i, idx := range indices {
						parts[i] = strconv.Itoa(idx)
					}
					fmt.Fprintf(b, "swizzle<%s>::get(", strings.Join(parts, ","))
					writeExpr(b, v.Base, ctx)
					b.WriteByte(')')
					return
				}
			}
		}
		writeExpr(b, v.Base, ctx)
		b.WriteByte('.')
		b.WriteString(v.MemberName)
	case *ir.TypeConstructor:
		b.WriteString(typeName(v.Type.ID, ctx))
		b.WriteByte('(')
		writeArgs(b, v.Args, ctx)
		b.WriteByte(')')
	case *ir.FuncCall:
		writeFuncCall(b, v, ctx)
	}
}

func writeVarRef(b *strings.Builder, v *ir.VarRef) {
	if v.Resolved == nil {
		b.WriteString(v.Name)
		return
	}
	switch resolveVarOrigin(v.Resolved) {
	case originUniformGlobal:
		b.WriteString("frame.")
		b.WriteString(v.Resolved.BindingName())
	case originVaryingGlobal:
		b.WriteString("this->")
		b.WriteString(v.Resolved.BindingName())
	default:
		b.WriteString(v.Resolved.BindingName())
	}
}

func writeFuncCall(b *strings.Builder, call *ir.FuncCall, ctx *genCtx) {
	b.WriteString(call.Name)
	b.WriteByte('(')

	callee, _ := call.Resolved()
	wroteFrame := false
	if callee != nil {
		usage := funcGlobalsUsage(callee)
		if usage.referencesFrame {
			b.WriteString("frame")
			wroteFrame = true
		}
	}

	for i, arg := range call.Args {
		if wroteFrame || i > 0 {
			b.WriteString(", ")
		}
		writeExpr(b, arg, ctx)
	}

	b.WriteByte(')')
}

func writeArgs(b *strings.Builder, args []ir.Expr, ctx *genCtx) {
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		writeExpr(b, a, ctx)
	}
}
