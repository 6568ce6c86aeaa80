package codegen

import "github.com/tay10r/pathway/internal/ir"

// writeStmt lowers s into w, recursing through compound blocks and
// rendering each leaf statement kind as one or more C++ statements.
func writeStmt(w *indentWriter, s ir.Stmt, ctx *genCtx) {
	switch v := s.(type) {
	case *ir.CompoundStmt:
		w.writeLine("{")
		w.increaseIndent()
		for _, inner := range v.Stmts {
			writeStmt(w, inner, ctx)
		}
		w.decreaseIndent()
		w.writeLine("}")
	case *ir.AssignmentStmt:
		w.writeLine(lowerExpr(v.Lvalue, ctx) + " = " + lowerExpr(v.Rvalue, ctx) + ";")
	case *ir.DeclStmt:
		line := typeName(v.Decl.Type.ID, ctx) + " " + v.Decl.Name
		if v.Decl.Init != nil {
			line += " = " + lowerExpr(v.Decl.Init, ctx)
		}
		w.writeLine(line + ";")
	case *ir.ReturnStmt:
		if v.Expr == nil {
			w.writeLine("return;")
		} else {
			w.writeLine("return " + lowerExpr(v.Expr, ctx) + ";")
		}
	}
}
