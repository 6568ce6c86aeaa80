package codegen

import "github.com/tay10r/pathway/internal/ir"

// globalsUsage records which of a function's global-state categories its
// body touches: a uniform (per-frame) global, or a varying/unbound
// (per-pixel) global. The code generator uses this to decide whether a
// function needs the frame-data parameter threaded through.
type globalsUsage struct {
	referencesFrame bool
	referencesPixel bool
}

func (g globalsUsage) referencesGlobalState() bool {
	return g.referencesFrame || g.referencesPixel
}

// funcGlobalsUsage walks fn's body and reports every global variable
// category a VarRef inside it resolves to, including transitively through
// any functions it calls.
func funcGlobalsUsage(fn *ir.FuncDecl) globalsUsage {
	return funcGlobalsUsageVisiting(fn, map[*ir.FuncDecl]bool{})
}

func funcGlobalsUsageVisiting(fn *ir.FuncDecl, visiting map[*ir.FuncDecl]bool) globalsUsage {
	if visiting[fn] {
		return globalsUsage{}
	}
	visiting[fn] = true

	var g globalsUsage
	checkStmtGlobals(fn.Body, &g, visiting)
	return g
}

func checkStmtGlobals(s ir.Stmt, g *globalsUsage, visiting map[*ir.FuncDecl]bool) {
	switch v := s.(type) {
	case *ir.CompoundStmt:
		for _, inner := range v.Stmts {
			checkStmtGlobals(inner, g, visiting)
		}
	case *ir.AssignmentStmt:
		checkExprGlobals(v.Lvalue, g, visiting)
		checkExprGlobals(v.Rvalue, g, visiting)
	case *ir.DeclStmt:
		if v.Decl.Init != nil {
			checkExprGlobals(v.Decl.Init, g, visiting)
		}
	case *ir.ReturnStmt:
		if v.Expr != nil {
			checkExprGlobals(v.Expr, g, visiting)
		}
	}
}

func checkExprGlobals(e ir.Expr, g *globalsUsage, visiting map[*ir.FuncDecl]bool) {
	switch v := e.(type) {
	case *ir.VarRef:
		decl, ok := v.Resolved.(*ir.VarDecl)
		if !ok || !decl.IsGlobal {
			return
		}
		if decl.Type.Variability == ir.Uniform {
			g.referencesFrame = true
		} else {
			g.referencesPixel = true
		}
	case *ir.GroupExpr:
		checkExprGlobals(v.Inner, g, visiting)
	case *ir.UnaryExpr:
		checkExprGlobals(v.Inner, g, visiting)
	case *ir.BinaryExpr:
		checkExprGlobals(v.Left, g, visiting)
		checkExprGlobals(v.Right, g, visiting)
	case *ir.MemberExpr:
		checkExprGlobals(v.Base, g, visiting)
	case *ir.TypeConstructor:
		for _, a := range v.Args {
			checkExprGlobals(a, g, visiting)
		}
	case *ir.FuncCall:
		for _, a := range v.Args {
			checkExprGlobals(a, g, visiting)
		}
		if callee, ok := v.Resolved(); ok {
			usage := funcGlobalsUsageVisiting(callee, visiting)
			g.referencesFrame = g.referencesFrame || usage.referencesFrame
			g.referencesPixel = g.referencesPixel || usage.referencesPixel
		}
	}
}
