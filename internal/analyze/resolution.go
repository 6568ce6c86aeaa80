package analyze

import (
	"github.com/tay10r/pathway/internal/diag"
	"github.com/tay10r/pathway/internal/ir"
)

// CheckResolution reports every VarRef left unresolved by the resolver and
// every FuncCall whose name matched no declaration, or whose overload set
// never narrowed to one candidate.
func CheckResolution(m *ir.Module, sink diag.Sink) bool {
	ok := true
	for _, fn := range m.Funcs() {
		if !checkStmt(fn.Body, sink) {
			ok = false
		}
	}
	for _, v := range m.GlobalVars() {
		if v.Init != nil && !checkExpr(v.Init, sink) {
			ok = false
		}
	}
	return ok
}

func checkStmt(s ir.Stmt, sink diag.Sink) bool {
	ok := true
	switch v := s.(type) {
	case *ir.CompoundStmt:
		for _, inner := range v.Stmts {
			if !checkStmt(inner, sink) {
				ok = false
			}
		}
	case *ir.DeclStmt:
		if v.Decl.Init != nil {
			ok = checkExpr(v.Decl.Init, sink)
		}
	case *ir.AssignmentStmt:
		ok = checkExpr(v.Lvalue, sink) && checkExpr(v.Rvalue, sink)
	case *ir.ReturnStmt:
		if v.Expr != nil {
			ok = checkExpr(v.Expr, sink)
		}
	}
	return ok
}

func checkExpr(e ir.Expr, sink diag.Sink) bool {
	ok := true
	switch v := e.(type) {
	case *ir.VarRef:
		if v.Resolved == nil {
			sink.Observe(diag.New(v.Location, diag.UnresolvedVarRef,
				"'"+v.Name+"' does not refer to anything"))
			ok = false
		}
	case *ir.GroupExpr:
		ok = checkExpr(v.Inner, sink)
	case *ir.UnaryExpr:
		ok = checkExpr(v.Inner, sink)
	case *ir.BinaryExpr:
		ok = checkExpr(v.Left, sink) && checkExpr(v.Right, sink)
	case *ir.MemberExpr:
		ok = checkExpr(v.Base, sink)
	case *ir.TypeConstructor:
		for _, arg := range v.Args {
			if !checkExpr(arg, sink) {
				ok = false
			}
		}
	case *ir.FuncCall:
		for _, arg := range v.Args {
			if !checkExpr(arg, sink) {
				ok = false
			}
		}
		if len(v.Candidates) == 0 {
			sink.Observe(diag.New(v.Location, diag.UnresolvedFunc,
				"'"+v.Name+"' does not refer to anything"))
			ok = false
		} else if _, single := v.Resolved(); !single {
			sink.Observe(diag.New(v.Location, diag.UnresolvedFunc,
				"call to '"+v.Name+"' is ambiguous"))
			ok = false
		}
	}
	return ok
}
