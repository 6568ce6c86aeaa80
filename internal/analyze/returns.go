package analyze

import (
	"github.com/tay10r/pathway/internal/diag"
	"github.com/tay10r/pathway/internal/ir"
	"github.com/tay10r/pathway/internal/typecheck"
)

// CheckReturns verifies every return statement's expression matches its
// enclosing function's declared return type.
func CheckReturns(m *ir.Module, sink diag.Sink) bool {
	ok := true
	for _, fn := range m.Funcs() {
		if !checkReturnStmt(fn.Body, fn.ReturnType, sink) {
			ok = false
		}
	}
	return ok
}

func checkReturnStmt(s ir.Stmt, expected ir.Type, sink diag.Sink) bool {
	ok := true
	switch v := s.(type) {
	case *ir.CompoundStmt:
		for _, inner := range v.Stmts {
			if !checkReturnStmt(inner, expected, sink) {
				ok = false
			}
		}
	case *ir.ReturnStmt:
		if v.Expr == nil {
			if expected.ID != ir.Void {
				sink.Observe(diag.New(v.Location, diag.ReturnTypeMismatch,
					"expression should return type '"+expected.String()+"' not 'void'"))
				ok = false
			}
			return ok
		}
		actual, inferred := typecheck.Infer(v.Expr)
		if !inferred {
			sink.Observe(diag.New(v.Location, diag.ReturnTypeMismatch,
				"expression should return type '"+expected.String()+"' but its type could not be determined"))
			ok = false
		} else if !actual.Equal(expected) {
			sink.Observe(diag.New(v.Location, diag.ReturnTypeMismatch,
				"expression should return type '"+expected.String()+"' not '"+actual.String()+"'"))
			ok = false
		}
	}
	return ok
}
