package typecheck

import "github.com/tay10r/pathway/internal/ir"

// Coerce wraps e in a TypeConstructor targeting dst when e's inferred type
// differs from dst and the two share a common type. It returns e unchanged
// when no coercion is needed or none applies. This is the minimal
// implicit-conversion contract: no narrowing, no numeric truncation, just
// the wrap-in-constructor every other pass already treats as a no-op
// pass-through when Type already matches Args[0]'s type.
func Coerce(e ir.Expr, dst ir.Type) ir.Expr {
	srcType, ok := Infer(e)
	if !ok || srcType.Equal(dst) {
		return e
	}
	if _, ok := CommonType(srcType.ID, dst.ID); !ok {
		return e
	}
	return &ir.TypeConstructor{Type: dst, Args: []ir.Expr{e}, Location: e.Loc()}
}

// ApplyCoercions walks every function body in m, coercing declaration
// initializers, return expressions, and assignment right-hand sides to
// their target's declared type, and disambiguating function calls whose
// name matched more than one overload.
func ApplyCoercions(m *ir.Module) {
	for _, fn := range m.Funcs() {
		coerceStmt(fn.Body, fn.ReturnType)
	}
}

func coerceStmt(s ir.Stmt, returnType ir.Type) {
	switch v := s.(type) {
	case *ir.CompoundStmt:
		for _, inner := range v.Stmts {
			coerceStmt(inner, returnType)
		}
	case *ir.DeclStmt:
		if v.Decl.Init != nil {
			coerceExpr(&v.Decl.Init)
			v.Decl.Init = Coerce(v.Decl.Init, v.Decl.Type)
		}
	case *ir.AssignmentStmt:
		coerceExpr(&v.Lvalue)
		coerceExpr(&v.Rvalue)
		if dst, ok := Infer(v.Lvalue); ok {
			v.Rvalue = Coerce(v.Rvalue, dst)
		}
	case *ir.ReturnStmt:
		if v.Expr != nil {
			coerceExpr(&v.Expr)
			v.Expr = Coerce(v.Expr, returnType)
		}
	}
}

// coerceExpr recurses into e's subexpressions in place and, for a FuncCall
// with more than one name candidate, narrows Candidates to the overloads
// whose parameter types accept the (already coerced) argument types.
func coerceExpr(e *ir.Expr) {
	switch v := (*e).(type) {
	case *ir.GroupExpr:
		coerceExpr(&v.Inner)
	case *ir.UnaryExpr:
		coerceExpr(&v.Inner)
	case *ir.BinaryExpr:
		coerceExpr(&v.Left)
		coerceExpr(&v.Right)
		coerceBinaryOperands(v)
	case *ir.MemberExpr:
		coerceExpr(&v.Base)
	case *ir.TypeConstructor:
		for i := range v.Args {
			coerceExpr(&v.Args[i])
		}
	case *ir.FuncCall:
		for i := range v.Args {
			coerceExpr(&v.Args[i])
		}
		disambiguateCall(v)
	}
}

// coerceBinaryOperands wraps whichever operand doesn't already match the
// binary expression's inferred common type.
func coerceBinaryOperands(b *ir.BinaryExpr) {
	result, ok := Infer(b)
	if !ok {
		return
	}
	b.Left = Coerce(b.Left, result)
	b.Right = Coerce(b.Right, result)
}

// disambiguateCall narrows a FuncCall's Candidates to those whose
// parameter count and types accept the call's (already-inferred) argument
// types, either exactly or via a common type.
func disambiguateCall(call *ir.FuncCall) {
	if len(call.Candidates) <= 1 {
		return
	}

	argTypes := make([]ir.Type, len(call.Args))
	for i, a := range call.Args {
		t, ok := Infer(a)
		if !ok {
			return
		}
		argTypes[i] = t
	}

	// Exact parameter-type matches win outright: this is what separates
	// overloads like add(float,float) from add(vec2,vec2). Only fall back
	// to coercible matches when nothing matches exactly.
	var exact, coercible []*ir.FuncDecl
	for _, cand := range call.Candidates {
		if len(cand.Params) != len(argTypes) {
			continue
		}
		switch candidateAccepts(cand, argTypes) {
		case acceptExact:
			exact = append(exact, cand)
		case acceptCoercible:
			coercible = append(coercible, cand)
		}
	}
	if len(exact) > 0 {
		call.Candidates = exact
	} else if len(coercible) > 0 {
		call.Candidates = coercible
	}
}

type acceptKind int

const (
	acceptNone acceptKind = iota
	acceptCoercible
	acceptExact
)

func candidateAccepts(cand *ir.FuncDecl, argTypes []ir.Type) acceptKind {
	exact := true
	for i, p := range cand.Params {
		if p.Type.Equal(argTypes[i]) {
			continue
		}
		exact = false
		if _, ok := CommonType(p.Type.ID, argTypes[i].ID); !ok {
			return acceptNone
		}
	}
	if exact {
		return acceptExact
	}
	return acceptCoercible
}
