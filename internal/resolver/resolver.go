// Package resolver links every VarRef and FuncCall in a module to the
// declarations they name. It never reports diagnostics itself: a
// reference that cannot be resolved is simply left unresolved, and it is
// internal/analyze's job to report that as an error.
package resolver

import "github.com/tay10r/pathway/internal/ir"

// scope is a single lexical block's variable bindings.
type scope struct {
	vars map[string]ir.VarBinding
}

func newScope() *scope {
	return &scope{vars: make(map[string]ir.VarBinding)}
}

func (s *scope) define(name string, b ir.VarBinding) {
	s.vars[name] = b
}

func (s *scope) find(name string) (ir.VarBinding, bool) {
	b, ok := s.vars[name]
	return b, ok
}

// symbolTable tracks the stack of local scopes entered/exited while
// walking one function body, plus a read-only view of the module used to
// resolve global variables and function-name candidates.
type symbolTable struct {
	module      *ir.Module
	localScopes []*scope
}

func newSymbolTable(m *ir.Module) *symbolTable {
	return &symbolTable{module: m}
}

func (t *symbolTable) enterScope() {
	t.localScopes = append(t.localScopes, newScope())
}

func (t *symbolTable) exitScope() {
	t.localScopes = t.localScopes[:len(t.localScopes)-1]
}

func (t *symbolTable) define(name string, b ir.VarBinding) {
	t.localScopes[len(t.localScopes)-1].define(name, b)
}

// findVar searches the local scope stack innermost-first, then falls back
// to the module's global variables.
func (t *symbolTable) findVar(name string) ir.VarBinding {
	for i := len(t.localScopes) - 1; i >= 0; i-- {
		if b, ok := t.localScopes[i].find(name); ok {
			return b
		}
	}
	for _, v := range t.module.GlobalVars() {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// findFuncs returns every function declaration sharing name, queued as
// candidates for the type checker to disambiguate.
func (t *symbolTable) findFuncs(name string) []*ir.FuncDecl {
	return t.module.FindFuncsByName(name)
}

// Resolve links every VarRef and FuncCall reachable from m's function
// bodies and global variable initializers to their declarations,
// mutating the module in place.
func Resolve(m *ir.Module) {
	for _, fn := range m.Funcs() {
		resolveFunc(m, fn)
	}
	t := newSymbolTable(m)
	for _, v := range m.GlobalVars() {
		if v.Init != nil {
			resolveExpr(t, v.Init)
		}
	}
}

func resolveFunc(m *ir.Module, fn *ir.FuncDecl) {
	t := newSymbolTable(m)
	t.enterScope()

	for _, p := range fn.Params {
		t.define(p.Name, p)
	}

	resolveStmt(t, fn.Body)

	t.exitScope()
}

func resolveStmt(t *symbolTable, s ir.Stmt) {
	switch v := s.(type) {
	case *ir.CompoundStmt:
		t.enterScope()
		for _, inner := range v.Stmts {
			resolveStmt(t, inner)
		}
		t.exitScope()
	case *ir.AssignmentStmt:
		resolveExpr(t, v.Lvalue)
		resolveExpr(t, v.Rvalue)
	case *ir.ReturnStmt:
		if v.Expr != nil {
			resolveExpr(t, v.Expr)
		}
	case *ir.DeclStmt:
		// The initializer is resolved against the *enclosing* scope, before
		// the declared name becomes visible to itself or later statements.
		if v.Decl.Init != nil {
			resolveExpr(t, v.Decl.Init)
		}
		t.define(v.Decl.Name, v.Decl)
	}
}

func resolveExpr(t *symbolTable, e ir.Expr) {
	switch v := e.(type) {
	case *ir.IntLiteral, *ir.FloatLiteral, *ir.BoolLiteral:
		// no references to resolve
	case *ir.VarRef:
		if b := t.findVar(v.Name); b != nil {
			v.Resolved = b
		}
	case *ir.GroupExpr:
		resolveExpr(t, v.Inner)
	case *ir.UnaryExpr:
		resolveExpr(t, v.Inner)
	case *ir.BinaryExpr:
		resolveExpr(t, v.Left)
		resolveExpr(t, v.Right)
	case *ir.FuncCall:
		v.Candidates = t.findFuncs(v.Name)
		for _, arg := range v.Args {
			resolveExpr(t, arg)
		}
	case *ir.TypeConstructor:
		for _, arg := range v.Args {
			resolveExpr(t, arg)
		}
	case *ir.MemberExpr:
		resolveExpr(t, v.Base)
	}
}
