package ir

import (
	"encoding/json"
	"fmt"
)

// Dump produces a deterministic JSON representation of a module.
// Positions are omitted so dumps are stable across whitespace-only edits
// to a fixture.
func Dump(m *Module) string {
	if m == nil {
		return "null"
	}
	data, err := json.MarshalIndent(simplifyModule(m), "", "  ")
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(data)
}

func simplifyModule(m *Module) map[string]any {
	out := map[string]any{}
	if m.Export != nil {
		out["export"] = m.Export.Name
	}
	var imports []string
	for _, i := range m.Imports {
		imports = append(imports, i.Name)
	}
	if len(imports) > 0 {
		out["imports"] = imports
	}

	var globals []map[string]any
	for _, v := range m.GlobalVars() {
		globals = append(globals, simplifyVar(v))
	}
	if globals != nil {
		out["globals"] = globals
	}

	var funcs []map[string]any
	for _, f := range m.Funcs() {
		funcs = append(funcs, simplifyFunc(f))
	}
	if funcs != nil {
		out["funcs"] = funcs
	}
	return out
}

func simplifyVar(v *VarDecl) map[string]any {
	out := map[string]any{
		"name": v.Name,
		"type": v.Type.String(),
	}
	if v.Init != nil {
		out["init"] = simplifyExpr(v.Init)
	}
	return out
}

func simplifyFunc(f *FuncDecl) map[string]any {
	var params []map[string]any
	for _, p := range f.Params {
		params = append(params, map[string]any{"name": p.Name, "type": p.Type.String()})
	}
	return map[string]any{
		"name":   f.Name,
		"return": f.ReturnType.String(),
		"params": params,
		"body":   simplifyStmt(f.Body),
	}
}

func simplifyStmt(s Stmt) map[string]any {
	switch v := s.(type) {
	case *CompoundStmt:
		var stmts []map[string]any
		for _, inner := range v.Stmts {
			stmts = append(stmts, simplifyStmt(inner))
		}
		return map[string]any{"kind": "compound", "stmts": stmts}
	case *DeclStmt:
		return map[string]any{"kind": "decl", "var": simplifyVar(v.Decl)}
	case *AssignmentStmt:
		return map[string]any{"kind": "assign", "lvalue": simplifyExpr(v.Lvalue), "rvalue": simplifyExpr(v.Rvalue)}
	case *ReturnStmt:
		m := map[string]any{"kind": "return"}
		if v.Expr != nil {
			m["expr"] = simplifyExpr(v.Expr)
		}
		return m
	default:
		return map[string]any{"kind": "unknown"}
	}
}

func simplifyExpr(e Expr) map[string]any {
	switch v := e.(type) {
	case *IntLiteral:
		return map[string]any{"kind": "int", "value": v.Value}
	case *FloatLiteral:
		return map[string]any{"kind": "float", "value": v.Value}
	case *BoolLiteral:
		return map[string]any{"kind": "bool", "value": v.Value}
	case *VarRef:
		return map[string]any{"kind": "ref", "name": v.Name}
	case *GroupExpr:
		return map[string]any{"kind": "group", "inner": simplifyExpr(v.Inner)}
	case *UnaryExpr:
		return map[string]any{"kind": "unary", "op": v.Op.String(), "inner": simplifyExpr(v.Inner)}
	case *BinaryExpr:
		return map[string]any{"kind": "binary", "op": v.Op.String(), "left": simplifyExpr(v.Left), "right": simplifyExpr(v.Right)}
	case *FuncCall:
		var args []map[string]any
		for _, a := range v.Args {
			args = append(args, simplifyExpr(a))
		}
		return map[string]any{"kind": "call", "name": v.Name, "args": args}
	case *TypeConstructor:
		var args []map[string]any
		for _, a := range v.Args {
			args = append(args, simplifyExpr(a))
		}
		return map[string]any{"kind": "construct", "type": v.Type.String(), "args": args}
	case *MemberExpr:
		return map[string]any{"kind": "member", "base": simplifyExpr(v.Base), "member": v.MemberName}
	default:
		return map[string]any{"kind": "unknown"}
	}
}
