package typecheck

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tay10r/pathway/internal/diag"
	"github.com/tay10r/pathway/internal/ir"
	"github.com/tay10r/pathway/internal/parser"
	"github.com/tay10r/pathway/internal/resolver"
)

func parseAndResolve(t *testing.T, src string) *ir.Module {
	t.Helper()
	c := &diag.Collector{}
	c.BeginFile("t.pt", []byte(src))
	m := parser.New([]byte(src), "t.pt", c).Parse()
	c.EndFile()
	require.Empty(t, c.Diags, "fixture must parse cleanly")
	resolver.Resolve(m)
	return m
}

func TestInferLiterals(t *testing.T) {
	m := parseAndResolve(t, `
float f() {
  return 1.0;
}
`)
	ret := m.Funcs()[0].Body.Stmts[0].(*ir.ReturnStmt)
	got, ok := Infer(ret.Expr)
	require.True(t, ok)
	require.Equal(t, ir.T(ir.Float, ir.Unbound), got)
}

func TestInferVarRefUsesBindingType(t *testing.T) {
	m := parseAndResolve(t, `
void sample_pixel(vec2 uv, vec2 resolution) {
  float x = uv.x;
}
`)
	decl := m.Funcs()[0].Body.Stmts[0].(*ir.DeclStmt).Decl
	member := decl.Init.(*ir.MemberExpr)
	got, ok := Infer(member)
	require.True(t, ok)
	require.Equal(t, ir.Float, got.ID)
}

func TestInferMemberSwizzleVector(t *testing.T) {
	m := parseAndResolve(t, `
void sample_pixel(vec2 uv, vec2 resolution) {
  vec2 p = resolution.yx;
}
`)
	decl := m.Funcs()[0].Body.Stmts[0].(*ir.DeclStmt).Decl
	got, ok := Infer(decl.Init)
	require.True(t, ok)
	require.Equal(t, ir.Vec2, got.ID)
}

func TestInferBinaryCommonType(t *testing.T) {
	m := parseAndResolve(t, `
float scale;
vec3 f() {
  vec3 v = vec3(1.0, 2.0, 3.0);
  return scale * v;
}
`)
	ret := m.Funcs()[0].Body.Stmts[1].(*ir.ReturnStmt)
	got, ok := Infer(ret.Expr)
	require.True(t, ok)
	require.Equal(t, ir.Vec3, got.ID)
}

func TestInferBinaryMismatchedVariabilityFails(t *testing.T) {
	m := parseAndResolve(t, `
uniform float u;
varying float v;
float f() {
  return u + v;
}
`)
	ret := m.Funcs()[0].Body.Stmts[0].(*ir.ReturnStmt)
	_, ok := Infer(ret.Expr)
	require.False(t, ok)
}

func TestInferFuncCallRequiresSingleCandidate(t *testing.T) {
	m := parseAndResolve(t, `
float add(float a, float b) {
  return a + b;
}
vec2 add(vec2 a, vec2 b) {
  return a;
}
float f() {
  return add(1.0, 2.0);
}
`)
	ret := m.Funcs()[2].Body.Stmts[0].(*ir.ReturnStmt)
	_, ok := Infer(ret.Expr)
	require.False(t, ok, "two same-name candidates should block inference until coercion narrows them")

	ApplyCoercions(m)
	got, ok := Infer(ret.Expr)
	require.True(t, ok)
	require.Equal(t, ir.Float, got.ID)
}

func TestInferUnresolvedRefFails(t *testing.T) {
	m := parseAndResolve(t, `
float f() {
  return nonexistent;
}
`)
	ret := m.Funcs()[0].Body.Stmts[0].(*ir.ReturnStmt)
	_, ok := Infer(ret.Expr)
	require.False(t, ok)
}
