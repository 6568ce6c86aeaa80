package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tay10r/pathway/internal/diag"
	"github.com/tay10r/pathway/internal/ir"
)

func parse(t *testing.T, src string) (*ir.Module, *diag.Collector) {
	t.Helper()
	c := &diag.Collector{}
	c.BeginFile("t.pt", []byte(src))
	m := New([]byte(src), "t.pt", c).Parse()
	c.EndFile()
	return m, c
}

func TestParserModuleExportAndImport(t *testing.T) {
	src := `
module demo.shaders;
import demo.util;
`
	m, c := parse(t, src)
	require.Empty(t, c.Diags)
	require.NotNil(t, m.Export)
	require.Equal(t, "demo.shaders", m.Export.Name)
	require.Len(t, m.Imports, 1)
	require.Equal(t, "demo.util", m.Imports[0].Name)
}

func TestParserGlobalVars(t *testing.T) {
	src := `
uniform float exposure = 1.0;
varying vec3 normal;
float ambient;
`
	m, c := parse(t, src)
	require.Empty(t, c.Diags)
	globals := m.GlobalVars()
	require.Len(t, globals, 3)

	require.Equal(t, "exposure", globals[0].Name)
	require.Equal(t, ir.Uniform, globals[0].Type.Variability)
	require.True(t, globals[0].HasInit())

	require.Equal(t, "normal", globals[1].Name)
	require.Equal(t, ir.Varying, globals[1].Type.Variability)

	require.Equal(t, "ambient", globals[2].Name)
	require.Equal(t, ir.Unbound, globals[2].Type.Variability)
}

func TestParserFuncDeclAndBody(t *testing.T) {
	src := `
void sample_pixel(vec2 uv, vec2 resolution) {
  float x = uv.x * 2.0 - 1.0;
  return;
}
`
	m, c := parse(t, src)
	require.Empty(t, c.Diags)

	funcs := m.Funcs()
	require.Len(t, funcs, 1)

	f := funcs[0]
	require.Equal(t, "sample_pixel", f.Name)
	require.True(t, f.IsPixelSampler())
	require.Len(t, f.Params, 2)
	require.Equal(t, "uv", f.Params[0].Name)

	require.Len(t, f.Body.Stmts, 2)
	decl, ok := f.Body.Stmts[0].(*ir.DeclStmt)
	require.True(t, ok)
	require.Equal(t, "x", decl.Decl.Name)

	bin, ok := decl.Decl.Init.(*ir.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, ir.Sub, bin.Op)

	mul, ok := bin.Left.(*ir.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, ir.Mul, mul.Op)

	member, ok := mul.Left.(*ir.MemberExpr)
	require.True(t, ok)
	require.Equal(t, "x", member.MemberName)
}

func TestParserExpressionPrecedence(t *testing.T) {
	src := `
float f() {
  return 1.0 + 2.0 * 3.0 - 4.0 / 2.0;
}
`
	m, c := parse(t, src)
	require.Empty(t, c.Diags)

	ret := m.Funcs()[0].Body.Stmts[0].(*ir.ReturnStmt)
	top, ok := ret.Expr.(*ir.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, ir.Sub, top.Op)

	left, ok := top.Left.(*ir.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, ir.Add, left.Op)

	rightMul, ok := left.Right.(*ir.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, ir.Mul, rightMul.Op)

	rightDiv, ok := top.Right.(*ir.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, ir.Div, rightDiv.Op)
}

func TestParserUnaryAndGrouping(t *testing.T) {
	src := `
float f() {
  return -(1.0 + 2.0);
}
`
	m, c := parse(t, src)
	require.Empty(t, c.Diags)

	ret := m.Funcs()[0].Body.Stmts[0].(*ir.ReturnStmt)
	un, ok := ret.Expr.(*ir.UnaryExpr)
	require.True(t, ok)
	require.Equal(t, ir.Negate, un.Op)

	group, ok := un.Inner.(*ir.GroupExpr)
	require.True(t, ok)
	_, ok = group.Inner.(*ir.BinaryExpr)
	require.True(t, ok)
}

func TestParserTypeConstructorAndCall(t *testing.T) {
	src := `
vec4 encode_pixel() {
  return vec4(saturate(1.0), 0.0, 0.0, 1.0);
}
`
	m, c := parse(t, src)
	require.Empty(t, c.Diags)

	f := m.Funcs()[0]
	require.True(t, f.IsPixelEncoder())

	ret := f.Body.Stmts[0].(*ir.ReturnStmt)
	ctor, ok := ret.Expr.(*ir.TypeConstructor)
	require.True(t, ok)
	require.Equal(t, ir.Vec4, ctor.Type.ID)
	require.Len(t, ctor.Args, 4)

	call, ok := ctor.Args[0].(*ir.FuncCall)
	require.True(t, ok)
	require.Equal(t, "saturate", call.Name)
	require.Len(t, call.Args, 1)
}

func TestParserPiAndInfinityLiterals(t *testing.T) {
	src := `
float f() {
  float a = pi;
  float b = infinity;
  return a + b;
}
`
	m, c := parse(t, src)
	require.Empty(t, c.Diags)

	stmts := m.Funcs()[0].Body.Stmts
	a := stmts[0].(*ir.DeclStmt).Decl.Init.(*ir.FloatLiteral)
	require.Equal(t, ir.FloatLiteralPi, a.Kind)

	b := stmts[1].(*ir.DeclStmt).Decl.Init.(*ir.FloatLiteral)
	require.Equal(t, ir.FloatLiteralInfinity, b.Kind)
}

func TestParserAssignmentStmt(t *testing.T) {
	src := `
void f() {
  vec3 v;
  v.x = 1.0;
}
`
	m, c := parse(t, src)
	require.Empty(t, c.Diags)

	assign, ok := m.Funcs()[0].Body.Stmts[1].(*ir.AssignmentStmt)
	require.True(t, ok)
	member, ok := assign.Lvalue.(*ir.MemberExpr)
	require.True(t, ok)
	require.Equal(t, "x", member.MemberName)
}

// TestParserControlFlowRejected checks that if/for/while/break/continue are
// recognized as keywords but rejected as a syntax error, per the Open
// Question decision recorded in DESIGN.md.
func TestParserControlFlowRejected(t *testing.T) {
	src := `
void f() {
  if (true) {
    return;
  }
}
`
	_, c := parse(t, src)
	require.NotEmpty(t, c.Diags)
	require.True(t, c.HasErrors())
}

// TestParserTotality checks that parsing never panics on malformed input
// and always reports at least one diagnostic.
func TestParserTotality(t *testing.T) {
	badInputs := []string{
		"module;",
		"uniform vec3",
		"float f( {",
		"vec4 encode_pixel() { return 1.0 +",
		"!!!@#$",
		"",
	}
	for _, src := range badInputs {
		m, c := parse(t, src)
		require.NotNil(t, m)
		if strings.TrimSpace(src) != "" {
			require.NotEmpty(t, c.Diags, "expected a diagnostic for %q", src)
		}
	}
}

func TestParserRecoversAfterSyntaxError(t *testing.T) {
	src := `
uniform vec3 ;
float ok() {
  return 1.0;
}
`
	m, c := parse(t, src)
	require.True(t, c.HasErrors())

	funcs := m.Funcs()
	require.Len(t, funcs, 1)
	require.Equal(t, "ok", funcs[0].Name)
}
