package analyze

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tay10r/pathway/internal/diag"
	"github.com/tay10r/pathway/internal/ir"
	"github.com/tay10r/pathway/internal/parser"
	"github.com/tay10r/pathway/internal/resolver"
	"github.com/tay10r/pathway/internal/typecheck"
)

func build(t *testing.T, src string) (*ir.Module, *diag.Collector) {
	t.Helper()
	parseDiags := &diag.Collector{}
	parseDiags.BeginFile("t.pt", []byte(src))
	m := parser.New([]byte(src), "t.pt", parseDiags).Parse()
	parseDiags.EndFile()
	require.Empty(t, parseDiags.Diags, "fixture must parse cleanly")

	resolver.Resolve(m)
	typecheck.ApplyCoercions(m)

	checkDiags := &diag.Collector{}
	return m, checkDiags
}

func validModule() string {
	return `
module test.valid;
void sample_pixel(vec2 uv, vec2 resolution) {
}
vec4 encode_pixel() {
  return vec4(0.0, 0.0, 0.0, 1.0);
}
`
}

func TestRunAcceptsValidModule(t *testing.T) {
	m, sink := build(t, validModule())
	require.True(t, Run(m, sink))
	require.Empty(t, sink.Diags)
}

func TestCheckDuplicatesVars(t *testing.T) {
	m, sink := build(t, `
module test.dup;
uniform float exposure;
uniform float exposure;
void sample_pixel(vec2 uv, vec2 resolution) {
}
vec4 encode_pixel() {
  return vec4(0.0, 0.0, 0.0, 1.0);
}
`)
	require.False(t, CheckDuplicates(m, sink))
	require.Len(t, sink.Diags, 2)
	require.Equal(t, diag.DuplicateDecl, sink.Diags[0].ID)
	require.Equal(t, diag.OriginalDecl, sink.Diags[1].ID)
}

func TestCheckDuplicatesAllowsOverloads(t *testing.T) {
	m, sink := build(t, `
module test.overload;
float add(float a, float b) {
  return a + b;
}
vec2 add(vec2 a, vec2 b) {
  return a;
}
void sample_pixel(vec2 uv, vec2 resolution) {
}
vec4 encode_pixel() {
  return vec4(0.0, 0.0, 0.0, 1.0);
}
`)
	require.True(t, CheckDuplicates(m, sink))
	require.Empty(t, sink.Diags)
}

func TestCheckResolutionReportsUnresolvedRef(t *testing.T) {
	m, sink := build(t, `
module test.unresolved;
void sample_pixel(vec2 uv, vec2 resolution) {
  float x = bogus;
}
vec4 encode_pixel() {
  return vec4(0.0, 0.0, 0.0, 1.0);
}
`)
	require.False(t, CheckResolution(m, sink))
	require.Len(t, sink.Diags, 1)
	require.Equal(t, diag.UnresolvedVarRef, sink.Diags[0].ID)
}

func TestCheckEntryPointsMissingBoth(t *testing.T) {
	m, sink := build(t, `
module test.missing;
float helper() {
  return 1.0;
}
`)
	require.False(t, CheckEntryPoints(m, sink))
	require.Len(t, sink.Diags, 2)
	require.Equal(t, "missing entry point 'SamplePixel'", sink.Diags[0].Message)
	require.Equal(t, "missing entry point 'EncodePixel'", sink.Diags[1].Message)
}

func TestCheckEntryPointsWrongSamplerSignature(t *testing.T) {
	m, sink := build(t, `
module test.badsig;
void sample_pixel(vec2 uv) {
}
vec4 encode_pixel() {
  return vec4(0.0, 0.0, 0.0, 1.0);
}
`)
	require.False(t, CheckEntryPoints(m, sink))
	require.Len(t, sink.Diags, 1)
	require.Equal(t, "there should be two 'vec2' parameters to this function.", sink.Diags[0].Message)
}

func TestCheckEntryPointsWrongEncoderReturnType(t *testing.T) {
	m, sink := build(t, `
module test.badret;
void sample_pixel(vec2 uv, vec2 resolution) {
}
float encode_pixel() {
  return 1.0;
}
`)
	require.False(t, CheckEntryPoints(m, sink))
	require.Len(t, sink.Diags, 1)
	require.Equal(t, "return type should be type 'vec4'", sink.Diags[0].Message)
}

func TestCheckEntryPointsDuplicateSampler(t *testing.T) {
	m, sink := build(t, `
module test.dupentry;
void sample_pixel(vec2 uv, vec2 resolution) {
}
void SamplePixel(vec2 uv, vec2 resolution) {
}
vec4 encode_pixel() {
  return vec4(0.0, 0.0, 0.0, 1.0);
}
`)
	require.False(t, CheckEntryPoints(m, sink))
	found := false
	for _, d := range sink.Diags {
		if d.ID == diag.DuplicateEntryPoint {
			found = true
		}
	}
	require.True(t, found)
}

func TestCheckReturnsMismatch(t *testing.T) {
	m, sink := build(t, `
module test.retmismatch;
float f() {
  return true;
}
void sample_pixel(vec2 uv, vec2 resolution) {
}
vec4 encode_pixel() {
  return vec4(0.0, 0.0, 0.0, 1.0);
}
`)
	require.False(t, CheckReturns(m, sink))
	require.Len(t, sink.Diags, 1)
	require.Equal(t, diag.ReturnTypeMismatch, sink.Diags[0].ID)
}
