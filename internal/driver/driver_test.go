package driver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tay10r/pathway/internal/codegen"
	"github.com/tay10r/pathway/internal/diag"
)

const validSource = `
module demo.shader;
void sample_pixel(vec2 uv, vec2 resolution) {
}
vec4 encode_pixel() {
  return vec4(0.0, 0.0, 0.0, 1.0);
}
`

func TestCompileSourceSucceeds(t *testing.T) {
	c := &diag.Collector{}
	res := CompileSource([]byte(validSource), "t.pt", codegen.TargetCFamily, c)

	require.True(t, res.OK)
	require.Empty(t, c.Diags)
	require.Contains(t, res.Output, "namespace demo {")
	require.Contains(t, res.Output, "varying_data::operator()")
}

func TestCompileSourceStopsAtSyntaxError(t *testing.T) {
	c := &diag.Collector{}
	res := CompileSource([]byte("module demo.shader;\nvoid sample_pixel(vec2 uv, vec2 resolution) {\n"), "t.pt", codegen.TargetCFamily, c)

	require.False(t, res.OK)
	require.Empty(t, res.Output)
	require.NotEmpty(t, c.Diags)
}

func TestCompileSourceStopsAtUnresolvedReference(t *testing.T) {
	c := &diag.Collector{}
	src := `
module demo.shader;
void sample_pixel(vec2 uv, vec2 resolution) {
}
vec4 encode_pixel() {
  return vec4(missing_value, 0.0, 0.0, 1.0);
}
`
	res := CompileSource([]byte(src), "t.pt", codegen.TargetCFamily, c)

	require.False(t, res.OK)
	require.Empty(t, res.Output)

	found := false
	for _, d := range c.Diags {
		if d.ID == diag.UnresolvedVarRef {
			found = true
		}
	}
	require.True(t, found, "expected an unresolved-reference diagnostic")
}

func TestCompileSourceStopsAtMissingEntryPoints(t *testing.T) {
	c := &diag.Collector{}
	res := CompileSource([]byte("module demo.shader;\n"), "t.pt", codegen.TargetCFamily, c)

	require.False(t, res.OK)
	require.Empty(t, res.Output)

	found := false
	for _, d := range c.Diags {
		if d.ID == diag.MissingEntryPoint {
			found = true
		}
	}
	require.True(t, found, "expected missing entry point diagnostics")
}
