package codegen

import (
	"testing"

	"github.com/tay10r/pathway/testutil"
)

func TestGenerateBasicModuleMatchesGolden(t *testing.T) {
	out := buildModule(t, `
module demo.shader;
void sample_pixel(vec2 uv, vec2 resolution) {
}
vec4 encode_pixel() {
  return vec4(0.0, 0.0, 0.0, 1.0);
}
`)
	testutil.CompareTextGolden(t, "codegen", "basic", out)
}
