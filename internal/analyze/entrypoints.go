package analyze

import (
	"github.com/tay10r/pathway/internal/diag"
	"github.com/tay10r/pathway/internal/ir"
	"github.com/tay10r/pathway/internal/token"
)

// moduleLocation anchors a module-wide diagnostic (a missing entry point
// has no single declaration to blame) on the `module` declaration if
// present, or the start of the file otherwise.
func moduleLocation(m *ir.Module) token.Location {
	if m.Export != nil {
		return m.Export.Loc()
	}
	return token.Location{FirstLine: 1, FirstColumn: 1, LastLine: 1, LastColumn: 1}
}

// CheckEntryPoints requires exactly one pixel-sampler and one
// pixel-encoder declaration and validates each signature. Missing either
// entry point, declaring it twice, or getting its signature wrong are all
// reported as separate errors so a single pass surfaces everything wrong
// with a module's entry points at once.
func CheckEntryPoints(m *ir.Module, sink diag.Sink) bool {
	ok := true

	var sampler, encoder *ir.FuncDecl
	for _, fn := range m.Funcs() {
		if fn.IsPixelSampler() {
			if sampler != nil {
				sink.Observe(diag.New(fn.NameLoc, diag.DuplicateEntryPoint,
					"only one declaration of '"+fn.Name+"' can exist"))
				ok = false
			} else {
				sampler = fn
			}
			continue
		}
		if fn.IsPixelEncoder() {
			if encoder != nil {
				sink.Observe(diag.New(fn.NameLoc, diag.DuplicateEntryPoint,
					"only one declaration of '"+fn.Name+"' can exist"))
				ok = false
			} else {
				encoder = fn
			}
		}
	}

	if sampler != nil {
		if !checkPixelSamplerSignature(sampler, sink) {
			ok = false
		}
	} else {
		sink.Observe(diag.New(moduleLocation(m), diag.MissingEntryPoint, "missing entry point 'SamplePixel'"))
		ok = false
	}

	if encoder != nil {
		if !checkPixelEncoderSignature(encoder, sink) {
			ok = false
		}
	} else {
		sink.Observe(diag.New(moduleLocation(m), diag.MissingEntryPoint, "missing entry point 'EncodePixel'"))
		ok = false
	}

	return ok
}

func checkPixelSamplerSignature(fn *ir.FuncDecl, sink diag.Sink) bool {
	ok := true

	if fn.ReturnType.ID != ir.Void {
		sink.Observe(diag.New(fn.NameLoc, diag.EntryPointReturnType, "return type should be type 'void'"))
		ok = false
	}

	if len(fn.Params) != 2 {
		sink.Observe(diag.New(fn.NameLoc, diag.EntryPointParamCount,
			"there should be two 'vec2' parameters to this function."))
		return false
	}

	if fn.Params[0].Type.ID != ir.Vec2 {
		sink.Observe(diag.New(fn.NameLoc, diag.EntryPointParamType, "1st parameter should be type 'vec2'"))
		ok = false
	}
	if fn.Params[1].Type.ID != ir.Vec2 {
		sink.Observe(diag.New(fn.NameLoc, diag.EntryPointParamType, "2nd parameter should be type 'vec2'"))
		ok = false
	}

	return ok
}

func checkPixelEncoderSignature(fn *ir.FuncDecl, sink diag.Sink) bool {
	ok := true

	if fn.ReturnType.ID != ir.Vec4 {
		sink.Observe(diag.New(fn.NameLoc, diag.EntryPointReturnType, "return type should be type 'vec4'"))
		ok = false
	}

	if len(fn.Params) != 0 {
		sink.Observe(diag.New(fn.NameLoc, diag.EntryPointParamCount,
			"there should be no parameters to this function."))
		ok = false
	}

	return ok
}
