package codegen

import "github.com/tay10r/pathway/internal/ir"

// Generate renders m as a self-contained C++ header targeting target: the
// uniform_data and varying_data structs, their member function
// declarations, and out-of-line definitions for every ordinary function
// plus the two reserved entry points. Callers should only invoke this on
// a module that has already passed internal/analyze.
//
// TargetCFamily emits the default templated shape, parameterized over
// float_type/int_type. TargetCXXV1 emits the legacy non-templated
// spelling (plain float/int, no template<> headers) for projects pinned
// to the original runtime revision.
func Generate(m *ir.Module, target Target) string {
	ctx := newGenCtx(target)
	w := &indentWriter{}

	w.writeLine("#pragma once")
	w.blank()
	w.writeLine("#include <pathway.h>")
	w.blank()

	var ids []string
	if m.Export != nil {
		ids = m.Export.Identifiers()
	}

	for _, id := range ids {
		w.writeLine("namespace " + id + " {")
		w.blank()
	}

	generateUniformData(w, m, ctx)
	w.blank()
	generateVaryingData(w, m, ctx)
	w.blank()
	w.writeLine("// Implementation details below.")
	generateFuncDefs(w, m, ctx)

	for i := len(ids) - 1; i >= 0; i-- {
		w.blank()
		w.writeLine("} // namespace " + ids[i])
	}

	return w.String()
}

func generateUniformData(w *indentWriter, m *ir.Module, ctx *genCtx) {
	if h := ctx.templateHeader(); h != "" {
		w.writeLine(h)
	}
	w.writeLine("struct uniform_data final")
	w.writeLine("{")
	w.increaseIndent()

	writeTypeAliases(w, ctx)

	for _, v := range m.UniformGlobals() {
		w.blank()
		line := typeName(v.Type.ID, ctx) + " " + v.Name
		w.writeLine(line + ";")
	}

	w.decreaseIndent()
	w.writeLine("};")
}

func generateVaryingData(w *indentWriter, m *ir.Module, ctx *genCtx) {
	if h := ctx.templateHeader(); h != "" {
		w.writeLine(h)
	}
	w.writeLine("struct varying_data final")
	w.writeLine("{")
	w.increaseIndent()

	writeTypeAliases(w, ctx)
	w.blank()
	w.writeLine("using uniform_data_type = uniform_data" + ctx.dataTypeArgs() + ";")

	for _, v := range m.VaryingGlobals() {
		w.blank()
		line := typeName(v.Type.ID, ctx) + " " + v.Name
		w.writeLine(line + ";")
	}

	for _, fn := range m.Funcs() {
		w.blank()

		switch {
		case fn.IsPixelSampler():
			w.writeLine("auto operator()(const uniform_data_type& frame, " + samplerParams(fn, ctx) + ") noexcept -> void;")
		case fn.IsPixelEncoder():
			w.writeLine("auto operator()(const uniform_data_type& frame) const noexcept -> vec4;")
		default:
			w.writeLine("auto " + fn.Name + paramList(fn, ctx) + " noexcept -> " + typeName(fn.ReturnType.ID, ctx) + ";")
		}
	}

	w.decreaseIndent()
	w.writeLine("};")
}

// samplerParams renders the pixel sampler's two declared vec2 parameters
// by the names the source function actually gave them, rather than the
// illustrative "uvMin"/"uvMax" names used in prose — CheckEntryPoints
// (internal/analyze) already guarantees fn has exactly two vec2 params.
func samplerParams(fn *ir.FuncDecl, ctx *genCtx) string {
	return typeName(ir.Vec2, ctx) + " " + fn.Params[0].Name + ", " +
		typeName(ir.Vec2, ctx) + " " + fn.Params[1].Name
}

// paramList renders fn's declared parameters, preceded by a frame
// parameter when fn's body (transitively) touches uniform-variability
// state.
func paramList(fn *ir.FuncDecl, ctx *genCtx) string {
	s := "("
	usage := funcGlobalsUsage(fn)
	wrote := false
	if usage.referencesFrame {
		s += "const uniform_data_type& frame"
		wrote = true
	}
	for _, p := range fn.Params {
		if wrote {
			s += ", "
		}
		s += typeName(p.Type.ID, ctx) + " " + p.Name
		wrote = true
	}
	return s + ")"
}

func generateFuncDefs(w *indentWriter, m *ir.Module, ctx *genCtx) {
	for _, fn := range m.Funcs() {
		w.blank()
		if h := ctx.templateHeader(); h != "" {
			w.writeLine(h)
		}

		var header string
		switch {
		case fn.IsPixelSampler():
			header = "auto varying_data::operator()(" + samplerParams(fn, ctx) + ") noexcept -> "
		case fn.IsPixelEncoder():
			header = "auto varying_data::operator()() const noexcept -> "
		default:
			header = "auto varying_data::" + fn.Name + paramList(fn, ctx) + " noexcept -> "
		}
		w.writeLine(header + typeName(fn.ReturnType.ID, ctx))

		writeStmt(w, fn.Body, ctx)
	}
}
