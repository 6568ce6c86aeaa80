// Package codegen lowers a resolved, type-checked ir.Module into a C++
// header implementing the uniform_data/varying_data template pair the
// runtime links against. It assumes the module already passed
// internal/analyze: callers should not invoke it on a module carrying
// unresolved references or failed entry-point checks.
package codegen

import "github.com/tay10r/pathway/internal/ir"

// typeName renders t's TypeID as the C++ identifier used in generated
// code. Scalars resolve to ctx's float/int spelling (the template
// parameters under TargetCFamily, plain float/int under TargetCXXV1);
// vectors and matrices resolve to the aliases writeTypeAliases emits.
func typeName(id ir.TypeID, ctx *genCtx) string {
	switch id {
	case ir.Void:
		return "void"
	case ir.Bool:
		return "bool"
	case ir.Int:
		return ctx.intName
	case ir.Float:
		return ctx.floatName
	case ir.Vec2:
		return "vec2"
	case ir.Vec3:
		return "vec3"
	case ir.Vec4:
		return "vec4"
	case ir.Vec2i:
		return "vec2i"
	case ir.Vec3i:
		return "vec3i"
	case ir.Vec4i:
		return "vec4i"
	case ir.Mat2:
		return "mat2"
	case ir.Mat3:
		return "mat3"
	case ir.Mat4:
		return "mat4"
	}
	return "void"
}

// writeTypeAliases emits the using-declarations that give uniform_data
// and varying_data their vector/matrix member types in terms of ctx's
// scalar spellings.
func writeTypeAliases(w *indentWriter, ctx *genCtx) {
	f, i := ctx.floatName, ctx.intName

	w.writeLine("using vec2 = vector<" + f + ", 2>;")
	w.writeLine("using vec3 = vector<" + f + ", 3>;")
	w.writeLine("using vec4 = vector<" + f + ", 4>;")
	w.blank()
	w.writeLine("using vec2i = vector<" + i + ", 2>;")
	w.writeLine("using vec3i = vector<" + i + ", 3>;")
	w.writeLine("using vec4i = vector<" + i + ", 4>;")
	w.blank()
	w.writeLine("using mat2 = matrix<" + f + ", 2, 2>;")
	w.writeLine("using mat3 = matrix<" + f + ", 3, 3>;")
	w.writeLine("using mat4 = matrix<" + f + ", 4, 4>;")
}
