package codegen

// Target selects which C++ spelling Generate emits.
type Target string

const (
	// TargetCFamily is the default target: a templated record
	// parameterized over float_type/int_type.
	TargetCFamily Target = "cfamily"

	// TargetCXXV1 is the legacy alias for projects pinned to the
	// original, non-templated runtime revision: plain float/int in
	// place of the float_type/int_type template parameters, and no
	// template<> header on the emitted records or methods.
	TargetCXXV1 Target = "cxx_v1"
)

// genCtx carries the per-target naming choices through code generation.
// Both targets share the same IR lowering; only the record/method
// emission and scalar spellings differ, matching the expression
// environment's role as the one extension point between the module
// model and the generator.
type genCtx struct {
	target    Target
	floatName string
	intName   string
	templated bool
}

func newGenCtx(target Target) *genCtx {
	if target == TargetCXXV1 {
		return &genCtx{target: TargetCXXV1, floatName: "float", intName: "int", templated: false}
	}
	return &genCtx{target: TargetCFamily, floatName: "float_type", intName: "int_type", templated: true}
}

// templateHeader returns the "template <typename ...>" line cfamily
// prefixes every record/method with, or "" for the non-templated
// cxx_v1 target.
func (c *genCtx) templateHeader() string {
	if !c.templated {
		return ""
	}
	return "template <typename " + c.floatName + ", typename " + c.intName + ">"
}

// dataTypeArgs returns the template argument list appended to
// uniform_data/varying_data when referring to them by name, or "" for
// the non-templated target.
func (c *genCtx) dataTypeArgs() string {
	if !c.templated {
		return ""
	}
	return "<" + c.floatName + ", " + c.intName + ">"
}
