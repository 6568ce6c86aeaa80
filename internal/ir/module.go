package ir

// Module is the ordered declaration list produced by the parser, plus
// derived projections over it (functions, global variables, entry
// points).
type Module struct {
	Decls []Decl

	Export  *ModuleExportDecl
	Imports []*ModuleImportDecl

	// Path is the directory (or file) this module was parsed from.
	Path string
}

// Append adds decl to the module, marking VarDecl.IsGlobal true exactly
// once: at the moment a variable declaration becomes a module-level
// declaration rather than a local one.
func (m *Module) Append(decl Decl) {
	switch d := decl.(type) {
	case *VarDecl:
		d.IsGlobal = true
		m.Decls = append(m.Decls, d)
	case *ModuleExportDecl:
		if m.Export == nil {
			m.Export = d
		}
		m.Decls = append(m.Decls, d)
	case *ModuleImportDecl:
		m.Imports = append(m.Imports, d)
		m.Decls = append(m.Decls, d)
	default:
		m.Decls = append(m.Decls, decl)
	}
}

// Funcs returns every function declaration in source order.
func (m *Module) Funcs() []*FuncDecl {
	var out []*FuncDecl
	for _, d := range m.Decls {
		if f, ok := d.(*FuncDecl); ok {
			out = append(out, f)
		}
	}
	return out
}

// GlobalVars returns every global variable declaration in source order.
func (m *Module) GlobalVars() []*VarDecl {
	var out []*VarDecl
	for _, d := range m.Decls {
		if v, ok := d.(*VarDecl); ok && v.IsGlobal {
			out = append(out, v)
		}
	}
	return out
}

// UniformGlobals returns the globals with Uniform variability, in source
// order.
func (m *Module) UniformGlobals() []*VarDecl {
	var out []*VarDecl
	for _, v := range m.GlobalVars() {
		if v.Type.Variability == Uniform {
			out = append(out, v)
		}
	}
	return out
}

// VaryingGlobals returns the globals with Varying or Unbound variability,
// in source order.
func (m *Module) VaryingGlobals() []*VarDecl {
	var out []*VarDecl
	for _, v := range m.GlobalVars() {
		if v.Type.Variability != Uniform {
			out = append(out, v)
		}
	}
	return out
}

// PixelSampler returns the module's pixel-sampler entry point, if any.
func (m *Module) PixelSampler() *FuncDecl {
	for _, f := range m.Funcs() {
		if f.IsPixelSampler() {
			return f
		}
	}
	return nil
}

// PixelEncoder returns the module's pixel-encoder entry point, if any.
func (m *Module) PixelEncoder() *FuncDecl {
	for _, f := range m.Funcs() {
		if f.IsPixelEncoder() {
			return f
		}
	}
	return nil
}

// FindFuncsByName returns every function declaration named name, in
// source order — the candidate set the resolver queues for a FuncCall
// before type coercion disambiguates it.
func (m *Module) FindFuncsByName(name string) []*FuncDecl {
	var out []*FuncDecl
	for _, f := range m.Funcs() {
		if f.Name == name {
			out = append(out, f)
		}
	}
	return out
}
