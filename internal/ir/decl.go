package ir

import (
	"strings"

	"github.com/tay10r/pathway/internal/token"
)

// Decl is the sum type over top-level and local declarations.
type Decl interface {
	Loc() token.Location
	declNode()
}

// VarDecl is a variable declaration, global or local. IsGlobal is set
// exactly once, when the module appends it.
type VarDecl struct {
	Type        Type
	Name        string
	Init        Expr // nil if uninitialized
	IsGlobal    bool
	NameLoc     token.Location
	Location    token.Location
}

func (d *VarDecl) Loc() token.Location     { return d.Location }
func (d *VarDecl) NameLocation() token.Location { return d.NameLoc }
func (*VarDecl) declNode()                 {}

// HasInit reports whether the declaration carries an initializer.
func (d *VarDecl) HasInit() bool { return d.Init != nil }

func (d *VarDecl) BindingName() string { return d.Name }
func (d *VarDecl) BindingType() Type   { return d.Type }

// Param is a function parameter (a name plus a type, no initializer).
type Param struct {
	Type     Type
	Name     string
	Location token.Location
}

func (p *Param) BindingName() string { return p.Name }
func (p *Param) BindingType() Type   { return p.Type }

// samplerNames and encoderNames are the reserved entry-point identifiers;
// both dialect spellings are recognized.
var samplerNames = map[string]bool{"SamplePixel": true, "sample_pixel": true}
var encoderNames = map[string]bool{"EncodePixel": true, "encode_pixel": true}

// FuncDecl is a function declaration.
type FuncDecl struct {
	ReturnType Type
	Name       string
	Params     []*Param
	Body       *CompoundStmt
	NameLoc    token.Location
	Location   token.Location
}

func (d *FuncDecl) Loc() token.Location          { return d.Location }
func (d *FuncDecl) NameLocation() token.Location { return d.NameLoc }
func (*FuncDecl) declNode()                      {}

// IsPixelSampler reports whether d is the reserved pixel-sampler entry
// point, by name only (signature is checked by internal/analyze).
func (d *FuncDecl) IsPixelSampler() bool { return samplerNames[d.Name] }

// IsPixelEncoder reports whether d is the reserved pixel-encoder entry
// point, by name only.
func (d *FuncDecl) IsPixelEncoder() bool { return encoderNames[d.Name] }

// IsEntryPoint reports whether d is either reserved entry point.
func (d *FuncDecl) IsEntryPoint() bool { return d.IsPixelSampler() || d.IsPixelEncoder() }

// mangleTags maps a parameter's scalar/vector/matrix TypeID to the compact
// tag used by MangledName.
var mangleTags = map[TypeID]string{
	Bool: "b", Int: "i", Float: "f",
	Vec2: "V2", Vec3: "V3", Vec4: "V4",
	Vec2i: "I2", Vec3i: "I3", Vec4i: "I4",
	Mat2: "M22", Mat3: "M33", Mat4: "M44",
}

// MangledName returns d's external identifier including a compact encoding
// of its parameter types, used to distinguish same-named overloads.
func (d *FuncDecl) MangledName() string {
	var b strings.Builder
	b.WriteString(d.Name)
	for _, p := range d.Params {
		if tag, ok := mangleTags[p.Type.ID]; ok {
			b.WriteString(tag)
		}
	}
	return b.String()
}

// ModuleExportDecl is the `module <name>;` declaration; at most one per
// module.
type ModuleExportDecl struct {
	Name     string // dotted identifier path, e.g. "foo.bar"
	Location token.Location
}

func (d *ModuleExportDecl) Loc() token.Location { return d.Location }
func (*ModuleExportDecl) declNode()              {}

// Identifiers splits the dotted module path into its components, used by
// the code generator to build nested namespaces.
func (d *ModuleExportDecl) Identifiers() []string {
	return strings.Split(d.Name, ".")
}

// ModuleImportDecl is an `import <name>;` declaration. Parsed but not
// semantically linked; cross-module resolution is out of scope.
type ModuleImportDecl struct {
	Name     string
	Location token.Location
}

func (d *ModuleImportDecl) Loc() token.Location { return d.Location }
func (*ModuleImportDecl) declNode()              {}
