// Package ir is the in-memory intermediate representation of a PT module:
// declarations, statements, expressions and types.
package ir

import "fmt"

// TypeID names a PT builtin type.
type TypeID int

const (
	Void TypeID = iota
	Bool
	Int
	Float
	Vec2
	Vec3
	Vec4
	Vec2i
	Vec3i
	Vec4i
	Mat2
	Mat3
	Mat4
)

var typeIDNames = map[TypeID]string{
	Void: "void", Bool: "bool", Int: "int", Float: "float",
	Vec2: "vec2", Vec3: "vec3", Vec4: "vec4",
	Vec2i: "vec2i", Vec3i: "vec3i", Vec4i: "vec4i",
	Mat2: "mat2", Mat3: "mat3", Mat4: "mat4",
}

func (t TypeID) String() string {
	if s, ok := typeIDNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TypeID(%d)", int(t))
}

// Variability classifies where a value of a Type lives in the
// per-frame/uniform vs. per-pixel/varying split.
type Variability int

const (
	Unbound Variability = iota
	Uniform
	Varying
)

func (v Variability) String() string {
	switch v {
	case Uniform:
		return "uniform"
	case Varying:
		return "varying"
	default:
		return "unbound"
	}
}

// Type is the pair (TypeID, Variability). Equality is component-wise;
// printing is "<variability> <typeid>".
type Type struct {
	ID          TypeID
	Variability Variability
}

func T(id TypeID, v Variability) Type { return Type{ID: id, Variability: v} }

func (t Type) String() string { return fmt.Sprintf("%s %s", t.Variability, t.ID) }

func (t Type) Equal(o Type) bool { return t.ID == o.ID && t.Variability == o.Variability }

// IsVectorOrMatrix reports whether t's TypeID names a vector or matrix type.
func (t Type) IsVectorOrMatrix() bool {
	switch t.ID {
	case Vec2, Vec3, Vec4, Vec2i, Vec3i, Vec4i, Mat2, Mat3, Mat4:
		return true
	}
	return false
}

// IsIntVector reports whether t's TypeID names one of the integer vector
// types.
func (t Type) IsIntVector() bool {
	switch t.ID {
	case Vec2i, Vec3i, Vec4i:
		return true
	}
	return false
}

// IsFloatVector reports whether t's TypeID names one of the float vector
// types.
func (t Type) IsFloatVector() bool {
	switch t.ID {
	case Vec2, Vec3, Vec4:
		return true
	}
	return false
}

// IsMatrix reports whether t's TypeID names a matrix type.
func (t Type) IsMatrix() bool {
	switch t.ID {
	case Mat2, Mat3, Mat4:
		return true
	}
	return false
}

// VectorComponentCount returns the number of scalar components in t's
// vector type. It is undefined (returns 0, false) for scalars and
// matrices.
func (t Type) VectorComponentCount() (int, bool) {
	switch t.ID {
	case Vec2, Vec2i:
		return 2, true
	case Vec3, Vec3i:
		return 3, true
	case Vec4, Vec4i:
		return 4, true
	}
	return 0, false
}

// ScalarComponentType returns the scalar TypeID of a vector's components:
// Float for the float-family vectors, Int for the int-family vectors.
func (t Type) ScalarComponentType() TypeID {
	if t.IsIntVector() {
		return Int
	}
	return Float
}

// VectorTypeFor returns the vector TypeID of the given scalar family and
// component count (2..4), used by the swizzle and common-type rules.
func VectorTypeFor(scalar TypeID, n int) (TypeID, bool) {
	if scalar == Int {
		switch n {
		case 2:
			return Vec2i, true
		case 3:
			return Vec3i, true
		case 4:
			return Vec4i, true
		}
		return Void, false
	}
	switch n {
	case 2:
		return Vec2, true
	case 3:
		return Vec3, true
	case 4:
		return Vec4, true
	}
	return Void, false
}
