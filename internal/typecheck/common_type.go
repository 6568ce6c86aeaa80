package typecheck

import "github.com/tay10r/pathway/internal/ir"

// commonTypeTable lists every unordered pair of TypeIDs that implicitly
// convert to a third (usually one of the pair). Looked up symmetrically:
// (a, b) and (b, a) both resolve.
var commonTypeTable = map[[2]ir.TypeID]ir.TypeID{
	{ir.Int, ir.Bool}:   ir.Int,
	{ir.Float, ir.Int}:  ir.Float,
	{ir.Int, ir.Vec2i}:  ir.Vec2i,
	{ir.Int, ir.Vec3i}:  ir.Vec3i,
	{ir.Int, ir.Vec4i}:  ir.Vec4i,
	{ir.Float, ir.Vec2}: ir.Vec2,
	{ir.Float, ir.Vec3}: ir.Vec3,
	{ir.Float, ir.Vec4}: ir.Vec4,
	{ir.Float, ir.Mat2}: ir.Mat2,
	{ir.Float, ir.Mat3}: ir.Mat3,
	{ir.Float, ir.Mat4}: ir.Mat4,
}

// CommonType looks up the type that a and b both implicitly convert to.
// Equal IDs always succeed, trivially. The lookup is symmetric: the
// argument order does not matter.
func CommonType(a, b ir.TypeID) (ir.TypeID, bool) {
	if a == b {
		return a, true
	}
	if id, ok := commonTypeTable[[2]ir.TypeID{a, b}]; ok {
		return id, true
	}
	if id, ok := commonTypeTable[[2]ir.TypeID{b, a}]; ok {
		return id, true
	}
	return ir.Void, false
}
