package typecheck

// swizzleIndex maps a swizzle character to its vector component index.
var swizzleIndex = map[byte]int{
	'r': 0, 'g': 1, 'b': 2, 'a': 3,
	'x': 0, 'y': 1, 'z': 2, 'w': 3,
}

// ParseSwizzle maps a member-access pattern (e.g. "xy", "bgra") onto
// component indices of a vector with vecSize components. It fails if the
// pattern is empty, longer than 4 characters, contains a character outside
// the two recognized letter families, or names a component past vecSize.
func ParseSwizzle(pattern string, vecSize int) ([]int, bool) {
	if len(pattern) == 0 || len(pattern) > 4 {
		return nil, false
	}

	indices := make([]int, 0, len(pattern))
	for i := 0; i < len(pattern); i++ {
		idx, ok := swizzleIndex[pattern[i]]
		if !ok {
			return nil, false
		}
		if idx >= vecSize {
			return nil, false
		}
		indices = append(indices, idx)
	}
	return indices, true
}
