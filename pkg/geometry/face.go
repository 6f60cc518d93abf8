package geometry

// Face is an ordered list of zero-based indices into a vertex slice
type Face []int

// IsDegenerate reports whether the face has fewer than three indices.
// Degenerate faces are kept by the loader but ignored by every measurement.
func (f Face) IsDegenerate() bool {
	return len(f) < 3
}

// InRange reports whether every index is valid for n vertices
func (f Face) InRange(n int) bool {
	for _, idx := range f {
		if idx < 0 || idx >= n {
			return false
		}
	}
	return true
}

// FirstTriangle returns the triangle formed by the first three indices.
// ok is false for degenerate faces.
func (f Face) FirstTriangle(vertices []Vector3) (tri Triangle, ok bool) {
	if f.IsDegenerate() {
		return Triangle{}, false
	}
	return NewTriangle(vertices[f[0]], vertices[f[1]], vertices[f[2]]), true
}

// Fan triangulates the face from its first vertex:
// (v0, v1, v2), (v0, v2, v3), ... Degenerate faces yield nothing.
func (f Face) Fan(vertices []Vector3) []Triangle {
	if f.IsDegenerate() {
		return nil
	}
	triangles := make([]Triangle, 0, len(f)-2)
	v0 := vertices[f[0]]
	for i := 1; i+1 < len(f); i++ {
		triangles = append(triangles, NewTriangle(v0, vertices[f[i]], vertices[f[i+1]]))
	}
	return triangles
}
