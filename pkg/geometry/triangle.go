package geometry

import "math"

// Triangle is a single triangle taken from a mesh face
type Triangle struct {
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(v1, v2, v3 Vector3) Triangle {
	return Triangle{V1: v1, V2: v2, V3: v3}
}

// AreaVector returns (V2-V1) x (V3-V1). Its length is twice the area and
// its direction follows the winding order.
func (t Triangle) AreaVector() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2)
}

// Normal returns the unit normal, or the zero vector for a degenerate triangle
func (t Triangle) Normal() Vector3 {
	return t.AreaVector().Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return t.AreaVector().Length() / 2.0
}

// SignedVolume returns the determinant of the matrix whose rows are the
// three vertices, i.e. six times the signed volume of the tetrahedron
// spanned by the triangle and the origin.
func (t Triangle) SignedVolume() float64 {
	v0, v1, v2 := t.V1, t.V2, t.V3
	return v0.X*v1.Y*v2.Z + v1.X*v2.Y*v0.Z + v2.X*v0.Y*v1.Z -
		v0.Z*v1.Y*v2.X - v1.Z*v2.Y*v0.X - v2.Z*v0.Y*v1.X
}

// FlatAreaXY returns the area of the triangle's shadow on the XY plane,
// computed from the 2D cross product with Z ignored.
func (t Triangle) FlatAreaXY() float64 {
	return math.Abs((t.V2.X-t.V1.X)*(t.V3.Y-t.V1.Y)-(t.V3.X-t.V1.X)*(t.V2.Y-t.V1.Y)) / 2.0
}

// CosZ returns the cosine of the angle between the triangle normal and +Z.
// Degenerate triangles return 0.
func (t Triangle) CosZ() float64 {
	return t.Normal().Dot(UnitZ)
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return Vector3{
		X: (t.V1.X + t.V2.X + t.V3.X) / 3.0,
		Y: (t.V1.Y + t.V2.Y + t.V3.Y) / 3.0,
		Z: (t.V1.Z + t.V2.Z + t.V3.Z) / 3.0,
	}
}
