package mesh

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/goobj/pkg/geometry"
)

// RotateX rotates every vertex about the X axis. Angles are in degrees,
// right-handed.
func (m *Mesh) RotateX(angle float64) {
	m.apply(mgl64.Rotate3DX(mgl64.DegToRad(angle)))
}

// RotateY rotates every vertex about the Y axis
func (m *Mesh) RotateY(angle float64) {
	m.apply(mgl64.Rotate3DY(mgl64.DegToRad(angle)))
}

// RotateZ rotates every vertex about the Z axis
func (m *Mesh) RotateZ(angle float64) {
	m.apply(mgl64.Rotate3DZ(mgl64.DegToRad(angle)))
}

// Rotate applies RotateX, RotateY and RotateZ in that order, each to the
// result of the previous one.
func (m *Mesh) Rotate(angleX, angleY, angleZ float64) {
	m.RotateX(angleX)
	m.RotateY(angleY)
	m.RotateZ(angleZ)
}

// Translate moves every vertex by the given offset
func (m *Mesh) Translate(dx, dy, dz float64) {
	offset := geometry.NewVector3(dx, dy, dz)
	for i := range m.vertices {
		m.vertices[i] = m.vertices[i].Add(offset)
	}
}

// CenterAtOrigin translates the mesh so its bounding-box center is at the
// origin and returns the applied offset
func (m *Mesh) CenterAtOrigin() geometry.Vector3 {
	offset := m.Center().Mul(-1)
	m.Translate(offset.X, offset.Y, offset.Z)
	return offset
}

func (m *Mesh) apply(rotation mgl64.Mat3) {
	for i, v := range m.vertices {
		m.vertices[i] = geometry.FromVec3(rotation.Mul3x1(v.Vec3()))
	}
}
