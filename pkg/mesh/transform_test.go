package mesh

import (
	"testing"

	"github.com/philipparndt/goobj/internal/meshtest"
	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func loadCube(t *testing.T) *Mesh {
	t.Helper()
	m := New()
	require.NoError(t, m.Load(meshtest.WriteOBJ(t, meshtest.CubeOBJ)))
	return m
}

func snapshot(m *Mesh) []geometry.Vector3 {
	return append([]geometry.Vector3(nil), m.Vertices()...)
}

func assertVerticesNear(t *testing.T, expected, actual []geometry.Vector3) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.Truef(t, expected[i].ApproxEqual(actual[i], tolerance),
			"vertex %d: expected %v, got %v", i, expected[i], actual[i])
	}
}

func TestRotateSingleAxis(t *testing.T) {
	tests := []struct {
		name     string
		rotate   func(m *Mesh)
		input    geometry.Vector3
		expected geometry.Vector3
	}{
		{"x 90 moves y to z", func(m *Mesh) { m.RotateX(90) }, geometry.NewVector3(1, 1, 0), geometry.NewVector3(1, 0, 1)},
		{"y 90 moves z to x", func(m *Mesh) { m.RotateY(90) }, geometry.NewVector3(0, 2, 1), geometry.NewVector3(1, 2, 0)},
		{"z 90 moves x to y", func(m *Mesh) { m.RotateZ(90) }, geometry.NewVector3(1, 0, 3), geometry.NewVector3(0, 1, 3)},
		{"z -90 moves x to -y", func(m *Mesh) { m.RotateZ(-90) }, geometry.NewVector3(1, 0, 0), geometry.NewVector3(0, -1, 0)},
		{"x 180 flips y and z", func(m *Mesh) { m.RotateX(180) }, geometry.NewVector3(5, 1, 2), geometry.NewVector3(5, -1, -2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FromData([]geometry.Vector3{tt.input}, nil)
			tt.rotate(m)
			assertVerticesNear(t, []geometry.Vector3{tt.expected}, m.Vertices())
		})
	}
}

func TestRotateFullTurnIsIdentity(t *testing.T) {
	m := loadCube(t)
	original := snapshot(m)

	m.RotateZ(360)
	assertVerticesNear(t, original, m.Vertices())

	m.RotateX(360)
	m.RotateY(360)
	assertVerticesNear(t, original, m.Vertices())
}

func TestRotateInverse(t *testing.T) {
	m := loadCube(t)
	original := snapshot(m)

	for _, angle := range []float64{17.5, 45, 90, 123.4, -260} {
		m.RotateX(angle)
		m.RotateX(-angle)
		m.RotateY(angle)
		m.RotateY(-angle)
		m.RotateZ(angle)
		m.RotateZ(-angle)
	}
	assertVerticesNear(t, original, m.Vertices())
}

func TestRotateAppliesXThenYThenZ(t *testing.T) {
	combined := FromData([]geometry.Vector3{geometry.NewVector3(1, 2, 3)}, nil)
	combined.Rotate(90, 90, 0)

	// X 90: (1,2,3) -> (1,-3,2); Y 90: -> (2,-3,-1)
	assertVerticesNear(t, []geometry.Vector3{geometry.NewVector3(2, -3, -1)}, combined.Vertices())

	reversed := FromData([]geometry.Vector3{geometry.NewVector3(1, 2, 3)}, nil)
	reversed.RotateY(90)
	reversed.RotateX(90)
	assert.False(t, reversed.Vertices()[0].ApproxEqual(combined.Vertices()[0], tolerance))
}

func TestTranslateRoundTrip(t *testing.T) {
	m := loadCube(t)
	original := snapshot(m)

	m.Translate(0.25, -3, 12.5)
	assert.True(t, m.Vertices()[0].ApproxEqual(geometry.NewVector3(0.25, -3, 12.5), tolerance))

	m.Translate(-0.25, 3, -12.5)
	assertVerticesNear(t, original, m.Vertices())
}

func TestTransformsKeepFaces(t *testing.T) {
	m := loadCube(t)
	faces := append([]geometry.Face(nil), m.Faces()...)

	m.Rotate(10, 20, 30)
	m.Translate(1, 2, 3)

	assert.Equal(t, faces, m.Faces())
}

func TestCenterAtOrigin(t *testing.T) {
	m := loadCube(t)

	offset := m.CenterAtOrigin()
	assert.True(t, offset.ApproxEqual(geometry.NewVector3(-0.5, -0.5, -0.5), tolerance))
	assert.True(t, m.Center().ApproxEqual(geometry.Vector3{}, tolerance))
}

func TestTransformsOnEmptyMesh(t *testing.T) {
	m := New()
	m.Rotate(10, 20, 30)
	m.Translate(1, 2, 3)
	assert.True(t, m.IsEmpty())
}
