package analysis

import (
	"testing"

	"github.com/philipparndt/goobj/internal/meshtest"
	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/philipparndt/goobj/pkg/mesh"
	"github.com/philipparndt/goobj/pkg/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeFacesQuadCube(t *testing.T) {
	m := load(t, meshtest.QuadCubeOBJ, obj.DefaultOptions())

	faces := AnalyzeFaces(m, DefaultOptions())
	require.Len(t, faces, 6)

	total := 0.0
	for i, f := range faces {
		assert.Equal(t, i, f.Index)
		assert.Equal(t, 4, f.VertexCount)
		assert.InDelta(t, 1.0, f.Area, tolerance)
		assert.InDelta(t, 4.0, f.Perimeter, tolerance)
		total += f.ProjectedArea
	}

	// only the top face points up
	assert.InDelta(t, 1.0, faces[1].ProjectedArea, tolerance)
	assert.InDelta(t, NormalProjectionArea(m, CosineFrontFacing), total, tolerance)
}

func TestAnalyzeFacesTiltedSquare(t *testing.T) {
	m := load(t, meshtest.TiltedSquareOBJ, obj.Options{Scale: 1})

	faces := AnalyzeFaces(m, DefaultOptions())
	require.Len(t, faces, 1)
	assert.InDelta(t, 1.0, faces[0].Area, 1e-12)
	assert.InDelta(t, 0.5, faces[0].ProjectedArea, 1e-12)
	assert.InDelta(t, 4.0, faces[0].Perimeter, 1e-12)

	flat := AnalyzeFaces(m, Options{Area: AreaFlat})
	assert.InDelta(t, 0.25, flat[0].ProjectedArea, 1e-12)
}

func TestAnalyzeFacesSkipsDegenerate(t *testing.T) {
	m := mesh.FromData(
		[]geometry.Vector3{{X: 0}, {X: 1}, {Y: 1}},
		[]geometry.Face{{0, 1}, {0, 1, 2}},
	)

	faces := AnalyzeFaces(m, DefaultOptions())
	require.Len(t, faces, 1)
	assert.Equal(t, 1, faces[0].Index)
	assert.InDelta(t, 0.5, faces[0].Area, tolerance)
	assert.InDelta(t, 0.5, faces[0].ProjectedArea, tolerance)
}

func TestSortFacesByArea(t *testing.T) {
	faces := []FaceInfo{
		{Index: 0, Area: 2},
		{Index: 1, Area: 5},
		{Index: 2, Area: 1},
		{Index: 3, Area: 5},
	}

	SortFacesByArea(faces, true)
	assert.Equal(t, []int{1, 3, 0, 2}, indices(faces))

	SortFacesByArea(faces, false)
	assert.Equal(t, []int{2, 0, 1, 3}, indices(faces))
}

func indices(faces []FaceInfo) []int {
	out := make([]int, len(faces))
	for i, f := range faces {
		out[i] = f.Index
	}
	return out
}
