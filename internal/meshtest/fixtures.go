// Package meshtest holds OBJ fixtures shared by the package tests.
package meshtest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CubeOBJ is a 1000 mm cube with outward-facing triangles, two per side
const CubeOBJ = `# unit cube in millimeters
v 0 0 0
v 1000 0 0
v 1000 1000 0
v 0 1000 0
v 0 0 1000
v 1000 0 1000
v 1000 1000 1000
v 0 1000 1000
# bottom
f 1 3 2
f 1 4 3
# top
f 5 6 7
f 5 7 8
# front
f 1 2 6
f 1 6 5
# back
f 4 8 7
f 4 7 3
# left
f 1 5 8
f 1 8 4
# right
f 2 3 7
f 2 7 6
`

// QuadCubeOBJ is the same cube written with one quad per side
const QuadCubeOBJ = `v 0 0 0
v 1000 0 0
v 1000 1000 0
v 0 1000 0
v 0 0 1000
v 1000 0 1000
v 1000 1000 1000
v 0 1000 1000
f 1 4 3 2
f 5 6 7 8
f 1 2 6 5
f 4 8 7 3
f 1 5 8 4
f 2 3 7 6
`

// TiltedSquareOBJ is a 1 m square from the XY plane tilted 60 degrees
// about X, so its shadow on XY is 0.5 m². Written in raw meters.
const TiltedSquareOBJ = `v 0 0 0
v 1 0 0
v 1 0.5 0.8660254037844386
v 0 0.5 0.8660254037844386
f 1 2 3 4
`

// WriteOBJ writes content to a temporary .obj file and returns its path
func WriteOBJ(t testing.TB, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.obj")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
