package analysis

import (
	"sort"

	"github.com/philipparndt/goobj/pkg/geometry"
)

// FaceInfo holds the measurements of a single face
type FaceInfo struct {
	Index         int     `json:"index"`
	VertexCount   int     `json:"vertexCount"`
	Area          float64 `json:"area"`
	ProjectedArea float64 `json:"projectedArea"`
	Perimeter     float64 `json:"perimeter"`
}

// FaceProjectionArea returns one face's contribution to ProjectionArea
func FaceProjectionArea(face geometry.Face, vertices []geometry.Vector3, opts Options) float64 {
	if opts.Area == AreaFlat {
		tri, ok := face.FirstTriangle(vertices)
		if !ok {
			return 0
		}
		return tri.FlatAreaXY()
	}

	area := 0.0
	for _, tri := range face.Fan(vertices) {
		area += projectedTriangleArea(tri, opts.Cosine)
	}
	return area
}

// AnalyzeFaces measures every non-degenerate face in declaration order
func AnalyzeFaces(src Source, opts Options) []FaceInfo {
	vertices := src.Vertices()
	faces := make([]FaceInfo, 0, len(src.Faces()))

	for i, face := range src.Faces() {
		if face.IsDegenerate() {
			continue
		}

		info := FaceInfo{
			Index:         i,
			VertexCount:   len(face),
			ProjectedArea: FaceProjectionArea(face, vertices, opts),
		}
		for _, tri := range face.Fan(vertices) {
			info.Area += tri.Area()
		}
		for j, idx := range face {
			next := face[(j+1)%len(face)]
			info.Perimeter += vertices[idx].Distance(vertices[next])
		}

		faces = append(faces, info)
	}

	return faces
}

// SortFacesByArea sorts faces by area, largest first when descending.
// Equal areas keep declaration order.
func SortFacesByArea(faces []FaceInfo, descending bool) {
	sort.SliceStable(faces, func(i, j int) bool {
		if descending {
			return faces[i].Area > faces[j].Area
		}
		return faces[i].Area < faces[j].Area
	})
}
