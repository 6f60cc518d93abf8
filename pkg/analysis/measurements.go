package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/goobj/pkg/geometry"
)

// Source is a read-only view of a mesh
type Source interface {
	Vertices() []geometry.Vector3
	Faces() []geometry.Face
}

// MeasurementResult contains the derived quantities of a mesh
type MeasurementResult struct {
	BoundingBox     geometry.BoundingBox `json:"boundingBox"`
	Dimensions      geometry.Vector3     `json:"dimensions"`
	Volume          float64              `json:"volume"`
	ProjectedArea   float64              `json:"projectedArea"`
	SurfaceArea     float64              `json:"surfaceArea"`
	VertexCount     int                  `json:"vertexCount"`
	FaceCount       int                  `json:"faceCount"`
	TriangleCount   int                  `json:"triangleCount"`
	DegenerateFaces int                  `json:"degenerateFaces"`
	Options         Options              `json:"options"`
}

// AnalyzeMesh computes every measurement of a mesh
func AnalyzeMesh(src Source, opts Options) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:   Bounds(src),
		Volume:        Volume(src),
		ProjectedArea: ProjectionArea(src, opts),
		VertexCount:   len(src.Vertices()),
		FaceCount:     len(src.Faces()),
		Options:       opts,
	}
	result.Dimensions = result.BoundingBox.Size()

	vertices := src.Vertices()
	for _, face := range src.Faces() {
		if face.IsDegenerate() {
			result.DegenerateFaces++
			continue
		}
		for _, tri := range face.Fan(vertices) {
			result.TriangleCount++
			result.SurfaceArea += tri.Area()
		}
	}

	return result
}

// Bounds returns the axis-aligned bounding box of all vertices. It is
// empty when there are no vertices.
func Bounds(src Source) geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range src.Vertices() {
		bbox.Extend(v)
	}
	return bbox
}

// Dimensions returns the bounding-box extent (width, height, depth).
// An empty mesh has zero dimensions.
func Dimensions(src Source) geometry.Vector3 {
	return Bounds(src).Size()
}

// Volume returns the enclosed volume by the divergence theorem: the sum of
// signed tetrahedra between the origin and each face. Only the first
// triangle of every face contributes, so the result is exact for triangle
// meshes only.
func Volume(src Source) float64 {
	vertices := src.Vertices()
	volume := 0.0
	for _, face := range src.Faces() {
		tri, ok := face.FirstTriangle(vertices)
		if !ok {
			continue
		}
		volume += tri.SignedVolume()
	}
	return math.Abs(volume) / 6.0
}

// ProjectionArea returns the area projected onto the XY plane using the
// configured algorithm
func ProjectionArea(src Source, opts Options) float64 {
	if opts.Area == AreaFlat {
		return FlatProjectionArea(src)
	}
	return NormalProjectionArea(src, opts.Cosine)
}

// FlatProjectionArea sums the XY shoelace area of the first triangle of
// every face. Z is ignored, so it is only meaningful for faces that are
// already flat in XY.
func FlatProjectionArea(src Source) float64 {
	vertices := src.Vertices()
	area := 0.0
	for _, face := range src.Faces() {
		tri, ok := face.FirstTriangle(vertices)
		if !ok {
			continue
		}
		area += tri.FlatAreaXY()
	}
	return area
}

// NormalProjectionArea fan-triangulates every face and sums each
// triangle's area times the cosine between its normal and +Z
func NormalProjectionArea(src Source, policy CosinePolicy) float64 {
	vertices := src.Vertices()
	area := 0.0
	for _, face := range src.Faces() {
		for _, tri := range face.Fan(vertices) {
			area += projectedTriangleArea(tri, policy)
		}
	}
	return area
}

func projectedTriangleArea(tri geometry.Triangle, policy CosinePolicy) float64 {
	cos := tri.CosZ()
	if policy == CosineUnsigned {
		return tri.Area() * math.Abs(cos)
	}
	if cos > 0 {
		return tri.Area() * cos
	}
	return 0
}

// FindNearestVertex finds the vertex nearest to a given point. index is -1
// for an empty mesh.
func FindNearestVertex(src Source, point geometry.Vector3) (index int, vertex geometry.Vector3, distance float64) {
	index = -1
	distance = math.MaxFloat64
	for i, v := range src.Vertices() {
		if d := point.Distance(v); d < distance {
			index, vertex, distance = i, v, d
		}
	}
	if index < 0 {
		return -1, geometry.Vector3{}, 0
	}
	return index, vertex, distance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
