package mesh

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/philipparndt/goobj/pkg/obj"
)

// Mesh owns the vertices and faces of one loaded model.
// It is not safe for concurrent mutation.
type Mesh struct {
	vertices    []geometry.Vector3
	faces       []geometry.Face
	diagnostics []obj.Diagnostic
	opts        obj.Options
}

// New creates an empty mesh that loads millimeter OBJ files
func New() *Mesh {
	return NewWithOptions(obj.DefaultOptions())
}

// NewWithOptions creates an empty mesh with the given parser options
func NewWithOptions(opts obj.Options) *Mesh {
	return &Mesh{
		vertices: make([]geometry.Vector3, 0),
		faces:    make([]geometry.Face, 0),
		opts:     opts,
	}
}

// FromData creates a mesh from already-parsed data. Faces are used as
// given; callers are responsible for index validity.
func FromData(vertices []geometry.Vector3, faces []geometry.Face) *Mesh {
	m := New()
	m.vertices = append(m.vertices, vertices...)
	m.faces = append(m.faces, faces...)
	return m
}

// Load replaces the mesh contents with the OBJ file at path.
// The previous contents are discarded first, so a failed load leaves the
// mesh empty.
func (m *Mesh) Load(path string) error {
	m.reset()

	start := time.Now()
	data, err := obj.ParseFile(path, m.opts)
	if err != nil {
		return fmt.Errorf("failed to load mesh: %w", err)
	}

	m.vertices = data.Vertices
	m.faces = data.Faces
	m.diagnostics = data.Diagnostics

	for _, d := range m.diagnostics {
		slog.Warn("skipped OBJ record", "file", path, "line", d.Line, "kind", d.Kind.String(), "error", d.Err)
	}
	slog.Debug("mesh loaded", "file", path, "vertices", len(m.vertices), "faces", len(m.faces),
		"elapsed", time.Since(start))

	return nil
}

func (m *Mesh) reset() {
	m.vertices = m.vertices[:0]
	m.faces = m.faces[:0]
	m.diagnostics = nil
}

// Vertices returns the vertex slice. It must not be modified.
func (m *Mesh) Vertices() []geometry.Vector3 {
	return m.vertices
}

// Faces returns the face slice. It must not be modified.
func (m *Mesh) Faces() []geometry.Face {
	return m.faces
}

// Diagnostics returns the records skipped or dropped by the last Load
func (m *Mesh) Diagnostics() []obj.Diagnostic {
	return m.diagnostics
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// FaceCount returns the number of faces, degenerate ones included
func (m *Mesh) FaceCount() int {
	return len(m.faces)
}

// IsEmpty reports whether the mesh has no vertices
func (m *Mesh) IsEmpty() bool {
	return len(m.vertices) == 0
}

// BoundingBox calculates the bounding box of all vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.vertices {
		bbox.Extend(v)
	}
	return bbox
}

// Center returns the center of the bounding box
func (m *Mesh) Center() geometry.Vector3 {
	return m.BoundingBox().Center()
}
