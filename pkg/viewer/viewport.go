package viewer

import (
	"math"

	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/philipparndt/goobj/pkg/mesh"
)

// PickRadius is the maximum screen distance in pixels for Pick to select
// a vertex
const PickRadius = 10.0

// Viewport is a headless presentation adapter. It owns the mesh, forwards
// queries and transforms to it, and keeps the view state a renderer would
// draw from.
type Viewport struct {
	Camera *Camera

	mesh          *mesh.Mesh
	opts          analysis.Options
	selected      int
	listeners     []func()
	onPointSelect func(index int, vertex geometry.Vector3)
}

// NewViewport creates a viewport around m
func NewViewport(m *mesh.Mesh, opts analysis.Options) *Viewport {
	return &Viewport{
		Camera:   NewCamera(),
		mesh:     m,
		opts:     opts,
		selected: -1,
	}
}

// Mesh returns the owned mesh
func (v *Viewport) Mesh() *mesh.Mesh {
	return v.mesh
}

// OnChange registers a callback run after every load, transform or view
// change
func (v *Viewport) OnChange(callback func()) {
	v.listeners = append(v.listeners, callback)
}

// SetOnPointSelect sets the callback for when Pick selects a vertex
func (v *Viewport) SetOnPointSelect(callback func(index int, vertex geometry.Vector3)) {
	v.onPointSelect = callback
}

func (v *Viewport) notify() {
	for _, callback := range v.listeners {
		callback()
	}
}

// Load loads a model and fits the view scale to it. On failure the mesh is
// empty and the scale is unchanged.
func (v *Viewport) Load(path string) error {
	v.selected = -1
	if err := v.mesh.Load(path); err != nil {
		v.notify()
		return err
	}
	v.Camera.FitTo(v.Dimensions())
	v.notify()
	return nil
}

// Dimensions returns the model's bounding-box extent
func (v *Viewport) Dimensions() geometry.Vector3 {
	return analysis.Dimensions(v.mesh)
}

// Volume returns the model's enclosed volume
func (v *Viewport) Volume() float64 {
	return analysis.Volume(v.mesh)
}

// ProjectionArea returns the model's XY-projected area
func (v *Viewport) ProjectionArea() float64 {
	return analysis.ProjectionArea(v.mesh, v.opts)
}

// Analyze returns all measurements of the current model
func (v *Viewport) Analyze() *analysis.MeasurementResult {
	return analysis.AnalyzeMesh(v.mesh, v.opts)
}

// RotateModel rotates the model itself, X then Y then Z, in degrees
func (v *Viewport) RotateModel(angleX, angleY, angleZ float64) {
	v.mesh.Rotate(angleX, angleY, angleZ)
	v.notify()
}

// TranslateModel moves the model by the given offset in meters
func (v *Viewport) TranslateModel(dx, dy, dz float64) {
	v.mesh.Translate(dx, dy, dz)
	v.notify()
}

// Drag rotates the view (not the model) by a mouse drag in pixels
func (v *Viewport) Drag(dx, dy float64) {
	v.Camera.Rotate(dx, dy)
}

// Step advances the eased view rotation by one tick. It reports whether
// the view is still moving.
func (v *Viewport) Step() bool {
	moving := v.Camera.Step()
	v.notify()
	return moving
}

// SetRotationSpeed changes how fast Step converges
func (v *Viewport) SetRotationSpeed(speed float64) {
	v.Camera.Speed = speed
}

// Zoom changes the view scale by the given number of wheel steps
func (v *Viewport) Zoom(steps int) {
	v.Camera.Zoom(steps)
	v.notify()
}

// Pick selects the vertex whose projection is nearest to the screen
// position, if it lies within PickRadius. It returns the selected index or
// -1 when nothing is close enough; a miss keeps the previous selection.
func (v *Viewport) Pick(screenX, screenY, width, height float64) int {
	closest := -1
	minDist := PickRadius

	for i, vertex := range v.mesh.Vertices() {
		x, y, _ := v.Camera.Project(vertex, width, height)
		if dist := math.Hypot(x-screenX, y-screenY); dist < minDist {
			minDist = dist
			closest = i
		}
	}

	if closest < 0 {
		return -1
	}

	v.selected = closest
	if v.onPointSelect != nil {
		v.onPointSelect(closest, v.mesh.Vertices()[closest])
	}
	v.notify()
	return closest
}

// Selected returns the selected vertex index, or -1
func (v *Viewport) Selected() int {
	return v.selected
}

// ClearSelection clears the selected vertex
func (v *Viewport) ClearSelection() {
	v.selected = -1
	v.notify()
}
