package viewer

import (
	"math"

	"github.com/philipparndt/goobj/pkg/geometry"
)

const (
	// FitSize is the on-screen size in pixels of the largest model dimension
	// after FitTo
	FitSize = 200.0
	// ZoomFactor is the scale change per zoom step
	ZoomFactor = 1.1
	// DefaultSpeed is the nominal easing speed
	DefaultSpeed = 10.0
	// DefaultSensitivity is the view rotation in radians per dragged pixel
	DefaultSensitivity = 0.01

	easing    = 0.1
	settleEps = 1e-6
	minScale  = 1e-9
)

// Camera is an orthographic view of the model. The view rotation eases
// toward a target set by dragging; Step advances it by one tick.
type Camera struct {
	RotationX float64 // Rotation around X axis (vertical drag), radians
	RotationY float64 // Rotation around Y axis (horizontal drag), radians
	TargetX   float64
	TargetY   float64

	Speed       float64
	Sensitivity float64
	Scale       float64 // pixels per meter
}

// NewCamera creates a camera with no rotation and unit scale
func NewCamera() *Camera {
	return &Camera{
		Speed:       DefaultSpeed,
		Sensitivity: DefaultSensitivity,
		Scale:       1.0,
	}
}

// FitTo sets the scale so the largest dimension spans FitSize pixels.
// Zero-sized models leave the scale unchanged.
func (c *Camera) FitTo(dimensions geometry.Vector3) {
	if maxDim := dimensions.MaxComponent(); maxDim > 0 {
		c.Scale = FitSize / maxDim
	}
}

// Rotate moves the rotation target by a drag of dx, dy pixels
func (c *Camera) Rotate(dx, dy float64) {
	c.TargetX += dy * c.Sensitivity
	c.TargetY += dx * c.Sensitivity
}

// Step eases the rotation toward the target and reports whether it is
// still moving
func (c *Camera) Step() bool {
	deltaX := (c.TargetX - c.RotationX) * easing * c.Speed / DefaultSpeed
	deltaY := (c.TargetY - c.RotationY) * easing * c.Speed / DefaultSpeed

	c.RotationX += deltaX
	c.RotationY += deltaY

	return math.Abs(c.TargetX-c.RotationX) > settleEps || math.Abs(c.TargetY-c.RotationY) > settleEps
}

// Zoom scales the view by ZoomFactor per step; negative steps zoom out
func (c *Camera) Zoom(steps int) {
	c.Scale *= math.Pow(ZoomFactor, float64(steps))
	if c.Scale < minScale {
		c.Scale = minScale
	}
}

// Project maps a model point to screen coordinates for a viewport of the
// given size. Y grows downward on screen; depth grows away from the viewer.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (x, y, depth float64) {
	sinY, cosY := math.Sincos(c.RotationY)
	sinX, cosX := math.Sincos(c.RotationX)

	rx := point.X*cosY - point.Z*sinY
	rz := point.X*sinY + point.Z*cosY
	ry := point.Y*cosX - rz*sinX
	depth = point.Y*sinX + rz*cosX

	x = rx*c.Scale + width/2
	y = height/2 - ry*c.Scale
	return x, y, depth
}
