package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"knotscene/internal/mathutil"
)

// Camera is a perspective camera looking down -Z from Position.
type Camera struct {
	FOV      float64 // vertical, degrees
	Aspect   float64
	Near     float64
	Far      float64
	Position mathutil.Vec3

	projection mgl64.Mat4
}

// NewPerspectiveCamera returns a camera with its projection already built.
func NewPerspectiveCamera(fov, aspect, near, far float64) Camera {
	c := Camera{FOV: fov, Aspect: aspect, Near: near, Far: far}
	c.UpdateProjection()
	return c
}

// UpdateProjection rebuilds the projection matrix after FOV, Aspect, Near
// or Far change.
func (c *Camera) UpdateProjection() {
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// Projection returns the last matrix built by UpdateProjection.
func (c Camera) Projection() mgl64.Mat4 {
	return c.projection
}

// View returns the world-to-camera matrix.
func (c Camera) View() mgl64.Mat4 {
	return mgl64.Translate3D(-c.Position[0], -c.Position[1], -c.Position[2])
}

// ViewProjection returns Projection × View.
func (c Camera) ViewProjection() mgl64.Mat4 {
	return c.projection.Mul4(c.View())
}
