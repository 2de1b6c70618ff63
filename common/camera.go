package common

import "github.com/chewxy/math32"

// Camera is a perspective camera. FovY is the vertical field of view in
// degrees and Aspect is width/height.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3
	FovY     float32
	Aspect   float32
	Near     float32
	Far      float32
}

// DefaultCamera looks down -Z at the origin from distance z.
func DefaultCamera(z float32) Camera {
	return Camera{
		Position: Vec3{Z: z},
		Up:       Vec3{Y: 1},
		FovY:     75,
		Aspect:   float32(BaseWidth) / float32(BaseHeight),
		Near:     0.1,
		Far:      1000,
	}
}

// Basis returns the orthonormal view axes of the camera.
func (c Camera) Basis() (forward, right, up Vec3) {
	forward = c.Target.Sub(c.Position).Normalize()
	worldUp := c.Up
	if worldUp == (Vec3{}) {
		worldUp = Vec3{Y: 1}
	}
	right = forward.Cross(worldUp).Normalize()
	up = right.Cross(forward)
	return forward, right, up
}

func (c Camera) halfExtents() (float32, float32) {
	fov := c.FovY
	if fov <= 0 {
		fov = 75
	}
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	tanHalf := math32.Tan(DegToRad(fov) / 2)
	return tanHalf * aspect, tanHalf
}

// RayFromNDC builds the world-space ray through a point given in normalized
// device coordinates.
func (c Camera) RayFromNDC(ndc Vec2) Ray {
	forward, right, up := c.Basis()
	hx, hy := c.halfExtents()
	dir := forward.Add(right.Scale(ndc.X * hx)).Add(up.Scale(ndc.Y * hy))
	return Ray{Origin: c.Position, Direction: dir.Normalize()}
}

// Project maps a world point to normalized device coordinates. ok is false
// for points behind the camera.
func (c Camera) Project(p Vec3) (ndc Vec2, ok bool) {
	forward, right, up := c.Basis()
	d := p.Sub(c.Position)
	z := d.Dot(forward)
	if z <= 0 {
		return Vec2{}, false
	}
	hx, hy := c.halfExtents()
	return Vec2{
		X: d.Dot(right) / (z * hx),
		Y: d.Dot(up) / (z * hy),
	}, true
}
