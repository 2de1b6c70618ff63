package component

import "github.com/milk9111/objectfield/common"

// Transform places an object in world space. Rotation holds Euler angles in
// radians; Scale is uniform.
type Transform struct {
	Position common.Vec3
	Rotation common.Vec3
	Scale    float32
}

var TransformComponent = NewComponent[Transform]()
