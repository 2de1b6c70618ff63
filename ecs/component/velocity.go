package component

import "github.com/milk9111/objectfield/common"

// Velocity is in world units per frame. Original is the velocity assigned at
// creation; hover damping eases Current back toward it.
type Velocity struct {
	Current  common.Vec3
	Original common.Vec3
}

var VelocityComponent = NewComponent[Velocity]()
