package component

import (
	"image/color"

	"github.com/milk9111/objectfield/common"
)

type LightKind string

const (
	LightAmbient     LightKind = "ambient"
	LightDirectional LightKind = "directional"
	LightPoint       LightKind = "point"
	LightSpot        LightKind = "spot"
)

// Light is one scene light. Position is the rest position; an orbiting light
// circles it in the XZ plane. Directional and spot lights point at Target.
// Angle is the spot cone half-angle in radians.
type Light struct {
	Kind      LightKind
	Color     color.NRGBA
	Intensity float32
	Position  common.Vec3
	Target    common.Vec3
	Angle     float32
	Orbit     Orbit
}

// Orbit moves a light around its rest position. RadiusX and RadiusZ may be
// negative to mirror the path.
type Orbit struct {
	RadiusX float32
	RadiusZ float32
	Speed   float32
	Phase   float32
}

func (o Orbit) Moving() bool {
	return o.Speed != 0 && (o.RadiusX != 0 || o.RadiusZ != 0)
}

var LightComponent = NewComponent[Light]()
