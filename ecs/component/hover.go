package component

type HoverEffect int

const (
	HoverEffectEmissive HoverEffect = iota
	HoverEffectScale
)

type HoverMotion int

const (
	HoverMotionDamp HoverMotion = iota
	HoverMotionFreeze
)

// Hoverable carries the hover flag and the visual targets used while idle and
// hovered. Level eases between 0 (idle) and 1 (hovered).
type Hoverable struct {
	Hovered bool
	Level   float32

	Effect HoverEffect
	Motion HoverMotion

	BaseEmissive  float32
	HoverEmissive float32
	BaseScale     float32
	HoverScale    float32
}

var HoverableComponent = NewComponent[Hoverable]()
