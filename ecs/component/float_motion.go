package component

// FloatMotion drives position.y and rotation from elapsed time instead of
// velocity. An entity carries either FloatMotion or Velocity, never both.
type FloatMotion struct {
	BaseY     float32
	Amplitude float32
	Frequency float32
	Phase     float32
	Tilt      float32
	Turn      float32
}

var FloatMotionComponent = NewComponent[FloatMotion]()
