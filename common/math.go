package common

import "github.com/chewxy/math32"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// ReferenceFPS converts wall-clock seconds into frame units.
	ReferenceFPS = 60
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}

// ToNDC maps a screen position to normalized device coordinates in [-1, 1],
// with +Y pointing up.
func ToNDC(x, y, width, height float32) Vec2 {
	if width <= 0 || height <= 0 {
		return Vec2{}
	}
	return Vec2{
		X: (x/width)*2 - 1,
		Y: -(y/height)*2 + 1,
	}
}

// FromNDC is the inverse of ToNDC.
func FromNDC(ndc Vec2, width, height float32) (float32, float32) {
	return (ndc.X + 1) / 2 * width, (1 - ndc.Y) / 2 * height
}
