package field

import (
	"image/color"

	"github.com/chewxy/math32"
)

// hsl converts hue in degrees, saturation and lightness in [0,1].
func hsl(h, s, l float32) color.NRGBA {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math32.Abs(2*l-1)) * s
	x := c * (1 - math32.Abs(math32.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float32
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	to8 := func(v float32) uint8 {
		return uint8((v+m)*255 + 0.5)
	}
	return color.NRGBA{R: to8(r), G: to8(g), B: to8(b), A: 255}
}
