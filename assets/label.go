package assets

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/milk9111/objectfield/common"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

type LabelOptions struct {
	Size       int
	Background color.Color
	Foreground color.Color

	// Gradient fills the text from the top-left corner to the bottom-right
	// when both stops are set. It replaces Foreground.
	Gradient [2]color.Color

	// Stroke outlines every glyph StrokeWidth pixels wide.
	Stroke      color.Color
	StrokeWidth int
}

// DefaultLabelOptions is a 256 pixel square, white text on black.
func DefaultLabelOptions() LabelOptions {
	return LabelOptions{Size: 256, Background: color.Black, Foreground: color.White}
}

// RenderLabel draws text centred on a square offscreen image.
func RenderLabel(label string, face font.Face, opts LabelOptions) *image.RGBA {
	if opts.Size <= 0 {
		opts.Size = 256
	}
	if opts.Background == nil {
		opts.Background = color.Black
	}
	if opts.Foreground == nil {
		opts.Foreground = color.White
	}
	if face == nil {
		face = basicfont.Face7x13
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	if label == "" {
		return img
	}

	mask := textMask(label, face, opts.Size)
	if opts.StrokeWidth > 0 && opts.Stroke != nil {
		stroke := image.NewUniform(opts.Stroke)
		w := opts.StrokeWidth
		for dy := -w; dy <= w; dy++ {
			for dx := -w; dx <= w; dx++ {
				if dx*dx+dy*dy > w*w || (dx == 0 && dy == 0) {
					continue
				}
				draw.DrawMask(img, img.Bounds(), stroke, image.Point{}, mask, image.Point{X: -dx, Y: -dy}, draw.Over)
			}
		}
	}

	var fill image.Image = image.NewUniform(opts.Foreground)
	if opts.Gradient[0] != nil && opts.Gradient[1] != nil {
		fill = newDiagonalGradient(opts.Gradient[0], opts.Gradient[1], opts.Size)
	}
	draw.DrawMask(img, img.Bounds(), fill, image.Point{}, mask, image.Point{}, draw.Over)
	return img
}

// textMask is the coverage of label centred on a size x size square.
// font.Drawer samples Src relative to each glyph, so fills that depend on
// the absolute position go through the mask instead.
func textMask(label string, face font.Face, size int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	d := &font.Drawer{Dst: mask, Src: image.Opaque, Face: face}
	width := d.MeasureString(label)
	metrics := face.Metrics()
	textHeight := metrics.Ascent + metrics.Descent

	s := fixed.I(size)
	d.Dot = fixed.Point26_6{
		X: (s - width) / 2,
		Y: (s-textHeight)/2 + metrics.Ascent,
	}
	d.DrawString(label)
	return mask
}

// diagonalGradient is a two-stop linear fill along the main diagonal of a
// size x size square.
type diagonalGradient struct {
	from, to color.NRGBA
	size     int
}

func newDiagonalGradient(from, to color.Color, size int) *diagonalGradient {
	return &diagonalGradient{
		from: color.NRGBAModel.Convert(from).(color.NRGBA),
		to:   color.NRGBAModel.Convert(to).(color.NRGBA),
		size: size,
	}
}

func (g *diagonalGradient) ColorModel() color.Model { return color.NRGBAModel }

func (g *diagonalGradient) Bounds() image.Rectangle {
	return image.Rectangle{Min: image.Point{X: -1e9, Y: -1e9}, Max: image.Point{X: 1e9, Y: 1e9}}
}

func (g *diagonalGradient) At(x, y int) color.Color {
	t := common.Clamp(float32(x+y)/float32(2*g.size), 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(common.Lerp(float32(a), float32(b), t) + 0.5)
	}
	return color.NRGBA{
		R: mix(g.from.R, g.to.R),
		G: mix(g.from.G, g.to.G),
		B: mix(g.from.B, g.to.B),
		A: mix(g.from.A, g.to.A),
	}
}
