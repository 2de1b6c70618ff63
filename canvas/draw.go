package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	unitCircleSize = 128
	outlineWidth   = 3
)

var (
	backgroundColor = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	labelColor      = color.Black
	outlineColor    = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
)

// Renderer draws a Canvas onto an ebiten image. Ellipses are a white circle
// scaled to the shape's rectangle and tinted with its fill.
type Renderer struct {
	face   text.Face
	circle *ebiten.Image
}

func NewRenderer(face text.Face) *Renderer {
	return &Renderer{face: face}
}

func (r *Renderer) unitCircle() *ebiten.Image {
	if r.circle == nil {
		r.circle = ebiten.NewImage(unitCircleSize, unitCircleSize)
		half := float32(unitCircleSize) / 2
		vector.DrawFilledCircle(r.circle, half, half, half, color.White, true)
	}
	return r.circle
}

func (r *Renderer) Draw(screen *ebiten.Image, c *Canvas) {
	screen.Fill(backgroundColor)
	for _, s := range c.Shapes() {
		r.drawShape(screen, s)
		if s.Hovered() {
			vector.StrokeRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), outlineWidth, outlineColor, true)
		}
		r.drawLabel(screen, s)
	}
}

func (r *Renderer) drawShape(screen *ebiten.Image, s *Shape) {
	if s.Kind == KindRect {
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), s.Fill, true)
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.W/unitCircleSize, s.H/unitCircleSize)
	op.GeoM.Translate(s.X, s.Y)
	op.ColorScale.ScaleWithColor(s.Fill)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(r.unitCircle(), op)
}

func (r *Renderer) drawLabel(screen *ebiten.Image, s *Shape) {
	if r.face == nil || s.Name == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(s.X+s.W/2, s.Y+s.H/2)
	op.ColorScale.ScaleWithColor(labelColor)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s.Name, r.face, op)
}
