package field

import (
	"image/color"

	"github.com/milk9111/objectfield/assets"
	"github.com/milk9111/objectfield/common"
	"github.com/milk9111/objectfield/ecs/component"
	"github.com/milk9111/objectfield/ecs/system"
)

type LayoutKind string

const (
	LayoutGrid   LayoutKind = "grid"
	LayoutBox    LayoutKind = "box"
	LayoutCircle LayoutKind = "circle"
	LayoutShell  LayoutKind = "shell"
	LayoutScript LayoutKind = "script"
)

type Layout struct {
	Kind LayoutKind

	// Radius is used by circle. MinRadius/MaxRadius by shell.
	Radius    float32
	MinRadius float32
	MaxRadius float32

	// Spacing, Columns and Jitter are used by grid.
	Spacing float32
	Columns int
	Jitter  float32

	// Script is tengo source that sets x, y and z from index, count and
	// params.
	Script string
	Params map[string]any
}

// Config is everything a Field needs besides its items and collaborators.
type Config struct {
	Bounds system.Bounds

	ClockMode system.ClockMode
	DtScale   float32

	// Speed bounds each velocity component to [-Speed, Speed]. Spin bounds
	// each rotation increment to [0, Spin], or [-Spin, Spin] when
	// SpinSymmetric is set.
	Speed         float32
	Spin          float32
	SpinSymmetric bool

	HoverDecay    float32
	RestoreRate   float32
	HighlightEase float32
	HoverEffect   component.HoverEffect
	HoverMotion   component.HoverMotion
	BaseEmissive  float32
	HoverEmissive float32
	HoverScale    float32

	Layout Layout
	Camera common.Camera

	// Seed drives every random draw. Zero picks a time based seed.
	Seed int64

	FontURL    string
	FontSize   float64
	LabelSize  int
	LabelScale float32
	LabelInk   LabelInk

	Style component.Style

	// Lights replaces the default rig when non-empty.
	Lights []component.Light
}

// LabelInk is how label text is painted. Two gradient stops replace Fill
// with a diagonal gradient; a positive StrokeWidth outlines the glyphs.
type LabelInk struct {
	Background  color.NRGBA
	Fill        color.NRGBA
	Gradient    []color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth int
}

func (ink LabelInk) options(size int) assets.LabelOptions {
	opts := assets.LabelOptions{
		Size:        size,
		Background:  ink.Background,
		Foreground:  ink.Fill,
		StrokeWidth: ink.StrokeWidth,
	}
	if len(ink.Gradient) >= 2 {
		opts.Gradient = [2]color.Color{ink.Gradient[0], ink.Gradient[1]}
	}
	if ink.StrokeWidth > 0 {
		opts.Stroke = ink.Stroke
	}
	return opts
}

// DefaultLights is a dim white ambient plus one white point light above and
// in front of the field.
func DefaultLights() []component.Light {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	return []component.Light{
		{Kind: component.LightAmbient, Color: white, Intensity: 0.3},
		{Kind: component.LightPoint, Color: white, Intensity: 1, Position: common.V3(5, 5, 5)},
	}
}

func DefaultConfig() Config {
	return Config{
		Bounds:        system.Bounds{Shape: system.BoundsBox, HalfExtent: 5},
		ClockMode:     system.ClockFixed,
		DtScale:       1,
		Speed:         0.1,
		HoverDecay:    system.DefaultHoverDecay,
		RestoreRate:   system.DefaultRestoreRate,
		HighlightEase: system.DefaultHighlightEase,
		HoverEffect:   component.HoverEffectEmissive,
		HoverMotion:   component.HoverMotionDamp,
		BaseEmissive:  0.5,
		HoverEmissive: 1,
		HoverScale:    1.2,
		Layout:        Layout{Kind: LayoutBox},
		Camera:        common.DefaultCamera(15),
		FontSize:      48,
		LabelSize:     256,
		LabelScale:    1,
		LabelInk: LabelInk{
			Background: color.NRGBA{A: 255},
			Fill:       color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		},
		Style: component.Style{
			Shape:     component.ShapeBox,
			Size:      1,
			Opacity:   1,
			Roughness: 0.5,
		},
	}
}

// Item is one labeled object to build.
type Item struct {
	Label string
	Route string

	// Decoration items are drawn and animated but never hit-tested.
	Decoration bool

	// Style overrides Config.Style field by field; zero values are ignored.
	Style    component.Style
	ModelURL string

	Position *common.Vec3
	Float    *component.FloatMotion
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Bounds.HalfExtent <= 0 {
		c.Bounds.HalfExtent = def.Bounds.HalfExtent
	}
	if c.DtScale <= 0 {
		c.DtScale = def.DtScale
	}
	if c.Camera.FovY <= 0 {
		c.Camera = def.Camera
	}
	if c.FontSize <= 0 {
		c.FontSize = def.FontSize
	}
	if c.LabelSize <= 0 {
		c.LabelSize = def.LabelSize
	}
	if c.LabelScale <= 0 {
		c.LabelScale = def.LabelScale
	}
	if c.HoverScale <= 0 {
		c.HoverScale = def.HoverScale
	}
	if c.HoverEmissive <= 0 {
		c.HoverEmissive = def.HoverEmissive
	}
	if c.Layout.Kind == "" {
		c.Layout.Kind = def.Layout.Kind
	}
	if c.Style.Shape == "" {
		c.Style.Shape = def.Style.Shape
	}
	if c.Style.Size <= 0 {
		c.Style.Size = def.Style.Size
	}
	if c.Style.Opacity <= 0 {
		c.Style.Opacity = def.Style.Opacity
	}
	if c.LabelInk.Fill == (color.NRGBA{}) && len(c.LabelInk.Gradient) < 2 {
		c.LabelInk.Fill = def.LabelInk.Fill
	}
	if c.LabelInk.Background == (color.NRGBA{}) {
		c.LabelInk.Background = def.LabelInk.Background
	}
	if len(c.Lights) == 0 {
		c.Lights = DefaultLights()
	}
	return c
}

// mergeStyle overlays the non-zero fields of o on base.
func mergeStyle(base, o component.Style) component.Style {
	if o.Shape != "" {
		base.Shape = o.Shape
	}
	if o.Size > 0 {
		base.Size = o.Size
	}
	if o.Width > 0 {
		base.Width = o.Width
	}
	if o.Height > 0 {
		base.Height = o.Height
	}
	if o.Color != (color.NRGBA{}) {
		base.Color = o.Color
	}
	if o.Emissive != (color.NRGBA{}) {
		base.Emissive = o.Emissive
	}
	if o.Metalness > 0 {
		base.Metalness = o.Metalness
	}
	if o.Roughness > 0 {
		base.Roughness = o.Roughness
	}
	if o.Opacity > 0 {
		base.Opacity = o.Opacity
	}
	if o.ModelPath != "" {
		base.ModelPath = o.ModelPath
	}
	return base
}
