package field

import (
	"fmt"
	"image/color"
	"log"

	"github.com/milk9111/objectfield/common"
	"github.com/milk9111/objectfield/ecs/component"
	"github.com/milk9111/objectfield/ecs/system"
	"github.com/milk9111/objectfield/prefabs"
)

// FromScene turns a decoded scene file into a Config and its items.
func FromScene(spec *prefabs.SceneSpec) (Config, []Item, error) {
	cfg := DefaultConfig()
	if spec == nil {
		return cfg, nil, fmt.Errorf("field: nil scene")
	}
	if spec.Variant != "" && spec.Variant != prefabs.VariantField {
		return cfg, nil, fmt.Errorf("field: scene %s is a %s scene", spec.Name, spec.Variant)
	}

	cfg.Seed = spec.Seed

	switch spec.Bounds.Shape {
	case "", "box":
		cfg.Bounds.Shape = system.BoundsBox
	case "sphere":
		cfg.Bounds.Shape = system.BoundsSphere
	default:
		return cfg, nil, fmt.Errorf("field: unknown bounds shape %q", spec.Bounds.Shape)
	}
	if spec.Bounds.HalfExtent > 0 {
		cfg.Bounds.HalfExtent = float32(spec.Bounds.HalfExtent)
	}

	switch spec.Motion.Mode {
	case "", "fixed":
		cfg.ClockMode = system.ClockFixed
	case "wallclock":
		cfg.ClockMode = system.ClockWallclock
	default:
		return cfg, nil, fmt.Errorf("field: unknown motion mode %q", spec.Motion.Mode)
	}
	setIfPositive(&cfg.DtScale, spec.Motion.DtScale)
	setIfPositive(&cfg.Speed, spec.Motion.Speed)
	setIfPositive(&cfg.Spin, spec.Motion.Spin)
	cfg.SpinSymmetric = spec.Motion.SpinSymmetric

	switch spec.Hover.Effect {
	case "", "emissive":
		cfg.HoverEffect = component.HoverEffectEmissive
	case "scale":
		cfg.HoverEffect = component.HoverEffectScale
	default:
		return cfg, nil, fmt.Errorf("field: unknown hover effect %q", spec.Hover.Effect)
	}
	switch spec.Hover.Motion {
	case "", "damp":
		cfg.HoverMotion = component.HoverMotionDamp
	case "freeze":
		cfg.HoverMotion = component.HoverMotionFreeze
	default:
		return cfg, nil, fmt.Errorf("field: unknown hover motion %q", spec.Hover.Motion)
	}
	setIfPositive(&cfg.HoverDecay, spec.Hover.Decay)
	setIfPositive(&cfg.RestoreRate, spec.Hover.Restore)
	setIfPositive(&cfg.HighlightEase, spec.Hover.Ease)
	setIfPositive(&cfg.BaseEmissive, spec.Hover.BaseEmissive)
	setIfPositive(&cfg.HoverEmissive, spec.Hover.HoverEmissive)
	setIfPositive(&cfg.HoverScale, spec.Hover.Scale)

	cfg.Layout = Layout{
		Kind:      LayoutKind(spec.Layout.Kind),
		Radius:    float32(spec.Layout.Radius),
		MinRadius: float32(spec.Layout.MinRadius),
		MaxRadius: float32(spec.Layout.MaxRadius),
		Spacing:   float32(spec.Layout.Spacing),
		Columns:   spec.Layout.Columns,
		Jitter:    float32(spec.Layout.Jitter),
		Params:    spec.Layout.Params,
	}
	if cfg.Layout.Kind == "" {
		cfg.Layout.Kind = LayoutBox
	}
	if cfg.Layout.Kind == LayoutScript {
		src, err := prefabs.LoadScript(spec.Layout.Script)
		if err != nil {
			log.Printf("field: layout script %s: %v", spec.Layout.Script, err)
		}
		cfg.Layout.Script = string(src)
	}

	if spec.Camera.Z != 0 {
		cfg.Camera = common.DefaultCamera(float32(spec.Camera.Z))
	}
	setIfPositive(&cfg.Camera.FovY, spec.Camera.FovY)

	cfg.FontURL = spec.Font.URL
	if spec.Font.Size > 0 {
		cfg.FontSize = spec.Font.Size
	}
	if spec.Label.Size > 0 {
		cfg.LabelSize = spec.Label.Size
	}
	setIfPositive(&cfg.LabelScale, spec.Label.Scale)
	cfg.LabelInk = inkFromSpec(spec.Label, cfg.LabelInk)

	cfg.Style = mergeStyle(cfg.Style, styleFromSpec(spec.Defaults))

	for _, ls := range spec.Lights {
		l, err := lightFromSpec(ls)
		if err != nil {
			return cfg, nil, err
		}
		cfg.Lights = append(cfg.Lights, l)
	}

	items := make([]Item, 0, len(spec.Items))
	for _, is := range spec.Items {
		item := Item{
			Label:      is.Label,
			Route:      is.Route,
			Decoration: !is.IsInteractive(),
			Style:      styleFromSpec(is.Style),
			ModelURL:   is.Model,
		}
		if is.Position != nil {
			p := common.V3(float32(is.Position.X), float32(is.Position.Y), float32(is.Position.Z))
			item.Position = &p
		}
		if is.Float != nil {
			item.Float = &component.FloatMotion{
				Amplitude: float32(is.Float.Amplitude),
				Frequency: float32(is.Float.Frequency),
				Phase:     float32(is.Float.Phase),
				Tilt:      float32(is.Float.Tilt),
				Turn:      float32(is.Float.Turn),
			}
		}
		items = append(items, item)
	}
	return cfg, items, nil
}

func styleFromSpec(s prefabs.StyleSpec) component.Style {
	return component.Style{
		Shape:     component.Shape(s.Shape),
		Size:      float32(s.Size),
		Width:     float32(s.Width),
		Height:    float32(s.Height),
		Color:     s.Color.NRGBA(color.NRGBA{}),
		Emissive:  s.Emissive.NRGBA(color.NRGBA{}),
		Metalness: float32(s.Metalness),
		Roughness: float32(s.Roughness),
		Opacity:   float32(s.Opacity),
	}
}

func inkFromSpec(s prefabs.LabelSpec, def LabelInk) LabelInk {
	ink := LabelInk{
		Background:  s.Background.NRGBA(def.Background),
		Fill:        s.Color.NRGBA(def.Fill),
		Stroke:      s.Stroke.NRGBA(color.NRGBA{}),
		StrokeWidth: s.StrokeWidth,
	}
	if len(s.Gradient) >= 2 {
		ink.Gradient = []color.NRGBA{s.Gradient[0].NRGBA(ink.Fill), s.Gradient[1].NRGBA(ink.Fill)}
	}
	if ink.StrokeWidth > 0 && ink.Stroke == (color.NRGBA{}) {
		ink.Stroke = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return ink
}

func lightFromSpec(s prefabs.LightSpec) (component.Light, error) {
	l := component.Light{
		Kind:      component.LightKind(s.Kind),
		Color:     s.Color.NRGBA(color.NRGBA{R: 255, G: 255, B: 255, A: 255}),
		Intensity: float32(s.Intensity),
		Angle:     common.DegToRad(float32(s.Angle)),
	}
	switch l.Kind {
	case component.LightAmbient, component.LightDirectional, component.LightPoint, component.LightSpot:
	default:
		return l, fmt.Errorf("field: unknown light kind %q", s.Kind)
	}
	if l.Intensity <= 0 {
		l.Intensity = 1
	}
	if s.Position != nil {
		l.Position = common.V3(float32(s.Position.X), float32(s.Position.Y), float32(s.Position.Z))
	}
	if s.Target != nil {
		l.Target = common.V3(float32(s.Target.X), float32(s.Target.Y), float32(s.Target.Z))
	}
	if o := s.Orbit; o != nil {
		l.Orbit = component.Orbit{
			RadiusX: float32(o.Radius),
			RadiusZ: float32(o.Radius),
			Speed:   float32(o.Speed),
			Phase:   float32(o.Phase),
		}
		if o.RadiusX != 0 {
			l.Orbit.RadiusX = float32(o.RadiusX)
		}
		if o.RadiusZ != 0 {
			l.Orbit.RadiusZ = float32(o.RadiusZ)
		}
	}
	return l, nil
}

func setIfPositive(dst *float32, v float64) {
	if v > 0 {
		*dst = float32(v)
	}
}
