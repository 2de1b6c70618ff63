package canvas

import (
	"fmt"
	"strings"

	"github.com/milk9111/objectfield/prefabs"
)

// FromScene converts a canvas scene document. Items without an explicit
// kind alternate ellipse, rect, ellipse, ...
func FromScene(spec *prefabs.SceneSpec) (Config, []Shape, error) {
	if spec == nil {
		return Config{}, nil, fmt.Errorf("%w: nil scene", prefabs.ErrInvalidScene)
	}
	if spec.Variant != prefabs.VariantCanvas {
		return Config{}, nil, fmt.Errorf("%w: %s is a %s scene", prefabs.ErrInvalidScene, spec.Name, spec.Variant)
	}

	cfg := DefaultConfig()
	if spec.Canvas.Width > 0 {
		cfg.Width = spec.Canvas.Width
	}
	if spec.Canvas.Height > 0 {
		cfg.Height = spec.Canvas.Height
	}
	if spec.Canvas.MaxSpeed > 0 {
		cfg.MaxSpeed = spec.Canvas.MaxSpeed
	}
	cfg.Seed = spec.Seed

	shapes := make([]Shape, 0, len(spec.Items))
	for i, item := range spec.Items {
		if item.W <= 0 || item.H <= 0 {
			return Config{}, nil, fmt.Errorf("%w: item %d (%s) needs a positive size", prefabs.ErrInvalidScene, i, item.Label)
		}
		s := Shape{
			Name: item.Label,
			X:    item.X,
			Y:    item.Y,
			W:    item.W,
			H:    item.H,
			Kind: kindFor(item.Kind, i),
		}
		if item.IsInteractive() {
			s.Route = item.Route
		} else {
			s.Decoration = true
		}
		if item.Style.Color != nil {
			s.Fill = item.Style.Color.NRGBA(fillFor(i))
		}
		shapes = append(shapes, s)
	}
	return cfg, shapes, nil
}

func kindFor(kind string, i int) Kind {
	switch strings.ToLower(kind) {
	case "rect":
		return KindRect
	case "ellipse":
		return KindEllipse
	}
	if i%2 == 0 {
		return KindEllipse
	}
	return KindRect
}
