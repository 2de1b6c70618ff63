package field

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/chewxy/math32"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/objectfield/common"
	"github.com/milk9111/objectfield/ecs/system"
)

const (
	defaultGridSpacing = 3
	scriptTimeout      = 250 * time.Millisecond
)

// placements returns n start positions for the layout. If a script layout
// fails, the circle layout is returned together with the script error.
func placements(l Layout, n int, bounds system.Bounds, rng *rand.Rand) ([]common.Vec3, error) {
	if n <= 0 {
		return nil, nil
	}
	h := bounds.HalfExtent

	switch l.Kind {
	case LayoutGrid:
		return gridPositions(l, n, rng), nil
	case LayoutCircle:
		return circlePositions(l.Radius, n, h), nil
	case LayoutShell:
		return shellPositions(l, n, h, rng), nil
	case LayoutScript:
		pts, err := scriptPositions(l.Script, l.Params, n)
		if err != nil {
			return circlePositions(l.Radius, n, h), fmt.Errorf("field: layout script: %w", err)
		}
		return pts, nil
	default:
		return boxPositions(n, h, rng), nil
	}
}

func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

func boxPositions(n int, h float32, rng *rand.Rand) []common.Vec3 {
	pts := make([]common.Vec3, n)
	for i := range pts {
		pts[i] = common.V3(uniform(rng, -h, h), uniform(rng, -h, h), uniform(rng, -h, h))
	}
	return pts
}

func gridPositions(l Layout, n int, rng *rand.Rand) []common.Vec3 {
	cols := l.Columns
	if cols <= 0 {
		cols = int(math32.Ceil(math32.Sqrt(float32(n))))
	}
	rows := (n + cols - 1) / cols
	spacing := l.Spacing
	if spacing <= 0 {
		spacing = defaultGridSpacing
	}

	x0 := -float32(cols-1) * spacing / 2
	y0 := float32(rows-1) * spacing / 2
	pts := make([]common.Vec3, n)
	for i := range pts {
		col, row := i%cols, i/cols
		p := common.V3(x0+float32(col)*spacing, y0-float32(row)*spacing, 0)
		if l.Jitter > 0 {
			p = p.Add(common.V3(
				uniform(rng, -l.Jitter, l.Jitter),
				uniform(rng, -l.Jitter, l.Jitter),
				uniform(rng, -l.Jitter, l.Jitter),
			))
		}
		pts[i] = p
	}
	return pts
}

func circlePositions(radius float32, n int, h float32) []common.Vec3 {
	if radius <= 0 {
		radius = h * 0.8
	}
	pts := make([]common.Vec3, n)
	for i := range pts {
		angle := float32(i) / float32(n) * 2 * math32.Pi
		pts[i] = common.V3(math32.Cos(angle)*radius, math32.Sin(angle)*radius, 0)
	}
	return pts
}

func shellPositions(l Layout, n int, h float32, rng *rand.Rand) []common.Vec3 {
	lo, hi := l.MinRadius, l.MaxRadius
	if hi <= 0 {
		hi = h
	}
	if lo <= 0 || lo > hi {
		lo = hi / 2
	}
	pts := make([]common.Vec3, n)
	for i := range pts {
		var dir common.Vec3
		for dir.Len() < 1e-4 {
			dir = common.V3(float32(rng.NormFloat64()), float32(rng.NormFloat64()), float32(rng.NormFloat64()))
		}
		pts[i] = dir.Normalize().Scale(uniform(rng, lo, hi))
	}
	return pts
}

// scriptPositions runs a tengo script once per object. The script sees
// index, count and params and must assign x, y and z.
func scriptPositions(src string, params map[string]any, n int) ([]common.Vec3, error) {
	if src == "" {
		return nil, fmt.Errorf("empty script")
	}
	if params == nil {
		params = map[string]any{}
	}

	script := tengo.NewScript([]byte(src))
	_ = script.Add("index", 0)
	_ = script.Add("count", n)
	if err := script.Add("params", params); err != nil {
		return nil, err
	}
	_ = script.Add("x", 0.0)
	_ = script.Add("y", 0.0)
	_ = script.Add("z", 0.0)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}

	pts := make([]common.Vec3, n)
	for i := range pts {
		if err := compiled.Set("index", i); err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
		err := compiled.RunContext(ctx)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		pts[i] = common.V3(
			float32(compiled.Get("x").Float()),
			float32(compiled.Get("y").Float()),
			float32(compiled.Get("z").Float()),
		)
	}
	return pts, nil
}
