package system

import "github.com/milk9111/objectfield/common"

type BoundsShape int

const (
	BoundsBox BoundsShape = iota
	BoundsSphere
)

// Bounds is a volume centred on the origin. HalfExtent is the box half-size
// or the sphere radius.
type Bounds struct {
	Shape      BoundsShape
	HalfExtent float32
}

// Reflect returns v with every outward component inverted for a position
// that has left the volume. Components already pointing inward are kept, so
// an object outside the bound never gets pushed further out.
func (b Bounds) Reflect(p, v common.Vec3) common.Vec3 {
	h := b.HalfExtent
	if h <= 0 {
		return v
	}
	switch b.Shape {
	case BoundsSphere:
		dist := p.Len()
		if dist <= h {
			return v
		}
		n := p.Scale(1 / dist)
		if vn := v.Dot(n); vn > 0 {
			v = v.Sub(n.Scale(2 * vn))
		}
		return v
	default:
		for axis := 0; axis < 3; axis++ {
			pa, va := p.Axis(axis), v.Axis(axis)
			if (pa > h && va > 0) || (pa < -h && va < 0) {
				v = v.WithAxis(axis, -va)
			}
		}
		return v
	}
}

// Contains reports whether p lies inside the volume expanded by slack.
func (b Bounds) Contains(p common.Vec3, slack float32) bool {
	h := b.HalfExtent + slack
	if b.Shape == BoundsSphere {
		return p.Len() <= h
	}
	for axis := 0; axis < 3; axis++ {
		a := p.Axis(axis)
		if a > h || a < -h {
			return false
		}
	}
	return true
}
