package component

import "image/color"

type Shape string

const (
	ShapeBox          Shape = "box"
	ShapeSphere       Shape = "sphere"
	ShapePlane        Shape = "plane"
	ShapeDodecahedron Shape = "dodecahedron"
	ShapeIcosahedron  Shape = "icosahedron"
	ShapeOctahedron   Shape = "octahedron"
	ShapeTetrahedron  Shape = "tetrahedron"
	ShapeTorusKnot    Shape = "torus_knot"
	ShapeModel        Shape = "model"
)

// Style holds the material parameters an engine needs to build and tint a
// mesh. Width/Height are used by planes; Size by everything else.
type Style struct {
	Shape     Shape
	Size      float32
	Width     float32
	Height    float32
	Color     color.NRGBA
	Emissive  color.NRGBA
	Metalness float32
	Roughness float32
	Opacity   float32
	ModelPath string
}

var StyleComponent = NewComponent[Style]()
