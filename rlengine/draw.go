package rlengine

import (
	"image/color"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/milk9111/objectfield/common"
	"github.com/milk9111/objectfield/ecs/component"
)

const (
	sphereRings  = 24
	sphereSlices = 24
	planeDepth   = 0.05
)

func toVec3(v common.Vec3) rl.Vector3 { return rl.NewVector3(v.X, v.Y, v.Z) }

func toRay(r common.Ray) rl.Ray {
	return rl.NewRay(toVec3(r.Origin), toVec3(r.Direction))
}

func toCamera(c common.Camera) rl.Camera3D {
	up := c.Up
	if up == (common.Vec3{}) {
		up = common.Vec3{Y: 1}
	}
	return rl.Camera3D{
		Position:   toVec3(c.Position),
		Target:     toVec3(c.Target),
		Up:         toVec3(up),
		Fovy:       c.FovY,
		Projection: rl.CameraPerspective,
	}
}

// genMesh builds geometry with roughly unit-size extents scaled by the
// style. Platonic solids are approximated by low-ring spheres and cones.
func genMesh(s component.Style) rl.Mesh {
	size := s.Size
	if size <= 0 {
		size = 1
	}
	switch s.Shape {
	case component.ShapeSphere:
		return rl.GenMeshSphere(size/2, sphereRings, sphereSlices)
	case component.ShapePlane:
		w, h := s.Width, s.Height
		if w <= 0 || h <= 0 {
			w, h = size, size
		}
		return rl.GenMeshCube(w, h, planeDepth)
	case component.ShapeDodecahedron:
		return rl.GenMeshSphere(size/2, 4, 6)
	case component.ShapeIcosahedron:
		return rl.GenMeshSphere(size/2, 3, 5)
	case component.ShapeOctahedron:
		return rl.GenMeshSphere(size/2, 2, 4)
	case component.ShapeTetrahedron:
		return rl.GenMeshCone(size/2, size, 3)
	case component.ShapeTorusKnot:
		return rl.GenMeshKnot(size/2, size/4, 64, 16)
	default:
		return rl.GenMeshCube(size, size, size)
	}
}

// boundingRadius is the hit sphere of an unscaled round body.
func boundingRadius(s component.Style) float32 {
	size := s.Size
	if size <= 0 {
		size = 1
	}
	return size / 2
}

// orientedBox is a box with its own orthonormal axes. half holds the
// half extents along each axis.
type orientedBox struct {
	center common.Vec3
	axes   [3]common.Vec3
	half   common.Vec3
}

// collide moves the ray into the box frame and tests it against the
// axis-aligned box there. Rotation keeps lengths, so the distance holds in
// world space.
func (b orientedBox) collide(r common.Ray) rl.RayCollision {
	d := r.Origin.Sub(b.center)
	local := rl.NewRay(
		rl.NewVector3(d.Dot(b.axes[0]), d.Dot(b.axes[1]), d.Dot(b.axes[2])),
		rl.NewVector3(r.Direction.Dot(b.axes[0]), r.Direction.Dot(b.axes[1]), r.Direction.Dot(b.axes[2])),
	)
	return rl.GetRayCollisionBox(local, rl.NewBoundingBox(toVec3(b.half.Neg()), toVec3(b.half)))
}

// rotationAxes returns the body X, Y and Z axes after an XYZ Euler rotation.
func rotationAxes(rot common.Vec3) [3]common.Vec3 {
	m := rl.MatrixRotateXYZ(toVec3(rot))
	var axes [3]common.Vec3
	for i, unit := range []rl.Vector3{{X: 1}, {Y: 1}, {Z: 1}} {
		v := rl.Vector3Transform(unit, m)
		axes[i] = common.V3(v.X, v.Y, v.Z)
	}
	return axes
}

// bodyBox is the exact hit box of box and plane bodies at their current
// pose. Other shapes report false and are tested as spheres.
func bodyBox(s component.Style, t component.Transform) (orientedBox, bool) {
	size := s.Size
	if size <= 0 {
		size = 1
	}
	var half common.Vec3
	switch s.Shape {
	case component.ShapeBox:
		half = common.V3(size, size, size).Scale(0.5)
	case component.ShapePlane:
		w, h := s.Width, s.Height
		if w <= 0 || h <= 0 {
			w, h = size, size
		}
		half = common.V3(w, h, planeDepth).Scale(0.5)
	default:
		return orientedBox{}, false
	}
	return orientedBox{
		center: t.Position,
		axes:   rotationAxes(t.Rotation),
		half:   half.Scale(scaleOf(t)),
	}, true
}

// bodyMatrix is scale, then rotation, then translation.
func bodyMatrix(t component.Transform) rl.Matrix {
	s := scaleOf(t)
	m := rl.MatrixMultiply(rl.MatrixScale(s, s, s), rl.MatrixRotateXYZ(toVec3(t.Rotation)))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(t.Position.X, t.Position.Y, t.Position.Z))
}

func frontOffset(s component.Style) float32 {
	if s.Shape == component.ShapePlane {
		return planeDepth / 2
	}
	size := s.Size
	if size <= 0 {
		size = 1
	}
	return size / 2
}

func baseColor(s component.Style) color.NRGBA {
	if s.Color == (color.NRGBA{}) {
		return color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	}
	return s.Color
}

func glowColor(s component.Style) color.NRGBA {
	if s.Emissive == (color.NRGBA{}) {
		return baseColor(s)
	}
	return s.Emissive
}

func alphaOf(s component.Style, base color.NRGBA) uint8 {
	if s.Opacity > 0 && s.Opacity < 1 {
		return uint8(s.Opacity * 255)
	}
	return base.A
}

// albedo is the lit base color with opacity applied.
func albedo(s component.Style) rl.Color {
	base := baseColor(s)
	return rl.NewColor(base.R, base.G, base.B, alphaOf(s, base))
}

// emissiveRGB is the glow added on top of lighting, in linear 0..1 units.
func emissiveRGB(s component.Style, intensity float32) [4]float32 {
	glow := glowColor(s)
	k := common.Clamp(intensity, 0, 2) / 4
	return [4]float32{float32(glow.R) / 255 * k, float32(glow.G) / 255 * k, float32(glow.B) / 255 * k, 1}
}

// unlitTint mixes the emissive color into the base color by intensity. It
// colors loaded models and everything else when the lit shader is missing.
func unlitTint(s component.Style, intensity float32) rl.Color {
	base := baseColor(s)
	glow := glowColor(s)
	k := common.Clamp(intensity, 0, 2) / 2
	mix := func(b, g uint8) uint8 {
		v := float32(b)*(0.5+0.5*k) + float32(g)*0.5*k
		return uint8(common.Clamp(v, 0, 255))
	}
	return rl.NewColor(mix(base.R, glow.R), mix(base.G, glow.G), mix(base.B, glow.B), alphaOf(s, base))
}

func (e *Engine) upload(o *object) {
	switch {
	case o.label:
		img := rl.NewImageFromImage(o.img)
		o.texture = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		o.img = nil
	case o.style.Shape == component.ShapeModel:
		o.model = rl.LoadModel(o.style.ModelPath)
		if !rl.IsModelValid(o.model) {
			log.Printf("rlengine: model %s did not load, drawing a box", o.style.ModelPath)
			o.model = rl.LoadModelFromMesh(rl.GenMeshCube(1, 1, 1))
		}
	default:
		o.mesh = genMesh(o.style)
	}
	o.uploaded = true
}

// loadMaterial builds the material every primitive shares. Without a valid
// lit shader it keeps raylib's default shader and bodies are drawn unlit.
func (e *Engine) loadMaterial() {
	e.material = rl.LoadMaterialDefault()
	shader := rl.LoadShaderFromMemory(litVS, litFS)
	if rl.IsShaderValid(shader) {
		e.material.Shader = shader
		e.lit = true
	} else {
		log.Printf("rlengine: lit shader did not compile, drawing unlit")
	}
	e.loaded = true
}

// Draw renders bodies then labels. The caller owns BeginDrawing/EndDrawing.
func (e *Engine) Draw(cam common.Camera) {
	if !e.loaded {
		e.loadMaterial()
	}
	for _, h := range e.order {
		if o := e.objects[h]; !o.uploaded {
			e.upload(o)
		}
	}
	e.view, e.viewSet = cam, true

	if e.lit {
		e.lights.apply(e.material.Shader, cam.Position)
	}

	c := toCamera(cam)
	rl.BeginMode3D(c)
	for _, h := range e.order {
		o := e.objects[h]
		if o.label {
			continue
		}
		e.drawBody(o)
	}
	for _, h := range e.order {
		o := e.objects[h]
		if !o.label {
			continue
		}
		pos, scale, ok := e.labelPose(o)
		if !ok {
			continue
		}
		src := rl.NewRectangle(0, 0, float32(o.texture.Width), float32(o.texture.Height))
		rl.DrawBillboardRec(c, o.texture, src, toVec3(pos), rl.NewVector2(o.width*scale, o.height*scale), rl.White)
	}
	rl.EndMode3D()
}

func (e *Engine) drawBody(o *object) {
	t := o.transform
	if o.style.Shape == component.ShapeModel {
		o.model.Transform = rl.MatrixRotateXYZ(toVec3(t.Rotation))
		rl.DrawModel(o.model, toVec3(t.Position), scaleOf(t), unlitTint(o.style, o.emissive))
		return
	}

	c := unlitTint(o.style, o.emissive)
	if e.lit {
		c = albedo(o.style)
		setSurface(e.material.Shader, o.style, o.emissive)
	}
	if m := e.material.GetMap(rl.MapAlbedo); m != nil {
		m.Color = c
	}
	rl.DrawMesh(o.mesh, e.material, bodyMatrix(t))
}
