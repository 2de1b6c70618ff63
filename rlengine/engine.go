package rlengine

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/milk9111/objectfield/common"
	"github.com/milk9111/objectfield/ecs/component"
	"github.com/milk9111/objectfield/field"
)

var (
	ErrUnknownHandle = errors.New("rlengine: unknown handle")
	ErrNoModelPath   = errors.New("rlengine: model shape without a path")
)

const labelGap = 0.01

var _ field.Engine = (*Engine)(nil)

type object struct {
	label     bool
	parent    common.Handle
	style     component.Style
	transform component.Transform
	emissive  float32

	img           image.Image
	width, height float32

	uploaded bool
	mesh     rl.Mesh
	model    rl.Model
	texture  rl.Texture2D
}

// Engine keeps every body and label the field asks for. GPU resources are
// created lazily on the first Draw after creation, so handles can be made
// and hit-tested before the window exists.
type Engine struct {
	next    common.Handle
	objects map[common.Handle]*object
	order   []common.Handle
	owned   bool

	// view is the camera of the last Draw. Labels face it.
	view    common.Camera
	viewSet bool

	lights   lightUniforms
	material rl.Material
	lit      bool
	loaded   bool
}

func New() *Engine {
	return &Engine{objects: make(map[common.Handle]*object)}
}

func (e *Engine) Acquire() error {
	if e.owned {
		return field.ErrTargetBusy
	}
	e.owned = true
	return nil
}

// Release gives up ownership and unloads anything still alive.
func (e *Engine) Release() {
	if len(e.objects) > 0 {
		log.Printf("rlengine: release with %d live objects, unloading", len(e.objects))
	}
	for _, h := range append([]common.Handle(nil), e.order...) {
		e.Dispose(h)
	}
	e.lights = lightUniforms{}
	e.owned = false
}

// Close unloads the shared lit material. Call it once before closing the
// window.
func (e *Engine) Close() {
	if e.loaded {
		rl.UnloadMaterial(e.material)
		e.loaded, e.lit = false, false
	}
}

func (e *Engine) Live() int { return len(e.objects) }

func (e *Engine) add(o *object) common.Handle {
	e.next++
	e.objects[e.next] = o
	e.order = append(e.order, e.next)
	return e.next
}

func (e *Engine) NewMesh(style component.Style) (common.Handle, error) {
	if style.Shape == component.ShapeModel {
		if style.ModelPath == "" {
			return 0, ErrNoModelPath
		}
		if _, err := os.Stat(style.ModelPath); err != nil {
			return 0, fmt.Errorf("rlengine: model %s: %w", style.ModelPath, err)
		}
	}
	return e.add(&object{style: style, transform: component.Transform{Scale: 1}}), nil
}

func (e *Engine) NewLabel(parent common.Handle, img image.Image, width, height float32) (common.Handle, error) {
	p, ok := e.objects[parent]
	if !ok || p.label {
		return 0, fmt.Errorf("%w: label parent %d", ErrUnknownHandle, parent)
	}
	if img == nil {
		return 0, errors.New("rlengine: label without an image")
	}
	return e.add(&object{label: true, parent: parent, img: img, width: width, height: height}), nil
}

func (e *Engine) Dispose(h common.Handle) {
	o, ok := e.objects[h]
	if !ok {
		return
	}
	if o.uploaded {
		switch {
		case o.label:
			rl.UnloadTexture(o.texture)
		case o.style.Shape == component.ShapeModel:
			rl.UnloadModel(o.model)
		default:
			rl.UnloadMesh(&o.mesh)
		}
	}
	delete(e.objects, h)
	for i, oh := range e.order {
		if oh == h {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

func (e *Engine) SetTransform(h common.Handle, t component.Transform) {
	if o, ok := e.objects[h]; ok && !o.label {
		o.transform = t
	}
}

func (e *Engine) SetEmissive(h common.Handle, intensity float32) {
	if o, ok := e.objects[h]; ok && !o.label {
		o.emissive = intensity
	}
}

// labelPose places a label just in front of its parent body.
func (e *Engine) labelPose(o *object) (common.Vec3, float32, bool) {
	p, ok := e.objects[o.parent]
	if !ok {
		return common.Vec3{}, 0, false
	}
	scale := scaleOf(p.transform)
	pos := p.transform.Position
	pos.Z += frontOffset(p.style)*scale + labelGap
	return pos, scale, true
}

// labelBox is the hit box of a label billboard. It spans the camera right
// axis and world up, the same quad DrawBillboardRec draws.
func (e *Engine) labelBox(o *object) (orientedBox, bool) {
	pos, scale, ok := e.labelPose(o)
	if !ok {
		return orientedBox{}, false
	}
	right := common.V3(1, 0, 0)
	if e.viewSet {
		if _, r, _ := e.view.Basis(); r.Len() > 0 {
			right = r
		}
	}
	up := common.V3(0, 1, 0)
	return orientedBox{
		center: pos,
		axes:   [3]common.Vec3{right, up, right.Cross(up)},
		half:   common.V3(o.width*scale/2, o.height*scale/2, labelGap),
	}, true
}

// Intersect tests boxes, planes and labels as oriented boxes and every
// other shape as its bounding sphere.
func (e *Engine) Intersect(ray common.Ray, candidates []common.Handle) []field.Hit {
	var hits []field.Hit
	for _, h := range candidates {
		o, ok := e.objects[h]
		if !ok {
			continue
		}
		var c rl.RayCollision
		if o.label {
			box, ok := e.labelBox(o)
			if !ok {
				continue
			}
			c = box.collide(ray)
		} else if box, ok := bodyBox(o.style, o.transform); ok {
			c = box.collide(ray)
		} else {
			radius := boundingRadius(o.style) * scaleOf(o.transform)
			c = rl.GetRayCollisionSphere(toRay(ray), toVec3(o.transform.Position), radius)
		}
		if c.Hit && c.Distance >= 0 {
			hits = append(hits, field.Hit{Handle: h, Distance: c.Distance})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

func scaleOf(t component.Transform) float32 {
	if t.Scale == 0 {
		return 1
	}
	return t.Scale
}
