package field

import (
	"context"
	"errors"
	"image"
	"sort"
	"sync"

	"github.com/chewxy/math32"
	"github.com/milk9111/objectfield/common"
	"github.com/milk9111/objectfield/ecs/component"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var errFakeMesh = errors.New("fake: mesh failed")

type fakeObject struct {
	style     component.Style
	transform component.Transform
	emissive  float32
	parent    common.Handle
	label     bool
}

// fakeEngine hit-tests bodies as spheres of radius size/2 and counts every
// handle it hands out until it is disposed.
type fakeEngine struct {
	next     common.Handle
	live     map[common.Handle]*fakeObject
	owned    bool
	draws    int
	disposed int
	lights   []component.Light

	failMeshAfter int
	failModels    bool
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{live: map[common.Handle]*fakeObject{}, failMeshAfter: -1}
}

func (e *fakeEngine) Acquire() error {
	if e.owned {
		return ErrTargetBusy
	}
	e.owned = true
	return nil
}

func (e *fakeEngine) Release() { e.owned = false }

func (e *fakeEngine) NewMesh(style component.Style) (common.Handle, error) {
	if e.failModels && style.Shape == component.ShapeModel {
		return 0, errFakeMesh
	}
	if e.failMeshAfter >= 0 && int(e.next) >= e.failMeshAfter {
		return 0, errFakeMesh
	}
	e.next++
	e.live[e.next] = &fakeObject{style: style}
	return e.next, nil
}

func (e *fakeEngine) NewLabel(parent common.Handle, _ image.Image, _, _ float32) (common.Handle, error) {
	if _, ok := e.live[parent]; !ok {
		return 0, errors.New("fake: label parent not live")
	}
	e.next++
	e.live[e.next] = &fakeObject{parent: parent, label: true}
	return e.next, nil
}

func (e *fakeEngine) Dispose(h common.Handle) {
	if _, ok := e.live[h]; ok {
		delete(e.live, h)
		e.disposed++
	}
}

func (e *fakeEngine) SetTransform(h common.Handle, t component.Transform) {
	if o, ok := e.live[h]; ok {
		o.transform = t
	}
}

func (e *fakeEngine) SetEmissive(h common.Handle, intensity float32) {
	if o, ok := e.live[h]; ok {
		o.emissive = intensity
	}
}

func (e *fakeEngine) SetLights(lights []component.Light) {
	e.lights = append(e.lights[:0], lights...)
}

func (e *fakeEngine) Draw(common.Camera) { e.draws++ }

func (e *fakeEngine) Intersect(ray common.Ray, candidates []common.Handle) []Hit {
	var hits []Hit
	for _, h := range candidates {
		o, ok := e.live[h]
		if !ok || o.label {
			continue
		}
		radius := o.style.Size / 2
		if o.style.Width > 0 && o.style.Height > 0 {
			radius = math32.Max(o.style.Width, o.style.Height) / 2
		}
		scale := o.transform.Scale
		if scale == 0 {
			scale = 1
		}
		if t, ok := raySphere(ray, o.transform.Position, radius*scale); ok {
			hits = append(hits, Hit{Handle: h, Distance: t})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

func raySphere(ray common.Ray, center common.Vec3, radius float32) (float32, bool) {
	oc := ray.Origin.Sub(center)
	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	return t, t >= 0
}

func (e *fakeEngine) bodies() []*fakeObject {
	var out []*fakeObject
	for _, o := range e.live {
		if !o.label {
			out = append(out, o)
		}
	}
	return out
}

type recordingRouter struct {
	paths []string
}

func (r *recordingRouter) Navigate(path string) { r.paths = append(r.paths, path) }

type recordingCursor struct {
	pointer bool
	changes int
}

func (c *recordingCursor) SetPointer(p bool) {
	c.pointer = p
	c.changes++
}

// gatedLoader blocks every load until release is closed, then answers from
// its tables. Missing entries fail.
type gatedLoader struct {
	release chan struct{}
	models  map[string]string
	fontErr error

	mu        sync.Mutex
	cancelled int
}

func newGatedLoader() *gatedLoader {
	return &gatedLoader{release: make(chan struct{}), models: map[string]string{}}
}

func (l *gatedLoader) wait(ctx context.Context) error {
	select {
	case <-l.release:
		return nil
	case <-ctx.Done():
		l.mu.Lock()
		l.cancelled++
		l.mu.Unlock()
		return ctx.Err()
	}
}

func (l *gatedLoader) LoadFont(ctx context.Context, _ string, _ float64) (font.Face, error) {
	if err := l.wait(ctx); err != nil {
		return nil, err
	}
	if l.fontErr != nil {
		return nil, l.fontErr
	}
	return basicfont.Face7x13, nil
}

func (l *gatedLoader) LoadModel(ctx context.Context, url string) (string, error) {
	if err := l.wait(ctx); err != nil {
		return "", err
	}
	if path, ok := l.models[url]; ok {
		return path, nil
	}
	return "", errors.New("fake: model not found")
}

func (l *gatedLoader) cancelCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancelled
}
