package field

import (
	"context"
	"errors"
	"image"

	"github.com/milk9111/objectfield/common"
	"github.com/milk9111/objectfield/ecs/component"
	"github.com/milk9111/objectfield/ecs/system"
	"golang.org/x/image/font"
)

var (
	ErrNoRenderTarget = errors.New("field: no render target")
	ErrTargetBusy     = errors.New("field: render target owned by another field")
	ErrNotMounted     = errors.New("field: not mounted")
)

// Hit is one ray intersection reported by an Engine.
type Hit struct {
	Handle   common.Handle
	Distance float32
}

// Engine is the rendering collaborator. It owns every mesh, texture and
// label; the field only keeps the handles it was given.
type Engine interface {
	system.RenderSink
	system.LightSink

	// Acquire claims the render target for one field. It returns
	// ErrTargetBusy while another field holds it.
	Acquire() error
	Release()

	NewMesh(style component.Style) (common.Handle, error)
	NewLabel(parent common.Handle, img image.Image, width, height float32) (common.Handle, error)
	Dispose(h common.Handle)

	// Intersect returns the candidates hit by ray, nearest first.
	Intersect(ray common.Ray, candidates []common.Handle) []Hit
	Draw(cam common.Camera)
}

type Router interface {
	Navigate(path string)
}

// AssetLoader fetches remote fonts and models. Both calls may block and are
// only ever made off the frame thread.
type AssetLoader interface {
	LoadFont(ctx context.Context, url string, size float64) (font.Face, error)
	LoadModel(ctx context.Context, url string) (string, error)
}

// Cursor shows whether the pointer is over something clickable.
type Cursor interface {
	SetPointer(pointer bool)
}

// Deps bundles the collaborators a Field talks to. Only Engine is required.
type Deps struct {
	Engine Engine
	Router Router
	Assets AssetLoader
	Cursor Cursor
}
