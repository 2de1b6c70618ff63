package field

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/milk9111/objectfield/common"
	"github.com/milk9111/objectfield/ecs"
	"github.com/milk9111/objectfield/ecs/component"
	"github.com/milk9111/objectfield/ecs/system"
	"golang.org/x/image/font"
)

// Field is one mounted object field. Everything it creates lives in the
// instance and is released by Unmount; nothing is shared between fields.
//
// All methods must be called from the frame thread.
type Field struct {
	id    uuid.UUID
	cfg   Config
	items []Item
	deps  Deps

	world     *ecs.World
	clock     *system.Clock
	scheduler *ecs.Scheduler
	camera    common.Camera
	rng       *rand.Rand

	entities []ecs.Entity
	owners   map[common.Handle]ecs.Entity
	routes   map[ecs.Entity]string
	handles  []common.Handle
	pending  map[ecs.Entity]*pendingAssets
	face     font.Face

	hovered    ecs.Entity
	candidates []common.Handle

	mounted bool
	owning  bool
	cancel  context.CancelFunc
	results chan assetResult
}

func New(cfg Config, items []Item, deps Deps) *Field {
	cfg = cfg.withDefaults()
	return &Field{
		id:     uuid.New(),
		cfg:    cfg,
		items:  append([]Item(nil), items...),
		deps:   deps,
		camera: cfg.Camera,
	}
}

// ID identifies the instance in log lines.
func (f *Field) ID() string {
	return f.id.String()[:8]
}

// Mount claims the render target and builds the scene. Without an engine it
// returns ErrNoRenderTarget and builds nothing. A failure part way through
// releases whatever was already created.
func (f *Field) Mount() error {
	if f.mounted {
		return nil
	}
	if f.deps.Engine == nil {
		log.Printf("field[%s]: no render target, skipping mount", f.ID())
		return ErrNoRenderTarget
	}
	if err := f.deps.Engine.Acquire(); err != nil {
		return fmt.Errorf("field: mount: %w", err)
	}
	f.owning = true
	f.reset()

	ctx, cancel := context.WithCancel(context.Background())
	f.cancel = cancel
	f.mounted = true

	if err := f.build(ctx); err != nil {
		f.Unmount()
		return err
	}
	log.Printf("field[%s]: mounted %d objects, %d waiting on assets", f.ID(), len(f.entities), len(f.pending))
	return nil
}

func (f *Field) reset() {
	seed := f.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	f.rng = rand.New(rand.NewSource(seed))
	f.world = ecs.NewWorld()
	f.clock = system.NewClock(f.cfg.ClockMode, f.cfg.DtScale)
	f.scheduler = ecs.NewScheduler(
		system.NewHoverDampSystem(f.cfg.HoverDecay, f.cfg.RestoreRate),
		system.NewMotionSystem(f.clock, f.cfg.Bounds),
		system.NewFloatSystem(f.clock),
		system.NewAffordanceSystem(f.deps.Engine, f.cfg.HighlightEase),
		system.NewLightSystem(f.clock, f.deps.Engine),
	)
	f.entities = f.entities[:0]
	f.owners = make(map[common.Handle]ecs.Entity)
	f.routes = make(map[ecs.Entity]string)
	f.pending = make(map[ecs.Entity]*pendingAssets)
	f.handles = nil
	f.face = nil
	f.hovered = 0
	f.results = make(chan assetResult, len(f.items)+1)
}

// Update advances one frame: late assets are attached first, then the
// motion systems run.
func (f *Field) Update(now time.Time) {
	if !f.mounted {
		return
	}
	f.drainAssets()
	f.clock.Tick(now)
	f.scheduler.Update(f.world)
}

func (f *Field) Draw() {
	if !f.mounted {
		return
	}
	f.deps.Engine.Draw(f.camera)
}

// Unmount cancels outstanding loads, clears hover, disposes every engine
// handle created since Mount and gives up the render target. It is safe to
// call more than once and after a failed Mount.
func (f *Field) Unmount() {
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	if f.mounted {
		f.setHover(0)
	}

	released := len(f.handles)
	if engine := f.deps.Engine; engine != nil {
		for _, h := range f.handles {
			engine.Dispose(h)
		}
		if f.owning {
			engine.Release()
		}
	}
	f.handles = nil
	f.owning = false
	f.owners = nil
	f.routes = nil
	f.pending = nil
	f.entities = f.entities[:0]
	f.candidates = f.candidates[:0]
	f.results = nil
	if f.world != nil {
		f.world.Clear()
	}

	if f.mounted {
		log.Printf("field[%s]: unmounted, released %d handles", f.ID(), released)
	}
	f.mounted = false
}

// Reload swaps in a new scene definition. A mounted field is rebuilt in
// place and, if the new scene fails to mount, restored to the old one. An
// unmounted field keeps the definition for its next Mount and reports
// ErrNotMounted.
func (f *Field) Reload(cfg Config, items []Item) error {
	prevCfg, prevItems, prevCam := f.cfg, f.items, f.camera
	f.cfg = cfg.withDefaults()
	f.items = append([]Item(nil), items...)
	aspect := f.camera.Aspect
	f.camera = f.cfg.Camera
	if aspect > 0 {
		f.camera.Aspect = aspect
	}
	if !f.mounted {
		return ErrNotMounted
	}

	f.Unmount()
	err := f.Mount()
	if err == nil {
		log.Printf("field[%s]: reloaded with %d items", f.ID(), len(f.items))
		return nil
	}
	f.cfg, f.items, f.camera = prevCfg, prevItems, prevCam
	if rerr := f.Mount(); rerr != nil {
		log.Printf("field[%s]: restore after failed reload: %v", f.ID(), rerr)
	}
	return fmt.Errorf("field: reload: %w", err)
}

// Resize updates the camera aspect ratio for a new viewport.
func (f *Field) Resize(width, height float32) {
	if width <= 0 || height <= 0 {
		return
	}
	f.camera.Aspect = width / height
}

func (f *Field) Mounted() bool { return f.mounted }

func (f *Field) Camera() common.Camera { return f.camera }

// Objects lists the entities in item order.
func (f *Field) Objects() []ecs.Entity {
	return append([]ecs.Entity(nil), f.entities...)
}

// Pending is the number of objects still waiting on an asset.
func (f *Field) Pending() int {
	return len(f.pending)
}

// Events drains the events raised since the last call.
func (f *Field) Events() []ecs.Event {
	if f.world == nil {
		return nil
	}
	return f.world.Events().Drain()
}

// Position returns the current world position of an object.
func (f *Field) Position(e ecs.Entity) (common.Vec3, bool) {
	if f.world == nil {
		return common.Vec3{}, false
	}
	t, ok := ecs.Get(f.world, e, component.TransformComponent.Kind())
	if !ok {
		return common.Vec3{}, false
	}
	return t.Position, true
}

// Label returns the display label of an object.
func (f *Field) Label(e ecs.Entity) string {
	if f.world == nil {
		return ""
	}
	if l, ok := ecs.Get(f.world, e, component.LabelComponent.Kind()); ok {
		return l.Text
	}
	return ""
}
