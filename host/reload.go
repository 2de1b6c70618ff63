package host

import (
	"log"
	"os"
	"path/filepath"

	"github.com/milk9111/objectfield/prefabs"
)

// Reloader watches the on-disk scenes and scripts and reports when the
// scene currently shown needs rebuilding.
type Reloader struct {
	scene   string
	watcher *prefabs.Watcher
}

// NewReloader watches the scenes and scripts directories under root. Missing
// directories are skipped; with none present the reloader never fires.
func NewReloader(root, scene string) (*Reloader, error) {
	var dirs []string
	for _, sub := range []string{"scenes", "scripts"} {
		dir := filepath.Join(root, sub)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	r := &Reloader{scene: scene}
	if len(dirs) == 0 {
		log.Printf("host: nothing to watch under %s", root)
		return r, nil
	}
	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		return nil, err
	}
	r.watcher = w
	log.Printf("host: watching %v", dirs)
	return r, nil
}

// Poll drains pending file events without blocking. It reports true when
// the current scene file or any layout script changed.
func (r *Reloader) Poll() bool {
	if r == nil || r.watcher == nil {
		return false
	}
	changed := false
	errs := r.watcher.Errors
	for {
		select {
		case path, ok := <-r.watcher.Events:
			if !ok {
				return changed
			}
			if r.affects(path) {
				log.Printf("host: %s changed, reloading %s", path, r.scene)
				changed = true
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Printf("host: watch: %v", err)
		default:
			return changed
		}
	}
}

func (r *Reloader) affects(path string) bool {
	if name, ok := prefabs.SceneName(path); ok {
		return name == r.scene
	}
	return filepath.Ext(path) == ".tengo"
}

// SetScene switches which scene Poll reports on.
func (r *Reloader) SetScene(scene string) {
	if r != nil {
		r.scene = scene
	}
}

func (r *Reloader) Close() error {
	if r == nil || r.watcher == nil {
		return nil
	}
	return r.watcher.Close()
}
