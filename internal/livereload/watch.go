package livereload

import (
	"fmt"
	"log"

	"github.com/knadh/koanf/providers/file"

	"github.com/nesc-lab/paperpage/internal/paper"
)

// Watcher reloads a content file whenever it changes on disk.
type Watcher struct {
	path string
	f    *file.File
}

// Watch starts watching path. onChange receives each successfully loaded
// and validated record. A change that fails to load is logged and skipped,
// so callers keep serving the previous record.
func Watch(path string, onChange func(*paper.Paper)) (*Watcher, error) {
	w := &Watcher{path: path, f: file.Provider(path)}
	err := w.f.Watch(func(_ interface{}, err error) {
		if err != nil {
			log.Printf("livereload: watching %s: %v", path, err)
			return
		}
		p, err := paper.Load(path)
		if err != nil {
			log.Printf("livereload: keeping previous content: %v", err)
			return
		}
		onChange(p)
	})
	if err != nil {
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}
	return w, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.f.Unwatch()
}
