package service

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"sync"
)

// Renderer owns the parsed page template set. Refresh swaps the whole set
// under the write lock, so templates edited on disk can go live while the
// server keeps answering requests.
type Renderer struct {
	dir       string
	mu        sync.RWMutex
	templates *template.Template
}

// NewRenderer parses every *.html file in dir and returns a ready
// renderer. A directory without templates is a startup error.
func NewRenderer(dir string) (*Renderer, error) {
	r := &Renderer{dir: dir}
	if err := r.Refresh(); err != nil {
		return nil, err
	}
	return r, nil
}

// Refresh reparses the template directory. On failure the previously
// loaded set stays in place.
func (r *Renderer) Refresh() error {
	parsed, err := template.ParseGlob(filepath.Join(r.dir, "*.html"))
	if err != nil {
		return fmt.Errorf("parsing templates in %s: %w", r.dir, err)
	}
	r.mu.Lock()
	r.templates = parsed
	r.mu.Unlock()
	return nil
}

// Has reports whether the page template with the given name is loaded.
func (r *Renderer) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.templates.Lookup(name+".html") != nil
}

// Render executes the named page template. Output is buffered so a
// template failure reaches the caller before any bytes hit w.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	r.mu.RLock()
	t := r.templates
	r.mu.RUnlock()

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name+".html", data); err != nil {
		return fmt.Errorf("rendering page %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
