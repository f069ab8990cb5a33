package view

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"
)

const (
	defaultLayout = "layout"
	pageExt       = ".html"
)

// Engine renders html/template pages for fiber. Every page under dir is parsed
// together with the layout file and the partials so it can be executed through
// the layout.
type Engine struct {
	fsys   fs.FS
	dir    string
	funcs  template.FuncMap
	mu     sync.RWMutex
	loaded bool
	pages  map[string]*template.Template
}

func New(fsys fs.FS, dir string, funcs template.FuncMap) *Engine {
	return &Engine{
		fsys:  fsys,
		dir:   dir,
		funcs: funcs,
		pages: make(map[string]*template.Template),
	}
}

// Load parses all pages. fiber calls it once when the app starts; Render calls
// it lazily otherwise.
func (e *Engine) Load() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	layout := path.Join(e.dir, defaultLayout+pageExt)
	if _, err := fs.Stat(e.fsys, layout); err != nil {
		return fmt.Errorf("view: layout: %w", err)
	}

	partials, err := fs.Glob(e.fsys, path.Join(e.dir, "partials", "*"+pageExt))
	if err != nil {
		return fmt.Errorf("view: partials: %w", err)
	}

	entries, err := fs.ReadDir(e.fsys, e.dir)
	if err != nil {
		return fmt.Errorf("view: read %s: %w", e.dir, err)
	}

	pages := make(map[string]*template.Template)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), pageExt) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), pageExt)
		if name == defaultLayout {
			continue
		}

		files := append([]string{layout}, partials...)
		files = append(files, path.Join(e.dir, entry.Name()))

		tmpl, err := template.New(name).Funcs(e.funcs).ParseFS(e.fsys, files...)
		if err != nil {
			return fmt.Errorf("view: parse %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	e.pages = pages
	e.loaded = true

	return nil
}

// Render executes page name through the layout. The layouts argument is
// accepted for the fiber.Views contract; only the first entry is used and it
// names a template defined in the layout file.
func (e *Engine) Render(w io.Writer, name string, binding interface{}, layouts ...string) error {
	e.mu.RLock()
	loaded := e.loaded
	e.mu.RUnlock()

	if !loaded {
		if err := e.Load(); err != nil {
			return err
		}
	}

	e.mu.RLock()
	tmpl, ok := e.pages[name]
	e.mu.RUnlock()
	if !ok {
		return fmt.Errorf("view: template %q not found", name)
	}

	layout := defaultLayout
	if len(layouts) > 0 && layouts[0] != "" {
		layout = layouts[0]
	}

	return tmpl.ExecuteTemplate(w, layout, binding)
}
