// Package web holds the embedded HTML templates and renders them with the
// django (pongo2) engine.
package web

import (
	"embed"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gofiber/template/django/v3"
)

//go:embed templates
var templatesFS embed.FS

const ext = ".html"

var ErrTemplateNotFound = errors.New("web: template not found")

// Renderer renders templates by name, e.g. "index" or "authorized/dashboard".
type Renderer struct {
	files  fs.FS
	engine *django.Engine
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, err
	}
	return newRenderer(sub)
}

func newRenderer(files fs.FS) (*Renderer, error) {
	engine := django.NewFileSystem(http.FS(files), ext)
	if err := engine.Load(); err != nil {
		return nil, err
	}
	return &Renderer{files: files, engine: engine}, nil
}

// Name normalises a request path into a template name. It strips a trailing
// ".html" and rejects anything that could escape the template root.
func Name(p string) (string, bool) {
	p = strings.TrimSuffix(strings.TrimPrefix(p, "/"), ext)
	if p == "" || strings.Contains(p, "\\") {
		return "", false
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return "", false
		}
	}
	return path.Clean(p), true
}

// Has reports whether a template with name exists.
func (r *Renderer) Has(name string) bool {
	info, err := fs.Stat(r.files, name+ext)
	return err == nil && !info.IsDir()
}

// Render executes the named template into w.
func (r *Renderer) Render(w io.Writer, name string, data map[string]any) error {
	if !r.Has(name) {
		return ErrTemplateNotFound
	}
	return r.engine.Render(w, name, data)
}
