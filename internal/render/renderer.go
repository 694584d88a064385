// Package render builds and executes the HTML views of the stock
// dashboard. View construction is pure; only Render touches templates.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"os"
)

// Render target names. The emitted page keeps these as element ids so
// existing stylesheets and scripts keyed on them keep working; the
// template bundle must define a named template for each.
const (
	TargetCardGrid = "stock-card-grid"
	TargetStatus   = "status-message"

	layoutTemplate = "dashboard.html.tmpl"
)

type Option func(*config)

type config struct {
	templateFS fs.FS
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads the template bundle from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// Renderer turns PageViews into complete HTML documents.
type Renderer struct {
	tmpl *template.Template
}

// New parses the template bundle and verifies that both render targets
// are defined. The check runs here, before any data is fetched, so a
// broken bundle fails at startup instead of mid-request.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	tmpl, err := template.ParseFS(cfg.templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("dashboard renderer: parse templates: %w", err)
	}

	for _, target := range []string{TargetCardGrid, TargetStatus} {
		if tmpl.Lookup(target) == nil {
			return nil, fmt.Errorf("dashboard renderer: bundle does not define render target %q", target)
		}
	}

	return &Renderer{tmpl: tmpl}, nil
}

// ContentType reports the MIME type of rendered pages.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes the page layout for the given view and returns the
// complete document.
func (r *Renderer) Render(view PageView) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, layoutTemplate, view); err != nil {
		return nil, fmt.Errorf("dashboard renderer: execute layout: %w", err)
	}
	return buf.Bytes(), nil
}
