// Package views renders the front-end pages from per-request view models.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"math"

	"github.com/bytedance/sonic"

	"studio/pkg/types"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"json": prettyJSON,
	"pct":  clampPercent,
	"orNA": func(n int) string {
		if n <= 0 {
			return "N/A"
		}
		return fmt.Sprint(n)
	},
	"gpu": func(s types.SystemInfo) *types.GPUDevice {
		if d, ok := s.PrimaryGPU(); ok {
			return &d
		}
		return nil
	},
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{PageHome, PageTraining} {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/partials.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s templates: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

// MustRenderer is NewRenderer for package-level initialization.
func MustRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render executes page with data into w. Output is buffered so a template
// error never leaves a half-written page.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderHome renders the home page.
func (r *Renderer) RenderHome(w io.Writer, v *HomeView) error { return r.Render(w, PageHome, v) }

// RenderTraining renders the training page.
func (r *Renderer) RenderTraining(w io.Writer, v *TrainingView) error {
	return r.Render(w, PageTraining, v)
}

func prettyJSON(v any) string {
	b, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

func clampPercent(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 100 {
		return 100
	}
	return f
}
