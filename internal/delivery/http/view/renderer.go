package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageAuth  = "auth.html"
	PageAdmin = "admin.html"
	PageUser  = "user.html"

	fragmentSalons = "salons.html"
)

var partials = []string{"templates/confirm.html", "templates/salons.html"}

// Renderer holds the parsed templates. Pages are parsed once together with
// the layout and the partials.
type Renderer struct {
	pages    map[string]*template.Template
	fragment *template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}

	for _, page := range []string{PageAuth, PageAdmin, PageUser} {
		files := append([]string{"templates/layout.html", "templates/" + page}, partials...)
		tpl, err := template.New("layout.html").ParseFS(templateFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		r.pages[page] = tpl
	}

	fragment, err := template.New(fragmentSalons).ParseFS(templateFS, "templates/"+fragmentSalons)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", fragmentSalons, err)
	}
	r.fragment = fragment

	return r, nil
}

// Render executes page inside the layout and writes it with status
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	tpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	return write(w, status, tpl, "layout", data)
}

// RenderSalons writes the salon list fragment
func (r *Renderer) RenderSalons(w http.ResponseWriter, list SalonList) error {
	return write(w, http.StatusOK, r.fragment, "salon-list", list)
}

func write(w http.ResponseWriter, status int, tpl *template.Template, name string, data any) error {
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
