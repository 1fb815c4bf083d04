// Package render turns the portfolio data object into HTML. Every section
// is a pure projection of its slice of the data; the only per-view input is
// the navigation state.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"time"

	"github.com/Zachkp/portfolio/internal/clipboard"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/section"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the embedded stylesheet and scripts, rooted so they can be
// served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Renderer executes the page templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// PageData is the root view model.
type PageData struct {
	Site *content.Portfolio
	Nav  NavData
	Year int
}

// NewPageData assembles the view model for a full page.
func NewPageData(site *content.Portfolio, state nav.State, now time.Time) PageData {
	return PageData{
		Site: site,
		Nav:  BuildNav(site, state),
		Year: now.Year(),
	}
}

// Page renders the whole document.
func (r *Renderer) Page(w io.Writer, data PageData) error {
	return r.tmpl.ExecuteTemplate(w, "index.html", data)
}

// Section renders a single section block.
func (r *Renderer) Section(w io.Writer, id section.ID, data PageData) error {
	return r.tmpl.ExecuteTemplate(w, "section-"+id.String(), data)
}

// Nav renders the navigation bar fragment.
func (r *Renderer) Nav(w io.Writer, data NavData) error {
	return r.tmpl.ExecuteTemplate(w, "nav.html", data)
}

// Notice renders the copy-email acknowledgment fragment.
func (r *Renderer) Notice(w io.Writer, n clipboard.Notice) error {
	return r.tmpl.ExecuteTemplate(w, "notice.html", n)
}
