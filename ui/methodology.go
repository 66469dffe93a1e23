package ui

import (
	_ "embed"
	"html/template"
	"net/http"
	"sync"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

//go:embed METHODOLOGY.md
var methodologySource []byte

var methodologyOnce struct {
	sync.Once
	html template.HTML
}

// handleMethodology renders the embedded methodology notes. The markdown is
// trusted (it ships with the binary), so the rendered HTML is used directly.
func (a *App) handleMethodology(w http.ResponseWriter, r *http.Request) {
	methodologyOnce.Do(func() {
		p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
		renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
		methodologyOnce.html = template.HTML(markdown.ToHTML(methodologySource, p, renderer))
	})
	a.render(w, "methodology.html", methodologyOnce.html)
}
