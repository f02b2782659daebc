// Package templates renders the site pages, the document editor and
// the document markup. Every view is exposed as a templ.Component so
// handlers render with component.Render(ctx, w).
package templates

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"ramstone/services"
)

// viewFuncs are the formatting helpers available to every template.
var viewFuncs = template.FuncMap{
	"kwacha": services.FormatKwacha,
	"date":   services.FormatDate,
}

// component wraps a parsed template and its data as a templ.Component.
func component(t *template.Template, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return t.Execute(w, data)
	})
}

// mustPage builds a full page template: the shared shell plus the
// page's "content" block.
func mustPage(name, content string) *template.Template {
	t := template.New(name).Funcs(viewFuncs)
	template.Must(t.Parse(shellHTML))
	template.Must(t.Parse(content))
	return t
}

// mustPartial builds a standalone fragment template (HTMX swaps and
// the document markup).
func mustPartial(name, content string) *template.Template {
	return template.Must(template.New(name).Funcs(viewFuncs).Parse(content))
}

// mustPartialWith is mustPartial with extra template funcs.
func mustPartialWith(name, content string, extra map[string]any) *template.Template {
	t := template.New(name).Funcs(viewFuncs).Funcs(extra)
	return template.Must(t.Parse(content))
}

// mustPageWith is mustPage with extra funcs and one extra fragment
// parsed into the same template set, so the page can invoke the
// fragment via {{template "fragName" .}}.
func mustPageWith(name, content, fragName, fragment string, extra map[string]any) *template.Template {
	t := template.New(name).Funcs(viewFuncs).Funcs(extra)
	template.Must(t.Parse(shellHTML))
	template.Must(t.Parse(`{{define "` + fragName + `"}}` + fragment + `{{end}}`))
	template.Must(t.Parse(content))
	return t
}
