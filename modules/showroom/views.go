package showroom

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/arshowroom/handler"
)

// DataStarScriptURL is the client bundle that performs element patches.
const DataStarScriptURL = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0-RC.5/bundles/datastar.js"

//go:embed templates/*.html
var templateFS embed.FS

// Views renders the showroom pages. Any field may be replaced with a
// generated templ component.
type Views struct {
	CatalogPage func(CatalogPageParams) templ.Component
	ProductPage func(ProductPageParams) templ.Component
	ARPage      func(ARPageParams) templ.Component
	LaunchPage  func(LaunchPageParams) templ.Component

	QRDialog func(QRDialogParams) templ.Component
	QRPage   func(QRPageParams) templ.Component

	ErrorPage  func(handler.ErrorPageParams) templ.Component
	ErrorToast func(handler.ErrorToastParams) templ.Component
}

// pages are the template files defining a "content" block rendered inside
// the layout. Partials live in partials.html.
var pages = []string{"catalog", "product", "ar", "launch", "qr", "error"}

// DefaultViews parses the embedded html templates for a showroom mounted at
// the site root.
func DefaultViews() (*Views, error) {
	return NewViews("")
}

// NewViews parses the embedded html templates. Root-relative links render
// under basePath, the prefix the showroom is mounted at behind a proxy.
func NewViews(basePath string) (*Views, error) {
	basePath = strings.TrimSuffix(basePath, "/")
	base, err := template.New("layout.html").Funcs(template.FuncMap{
		"datastar": func() string { return DataStarScriptURL },
		"link":     func(ref string) string { return prefixPath(basePath, ref) },
	}).ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("showroom: parse layout: %w", err)
	}

	sets := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("showroom: clone layout: %w", err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("showroom: parse %s: %w", name, err)
		}
		sets[name] = t
	}

	return &Views{
		CatalogPage: page[CatalogPageParams](sets["catalog"], "layout"),
		ProductPage: page[ProductPageParams](sets["product"], "layout"),
		ARPage:      page[ARPageParams](sets["ar"], "layout"),
		LaunchPage:  page[LaunchPageParams](sets["launch"], "layout"),
		QRDialog:    page[QRDialogParams](base, "qr_dialog"),
		QRPage:      page[QRPageParams](sets["qr"], "layout"),
		ErrorPage:   errorPage(sets["error"]),
		ErrorToast:  page[handler.ErrorToastParams](base, "error_toast"),
	}, nil
}

// page adapts a named html/template to a templ component.
func page[P any](t *template.Template, name string) func(P) templ.Component {
	return func(params P) templ.Component {
		return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			return t.ExecuteTemplate(w, name, params)
		})
	}
}

// prefixPath mounts a root-relative ref under basePath. Absolute,
// protocol-relative and relative refs are returned unchanged.
func prefixPath(basePath, ref string) string {
	if basePath == "" || !strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "//") {
		return ref
	}
	return basePath + ref
}

type errorPageParams struct {
	Layout
	handler.ErrorPageParams
}

func errorPage(t *template.Template) func(handler.ErrorPageParams) templ.Component {
	render := page[errorPageParams](t, "layout")
	return func(p handler.ErrorPageParams) templ.Component {
		return render(errorPageParams{
			Layout:          Layout{Title: fmt.Sprintf("%d | %s", p.StatusCode, siteTitle)},
			ErrorPageParams: p,
		})
	}
}
