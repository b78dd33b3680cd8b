package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption is an alias for datastar's PatchElementOption
type TemplOption = datastar.PatchElementOption

// WithTarget sets the selector of the element the component patches.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// templResponse wraps a templ component to implement Response
type templResponse struct {
	partial templ.Component
	full    templ.Component
	status  int
	options []datastar.PatchElementOption
}

// Render patches the partial over SSE for DataStar requests and writes the
// full component as HTML otherwise.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(t.partial, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	return t.full.Render(r.Context(), w)
}

// Templ renders component as a page, or as an element patch for DataStar:
//
//	return handler.Templ(views.QRDialog(data), handler.WithTarget("#qr-dialog"))
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{
		partial: component,
		full:    component,
		options: opts,
	}
}

// TemplPartial patches partial for DataStar requests and renders full for
// regular navigation, so one route serves both the dialog and its page.
func TemplPartial(partial, full templ.Component, opts ...TemplOption) Response {
	return templResponse{
		partial: partial,
		full:    full,
		options: opts,
	}
}

// TemplWithStatus renders component as a full page with status.
func TemplWithStatus(component templ.Component, status int) Response {
	return templResponse{
		partial: component,
		full:    component,
		status:  status,
	}
}
