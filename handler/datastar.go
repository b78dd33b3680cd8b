package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is the Accept header value sent by DataStar actions.
	DataStarAcceptHeader = "text/event-stream"

	// DataStarQueryParam carries DataStar signals on GET requests.
	DataStarQueryParam = "datastar"
)

// Patch mode aliases used by the views.
const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
	PatchPrepend = datastar.ElementPatchModePrepend
)

// IsDataStar reports whether r was issued by a DataStar action and expects
// an SSE stream of patches rather than a page.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	if r.URL.Query().Has(DataStarQueryParam) {
		return true
	}
	return strings.Contains(r.Header.Get("Content-Type"), "application/x-datastar")
}
