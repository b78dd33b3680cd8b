package showroom

import (
	"html/template"

	"github.com/dmitrymomot/arshowroom/pkg/arlaunch"
	"github.com/dmitrymomot/arshowroom/pkg/catalog"
	"github.com/dmitrymomot/arshowroom/pkg/preview"
	"github.com/dmitrymomot/arshowroom/pkg/useragent"
)

// CatalogRequest carries no parameters.
type CatalogRequest struct{}

// ProductRequest selects a product and the active detail tab.
type ProductRequest struct {
	Slug string `path:"slug"`
	Tab  string `query:"tab"`
}

// ARRequest is the shareable AR page address. Empty fields fall back to
// arlaunch.DefaultAsset.
type ARRequest struct {
	Product string `query:"product"`
	GLB     string `query:"glb"`
	USDZ    string `query:"usdz"`
}

// Asset returns the requested asset with defaults applied.
func (r ARRequest) Asset() arlaunch.Asset {
	return arlaunch.Asset{Name: r.Product, SceneURL: r.GLB, ARURL: r.USDZ}.WithDefaults()
}

// QRRequest addresses the QR code of a shareable AR page. FG and BG are
// "#rgb" or "#rrggbb" colours; margin=0 drops the quiet zone.
type QRRequest struct {
	ARRequest
	Size     int    `query:"size"`
	FG       string `query:"fg"`
	BG       string `query:"bg"`
	Margin   *bool  `query:"margin"`
	Download bool   `query:"download"`
}

// PreviewRequest selects the model the previewer attributes point at.
type PreviewRequest struct {
	Src string `query:"src"`
}

// Detail tabs.
const (
	TabPreview = "preview"
	TabAR      = "ar"
)

// Layout is embedded by every page.
type Layout struct {
	Title        string
	ViewerScript string
}

// ViewerMarkup is the pre-rendered viewer element.
type ViewerMarkup struct {
	Open  template.HTML
	Close template.HTML
}

// ARPanel renders the platform-specific AR control.
type ARPanel struct {
	Action    arlaunch.Action
	Platform  useragent.Classification
	IntentURL template.URL
	QRPath    string
	QRImage   template.URL
	Asset     arlaunch.Asset
}

// CatalogPageParams contains data for rendering the catalogue list.
type CatalogPageParams struct {
	Layout
	Products []catalog.Product
}

// ProductPageParams contains data for rendering a product detail page.
type ProductPageParams struct {
	Layout
	Product  catalog.Product
	Tab      string
	Viewer   ViewerMarkup
	AR       ARPanel
	ShareURL string
}

// ARPageParams contains data for rendering the shareable AR page.
type ARPageParams struct {
	Layout
	Asset  arlaunch.Asset
	Viewer ViewerMarkup
	AR     ARPanel
}

// LaunchPageParams contains data for the page that starts AR Quick Look.
type LaunchPageParams struct {
	Layout
	Action arlaunch.Action
}

// QRDialogParams contains data for rendering the QR dialog.
type QRDialogParams struct {
	Title       string
	ShareURL    string
	Image       template.URL
	DownloadURL string
	Size        int
}

// QRPageParams wraps the dialog for regular navigation.
type QRPageParams struct {
	Layout
	Dialog QRDialogParams
}

// previewData is the JSON body of /api/preview.
type previewData struct {
	Config     preview.Config      `json:"config"`
	Viewer     preview.Viewer      `json:"viewer"`
	Attributes []preview.Attribute `json:"attributes"`
}
