package showroom

import (
	"errors"
	"html/template"
	"log/slog"
	"net/url"

	"github.com/dmitrymomot/arshowroom/handler"
	"github.com/dmitrymomot/arshowroom/pkg/arlaunch"
	"github.com/dmitrymomot/arshowroom/pkg/catalog"
	"github.com/dmitrymomot/arshowroom/pkg/logger"
	"github.com/dmitrymomot/arshowroom/pkg/preview"
)

const siteTitle = "AR Showroom"

func (s *Service) layout(title string) Layout {
	if title == "" {
		title = siteTitle
	} else {
		title += " | " + siteTitle
	}
	return Layout{Title: title, ViewerScript: s.viewer.ScriptURL}
}

func (s *Service) catalogPage(ctx handler.Context, _ CatalogRequest) handler.Response {
	products, err := s.catalog.List(ctx)
	if err != nil {
		return handler.Error(err)
	}
	return handler.Templ(s.views.CatalogPage(CatalogPageParams{
		Layout:   s.layout(""),
		Products: products,
	}))
}

func (s *Service) productPage(ctx handler.Context, req ProductRequest) handler.Response {
	if !catalog.ValidSlug(req.Slug) {
		return handler.Error(errors.Join(handler.ErrNotFound, ErrProductNotFound))
	}
	p, err := s.catalog.Get(ctx, req.Slug)
	if errors.Is(err, catalog.ErrNotFound) {
		return handler.Error(errors.Join(handler.ErrNotFound, ErrProductNotFound, err))
	}
	if err != nil {
		return handler.Error(err)
	}

	tab := req.Tab
	if tab != TabAR {
		tab = TabPreview
	}

	base := s.siteRoot(ctx)
	var panel ARPanel
	if tab == TabAR {
		if panel, err = s.arPanel(ctx, base, p.Asset); err != nil {
			return handler.Error(err)
		}
	}
	share, err := s.dispatcher.ShareURL(base, p.Asset)
	if err != nil {
		return handler.Error(err)
	}

	return handler.Templ(s.views.ProductPage(ProductPageParams{
		Layout:   s.layout(p.Name),
		Product:  p,
		Tab:      tab,
		Viewer:   s.viewerMarkup(p.Asset),
		AR:       panel,
		ShareURL: share,
	}))
}

func (s *Service) arPage(ctx handler.Context, req ARRequest) handler.Response {
	asset := req.Asset()
	if err := asset.Validate(); err != nil {
		return handler.Error(errors.Join(handler.ErrBadRequest, ErrInvalidAsset, err))
	}

	panel, err := s.arPanel(ctx, s.siteRoot(ctx), asset)
	if err != nil {
		return handler.Error(err)
	}

	return handler.Templ(s.views.ARPage(ARPageParams{
		Layout: s.layout(asset.Name),
		Asset:  asset,
		Viewer: s.viewerMarkup(asset),
		AR:     panel,
	}))
}

// launch performs the hand-off server side: iOS gets a page activating the
// Quick Look anchor, Android is sent to Scene Viewer and other clients land
// on the shareable AR page.
func (s *Service) launch(ctx handler.Context, req ARRequest) handler.Response {
	asset := req.Asset()
	if err := asset.Validate(); err != nil {
		return handler.Error(errors.Join(handler.ErrBadRequest, ErrInvalidAsset, err))
	}

	action, err := s.dispatch(ctx, s.siteRoot(ctx), asset)
	if err != nil {
		return handler.Error(err)
	}

	switch action.Kind {
	case arlaunch.KindQuickLook:
		return handler.Templ(s.views.LaunchPage(LaunchPageParams{
			Layout: s.layout(asset.Name),
			Action: action,
		}))
	case arlaunch.KindSceneViewer:
		return handler.Redirect(action.Href)
	default:
		return handler.Redirect(action.ShareURL)
	}
}

func (s *Service) dispatch(ctx handler.Context, base *url.URL, asset arlaunch.Asset) (arlaunch.Action, error) {
	action, err := s.dispatcher.Dispatch(base, asset, ctx.Platform())
	if err != nil {
		return arlaunch.Action{}, errors.Join(handler.ErrBadRequest, ErrInvalidAsset, err)
	}
	s.logPlatform(ctx, "ar action dispatched",
		logger.ARAction(string(action.Kind)),
		slog.String("product", asset.Name),
	)
	return action, nil
}

func (s *Service) arPanel(ctx handler.Context, base *url.URL, asset arlaunch.Asset) (ARPanel, error) {
	action, err := s.dispatch(ctx, base, asset)
	if err != nil {
		return ARPanel{}, err
	}

	panel := ARPanel{
		Action:   action,
		Platform: ctx.Platform(),
		Asset:    asset,
		QRPath:   "/ar/qr?" + asset.Query().Encode(),
	}
	if action.IntentURL != "" {
		// Built by the dispatcher from escaped components.
		panel.IntentURL = template.URL(action.IntentURL)
	}
	if action.Kind == arlaunch.KindQRHandoff {
		panel.QRImage = s.qrDataURI(ctx, action.ShareURL, s.defaultQRStyle())
	}
	return panel, nil
}

// viewerMarkup renders the previewer element for asset. The same element
// offers the viewer's own AR button on capable devices.
func (s *Service) viewerMarkup(asset arlaunch.Asset) ViewerMarkup {
	attrs := append(s.preview.Attributes(s.link(asset.SceneURL)),
		preview.Attribute{Name: "alt", Value: asset.Name},
		preview.Attribute{Name: "ios-src", Value: s.link(asset.ARURL)},
		preview.Attribute{Name: "ar-modes", Value: s.viewer.ARModes},
		preview.Attribute{Name: "ar"},
	)
	return ViewerMarkup{
		Open:  template.HTML(s.viewer.OpenTag(attrs)),
		Close: template.HTML(s.viewer.CloseTag()),
	}
}
