package showroom

import (
	"errors"

	"github.com/dmitrymomot/arshowroom/handler"
	"github.com/dmitrymomot/arshowroom/pkg/arlaunch"
)

// apiDispatch returns the AR action for the calling client as JSON.
func (s *Service) apiDispatch(ctx handler.Context, req ARRequest) handler.Response {
	asset := req.Asset()
	if err := asset.Validate(); err != nil {
		return handler.JSONError(errors.Join(handler.ErrBadRequest, ErrInvalidAsset, err))
	}

	action, err := s.dispatch(ctx, s.siteRoot(ctx), asset)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(action)
}

// apiPreview returns the previewer configuration and the element attributes
// for src.
func (s *Service) apiPreview(_ handler.Context, req PreviewRequest) handler.Response {
	src := req.Src
	if src == "" {
		src = arlaunch.DefaultAsset.SceneURL
	}
	return handler.JSON(previewData{
		Config:     s.preview,
		Viewer:     s.viewer,
		Attributes: s.preview.Attributes(s.link(src)),
	})
}
