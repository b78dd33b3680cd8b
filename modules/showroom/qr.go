package showroom

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"html/template"
	"image/color"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/dmitrymomot/arshowroom/handler"
	"github.com/dmitrymomot/arshowroom/pkg/logger"
	"github.com/dmitrymomot/arshowroom/pkg/qrcode"
)

// QRFilename is the name browsers save the downloaded code under.
const QRFilename = "ar-qr-code.png"

// qrStyle is how a code is drawn. Colours are kept both parsed and in
// canonical "#rrggbb" form for cache keys and links.
type qrStyle struct {
	size     int
	fg, bg   color.Color
	fgHex    string
	bgHex    string
	noBorder bool
}

// parseQRStyle validates the display parameters of req.
func (s *Service) parseQRStyle(req QRRequest) (qrStyle, error) {
	style := qrStyle{
		size:     s.qrSize(req.Size),
		noBorder: req.Margin != nil && !*req.Margin,
	}
	var err error
	if style.fg, style.fgHex, err = parseQRColor(req.FG); err != nil {
		return qrStyle{}, errors.Join(handler.ErrBadRequest, ErrInvalidQRStyle, err)
	}
	if style.bg, style.bgHex, err = parseQRColor(req.BG); err != nil {
		return qrStyle{}, errors.Join(handler.ErrBadRequest, ErrInvalidQRStyle, err)
	}
	return style, nil
}

func (s *Service) defaultQRStyle() qrStyle {
	return qrStyle{size: s.qrSize(0)}
}

func parseQRColor(v string) (color.Color, string, error) {
	if v == "" {
		return nil, "", nil
	}
	c, err := qrcode.ParseHexColor(v)
	if err != nil {
		return nil, "", err
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return c, fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B), nil
}

func (st qrStyle) options() []qrcode.Option {
	opts := []qrcode.Option{qrcode.WithSize(st.size), qrcode.WithColors(st.fg, st.bg)}
	if st.noBorder {
		opts = append(opts, qrcode.WithoutBorder())
	}
	return opts
}

// query encodes the style so the download link renders the same image.
func (st qrStyle) query(q url.Values) url.Values {
	q.Set("size", strconv.Itoa(st.size))
	if st.fgHex != "" {
		q.Set("fg", st.fgHex)
	}
	if st.bgHex != "" {
		q.Set("bg", st.bgHex)
	}
	if st.noBorder {
		q.Set("margin", "0")
	}
	return q
}

func (st qrStyle) key() string {
	return fmt.Sprintf("%d:%s:%s:%t", st.size, st.fgHex, st.bgHex, st.noBorder)
}

func (s *Service) qrDialog(ctx handler.Context, req QRRequest) handler.Response {
	asset := req.Asset()
	if err := asset.Validate(); err != nil {
		return handler.Error(errors.Join(handler.ErrBadRequest, ErrInvalidAsset, err))
	}
	style, err := s.parseQRStyle(req)
	if err != nil {
		return handler.Error(err)
	}

	share, err := s.dispatcher.ShareURL(s.siteRoot(ctx), asset)
	if err != nil {
		return handler.Error(err)
	}

	download := style.query(asset.Query())
	download.Set("download", "1")

	dialog := QRDialogParams{
		Title:       asset.Name,
		ShareURL:    share,
		Image:       s.qrDataURI(ctx, share, style),
		DownloadURL: "/ar/qr.png?" + download.Encode(),
		Size:        style.size,
	}

	return handler.TemplPartial(
		s.views.QRDialog(dialog),
		s.views.QRPage(QRPageParams{Layout: s.layout("Scan to View in AR"), Dialog: dialog}),
		handler.WithTarget("#qr-dialog"),
	)
}

func (s *Service) qrImage(ctx handler.Context, req QRRequest) handler.Response {
	asset := req.Asset()
	if err := asset.Validate(); err != nil {
		return handler.Error(errors.Join(handler.ErrBadRequest, ErrInvalidAsset, err))
	}
	style, err := s.parseQRStyle(req)
	if err != nil {
		return handler.Error(err)
	}

	share, err := s.dispatcher.ShareURL(s.siteRoot(ctx), asset)
	if err != nil {
		return handler.Error(err)
	}

	png, err := s.qrPNG(ctx, share, style)
	if err != nil {
		return handler.Error(err)
	}

	opts := []handler.BlobOption{
		handler.WithCacheControl(fmt.Sprintf("public, max-age=%d", int(s.cfg.QRCacheMaxAge.Seconds()))),
	}
	if req.Download {
		opts = append(opts, handler.WithAttachment(QRFilename))
	}
	return handler.PNG(png, opts...)
}

func (s *Service) qrSize(requested int) int {
	if requested <= 0 {
		requested = s.cfg.QRSize
	}
	return qrcode.ClampSize(requested)
}

// qrDataURI returns the code as a data URI, or an empty string when it
// cannot be generated. The failure is logged and the caller renders
// without an image.
func (s *Service) qrDataURI(ctx context.Context, content string, style qrStyle) template.URL {
	png, err := s.qrPNG(ctx, content, style)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to generate qr code",
			logger.Error(err),
			slog.Int("size", style.size),
		)
		return ""
	}
	return template.URL(qrcode.EncodeDataURI(png))
}

// qrPNG renders content through the cache. Cache failures degrade to
// rendering.
func (s *Service) qrPNG(ctx context.Context, content string, style qrStyle) ([]byte, error) {
	key := qrKey(content, style)

	png, ok, err := s.qrCache.Get(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "qr cache read failed", logger.Error(err))
	}
	if ok {
		return png, nil
	}

	png, err = qrcode.Generate(content, style.options()...)
	if err != nil {
		return nil, err
	}

	if err := s.qrCache.Set(ctx, key, png); err != nil {
		s.log.WarnContext(ctx, "qr cache write failed", logger.Error(err))
	}
	return png, nil
}

func qrKey(content string, style qrStyle) string {
	sum := sha256.Sum256([]byte(style.key() + ":" + content))
	return "qr:" + hex.EncodeToString(sum[:])
}
