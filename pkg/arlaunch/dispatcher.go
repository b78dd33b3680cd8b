package arlaunch

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrymomot/arshowroom/pkg/useragent"
)

// Kind names the hand-off convention chosen for a client.
type Kind string

const (
	KindQuickLook   Kind = "quick_look"
	KindSceneViewer Kind = "scene_viewer"
	KindQRHandoff   Kind = "qr_handoff"
)

// RelAR is the link relation that makes iOS Safari open AR Quick Look.
const RelAR = "ar"

// Action is the single hand-off a client should perform.
type Action struct {
	Kind     Kind               `json:"kind"`
	Platform useragent.Platform `json:"platform"`
	Asset    Asset              `json:"asset"`

	// Href is the navigation target: the USDZ file for Quick Look or the
	// Scene Viewer launch URL for Android.
	Href   string `json:"href,omitempty"`
	Rel    string `json:"rel,omitempty"`
	Target string `json:"target,omitempty"`

	IntentURL       string        `json:"intent_url,omitempty"`
	FallbackMessage string        `json:"fallback_message,omitempty"`
	FallbackDelay   time.Duration `json:"-"`
	FallbackAfterMS int64         `json:"fallback_after_ms,omitempty"`

	// ShareURL is the page a second device opens after scanning the QR code.
	ShareURL string `json:"share_url,omitempty"`
}

// Dispatcher selects and builds AR hand-off actions.
// It holds only immutable configuration and is safe for concurrent use.
type Dispatcher struct {
	cfg *config
}

// New returns a Dispatcher with the given options applied.
func New(opts ...Option) *Dispatcher {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Dispatcher{cfg: cfg}
}

// Dispatch returns the hand-off for the classified client. base is the site
// root, including any path prefix the showroom is mounted under; asset URLs
// are resolved against it with Resolve.
func (d *Dispatcher) Dispatch(base *url.URL, asset Asset, c useragent.Classification) (Action, error) {
	switch c.Platform {
	case useragent.PlatformIOS:
		return d.QuickLook(base, asset)
	case useragent.PlatformAndroid:
		return d.SceneViewer(base, asset)
	default:
		return d.Handoff(base, asset)
	}
}

// QuickLook builds the AR Quick Look action for the USDZ file.
func (d *Dispatcher) QuickLook(base *url.URL, asset Asset) (Action, error) {
	if strings.TrimSpace(asset.ARURL) == "" {
		return Action{}, ErrEmptyARURL
	}
	href, err := Resolve(base, asset.ARURL)
	if err != nil {
		return Action{}, err
	}
	return Action{
		Kind:     KindQuickLook,
		Platform: useragent.PlatformIOS,
		Asset:    asset,
		Href:     href,
		Rel:      RelAR,
	}, nil
}

// SceneViewer builds the Scene Viewer action for the GLB file.
func (d *Dispatcher) SceneViewer(base *url.URL, asset Asset) (Action, error) {
	if strings.TrimSpace(asset.SceneURL) == "" {
		return Action{}, ErrEmptySceneURL
	}
	file, err := Resolve(base, asset.SceneURL)
	if err != nil {
		return Action{}, err
	}

	var fallback string
	if d.cfg.browserFallback {
		if fallback, err = d.ShareURL(base, asset); err != nil {
			return Action{}, err
		}
	}

	return Action{
		Kind:            KindSceneViewer,
		Platform:        useragent.PlatformAndroid,
		Asset:           asset,
		Href:            d.SceneViewerURL(file, asset.Name),
		Target:          "_blank",
		IntentURL:       d.IntentURL(file, asset.Name, fallback),
		FallbackMessage: d.cfg.fallbackMessage,
		FallbackDelay:   d.cfg.fallbackDelay,
		FallbackAfterMS: d.cfg.fallbackDelay.Milliseconds(),
	}, nil
}

// Handoff builds the cross-device action: a share URL to render as QR code.
func (d *Dispatcher) Handoff(base *url.URL, asset Asset) (Action, error) {
	share, err := d.ShareURL(base, asset)
	if err != nil {
		return Action{}, err
	}
	return Action{
		Kind:     KindQRHandoff,
		Platform: useragent.PlatformOther,
		Asset:    asset,
		ShareURL: share,
	}, nil
}

// sceneViewerQuery encodes the launch parameters. file must be absolute.
func sceneViewerQuery(file, title string) url.Values {
	q := url.Values{}
	q.Set("file", file)
	q.Set("mode", "ar_only")
	if title != "" {
		q.Set("title", title)
	}
	return q
}

// SceneViewerURL returns the launch URL for an absolute GLB URL.
func (d *Dispatcher) SceneViewerURL(file, title string) string {
	return d.cfg.sceneViewerEndpoint + "?" + sceneViewerQuery(file, title).Encode()
}

// IntentURL returns the Android intent form of the Scene Viewer launch.
// An empty fallback omits S.browser_fallback_url.
func (d *Dispatcher) IntentURL(file, title, fallback string) string {
	endpoint, _ := url.Parse(d.cfg.sceneViewerEndpoint)

	var b strings.Builder
	fmt.Fprintf(&b, "intent://%s%s?%s#Intent;scheme=%s;package=%s;action=android.intent.action.VIEW;",
		endpoint.Host, endpoint.EscapedPath(), sceneViewerQuery(file, title).Encode(), endpoint.Scheme, ARCorePackage)
	if fallback != "" {
		fmt.Fprintf(&b, "S.browser_fallback_url=%s;", url.QueryEscape(fallback))
	}
	b.WriteString("end;")
	return b.String()
}

// ShareURL returns the absolute URL of the shareable AR page for asset,
// mounted under base's path prefix.
// The asset values are encoded verbatim; ParseShare restores them.
func (d *Dispatcher) ShareURL(base *url.URL, asset Asset) (string, error) {
	if base == nil {
		return "", ErrNilBase
	}
	ref := &url.URL{Path: joinPath(base.Path, d.cfg.sharePath), RawQuery: asset.Query().Encode()}
	return rootDir(base).ResolveReference(ref).String(), nil
}
