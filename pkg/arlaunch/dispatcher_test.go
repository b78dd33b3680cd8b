package arlaunch_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/arshowroom/pkg/arlaunch"
	"github.com/dmitrymomot/arshowroom/pkg/useragent"
)

var (
	ios     = useragent.Classification{Platform: useragent.PlatformIOS, Mobile: true}
	android = useragent.Classification{Platform: useragent.PlatformAndroid, Mobile: true}
	other   = useragent.Classification{Platform: useragent.PlatformOther}
)

func mustBase(t *testing.T) *url.URL {
	t.Helper()
	u, err := url.Parse("https://showroom.example.com")
	require.NoError(t, err)
	return u
}

func TestDispatchIOS(t *testing.T) {
	t.Parallel()

	d := arlaunch.New()
	asset := arlaunch.Asset{SceneURL: "/a.glb", ARURL: "/a.usdz"}

	action, err := d.Dispatch(mustBase(t), asset, ios)
	require.NoError(t, err)

	assert.Equal(t, arlaunch.KindQuickLook, action.Kind)
	assert.Equal(t, arlaunch.RelAR, action.Rel)
	assert.Equal(t, "https://showroom.example.com/a.usdz", action.Href)

	href, err := url.Parse(action.Href)
	require.NoError(t, err)
	assert.Equal(t, "/a.usdz", href.Path)

	// Quick Look is the only hand-off offered.
	assert.Empty(t, action.IntentURL)
	assert.Empty(t, action.ShareURL)
	assert.Empty(t, action.Target)
	assert.Zero(t, action.FallbackDelay)
}

func TestDispatchAndroid(t *testing.T) {
	t.Parallel()

	d := arlaunch.New()
	asset := arlaunch.Asset{SceneURL: "/a.glb", ARURL: "/a.usdz"}

	action, err := d.Dispatch(mustBase(t), asset, android)
	require.NoError(t, err)

	assert.Equal(t, arlaunch.KindSceneViewer, action.Kind)
	assert.Equal(t, "_blank", action.Target)
	assert.Equal(t, arlaunch.DefaultFallbackDelay, action.FallbackDelay)
	assert.Equal(t, int64(2000), action.FallbackAfterMS)
	assert.Equal(t, arlaunch.DefaultFallbackMessage, action.FallbackMessage)

	launch, err := url.Parse(action.Href)
	require.NoError(t, err)
	assert.Equal(t, "arvr.google.com", launch.Host)
	assert.Equal(t, "/scene-viewer/1.0", launch.Path)
	assert.Equal(t, "https://showroom.example.com/a.glb", launch.Query().Get("file"))
	assert.Equal(t, "ar_only", launch.Query().Get("mode"))

	// The absolute URL travels percent-encoded.
	assert.Contains(t, launch.RawQuery, "file="+url.QueryEscape("https://showroom.example.com/a.glb"))
	assert.NotContains(t, launch.RawQuery, "file=https://")
}

func TestDispatchAndroidIntent(t *testing.T) {
	t.Parallel()

	d := arlaunch.New()
	asset := arlaunch.Asset{Name: "Sofa", SceneURL: "https://cdn.example.com/m/sofa.glb", ARURL: "/a.usdz"}

	action, err := d.Dispatch(mustBase(t), asset, android)
	require.NoError(t, err)

	intent := action.IntentURL
	require.True(t, strings.HasPrefix(intent, "intent://arvr.google.com/scene-viewer/1.0?"), intent)
	assert.Contains(t, intent, "file="+url.QueryEscape("https://cdn.example.com/m/sofa.glb"))
	assert.Contains(t, intent, "mode=ar_only")
	assert.Contains(t, intent, "title=Sofa")
	assert.Contains(t, intent, "#Intent;scheme=https;package=com.google.ar.core;action=android.intent.action.VIEW;")
	assert.True(t, strings.HasSuffix(intent, ";end;"))

	idx := strings.Index(intent, "S.browser_fallback_url=")
	require.Positive(t, idx)
	raw := strings.TrimSuffix(intent[idx+len("S.browser_fallback_url="):], ";end;")
	fallback, err := url.QueryUnescape(raw)
	require.NoError(t, err)
	fu, err := url.Parse(fallback)
	require.NoError(t, err)
	assert.Equal(t, "/ar", fu.Path)
	assert.Equal(t, asset, arlaunch.ParseShare(fu.Query()))
}

func TestDispatchAndroidWithoutBrowserFallback(t *testing.T) {
	t.Parallel()

	d := arlaunch.New(arlaunch.WithBrowserFallback(false))
	action, err := d.Dispatch(mustBase(t), arlaunch.DefaultAsset, android)
	require.NoError(t, err)
	assert.NotContains(t, action.IntentURL, "S.browser_fallback_url")
}

func TestDispatchOther(t *testing.T) {
	t.Parallel()

	d := arlaunch.New()
	asset := arlaunch.Asset{Name: "Sofa & Chair = 100%", SceneURL: "/a.glb", ARURL: "/a.usdz"}

	action, err := d.Dispatch(mustBase(t), asset, other)
	require.NoError(t, err)

	assert.Equal(t, arlaunch.KindQRHandoff, action.Kind)
	assert.Empty(t, action.Href)
	assert.Empty(t, action.Rel)
	assert.Empty(t, action.IntentURL)

	share, err := url.Parse(action.ShareURL)
	require.NoError(t, err)
	assert.Equal(t, "showroom.example.com", share.Host)
	assert.Equal(t, "/ar", share.Path)
	assert.Equal(t, asset, arlaunch.ParseShare(share.Query()))
}

func TestDispatchErrors(t *testing.T) {
	t.Parallel()

	d := arlaunch.New()

	_, err := d.Dispatch(mustBase(t), arlaunch.Asset{SceneURL: "/a.glb"}, ios)
	require.ErrorIs(t, err, arlaunch.ErrEmptyARURL)

	_, err = d.Dispatch(mustBase(t), arlaunch.Asset{ARURL: "/a.usdz"}, android)
	require.ErrorIs(t, err, arlaunch.ErrEmptySceneURL)

	_, err = d.Dispatch(nil, arlaunch.DefaultAsset, other)
	require.ErrorIs(t, err, arlaunch.ErrNilBase)

	_, err = d.Dispatch(mustBase(t), arlaunch.Asset{SceneURL: "/a.glb", ARURL: "http://[::1"}, ios)
	require.ErrorIs(t, err, arlaunch.ErrInvalidURL)
}

func TestDispatchIsRepeatable(t *testing.T) {
	t.Parallel()

	d := arlaunch.New()
	first, err := d.Dispatch(mustBase(t), arlaunch.DefaultAsset, android)
	require.NoError(t, err)
	second, err := d.Dispatch(mustBase(t), arlaunch.DefaultAsset, android)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	d := arlaunch.New(
		arlaunch.WithSceneViewerEndpoint("https://arvr.google.com/scene-viewer/1.2"),
		arlaunch.WithFallbackDelay(500*time.Millisecond),
		arlaunch.WithFallbackMessage("try Chrome"),
		arlaunch.WithSharePath("/view"),
	)

	action, err := d.Dispatch(mustBase(t), arlaunch.DefaultAsset, android)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(action.Href, "https://arvr.google.com/scene-viewer/1.2?"))
	assert.Equal(t, int64(500), action.FallbackAfterMS)
	assert.Equal(t, "try Chrome", action.FallbackMessage)

	handoff, err := d.Dispatch(mustBase(t), arlaunch.DefaultAsset, other)
	require.NoError(t, err)
	assert.Contains(t, handoff.ShareURL, "https://showroom.example.com/view?")

	assert.Panics(t, func() { arlaunch.WithSceneViewerEndpoint("/relative") })
	assert.Panics(t, func() { arlaunch.WithSharePath("ar") })
	assert.Panics(t, func() { arlaunch.WithFallbackDelay(-time.Second) })
}

func TestDispatchUnderPathPrefix(t *testing.T) {
	t.Parallel()

	root, err := url.Parse("https://shop.example.com/showroom")
	require.NoError(t, err)
	asset := arlaunch.Asset{Name: "Sofa", SceneURL: "/a.glb", ARURL: "/a.usdz"}
	d := arlaunch.New()

	quick, err := d.Dispatch(root, asset, ios)
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/showroom/a.usdz", quick.Href)

	scene, err := d.Dispatch(root, asset, android)
	require.NoError(t, err)
	assert.Contains(t, scene.Href, "file="+url.QueryEscape("https://shop.example.com/showroom/a.glb"))
	assert.Contains(t, scene.IntentURL, url.QueryEscape("https://shop.example.com/showroom/ar?"))

	handoff, err := d.Dispatch(root, asset, other)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(handoff.ShareURL, "https://shop.example.com/showroom/ar?"), handoff.ShareURL)
}
