package arlaunch

import (
	"net/url"
	"time"
)

const (
	// DefaultSceneViewerEndpoint is the Scene Viewer launch endpoint.
	DefaultSceneViewerEndpoint = "https://arvr.google.com/scene-viewer/1.0"
	// DefaultFallbackDelay gives the external hand-off time to resolve before
	// the manual instructions appear. It is not a retry policy.
	DefaultFallbackDelay = 2 * time.Second
	// DefaultFallbackMessage is shown when Scene Viewer does not take over.
	DefaultFallbackMessage = "If AR did not open, make sure Google Play Services for AR is installed and open this page in Chrome."
	// DefaultSharePath is the path of the shareable AR page.
	DefaultSharePath = "/ar"
	// ARCorePackage is the Android package handling Scene Viewer intents.
	ARCorePackage = "com.google.ar.core"
)

// Option configures a Dispatcher.
type Option func(*config)

type config struct {
	sceneViewerEndpoint string
	fallbackDelay       time.Duration
	fallbackMessage     string
	sharePath           string
	browserFallback     bool
}

func defaultConfig() *config {
	return &config{
		sceneViewerEndpoint: DefaultSceneViewerEndpoint,
		fallbackDelay:       DefaultFallbackDelay,
		fallbackMessage:     DefaultFallbackMessage,
		sharePath:           DefaultSharePath,
		browserFallback:     true,
	}
}

// WithSceneViewerEndpoint overrides the Scene Viewer endpoint.
func WithSceneViewerEndpoint(endpoint string) Option {
	u, err := url.Parse(endpoint)
	if endpoint == "" || err != nil || !u.IsAbs() {
		panic("WithSceneViewerEndpoint: endpoint must be an absolute URL")
	}
	return func(c *config) { c.sceneViewerEndpoint = endpoint }
}

// WithFallbackDelay sets how long the Android fallback hint waits.
func WithFallbackDelay(d time.Duration) Option {
	if d < 0 {
		panic("WithFallbackDelay: duration must be >= 0")
	}
	return func(c *config) { c.fallbackDelay = d }
}

// WithFallbackMessage sets the Android fallback hint text.
func WithFallbackMessage(msg string) Option {
	return func(c *config) {
		if msg != "" {
			c.fallbackMessage = msg
		}
	}
}

// WithSharePath sets the path of the shareable AR page.
func WithSharePath(path string) Option {
	if path == "" || path[0] != '/' {
		panic("WithSharePath: path must start with '/'")
	}
	return func(c *config) { c.sharePath = path }
}

// WithBrowserFallback toggles the browser_fallback_url of the intent URL.
func WithBrowserFallback(enabled bool) Option {
	return func(c *config) { c.browserFallback = enabled }
}
