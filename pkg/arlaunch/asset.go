package arlaunch

import (
	"fmt"
	"net/url"
	"strings"
)

// Asset references one 3D model in both formats the AR viewers consume.
// It is immutable for the duration of a page view.
type Asset struct {
	Name     string `json:"name" bson:"name" yaml:"name"`
	SceneURL string `json:"scene_url" bson:"scene_url" yaml:"scene_url"` // GLB, Scene Viewer and inline preview
	ARURL    string `json:"ar_url" bson:"ar_url" yaml:"ar_url"`          // USDZ, AR Quick Look
}

// DefaultAsset is served when a share URL omits parameters.
var DefaultAsset = Asset{
	Name:     "Modern Comfort Sofa",
	SceneURL: "/assets/sofa.glb",
	ARURL:    "/assets/sofa.usdz",
}

// Query parameter names of the shareable AR page.
const (
	ParamName     = "product"
	ParamSceneURL = "glb"
	ParamARURL    = "usdz"
)

// Validate checks that both URLs are present and parseable.
func (a Asset) Validate() error {
	if strings.TrimSpace(a.SceneURL) == "" {
		return ErrEmptySceneURL
	}
	if strings.TrimSpace(a.ARURL) == "" {
		return ErrEmptyARURL
	}
	for _, raw := range []string{a.SceneURL, a.ARURL} {
		if _, err := url.Parse(raw); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidURL, err)
		}
	}
	return nil
}

// WithDefaults fills empty fields from DefaultAsset.
func (a Asset) WithDefaults() Asset {
	if a.Name == "" {
		a.Name = DefaultAsset.Name
	}
	if a.SceneURL == "" {
		a.SceneURL = DefaultAsset.SceneURL
	}
	if a.ARURL == "" {
		a.ARURL = DefaultAsset.ARURL
	}
	return a
}

// Query encodes the asset as share page query parameters.
func (a Asset) Query() url.Values {
	v := url.Values{}
	v.Set(ParamName, a.Name)
	v.Set(ParamSceneURL, a.SceneURL)
	v.Set(ParamARURL, a.ARURL)
	return v
}

// ParseShare decodes share page query parameters. Absent or empty parameters
// fall back to DefaultAsset.
func ParseShare(q url.Values) Asset {
	return Asset{
		Name:     q.Get(ParamName),
		SceneURL: q.Get(ParamSceneURL),
		ARURL:    q.Get(ParamARURL),
	}.WithDefaults()
}

// Resolve returns ref as an absolute URL under the site root. Root-relative
// refs keep root's path prefix: "/assets/a.glb" under https://h/shop becomes
// https://h/shop/assets/a.glb. Absolute refs are returned unchanged.
func Resolve(root *url.URL, ref string) (string, error) {
	if root == nil {
		return "", ErrNilBase
	}
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme == "" && u.Host == "" && strings.HasPrefix(u.Path, "/") {
		u.Path = joinPath(root.Path, u.Path)
		u.RawPath = ""
	}
	return rootDir(root).ResolveReference(u).String(), nil
}

// rootDir returns root as a directory URL without query or fragment.
func rootDir(root *url.URL) *url.URL {
	dir := *root
	dir.Path = strings.TrimSuffix(root.Path, "/") + "/"
	dir.RawPath = ""
	dir.RawQuery = ""
	dir.Fragment = ""
	return &dir
}

func joinPath(prefix, p string) string {
	return strings.TrimSuffix(prefix, "/") + p
}
