package preview

import (
	"fmt"
	"html"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultScriptURL is the model-viewer module bundle.
	DefaultScriptURL = "https://ajax.googleapis.com/ajax/libs/model-viewer/4.0.0/model-viewer.min.js"
	// DefaultElement is the custom element the bundle defines.
	DefaultElement = "model-viewer"
	// DefaultARModes lets the element fall back through WebXR, Scene Viewer and Quick Look.
	DefaultARModes = "webxr scene-viewer quick-look"

	// maxShadowBlur maps ContactShadows.Blur onto shadow-softness in [0, 1].
	maxShadowBlur = 5.0
)

var (
	customElement = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)+$`)
	attributeName = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

// Viewer is the rendering capability the pages load once.
type Viewer struct {
	ScriptURL string `json:"script_url"`
	Element   string `json:"element"`
	ARModes   string `json:"ar_modes"`
}

// DefaultViewer returns the model-viewer capability.
func DefaultViewer() Viewer {
	return Viewer{
		ScriptURL: DefaultScriptURL,
		Element:   DefaultElement,
		ARModes:   DefaultARModes,
	}
}

// NewViewer validates and returns a viewer capability. An empty arModes
// keeps DefaultARModes.
func NewViewer(scriptURL, element, arModes string) (Viewer, error) {
	v := Viewer{ScriptURL: scriptURL, Element: element, ARModes: arModes}
	if v.ARModes == "" {
		v.ARModes = DefaultARModes
	}
	if err := v.Validate(); err != nil {
		return Viewer{}, err
	}
	return v, nil
}

// Validate checks the script URL and that the element is a valid custom
// element name.
func (v Viewer) Validate() error {
	if v.ScriptURL == "" {
		return fmt.Errorf("%w: empty script url", ErrInvalidViewer)
	}
	if _, err := url.Parse(v.ScriptURL); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidViewer, err)
	}
	if !customElement.MatchString(v.Element) {
		return fmt.Errorf("%w: %q is not a custom element name", ErrInvalidViewer, v.Element)
	}
	return nil
}

// Attribute is one element attribute. An empty Value renders as a boolean
// attribute.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Boolean reports whether the attribute is rendered without a value.
func (a Attribute) Boolean() bool { return a.Value == "" }

// OpenTag renders the opening viewer tag with HTML-escaped attribute values.
// Attributes with invalid names are dropped.
func (v Viewer) OpenTag(attrs []Attribute) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(v.Element)
	for _, a := range attrs {
		if !attributeName.MatchString(a.Name) {
			continue
		}
		b.WriteString(" ")
		b.WriteString(a.Name)
		if !a.Boolean() {
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(a.Value))
			b.WriteString(`"`)
		}
	}
	b.WriteString(">")
	return b.String()
}

// CloseTag renders the closing viewer tag.
func (v Viewer) CloseTag() string {
	return "</" + v.Element + ">"
}

// Attributes maps the configuration onto viewer element attributes for the
// model at src.
func (c Config) Attributes(src string) []Attribute {
	theta, phi, radius := c.Camera.Position.Spherical()

	attrs := []Attribute{
		{Name: "src", Value: src},
		{Name: "loading", Value: "eager"},
		{Name: "camera-orbit", Value: orbit(num(theta)+"deg", phi, radius)},
		{Name: "min-camera-orbit", Value: orbit("auto", deg(c.Orbit.MinPolar), c.Orbit.MinDistance)},
		{Name: "max-camera-orbit", Value: orbit("auto", deg(c.Orbit.MaxPolar), c.Orbit.MaxDistance)},
		{Name: "field-of-view", Value: num(c.Camera.FOV) + "deg"},
		{Name: "exposure", Value: num(c.Lights.Ambient + c.Lights.Spot.Intensity)},
		{Name: "shadow-intensity", Value: num(c.Shadows.Opacity)},
		{Name: "shadow-softness", Value: num(math.Min(1, c.Shadows.Blur/maxShadowBlur))},
		{Name: "environment-image", Value: c.environmentImage()},
		{Name: "interaction-prompt", Value: "none"},
	}
	if c.Orbit.Rotate {
		attrs = append(attrs, Attribute{Name: "camera-controls"})
	}
	if !c.Orbit.Pan {
		attrs = append(attrs, Attribute{Name: "disable-pan"})
	}
	if !c.Orbit.Zoom {
		attrs = append(attrs, Attribute{Name: "disable-zoom"})
	}
	if c.Idle.Amplitude > 0 {
		attrs = append(attrs,
			Attribute{Name: "data-idle-amplitude", Value: num(c.Idle.Amplitude)},
			Attribute{Name: "data-idle-frequency", Value: num(c.Idle.Frequency)},
		)
	}
	return attrs
}

func (c Config) environmentImage() string {
	if c.Environment.Image != "" {
		return c.Environment.Image
	}
	return "neutral"
}

func orbit(theta string, phiDeg, radius float64) string {
	return theta + " " + num(phiDeg) + "deg " + num(radius) + "m"
}

func deg(rad float64) float64 {
	return math.Round(rad*180/math.Pi*1e6) / 1e6
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e6)/1e6, 'f', -1, 64)
}
