package preview

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Vec3 is a position in scene units.
type Vec3 [3]float64

// Camera is the initial perspective camera.
type Camera struct {
	Position Vec3    `json:"position"`
	FOV      float64 `json:"fov"` // degrees
}

// SpotLight casts the key light and its shadow.
type SpotLight struct {
	Position  Vec3    `json:"position"`
	Angle     float64 `json:"angle"`
	Penumbra  float64 `json:"penumbra"`
	Intensity float64 `json:"intensity"`
	ShadowMap int     `json:"shadow_map"` // edge length in pixels
}

// PointLight fills from below and behind.
type PointLight struct {
	Position  Vec3    `json:"position"`
	Intensity float64 `json:"intensity"`
}

// Lights groups the fixed scene lighting.
type Lights struct {
	Ambient float64    `json:"ambient"`
	Spot    SpotLight  `json:"spot"`
	Point   PointLight `json:"point"`
}

// Environment is the image based lighting preset.
type Environment struct {
	Preset string `json:"preset"`
	// Image overrides the preset with an HDR/image URL when set.
	Image string `json:"image,omitempty"`
}

// ContactShadows is the ground shadow approximation under the model.
type ContactShadows struct {
	Y       float64 `json:"y"`
	Opacity float64 `json:"opacity"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Blur    float64 `json:"blur"`
	Far     float64 `json:"far"`
}

// Orbit constrains the user-controlled camera.
type Orbit struct {
	Pan         bool    `json:"pan"`
	Zoom        bool    `json:"zoom"`
	Rotate      bool    `json:"rotate"`
	MinDistance float64 `json:"min_distance"`
	MaxDistance float64 `json:"max_distance"`
	MinPolar    float64 `json:"min_polar"` // radians
	MaxPolar    float64 `json:"max_polar"` // radians
}

// IdleRotation is the slow yaw sway applied while the scene is idle.
type IdleRotation struct {
	Amplitude float64 `json:"amplitude"` // radians
	Frequency float64 `json:"frequency"` // radians per second
}

// Config is the complete previewer configuration.
type Config struct {
	Camera      Camera         `json:"camera"`
	Lights      Lights         `json:"lights"`
	Environment Environment    `json:"environment"`
	Shadows     ContactShadows `json:"contact_shadows"`
	Orbit       Orbit          `json:"orbit"`
	Idle        IdleRotation   `json:"idle_rotation"`
}

// Default returns the showroom configuration.
func Default() Config {
	return Config{
		Camera: Camera{Position: Vec3{0, 0, 5}, FOV: 45},
		Lights: Lights{
			Ambient: 0.4,
			Spot: SpotLight{
				Position:  Vec3{10, 10, 10},
				Angle:     0.15,
				Penumbra:  1,
				Intensity: 1,
				ShadowMap: 512,
			},
			Point: PointLight{Position: Vec3{-10, -10, -10}, Intensity: 0.5},
		},
		Environment: Environment{Preset: "apartment"},
		Shadows: ContactShadows{
			Y:       -1.4,
			Opacity: 0.75,
			Width:   10,
			Height:  10,
			Blur:    2.6,
			Far:     2,
		},
		Orbit: Orbit{
			Pan:         true,
			Zoom:        true,
			Rotate:      true,
			MinDistance: 2,
			MaxDistance: 10,
			MinPolar:    0,
			MaxPolar:    math.Pi / 2,
		},
		Idle: IdleRotation{Amplitude: 0.1, Frequency: 0.2},
	}
}

// Validate reports every constraint the configuration violates.
func (c Config) Validate() error {
	var errs []error

	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("%w: fov %v out of (0, 180)", ErrInvalidCamera, c.Camera.FOV))
	}
	if c.Camera.Position.Length() == 0 {
		errs = append(errs, fmt.Errorf("%w: camera at origin", ErrInvalidCamera))
	}
	if c.Orbit.MinDistance <= 0 || c.Orbit.MinDistance > c.Orbit.MaxDistance {
		errs = append(errs, ErrInvalidDistance)
	}
	if c.Orbit.MinPolar < 0 || c.Orbit.MaxPolar > math.Pi || c.Orbit.MinPolar > c.Orbit.MaxPolar {
		errs = append(errs, ErrInvalidPolar)
	}
	if c.Shadows.Opacity < 0 || c.Shadows.Opacity > 1 || c.Shadows.Blur < 0 {
		errs = append(errs, ErrInvalidShadow)
	}

	return errors.Join(errs...)
}

// IdleYaw returns the idle rotation around the vertical axis after elapsed.
func (c Config) IdleYaw(elapsed time.Duration) float64 {
	return math.Sin(elapsed.Seconds()*c.Idle.Frequency) * c.Idle.Amplitude
}

// Length returns the Euclidean norm.
func (v Vec3) Length() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Spherical converts a camera position to orbit coordinates: theta (yaw
// around +Y, degrees), phi (polar from +Y, degrees) and radius.
func (v Vec3) Spherical() (theta, phi, radius float64) {
	radius = v.Length()
	if radius == 0 {
		return 0, 0, 0
	}
	theta = math.Atan2(v[0], v[2]) * 180 / math.Pi
	phi = math.Acos(v[1]/radius) * 180 / math.Pi
	return theta, phi, radius
}
