package useragent

import "strings"

// Platform is the AR-relevant runtime class of a client.
type Platform string

const (
	// PlatformIOS identifies iPhone, iPad and iPod clients (AR Quick Look).
	PlatformIOS Platform = "ios"

	// PlatformAndroid identifies Android clients (Scene Viewer).
	PlatformAndroid Platform = "android"

	// PlatformOther identifies everything else, desktop browsers included.
	PlatformOther Platform = "other"
)

// String returns the platform identifier.
func (p Platform) String() string { return string(p) }

// Classification is the result of classifying a user agent string.
// It is derived once per request and never mutated afterwards.
type Classification struct {
	Platform Platform
	Mobile   bool
}

// IsIOS reports whether the client runs iOS.
func (c Classification) IsIOS() bool { return c.Platform == PlatformIOS }

// IsAndroid reports whether the client runs Android.
func (c Classification) IsAndroid() bool { return c.Platform == PlatformAndroid }

// IsOther reports whether the client has no native AR viewer.
func (c Classification) IsOther() bool { return !c.IsIOS() && !c.IsAndroid() }

// String returns the platform identifier.
func (c Classification) String() string {
	if c.Platform == "" {
		return PlatformOther.String()
	}
	return c.Platform.String()
}

// Classify returns the platform classification of a user agent string.
// Matching is case-insensitive; unknown or empty strings classify as Other.
func Classify(ua string) Classification {
	lowerUA := strings.ToLower(ua)

	platform := PlatformOther
	switch {
	case iOSKeywords.contains(lowerUA):
		platform = PlatformIOS
	case androidKeywords.contains(lowerUA):
		platform = PlatformAndroid
	}

	return Classification{
		Platform: platform,
		Mobile:   platform != PlatformOther,
	}
}
