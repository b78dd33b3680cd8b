package useragent

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Browser family identifiers used by Describe
const (
	BrowserEdge    = "edge"
	BrowserSamsung = "samsung internet"
	BrowserOpera   = "opera"
	BrowserFirefox = "firefox"
	BrowserChrome  = "chrome"
	BrowserSafari  = "safari"
	BrowserBot     = "bot"
	BrowserUnknown = "unknown"
)

type browserPattern struct {
	name     string
	keywords keywordSet
}

// Order matters: Chromium derivatives advertise "chrome" and "safari" too.
var browserPatterns = []browserPattern{
	{name: BrowserBot, keywords: newKeywordSet("bot", "spider", "crawler", "facebookexternalhit")},
	{name: BrowserEdge, keywords: newKeywordSet("edg/", "edge/", "edga/", "edgios/")},
	{name: BrowserSamsung, keywords: newKeywordSet("samsungbrowser")},
	{name: BrowserOpera, keywords: newKeywordSet("opr/", "opera")},
	{name: BrowserFirefox, keywords: newKeywordSet("firefox", "fxios")},
	{name: BrowserChrome, keywords: newKeywordSet("chrome", "crios")},
	{name: BrowserSafari, keywords: newKeywordSet("safari")},
}

// BrowserFamily returns the browser family of a user agent string.
func BrowserFamily(ua string) string {
	lowerUA := strings.ToLower(ua)
	if lowerUA == "" {
		return BrowserUnknown
	}
	for _, p := range browserPatterns {
		if p.keywords.contains(lowerUA) {
			return p.name
		}
	}
	return BrowserUnknown
}

// formatPlatformName formats the platform name with proper capitalization
func formatPlatformName(p Platform) string {
	switch p {
	case PlatformIOS:
		return "iOS"
	case PlatformAndroid:
		return "Android"
	default:
		return "Other"
	}
}

// Describe returns a short human-readable identifier for logs,
// e.g. "Safari on iOS" or "Chrome on Other".
func Describe(ua string) string {
	family := BrowserFamily(ua)
	platform := formatPlatformName(Classify(ua).Platform)
	if family == BrowserUnknown {
		return fmt.Sprintf("Unknown browser on %s", platform)
	}
	// Casers are stateful, so one is created per call
	title := cases.Title(language.English)
	return fmt.Sprintf("%s on %s", title.String(family), platform)
}
