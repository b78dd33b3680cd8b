package useragent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/arshowroom/pkg/useragent"
)

func TestBrowserFamily(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{name: "iPhone Safari", ua: iOSAgents["iPhone Safari"], expected: useragent.BrowserSafari},
		{name: "iPhone Chrome", ua: iOSAgents["iPhone Chrome"], expected: useragent.BrowserChrome},
		{name: "iPhone Firefox", ua: iOSAgents["iPhone Firefox"], expected: useragent.BrowserFirefox},
		{name: "Samsung Internet", ua: androidAgents["Samsung Internet"], expected: useragent.BrowserSamsung},
		{name: "Chrome on Pixel", ua: androidAgents["Chrome on Pixel"], expected: useragent.BrowserChrome},
		{name: "desktop Edge", ua: otherAgents["desktop Edge"], expected: useragent.BrowserEdge},
		{name: "Googlebot", ua: otherAgents["Googlebot"], expected: useragent.BrowserBot},
		{name: "Googlebot smartphone", ua: androidAgents["Googlebot smartphone"], expected: useragent.BrowserBot},
		{name: "Opera", ua: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0.0.0 Safari/537.36 OPR/104.0.0.0", expected: useragent.BrowserOpera},
		{name: "curl", ua: otherAgents["curl"], expected: useragent.BrowserUnknown},
		{name: "empty", ua: "", expected: useragent.BrowserUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, useragent.BrowserFamily(tt.ua))
		})
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{name: "iPhone Safari", ua: iOSAgents["iPhone Safari"], expected: "Safari on iOS"},
		{name: "iPhone Chrome", ua: iOSAgents["iPhone Chrome"], expected: "Chrome on iOS"},
		{name: "Samsung Internet", ua: androidAgents["Samsung Internet"], expected: "Samsung Internet on Android"},
		{name: "Firefox Android", ua: androidAgents["Firefox Android"], expected: "Firefox on Android"},
		{name: "macOS Safari", ua: otherAgents["macOS Safari"], expected: "Safari on Other"},
		{name: "desktop Edge", ua: otherAgents["desktop Edge"], expected: "Edge on Other"},
		{name: "Googlebot", ua: otherAgents["Googlebot"], expected: "Bot on Other"},
		{name: "in-app browser", ua: iOSAgents["Facebook in-app iOS"], expected: "Unknown browser on iOS"},
		{name: "empty", ua: "", expected: "Unknown browser on Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, useragent.Describe(tt.ua))
		})
	}
}
