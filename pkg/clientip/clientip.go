package clientip

import (
	"net"
	"net/http"
	"strings"
)

// proxyHeaders are consulted in order before X-Forwarded-For.
var proxyHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
}

// GetIP returns the client's IP address.
//
// Headers are checked in this order: CF-Connecting-IP, DO-Connecting-IP,
// the first valid entry of X-Forwarded-For, X-Real-IP, then RemoteAddr.
// Invalid values are skipped. An empty string means nothing usable was found.
func GetIP(r *http.Request) string {
	for _, h := range proxyHeaders {
		if ip := parseIP(r.Header.Get(h)); ip != "" {
			return ip
		}
	}

	for ip := range strings.SplitSeq(r.Header.Get("X-Forwarded-For"), ",") {
		if parsed := parseIP(ip); parsed != "" {
			return parsed
		}
	}

	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP returns the normalized form of s or "" when s is not an address.
func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
