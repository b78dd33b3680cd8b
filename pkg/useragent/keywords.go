package useragent

import "strings"

// keywordSet optimizes keyword lookups using map structure
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

// contains reports whether any keyword is a substring of s.
// s must already be lower-cased.
func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// Platform keyword sets. iOS wins over Android when both are present.
var (
	iOSKeywords     = newKeywordSet("iphone", "ipad", "ipod")
	androidKeywords = newKeywordSet("android")
)
