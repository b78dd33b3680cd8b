// Package useragent classifies HTTP User-Agent strings into the platform
// classes that matter for augmented-reality hand-off.
//
// The classification is a tri-state: iOS (AR Quick Look), Android (Scene
// Viewer) or Other (no native AR viewer, desktop browsers and bots). A derived
// Mobile flag is true iff the platform is not Other.
//
// Matching is a case-insensitive substring test over curated keyword sets:
//
//   - "iphone", "ipad", "ipod" classify as iOS
//   - "android" classifies as Android
//   - anything else, including the empty string, classifies as Other
//
// Classify is a pure function with no error path, which keeps the matching
// rules in one place and lets them be updated without touching dispatch code.
//
// # Usage
//
//	import "github.com/dmitrymomot/arshowroom/pkg/useragent"
//
//	c := useragent.Classify(r.UserAgent())
//	if c.IsIOS() {
//		// offer AR Quick Look
//	}
//
// The Middleware classifies every request once, before any handler runs, and
// stores the result in the request context:
//
//	r := chi.NewRouter()
//	r.Use(useragent.Middleware)
//
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		c := useragent.FromContext(r.Context())
//		// ...
//	})
//
// Describe builds a short human-readable identifier ("Safari on iOS") that is
// handy for structured logs.
package useragent
