// Package arlaunch decides how a client opens a 3D asset in augmented reality
// and builds the URLs the operating systems' native AR viewers expect.
//
// Given an Asset (a GLB scene URL, a USDZ AR URL and a display name) and a
// useragent.Classification, Dispatcher.Dispatch returns exactly one Action:
//
//   - iOS: KindQuickLook. The view layer renders an anchor with rel="ar"
//     pointing at the USDZ file and activates it; Safari hands the file to
//     AR Quick Look. Nothing is reported back to the server.
//   - Android: KindSceneViewer. The absolute GLB URL is percent-encoded as the
//     "file" parameter of the Scene Viewer endpoint with mode=ar_only, and the
//     result is opened in a new browsing context. An intent:// form carrying
//     a browser fallback URL is produced alongside. Because no success signal
//     exists, the action also carries a fallback hint shown after a fixed
//     delay (2s by default).
//   - Other: KindQRHandoff. No native AR is attempted; the action carries a
//     shareable page URL encoding the asset as query parameters, which the
//     view layer renders as a QR code for a phone to scan.
//
// ShareURL and ParseShare are inverse operations: encoding an asset into a
// share URL and decoding the query yields the original name, scene and AR
// values. Missing parameters fall back to DefaultAsset field by field.
//
// # Usage
//
//	d := arlaunch.New()
//	base, _ := url.Parse("https://showroom.example.com")
//
//	action, err := d.Dispatch(base, asset, useragent.Classify(r.UserAgent()))
//	if err != nil {
//		// ErrEmptySceneURL, ErrEmptyARURL, ErrInvalidURL, ErrNilBase
//	}
//
//	switch action.Kind {
//	case arlaunch.KindQuickLook:
//		// <a rel="ar" href="{{action.Href}}"><img></a>
//	case arlaunch.KindSceneViewer:
//		// window.open(action.Href, "_blank")
//	case arlaunch.KindQRHandoff:
//		// render a QR code of action.ShareURL
//	}
package arlaunch
