// Package slug turns product names into URL path segments.
//
//	slug.Make("Modern Fabric Sofa")        // "modern-fabric-sofa"
//	slug.Make("Chaise Longue Élégante")    // "chaise-longue-elegante"
//	slug.Make("Nordic Øak Table", slug.MaxLength(10)) // "nordic-oak"
//
// Diacritics are removed with golang.org/x/text normalization, so the result
// only ever contains lowercase ASCII letters, digits and the separator.
package slug
