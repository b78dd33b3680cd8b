// Package file serves the 3D assets the product pages reference, from local
// disk or an S3-compatible bucket, with the headers native AR viewers require.
//
// AR Quick Look only opens a USDZ file in place when it is served as
// model/vnd.usdz+zip with an inline disposition; Scene Viewer expects GLB
// files as model/gltf-binary. Anything else makes the phone download the
// asset as an opaque binary. ContentType and Headers encode that mapping by
// path suffix, and Sniff checks the magic bytes of a stream.
//
// # Architecture
//
// The package is built around the read-only Storage interface:
//   - Open streams an object with its size and modification time
//   - Exists checks for presence
//   - List enumerates a directory (non-recursive)
//   - URL returns the public URL of an object
//
// Two implementations are provided:
//   - LocalStorage: a directory on disk, all paths confined to it
//   - S3Storage: AWS S3 and S3-compatible services (R2, MinIO)
//
// S3Storage also implements Presigner, which lets Handler redirect to a
// short-lived signed URL whose response headers are overridden with the AR
// content type, so the bytes never pass through the application.
//
// # Usage
//
//	storage, err := file.NewLocalStorage("./assets", "/assets/")
//	if err != nil {
//		return err
//	}
//
//	r.Handle("/assets/*", http.StripPrefix("/assets/", file.Handler(storage, log)))
//
// Using S3 storage:
//
//	storage, err := file.NewS3Storage(ctx, file.S3Config{
//		Bucket: "showroom-assets",
//		Region: "auto",
//		Endpoint: "https://<account>.r2.cloudflarestorage.com",
//	})
//
// # Error Handling
//
// S3 errors are mapped to package errors:
//   - NoSuchKey, NotFound -> ErrFileNotFound
//   - NoSuchBucket -> ErrBucketNotFound
//   - AccessDenied -> ErrAccessDenied
//
// Paths escaping the storage root fail with ErrInvalidPath.
package file
