// Package s3 provides the object store client backing the gateway.
//
// The store wraps the minio-go Core API so that response headers such as
// Content-Range and Accept-Ranges can be mirrored verbatim. Transport,
// signing, and retry behavior all live inside the minio client; this
// package only issues fetches and classifies failures into "not found"
// versus everything else.
package s3
