// Package s3gate exposes objects held in an S3-compatible store as plain
// HTTP resources: a GET (or HEAD) against a URL path streams back the
// object's bytes with HTTP-appropriate metadata, without the caller
// needing store credentials or the store's native protocol.
//
// The gateway is stateless and read-only. It holds no cache and performs
// no mutation; every request is resolved into a (bucket, key) address,
// fetched from the store, and translated into an HTTP response on the
// fly.
//
// # Key Components
//
//   - ResolveRoute: maps a request path onto a bucket/key pair
//   - NewFetchRequest: carries the client's Range header to the store verbatim
//   - ResolveContentType: corrects generic octet-stream types from the key's extension
//   - s3.Store: minio-backed object store client with error classification
//   - http.Handler: chi router translating store replies into streaming responses
//
// # Routing
//
// When a default bucket is configured the URL path is the object key;
// otherwise the first path segment names the bucket and the remainder is
// the key. Both shapes can sit under a fixed URL prefix. A path that
// yields no non-empty bucket and key is answered with 404 before the
// store is ever contacted.
//
// See the http package for the HTTP surface, the s3 package for the store
// client, and cmd/s3gate for the server binary.
package s3gate
