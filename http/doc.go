// Package http provides the HTTP surface of the gateway.
//
// A single catch-all route accepts GET and HEAD. The request path is
// resolved into a bucket/key address, fetched from the store, and the
// store's reply is translated into a streaming HTTP response: status
// (200 or 206), mirrored metadata headers, a corrected content type,
// and a one-year public cache directive.
//
// # Response rules
//
// Responses are built from the store's metadata in a fixed order:
//
//  1. 206 Partial Content when the store reported a content range, else 200
//  2. Content-Length mirrored when known, chunked transfer otherwise
//  3. generic octet-stream types replaced from the key's file extension
//  4. Content-Encoding forced to identity for audio, video, and image
//     types, keeping byte ranges on media byte-exact
//  5. ETag, Accept-Ranges, Last-Modified, Content-Range passed through
//     when present
//  6. Cache-Control: public, max-age=31536000 on every object response
//
// The body streams straight from the store connection; nothing is
// buffered in full. Once streaming has begun a transport failure can
// only abort the connection, since the status line is already sent.
//
// # Errors
//
// Unresolvable paths answer 404 before the store is contacted. A store
// "no such key" answers 404 with a fixed body. Every other failure is an
// opaque 500; the cause is logged, never exposed.
package http
