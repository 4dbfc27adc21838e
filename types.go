package s3gate

import (
	"io"
	"time"
)

// Route is a resolved (bucket, key) address for an object. Both fields
// are non-empty whenever a Route is produced by ResolveRoute.
type Route struct {
	Bucket string
	Key    string
}

// FetchRequest describes a single fetch against the object store.
//
// Range, when non-empty, is the client's Range header value forwarded
// verbatim. The gateway never parses or validates range syntax; the
// store owns all partial-content computation.
type FetchRequest struct {
	Bucket string
	Key    string
	Range  string
}

// Object is the store's reply for a single fetch: response metadata plus
// an optional byte stream. It is built per request, consumed exactly
// once while the HTTP response is produced, then discarded.
//
// Body is a lazy, non-restartable stream sourced from the live store
// connection. A nil Body is a valid empty body, not an error: it is what
// metadata-only fetches (HEAD) and zero-length objects produce.
type Object struct {
	Body          io.ReadCloser
	ContentLength int64 // -1 when unknown
	ContentType   string
	ETag          string
	ContentRange  string
	AcceptRanges  string
	LastModified  time.Time
}
