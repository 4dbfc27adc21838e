package http

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/s3gate/s3gate"
)

// CacheControl is sent on every object response. Keys are assumed
// immutable, so clients and intermediaries may hold objects for a year.
const CacheControl = "public, max-age=31536000"

// WriteObject translates the store's reply into the HTTP response:
// status and headers first, then the body streamed chunk by chunk.
//
// A nil body is a valid empty body; it produces a complete response with
// headers only, which is also how HEAD replies are written.
func WriteObject(w http.ResponseWriter, key string, obj s3gate.Object) {
	header := w.Header()

	contentType := s3gate.ResolveContentType(key, obj.ContentType)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	if s3gate.IsMediaType(contentType) {
		// Keeps compression layers away from media, so byte ranges stay
		// byte-exact for decoders.
		header.Set("Content-Encoding", "identity")
	}

	if obj.ContentLength >= 0 {
		header.Set("Content-Length", strconv.FormatInt(obj.ContentLength, 10))
	}
	if obj.ETag != "" {
		header.Set("ETag", obj.ETag)
	}
	if obj.AcceptRanges != "" {
		header.Set("Accept-Ranges", obj.AcceptRanges)
	}
	if !obj.LastModified.IsZero() {
		header.Set("Last-Modified", obj.LastModified.UTC().Format(http.TimeFormat))
	}
	header.Set("Cache-Control", CacheControl)

	status := http.StatusOK
	if obj.ContentRange != "" {
		header.Set("Content-Range", obj.ContentRange)
		status = http.StatusPartialContent
	}
	w.WriteHeader(status)

	if obj.Body == nil {
		return
	}

	if _, err := io.Copy(w, obj.Body); err != nil {
		// The status line is already on the wire; all that is left is to
		// drop the connection.
		slog.Error("streaming aborted", "key", key, "err", err)
	}
}
