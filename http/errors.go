package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/s3gate/s3gate"
)

// Fixed plaintext bodies; existing consumers match on them.
const (
	routeNotFoundBody = "Resource not found!"
	storeNotFoundBody = "404 - Not found"
	internalErrorBody = "internal error"
)

// WriteRouteNotFound answers a path that never resolved to a bucket and
// key. The store has not been contacted.
func WriteRouteNotFound(w http.ResponseWriter) {
	writePlain(w, http.StatusNotFound, routeNotFoundBody)
}

// HandleFetchError classifies a store failure into a response. "No such
// key" becomes a 404; anything else an opaque 500 with the cause logged,
// never exposed. No retry happens at this layer.
func HandleFetchError(w http.ResponseWriter, key string, err error) {
	if errors.Is(err, s3gate.ErrNotFound) {
		writePlain(w, http.StatusNotFound, storeNotFoundBody)
		return
	}

	slog.Error("object fetch failed", "key", key, "err", err)
	writePlain(w, http.StatusInternalServerError, internalErrorBody)
}

func writePlain(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Error("failed to write error response", "err", err)
	}
}
