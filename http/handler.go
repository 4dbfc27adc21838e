package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/s3gate/s3gate"
)

// Store is the object-store surface the handler needs.
type Store interface {
	Fetch(ctx context.Context, req s3gate.FetchRequest) (s3gate.Object, error)
	Stat(ctx context.Context, req s3gate.FetchRequest) (s3gate.Object, error)
}

// CORSConfig holds cross-origin settings for the served objects.
type CORSConfig struct {
	Enabled          bool
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// HandlerConfig fixes the routing shape and request policy at startup.
type HandlerConfig struct {
	// Bucket is the default bucket. When set the URL path is the object
	// key; when empty the first path segment names the bucket.
	Bucket string

	// URLPrefix is an optional fixed leading path segment.
	URLPrefix string

	// Workers caps concurrently served requests; 0 means unlimited.
	Workers int64

	CORS CORSConfig
}

// Handler serves objects from the store over GET and HEAD.
type Handler struct {
	config HandlerConfig
	store  Store
}

// NewHandler creates a Handler with the given configuration and store.
func NewHandler(config *HandlerConfig, store Store) *Handler {
	return &Handler{
		config: *config,
		store:  store,
	}
}

// Router returns the configured http.Handler. HEAD is registered
// explicitly; chi does not alias it to GET.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	if h.config.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   h.config.CORS.AllowedHeaders,
			ExposedHeaders:   h.config.CORS.ExposedHeaders,
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	r.Use(RequestLogger)
	if h.config.Workers > 0 {
		r.Use(ConcurrencyLimit(h.config.Workers))
	}

	r.Get("/*", h.handleGet)
	r.Head("/*", h.handleHead)

	return r
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	route, ok := s3gate.ResolveRoute(r.URL.Path, h.config.URLPrefix, h.config.Bucket)
	if !ok {
		WriteRouteNotFound(w)
		return
	}

	req := s3gate.NewFetchRequest(route, r.Header.Get("Range"))

	obj, err := h.store.Fetch(r.Context(), req)
	if err != nil {
		HandleFetchError(w, route.Key, err)
		return
	}
	defer closeBody(obj)

	WriteObject(w, route.Key, obj)
}

func (h *Handler) handleHead(w http.ResponseWriter, r *http.Request) {
	route, ok := s3gate.ResolveRoute(r.URL.Path, h.config.URLPrefix, h.config.Bucket)
	if !ok {
		WriteRouteNotFound(w)
		return
	}

	req := s3gate.NewFetchRequest(route, r.Header.Get("Range"))

	// Stat keeps object bytes off the wire entirely for HEAD.
	obj, err := h.store.Stat(r.Context(), req)
	if err != nil {
		HandleFetchError(w, route.Key, err)
		return
	}

	WriteObject(w, route.Key, obj)
}

func closeBody(obj s3gate.Object) {
	if obj.Body != nil {
		_ = obj.Body.Close()
	}
}
