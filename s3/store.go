package s3

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/s3gate/s3gate"
)

// Config holds the connection settings for the store endpoint.
type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// client is the slice of the store API the gateway needs. Narrowed so
// tests can substitute a fake.
type client interface {
	Get(ctx context.Context, req s3gate.FetchRequest) (s3gate.Object, error)
	Stat(ctx context.Context, req s3gate.FetchRequest) (s3gate.Object, error)
}

// Store fetches objects from an S3-compatible endpoint. It is safe for
// concurrent use and is built once at startup.
type Store struct {
	client client
}

// New creates a Store connected to the configured endpoint. Empty
// credentials mean anonymous access.
func New(cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}

	mc, err := newMinioClient(cfg)
	if err != nil {
		return nil, err
	}

	return &Store{client: mc}, nil
}

// NewWithClient creates a Store over an existing client implementation.
func NewWithClient(c client) (*Store, error) {
	if c == nil {
		return nil, fmt.Errorf("client is required")
	}
	return &Store{client: c}, nil
}

// Fetch retrieves an object's metadata and byte stream. The caller owns
// the returned body and must close it. Returns s3gate.ErrNotFound when
// the store holds nothing under the requested address.
func (s *Store) Fetch(ctx context.Context, req s3gate.FetchRequest) (s3gate.Object, error) {
	if err := validate(req); err != nil {
		return s3gate.Object{}, err
	}

	obj, err := s.client.Get(ctx, req)
	if err != nil {
		if errors.Is(err, s3gate.ErrNotFound) {
			return s3gate.Object{}, s3gate.ErrNotFound
		}
		return s3gate.Object{}, fmt.Errorf("get object %q: %w", req.Key, err)
	}
	return obj, nil
}

// Stat retrieves an object's metadata without its payload; the returned
// Object carries a nil body. Used to serve HEAD without moving bytes.
func (s *Store) Stat(ctx context.Context, req s3gate.FetchRequest) (s3gate.Object, error) {
	if err := validate(req); err != nil {
		return s3gate.Object{}, err
	}

	obj, err := s.client.Stat(ctx, req)
	if err != nil {
		if errors.Is(err, s3gate.ErrNotFound) {
			return s3gate.Object{}, s3gate.ErrNotFound
		}
		return s3gate.Object{}, fmt.Errorf("stat object %q: %w", req.Key, err)
	}
	return obj, nil
}

func validate(req s3gate.FetchRequest) error {
	if req.Bucket == "" {
		return fmt.Errorf("bucket is required")
	}
	if req.Key == "" {
		return fmt.Errorf("object key is required")
	}
	return nil
}

func newMinioClient(cfg Config) (*minioClient, error) {
	endpoint, secure, err := parseEndpoint(cfg.Endpoint, cfg.UseSSL)
	if err != nil {
		return nil, err
	}

	core, err := minio.NewCore(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
		Region: strings.TrimSpace(cfg.Region),
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}

	return &minioClient{core: core}, nil
}

func parseEndpoint(raw string, useSSL bool) (string, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, fmt.Errorf("endpoint is required")
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		parsed, err := url.Parse(raw)
		if err != nil {
			return "", false, fmt.Errorf("parse endpoint URL: %w", err)
		}
		if parsed.Host == "" {
			return "", false, fmt.Errorf("endpoint host is required")
		}
		if parsed.Scheme == "https" {
			return parsed.Host, true, nil
		}
		return parsed.Host, useSSL, nil
	}
	return raw, useSSL, nil
}

// minioClient adapts the minio Core API to the client interface. The
// Core API is used instead of the high-level one because it hands back
// the raw response headers, which the gateway mirrors verbatim.
type minioClient struct {
	core *minio.Core
}

func (m *minioClient) Get(ctx context.Context, req s3gate.FetchRequest) (s3gate.Object, error) {
	opts := minio.GetObjectOptions{}
	if req.Range != "" {
		opts.Set("Range", req.Range)
	}

	body, info, header, err := m.core.GetObject(ctx, req.Bucket, req.Key, opts)
	if err != nil {
		return s3gate.Object{}, mapErr(err)
	}

	return s3gate.Object{
		Body:          body,
		ContentLength: contentLength(header),
		ContentType:   info.ContentType,
		ETag:          header.Get("ETag"),
		ContentRange:  header.Get("Content-Range"),
		AcceptRanges:  header.Get("Accept-Ranges"),
		LastModified:  info.LastModified,
	}, nil
}

func (m *minioClient) Stat(ctx context.Context, req s3gate.FetchRequest) (s3gate.Object, error) {
	opts := minio.StatObjectOptions{}
	if req.Range != "" {
		opts.Set("Range", req.Range)
	}

	info, err := m.core.StatObject(ctx, req.Bucket, req.Key, opts)
	if err != nil {
		return s3gate.Object{}, mapErr(err)
	}

	return s3gate.Object{
		Body:          nil,
		ContentLength: info.Size,
		ContentType:   info.ContentType,
		ETag:          quoteETag(info.ETag),
		ContentRange:  info.Metadata.Get("Content-Range"),
		AcceptRanges:  info.Metadata.Get("Accept-Ranges"),
		LastModified:  info.LastModified,
	}, nil
}

func contentLength(header http.Header) int64 {
	v := header.Get("Content-Length")
	if v == "" {
		return -1
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return -1
	}
	return n
}

// quoteETag restores the quoting the wire format carries; minio strips
// it from stat results.
func quoteETag(etag string) string {
	if etag == "" || strings.HasPrefix(etag, `"`) || strings.HasPrefix(etag, "W/") {
		return etag
	}
	return `"` + etag + `"`
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var response minio.ErrorResponse
	if errors.As(err, &response) {
		switch response.Code {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return s3gate.ErrNotFound
		}
	}
	return err
}
