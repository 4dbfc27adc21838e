package s3gate

import (
	"mime"
	"path/filepath"
	"strings"
)

// Generic types stores report when the uploader never set a real one.
const (
	typeOctetStream       = "application/octet-stream"
	typeBinaryOctetStream = "binary/octet-stream"
)

// fallbackTypes covers media extensions the host's mime database may not
// carry; mime.TypeByExtension is consulted first.
var fallbackTypes = map[string]string{
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
	".mov":  "video/quicktime",
	".mp3":  "audio/mpeg",
	".flac": "audio/flac",
	".ogg":  "audio/ogg",
	".wav":  "audio/wav",
	".webp": "image/webp",
	".avif": "image/avif",
}

// TypeByKey returns the MIME type implied by the key's file extension,
// or "" when the extension is missing or unrecognized.
func TypeByKey(key string) string {
	ext := strings.ToLower(filepath.Ext(key))
	if ext == "" {
		return ""
	}

	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}

	return fallbackTypes[ext]
}

// ResolveContentType picks the content type for a response. A store that
// never learned the real type reports a generic octet-stream; in that
// case the key's extension decides, with the generic type as the last
// resort. Any other store-reported type wins verbatim.
func ResolveContentType(key, reported string) string {
	if reported != typeOctetStream && reported != typeBinaryOctetStream {
		return reported
	}

	if ct := TypeByKey(key); ct != "" {
		return ct
	}

	return reported
}

// IsMediaType reports whether a content type names audio, video, or
// image content.
func IsMediaType(contentType string) bool {
	return strings.HasPrefix(contentType, "audio") ||
		strings.HasPrefix(contentType, "video") ||
		strings.HasPrefix(contentType, "image")
}
