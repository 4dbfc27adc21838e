package s3gate

import "strings"

// ResolveRoute maps a request path onto a bucket/key pair.
//
// With a default bucket configured, the whole (prefix-stripped) path is
// the key. Otherwise the path splits on its first slash: first segment
// bucket, remainder key. When urlPrefix is non-empty the path must start
// with that segment or resolution fails.
//
// ok is false when no non-empty bucket and key can be determined;
// callers must not contact the store in that case.
//
// Keys are flat strings to the store, so no cleaning of "." or ".."
// segments happens here.
func ResolveRoute(path, urlPrefix, defaultBucket string) (Route, bool) {
	p := strings.TrimPrefix(path, "/")

	if urlPrefix != "" {
		rest, found := strings.CutPrefix(p, urlPrefix+"/")
		if !found {
			return Route{}, false
		}
		p = rest
	}

	if defaultBucket != "" {
		if p == "" {
			return Route{}, false
		}
		return Route{Bucket: defaultBucket, Key: p}, true
	}

	bucket, key, found := strings.Cut(p, "/")
	if !found || bucket == "" || key == "" {
		return Route{}, false
	}
	return Route{Bucket: bucket, Key: key}, true
}
