package s3gate

import "errors"

var (
	// ErrNotFound is returned when the store holds no object under the requested address
	ErrNotFound = errors.New("not found")
	// ErrInternal is returned when an internal error occurs
	ErrInternal = errors.New("internal error")
)
