package ratelimiter

import "errors"

var (
	// ErrInvalidConfig indicates that the bucket configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidTokenCount indicates that the requested token count is not positive.
	ErrInvalidTokenCount = errors.New("invalid token count")

	// ErrContextCancelled indicates that the context was done before the check.
	ErrContextCancelled = errors.New("context cancelled")
)
