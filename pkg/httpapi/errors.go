package httpapi

import "errors"

var (
	// ErrMalformedBody is returned when a request body is not the expected JSON document.
	ErrMalformedBody = errors.New("malformed request body")
	// ErrBodyTooLarge is returned when a request body exceeds the configured limit.
	ErrBodyTooLarge = errors.New("request body too large")
	// ErrRateLimited is returned when a client exceeds its request quota.
	ErrRateLimited = errors.New("rate limit exceeded")
)
