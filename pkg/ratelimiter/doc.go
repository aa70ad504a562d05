// Package ratelimiter implements a token bucket limiter with an in-memory
// store and an HTTP middleware that throttles requests per key, typically
// the client address.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       60,
//		RefillRate:     1,
//		RefillInterval: time.Second,
//	})
//
// Rejected requests do not consume tokens, so a client that keeps retrying
// regains access as soon as the bucket refills.
package ratelimiter
