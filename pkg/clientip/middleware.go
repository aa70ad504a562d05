package clientip

import "net/http"

// Middleware stores the client address in the request context. Without
// arguments DefaultHeaders are trusted; pass headers to narrow the list, or a
// single empty string to trust RemoteAddr only.
func Middleware(headers ...string) func(http.Handler) http.Handler {
	if len(headers) == 0 {
		headers = DefaultHeaders
	}
	trusted := make([]string, 0, len(headers))
	for _, h := range headers {
		if h != "" {
			trusted = append(trusted, h)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := FromHeaders(r, trusted)
			next.ServeHTTP(w, r.WithContext(SetIPToContext(r.Context(), ip)))
		})
	}
}
