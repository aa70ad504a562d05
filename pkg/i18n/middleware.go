package i18n

import "net/http"

// QueryParam overrides the Accept-Language header when it names a loaded language.
const QueryParam = "lang"

// Middleware stores the request language in the context and announces it in
// the Content-Language response header. A supported ?lang= query parameter
// wins over Accept-Language.
func Middleware(t *Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang, ok := t.Supported(r.URL.Query().Get(QueryParam))
			if !ok {
				lang = t.Negotiate(r.Header.Get("Accept-Language"))
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
