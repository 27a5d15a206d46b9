package middleware

import (
	"encoding/json"
	"net/http"
)

// MaxBody enforces a request body ceiling. Declared oversize bodies are
// rejected up front; bodies without a declared length are wrapped in
// http.MaxBytesReader so a read past the ceiling fails before a handler can
// act on the payload.
func MaxBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error":   "Payload Too Large",
					"message": "request body exceeds the allowed size",
				})
				return
			}
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
