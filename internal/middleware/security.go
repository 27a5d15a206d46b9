package middleware

import "net/http"

// SecurityHeaderOptions controls the optional policies. The frontend loads
// scripts and media from several club domains, so this app runs with both
// CSP and COEP disabled; the headers are only emitted when configured.
type SecurityHeaderOptions struct {
	// ContentSecurityPolicy is sent as-is when non-empty.
	ContentSecurityPolicy string
	// CrossOriginEmbedderPolicy enables require-corp when true.
	CrossOriginEmbedderPolicy bool
}

// SecurityHeaders sets the baseline security headers on every response.
func SecurityHeaders(opts SecurityHeaderOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-XSS-Protection", "1; mode=block")
			h.Set("Referrer-Policy", "no-referrer")
			if opts.ContentSecurityPolicy != "" {
				h.Set("Content-Security-Policy", opts.ContentSecurityPolicy)
			}
			if opts.CrossOriginEmbedderPolicy {
				h.Set("Cross-Origin-Embedder-Policy", "require-corp")
			}
			next.ServeHTTP(w, r)
		})
	}
}
