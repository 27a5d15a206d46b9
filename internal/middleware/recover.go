package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

// Recover is the terminal error boundary. It catches panics from policies
// and handlers, logs them unconditionally and answers a uniform 500. The
// panic detail is included in the response only when exposeDetail is true
// (development mode); other modes get a generic message.
func Recover(log zerolog.Logger, exposeDetail bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				log.Error().
					Interface("panic", rec).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("request_id", GetRequestID(r.Context())).
					Msg("unhandled panic")

				msg := "an unexpected error occurred"
				if exposeDetail {
					msg = fmt.Sprint(rec)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error":   "Internal Server Error",
					"message": msg,
				})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
