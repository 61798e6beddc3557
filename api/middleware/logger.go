// Package middleware holds HTTP middleware shared across alignkit-server's
// routes. It is kept separate from the chi/v5 middleware package so the
// request-logging format can carry the request ID chi's middleware stack
// already attaches to the context.
package middleware

import (
	"log"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Logger logs one line per request: method, path, status, duration, and
// the chi request ID when present.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		reqID := chimiddleware.GetReqID(r.Context())
		log.Printf("%s %s %d %s %s", r.Method, r.URL.Path, ww.Status(), time.Since(start), reqID)
	})
}
