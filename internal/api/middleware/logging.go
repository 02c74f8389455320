package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Logging пишет строку лога на каждый запрос
func Logging(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			if rec.status >= http.StatusInternalServerError {
				log.Warn("%s %s - %d (%v)", r.Method, r.URL.Path, rec.status, time.Since(start))
				return
			}
			log.Info("%s %s - %d (%v)", r.Method, r.URL.Path, rec.status, time.Since(start))
		})
	}
}
