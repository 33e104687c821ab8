package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// CORSMiddleware allows the frontend at origin to call the API and answers
// preflight requests. Place it after mux.CORSMethodMiddleware.
func CORSMiddleware(origin string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
				w.Header().Add("Vary", "Origin")
				// CORSMethodMiddleware cannot see methods behind subrouters.
				if w.Header().Get("Access-Control-Allow-Methods") == "" {
					w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,OPTIONS")
				}
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
