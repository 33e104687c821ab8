package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hrshiniA/portfolio-app/internal/middleware"
	"github.com/sirupsen/logrus"
)

// NewRouter wires the public and protected routes.
func NewRouter(h *Handler, tokens middleware.TokenVerifier, corsOrigin string, log logrus.FieldLogger) *mux.Router {
	r := mux.NewRouter()
	r.Use(
		middleware.RecoverMiddleware(log),
		middleware.LoggingMiddleware(log),
		mux.CORSMethodMiddleware(r),
		middleware.CORSMiddleware(corsOrigin),
	)

	// Public routes
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Backend running"))
	}).Methods(http.MethodGet)
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost, http.MethodOptions)

	// Protected routes
	authRouter := r.NewRoute().Subrouter()
	authRouter.Use(middleware.AuthMiddleware(tokens, log))
	authRouter.HandleFunc("/portfolio", h.ListHoldings).Methods(http.MethodGet, http.MethodOptions)
	authRouter.HandleFunc("/portfolio", h.CreateHolding).Methods(http.MethodPost)
	authRouter.HandleFunc("/portfolio/summary", h.Summary).Methods(http.MethodGet, http.MethodOptions)
	authRouter.HandleFunc("/portfolio/{id:[0-9]+}", h.GetHolding).Methods(http.MethodGet, http.MethodOptions)
	authRouter.HandleFunc("/portfolio/{id:[0-9]+}", h.UpdateHolding).Methods(http.MethodPut)
	authRouter.HandleFunc("/transactions", h.ListTransactions).Methods(http.MethodGet, http.MethodOptions)
	authRouter.HandleFunc("/transactions", h.CreateTransaction).Methods(http.MethodPost)

	return r
}
