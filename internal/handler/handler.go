package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hrshiniA/portfolio-app/internal/apperr"
	"github.com/hrshiniA/portfolio-app/internal/middleware"
	"github.com/hrshiniA/portfolio-app/internal/respond"
	"github.com/hrshiniA/portfolio-app/internal/service"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	svc *service.Service
	log logrus.FieldLogger
}

func NewHandler(svc *service.Service, log logrus.FieldLogger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Register handles user registration
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var in service.Credentials
	if !h.decode(w, r, &in) {
		return
	}
	user, err := h.svc.Register(r.Context(), in)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, "User registered", map[string]any{"id": user.ID})
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in service.Credentials
	if !h.decode(w, r, &in) {
		return
	}
	token, err := h.svc.Login(r.Context(), in)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"token": token})
}

// ListHoldings returns the caller's portfolio
func (h *Handler) ListHoldings(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(w, r)
	if !ok {
		return
	}
	holdings, err := h.svc.ListHoldings(r.Context(), userID)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, holdings)
}

// GetHolding returns a single holding of the caller
func (h *Handler) GetHolding(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	holding, err := h.svc.GetHolding(r.Context(), userID, id)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, holding)
}

// CreateHolding adds a holding to the caller's portfolio
func (h *Handler) CreateHolding(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(w, r)
	if !ok {
		return
	}
	var in service.HoldingInput
	if !h.decode(w, r, &in) {
		return
	}
	holding, err := h.svc.CreateHolding(r.Context(), userID, in)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, "Holding added", map[string]any{"id": holding.ID})
}

// UpdateHolding modifies a holding of the caller
func (h *Handler) UpdateHolding(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(w, r)
	if !ok {
		return
	}
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var in service.HoldingInput
	if !h.decode(w, r, &in) {
		return
	}
	if err := h.svc.UpdateHolding(r.Context(), userID, id, in); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, "Holding updated", nil)
}

// Summary reports gains and performance of the caller's portfolio
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(w, r)
	if !ok {
		return
	}
	summary, err := h.svc.Summary(r.Context(), userID)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, summary)
}

// ListTransactions returns the caller's transaction history
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(w, r)
	if !ok {
		return
	}
	txs, err := h.svc.ListTransactions(r.Context(), userID)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, txs)
}

// CreateTransaction records a buy or sell for the caller
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.user(w, r)
	if !ok {
		return
	}
	var in service.TransactionInput
	if !h.decode(w, r, &in) {
		return
	}
	tx, err := h.svc.CreateTransaction(r.Context(), userID, in)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.Message(w, "Transaction recorded", map[string]any{"id": tx.ID})
}

func (h *Handler) user(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respond.Error(w, r, h.log, apperr.ErrMissingToken)
	}
	return userID, ok
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		respond.Error(w, r, h.log, apperr.ErrNotFound)
		return 0, false
	}
	return id, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		respond.Error(w, r, h.log, apperr.Validation("invalid request body"))
		return false
	}
	return true
}
