package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hrshiniA/portfolio-app/internal/apperr"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusCreated, map[string]int{"n": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, float64(1), decode(t, w)["n"])
}

func TestMessage(t *testing.T) {
	w := httptest.NewRecorder()
	Message(w, "Holding added", map[string]any{"id": 3})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Holding added", body["message"])
	assert.Equal(t, float64(3), body["id"])
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantLogged bool
	}{
		{"validation", apperr.Validation("name is required"), http.StatusBadRequest, "name is required", false},
		{"conflict", apperr.ErrDuplicateUsername, http.StatusBadRequest, "username already exists", false},
		{"auth", apperr.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials", false},
		{"not found", apperr.ErrNotFound, http.StatusNotFound, "not found", false},
		{"store", apperr.Store(errors.New("database is locked")), http.StatusInternalServerError, "internal server error", true},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal server error", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			r := httptest.NewRequest(http.MethodGet, "/portfolio", http.NoBody)
			w := httptest.NewRecorder()

			Error(w, r, logger, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMsg, decode(t, w)["error"])
			if tt.wantLogged {
				require.Len(t, hook.AllEntries(), 1)
				assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
			} else {
				assert.Empty(t, hook.AllEntries())
			}
		})
	}
}
