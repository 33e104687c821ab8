// Package respond writes JSON responses and maps application errors onto
// HTTP statuses.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/hrshiniA/portfolio-app/internal/apperr"
	"github.com/sirupsen/logrus"
)

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Warnf("Failed to encode response: %v", err)
	}
}

// Message writes {"message": msg} with status 200, plus any extra fields.
func Message(w http.ResponseWriter, msg string, fields map[string]any) {
	body := map[string]any{"message": msg}
	for k, v := range fields {
		body[k] = v
	}
	JSON(w, http.StatusOK, body)
}

// Error writes {"error": ...} with the status mapped from err's kind.
// Store failures are logged and reported without detail.
func Error(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindStore {
		log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Errorf("Request failed: %v", err)
	}
	JSON(w, kind.Status(), map[string]string{"error": apperr.Message(err)})
}
