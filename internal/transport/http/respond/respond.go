package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vinocafe/order-svc/internal/service/errs"
)

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error writing response", "error", err)
	}
}

// Error maps a service error onto the HTTP taxonomy: validation 400,
// not found 404, authorization 403, anything else 500.
func Error(w http.ResponseWriter, err error) {
	var (
		validation    *errs.ValidationError
		notFound      *errs.NotFoundError
		authorization *errs.AuthorizationError
	)

	switch {
	case errors.As(err, &validation):
		JSON(w, http.StatusBadRequest, map[string]string{"error": validation.Message})
	case errors.As(err, &notFound):
		JSON(w, http.StatusNotFound, map[string]string{"error": notFound.Message})
	case errors.As(err, &authorization):
		JSON(w, http.StatusForbidden, map[string]string{"error": authorization.Message})
	default:
		JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
