package paymentprofile

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vinocafe/order-svc/internal/service/errs"
	"github.com/vinocafe/order-svc/internal/service/models/profile"
	"github.com/vinocafe/order-svc/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	GetLatestPaymentProfile(ctx context.Context, userID int64) (*profile.Profile, error)
}

// GetLatest returns the last used payment/shipping profile for a user, or a
// null profile when none has been saved.
func GetLatest(w http.ResponseWriter, r *http.Request, service service) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		respond.Error(w, errs.NewValidation("Invalid user id"))

		return
	}

	p, err := service.GetLatestPaymentProfile(r.Context(), userID)
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error fetching payment profile", "user_id", userID, "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{"profile": p})
}
