package getorder

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vinocafe/order-svc/internal/service/errs"
	"github.com/vinocafe/order-svc/internal/service/models/order"
	"github.com/vinocafe/order-svc/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	GetOrder(ctx context.Context, orderID int64) (*order.Order, error)
}

// GetOrder fetches a single order with its items and fulfilment detail.
func GetOrder(w http.ResponseWriter, r *http.Request, service service) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, errs.NewValidation("Invalid order id"))

		return
	}

	view, err := service.GetOrder(r.Context(), orderID)
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error fetching order", "order_id", orderID, "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, view)
}
