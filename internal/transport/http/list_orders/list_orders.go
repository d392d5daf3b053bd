package listorders

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
	ListOrdersForUser(ctx context.Context, userID int64) ([]order.Order, error)
	ListAllOrders(ctx context.Context) ([]order.Order, error)
}

// ListForUser retrieves all orders placed by a given user. An unknown user
// gets an empty list.
func ListForUser(w http.ResponseWriter, r *http.Request, service service) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		respond.Error(w, errs.NewValidation("Invalid user id"))

		return
	}

	orders, err := service.ListOrdersForUser(r.Context(), userID)
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error listing orders for user", "user_id", userID, "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"orders": orders,
		"count":  len(orders),
	})
}

// ListAll returns every recorded order. Admin access is enforced by
// middleware on the route.
func ListAll(w http.ResponseWriter, r *http.Request, service service) {
	orders, err := service.ListAllOrders(r.Context())
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error listing all orders", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"orders": orders,
		"count":  len(orders),
	})
}
