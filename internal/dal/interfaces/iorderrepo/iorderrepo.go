package iorderrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vinocafe/order-svc/internal/service/models/order"
)

// IOrderRepository manages order headers and the joined order view.
type IOrderRepository interface {
	// Insert creates an order header and returns its id. The order date is
	// assigned by the store.
	Insert(ctx context.Context, customerID int64, total decimal.Decimal) (int64, error)

	// GetView returns the joined order view (header, payment projection,
	// shipping snapshot, customer summary) without line items, or nil if the
	// order does not exist.
	GetView(ctx context.Context, id int64) (*order.Order, error)

	// ListIDsByEmail returns order ids for a customer email, newest first.
	ListIDsByEmail(ctx context.Context, email string) ([]int64, error)

	// ListIDs returns every order id, newest first.
	ListIDs(ctx context.Context) ([]int64, error)
}
