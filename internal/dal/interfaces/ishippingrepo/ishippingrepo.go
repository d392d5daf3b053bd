package ishippingrepo

import (
	"context"

	"github.com/vinocafe/order-svc/internal/service/models/shipping"
)

// IShippingRepository writes the immutable shipping snapshot of an order.
type IShippingRepository interface {
	Insert(ctx context.Context, orderID int64, detail shipping.Detail) error
}
