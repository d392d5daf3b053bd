package ilineitemrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vinocafe/order-svc/internal/service/models/lineitem"
)

// ILineItemRepository manages per-category order line items.
type ILineItemRepository interface {
	InsertWine(ctx context.Context, orderID, wineID int64, quantity int, subtotal decimal.Decimal) error
	InsertCoffee(ctx context.Context, orderID, coffeeID int64, quantity int, subtotal decimal.Decimal) error

	// ListByOrder returns the order's line items joined to their catalogs,
	// wines first, then coffees.
	ListByOrder(ctx context.Context, orderID int64) ([]lineitem.LineItem, error)
}
