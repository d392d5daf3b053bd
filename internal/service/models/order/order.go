package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vinocafe/order-svc/internal/service/models/customer"
	"github.com/vinocafe/order-svc/internal/service/models/lineitem"
	"github.com/vinocafe/order-svc/internal/service/models/shipping"
)

// orderDateLayout renders the stored offset-naive timestamp with the fixed
// +05:30 suffix callers expect. This is a display convention, not a
// timezone conversion.
const orderDateLayout = "2006-01-02T15:04:05"

// Payment is the read-only payment projection. Payment rows are never
// written by this service, so both fields are usually null.
type Payment struct {
	Method *string `json:"method"`
	Status *string `json:"status"`
}

// Order is the fully materialized read model of an order: header, payment
// projection, shipping snapshot, customer summary and line items.
type Order struct {
	ID          int64               `json:"id"`
	CustomerID  int64               `json:"customer_id"`
	TotalAmount float64             `json:"total_amount"`
	Total       float64             `json:"total"`
	OrderDate   string              `json:"order_date"`
	Payment     Payment             `json:"payment"`
	Shipping    shipping.Detail     `json:"shipping"`
	Customer    customer.Summary    `json:"customer"`
	Items       []lineitem.LineItem `json:"items"`
}

// FormatOrderDate renders an order timestamp for API responses.
func FormatOrderDate(t time.Time) string {
	return t.Format(orderDateLayout) + "+05:30"
}

// PaymentInfo is the inbound payment selection accompanying a checkout.
type PaymentInfo struct {
	Method string
	UpiID  string
}

// CreateOrder is a validated, normalized order creation request.
type CreateOrder struct {
	UserID      int64
	Items       []lineitem.NewItem
	Shipping    shipping.Detail
	Payment     PaymentInfo
	Total       decimal.Decimal
	SaveDetails bool
}
