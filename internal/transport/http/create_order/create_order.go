package createorder

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vinocafe/order-svc/internal/service/errs"
	"github.com/vinocafe/order-svc/internal/service/models/lineitem"
	"github.com/vinocafe/order-svc/internal/service/models/money"
	"github.com/vinocafe/order-svc/internal/service/models/order"
	"github.com/vinocafe/order-svc/internal/service/models/shipping"
	"github.com/vinocafe/order-svc/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	CreateOrder(ctx context.Context, req order.CreateOrder) (*order.Order, error)
}

// itemPayload accepts the loose inbound item shape: callers may address the
// product and its category through several synonym keys depending on where
// the item came from (cart, detail page, recommender).
type itemPayload struct {
	ID              *int64  `json:"id"`
	ProductID       *int64  `json:"product_id"`
	RecommendedID   *int64  `json:"recommendedId"`
	Category        string  `json:"category"`
	ProductType     string  `json:"product_type"`
	RecommendedType string  `json:"recommendedType"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
}

// toModel resolves the synonym keys once, so nothing downstream has to.
func (p itemPayload) toModel() lineitem.NewItem {
	var productID int64
	switch {
	case p.ProductID != nil:
		productID = *p.ProductID
	case p.ID != nil:
		productID = *p.ID
	case p.RecommendedID != nil:
		productID = *p.RecommendedID
	}

	cat := p.Category
	if cat == "" {
		cat = p.ProductType
	}
	if cat == "" {
		cat = p.RecommendedType
	}

	return lineitem.NewItem{
		ProductID: productID,
		Category:  cat,
		Quantity:  p.Quantity,
		Price:     money.FromFloat(p.Price),
	}
}

type paymentPayload struct {
	PaymentMethod string `json:"payment_method"`
	Method        string `json:"method"`
	UpiID         string `json:"upi_id"`
	UpiIDAlt      string `json:"upiId"`
}

type createOrderRequest struct {
	UserID      *int64           `json:"userId"`
	Items       []itemPayload    `json:"items"`
	Shipping    *shipping.Detail `json:"shipping"`
	Payment     paymentPayload   `json:"payment"`
	Total       *float64         `json:"total"`
	SaveDetails *bool            `json:"saveDetails"`
}

// validate checks required root fields and shipping subfields before any
// write begins, naming everything that is missing.
func (r *createOrderRequest) validate() error {
	var missing []string
	if r.UserID == nil {
		missing = append(missing, "userId")
	}
	if r.Items == nil {
		missing = append(missing, "items")
	}
	if r.Shipping == nil {
		missing = append(missing, "shipping")
	}
	if r.Total == nil {
		missing = append(missing, "total")
	}
	if len(missing) > 0 {
		return errs.NewValidation("Missing required field(s): %s", strings.Join(missing, ", "))
	}

	if len(r.Items) == 0 {
		return errs.NewValidation("Order must contain at least one item")
	}

	required := []struct {
		name  string
		value string
	}{
		{"full_name", r.Shipping.FullName},
		{"phone", r.Shipping.Phone},
		{"address_line1", r.Shipping.AddressLine1},
		{"city", r.Shipping.City},
		{"state", r.Shipping.State},
		{"postal_code", r.Shipping.PostalCode},
		{"country", r.Shipping.Country},
	}

	var missingShipping []string
	for _, field := range required {
		if field.value == "" {
			missingShipping = append(missingShipping, field.name)
		}
	}
	if len(missingShipping) > 0 {
		return errs.NewValidation("Shipping details incomplete: %s", strings.Join(missingShipping, ", "))
	}

	return nil
}

func (r *createOrderRequest) toModel() order.CreateOrder {
	items := make([]lineitem.NewItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = item.toModel()
	}

	method := r.Payment.PaymentMethod
	if method == "" {
		method = r.Payment.Method
	}
	upi := r.Payment.UpiID
	if upi == "" {
		upi = r.Payment.UpiIDAlt
	}

	// Saving the profile is opt-out, not opt-in.
	saveDetails := true
	if r.SaveDetails != nil {
		saveDetails = *r.SaveDetails
	}

	return order.CreateOrder{
		UserID:   *r.UserID,
		Items:    items,
		Shipping: *r.Shipping,
		Payment: order.PaymentInfo{
			Method: method,
			UpiID:  upi,
		},
		Total:       money.FromFloat(*r.Total),
		SaveDetails: saveDetails,
	}
}

// CreateOrder handles the checkout request.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, errs.NewValidation("Failed to decode request body"))
		slog.Error("Error decoding request body for order creation", "error", err)

		return
	}

	if err := req.validate(); err != nil {
		respond.Error(w, err)

		return
	}

	created, err := service.CreateOrder(r.Context(), req.toModel())
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error creating order", "error", err)

		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"message": "Order recorded successfully",
		"order":   created,
	})
}
