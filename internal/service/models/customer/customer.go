package customer

// Customer is the billing/shipping identity record, distinct from the
// authentication user and keyed by email.
type Customer struct {
	ID      int64
	Name    *string
	Email   string
	Phone   *string
	Address *string
}

// Summary is the customer projection embedded in an order view.
type Summary struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}
