package profile

// Profile is a reusable saved shipping + payment preference, owned by a user
// and independent of any specific order. Saves accumulate history; reads
// return the most recently used row.
type Profile struct {
	FullName             *string `json:"full_name"`
	Phone                *string `json:"phone"`
	AddressLine1         *string `json:"address_line1"`
	AddressLine2         *string `json:"address_line2"`
	City                 *string `json:"city"`
	State                *string `json:"state"`
	PostalCode           *string `json:"postal_code"`
	Country              *string `json:"country"`
	PaymentMethod        *string `json:"payment_method"`
	UpiID                *string `json:"upi_id"`
	DeliveryInstructions *string `json:"delivery_instructions"`
}
