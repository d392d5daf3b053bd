package shipping

import "strings"

// Detail is the delivery snapshot taken at order creation time. It is written
// once per order and never updated.
type Detail struct {
	FullName             string `json:"full_name"`
	Phone                string `json:"phone"`
	AddressLine1         string `json:"address_line1"`
	AddressLine2         string `json:"address_line2"`
	City                 string `json:"city"`
	State                string `json:"state"`
	PostalCode           string `json:"postal_code"`
	Country              string `json:"country"`
	DeliveryInstructions string `json:"delivery_instructions"`
}

// CombinedAddress joins the address parts into the single denormalized string
// stored on the customer record, skipping empty parts.
func (d Detail) CombinedAddress() string {
	parts := []string{
		d.AddressLine1,
		d.AddressLine2,
		d.City,
		d.State,
		d.PostalCode,
		d.Country,
	}

	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			nonEmpty = append(nonEmpty, trimmed)
		}
	}

	return strings.Join(nonEmpty, ", ")
}
