package icustomerrepo

import (
	"context"

	"github.com/vinocafe/order-svc/internal/service/models/customer"
)

// ICustomerRepository manages customer records keyed by email.
type ICustomerRepository interface {
	// GetIDByEmail returns the customer id for an email, with found=false when
	// no customer exists yet.
	GetIDByEmail(ctx context.Context, email string) (id int64, found bool, err error)

	// UpdateContact refreshes contact fields, preserving existing values where
	// the new value is nil.
	UpdateContact(ctx context.Context, id int64, name, phone, address *string) error

	// Insert creates a customer and returns its id. Concurrent inserts for the
	// same email resolve to a single row.
	Insert(ctx context.Context, c customer.Customer) (int64, error)
}
