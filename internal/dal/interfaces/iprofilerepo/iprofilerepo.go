package iprofilerepo

import (
	"context"

	"github.com/vinocafe/order-svc/internal/service/models/profile"
)

// IProfileRepository stores saved shipping/payment profiles. Inserts are
// unconditional; history accumulates and the latest row wins on lookup.
type IProfileRepository interface {
	Insert(ctx context.Context, userID int64, p profile.Profile) error

	// GetLatest returns the most recently used profile for a user, or nil if
	// none has been saved.
	GetLatest(ctx context.Context, userID int64) (*profile.Profile, error)
}
