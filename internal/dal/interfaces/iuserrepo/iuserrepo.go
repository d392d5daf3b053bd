package iuserrepo

import (
	"context"

	"github.com/vinocafe/order-svc/internal/service/models/user"
)

// IUserRepository reads user identities owned by the external user component.
type IUserRepository interface {
	// GetByID returns the user with the given id, or nil if no such user exists.
	GetByID(ctx context.Context, id int64) (*user.User, error)
}
