package uow

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/vinocafe/order-svc/internal/dal/interfaces/icustomerrepo"
	"github.com/vinocafe/order-svc/internal/dal/interfaces/ilineitemrepo"
	"github.com/vinocafe/order-svc/internal/dal/interfaces/iorderrepo"
	"github.com/vinocafe/order-svc/internal/dal/interfaces/ishippingrepo"
	"github.com/vinocafe/order-svc/internal/dal/interfaces/iuserrepo"
	"github.com/vinocafe/order-svc/internal/dal/postgres"
	customerrepo "github.com/vinocafe/order-svc/internal/dal/repositories/customer/postgres"
	lineitemrepo "github.com/vinocafe/order-svc/internal/dal/repositories/lineitem/postgres"
	orderrepo "github.com/vinocafe/order-svc/internal/dal/repositories/order/postgres"
	shippingrepo "github.com/vinocafe/order-svc/internal/dal/repositories/shipping/postgres"
	userrepo "github.com/vinocafe/order-svc/internal/dal/repositories/user/postgres"
)

// unitOfWork scopes repositories to one logical operation. Before Begin the
// repositories run against the pool; after Begin they share one transaction
// until Commit or Rollback.
type unitOfWork struct {
	client *postgres.Client
	tx     pgx.Tx

	userRepo     iuserrepo.IUserRepository
	customerRepo icustomerrepo.ICustomerRepository
	orderRepo    iorderrepo.IOrderRepository
	shippingRepo ishippingrepo.IShippingRepository
	lineItemRepo ilineitemrepo.ILineItemRepository
}

func NewUnitOfWork(client *postgres.Client) *unitOfWork {
	u := &unitOfWork{client: client}
	u.bindRepos()

	return u
}

func (u *unitOfWork) bindRepos() {
	pool := u.client.Pool()
	u.userRepo = userrepo.NewPostgresUserRepository(pool)
	u.customerRepo = customerrepo.NewPostgresCustomerRepository(pool)
	u.orderRepo = orderrepo.NewPostgresOrderRepository(pool)
	u.shippingRepo = shippingrepo.NewPostgresShippingRepository(pool)
	u.lineItemRepo = lineitemrepo.NewPostgresLineItemRepository(pool)
}

func (u *unitOfWork) UserRepository() iuserrepo.IUserRepository {
	return u.userRepo
}

func (u *unitOfWork) CustomerRepository() icustomerrepo.ICustomerRepository {
	return u.customerRepo
}

func (u *unitOfWork) OrderRepository() iorderrepo.IOrderRepository {
	return u.orderRepo
}

func (u *unitOfWork) ShippingRepository() ishippingrepo.IShippingRepository {
	return u.shippingRepo
}

func (u *unitOfWork) LineItemRepository() ilineitemrepo.ILineItemRepository {
	return u.lineItemRepo
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	tx, err := u.client.Pool().Begin(ctx)
	if err != nil {
		return err
	}

	u.tx = tx
	u.userRepo = userrepo.NewPostgresUserRepository(tx)
	u.customerRepo = customerrepo.NewPostgresCustomerRepository(tx)
	u.orderRepo = orderrepo.NewPostgresOrderRepository(tx)
	u.shippingRepo = shippingrepo.NewPostgresShippingRepository(tx)
	u.lineItemRepo = lineitemrepo.NewPostgresLineItemRepository(tx)

	return nil
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}

	err := u.tx.Commit(ctx)
	u.tx = nil
	u.bindRepos()

	return err
}

// Rollback aborts the transaction. Calling it after Commit is a no-op, which
// lets callers defer it on every path.
func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}

	err := u.tx.Rollback(ctx)
	u.tx = nil
	u.bindRepos()

	return err
}
